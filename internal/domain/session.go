package domain

import "strings"

const MinPasswordLength = 6

type UserID string

type User struct {
	ID       UserID
	Username string
	Email    string
}

type Session struct {
	User  User
	Token string
}

func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}

type AuthResult struct {
	Token string
	User  User
}

type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	if blank(c.Email) || blank(c.Password) {
		return &ValidationError{Form: FormLogin, Message: msgFillAllFields}
	}

	return nil
}

type Registration struct {
	Username string
	Email    string
	Password string
}

func (r Registration) Validate() error {
	if blank(r.Username) || blank(r.Email) || blank(r.Password) {
		return &ValidationError{Form: FormRegister, Message: msgFillAllFields}
	}
	if len([]rune(r.Password)) < MinPasswordLength {
		return &ValidationError{Form: FormRegister, Message: msgPasswordTooShort}
	}

	return nil
}

type ProfileUpdate struct {
	Username string
	Email    string
}

func (p ProfileUpdate) Validate() error {
	if blank(p.Username) || blank(p.Email) {
		return &ValidationError{Form: FormProfile, Message: msgFillAllFields}
	}

	return nil
}

func blank(value string) bool {
	return strings.TrimSpace(value) == ""
}
