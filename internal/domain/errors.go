package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrAPI           = errors.New("api error")
	ErrNetwork       = errors.New("network failure")
	ErrTokenNotFound = errors.New("token not found")
	ErrNoSession     = errors.New("no active session")
)

const (
	msgFillAllFields    = "please fill in all fields"
	msgPasswordTooShort = "password too short: minimum 6 characters"
	msgEmptyPost        = "post cannot be empty"
	msgPostTooLong      = "post exceeds the 280 character limit"
)

type Form string

const (
	FormLogin    Form = "login"
	FormRegister Form = "register"
	FormPost     Form = "post"
	FormProfile  Form = "profile"
)

type ValidationError struct {
	Form    Form
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Form, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError is a non-2xx answer from the remote API. Message is the server's
// own message, or a generic one for the operation when the body had none.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	default:
		return false
	}
}

type NetworkError struct {
	Op      string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type ErrorKind uint8

const (
	KindNone ErrorKind = iota
	KindValidation
	KindUnauthorized
	KindAPI
	KindNetwork
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Unauthorized wins over API because a 401 is both.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrAPI):
		return KindAPI
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	default:
		return KindUnknown
	}
}

// Message returns the text meant for the user, without operation prefixes.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}

	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return networkErr.Message
	}

	if errors.Is(err, ErrUnauthorized) {
		return "login required"
	}

	return err.Error()
}
