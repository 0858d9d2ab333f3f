package domain

import (
	"fmt"
	"strings"
)

type View uint8

const (
	ViewLogin View = iota
	ViewRegister
	ViewFeed
	ViewProfile
)

func AllViews() []View {
	return []View{ViewLogin, ViewRegister, ViewFeed, ViewProfile}
}

func (v View) RequiresSession() bool {
	return v == ViewFeed || v == ViewProfile
}

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewFeed:
		return "feed"
	case ViewProfile:
		return "profile"
	default:
		return fmt.Sprintf("view(%d)", uint8(v))
	}
}

func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func ParseView(raw string) (View, error) {
	for _, view := range AllViews() {
		if strings.EqualFold(strings.TrimSpace(raw), view.String()) {
			return view, nil
		}
	}

	return 0, fmt.Errorf("unknown view %q", raw)
}

type SessionState uint8

const (
	StateAnonymous SessionState = iota
	StateAuthenticating
	StateAuthenticated
	StateSessionExpiring
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateSessionExpiring:
		return "session_expiring"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
