// Package tokenclaims reads the registered claims of the bearer token without
// verifying its signature. The client never holds the signing key, so the
// claims only serve as hints: the server stays the authority on validity.
package tokenclaims

import (
	"errors"
	"time"

	"github.com/bnema/minitwitter-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

var ErrOpaqueToken = errors.New("token is not a jwt")

type Inspector struct {
	parser *jwt.Parser
}

var _ ports.TokenInspector = (*Inspector)(nil)

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

func (i *Inspector) Claims(token string) (Claims, error) {
	registered := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, registered); err != nil {
		return Claims{}, errors.Join(ErrOpaqueToken, err)
	}

	var claims Claims
	if sub, err := registered.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if claims.Subject == "" {
		if id, ok := registered["id"].(string); ok {
			claims.Subject = id
		}
	}
	if exp, err := registered.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// Expired reports whether token carries an exp claim at or before now.
// Opaque tokens and tokens without exp are never expired here.
func (i *Inspector) Expired(token string, now time.Time) bool {
	claims, err := i.Claims(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return false
	}

	return !now.Before(claims.ExpiresAt)
}

func (i *Inspector) Subject(token string) string {
	claims, err := i.Claims(token)
	if err != nil {
		return ""
	}

	return claims.Subject
}
