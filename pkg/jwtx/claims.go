package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for browser session tokens.
// Long enough for a settings session, short enough that stale tokens die
// on their own even if the session row is never cleaned up.
const DefaultSessionTTL = 24 * time.Hour

// SessionClaims are the claims carried by an accountd session token. The
// subject is the user id; SID ties the token to a revocable session row so
// a signed token alone is never proof of a live session.
type SessionClaims struct {
	jwt.RegisteredClaims

	// SID is the server-side session record id.
	SID string `json:"sid,omitempty"`

	// Name is the user's display name, carried for form pre-population so
	// the settings page doesn't need a round trip to render.
	Name string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct session claims.
func NewSessionClaims(subject, sid, name, issuer string, ttl time.Duration, now time.Time) SessionClaims {
	return SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SID:  sid,
		Name: name,
	}
}

// ValidateIssuer checks if the issuer matches the expected value.
func (c *SessionClaims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *SessionClaims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
