package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256 signs and verifies session tokens with a single shared secret.
// Session tokens never leave the service boundary (same party signs and
// verifies), so a symmetric key is enough here - no JWKS, no rotation
// machinery.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 creates a signer/verifier from the raw secret bytes.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < 32 {
		return nil, errors.New("jwtx: HS256 secret must be at least 32 bytes")
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// Issuer returns the issuer stamped on every signed token.
func (h *HS256) Issuer() string { return h.issuer }

// Sign takes the claims and turns them into a signed JWT string.
func (h *HS256) Sign(claims SessionClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify parses the token, checks the signature and algorithm, and
// validates issuer and expiry. Expiry validation here is intentional
// duplication of the library's: the caller gets our sentinel errors
// instead of library-internal ones.
func (h *HS256) Verify(token string) (SessionClaims, error) {
	var claims SessionClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch):
			return SessionClaims{}, ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return SessionClaims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return SessionClaims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return SessionClaims{}, ErrNotYetValid
		default:
			return SessionClaims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return SessionClaims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return SessionClaims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return SessionClaims{}, err
	}

	return claims, nil
}
