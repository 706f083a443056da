package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
	"github.com/openclave/accountd/pkg/cryptox"
	"github.com/openclave/accountd/pkg/idx"
	"github.com/openclave/accountd/pkg/jwtx"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrTwoFactorRequired    = errors.New("two-factor code required")
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")
	ErrSessionRevoked       = errors.New("session revoked")
)

// SessionService issues and verifies bearer sessions. A session is both a
// signed JWT (carried by the client) and a database row (so it can be revoked
// before it expires).
type SessionService struct {
	Store  store.Store
	Tokens *jwtx.HS256
	TTL    time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// Login authenticates by email and password, plus a TOTP code when the
// account has two-factor enabled. On success it persists a session row and
// returns the signed token.
func (s *SessionService) Login(ctx context.Context, email, password, totpCode string) (string, domain.User, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	// OAuth-originated accounts have no hash and cannot log in here.
	if user.PasswordHash == nil {
		return "", domain.User{}, ErrInvalidCredentials
	}
	if err := cryptox.VerifyPassword(password, *user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, fmt.Errorf("failed to verify password: %w", err)
	}

	if user.TwoFactorEnabled && user.TwoFactorSecret != nil {
		if totpCode == "" {
			return "", domain.User{}, ErrTwoFactorRequired
		}
		if !totp.Validate(totpCode, *user.TwoFactorSecret) {
			return "", domain.User{}, ErrInvalidTwoFactorCode
		}
	}

	sid := idx.New().String()
	now := time.Now().UTC()

	claims := jwtx.NewSessionClaims(user.ID, sid, user.Name, s.Tokens.Issuer(), s.ttl(), now)
	token, err := s.Tokens.Sign(claims)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	session := domain.Session{
		ID:        sid,
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to create session: %w", err)
	}

	return token, user, nil
}

// VerifySession checks the token signature and that the session row still
// exists. It satisfies httpx.SessionVerifier.
func (s *SessionService) VerifySession(ctx context.Context, token string) (jwtx.SessionClaims, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return jwtx.SessionClaims{}, err
	}

	session, err := s.Store.Sessions().GetSessionByID(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jwtx.SessionClaims{}, ErrSessionRevoked
		}
		return jwtx.SessionClaims{}, fmt.Errorf("failed to get session: %w", err)
	}
	if time.Now().UTC().After(session.ExpiresAt) {
		return jwtx.SessionClaims{}, ErrSessionRevoked
	}

	return claims, nil
}

// Logout revokes the caller's session. Revoking an already-gone session is
// not an error from the client's point of view.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	err := s.Store.Sessions().DeleteSession(ctx, sessionID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
