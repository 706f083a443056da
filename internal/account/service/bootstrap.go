package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
	"github.com/openclave/accountd/pkg/cryptox"
	"github.com/openclave/accountd/pkg/idx"
	"github.com/openclave/accountd/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapData is the input for creating the first account.
type BootstrapData struct {
	Name     string
	Email    string
	Password string
}

// BootstrapService creates the first (admin) user on an empty database,
// guarded by a pre-configured token so a freshly deployed instance can't be
// claimed by whoever finds it first.
type BootstrapService struct {
	Store store.Store
	Token string
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap creates the admin user and returns its id.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, req BootstrapData) (string, error) {
	l := slogx.FromContext(ctx)

	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return "", ErrBootstrapAlready
	}

	if token != s.Token {
		l.Warn("unauthorized bootstrap attempt")
		return "", ErrBootstrapUnauthorized
	}

	if len(req.Password) < domain.MinPasswordLength {
		return "", domain.ErrPasswordTooShort
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return "", errors.New("failed to create admin user")
	}

	adminID := idx.New().String()
	err = s.Store.Users().CreateUser(ctx, domain.User{
		ID:           adminID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		l.Error("failed to create admin user",
			slog.String("admin_user_id", adminID),
			slog.Any("error", err),
		)
		return "", errors.New("failed to create admin user")
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", adminID))
	return adminID, nil
}
