package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
	"github.com/openclave/accountd/pkg/cryptox"
	"github.com/openclave/accountd/pkg/slogx"
)

var (
	ErrUnauthorized      = errors.New("no authenticated user")
	ErrOAuthAccount      = errors.New("oauth accounts cannot update data")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// SettingsService implements the account settings update workflow: an
// authenticated, password-backed user submits a partial update and only the
// fields they touched are persisted.
type SettingsService struct {
	Store store.Store
}

// Get returns the settings view backing the form: the stored user plus
// whether the account is OAuth-linked (the form disables the password and
// two-factor fields for those).
func (s *SettingsService) Get(ctx context.Context, principal domain.Principal) (domain.User, error) {
	if principal.ID == "" {
		return domain.User{}, ErrUnauthorized
	}

	user, err := s.Store.Users().GetUserByID(ctx, principal.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// Update applies a settings change for the given principal. Checks run in a
// fixed order and the first failure wins:
//
//  1. principal must be present (ErrUnauthorized)
//  2. OAuth-linked accounts may not update anything (ErrOAuthAccount)
//  3. the input contract must hold (domain.SettingsUpdate.Validate)
//  4. a password change requires the current password to verify
//     (ErrIncorrectPassword)
//
// Nothing is written until every check passes. A successful password change
// additionally revokes every other session of the user.
func (s *SettingsService) Update(ctx context.Context, principal domain.Principal, req domain.SettingsUpdate) error {
	if principal.ID == "" {
		return ErrUnauthorized
	}
	if principal.OAuthLinked {
		return ErrOAuthAccount
	}
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.Store.Users().GetUserByID(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	patch := domain.UserPatch{
		Name:             req.Name,
		TwoFactorEnabled: req.TwoFactorEnabled,
	}

	passwordChanged := false
	if req.Password != nil && req.NewPassword != nil && user.PasswordHash != nil {
		if err := cryptox.VerifyPassword(*req.Password, *user.PasswordHash); err != nil {
			if errors.Is(err, cryptox.ErrPasswordMismatch) {
				return ErrIncorrectPassword
			}
			return fmt.Errorf("failed to verify password: %w", err)
		}

		hash, err := cryptox.HashPassword(*req.NewPassword)
		if err != nil {
			return fmt.Errorf("failed to hash new password: %w", err)
		}
		patch.PasswordHash = &hash
		passwordChanged = true
	}

	if patch.IsEmpty() {
		// Nothing to persist; the form may submit unchanged values.
		return nil
	}

	if err := s.Store.Users().UpdateUser(ctx, user.ID, patch); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if passwordChanged {
		// Keep the caller's session, drop every other one. Best effort:
		// the password change itself already landed.
		if err := s.Store.Sessions().DeleteUserSessions(ctx, user.ID, principal.SessionID); err != nil {
			slogx.FromContext(ctx).Warn("failed to revoke other sessions after password change",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	return nil
}
