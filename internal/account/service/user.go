package service

import (
	"context"
	"fmt"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
)

// UserService exposes the user lookups the HTTP layer needs to build a
// principal and render the settings form.
type UserService struct {
	Store store.Store
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateUser applies a partial patch. Callers decide policy; this is the
// bare mutation.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error {
	if err := s.Store.Users().UpdateUser(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// IsOAuthLinked reports whether the user signed up through an identity
// provider. The answer comes from storage every time; session claims are
// minted at login and can go stale.
func (s *UserService) IsOAuthLinked(ctx context.Context, userID string) (bool, error) {
	linked, err := s.Store.OAuthAccounts().HasOAuthAccount(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check oauth link: %w", err)
	}
	return linked, nil
}
