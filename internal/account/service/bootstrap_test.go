package service

import (
	"context"
	"testing"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newBootstrapFixture(t *testing.T) *BootstrapService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &BootstrapService{Store: st, Token: "bootstrap-token"}
}

func TestBootstrap(t *testing.T) {
	svc := newBootstrapFixture(t)
	ctx := context.Background()

	bootstrapped, err := svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, bootstrapped)

	id, err := svc.Bootstrap(ctx, "bootstrap-token", BootstrapData{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	u, err := svc.Store.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, u.Role)
	require.NotNil(t, u.PasswordHash)

	bootstrapped, err = svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.True(t, bootstrapped)

	// Second attempt is rejected regardless of token.
	_, err = svc.Bootstrap(ctx, "bootstrap-token", BootstrapData{
		Name: "Admin2", Email: "admin2@example.com", Password: "password1",
	})
	require.ErrorIs(t, err, ErrBootstrapAlready)
}

func TestBootstrap_WrongToken(t *testing.T) {
	svc := newBootstrapFixture(t)

	_, err := svc.Bootstrap(context.Background(), "nope", BootstrapData{
		Name: "Admin", Email: "admin@example.com", Password: "password1",
	})
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestBootstrap_ShortPassword(t *testing.T) {
	svc := newBootstrapFixture(t)

	_, err := svc.Bootstrap(context.Background(), "bootstrap-token", BootstrapData{
		Name: "Admin", Email: "admin@example.com", Password: "abc",
	})
	require.ErrorIs(t, err, domain.ErrPasswordTooShort)
}
