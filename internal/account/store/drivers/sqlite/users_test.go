package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
	"github.com/openclave/accountd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func seedUser(t *testing.T, st *Store, email string) domain.User {
	t.Helper()

	hash := "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Alice",
		Email:        email,
		PasswordHash: &hash,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))

	created, err := st.Users().GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	return created
}

func TestCreateAndGetUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")
	require.Equal(t, "Alice", u.Name)
	require.Equal(t, domain.RoleUser, u.Role, "role defaults to USER")
	require.Equal(t, domain.DefaultImage, u.Image, "image defaults to the avatar service")
	require.False(t, u.TwoFactorEnabled)
	require.Nil(t, u.TwoFactorSecret)
	require.Nil(t, u.EmailVerified)
	require.NotNil(t, u.PasswordHash)

	byEmail, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = st.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedUser(t, st, "alice@example.com")

	dup := domain.User{
		ID:    idx.New().String(),
		Name:  "Impostor",
		Email: "alice@example.com",
	}
	err := st.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUpdateUser_PartialPatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")
	originalHash := *u.PasswordHash

	// Name-only patch leaves the hash and the two-factor flag alone.
	require.NoError(t, st.Users().UpdateUser(ctx, u.ID, domain.UserPatch{Name: strptr("Alicia")}))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alicia", got.Name)
	require.Equal(t, originalHash, *got.PasswordHash)
	require.False(t, got.TwoFactorEnabled)

	// Flag-only patch leaves the name alone.
	require.NoError(t, st.Users().UpdateUser(ctx, u.ID, domain.UserPatch{TwoFactorEnabled: boolptr(true)}))

	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Alicia", got.Name)
	require.True(t, got.TwoFactorEnabled)
}

func TestUpdateUser_CannotTouchEmailOrRole(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")
	require.NoError(t, st.Users().UpdateUser(ctx, u.ID, domain.UserPatch{
		Name:             strptr("Alicia"),
		PasswordHash:     strptr("$argon2id$v=19$m=19456,t=2,p=1$bmV3c2FsdA$bmV3aGFzaA"),
		TwoFactorEnabled: boolptr(true),
	}))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.Role, got.Role)
	require.Equal(t, u.ID, got.ID)
}

func TestUpdateUser_NotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.Users().UpdateUser(context.Background(), "missing", domain.UserPatch{Name: strptr("x")})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateUser_BumpsUpdatedAt(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, st.Users().UpdateUser(ctx, u.ID, domain.UserPatch{Name: strptr("Alicia")}))

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.UpdatedAt.After(u.UpdatedAt))
}

func TestUpdateTwoFactorSecret(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")

	require.NoError(t, st.Users().UpdateTwoFactorSecret(ctx, u.ID, strptr("JBSWY3DPEHPK3PXP")))
	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TwoFactorSecret)
	require.Equal(t, "JBSWY3DPEHPK3PXP", *got.TwoFactorSecret)

	// nil clears it again.
	require.NoError(t, st.Users().UpdateTwoFactorSecret(ctx, u.ID, nil))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Nil(t, got.TwoFactorSecret)
}

func TestIsEmpty(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	seedUser(t, st, "alice@example.com")

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestOAuthAccounts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, st, "alice@example.com")

	linked, err := st.OAuthAccounts().HasOAuthAccount(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, linked)

	require.NoError(t, st.OAuthAccounts().CreateOAuthAccount(ctx, domain.OAuthAccount{
		UserID:            u.ID,
		Provider:          "github",
		ProviderAccountID: "gh-123",
	}))

	linked, err = st.OAuthAccounts().HasOAuthAccount(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, linked)
}
