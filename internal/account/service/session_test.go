package service

import (
	"context"
	"testing"
	"time"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store/drivers/sqlite"
	"github.com/openclave/accountd/pkg/jwtx"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) *SessionService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256([]byte("test-secret-test-secret-test-secret!"), "accountd-test")
	require.NoError(t, err)

	return &SessionService{Store: st, Tokens: tokens, TTL: time.Hour}
}

func TestLoginAndVerify(t *testing.T) {
	svc := newSessionFixture(t)
	ctx := context.Background()

	u := createUser(t, svc.Store, "Alice", "alice@example.com", "password1")

	token, user, err := svc.Login(ctx, "alice@example.com", "password1", "")
	require.NoError(t, err)
	require.Equal(t, u.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := svc.VerifySession(ctx, token)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.Subject)
	require.Equal(t, "Alice", claims.Name)
	require.NotEmpty(t, claims.SID)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newSessionFixture(t)
	ctx := context.Background()

	createUser(t, svc.Store, "Alice", "alice@example.com", "password1")

	_, _, err := svc.Login(ctx, "alice@example.com", "wrongpass", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password1", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_OAuthAccountHasNoPassword(t *testing.T) {
	svc := newSessionFixture(t)

	createUser(t, svc.Store, "Alice", "alice@example.com", "")

	_, _, err := svc.Login(context.Background(), "alice@example.com", "anything", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_TwoFactor(t *testing.T) {
	svc := newSessionFixture(t)
	ctx := context.Background()

	u := createUser(t, svc.Store, "Alice", "alice@example.com", "password1")

	secret := "JBSWY3DPEHPK3PXP"
	require.NoError(t, svc.Store.Users().UpdateTwoFactorSecret(ctx, u.ID, &secret))
	require.NoError(t, svc.Store.Users().UpdateUser(ctx, u.ID, domain.UserPatch{TwoFactorEnabled: boolptr(true)}))

	_, _, err := svc.Login(ctx, "alice@example.com", "password1", "")
	require.ErrorIs(t, err, ErrTwoFactorRequired)

	_, _, err = svc.Login(ctx, "alice@example.com", "password1", "000000")
	require.ErrorIs(t, err, ErrInvalidTwoFactorCode)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "alice@example.com", "password1", code)
	require.NoError(t, err)
	require.NotEmpty(t, token)
}

func TestVerifySession_RevokedByLogout(t *testing.T) {
	svc := newSessionFixture(t)
	ctx := context.Background()

	createUser(t, svc.Store, "Alice", "alice@example.com", "password1")

	token, _, err := svc.Login(ctx, "alice@example.com", "password1", "")
	require.NoError(t, err)

	claims, err := svc.VerifySession(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SID))

	_, err = svc.VerifySession(ctx, token)
	require.ErrorIs(t, err, ErrSessionRevoked)

	// Logging out twice is fine.
	require.NoError(t, svc.Logout(ctx, claims.SID))
}

func TestVerifySession_BadToken(t *testing.T) {
	svc := newSessionFixture(t)

	_, err := svc.VerifySession(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}
