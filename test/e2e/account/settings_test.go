package account_test

import (
	"context"
	"testing"

	"github.com/openclave/accountd/pkg/accountsdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSettingsFlow covers the whole settings workflow against a running
// container: bootstrap, login, read the form state, rename, change the
// password, and confirm the old credentials and other sessions die.
func TestSettingsFlow(t *testing.T) {
	baseURL, cleanup := setupAccountContainer(t)
	defer cleanup()
	ctx := context.Background()

	client, session := bootstrapAdmin(t, baseURL)

	// Read the initial form state.
	settings, err := session.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, adminName, settings.Name)
	assert.Equal(t, adminEmail, settings.Email)
	assert.Equal(t, "ADMIN", settings.Role)
	assert.False(t, settings.OAuth)
	assert.False(t, settings.TwoFactorEnabled)

	// Rename only.
	resp, err := session.UpdateSettings(ctx, accountsdk.UpdateSettingsRequest{
		Name: strptr("Alicia"),
	})
	require.NoError(t, err)
	assert.Equal(t, "User Updated!", resp.Success)

	settings, err = session.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", settings.Name)
	assert.Equal(t, adminEmail, settings.Email, "email is not updatable here")

	// A second session to prove revocation later.
	otherSession, err := client.Login(ctx, accountsdk.LoginRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.NoError(t, err)

	// Change the password.
	resp, err = session.UpdateSettings(ctx, accountsdk.UpdateSettingsRequest{
		Password:    strptr(adminPassword),
		NewPassword: strptr("NewAdmin456!"),
	})
	require.NoError(t, err)
	assert.Equal(t, "User Updated!", resp.Success)

	// The caller's session survives, the other one is revoked.
	_, err = session.GetSettings(ctx)
	require.NoError(t, err)

	_, err = otherSession.GetSettings(ctx)
	require.Error(t, err)

	// Old password no longer logs in, the new one does.
	_, err = client.Login(ctx, accountsdk.LoginRequest{
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.Error(t, err)

	_, err = client.Login(ctx, accountsdk.LoginRequest{
		Email:    adminEmail,
		Password: "NewAdmin456!",
	})
	require.NoError(t, err)
}

func TestSettingsRejections(t *testing.T) {
	baseURL, cleanup := setupAccountContainer(t)
	defer cleanup()
	ctx := context.Background()

	client, session := bootstrapAdmin(t, baseURL)

	t.Run("wrong login password", func(t *testing.T) {
		bogus, err := client.Login(ctx, accountsdk.LoginRequest{
			Email:    adminEmail,
			Password: "definitely-wrong",
		})
		require.Error(t, err)
		require.Nil(t, bogus)
	})

	t.Run("wrong current password", func(t *testing.T) {
		resp, err := session.UpdateSettings(ctx, accountsdk.UpdateSettingsRequest{
			Password:    strptr("wrong-password"),
			NewPassword: strptr("Whatever123!"),
		})
		require.Error(t, err)
		assert.Empty(t, resp.Success)

		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Incorrect password!", apiErr.Message)

		// Nothing changed: the old password still works.
		_, err = client.Login(ctx, accountsdk.LoginRequest{
			Email:    adminEmail,
			Password: adminPassword,
		})
		require.NoError(t, err)
	})

	t.Run("password pair must travel together", func(t *testing.T) {
		_, err := session.UpdateSettings(ctx, accountsdk.UpdateSettingsRequest{
			Password: strptr(adminPassword),
		})
		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "New password is required!", apiErr.Message)

		_, err = session.UpdateSettings(ctx, accountsdk.UpdateSettingsRequest{
			NewPassword: strptr("NewAdmin456!"),
		})
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Password is required!", apiErr.Message)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := session.UpdateSettings(ctx, accountsdk.UpdateSettingsRequest{
			Password:    strptr(adminPassword),
			NewPassword: strptr("abc"),
		})
		var apiErr *accountsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Minimum 6 characters required", apiErr.Message)
	})
}

func TestLogoutRevokesSession(t *testing.T) {
	baseURL, cleanup := setupAccountContainer(t)
	defer cleanup()
	ctx := context.Background()

	_, session := bootstrapAdmin(t, baseURL)

	require.NoError(t, session.Logout(ctx))

	_, err := session.GetSettings(ctx)
	require.Error(t, err, "revoked token must stop verifying")
}

func TestTwoFactorFlow(t *testing.T) {
	baseURL, cleanup := setupAccountContainer(t)
	defer cleanup()
	ctx := context.Background()

	_, session := bootstrapAdmin(t, baseURL)

	enrollment, err := session.EnrollTwoFactor(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, enrollment.Secret)
	require.Contains(t, enrollment.QRCode, "otpauth://totp/")

	// Enrollment alone doesn't enable it.
	settings, err := session.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.TwoFactorEnabled)

	// Bad code is rejected.
	require.Error(t, session.VerifyTwoFactor(ctx, "000000"))

	code := totpCode(t, enrollment.Secret)
	require.NoError(t, session.VerifyTwoFactor(ctx, code))

	settings, err = session.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.TwoFactorEnabled)

	require.NoError(t, session.DisableTwoFactor(ctx))

	settings, err = session.GetSettings(ctx)
	require.NoError(t, err)
	assert.False(t, settings.TwoFactorEnabled)
}

func TestBootstrapGuards(t *testing.T) {
	baseURL, cleanup := setupAccountContainer(t)
	defer cleanup()
	ctx := context.Background()

	client := accountsdk.NewClient(baseURL)

	// Wrong token.
	_, err := client.Bootstrap(ctx, accountsdk.BootstrapRequest{
		Token: "wrong", Name: adminName, Email: adminEmail, Password: adminPassword,
	})
	require.Error(t, err)

	// Right token works once.
	_, err = client.Bootstrap(ctx, accountsdk.BootstrapRequest{
		Token: bootstrapToken, Name: adminName, Email: adminEmail, Password: adminPassword,
	})
	require.NoError(t, err)

	// Second attempt is rejected.
	_, err = client.Bootstrap(ctx, accountsdk.BootstrapRequest{
		Token: bootstrapToken, Name: "Bob", Email: "bob@example.com", Password: adminPassword,
	})
	require.Error(t, err)
}

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupAccountContainer(t)
	defer cleanup()
	ctx := context.Background()

	client := accountsdk.NewClient(baseURL)

	health, err := client.Livez(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Version)

	ready, err := client.Readyz(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", ready.Status)
	assert.Equal(t, "ok", ready.Checks["database"])
}
