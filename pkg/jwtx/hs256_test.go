package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	h, err := NewHS256([]byte("0123456789abcdef0123456789abcdef"), "accountd-test")
	require.NoError(t, err)
	return h
}

func TestNewHS256_RejectsShortSecret(t *testing.T) {
	_, err := NewHS256([]byte("too-short"), "accountd-test")
	require.Error(t, err)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	h := newTestHS256(t)

	claims := NewSessionClaims("user-1", "session-1", "Alice", "accountd-test", time.Hour, time.Now().UTC())
	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "session-1", got.SID)
	require.Equal(t, "Alice", got.Name)
}

func TestVerify_WrongSecret(t *testing.T) {
	h := newTestHS256(t)
	other, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "accountd-test")
	require.NoError(t, err)

	token, err := h.Sign(NewSessionClaims("user-1", "sid", "", "accountd-test", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_Expired(t *testing.T) {
	h := newTestHS256(t)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	token, err := h.Sign(NewSessionClaims("user-1", "sid", "", "accountd-test", time.Hour, issued))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	h := newTestHS256(t)

	token, err := h.Sign(NewSessionClaims("user-1", "sid", "", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerify_Garbage(t *testing.T) {
	h := newTestHS256(t)

	_, err := h.Verify("not.a.token")
	require.Error(t, err)

	_, err = h.Verify("")
	require.Error(t, err)
}
