package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor already enabled")
	ErrTwoFactorNotEnrolled    = errors.New("two-factor not enrolled")
	ErrTwoFactorNotEnabled     = errors.New("two-factor not enabled")
)

// TwoFactorEnrollment is returned from Enroll so the client can render a QR
// code. The flag stays off until the user proves they can produce a code.
type TwoFactorEnrollment struct {
	Secret  string
	URL     string
	Issuer  string
	Account string
}

// TwoFactorService manages TOTP enrollment behind the settings page's
// two-factor toggle.
type TwoFactorService struct {
	Store  store.Store
	Issuer string
}

// Enroll generates and stores a TOTP secret for the user without enabling
// the flag. Re-enrolling while enabled is rejected; re-enrolling while
// pending just mints a fresh secret.
func (s *TwoFactorService) Enroll(ctx context.Context, userID string) (TwoFactorEnrollment, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TwoFactorEnabled {
		return TwoFactorEnrollment{}, ErrTwoFactorAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	secret := key.Secret()
	if err := s.Store.Users().UpdateTwoFactorSecret(ctx, userID, &secret); err != nil {
		return TwoFactorEnrollment{}, fmt.Errorf("failed to store TOTP secret: %w", err)
	}

	return TwoFactorEnrollment{
		Secret:  secret,
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: user.Email,
	}, nil
}

// Verify checks a code against the pending secret and, if it matches, flips
// the two-factor flag on.
func (s *TwoFactorService) Verify(ctx context.Context, userID, code string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user.TwoFactorEnabled {
		return ErrTwoFactorAlreadyEnabled
	}
	if user.TwoFactorSecret == nil || *user.TwoFactorSecret == "" {
		return ErrTwoFactorNotEnrolled
	}

	if !totp.Validate(code, *user.TwoFactorSecret) {
		return ErrInvalidTwoFactorCode
	}

	enabled := true
	if err := s.Store.Users().UpdateUser(ctx, userID, domain.UserPatch{TwoFactorEnabled: &enabled}); err != nil {
		return fmt.Errorf("failed to enable two-factor: %w", err)
	}
	return nil
}

// Disable clears the secret and the flag together so a half-disabled state
// can never be observed.
func (s *TwoFactorService) Disable(ctx context.Context, userID string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !user.TwoFactorEnabled && user.TwoFactorSecret == nil {
		return ErrTwoFactorNotEnabled
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateTwoFactorSecret(ctx, userID, nil); err != nil {
			return fmt.Errorf("failed to clear TOTP secret: %w", err)
		}
		disabled := false
		if err := tx.Users().UpdateUser(ctx, userID, domain.UserPatch{TwoFactorEnabled: &disabled}); err != nil {
			return fmt.Errorf("failed to clear two-factor flag: %w", err)
		}
		return nil
	})
}
