package domain

import "errors"

// MinPasswordLength is the minimum accepted length for any password field.
const MinPasswordLength = 6

var (
	ErrPasswordTooShort        = errors.New("Minimum 6 characters required")
	ErrNewPasswordRequired     = errors.New("New password is required!")
	ErrCurrentPasswordRequired = errors.New("Password is required!")
)

// SettingsUpdate is the transient input of the account settings workflow.
// All fields are optional; nil means "don't touch". Password and NewPassword
// travel together or not at all - that cross-field rule is part of the input
// contract, not something each field enforces on its own.
type SettingsUpdate struct {
	Password         *string
	NewPassword      *string
	Name             *string
	TwoFactorEnabled *bool
}

// Validate enforces the input contract: minimum password lengths and the
// both-or-neither rule for the password pair. The settings form applies the
// same rules client-side; the server re-checks because forms can be bypassed.
func (u SettingsUpdate) Validate() error {
	if u.Password != nil && len(*u.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if u.NewPassword != nil && len(*u.NewPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if u.Password != nil && u.NewPassword == nil {
		return ErrNewPasswordRequired
	}
	if u.NewPassword != nil && u.Password == nil {
		return ErrCurrentPasswordRequired
	}
	return nil
}
