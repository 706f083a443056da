package domain

import "time"

// Role is the coarse authorization level of a user. Settings updates never
// change it; role management belongs to an admin surface this service does
// not expose.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// DefaultImage is the avatar URI assigned to accounts that never uploaded one.
const DefaultImage = "https://api.dicebear.com/8.x/initials/svg"

type User struct {
	ID               string
	Name             string
	Email            string     // unique across all users
	PasswordHash     *string    // argon2 encoded; nil for OAuth-originated accounts
	EmailVerified    *time.Time // nil until the verification flow completes
	Image            string
	Role             Role
	TwoFactorEnabled bool
	TwoFactorSecret  *string // TOTP secret (nullable, base32 encoded)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserPatch is a partial update. Nil fields are left unchanged; this is the
// only mutation shape the settings workflow may produce, so id, email and
// role are structurally unpatchable.
type UserPatch struct {
	Name             *string
	PasswordHash     *string
	TwoFactorEnabled *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.PasswordHash == nil && p.TwoFactorEnabled == nil
}
