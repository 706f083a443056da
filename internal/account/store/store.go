package store

import (
	"context"
	"errors"

	"github.com/openclave/accountd/internal/account/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	OAuthAccounts() OAuthAccounts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. Email is unique by schema.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser applies exactly the non-nil fields of the patch to the
	// matching row and bumps updated_at. Returns ErrNotFound when no row
	// matches id.
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error

	// UpdateTwoFactorSecret sets or clears (nil) the TOTP secret. Kept off
	// UserPatch so the settings update path can never write it.
	UpdateTwoFactorSecret(ctx context.Context, userID string, secret *string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns the session record, or ErrNotFound if it was
	// revoked or never existed.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// DeleteSession revokes a single session (logout).
	DeleteSession(ctx context.Context, id string) error

	// DeleteUserSessions revokes every session belonging to userID except
	// exceptID (pass "" to revoke all). Used after a password change.
	DeleteUserSessions(ctx context.Context, userID, exceptID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type OAuthAccounts interface {
	// CreateOAuthAccount links a user to an identity provider.
	CreateOAuthAccount(ctx context.Context, a domain.OAuthAccount) error

	// HasOAuthAccount reports whether any provider link exists for the user.
	HasOAuthAccount(ctx context.Context, userID string) (bool, error)
}
