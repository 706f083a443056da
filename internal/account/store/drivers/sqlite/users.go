package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openclave/accountd/internal/account/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, email_verified, image, role,
	two_factor_enabled, two_factor_secret, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	if u.Image == "" {
		u.Image = domain.DefaultImage
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Name,
		u.Email,
		mapOptionalString(u.PasswordHash),
		nullableTime(u.EmailVerified),
		u.Image,
		string(u.Role),
		u.TwoFactorEnabled,
		mapOptionalString(u.TwoFactorSecret),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapConstraint(err)
}

// UpdateUser applies only the non-nil patch fields. COALESCE keeps the
// stored value for nil arguments, which is exactly the partial-update
// contract: fields absent from the request remain untouched.
func (r *usersRepo) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET
			name               = COALESCE(?, name),
			password_hash      = COALESCE(?, password_hash),
			two_factor_enabled = COALESCE(?, two_factor_enabled),
			updated_at         = ?
		 WHERE id = ?`,
		patch.Name,
		patch.PasswordHash,
		patch.TwoFactorEnabled,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) UpdateTwoFactorSecret(ctx context.Context, userID string, secret *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET two_factor_secret = ?, updated_at = ? WHERE id = ?`,
		mapOptionalString(secret),
		time.Now().UTC(),
		userID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u             domain.User
		passwordHash  sql.NullString
		emailVerified sql.NullTime
		role          string
		totpSecret    sql.NullString
	)

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&passwordHash,
		&emailVerified,
		&u.Image,
		&role,
		&u.TwoFactorEnabled,
		&totpSecret,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.PasswordHash = mapNullStringPtr(passwordHash)
	u.EmailVerified = mapNullTimePtr(emailVerified)
	u.Role = domain.Role(role)
	u.TwoFactorSecret = mapNullStringPtr(totpSecret)
	return u, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
