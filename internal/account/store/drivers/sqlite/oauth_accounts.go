package sqlite

import (
	"context"
	"time"

	"github.com/openclave/accountd/internal/account/domain"
)

type oauthAccountsRepo struct {
	db dbtx
}

func (r *oauthAccountsRepo) CreateOAuthAccount(ctx context.Context, a domain.OAuthAccount) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO oauth_accounts (user_id, provider, provider_account_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		a.UserID, a.Provider, a.ProviderAccountID, a.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *oauthAccountsRepo) HasOAuthAccount(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM oauth_accounts WHERE user_id = ?`, userID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
