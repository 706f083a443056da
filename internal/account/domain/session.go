package domain

import "time"

// Session is a revocable server-side session record. The bearer token is a
// signed JWT; this row is what makes it revocable before expiry.
type Session struct {
	ID        string
	UserID    string
	TokenHash string // SHA-256 fingerprint of the issued token
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OAuthAccount links a user to a third-party identity provider. Rows are
// created by the (out-of-scope) OAuth sign-in flow; the settings workflow
// only reads them to decide whether an account is OAuth-originated.
type OAuthAccount struct {
	UserID            string
	Provider          string
	ProviderAccountID string
	CreatedAt         time.Time
}
