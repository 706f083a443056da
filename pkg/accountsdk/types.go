package accountsdk

// BootstrapRequest creates the first (admin) account on an empty instance.
type BootstrapRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BootstrapResponse reports the created admin account.
type BootstrapResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest authenticates with email and password. Code carries the TOTP
// code and is only required when the account has two-factor enabled.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code,omitempty"`
}

// LoginResponse carries the bearer session token.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // always "Bearer"
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// SettingsResponse is the current account state backing the settings form.
type SettingsResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Image            string `json:"image"`
	Role             string `json:"role"`
	TwoFactorEnabled bool   `json:"isTwoFactorEnabled"`
	OAuth            bool   `json:"isOAuth"`
}

// UpdateSettingsRequest is the settings form submission. Every field is
// optional; omitted fields are left untouched. Password and NewPassword must
// travel together.
type UpdateSettingsRequest struct {
	Name             *string `json:"name,omitempty"`
	Password         *string `json:"password,omitempty"`
	NewPassword      *string `json:"newPassword,omitempty"`
	TwoFactorEnabled *bool   `json:"isTwoFactorEnabled,omitempty"`
}

// UpdateSettingsResponse mirrors the settings form result: exactly one of
// Success or Error is set.
type UpdateSettingsResponse struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TwoFactorEnrollResponse carries the freshly minted TOTP secret.
type TwoFactorEnrollResponse struct {
	Secret  string `json:"secret"`
	QRCode  string `json:"qr_code"`
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}

// TwoFactorVerifyRequest confirms enrollment with a live code.
type TwoFactorVerifyRequest struct {
	Code string `json:"code"`
}

// HealthResponse is returned by the liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// ReadyResponse is returned by the readiness probe.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse is the generic error envelope. The message strings are part
// of the contract; clients display them verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}
