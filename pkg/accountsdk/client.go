package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to an accountd instance. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL (e.g. "http://localhost:8080").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// Bootstrap creates the first admin account.
func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (BootstrapResponse, error) {
	var resp BootstrapResponse
	err := c.do(ctx, http.MethodPost, "/v1/bootstrap", "", req, &resp)
	return resp, err
}

// Login authenticates and returns an authenticated Session on success.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token}, nil
}

// Livez hits the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp)
	return resp, err
}

// Readyz hits the readiness probe.
func (c *Client) Readyz(ctx context.Context) (ReadyResponse, error) {
	var resp ReadyResponse
	err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp)
	return resp, err
}

// Session is an authenticated client bound to one bearer token.
type Session struct {
	client *Client
	token  string
}

// Token exposes the raw bearer token.
func (s *Session) Token() string { return s.token }

// GetSettings fetches the current account state.
func (s *Session) GetSettings(ctx context.Context) (SettingsResponse, error) {
	var resp SettingsResponse
	err := s.client.do(ctx, http.MethodGet, "/v1/settings", s.token, nil, &resp)
	return resp, err
}

// UpdateSettings submits a partial settings change.
func (s *Session) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (UpdateSettingsResponse, error) {
	var resp UpdateSettingsResponse
	err := s.client.do(ctx, http.MethodPatch, "/v1/settings", s.token, req, &resp)
	return resp, err
}

// EnrollTwoFactor starts TOTP enrollment.
func (s *Session) EnrollTwoFactor(ctx context.Context) (TwoFactorEnrollResponse, error) {
	var resp TwoFactorEnrollResponse
	err := s.client.do(ctx, http.MethodPost, "/v1/settings/2fa/enroll", s.token, nil, &resp)
	return resp, err
}

// VerifyTwoFactor confirms enrollment with a live code.
func (s *Session) VerifyTwoFactor(ctx context.Context, code string) error {
	return s.client.do(ctx, http.MethodPost, "/v1/settings/2fa/verify", s.token, TwoFactorVerifyRequest{Code: code}, nil)
}

// DisableTwoFactor turns two-factor off again.
func (s *Session) DisableTwoFactor(ctx context.Context) error {
	return s.client.do(ctx, http.MethodDelete, "/v1/settings/2fa", s.token, nil, nil)
}

// Logout revokes the session server-side.
func (s *Session) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/v1/logout", s.token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("accountsdk: failed to encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("accountsdk: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("accountsdk: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("accountsdk: failed to decode response: %w", err)
		}
	}
	return nil
}
