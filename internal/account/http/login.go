package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openclave/accountd/internal/account/service"
	"github.com/openclave/accountd/pkg/accountsdk"
	"github.com/openclave/accountd/pkg/httpx"
	"github.com/openclave/accountd/pkg/slogx"
)

// LoginHandler issues session tokens against email/password (plus TOTP when
// enabled).
type LoginHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP handles POST /v1/login
//
//	@Summary		Log in
//	@Description	Authenticates with email and password and returns a bearer session token. Accounts with two-factor enabled must also supply a TOTP code.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse	"Session token"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Malformed request"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Bad credentials or missing/invalid two-factor code"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, user, err := h.SessionService.Login(ctx, req.Email, req.Password, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password!"}
			apiErr.WriteError(w)
		case errors.Is(err, service.ErrTwoFactorRequired):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusUnauthorized, Message: "Two-factor code required!"}
			apiErr.WriteError(w)
		case errors.Is(err, service.ErrInvalidTwoFactorCode):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid two-factor code!"}
			apiErr.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			accountsdk.ErrServerError.WriteError(w)
		}
		return
	}

	log.Info("user logged in", "user_id", user.ID)

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.SessionService.TTL.Seconds()),
	})
}

// LogoutHandler revokes the caller's session.
type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP handles POST /v1/logout
//
//	@Summary		Log out
//	@Description	Revokes the caller's session server-side. The token stops verifying immediately.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		204	"Session revoked"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sessionID, _ := ctx.Value(httpx.CtxKeySessionID).(string)
	if sessionID == "" {
		accountsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.SessionService.Logout(ctx, sessionID); err != nil {
		log.Error("logout failed", "session_id", sessionID, "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
