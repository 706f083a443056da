package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/service"
	"github.com/openclave/accountd/internal/account/store"
	"github.com/openclave/accountd/pkg/accountsdk"
	"github.com/openclave/accountd/pkg/httpx"
	"github.com/openclave/accountd/pkg/slogx"
)

// SettingsHandler serves the account settings form: read on GET, partial
// update on PATCH.
type SettingsHandler struct {
	SettingsService *service.SettingsService
	UserService     *service.UserService
}

// principalFromContext rebuilds the request principal from the claims that
// AuthnMiddleware injected, resolving the OAuth link from storage.
func (h *SettingsHandler) principalFromContext(r *http.Request) (domain.Principal, error) {
	ctx := r.Context()

	userID, _ := ctx.Value(httpx.CtxKeyUserID).(string)
	sessionID, _ := ctx.Value(httpx.CtxKeySessionID).(string)
	name, _ := ctx.Value(httpx.CtxKeyName).(string)
	if userID == "" {
		return domain.Principal{}, service.ErrUnauthorized
	}

	linked, err := h.UserService.IsOAuthLinked(ctx, userID)
	if err != nil {
		return domain.Principal{}, err
	}

	return domain.Principal{
		ID:          userID,
		Name:        name,
		SessionID:   sessionID,
		OAuthLinked: linked,
	}, nil
}

// HandleGet handles GET /v1/settings
//
//	@Summary		Get account settings
//	@Description	Returns the authenticated user's account state, used to pre-populate the settings form.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.SettingsResponse	"Current account state"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	principal, err := h.principalFromContext(r)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			accountsdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("failed to build principal", "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	user, err := h.SettingsService.Get(ctx, principal)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			accountsdk.ErrUserNotFound.WriteError(w)
			return
		}
		log.Error("failed to load settings", "user_id", principal.ID, "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.SettingsResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Image:            user.Image,
		Role:             string(user.Role),
		TwoFactorEnabled: user.TwoFactorEnabled,
		OAuth:            principal.OAuthLinked,
	})
}

// HandleUpdate handles PATCH /v1/settings
//
//	@Summary		Update account settings
//	@Description	Applies a partial update to the authenticated user's account. Omitted fields are left untouched. Changing the password requires the current password and revokes every other session.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.UpdateSettingsRequest	true	"Fields to update"
//	@Success		200		{object}	accountsdk.UpdateSettingsResponse	"User Updated!"
//	@Failure		400		{object}	accountsdk.ErrorResponse			"Validation failure or incorrect password"
//	@Failure		401		{object}	accountsdk.ErrorResponse			"Invalid or missing session"
//	@Failure		403		{object}	accountsdk.ErrorResponse			"OAuth accounts cannot update data"
//	@Failure		404		{object}	accountsdk.ErrorResponse			"User no longer exists"
//	@Failure		500		{object}	accountsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/settings [patch].
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	principal, err := h.principalFromContext(r)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			accountsdk.ErrUnauthorized.WriteError(w)
			return
		}
		log.Error("failed to build principal", "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	var req accountsdk.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to parse settings update", "err", err)
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	update := domain.SettingsUpdate{
		Name:             req.Name,
		Password:         req.Password,
		NewPassword:      req.NewPassword,
		TwoFactorEnabled: req.TwoFactorEnabled,
	}

	if err := h.SettingsService.Update(ctx, principal, update); err != nil {
		writeSettingsError(w, log, principal.ID, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.UpdateSettingsResponse{
		Success: accountsdk.MsgUserUpdated,
	})
}

// writeSettingsError maps service errors onto the response contract. The
// first failing check decides both the status code and the message.
func writeSettingsError(w http.ResponseWriter, log *slog.Logger, userID string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		accountsdk.ErrUnauthorized.WriteError(w)
	case errors.Is(err, service.ErrOAuthAccount):
		accountsdk.ErrOAuthAccount.WriteError(w)
	case errors.Is(err, service.ErrIncorrectPassword):
		accountsdk.ErrIncorrectPassword.WriteError(w)
	case errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrNewPasswordRequired),
		errors.Is(err, domain.ErrCurrentPasswordRequired):
		apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: err.Error()}
		apiErr.WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		accountsdk.ErrUserNotFound.WriteError(w)
	default:
		log.Error("settings update failed", "user_id", userID, "err", err)
		accountsdk.ErrServerError.WriteError(w)
	}
}
