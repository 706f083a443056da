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

// TwoFactorHandler manages TOTP enrollment under the settings surface.
type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

// HandleEnroll handles POST /v1/settings/2fa/enroll
//
//	@Summary		Enroll in two-factor authentication
//	@Description	Generates a TOTP secret for the authenticated user. Two-factor stays off until the code is verified.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	accountsdk.TwoFactorEnrollResponse	"Secret and provisioning URL"
//	@Failure		400	{object}	accountsdk.ErrorResponse			"Already enabled"
//	@Failure		401	{object}	accountsdk.ErrorResponse			"Invalid or missing session"
//	@Failure		500	{object}	accountsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/settings/2fa/enroll [post].
func (h *TwoFactorHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		accountsdk.ErrUnauthorized.WriteError(w)
		return
	}

	enrollment, err := h.TwoFactorService.Enroll(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrTwoFactorAlreadyEnabled) {
			apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Two-factor is already enabled!"}
			apiErr.WriteError(w)
			return
		}
		log.Error("two-factor enrollment failed", "user_id", userID, "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.TwoFactorEnrollResponse{
		Secret:  enrollment.Secret,
		QRCode:  enrollment.URL,
		Issuer:  enrollment.Issuer,
		Account: enrollment.Account,
	})
}

// HandleVerify handles POST /v1/settings/2fa/verify
//
//	@Summary		Verify two-factor enrollment
//	@Description	Checks a TOTP code against the pending secret and turns two-factor on.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body	accountsdk.TwoFactorVerifyRequest	true	"TOTP code"
//	@Success		204		"Two-factor enabled"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Invalid code or not enrolled"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/settings/2fa/verify [post].
func (h *TwoFactorHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		accountsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req accountsdk.TwoFactorVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.TwoFactorService.Verify(ctx, userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTwoFactorCode):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid two-factor code!"}
			apiErr.WriteError(w)
		case errors.Is(err, service.ErrTwoFactorNotEnrolled):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Two-factor enrollment not started!"}
			apiErr.WriteError(w)
		case errors.Is(err, service.ErrTwoFactorAlreadyEnabled):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Two-factor is already enabled!"}
			apiErr.WriteError(w)
		default:
			log.Error("two-factor verification failed", "user_id", userID, "err", err)
			accountsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDisable handles DELETE /v1/settings/2fa
//
//	@Summary		Disable two-factor authentication
//	@Description	Clears the TOTP secret and the two-factor flag together.
//	@Tags			TwoFactor
//	@Security		BearerAuth
//	@Produce		json
//	@Success		204	"Two-factor disabled"
//	@Failure		400	{object}	accountsdk.ErrorResponse	"Not enabled"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or missing session"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/settings/2fa [delete].
func (h *TwoFactorHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := ctx.Value(httpx.CtxKeyUserID).(string)
	if !ok || userID == "" {
		accountsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.TwoFactorService.Disable(ctx, userID); err != nil {
		if errors.Is(err, service.ErrTwoFactorNotEnabled) {
			apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: "Two-factor is not enabled!"}
			apiErr.WriteError(w)
			return
		}
		log.Error("two-factor disable failed", "user_id", userID, "err", err)
		accountsdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
