package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/service"
	"github.com/openclave/accountd/pkg/accountsdk"
	"github.com/openclave/accountd/pkg/httpx"
	"github.com/openclave/accountd/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles POST /v1/bootstrap
//
//	@Summary		Bootstrap the account service
//	@Description	Creates the first (admin) account on an empty instance. Guarded by a pre-configured token and only usable once.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accountsdk.BootstrapRequest		true	"Bootstrap token and admin account details"
//	@Success		201		{object}	accountsdk.BootstrapResponse	"Created admin account"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"Invalid request body or weak password"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"Wrong bootstrap token or already bootstrapped"
//	@Failure		404		{object}	accountsdk.ErrorResponse		"Bootstrap not enabled"
//	@Failure		500		{object}	accountsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if h.BootstrapService.Token == "" {
		apiErr := &accountsdk.APIError{StatusCode: http.StatusNotFound, Message: "Bootstrap endpoint is not enabled!"}
		apiErr.WriteError(w)
		return
	}

	var req accountsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		accountsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	userID, err := h.BootstrapService.Bootstrap(ctx, req.Token, service.BootstrapData{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready),
			errors.Is(err, service.ErrBootstrapUnauthorized):
			accountsdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, domain.ErrPasswordTooShort):
			apiErr := &accountsdk.APIError{StatusCode: http.StatusBadRequest, Message: err.Error()}
			apiErr.WriteError(w)
		default:
			log.Error("bootstrap failed", "err", err)
			accountsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, accountsdk.BootstrapResponse{UserID: userID})
}
