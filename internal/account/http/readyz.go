package http

import (
	"net/http"

	"github.com/openclave/accountd/internal/account/store"
	"github.com/openclave/accountd/pkg/accountsdk"
	"github.com/openclave/accountd/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks that critical dependencies are reachable. Returns 503 with per-check detail when degraded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	accountsdk.ReadyResponse	"status, checks"
//	@Failure		503	{object}	accountsdk.ReadyResponse	"status, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, accountsdk.ReadyResponse{
			Status: status,
			Checks: checks,
		})
	}
}
