package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/openclave/accountd/pkg/jwtx"
	"github.com/openclave/accountd/pkg/slogx"
)

// SessionVerifier checks a bearer token and returns the session claims if
// the token is valid AND the backing session record is still live. The
// context is required because liveness is a storage lookup, not just a
// signature check.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (jwtx.SessionClaims, error)
}

// AuthnMiddleware verifies the bearer session token and injects the
// authenticated identity into the request context.
func AuthnMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.VerifySession(ctx, raw)
			if err != nil {
				log.Warn("session verification failed", "err", err)
				writeBearerError(w, "session verification failed")
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithSession(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithSession(ctx context.Context, c jwtx.SessionClaims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeySessionID, c.SID)
	ctx = context.WithValue(ctx, CtxKeyName, c.Name)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
