package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/veerabala/linkbio/pkg/slogx"
)

// Principal is an authenticated identity produced by a ResolveFunc.
// The concrete type lives with the service layer; httpx only needs the
// username for rate limiting and logging.
type Principal interface {
	PrincipalName() string
}

// ResolveFunc maps a raw bearer token to an authenticated principal.
// It is the single choke point every protected route passes through:
// token verification and the user lookup both happen behind it.
type ResolveFunc func(ctx context.Context, token string) (Principal, error)

// AuthnMiddleware extracts the bearer token from the Authorization header,
// resolves it, and injects the principal into the request context. Every
// failure mode (missing, malformed, expired, forged token, or a deleted
// account) surfaces as the same generic 401 so callers can't probe for
// account existence.
func AuthnMiddleware(resolve ResolveFunc) Middleware {
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

			principal, err := resolve(ctx, raw)
			if err != nil {
				writeBearerError(w, "invalid or expired credentials")
				log.Warn("bearer token rejected", "err", err)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyIdentity, principal)
			ctx = context.WithValue(ctx, CtxKeyUsername, principal.PrincipalName())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
	})
}
