package httpx

import "context"

type ctxKey string

const (
	// CtxKeyIdentity carries the resolved authenticated principal.
	CtxKeyIdentity ctxKey = "identity"

	// CtxKeyUsername carries the authenticated username for rate limiting
	// and logging without forcing those layers to know the identity type.
	CtxKeyUsername ctxKey = "username"
)

func usernameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}
