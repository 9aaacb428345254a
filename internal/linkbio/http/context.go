package http

import (
	"context"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/pkg/httpx"
)

// identityFromCtx returns the identity injected by httpx.AuthnMiddleware.
// The second return is false only if a handler was wired without the
// middleware, which is a routing bug rather than a client error.
func identityFromCtx(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(httpx.CtxKeyIdentity).(domain.Identity)
	return identity, ok
}
