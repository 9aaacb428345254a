package http

import (
	"net/http"

	"github.com/veerabala/linkbio/pkg/httpx"
)

type MeHandler struct{}

// ServeHTTP returns the account behind the bearer token.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromCtx(r.Context())
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(identity.User))
}
