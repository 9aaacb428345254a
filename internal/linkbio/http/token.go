package http

import (
	"errors"
	"net/http"

	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

// TokenResponse is the login success body. External clients depend on this
// exact shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type TokenHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges form-encoded credentials for a bearer token. Unknown
// usernames and wrong passwords produce the same 401.
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "Invalid form data")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" {
		writeBadRequest(w, "username is required")
		return
	}
	if password == "" {
		writeBadRequest(w, "password is required")
		return
	}

	token, err := h.AuthService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "Incorrect username or password",
			})
			return
		}
		log.Error("failed to issue token", "err", err)
		writeServerError(w, "Failed to issue token")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
