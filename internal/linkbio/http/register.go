package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

var validate = validator.New()

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"max=128"`
}

// UserResponse is the public view of an account. The password hash never
// appears in any response.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Bio:      u.Bio,
	}
}

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP creates a new account from a JSON body and returns the stored
// user. Duplicate usernames and emails both map to 409.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, "Invalid registration fields: "+err.Error())
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
				Error:            "duplicate_account",
				ErrorDescription: "Username or email is already taken",
			})
			return
		}
		log.Error("failed to register user", "err", err)
		writeServerError(w, "Failed to register user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}
