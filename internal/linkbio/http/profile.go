package http

import (
	"errors"
	"net/http"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

type ProfileResponse struct {
	Username string           `json:"username"`
	FullName string           `json:"full_name"`
	Bio      string           `json:"bio"`
	Links    []LinkResponse   `json:"links"`
	Settings SettingsResponse `json:"settings"`
}

func toProfileResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		Username: p.Username,
		FullName: p.FullName,
		Bio:      p.Bio,
		Links:    toLinkResponses(p.Links),
		Settings: toSettingsResponse(p.Settings),
	}
}

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP returns the public profile for the username in the path.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	if username == "" {
		writeBadRequest(w, "username is required")
		return
	}

	profile, err := h.ProfileService.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "User not found")
			return
		}
		log.Error("failed to load profile", "username", username, "err", err)
		writeServerError(w, "Failed to load profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(profile))
}
