package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

// SettingsPatchRequest mirrors domain.SettingsPatch on the wire. Fields
// absent from the body stay nil and are left untouched; unknown fields are
// silently dropped by the decoder and can never reach storage.
type SettingsPatchRequest struct {
	Theme            *string `json:"theme"`
	Layout           *string `json:"layout"`
	ShowIcons        *bool   `json:"show_icons"`
	BackgroundEffect *string `json:"background_effect"`
	FontFamily       *string `json:"font_family"`
	ButtonShape      *string `json:"button_shape"`
	ButtonStyle      *string `json:"button_style"`
	ColorPalette     *string `json:"color_palette"`
	FeaturedLinks    *string `json:"featured_links"`
}

func (req SettingsPatchRequest) toPatch() domain.SettingsPatch {
	return domain.SettingsPatch{
		Theme:            req.Theme,
		Layout:           req.Layout,
		ShowIcons:        req.ShowIcons,
		BackgroundEffect: req.BackgroundEffect,
		FontFamily:       req.FontFamily,
		ButtonShape:      req.ButtonShape,
		ButtonStyle:      req.ButtonStyle,
		ColorPalette:     req.ColorPalette,
		FeaturedLinks:    req.FeaturedLinks,
	}
}

type SettingsResponse struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	Theme            string `json:"theme"`
	Layout           string `json:"layout"`
	ShowIcons        bool   `json:"show_icons"`
	BackgroundEffect string `json:"background_effect"`
	FontFamily       string `json:"font_family"`
	ButtonShape      string `json:"button_shape"`
	ButtonStyle      string `json:"button_style"`
	ColorPalette     string `json:"color_palette"`
	FeaturedLinks    string `json:"featured_links"`
}

func toSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		Theme:            s.Theme,
		Layout:           s.Layout,
		ShowIcons:        s.ShowIcons,
		BackgroundEffect: s.BackgroundEffect,
		FontFamily:       s.FontFamily,
		ButtonShape:      s.ButtonShape,
		ButtonStyle:      s.ButtonStyle,
		ColorPalette:     s.ColorPalette,
		FeaturedLinks:    s.FeaturedLinks,
	}
}

type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet returns the caller's settings, creating the default row on
// first access.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := identityFromCtx(ctx)
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	settings, err := h.SettingsService.GetOrCreate(ctx, identity.User.ID)
	if err != nil {
		log.Error("failed to load settings", "err", err)
		writeServerError(w, "Failed to load settings")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// HandlePatch applies a partial update and returns the full updated row.
func (h *SettingsHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := identityFromCtx(ctx)
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	var req SettingsPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	settings, err := h.SettingsService.Update(ctx, identity.User.ID, req.toPatch())
	if err != nil {
		log.Error("failed to update settings", "err", err)
		writeServerError(w, "Failed to update settings")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// HandlePublicGet returns the settings shown on a public profile without
// requiring authentication and without materializing a row.
func (h *SettingsHandler) HandlePublicGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.PathValue("username")
	if username == "" {
		writeBadRequest(w, "username is required")
		return
	}

	settings, err := h.SettingsService.PublicByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "User not found")
			return
		}
		log.Error("failed to load public settings", "username", username, "err", err)
		writeServerError(w, "Failed to load settings")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSettingsResponse(settings))
}
