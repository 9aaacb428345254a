package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

type LinkRequest struct {
	Title string `json:"title" validate:"required,max=256"`
	URL   string `json:"url"   validate:"required,url,max=2048"`
}

type LinkResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

func toLinkResponse(l domain.Link) LinkResponse {
	return LinkResponse{ID: l.ID, UserID: l.UserID, Title: l.Title, URL: l.URL}
}

func toLinkResponses(links []domain.Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toLinkResponse(l))
	}
	return out
}

type LinksHandler struct {
	LinkService *service.LinkService
}

func (h *LinksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := identityFromCtx(ctx)
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	links, err := h.LinkService.List(ctx, identity.User.ID)
	if err != nil {
		log.Error("failed to list links", "err", err)
		writeServerError(w, "Failed to list links")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLinkResponses(links))
}

func (h *LinksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := identityFromCtx(ctx)
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	req, ok := decodeLinkRequest(w, r)
	if !ok {
		return
	}

	link, err := h.LinkService.Create(ctx, identity.User.ID, req.Title, req.URL)
	if err != nil {
		log.Error("failed to create link", "err", err)
		writeServerError(w, "Failed to create link")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toLinkResponse(link))
}

func (h *LinksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := identityFromCtx(ctx)
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	linkID, ok := pathID(w, r)
	if !ok {
		return
	}

	req, ok := decodeLinkRequest(w, r)
	if !ok {
		return
	}

	link, err := h.LinkService.Update(ctx, identity.User.ID, linkID, req.Title, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "Link not found")
			return
		}
		log.Error("failed to update link", "link_id", linkID, "err", err)
		writeServerError(w, "Failed to update link")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLinkResponse(link))
}

func (h *LinksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, ok := identityFromCtx(ctx)
	if !ok {
		writeServerError(w, "Missing identity")
		return
	}

	linkID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.LinkService.Delete(ctx, identity.User.ID, linkID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "Link not found")
			return
		}
		log.Error("failed to delete link", "link_id", linkID, "err", err)
		writeServerError(w, "Failed to delete link")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeLinkRequest(w http.ResponseWriter, r *http.Request) (LinkRequest, bool) {
	var req LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return LinkRequest{}, false
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, "Invalid link fields: "+err.Error())
		return LinkRequest{}, false
	}
	return req, true
}

// pathID parses the {id} path segment as a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "Invalid id")
		return 0, false
	}
	return id, true
}
