package http

import (
	"net/http"

	"github.com/veerabala/linkbio/pkg/httpx"
)

// ErrorResponse is the uniform error body for every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: desc,
	})
}

func writeNotFound(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
		Error:            "not_found",
		ErrorDescription: desc,
	})
}

func writeServerError(w http.ResponseWriter, desc string) {
	httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:            "server_error",
		ErrorDescription: desc,
	})
}
