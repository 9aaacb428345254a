package http

import (
	"net/http"

	"github.com/veerabala/linkbio/pkg/httpx"
)

// RootHandler answers the greeting probe clients use to check the API is up.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Hello, World!",
		})
	}
}
