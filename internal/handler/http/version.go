package http

import (
	"io"
	"net/http"
)

// getServerVersion answers with the version as plain text. Caches must
// revalidate it since it changes with every deployment.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, version)
}
