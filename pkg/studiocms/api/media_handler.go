package api

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/framelight/studio-cms/pkg/studiocms"
)

// MediaHandler streams stored objects by object key. It backs the
// image URLs that responses carry when no CDN is configured.
type MediaHandler struct {
	service studiocms.Service
	backend string
}

// NewMediaHandler creates a new media handler serving from the named
// storage backend.
func NewMediaHandler(service studiocms.Service, backend string) *MediaHandler {
	return &MediaHandler{service: service, backend: backend}
}

// Routes returns the media streaming routes
func (h *MediaHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/*", h.Serve)
	return r
}

// Serve streams the object named by the wildcard path
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if key == "" || strings.Contains(key, "..") {
		http.Error(w, "invalid object key", http.StatusBadRequest)
		return
	}

	store, err := h.service.GetBackend(h.backend)
	if err != nil {
		writeError(w, err)
		return
	}

	if meta, err := store.GetObjectMeta(r.Context(), key); err == nil && meta.ContentType != "" {
		w.Header().Set("Content-Type", meta.ContentType)
	}

	rc, err := store.Download(r.Context(), key)
	if err != nil {
		slog.Error("Failed to stream object", "key", key, "error", err)
		writeError(w, err)
		return
	}
	defer rc.Close()

	streamObject(w, rc)
}

// streamObject copies object bytes to the response; a failure mid-copy
// can only be logged because the status line is already gone.
func streamObject(w http.ResponseWriter, rc io.Reader) {
	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("Failed to write object body", "error", err)
	}
}
