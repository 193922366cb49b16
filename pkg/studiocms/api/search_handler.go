package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/framelight/studio-cms/pkg/studiocms/search"
)

// SearchHandler serves the site-wide search endpoints
type SearchHandler struct {
	aggregator *search.Aggregator
	cdnBaseURL string
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(aggregator *search.Aggregator, cdnBaseURL string) *SearchHandler {
	return &SearchHandler{aggregator: aggregator, cdnBaseURL: cdnBaseURL}
}

// Routes returns the search routes
func (h *SearchHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Search)
	r.Get("/suggestions", h.Suggestions)
	return r
}

// Search runs the fan-out search across all content kinds. The query
// comes from the "q" parameter; a too-short query gets a 400 whose
// body still carries the user-facing message.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	resp, err := h.aggregator.Search(r.Context(), query, resolverFor(h.cdnBaseURL, r))
	if err != nil {
		if errors.Is(err, search.ErrQueryTooShort) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp)
			return
		}
		slog.Error("Search failed", "query", query, "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, resp)
}

// Suggestions returns canned search terms with live match counts
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	resp, err := h.aggregator.Suggestions(r.Context())
	if err != nil {
		slog.Error("Search suggestions failed", "error", err)
		http.Error(w, "suggestions failed", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, resp)
}
