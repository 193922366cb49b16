// Package api exposes the studio-cms service over HTTP using chi
// routers. Public handlers serve site content with absolute image
// URLs; admin handlers cover content creation and media uploads.
package api

import (
	"errors"
	"net/http"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/urlstrategy"
)

// AssetRoutePrefix is the route that streams stored objects when no CDN
// is configured. Image URLs in responses are built against it.
const AssetRoutePrefix = "/api/media"

// resolverFor picks the URL resolver for a request: a fixed CDN base
// when configured, otherwise the request's own scheme and host.
func resolverFor(cdnBaseURL string, r *http.Request) urlstrategy.Resolver {
	if cdnBaseURL != "" {
		return urlstrategy.CDN{BaseURL: cdnBaseURL}
	}
	return urlstrategy.FromRequest(r, AssetRoutePrefix)
}

// writeError maps domain errors onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, studiocms.ErrNotFound), errors.Is(err, studiocms.ErrAssetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, studiocms.ErrDuplicateSlug):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, studiocms.ErrEmptyUpload):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
