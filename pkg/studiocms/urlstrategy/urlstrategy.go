// Package urlstrategy turns stored object keys into URLs the outside
// world can fetch. Responses must carry absolute URLs (or null), never
// relative paths.
package urlstrategy

import (
	"fmt"
	"net/http"
	"strings"
)

// Resolver builds an absolute URL for a stored asset's object key.
// AssetURL returns nil when key is empty; the caller serializes that as
// JSON null rather than omitting the field.
type Resolver interface {
	AssetURL(key string) *string
}

// RequestBased resolves against the scheme and host of the incoming
// request, serving assets through the API's own asset route.
type RequestBased struct {
	Scheme     string
	Host       string
	PathPrefix string // route prefix that streams assets, e.g. "/api/assets"
}

// FromRequest derives a RequestBased resolver from an incoming request.
func FromRequest(r *http.Request, pathPrefix string) RequestBased {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return RequestBased{Scheme: scheme, Host: r.Host, PathPrefix: pathPrefix}
}

func (s RequestBased) AssetURL(key string) *string {
	if key == "" {
		return nil
	}
	u := fmt.Sprintf("%s://%s%s/%s", s.Scheme, s.Host, strings.TrimSuffix(s.PathPrefix, "/"), strings.TrimPrefix(key, "/"))
	return &u
}

// CDN resolves against a fixed base URL, for deployments that serve
// media from a CDN or object-store endpoint directly.
type CDN struct {
	BaseURL string
}

func (s CDN) AssetURL(key string) *string {
	if key == "" {
		return nil
	}
	u := fmt.Sprintf("%s/%s", strings.TrimSuffix(s.BaseURL, "/"), strings.TrimPrefix(key, "/"))
	return &u
}
