package urlstrategy

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBasedAssetURL(t *testing.T) {
	r := httptest.NewRequest("GET", "http://studio.example.com/api/search?q=x", nil)
	resolver := FromRequest(r, "/api/media")

	u := resolver.AssetURL("vendor/abc/profile.jpg")
	require.NotNil(t, u)
	assert.Equal(t, "http://studio.example.com/api/media/vendor/abc/profile.jpg", *u)
}

func TestRequestBasedHonorsForwardedProto(t *testing.T) {
	r := httptest.NewRequest("GET", "http://studio.example.com/api/search", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	resolver := FromRequest(r, "/api/media/")

	u := resolver.AssetURL("/vendor/abc/profile.jpg")
	require.NotNil(t, u)
	assert.Equal(t, "https://studio.example.com/api/media/vendor/abc/profile.jpg", *u)
}

func TestRequestBasedEmptyKeyIsNil(t *testing.T) {
	r := httptest.NewRequest("GET", "http://studio.example.com/", nil)
	resolver := FromRequest(r, "/api/media")
	assert.Nil(t, resolver.AssetURL(""))
}

func TestCDNAssetURL(t *testing.T) {
	resolver := CDN{BaseURL: "https://cdn.example.com/"}

	u := resolver.AssetURL("/portfolio/album/cover.jpg")
	require.NotNil(t, u)
	assert.Equal(t, "https://cdn.example.com/portfolio/album/cover.jpg", *u)

	assert.Nil(t, resolver.AssetURL(""))
}
