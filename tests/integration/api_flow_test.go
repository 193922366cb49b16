package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/studio-cms/tests/testutil"
)

func TestVendorUploadSearchFlow(t *testing.T) {
	server := testutil.SetupTestServer()
	defer server.Close()

	vendor := testutil.CreateVendor(t, server.URL, "Glamour by Priya")
	require.NotEmpty(t, vendor.ID)

	asset := testutil.UploadAsset(t, server.URL, "vendor", vendor.ID, "profile_image", "priya.jpg", []byte("jpeg bytes"))
	require.NotEmpty(t, asset.ObjectKey)

	// the uploaded bytes stream back through the media route
	body, status := testutil.GetBody(t, server.URL+"/api/media/"+asset.ObjectKey)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "jpeg bytes", string(body))

	// search finds the vendor and resolves an absolute image URL
	resp, status := testutil.Search(t, server.URL, "priya")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, resp.Total)
	hit := resp.Results[0]
	assert.Equal(t, "vendor", hit.Kind)
	assert.Equal(t, vendor.ID, hit.ID)
	require.NotNil(t, hit.ImageURL)
	assert.True(t, strings.HasPrefix(*hit.ImageURL, "http"), "image_url is absolute: %s", *hit.ImageURL)
	assert.True(t, strings.HasSuffix(*hit.ImageURL, asset.ObjectKey))
}

func TestSearchRejectsShortQueryOverHTTP(t *testing.T) {
	server := testutil.SetupTestServer()
	defer server.Close()

	resp, status := testutil.Search(t, server.URL, "a")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please enter at least 2 characters to search", resp.Message)
	assert.Empty(t, resp.Results)
}

func TestSearchNoResultsCarriesSuggestions(t *testing.T) {
	server := testutil.SetupTestServer()
	defer server.Close()

	resp, status := testutil.Search(t, server.URL, "zzzzzz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, resp.Total)
	assert.NotEmpty(t, resp.Suggestions)
	assert.Contains(t, resp.Message, "zzzzzz")
}
