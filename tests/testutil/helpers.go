package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// VendorResponse is the shape returned by the vendor admin endpoints.
type VendorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Tagline      string `json:"tagline,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Active       bool   `json:"active"`
}

// AssetResponse is the shape returned by the asset admin endpoints.
type AssetResponse struct {
	ID          string `json:"id"`
	ObjectKey   string `json:"object_key"`
	FileName    string `json:"file_name"`
	Watermarked bool   `json:"watermarked"`
}

// SearchResponse mirrors the search endpoint payload.
type SearchResponse struct {
	Query   string `json:"query"`
	Total   int    `json:"total"`
	Results []struct {
		Kind     string  `json:"kind"`
		ID       string  `json:"id"`
		Title    string  `json:"title"`
		ImageURL *string `json:"image_url"`
	} `json:"results"`
	Suggestions []string `json:"suggestions,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// CreateVendor creates a vendor via the admin API.
func CreateVendor(t *testing.T, serverURL, name string) VendorResponse {
	t.Helper()

	reqJSON, err := json.Marshal(map[string]any{
		"name":   name,
		"active": true,
	})
	require.NoError(t, err)

	resp, err := http.Post(serverURL+"/api/admin/vendors", "application/json", bytes.NewBuffer(reqJSON))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var vendor VendorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vendor))
	return vendor
}

// UploadAsset uploads file bytes against an owning record via the admin API.
func UploadAsset(t *testing.T, serverURL, ownerKind, ownerID, field, fileName string, data []byte) AssetResponse {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("owner_kind", ownerKind))
	require.NoError(t, mw.WriteField("owner_id", ownerID))
	require.NoError(t, mw.WriteField("field", field))
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(serverURL+"/api/admin/assets", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var asset AssetResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&asset))
	return asset
}

// Search runs a query against the search API and returns the decoded
// payload plus the HTTP status code.
func Search(t *testing.T, serverURL, query string) (SearchResponse, int) {
	t.Helper()

	resp, err := http.Get(serverURL + "/api/search?q=" + query)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out, resp.StatusCode
}

// GetBody fetches a URL and returns the response body and status code.
func GetBody(t *testing.T, url string) ([]byte, int) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body, resp.StatusCode
}
