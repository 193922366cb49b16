package studiocms

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrNotFound indicates a content record was not found
	ErrNotFound = errors.New("record not found")

	// ErrAssetNotFound indicates a media asset was not found
	ErrAssetNotFound = errors.New("asset not found")

	// ErrStorageBackendNotFound indicates a storage backend was not found
	ErrStorageBackendNotFound = errors.New("storage backend not found")

	// ErrEmptyUpload indicates an upload carried no bytes
	ErrEmptyUpload = errors.New("upload is empty")

	// ErrDuplicateSlug indicates a slug is already taken
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrUploadFailed indicates an upload operation failed
	ErrUploadFailed = errors.New("upload failed")

	// ErrDownloadFailed indicates a download operation failed
	ErrDownloadFailed = errors.New("download failed")
)

// AssetError represents an error related to media asset operations
type AssetError struct {
	AssetID uuid.UUID
	Op      string
	Err     error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset operation %s failed for asset %s: %v", e.Op, e.AssetID, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// ContentError represents an error related to content record operations
type ContentError struct {
	Kind Kind
	ID   uuid.UUID
	Op   string
	Err  error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("%s operation %s failed for %s: %v", e.Kind, e.Op, e.ID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
