package memory_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/studio-cms/pkg/studiocms"
	memorystorage "github.com/framelight/studio-cms/pkg/studiocms/storage/memory"
)

func TestMemoryBackend(t *testing.T) {
	backend := memorystorage.New()
	ctx := context.Background()
	testKey := "vendor/owner/profile.txt"
	testData := "Hello, World! This is test data."

	t.Run("Upload", func(t *testing.T) {
		reader := strings.NewReader(testData)
		err := backend.Upload(ctx, testKey, reader)
		assert.NoError(t, err)
	})

	t.Run("GetObjectMeta", func(t *testing.T) {
		meta, err := backend.GetObjectMeta(ctx, testKey)
		assert.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, testKey, meta.Key)
		assert.Equal(t, int64(len(testData)), meta.Size)
		assert.Contains(t, meta.ContentType, "text/plain") // sniffed from the bytes
	})

	t.Run("Download", func(t *testing.T) {
		reader, err := backend.Download(ctx, testKey)
		assert.NoError(t, err)
		require.NotNil(t, reader)
		defer reader.Close()

		downloadedData, err := io.ReadAll(reader)
		assert.NoError(t, err)
		assert.Equal(t, testData, string(downloadedData))
	})

	t.Run("Delete", func(t *testing.T) {
		testKey3 := "vendor/owner/other.txt"

		reader := strings.NewReader(testData)
		err := backend.Upload(ctx, testKey3, reader)
		assert.NoError(t, err)

		err = backend.Delete(ctx, testKey3)
		assert.NoError(t, err)

		_, err = backend.GetObjectMeta(ctx, testKey3)
		assert.ErrorIs(t, err, studiocms.ErrNotFound)
	})

	t.Run("ErrorCases", func(t *testing.T) {
		nonExistentKey := "nonexistent/key"

		meta, err := backend.GetObjectMeta(ctx, nonExistentKey)
		assert.ErrorIs(t, err, studiocms.ErrNotFound)
		assert.Nil(t, meta)

		reader, err := backend.Download(ctx, nonExistentKey)
		assert.ErrorIs(t, err, studiocms.ErrNotFound)
		assert.Nil(t, reader)

		err = backend.Delete(ctx, nonExistentKey)
		assert.ErrorIs(t, err, studiocms.ErrNotFound)
	})
}

func TestMemoryBackendConcurrency(t *testing.T) {
	backend := memorystorage.New()
	ctx := context.Background()

	const numGoroutines = 10
	const numOperations = 50

	done := make(chan bool, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer func() { done <- true }()

			for j := 0; j < numOperations; j++ {
				testKey := fmt.Sprintf("concurrent/test/%d/%d", goroutineID, j)
				testData := fmt.Sprintf("Test data from goroutine %d, operation %d", goroutineID, j)

				reader := strings.NewReader(testData)
				err := backend.Upload(ctx, testKey, reader)
				require.NoError(t, err)

				downloadReader, err := backend.Download(ctx, testKey)
				require.NoError(t, err)

				downloadedData, err := io.ReadAll(downloadReader)
				require.NoError(t, err)
				downloadReader.Close()

				assert.Equal(t, testData, string(downloadedData))

				err = backend.Delete(ctx, testKey)
				require.NoError(t, err)
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}
}
