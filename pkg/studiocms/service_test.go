package studiocms_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/studio-cms/pkg/studiocms"
	"github.com/framelight/studio-cms/pkg/studiocms/repo/memory"
	memorystorage "github.com/framelight/studio-cms/pkg/studiocms/storage/memory"
)

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []studiocms.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []studiocms.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []studiocms.Option{
				studiocms.WithRepository(memory.New()),
			},
			expectError: false,
		},
		{
			name: "with repository and blob store should succeed",
			options: []studiocms.Option{
				studiocms.WithRepository(memory.New()),
				studiocms.WithBlobStore("memory", memorystorage.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := studiocms.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func newTestService(t *testing.T, extra ...studiocms.Option) (studiocms.Service, studiocms.Repository) {
	t.Helper()
	repo := memory.New()
	options := append([]studiocms.Option{
		studiocms.WithRepository(repo),
		studiocms.WithBlobStore("memory", memorystorage.New()),
		studiocms.WithAfterAssetSave(studiocms.LinkAssetToOwner(repo)),
	}, extra...)
	svc, err := studiocms.New(options...)
	require.NoError(t, err)
	return svc, repo
}

func TestUploadAsset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, studiocms.CreateVendorRequest{Name: "Lens & Light", Active: true})
	require.NoError(t, err)

	asset, err := svc.UploadAsset(ctx, studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		OwnerID:   vendor.ID,
		Field:     "profile_image",
		FileName:  "profile.jpg",
		MimeType:  "image/jpeg",
		Reader:    strings.NewReader("fake image bytes"),
	})
	require.NoError(t, err)

	assert.Equal(t, studiocms.KindVendor, asset.OwnerKind)
	assert.Equal(t, vendor.ID, asset.OwnerID)
	assert.NotEmpty(t, asset.Checksum)
	assert.Equal(t, int64(len("fake image bytes")), asset.Size)
	assert.True(t, strings.HasSuffix(asset.ObjectKey, ".jpg"))

	// the blob is retrievable
	rc, got, err := svc.DownloadAsset(ctx, asset.ID)
	require.NoError(t, err)
	defer rc.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", buf.String())
	assert.Equal(t, asset.ID, got.ID)
}

func TestUploadAssetLinksOwnerRecord(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, studiocms.CreateVendorRequest{Name: "Golden Hour Studio", Active: true})
	require.NoError(t, err)

	asset, err := svc.UploadAsset(ctx, studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		OwnerID:   vendor.ID,
		Field:     "profile_image",
		FileName:  "golden.jpg",
		Reader:    strings.NewReader("jpeg bytes"),
	})
	require.NoError(t, err)

	stored, err := svc.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.ObjectKey, stored.ProfileImage)
}

func TestUploadAssetEmptyBody(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadAsset(context.Background(), studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		Field:     "profile_image",
		FileName:  "empty.jpg",
		Reader:    strings.NewReader(""),
	})
	assert.ErrorIs(t, err, studiocms.ErrEmptyUpload)
}

func TestUploadAssetUnchangedBytesIsNoOp(t *testing.T) {
	hookRuns := 0
	svc, _ := newTestService(t, studiocms.WithBeforeAssetSave(
		func(hctx *studiocms.HookContext, asset *studiocms.MediaAsset, data []byte) ([]byte, error) {
			hookRuns++
			return data, nil
		}))
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, studiocms.CreateVendorRequest{Name: "Frame Story", Active: true})
	require.NoError(t, err)

	req := studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		OwnerID:   vendor.ID,
		Field:     "profile_image",
		FileName:  "same.jpg",
	}

	req.Reader = strings.NewReader("identical bytes")
	first, err := svc.UploadAsset(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 1, hookRuns)

	req.Reader = strings.NewReader("identical bytes")
	second, err := svc.UploadAsset(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ObjectKey, second.ObjectKey)
	assert.Equal(t, 1, hookRuns, "hook chain must not run on an unchanged re-save")
}

func TestUploadAssetReplacesChangedBytes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, studiocms.CreateVendorRequest{Name: "Aperture Lane", Active: true})
	require.NoError(t, err)

	req := studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		OwnerID:   vendor.ID,
		Field:     "profile_image",
		FileName:  "v1.jpg",
	}

	req.Reader = strings.NewReader("version one")
	first, err := svc.UploadAsset(ctx, req)
	require.NoError(t, err)

	req.FileName = "v2.jpg"
	req.Reader = strings.NewReader("version two")
	second, err := svc.UploadAsset(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same owner/field keeps one asset row")
	assert.NotEqual(t, first.Checksum, second.Checksum)
	assert.Equal(t, "v2.jpg", second.FileName)

	rc, _, err := svc.DownloadAsset(ctx, second.ID)
	require.NoError(t, err)
	defer rc.Close()
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(rc)
	assert.Equal(t, "version two", buf.String())
}

func TestUploadAssetUnknownBackend(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UploadAsset(context.Background(), studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		Field:     "profile_image",
		FileName:  "x.jpg",
		Backend:   "does-not-exist",
		Reader:    strings.NewReader("bytes"),
	})
	assert.ErrorIs(t, err, studiocms.ErrStorageBackendNotFound)
}

func TestBeforeSaveHookCanReplaceBytes(t *testing.T) {
	svc, _ := newTestService(t, studiocms.WithBeforeAssetSave(
		func(hctx *studiocms.HookContext, asset *studiocms.MediaAsset, data []byte) ([]byte, error) {
			asset.Watermarked = true
			return append(data, []byte(" [marked]")...), nil
		}))
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, studiocms.CreateVendorRequest{Name: "Shutter Tales", Active: true})
	require.NoError(t, err)

	asset, err := svc.UploadAsset(ctx, studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		OwnerID:   vendor.ID,
		Field:     "profile_image",
		FileName:  "marked.jpg",
		Reader:    strings.NewReader("original"),
	})
	require.NoError(t, err)
	assert.True(t, asset.Watermarked)
	assert.Equal(t, int64(len("original [marked]")), asset.Size)

	rc, _, err := svc.DownloadAsset(ctx, asset.ID)
	require.NoError(t, err)
	defer rc.Close()
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(rc)
	assert.Equal(t, "original [marked]", buf.String())
}

func TestDeleteAssetRemovesBlob(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	vendor, err := svc.CreateVendor(ctx, studiocms.CreateVendorRequest{Name: "Petal & Prism", Active: true})
	require.NoError(t, err)

	asset, err := svc.UploadAsset(ctx, studiocms.UploadAssetRequest{
		OwnerKind: studiocms.KindVendor,
		OwnerID:   vendor.ID,
		Field:     "profile_image",
		FileName:  "gone.jpg",
		Reader:    strings.NewReader("bytes"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAsset(ctx, asset.ID))

	_, err = svc.GetAsset(ctx, asset.ID)
	assert.ErrorIs(t, err, studiocms.ErrAssetNotFound)

	store, err := svc.GetBackend("memory")
	require.NoError(t, err)
	_, err = store.Download(ctx, asset.ObjectKey)
	assert.Error(t, err)
}

func TestHeroSectionUpsertKeepsBackgroundImage(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	hero, err := svc.UpsertHeroSection(ctx, studiocms.UpsertHeroSectionRequest{
		Page: "home", Heading: "Captured forever", Active: true,
	})
	require.NoError(t, err)

	require.NoError(t, repo.SetImageField(ctx, studiocms.KindHeroSection, hero.ID, "background_image", "hero/home/bg.jpg"))

	updated, err := svc.UpsertHeroSection(ctx, studiocms.UpsertHeroSectionRequest{
		Page: "home", Heading: "Captured, forever", Active: true,
	})
	require.NoError(t, err)

	assert.Equal(t, hero.ID, updated.ID)
	assert.Equal(t, "hero/home/bg.jpg", updated.BackgroundImage)
	assert.Equal(t, "Captured, forever", updated.Heading)
}
