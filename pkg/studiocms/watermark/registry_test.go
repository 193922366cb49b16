package watermark

import (
	"bytes"
	"context"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framelight/studio-cms/pkg/studiocms"
)

func TestShouldWatermark(t *testing.T) {
	assert.True(t, ShouldWatermark("profile_image"))
	assert.True(t, ShouldWatermark("cover_image"))
	assert.True(t, ShouldWatermark("image"))

	assert.False(t, ShouldWatermark("logo"))
	assert.False(t, ShouldWatermark("company_logo"))
	assert.False(t, ShouldWatermark("favicon"))
	assert.False(t, ShouldWatermark("og_image"))
	assert.False(t, ShouldWatermark("Site_Logo"))
}

func TestRegistryCovers(t *testing.T) {
	reg := NewRegistry(
		ModelImageFields{Kind: studiocms.KindVendor, Fields: []string{"profile_image", "logo"}},
		ModelImageFields{Kind: studiocms.KindPortfolio, Fields: []string{"cover_image"}},
	)

	assert.True(t, reg.Covers(studiocms.KindVendor, "profile_image"))
	assert.True(t, reg.Covers(studiocms.KindPortfolio, "cover_image"))

	// declared but exempt by name
	assert.False(t, reg.Covers(studiocms.KindVendor, "logo"))
	// undeclared field
	assert.False(t, reg.Covers(studiocms.KindVendor, "banner"))
	// unregistered kind
	assert.False(t, reg.Covers(studiocms.KindBlogPost, "cover_image"))
}

func TestRegisteredKindsSorted(t *testing.T) {
	reg := NewRegistry(
		ModelImageFields{Kind: studiocms.KindVendor, Fields: []string{"profile_image"}},
		ModelImageFields{Kind: studiocms.KindBlogPost, Fields: []string{"cover_image"}},
		ModelImageFields{Kind: studiocms.KindTestimonial}, // no fields, skipped
	)

	assert.Equal(t, []string{"blog_post", "vendor"}, reg.RegisteredKinds())
}

func TestHookWatermarksCoveredField(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	reg := NewRegistry(ModelImageFields{Kind: studiocms.KindVendor, Fields: []string{"profile_image"}})
	hook := Hook(c, reg, DefaultOptions())

	base := imaging.New(300, 300, color.NRGBA{A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, base, imaging.PNG))
	data := buf.Bytes()

	asset := &studiocms.MediaAsset{
		OwnerKind: studiocms.KindVendor,
		Field:     "profile_image",
		FileName:  "profile.png",
	}

	out, err := hook(studiocms.NewHookContext(context.Background()), asset, data)
	require.NoError(t, err)
	assert.True(t, asset.Watermarked)
	assert.NotEqual(t, data, out)
}

func TestHookPassesThroughUncoveredField(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	reg := NewRegistry(ModelImageFields{Kind: studiocms.KindVendor, Fields: []string{"profile_image"}})
	hook := Hook(c, reg, DefaultOptions())

	data := []byte("pdf bytes")
	asset := &studiocms.MediaAsset{
		OwnerKind: studiocms.KindVendor,
		Field:     "press_kit",
		FileName:  "kit.pdf",
	}

	out, err := hook(studiocms.NewHookContext(context.Background()), asset, data)
	require.NoError(t, err)
	assert.False(t, asset.Watermarked)
	assert.Equal(t, data, out)
}

func TestHookNeverErrorsOnBadImage(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	reg := NewRegistry(ModelImageFields{Kind: studiocms.KindVendor, Fields: []string{"profile_image"}})
	hook := Hook(c, reg, DefaultOptions())

	data := []byte("corrupt")
	asset := &studiocms.MediaAsset{
		OwnerKind: studiocms.KindVendor,
		Field:     "profile_image",
		FileName:  "profile.jpg",
	}

	out, err := hook(studiocms.NewHookContext(context.Background()), asset, data)
	require.NoError(t, err)
	assert.False(t, asset.Watermarked)
	assert.Equal(t, data, out)
}
