package watermark

import (
	"bytes"
	"image"
	"image/color"
	"net/http"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMark() image.Image {
	return imaging.New(120, 60, color.NRGBA{R: 255, A: 255})
}

func encodeImage(t *testing.T, img image.Image, format imaging.Format, opts ...imaging.EncodeOption) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format, opts...))
	return buf.Bytes()
}

func TestApplyPreservesDimensions(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	base := imaging.New(800, 600, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	data := encodeImage(t, base, imaging.JPEG)

	out, applied := c.Apply(data, "upload.jpg", DefaultOptions())
	require.True(t, applied)

	decoded, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 800, decoded.Bounds().Dx())
	assert.Equal(t, 600, decoded.Bounds().Dy())
	assert.Equal(t, "image/jpeg", http.DetectContentType(out))
}

func TestApplyEncodesPNGForNonJPEG(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	base := imaging.New(400, 400, color.NRGBA{B: 200, A: 255})
	data := encodeImage(t, base, imaging.PNG)

	out, applied := c.Apply(data, "upload.png", DefaultOptions())
	require.True(t, applied)
	assert.Equal(t, "image/png", http.DetectContentType(out))
}

func TestApplyChangesPixels(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	base := imaging.New(600, 400, color.NRGBA{A: 255})
	data := encodeImage(t, base, imaging.PNG)

	out, applied := c.Apply(data, "upload.png", DefaultOptions())
	require.True(t, applied)
	assert.NotEqual(t, data, out)
}

func TestApplyFailsOpenOnGarbage(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	data := []byte("this is not an image at all")

	out, applied := c.Apply(data, "upload.jpg", DefaultOptions())
	assert.False(t, applied)
	assert.Equal(t, data, out)
}

func TestApplyPassesThroughWithoutAsset(t *testing.T) {
	c := NewCompositor("/nonexistent/watermark.png", nil)
	assert.False(t, c.Ready())

	base := imaging.New(100, 100, color.NRGBA{A: 255})
	data := encodeImage(t, base, imaging.PNG)

	out, applied := c.Apply(data, "upload.png", DefaultOptions())
	assert.False(t, applied)
	assert.Equal(t, data, out)
}

func TestApplyAllPositions(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	base := imaging.New(500, 300, color.NRGBA{G: 128, A: 255})
	data := encodeImage(t, base, imaging.PNG)

	for _, pos := range []Position{TopLeft, TopRight, BottomLeft, BottomRight, Center, ""} {
		out, applied := c.Apply(data, "upload.png", Options{Position: pos, Opacity: 0.75, SizePercent: 10})
		assert.True(t, applied, "position %q", pos)
		assert.NotEmpty(t, out)
	}
}

func TestApplyUnknownPositionFailsOpen(t *testing.T) {
	c := NewCompositorFromImage(testMark(), nil)
	base := imaging.New(500, 300, color.NRGBA{G: 128, A: 255})
	data := encodeImage(t, base, imaging.PNG)

	out, applied := c.Apply(data, "upload.png", Options{Position: "somewhere", Opacity: 0.75, SizePercent: 10})
	assert.False(t, applied)
	assert.Equal(t, data, out)
}

func TestClampSize(t *testing.T) {
	assert.Equal(t, minSizePercent, clampSize(0))
	assert.Equal(t, minSizePercent, clampSize(-3))
	assert.Equal(t, 25, clampSize(25))
	assert.Equal(t, maxSizePercent, clampSize(90))
}

func TestClampOpacity(t *testing.T) {
	assert.Equal(t, 0.0, clampOpacity(-1))
	assert.Equal(t, 0.4, clampOpacity(0.4))
	assert.Equal(t, 1.0, clampOpacity(3))
}

func TestResizeMarkHonorsSizePercent(t *testing.T) {
	mark := imaging.New(200, 100, color.NRGBA{A: 255})

	// base 1000x800: shorter dim 800, 10% -> mark longest side 80
	resized := resizeMark(mark, 1000, 800, 10)
	assert.Equal(t, 80, resized.Bounds().Dx())
	assert.Equal(t, 40, resized.Bounds().Dy())
}

func TestIsJPEG(t *testing.T) {
	assert.True(t, isJPEG("photo.jpg"))
	assert.True(t, isJPEG("PHOTO.JPEG"))
	assert.False(t, isJPEG("photo.png"))
	assert.False(t, isJPEG("photo"))
}
