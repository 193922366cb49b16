// Package watermark composites the studio logo onto uploaded images
// before they reach blob storage. Every entry point fails open: a
// decode or compositing problem keeps the original upload untouched,
// because watermarking is a side effect that must never block a save.
package watermark

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Position names a corner (or the center) of the base image.
type Position string

const (
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	Center      Position = "center"
)

const (
	// edgePadding is the fixed gap between the mark and the image edge.
	edgePadding = 10

	minSizePercent = 5
	maxSizePercent = 50

	jpegQuality = 95
)

// Options control a single compositing pass.
type Options struct {
	Position    Position
	Opacity     float64 // 0.0 .. 1.0
	SizePercent int     // mark's longest side as % of the base's shorter dimension; clamped to [5, 50]
}

// DefaultOptions is the canonical watermark policy applied by the save
// path: bottom-right, 75% opacity, 10% size.
func DefaultOptions() Options {
	return Options{
		Position:    BottomRight,
		Opacity:     0.75,
		SizePercent: 10,
	}
}

// Compositor applies a fixed watermark asset to images. The asset is
// decoded once at construction and shared read-only across calls.
type Compositor struct {
	mark   image.Image
	logger *slog.Logger
}

// NewCompositor loads the watermark asset from disk. A missing or
// undecodable asset does not fail construction; Apply will pass
// originals through until the asset is available at a restart.
func NewCompositor(assetPath string, logger *slog.Logger) *Compositor {
	if logger == nil {
		logger = slog.Default()
	}
	mark, err := imaging.Open(assetPath)
	if err != nil {
		logger.Warn("watermark asset unavailable, uploads will not be watermarked",
			"path", assetPath, "error", err)
		return &Compositor{logger: logger}
	}
	return &Compositor{mark: mark, logger: logger}
}

// NewCompositorFromImage builds a compositor around an already decoded
// mark. Used by tests and by callers that embed the asset.
func NewCompositorFromImage(mark image.Image, logger *slog.Logger) *Compositor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Compositor{mark: mark, logger: logger}
}

// Ready reports whether a watermark asset was loaded.
func (c *Compositor) Ready() bool {
	return c.mark != nil
}

// Apply composites the watermark onto data and re-encodes it, keeping
// the base image's dimensions. The output format follows fileName:
// .jpg/.jpeg uploads come back as JPEG quality 95, everything else as
// PNG. On any failure the input bytes are returned unchanged with
// applied=false; Apply never returns an error and never panics out.
func (c *Compositor) Apply(data []byte, fileName string, opts Options) (out []byte, applied bool) {
	if c.mark == nil {
		c.logger.Warn("watermark asset not loaded, keeping original", "file", fileName)
		return data, false
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		c.logger.Warn("failed to decode upload, keeping original", "file", fileName, "error", err)
		return data, false
	}

	marked, err := c.composite(src, opts)
	if err != nil {
		c.logger.Warn("failed to composite watermark, keeping original", "file", fileName, "error", err)
		return data, false
	}

	encoded, err := encode(marked, fileName)
	if err != nil {
		c.logger.Warn("failed to re-encode watermarked image, keeping original", "file", fileName, "error", err)
		return data, false
	}
	return encoded, true
}

func (c *Compositor) composite(src image.Image, opts Options) (image.Image, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("base image has no pixels")
	}

	mark := resizeMark(c.mark, w, h, clampSize(opts.SizePercent))
	mb := mark.Bounds()
	if mb.Dx() < 1 || mb.Dy() < 1 {
		return nil, fmt.Errorf("watermark resized to zero size")
	}

	pt, err := placement(opts.Position, w, h, mb.Dx(), mb.Dy())
	if err != nil {
		return nil, err
	}

	return imaging.Overlay(src, mark, pt, clampOpacity(opts.Opacity)), nil
}

// resizeMark scales the mark so its longest side equals sizePercent% of
// the base image's shorter dimension, preserving aspect ratio.
func resizeMark(mark image.Image, baseW, baseH, sizePercent int) image.Image {
	shorter := baseW
	if baseH < shorter {
		shorter = baseH
	}
	target := shorter * sizePercent / 100
	if target < 1 {
		target = 1
	}

	mb := mark.Bounds()
	if mb.Dx() >= mb.Dy() {
		return imaging.Resize(mark, target, 0, imaging.Lanczos)
	}
	return imaging.Resize(mark, 0, target, imaging.Lanczos)
}

func placement(pos Position, baseW, baseH, markW, markH int) (image.Point, error) {
	switch pos {
	case TopLeft:
		return image.Pt(edgePadding, edgePadding), nil
	case TopRight:
		return image.Pt(baseW-markW-edgePadding, edgePadding), nil
	case BottomLeft:
		return image.Pt(edgePadding, baseH-markH-edgePadding), nil
	case BottomRight, "":
		return image.Pt(baseW-markW-edgePadding, baseH-markH-edgePadding), nil
	case Center:
		return image.Pt((baseW-markW)/2, (baseH-markH)/2), nil
	}
	return image.Point{}, fmt.Errorf("unknown position %q", pos)
}

// encode re-encodes per the original file's naming so storage naming is
// unaffected: JPEG stays JPEG (flattened opaque), everything else PNG.
func encode(img image.Image, fileName string) ([]byte, error) {
	var buf bytes.Buffer
	if isJPEG(fileName) {
		flat := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
		flat = imaging.Overlay(flat, img, image.Pt(0, 0), 1.0)
		if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isJPEG(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

func clampSize(pct int) int {
	if pct < minSizePercent {
		return minSizePercent
	}
	if pct > maxSizePercent {
		return maxSizePercent
	}
	return pct
}

func clampOpacity(op float64) float64 {
	if op <= 0 {
		return 0
	}
	if op > 1 {
		return 1
	}
	return op
}
