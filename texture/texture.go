// Package texture provides decoded texture resources for image shapes.
//
// Textures are decoded once and shared through a process-wide LRU cache
// keyed by (path, rotation, scale); rotated and scaled variants are
// derived from the unmodified base texture so they share its decode cost.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	// Register the stdlib decoders with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	// Register the extended format decoders with image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/planar2d/planar"
)

// Texture wraps a decoded image resource. A texture is immutable once
// created; Rotate and Rescale return derived textures. Many image shapes
// may share one texture, and texture lifetime is managed by the cache,
// independent of any single shape.
type Texture struct {
	img   image.Image
	path  string
	theta float64
	scale float64
}

// Load decodes the image at the given path. Supported formats: PNG,
// JPEG, GIF, BMP, TIFF, WebP. Failure (missing file, undecodable data)
// is fatal and synchronous; there is no retry.
func Load(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	planar.Logger().Debug("texture decoded",
		"path", path,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	return &Texture{img: img, path: path, scale: 1}, nil
}

// FromImage wraps an already-decoded image in a texture.
func FromImage(img image.Image) *Texture {
	return &Texture{img: img, scale: 1}
}

// Image returns the decoded pixel data.
func (t *Texture) Image() image.Image {
	return t.img
}

// Path returns the file path the texture was decoded from, or "" for
// textures built directly from pixel data.
func (t *Texture) Path() string {
	return t.path
}

// Shape returns the pixel dimensions (width, height).
func (t *Texture) Shape() (width, height int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Theta returns the accumulated rotation of this variant in radians.
func (t *Texture) Theta() float64 {
	return t.theta
}

// Scale returns the accumulated scale factor of this variant.
func (t *Texture) Scale() float64 {
	return t.scale
}

// Mode returns the pixel format of the decoded data.
func (t *Texture) Mode() string {
	switch t.img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return "L"
	case color.YCbCrModel:
		return "RGB"
	case color.CMYKModel:
		return "CMYK"
	default:
		if _, ok := t.img.(*image.Paletted); ok {
			return "P"
		}
		return "RGBA"
	}
}

// Rotate returns a new texture rotated counter-clockwise by theta
// radians about its center. The result is large enough to hold the
// rotated extent; uncovered corners are transparent.
func (t *Texture) Rotate(theta float64) *Texture {
	if theta == 0 {
		return t
	}

	srcW, srcH := t.Shape()
	sin, cos := math.Sincos(theta)
	dstW := int(math.Ceil(math.Abs(float64(srcW)*cos) + math.Abs(float64(srcH)*sin)))
	dstH := int(math.Ceil(math.Abs(float64(srcW)*sin) + math.Abs(float64(srcH)*cos)))

	// Counter-clockwise in the engine's y-up convention is clockwise in
	// image (y-down) coordinates, hence the sign of sin.
	m := f64.Aff3{
		cos, sin, float64(dstW)/2 - (cos*float64(srcW)/2 + sin*float64(srcH)/2),
		-sin, cos, float64(dstH)/2 - (-sin*float64(srcW)/2 + cos*float64(srcH)/2),
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.BiLinear.Transform(dst, m, t.img, t.img.Bounds(), xdraw.Src, nil)

	return &Texture{img: dst, path: t.path, theta: t.theta + theta, scale: t.scale}
}

// Rescale returns a new texture uniformly scaled by the given factor,
// resampled with Catmull-Rom interpolation.
func (t *Texture) Rescale(scale float64) *Texture {
	if scale == 1 {
		return t
	}

	srcW, srcH := t.Shape()
	dstW := int(math.Round(float64(srcW) * scale))
	dstH := int(math.Round(float64(srcH) * scale))
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), t.img, t.img.Bounds(), xdraw.Src, nil)

	return &Texture{img: dst, path: t.path, theta: t.theta, scale: t.scale * scale}
}
