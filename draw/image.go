package draw

import (
	"errors"
	"fmt"

	"github.com/planar2d/planar"
	"github.com/planar2d/planar/geom"
	"github.com/planar2d/planar/texture"
)

// ErrInvalidReference is returned when an image is constructed with an
// unknown reference-point policy.
var ErrInvalidReference = errors.New("draw: invalid reference")

// Reference selects how an image's pos argument is interpreted.
type Reference string

const (
	// RefCenter places pos at the center of the texture. This is the
	// default; the zero value behaves the same.
	RefCenter Reference = "center"

	// RefOrigin treats pos as the lower-left corner of the texture.
	RefOrigin Reference = "origin"
)

// Image is a drawable bound to a cached decoded texture. Its geometry is
// the axis-aligned box spanned by the texture's pixel extent; the texture
// itself is shared and cache-owned, so copying an Image never duplicates
// pixel data.
type Image struct {
	Style
	geom.AABB
	tex *texture.Texture
}

var _ Drawable = (*Image)(nil)

// NewImage returns an image drawable for the texture at the given path,
// resolved through the process-wide texture cache.
func NewImage(path string, pos planar.Vec2, ref Reference, opts ...Option) (*Image, error) {
	tex, err := texture.Get(path, 0, 1)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(tex, pos, ref, opts...)
}

// NewImageTexture returns an image drawable bound directly to the given
// texture.
func NewImageTexture(tex *texture.Texture, pos planar.Vec2, ref Reference, opts ...Option) (*Image, error) {
	style, err := newStyle(opts...)
	if err != nil {
		return nil, err
	}

	w, h := tex.Shape()
	extent := planar.V2(float64(w), float64(h))

	var center planar.Vec2
	switch ref {
	case RefCenter, "":
		center = pos
	case RefOrigin:
		center = pos.Add(extent.Div(2))
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	box, err := geom.AABBFromShape(center, extent.X, extent.Y)
	if err != nil {
		return nil, err
	}
	return &Image{Style: style, AABB: box, tex: tex}, nil
}

// Texture returns the shared texture the image is bound to.
func (im *Image) Texture() *texture.Texture {
	return im.tex
}

// Geometric returns a copy of the owned primitive.
func (im *Image) Geometric() geom.AABB {
	return im.AABB
}

// Move translates the image in place by delta.
func (im *Image) Move(delta planar.Vec2) {
	im.Translate(delta)
}

func (im *Image) clone() *Image {
	cp := *im // the texture reference is shared, geometry is copied
	return &cp
}

// Copy returns an independent duplicate sharing the same texture.
func (im *Image) Copy() Drawable { return im.clone() }

// Moved returns a translated copy, leaving the receiver untouched.
func (im *Image) Moved(delta planar.Vec2) Drawable {
	n := im.clone()
	n.Move(delta)
	return n
}

// Rotated returns a rotated copy, leaving the receiver untouched.
func (im *Image) Rotated(theta float64, axis *planar.Vec2) Drawable {
	n := im.clone()
	n.Rotate(theta, axis)
	return n
}

// Rescaled returns a rescaled copy, leaving the receiver untouched.
func (im *Image) Rescaled(scale float64) Drawable {
	n := im.clone()
	n.Rescale(scale)
	return n
}

// Transformed returns a transformed copy, leaving the receiver untouched.
func (im *Image) Transformed(m planar.Matrix) Drawable {
	n := im.clone()
	n.Transform(m)
	return n
}

// Draw dispatches the image to the canvas.
func (im *Image) Draw(canvas any) error {
	cv, ok := canvas.(ImageCanvas)
	if !ok {
		return fmt.Errorf("%w: canvas %T cannot draw %q", ErrUnsupportedCanvasOperation, canvas, im.Primitive())
	}
	return cv.DrawImage(im)
}

// VerticesWithin returns the four corners of the image extent.
// tol is ignored.
func (im *Image) VerticesWithin(tol float64) []planar.Vec2 {
	v := im.Vertices()
	return v[:]
}

// Primitive returns the canvas primitive tag.
func (im *Image) Primitive() string { return "image" }
