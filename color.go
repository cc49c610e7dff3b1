package planar

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Color errors.
var (
	// ErrInvalidColorSpec is returned when a color cannot be built from the
	// given specification (unknown name, malformed palette entry).
	ErrInvalidColorSpec = errors.New("planar: invalid color specification")

	// ErrIndexOutOfRange is returned by Component for indices outside [-4, 3].
	ErrIndexOutOfRange = errors.New("planar: color component index out of range")
)

// Color is an immutable RGBA color with 8-bit channels.
//
// Colors are canonicalized: every constructor returns the unique shared
// instance for its channel tuple, so two colors with equal channels are the
// same pointer and equality reduces to identity:
//
//	planar.RGB(255, 255, 255) == planar.White  // same *Color
//
// A Color is never mutated after creation; the With* methods return a new
// canonical instance with one channel replaced. The canonicalization table
// lives for the whole process and is safe for concurrent use.
type Color struct {
	r, g, b, a uint8
}

// RGB returns the canonical opaque color for the given channels.
// Alpha defaults to 255.
func RGB(r, g, b uint8) *Color {
	return intern(r, g, b, 255)
}

// RGBA returns the canonical color for the given channels.
func RGBA(r, g, b, a uint8) *Color {
	return intern(r, g, b, a)
}

// Red returns the red channel.
func (c *Color) Red() uint8 { return c.r }

// Green returns the green channel.
func (c *Color) Green() uint8 { return c.g }

// Blue returns the blue channel.
func (c *Color) Blue() uint8 { return c.b }

// Alpha returns the alpha channel.
func (c *Color) Alpha() uint8 { return c.a }

// RGB8 returns the three color channels.
func (c *Color) RGB8() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// RGBA8 returns all four channels.
func (c *Color) RGBA8() (r, g, b, a uint8) {
	return c.r, c.g, c.b, c.a
}

// FRGB returns the color channels normalized to [0, 1].
func (c *Color) FRGB() (r, g, b float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255
}

// FRGBA returns all four channels normalized to [0, 1].
func (c *Color) FRGBA() (r, g, b, a float64) {
	return float64(c.r) / 255, float64(c.g) / 255, float64(c.b) / 255, float64(c.a) / 255
}

// URGB packs the color channels into a single unsigned integer,
// MSB-first: r<<16 | g<<8 | b.
func (c *Color) URGB() uint32 {
	return uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
}

// URGBA packs all four channels into a single unsigned integer,
// MSB-first with alpha in the low byte: r<<24 | g<<16 | b<<8 | a.
func (c *Color) URGBA() uint32 {
	return uint32(c.r)<<24 | uint32(c.g)<<16 | uint32(c.b)<<8 | uint32(c.a)
}

// RGBA implements the standard color.Color interface
// (alpha-premultiplied, 16 bits per channel).
func (c *Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}.RGBA()
}

// HSI returns the hue, saturation and intensity of the color.
// Hue is in radians [0, 2π), saturation in [0, 1] and intensity on the
// 0-255 channel scale.
func (c *Color) HSI() (h, s, i float64) {
	h, s, i, _ = c.HSIA()
	return h, s, i
}

// HSIA returns hue, saturation, intensity and the alpha channel
// normalized to [0, 1].
func (c *Color) HSIA() (h, s, i, a float64) {
	rf := float64(c.r)
	gf := float64(c.g)
	bf := float64(c.b)

	i = (rf + gf + bf) / 3
	if i > 0 {
		s = 1 - math.Min(rf, math.Min(gf, bf))/i
	}

	// Hue on normalized channels.
	r, g, b, _ := c.FRGBA()
	num := ((r - g) + (r - b)) / 2
	den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	if den > 0 {
		h = math.Acos(math.Max(-1, math.Min(1, num/den)))
		if b > g {
			h = 2*math.Pi - h
		}
	}

	return h, s, i, float64(c.a) / 255
}

// Hue returns the hue component of the color in radians [0, 2π).
func (c *Color) Hue() float64 {
	h, _, _ := c.HSI()
	return h
}

// Saturation returns the saturation component of the color in [0, 1].
func (c *Color) Saturation() float64 {
	_, s, _ := c.HSI()
	return s
}

// Intensity returns the intensity component of the color on the
// 0-255 channel scale.
func (c *Color) Intensity() float64 {
	_, _, i := c.HSI()
	return i
}

// WithRed returns the canonical color with the red channel replaced.
// The receiver is not modified.
func (c *Color) WithRed(v uint8) *Color {
	return intern(v, c.g, c.b, c.a)
}

// WithGreen returns the canonical color with the green channel replaced.
func (c *Color) WithGreen(v uint8) *Color {
	return intern(c.r, v, c.b, c.a)
}

// WithBlue returns the canonical color with the blue channel replaced.
func (c *Color) WithBlue(v uint8) *Color {
	return intern(c.r, c.g, v, c.a)
}

// WithAlpha returns the canonical color with the alpha channel replaced.
func (c *Color) WithAlpha(v uint8) *Color {
	return intern(c.r, c.g, c.b, v)
}

// Components returns the channels as an ordered [red, green, blue, alpha]
// array. Slice the result for range selection.
func (c *Color) Components() [4]uint8 {
	return [4]uint8{c.r, c.g, c.b, c.a}
}

// Component returns the channel at index i in [red, green, blue, alpha]
// order. Negative indices count from the end, as in Component(-1) == alpha.
// Indices outside [-4, 3] fail with ErrIndexOutOfRange.
func (c *Color) Component(i int) (uint8, error) {
	if i < 0 {
		i += 4
	}
	if i < 0 || i > 3 {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return c.Components()[i], nil
}

// Hash combines all four channels via XOR, so equal colors hash equally.
func (c *Color) Hash() uint32 {
	return uint32(c.r ^ c.g ^ c.b ^ c.a)
}

// String implements fmt.Stringer.
func (c *Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.r, c.g, c.b, c.a)
}
