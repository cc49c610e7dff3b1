package draw

import (
	"errors"
	"fmt"

	"github.com/planar2d/planar"
)

// ErrNegativeLineWidth is returned when a drawable is constructed with a
// negative line width.
var ErrNegativeLineWidth = errors.New("draw: negative line width")

// Style carries the visual attributes shared by every drawable.
// Colors are canonical *planar.Color values; the zero line width draws
// filled shapes without an outline.
type Style struct {
	Color     *planar.Color
	LineColor *planar.Color
	LineWidth float64
}

// Option configures a drawable's style during construction.
type Option func(*Style)

// WithColor sets the fill color. Default is black.
func WithColor(c *planar.Color) Option {
	return func(s *Style) { s.Color = c }
}

// WithLineColor sets the outline color. Default is black.
func WithLineColor(c *planar.Color) Option {
	return func(s *Style) { s.LineColor = c }
}

// WithLineWidth sets the outline width. Default is 0 (no outline).
func WithLineWidth(w float64) Option {
	return func(s *Style) { s.LineWidth = w }
}

// newStyle builds a style from options and validates it.
func newStyle(opts ...Option) (Style, error) {
	s := Style{Color: planar.Black, LineColor: planar.Black}
	for _, opt := range opts {
		opt(&s)
	}
	if s.LineWidth < 0 {
		return Style{}, fmt.Errorf("%w: %v", ErrNegativeLineWidth, s.LineWidth)
	}
	if s.Color == nil {
		s.Color = planar.Black
	}
	if s.LineColor == nil {
		s.LineColor = planar.Black
	}
	return s, nil
}
