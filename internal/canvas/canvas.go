// Package canvas is the layout helper layer between element handlers and the
// pptx writer. Handlers describe placements in inches and colours by value;
// the canvas turns them into text boxes, shapes and pictures on one slide,
// filling in the deck theme where a caller leaves something unset.
package canvas

import (
	"fmt"
	"strings"

	"github.com/vk/deckgen/internal/pptx"
)

// Theme is the set of deck-wide defaults the helpers fall back on.
type Theme struct {
	Font string
	// Accent colours card titles and number circles.
	Accent pptx.Color
	// Text is the primary text colour.
	Text pptx.Color
	// Muted colours secondary text such as card bodies.
	Muted pptx.Color
	// Surface fills cards.
	Surface pptx.Color
}

// DefaultTheme returns the green-on-white theme the builtin decks start from.
func DefaultTheme() Theme {
	return Theme{
		Font:    "Arial",
		Accent:  pptx.RGB(0x0D, 0x6B, 0x56),
		Text:    pptx.RGB(0x1A, 0x1A, 0x1A),
		Muted:   pptx.RGB(0x4A, 0x4A, 0x4A),
		Surface: pptx.White,
	}
}

// Canvas draws onto a single slide.
type Canvas struct {
	slide  *pptx.Slide
	theme  Theme
	assets string
}

// New returns a Canvas for slide. Relative image paths are resolved against
// assetsDir.
func New(slide *pptx.Slide, theme Theme, assetsDir string) *Canvas {
	if theme.Font == "" {
		theme.Font = DefaultTheme().Font
	}
	return &Canvas{slide: slide, theme: theme, assets: assetsDir}
}

// Theme returns the theme the canvas falls back on.
func (c *Canvas) Theme() Theme { return c.theme }

// Slide returns the underlying slide.
func (c *Canvas) Slide() *pptx.Slide { return c.slide }

// SetBackground gives the slide a solid background colour.
func (c *Canvas) SetBackground(color pptx.Color) {
	c.slide.SetBackground(color)
}

// ParseAlign maps "left", "center" and "right" to paragraph alignments. An
// empty string is left alignment.
func ParseAlign(s string) (pptx.Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return pptx.AlignLeft, nil
	case "center", "centre":
		return pptx.AlignCenter, nil
	case "right":
		return pptx.AlignRight, nil
	default:
		return "", fmt.Errorf("unknown alignment %q: must be 'left', 'center' or 'right'", s)
	}
}

// ParseGeometry maps shape names used in deck files to preset geometries.
func ParseGeometry(s string) (pptx.Geometry, error) {
	switch strings.ToLower(s) {
	case "", "round_rect", "rounded_rectangle":
		return pptx.GeometryRoundRect, nil
	case "rect", "rectangle":
		return pptx.GeometryRect, nil
	case "ellipse", "oval", "circle":
		return pptx.GeometryEllipse, nil
	default:
		return "", fmt.Errorf("unknown shape %q: must be 'rect', 'round_rect' or 'ellipse'", s)
	}
}

// ColorOr parses s as a colour, returning fallback when s is empty.
func ColorOr(s string, fallback pptx.Color) (pptx.Color, error) {
	if s == "" {
		return fallback, nil
	}
	return pptx.ParseColor(s)
}

// OptionalColor parses s as a colour. An empty string yields nil.
func OptionalColor(s string) (*pptx.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := pptx.ParseColor(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
