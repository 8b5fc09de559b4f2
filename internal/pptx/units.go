package pptx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EMU is an English Metric Unit, the coordinate unit used throughout OOXML.
type EMU int64

const (
	// EMUPerInch is the number of EMUs in one inch.
	EMUPerInch EMU = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint EMU = 12700
)

// Inches converts a length in inches to EMUs, rounding to the nearest unit.
func Inches(v float64) EMU {
	return EMU(math.Round(v * float64(EMUPerInch)))
}

// Points converts a length in points to EMUs, rounding to the nearest unit.
func Points(v float64) EMU {
	return EMU(math.Round(v * float64(EMUPerPoint)))
}

// Inches returns the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / float64(EMUPerInch)
}

// Rect is a placement on the slide: offset and extent in EMUs.
type Rect struct {
	X, Y EMU
	W, H EMU
}

// InchRect builds a Rect from left, top, width and height in inches.
func InchRect(left, top, width, height float64) Rect {
	return Rect{X: Inches(left), Y: Inches(top), W: Inches(width), H: Inches(height)}
}

// Color is a 24-bit sRGB colour.
type Color struct {
	R, G, B uint8
}

// Common colours.
var (
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	Black = Color{}
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor parses "RRGGBB" or "#RRGGBB" (case-insensitive).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: want six hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the colour as six upper-case hex digits, the form srgbClr expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return "#" + c.Hex()
}

// Font size bounds in points. Run sizes outside them are rejected when the
// package is written.
const (
	MinFontSize = 1.0
	MaxFontSize = 4000.0
)

// Validate reports a negative extent. Offsets may be negative, extents may not.
func (r Rect) Validate() error {
	if r.W < 0 || r.H < 0 {
		return fmt.Errorf("negative extent %.3gx%.3gin", r.W.Inches(), r.H.Inches())
	}
	return nil
}

// ValidateFontSize checks a run size in points. Zero means "inherit" and is
// allowed.
func ValidateFontSize(size float64) error {
	if size != 0 && (size < MinFontSize || size > MaxFontSize) {
		return fmt.Errorf("font size %gpt is outside %g-%gpt", size, MinFontSize, MaxFontSize)
	}
	return nil
}
