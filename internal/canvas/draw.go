package canvas

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/media"
	"github.com/vk/deckgen/internal/pptx"
)

// Card defaults, in inches.
const (
	DefaultCardWidth  = 3.5
	DefaultCardHeight = 2.0
	// CardInset pads the title and body on each side of a card.
	CardInset = 0.2
)

// CheckCardSize rejects cards too narrow to hold their inset text boxes.
func CheckCardSize(width, height float64) error {
	if width <= 2*CardInset || height <= 0 {
		return fmt.Errorf("card %gx%g is too small: width must exceed %gin and height must be positive", width, height, 2*CardInset)
	}
	return nil
}

// CheckFontSize rejects sizes a presentation cannot store.
func CheckFontSize(size float64) error {
	if size < pptx.MinFontSize || size > pptx.MaxFontSize {
		return fmt.Errorf("size must be between %g and %gpt, got %g", pptx.MinFontSize, pptx.MaxFontSize, size)
	}
	return nil
}

// CheckExtent rejects a negative width or height.
func CheckExtent(width, height float64) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("width and height must not be negative, got %gx%g", width, height)
	}
	return nil
}

// TextSpec places a word-wrapped text box.
type TextSpec struct {
	Left, Top, Width, Height float64
	Text                     string
	// Size is the font size in points.
	Size  float64
	Color pptx.Color
	Bold  bool
	Align pptx.Align
	// Font overrides the theme font.
	Font string
}

// AddText adds a text box. Each line of Text becomes its own paragraph, all
// styled alike.
func (c *Canvas) AddText(spec TextSpec) *pptx.Shape {
	font := pptx.Font{
		Name:  spec.Font,
		Size:  spec.Size,
		Bold:  spec.Bold,
		Color: spec.Color,
	}
	if font.Name == "" {
		font.Name = c.theme.Font
	}
	align := spec.Align
	if align == "" {
		align = pptx.AlignLeft
	}

	lines := strings.Split(spec.Text, "\n")
	paras := make([]pptx.Paragraph, 0, len(lines))
	for _, line := range lines {
		paras = append(paras, pptx.Paragraph{Text: line, Align: align, Font: font})
	}
	return c.slide.AddTextBox(pptx.InchRect(spec.Left, spec.Top, spec.Width, spec.Height), paras...)
}

// CardSpec places a titled card. Zero Width or Height take the card
// defaults; nil colours take the theme's.
type CardSpec struct {
	Left, Top, Width, Height float64
	Title, Body              string
	Fill                     *pptx.Color
	TitleColor               *pptx.Color
	BodyColor                *pptx.Color
}

// AddCard draws a filled, outline-free rounded rectangle with a bold title
// and a body paragraph inset by 0.2in. It returns the card shape.
func (c *Canvas) AddCard(spec CardSpec) *pptx.Shape {
	if spec.Width == 0 {
		spec.Width = DefaultCardWidth
	}
	if spec.Height == 0 {
		spec.Height = DefaultCardHeight
	}
	fill := pick(spec.Fill, c.theme.Surface)

	card := c.slide.AddShape(pptx.GeometryRoundRect, pptx.InchRect(spec.Left, spec.Top, spec.Width, spec.Height))
	card.Fill = &fill

	inner := spec.Width - 2*CardInset
	c.AddText(TextSpec{
		Left: spec.Left + CardInset, Top: spec.Top + CardInset, Width: inner, Height: 0.5,
		Text: spec.Title, Size: 14, Bold: true, Color: pick(spec.TitleColor, c.theme.Accent),
	})
	c.AddText(TextSpec{
		Left: spec.Left + CardInset, Top: spec.Top + 0.6, Width: inner, Height: 1.2,
		Text: spec.Body, Size: 11, Color: pick(spec.BodyColor, c.theme.Muted),
	})
	return card
}

// ShapeSpec places a preset auto-shape.
type ShapeSpec struct {
	Geometry                 pptx.Geometry
	Left, Top, Width, Height float64
	// Fill nil leaves the shape unfilled.
	Fill *pptx.Color
	// Line nil leaves the shape without an outline.
	Line *pptx.Color
	// LineWidth is the outline width in points; zero means 1pt.
	LineWidth float64

	// Label is optional text centred inside the shape.
	Label      string
	LabelSize  float64
	LabelColor pptx.Color
	LabelBold  bool
}

// AddShape draws an auto-shape.
func (c *Canvas) AddShape(spec ShapeSpec) *pptx.Shape {
	geom := spec.Geometry
	if geom == "" {
		geom = pptx.GeometryRoundRect
	}
	sh := c.slide.AddShape(geom, pptx.InchRect(spec.Left, spec.Top, spec.Width, spec.Height))
	if spec.Fill != nil {
		fill := *spec.Fill
		sh.Fill = &fill
	}
	if spec.Line != nil {
		width := spec.LineWidth
		if width <= 0 {
			width = 1
		}
		sh.Line = &pptx.Line{Color: *spec.Line, Width: pptx.Points(width)}
	}
	if spec.Label != "" {
		font := pptx.Font{Name: c.theme.Font, Size: spec.LabelSize, Bold: spec.LabelBold, Color: spec.LabelColor}
		for _, line := range strings.Split(spec.Label, "\n") {
			sh.Paragraphs = append(sh.Paragraphs, pptx.Paragraph{Text: line, Align: pptx.AlignCenter, Font: font})
		}
	}
	return sh
}

// ImageSpec places a picture from the assets directory.
type ImageSpec struct {
	Path                     string
	Left, Top, Width, Height float64
	Description              string
	// Optional pictures whose file is missing are skipped.
	Optional bool
}

// AddImage embeds the picture, scaled to fit the box with its aspect ratio
// kept. It reports whether a picture was placed: a missing optional file
// yields false and no error.
func (c *Canvas) AddImage(ctx context.Context, spec ImageSpec) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	path := spec.Path
	if !filepath.IsAbs(path) && c.assets != "" {
		path = filepath.Join(c.assets, path)
	}

	asset, err := media.Load(path)
	if err != nil {
		if spec.Optional && errors.Is(err, media.ErrNotFound) {
			logger.Debug("Optional image not found, skipping.", "path", path, "slide", c.slide.Index())
			return false, nil
		}
		return false, err
	}
	if asset.Converted() {
		logger.Debug("Converted image for embedding.", "path", path, "from", asset.Source, "to", asset.Ext)
	}

	box := pptx.InchRect(spec.Left, spec.Top, spec.Width, spec.Height)
	pic, err := c.slide.AddPicture(asset.Data, asset.Ext, media.Fit(box, asset.Width, asset.Height))
	if err != nil {
		return false, fmt.Errorf("embedding %s: %w", path, err)
	}
	pic.Description = spec.Description
	if pic.Description == "" {
		pic.Description = filepath.Base(path)
	}
	logger.Debug("Image placed.", "path", path, "slide", c.slide.Index(), "width_px", asset.Width, "height_px", asset.Height)
	return true, nil
}

func pick(c *pptx.Color, fallback pptx.Color) pptx.Color {
	if c != nil {
		return *c
	}
	return fallback
}
