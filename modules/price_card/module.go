package price_card

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/pptx"
	"github.com/vk/deckgen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a `price_card` element.
type Input struct {
	Tier     string   `deck:"tier"`
	Price    string   `deck:"price"`
	Unit     string   `deck:"unit,optional"`
	Features []string `deck:"features,optional"`
	Left     float64  `deck:"left"`
	Top      float64  `deck:"top"`
	Width    float64  `deck:"width,optional"`
	Height   float64  `deck:"height,optional"`
	// Badge is a short label drawn just above the card, e.g. "★ POPULAR".
	Badge string `deck:"badge,optional"`
	// Highlight outlines the card in the accent colour.
	Highlight bool `deck:"highlight,optional"`
	// Bullet prefixes every feature line.
	Bullet string `deck:"bullet,optional"`
}

func newInput() any {
	return &Input{Width: 3.8, Height: 5, Bullet: "✓ "}
}

// Draw places a pricing tier card: upper-cased tier name, large price, unit
// line and a bulleted feature list.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	if input.Width <= 1.3 || input.Height <= 2.5 {
		return fmt.Errorf("price card %gx%g is too small: width must exceed 1.3in and height 2.5in", input.Width, input.Height)
	}
	theme := c.Theme()
	x, y := input.Left, input.Top

	spec := canvas.ShapeSpec{
		Geometry: pptx.GeometryRoundRect,
		Left:     x, Top: y, Width: input.Width, Height: input.Height,
		Fill: &theme.Surface,
	}
	if input.Highlight {
		spec.Line = &theme.Accent
		spec.LineWidth = 2
	}
	c.AddShape(spec)

	if input.Badge != "" {
		c.AddText(canvas.TextSpec{
			Left: x + 0.7, Top: y - 0.2, Width: input.Width - 1.3, Height: 0.3,
			Text: input.Badge, Size: 10, Color: theme.Accent, Bold: true, Align: pptx.AlignCenter,
		})
	}

	inner := input.Width - 0.3
	c.AddText(canvas.TextSpec{
		Left: x + 0.2, Top: y + 0.2, Width: inner, Height: 0.4,
		Text: strings.ToUpper(input.Tier), Size: 12, Color: theme.Accent, Bold: true, Align: pptx.AlignCenter,
	})
	c.AddText(canvas.TextSpec{
		Left: x + 0.2, Top: y + 0.7, Width: inner, Height: 0.6,
		Text: input.Price, Size: 40, Color: theme.Text, Bold: true, Align: pptx.AlignCenter,
	})
	c.AddText(canvas.TextSpec{
		Left: x + 0.2, Top: y + 1.3, Width: inner, Height: 0.3,
		Text: input.Unit, Size: 12, Color: theme.Muted, Align: pptx.AlignCenter,
	})

	if len(input.Features) > 0 {
		lines := make([]string, len(input.Features))
		for i, f := range input.Features {
			lines[i] = input.Bullet + f
		}
		c.AddText(canvas.TextSpec{
			Left: x + 0.4, Top: y + 2.0, Width: input.Width - 0.6, Height: input.Height - 2.5,
			Text: strings.Join(lines, "\n"), Size: 11, Color: theme.Muted,
		})
	}
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("price_card", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "A pricing tier card with optional badge and accent outline.",
	})
}
