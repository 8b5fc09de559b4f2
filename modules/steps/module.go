package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/pptx"
	"github.com/vk/deckgen/internal/registry"
)

// circle is the diameter of the number badge, in inches.
const circle = 0.8

// Module implements the registry.Module interface for this package.
type Module struct{}

// Item is one step of the sequence.
type Item struct {
	Title string `cty:"title"`
	Body  string `cty:"body"`
}

// Input defines the arguments of a `steps` element.
type Input struct {
	Items  []Item  `deck:"items"`
	Left   float64 `deck:"left"`
	Top    float64 `deck:"top"`
	Width  float64 `deck:"width,optional"`
	Height float64 `deck:"height,optional"`
	Gap    float64 `deck:"gap,optional"`
	// Start is the number shown on the first step.
	Start int    `deck:"start,optional"`
	Fill  string `deck:"fill,optional"`
	Badge string `deck:"badge,optional"`
}

func newInput() any {
	return &Input{Width: 2.8, Height: 3, Gap: 0.3, Start: 1}
}

// Draw places one card per step, left to right. Each card carries a
// numbered circle, a bold title and a centred description.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	if input.Width <= 1 || input.Height <= 2 {
		return fmt.Errorf("step card %gx%g is too small", input.Width, input.Height)
	}
	theme := c.Theme()
	fill, err := canvas.ColorOr(input.Fill, theme.Surface)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	badge, err := canvas.ColorOr(input.Badge, theme.Accent)
	if err != nil {
		return fmt.Errorf("badge: %w", err)
	}

	for i, item := range input.Items {
		x := input.Left + float64(i)*(input.Width+input.Gap)
		c.AddShape(canvas.ShapeSpec{
			Geometry: pptx.GeometryRoundRect,
			Left:     x, Top: input.Top, Width: input.Width, Height: input.Height,
			Fill: &fill,
		})

		cx, cy := x+(input.Width-circle)/2, input.Top+0.3
		c.AddShape(canvas.ShapeSpec{
			Geometry: pptx.GeometryEllipse,
			Left:     cx, Top: cy, Width: circle, Height: circle,
			Fill: &badge,
		})
		c.AddText(canvas.TextSpec{
			Left: cx + 0.25, Top: cy + 0.1, Width: 0.5, Height: 0.5,
			Text: strconv.Itoa(input.Start + i), Size: 24, Color: pptx.White, Bold: true,
		})

		c.AddText(canvas.TextSpec{
			Left: x + 0.3, Top: input.Top + 1.4, Width: input.Width - 0.6, Height: 0.5,
			Text: item.Title, Size: 18, Color: theme.Text, Bold: true, Align: pptx.AlignCenter,
		})
		c.AddText(canvas.TextSpec{
			Left: x + 0.3, Top: input.Top + 2.0, Width: input.Width - 0.6, Height: 1,
			Text: item.Body, Size: 12, Color: theme.Muted, Align: pptx.AlignCenter,
		})
	}
	ctxlog.FromContext(ctx).Debug("Steps placed.", "steps", len(input.Items))
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("steps", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "A numbered left-to-right sequence of step cards.",
	})
}
