package text

import (
	"context"
	"fmt"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a `text` element.
type Input struct {
	Text   string  `deck:"text"`
	Left   float64 `deck:"left"`
	Top    float64 `deck:"top"`
	Width  float64 `deck:"width"`
	Height float64 `deck:"height"`
	Size   float64 `deck:"size,optional"`
	Color  string  `deck:"color,optional"`
	Bold   bool    `deck:"bold,optional"`
	Align  string  `deck:"align,optional"`
	Font   string  `deck:"font,optional"`
}

func newInput() any {
	return &Input{Size: 18, Align: "left"}
}

// Draw places a word-wrapped text box. An empty colour uses the theme's text
// colour.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	if err := canvas.CheckFontSize(input.Size); err != nil {
		return err
	}
	if err := canvas.CheckExtent(input.Width, input.Height); err != nil {
		return err
	}
	color, err := canvas.ColorOr(input.Color, c.Theme().Text)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	align, err := canvas.ParseAlign(input.Align)
	if err != nil {
		return err
	}

	sh := c.AddText(canvas.TextSpec{
		Left: input.Left, Top: input.Top, Width: input.Width, Height: input.Height,
		Text: input.Text, Size: input.Size, Color: color, Bold: input.Bold, Align: align, Font: input.Font,
	})
	ctxlog.FromContext(ctx).Debug("Text placed.", "shape", sh.Name, "paragraphs", len(sh.Paragraphs))
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("text", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "A word-wrapped text box; newlines start new paragraphs.",
	})
}
