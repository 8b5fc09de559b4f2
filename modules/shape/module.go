package shape

import (
	"context"
	"fmt"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a `shape` element.
type Input struct {
	Shape  string  `deck:"shape,optional"`
	Left   float64 `deck:"left"`
	Top    float64 `deck:"top"`
	Width  float64 `deck:"width"`
	Height float64 `deck:"height"`
	// Fill and Line are colours; empty means none.
	Fill      string  `deck:"fill,optional"`
	Line      string  `deck:"line,optional"`
	LineWidth float64 `deck:"line_width,optional"`

	Label      string  `deck:"label,optional"`
	LabelSize  float64 `deck:"label_size,optional"`
	LabelColor string  `deck:"label_color,optional"`
	LabelBold  bool    `deck:"label_bold,optional"`
}

func newInput() any {
	return &Input{Shape: "round_rect", LineWidth: 1, LabelSize: 18, LabelBold: true}
}

// Draw places a preset auto-shape, optionally with a centred label.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	geom, err := canvas.ParseGeometry(input.Shape)
	if err != nil {
		return err
	}
	if input.Width <= 0 || input.Height <= 0 {
		return fmt.Errorf("shape size must be positive, got %gx%g", input.Width, input.Height)
	}
	if input.Label != "" {
		if err := canvas.CheckFontSize(input.LabelSize); err != nil {
			return fmt.Errorf("label_size: %w", err)
		}
	}
	fill, err := canvas.OptionalColor(input.Fill)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	line, err := canvas.OptionalColor(input.Line)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	labelColor, err := canvas.ColorOr(input.LabelColor, c.Theme().Text)
	if err != nil {
		return fmt.Errorf("label_color: %w", err)
	}

	c.AddShape(canvas.ShapeSpec{
		Geometry: geom,
		Left:     input.Left, Top: input.Top, Width: input.Width, Height: input.Height,
		Fill: fill, Line: line, LineWidth: input.LineWidth,
		Label: input.Label, LabelSize: input.LabelSize, LabelColor: labelColor, LabelBold: input.LabelBold,
	})
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("shape", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "A rectangle, rounded rectangle or ellipse with optional label.",
	})
}
