package tile_grid

import (
	"context"
	"fmt"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/pptx"
	"github.com/vk/deckgen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a `tile_grid` element: one-line labels on
// rounded tiles, filled row by row.
type Input struct {
	Items   []string `deck:"items"`
	Columns int      `deck:"columns,optional"`
	Left    float64  `deck:"left"`
	Top     float64  `deck:"top"`
	Width   float64  `deck:"width,optional"`
	Height  float64  `deck:"height,optional"`
	GapX    float64  `deck:"gap_x,optional"`
	GapY    float64  `deck:"gap_y,optional"`
	Size    float64  `deck:"size,optional"`
	Color   string   `deck:"color,optional"`
	Fill    string   `deck:"fill,optional"`
}

func newInput() any {
	return &Input{Columns: 2, Width: 5.5, Height: 0.7, GapX: 0.3, GapY: 0.3, Size: 14}
}

// Draw places the tiles. Labels sit 0.3in in and 0.15in down from the tile
// corner.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	if input.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", input.Columns)
	}
	if input.Width <= 0.5 || input.Height <= 0 {
		return fmt.Errorf("tile size %gx%g is too small", input.Width, input.Height)
	}
	if err := canvas.CheckFontSize(input.Size); err != nil {
		return err
	}
	color, err := canvas.ColorOr(input.Color, c.Theme().Text)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	fill, err := canvas.ColorOr(input.Fill, c.Theme().Surface)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}

	for i, item := range input.Items {
		x := input.Left + float64(i%input.Columns)*(input.Width+input.GapX)
		y := input.Top + float64(i/input.Columns)*(input.Height+input.GapY)
		c.AddShape(canvas.ShapeSpec{
			Geometry: pptx.GeometryRoundRect,
			Left:     x, Top: y, Width: input.Width, Height: input.Height,
			Fill: &fill,
		})
		c.AddText(canvas.TextSpec{
			Left: x + 0.3, Top: y + 0.15, Width: input.Width - 0.5, Height: 0.5,
			Text: item, Size: input.Size, Color: color,
		})
	}
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("tile_grid", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "One-line labels on rounded tiles, filled row by row.",
	})
}
