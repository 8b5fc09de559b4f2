package image

import (
	"context"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of an `image` element. Path is resolved against
// the assets directory.
type Input struct {
	Path        string  `deck:"path"`
	Left        float64 `deck:"left"`
	Top         float64 `deck:"top"`
	Width       float64 `deck:"width"`
	Height      float64 `deck:"height"`
	Description string  `deck:"description,optional"`
	Optional    bool    `deck:"optional,optional"`
}

func newInput() any {
	return &Input{Optional: true}
}

// Draw embeds the picture scaled to fit its box. A missing optional file is
// skipped.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	_, err := c.AddImage(ctx, canvas.ImageSpec{
		Path: input.Path,
		Left: input.Left, Top: input.Top, Width: input.Width, Height: input.Height,
		Description: input.Description,
		Optional:    input.Optional,
	})
	return err
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("image", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "A picture from the assets directory; skipped when optional and missing.",
	})
}
