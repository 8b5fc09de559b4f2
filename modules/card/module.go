package card

import (
	"context"
	"fmt"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of a `card` element.
type Input struct {
	Title      string  `deck:"title"`
	Body       string  `deck:"body"`
	Left       float64 `deck:"left"`
	Top        float64 `deck:"top"`
	Width      float64 `deck:"width,optional"`
	Height     float64 `deck:"height,optional"`
	Fill       string  `deck:"fill,optional"`
	TitleColor string  `deck:"title_color,optional"`
	BodyColor  string  `deck:"body_color,optional"`
}

func newInput() any {
	return &Input{Width: canvas.DefaultCardWidth, Height: canvas.DefaultCardHeight}
}

// Style holds the optional colour overrides shared by every card-drawing
// element.
type Style struct {
	Fill, Title, Body string
}

// Resolve parses the overrides. Empty entries stay nil so the theme applies.
func (s Style) Resolve(spec *canvas.CardSpec) error {
	var err error
	if spec.Fill, err = canvas.OptionalColor(s.Fill); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	if spec.TitleColor, err = canvas.OptionalColor(s.Title); err != nil {
		return fmt.Errorf("title_color: %w", err)
	}
	if spec.BodyColor, err = canvas.OptionalColor(s.Body); err != nil {
		return fmt.Errorf("body_color: %w", err)
	}
	return nil
}

// Draw places one titled card.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	if err := canvas.CheckCardSize(input.Width, input.Height); err != nil {
		return err
	}
	spec := canvas.CardSpec{
		Left: input.Left, Top: input.Top, Width: input.Width, Height: input.Height,
		Title: input.Title, Body: input.Body,
	}
	if err := (Style{Fill: input.Fill, Title: input.TitleColor, Body: input.BodyColor}).Resolve(&spec); err != nil {
		return err
	}
	c.AddCard(spec)
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("card", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "A rounded card with a bold title and a body paragraph.",
	})
}
