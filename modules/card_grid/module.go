package card_grid

import (
	"context"
	"fmt"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/registry"
	"github.com/vk/deckgen/modules/card"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Item is one card of the grid.
type Item struct {
	Title string `cty:"title"`
	Body  string `cty:"body"`
}

// Input defines the arguments of a `card_grid` element. Width and Height
// size each card; the gaps separate neighbouring cards.
type Input struct {
	Items      []Item  `deck:"items"`
	Columns    int     `deck:"columns,optional"`
	Left       float64 `deck:"left"`
	Top        float64 `deck:"top"`
	Width      float64 `deck:"width,optional"`
	Height     float64 `deck:"height,optional"`
	GapX       float64 `deck:"gap_x,optional"`
	GapY       float64 `deck:"gap_y,optional"`
	Fill       string  `deck:"fill,optional"`
	TitleColor string  `deck:"title_color,optional"`
	BodyColor  string  `deck:"body_color,optional"`
}

func newInput() any {
	return &Input{
		Columns: 3,
		Width:   canvas.DefaultCardWidth,
		Height:  canvas.DefaultCardHeight,
		GapX:    0.2,
		GapY:    0.2,
	}
}

// Draw lays the cards out row-major: left to right, then top to bottom.
func Draw(ctx context.Context, c *canvas.Canvas, input *Input) error {
	if input.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", input.Columns)
	}
	if err := canvas.CheckCardSize(input.Width, input.Height); err != nil {
		return err
	}
	style := card.Style{Fill: input.Fill, Title: input.TitleColor, Body: input.BodyColor}

	for i, item := range input.Items {
		col, row := i%input.Columns, i/input.Columns
		spec := canvas.CardSpec{
			Left:   input.Left + float64(col)*(input.Width+input.GapX),
			Top:    input.Top + float64(row)*(input.Height+input.GapY),
			Width:  input.Width,
			Height: input.Height,
			Title:  item.Title,
			Body:   item.Body,
		}
		if err := style.Resolve(&spec); err != nil {
			return err
		}
		c.AddCard(spec)
	}
	ctxlog.FromContext(ctx).Debug("Card grid placed.", "cards", len(input.Items), "columns", input.Columns)
	return nil
}

// Register registers the handler with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterElement("card_grid", &registry.RegisteredElement{
		NewInput:    newInput,
		Fn:          registry.Typed(Draw),
		Description: "Equal-sized cards laid out row by row.",
	})
}
