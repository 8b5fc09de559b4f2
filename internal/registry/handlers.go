package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/deckgen/internal/canvas"
)

// Handler draws one decoded element onto a slide.
type Handler func(ctx context.Context, c *canvas.Canvas, input any) error

// RegisteredElement holds the compiled Go parts of an element kind.
type RegisteredElement struct {
	// NewInput returns a pointer to a fresh input struct with its defaults
	// filled in. Optional arguments omitted in the deck keep those values.
	NewInput    func() any
	Fn          Handler
	Description string
}

// Typed adapts a handler that takes its concrete input type.
func Typed[T any](fn func(ctx context.Context, c *canvas.Canvas, input *T) error) Handler {
	return func(ctx context.Context, c *canvas.Canvas, input any) error {
		in, ok := input.(*T)
		if !ok {
			var want *T
			return fmt.Errorf("handler expects input of type %T, got %T", want, input)
		}
		return fn(ctx, c, in)
	}
}

// RegisterElement registers the Go handler for an element kind.
func (r *Registry) RegisterElement(kind string, el *RegisteredElement) {
	if _, exists := r.ElementRegistry[kind]; exists {
		panic(fmt.Sprintf("element handler for kind '%s' already registered", kind))
	}
	slog.Debug("Registering element handler.", "kind", kind)
	r.ElementRegistry[kind] = el
}
