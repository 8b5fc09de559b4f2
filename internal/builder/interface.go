package builder

import (
	"context"

	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/pptx"
)

// Builder assembles a presentation from a deck model.
//
// Build returns an error when:
//   - an element kind has no registered handler
//   - an argument is missing, unknown, or of the wrong type
//   - a colour in the palette, theme or a slide background cannot be parsed
//   - a handler rejects its decoded input
//
// Decode problems are returned as hcl.Diagnostics (possibly wrapped), so
// callers can report every source range at once.
type Builder interface {
	Build(ctx context.Context, model *config.Model) (*pptx.Presentation, error)
}
