package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific deck loader.
type Loader interface {
	// Load reads every deck file under the given paths, translates them into
	// the format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)

	// LoadSources does the same for in-memory files.
	LoadSources(ctx context.Context, sources ...Source) (*Model, Converter, error)
}

// Converter is the interface for format-specific data binding. It bridges the
// raw element arguments and the Go input structs of the element handlers.
type Converter interface {
	// EvalContext returns the evaluation context argument expressions are
	// evaluated in: the palette, deck metadata and helper functions.
	EvalContext(model *Model) *hcl.EvalContext

	// DecodeBody evaluates args and populates the fields of target, a
	// pointer to a struct whose fields carry `deck:"name[,optional]"` tags.
	// Fields of omitted optional arguments keep their current value.
	DecodeBody(ctx context.Context, target any, args map[string]hcl.Expression, evalCtx *hcl.EvalContext) error
}
