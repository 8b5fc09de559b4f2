package builder

import (
	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/registry"
)

// DefaultBuilder builds decks using the handlers in a registry.
type DefaultBuilder struct {
	reg       *registry.Registry
	conv      config.Converter
	assetsDir string
}

// New creates a builder. Relative image paths are resolved against assetsDir.
func New(reg *registry.Registry, conv config.Converter, assetsDir string) Builder {
	return &DefaultBuilder{reg: reg, conv: conv, assetsDir: assetsDir}
}
