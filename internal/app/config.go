package app

import (
	"errors"

	"github.com/vk/deckgen/decks"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DeckPath string // hcl file or directory
	Variant  string // builtin deck name, used when DeckPath is empty

	OutputPath string // overrides the deck's own output name
	AssetsDir  string // images are resolved against this directory
	ExportDir  string // write the builtin deck source here instead of building

	Inspect bool // read the written file back and print a summary
	List    bool // print the builtin deck names and exit

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DeckPath != "" && cfg.Variant != "" {
		return nil, errors.New("a deck path and a builtin variant cannot be used together")
	}
	if cfg.ExportDir != "" && cfg.DeckPath != "" {
		return nil, errors.New("export is only available for builtin decks")
	}
	if cfg.ExportDir != "" && cfg.Inspect {
		return nil, errors.New("inspect needs a built deck and cannot be combined with export")
	}
	if cfg.DeckPath == "" && cfg.Variant == "" {
		cfg.Variant = decks.Default
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = "assets"
	}

	return &cfg, nil
}
