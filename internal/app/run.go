package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/deckgen/decks"
	"github.com/vk/deckgen/internal/builder"
	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/hclutil"
	"github.com/vk/deckgen/internal/inspect"
)

// DeckError reports every problem found in a deck. The error string of
// hcl.Diagnostics only shows the first one.
type DeckError struct {
	Diags hcl.Diagnostics
}

func (e *DeckError) Error() string {
	return "invalid deck:\n" + hclutil.FormatDiagnostics(e.Diags)
}

func (e *DeckError) Unwrap() error {
	return e.Diags
}

// withDiagnostics replaces err by a DeckError when it carries diagnostics.
func withDiagnostics(err error) error {
	var diags hcl.Diagnostics
	if errors.As(err, &diags) {
		return &DeckError{Diags: diags}
	}
	return err
}

// Run executes the main application logic based on the app's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case a.config.List:
		return a.list()
	case a.config.ExportDir != "":
		path, err := a.export(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "📝 Deck exported: %s\n", path)
		return nil
	}

	model, conv, err := a.load(ctx)
	if err != nil {
		return withDiagnostics(err)
	}
	if err := a.registry.ValidateModel(ctx, model); err != nil {
		return err
	}

	b := builder.New(a.registry, conv, a.config.AssetsDir)
	pres, err := b.Build(ctx, model)
	if err != nil {
		return withDiagnostics(err)
	}

	out := outputPath(a.config, model)
	if err := pres.Save(out); err != nil {
		return fmt.Errorf("failed to save presentation: %w", err)
	}
	a.logger.Debug("Presentation written.", "path", out, "slides", len(pres.Slides()))
	fmt.Fprintf(a.outW, "✅ Presentation saved: %s\n", out)

	if a.config.Inspect {
		summary, err := inspect.File(out)
		if err != nil {
			return err
		}
		if err := summary.Write(a.outW); err != nil {
			return fmt.Errorf("failed to print summary: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// load reads the deck from DeckPath, or the builtin variant.
func (a *App) load(ctx context.Context) (*config.Model, config.Converter, error) {
	if a.config.DeckPath != "" {
		a.logger.Debug("Loading deck from path.", "path", a.config.DeckPath)
		return a.loader.Load(ctx, a.config.DeckPath)
	}
	src, err := decks.Source(a.config.Variant)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("Loading builtin deck.", "variant", a.config.Variant)
	return a.loader.LoadSources(ctx, src)
}

// outputPath picks the output file: the explicit flag, then the deck's own
// output name, then "<deck name>.pptx".
func outputPath(cfg *Config, model *config.Model) string {
	switch {
	case cfg.OutputPath != "":
		return cfg.OutputPath
	case model.Deck.Output != "":
		return model.Deck.Output
	default:
		return model.Deck.Name + ".pptx"
	}
}

func (a *App) list() error {
	for _, name := range decks.Names() {
		marker := ""
		if name == decks.Default {
			marker = " (default)"
		}
		if _, err := fmt.Fprintf(a.outW, "%s%s\n", name, marker); err != nil {
			return err
		}
	}
	a.logger.Debug("Builtin decks listed.", "decks", strings.Join(decks.Names(), ","))
	return nil
}
