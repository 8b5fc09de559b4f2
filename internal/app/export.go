package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/deckgen/decks"
	"github.com/vk/deckgen/internal/hclutil"
)

// export writes the builtin deck source, canonically formatted, into
// ExportDir so it can be edited and built with --deck. The source is loaded
// first so a broken builtin is never exported.
func (a *App) export(ctx context.Context) (string, error) {
	src, err := decks.Source(a.config.Variant)
	if err != nil {
		return "", err
	}
	if _, _, err := a.loader.LoadSources(ctx, src); err != nil {
		return "", withDiagnostics(err)
	}

	if err := os.MkdirAll(a.config.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(a.config.ExportDir, a.config.Variant+".hcl")
	if err := os.WriteFile(path, hclutil.Format(src.Data), 0o644); err != nil {
		return "", fmt.Errorf("failed to export deck: %w", err)
	}
	a.logger.Debug("Deck exported.", "variant", a.config.Variant, "path", path)
	return path, nil
}
