package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL deck loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths, in lexical order, and merges them
// into a single deck model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no .hcl deck files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files), "files", files)

	parser := hclparse.NewParser()
	var parsed []*hcl.File
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, hclFile)
	}

	return l.load(ctx, parsed)
}

// LoadSources parses in-memory deck files in the order given.
func (l *Loader) LoadSources(ctx context.Context, sources ...config.Source) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started from memory.", "source_count", len(sources))

	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("no deck sources given")
	}

	parser := hclparse.NewParser()
	var parsed []*hcl.File
	for _, src := range sources {
		hclFile, diags := parser.ParseHCL(src.Data, src.Name)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL source %s: %w", src.Name, diags)
		}
		parsed = append(parsed, hclFile)
	}

	return l.load(ctx, parsed)
}

func (l *Loader) load(ctx context.Context, files []*hcl.File) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)

	model, diags := translate(files)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to decode deck: %w", diags)
	}

	elements := 0
	for _, s := range model.Slides {
		elements += len(s.Elements)
	}
	logger.Debug("HCL loading complete.",
		"deck", model.Deck.Name,
		"slides", len(model.Slides),
		"elements", elements,
		"palette", len(model.Palette),
	)
	return model, NewConverter(), nil
}

// findAllHCLFiles expands the given paths into a flat, de-duplicated list of
// .hcl files. Directories are searched recursively, files are taken as-is.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		allFiles = append(allFiles, p)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return allFiles, nil
}
