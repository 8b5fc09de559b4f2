// Package decks embeds the builtin deck variants.
package decks

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vk/deckgen/internal/config"
)

// Default is the deck built when no deck file or variant is given.
const Default = "lime"

//go:embed *.hcl
var files embed.FS

// Names returns the builtin deck names in sorted order.
func Names() []string {
	entries, err := fs.Glob(files, "*.hcl")
	if err != nil {
		// The pattern is constant and valid.
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, path.Ext(e)))
	}
	sort.Strings(names)
	return names
}

// Source returns the HCL source of a builtin deck.
func Source(name string) (config.Source, error) {
	file := name + ".hcl"
	data, err := files.ReadFile(file)
	if err != nil {
		return config.Source{}, fmt.Errorf("unknown deck variant %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return config.Source{Name: "builtin/" + file, Data: data}, nil
}
