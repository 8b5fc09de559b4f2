package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deckgen/internal/app"
	"github.com/vk/deckgen/internal/inspect"
)

func TestRun_BuildsDeck(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := filepath.Join(t.TempDir(), "pitch.pptx")
	args := []string{"-variant", "extended", "-o", out, "-assets", t.TempDir(), "-log-level", "error", "-env-file", ""}
	var stdout bytes.Buffer

	// --- Act ---
	err := run(&stdout, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "✅ Presentation saved: "+out+"\n", stdout.String())
	summary, err := inspect.File(out)
	require.NoError(t, err)
	assert.Equal(t, 13, summary.Slides)
}

func TestRun_InvalidDeck(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error is reported with its source range, and no file is written.
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
		deck "broken" {
			title = "Missing closing brace"
	`), 0o600))
	out := filepath.Join(dir, "out.pptx")

	// --- Act ---
	runErr := run(&bytes.Buffer{}, []string{"-o", out, "-env-file", "", path})

	// --- Assert ---
	require.Error(t, runErr)
	var deckErr *app.DeckError
	require.ErrorAs(t, runErr, &deckErr)
	assert.Contains(t, runErr.Error(), "main.hcl:")
	assert.NoFileExists(t, out)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
