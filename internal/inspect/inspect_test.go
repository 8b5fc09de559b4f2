package inspect

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/deckgen/internal/pptx"
)

func writeDeck(t *testing.T) string {
	t.Helper()
	pres := pptx.New()
	pres.Properties.Title = "Pitch"
	pres.Properties.Creator = "Team"

	font := pptx.Font{Name: "Arial", Size: 24}
	s1 := pres.AddSlide()
	s1.AddTextBox(pptx.InchRect(0, 0, 5, 1), pptx.Paragraph{Text: "medd sim", Font: font})
	s1.AddShape(pptx.GeometryRoundRect, pptx.InchRect(1, 1, 2, 2))

	s2 := pres.AddSlide()
	s2.AddTextBox(pptx.InchRect(0, 0, 5, 1),
		pptx.Paragraph{Text: "Ready to transform how", Font: font},
		pptx.Paragraph{Text: "your team practices?", Font: font},
	)
	s2.AddTextBox(pptx.InchRect(0, 2, 5, 1), pptx.Paragraph{Text: "Pricing", Font: font})

	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, pres.Save(path))
	return path
}

func TestFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeDeck(t)

	// --- Act ---
	s, err := File(path)

	// --- Assert ---
	require.NoError(t, err)
	want := &Summary{
		Title:       "Pitch",
		Author:      "Team",
		Application: "deckgen",
		Slides:      2,
		Texts: [][]string{
			{"medd sim"},
			{"Ready to transform how\nyour team practices?", "Pricing"},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestFile_NotADeck(t *testing.T) {
	t.Parallel()

	_, err := File(filepath.Join(t.TempDir(), "missing.pptx"))
	assert.ErrorContains(t, err, "failed to open deck")
}

func TestWrite(t *testing.T) {
	t.Parallel()

	s := &Summary{
		Slides: 1,
		Texts:  [][]string{{"Ready to transform how\nyour team practices?"}},
	}
	var buf bytes.Buffer

	require.NoError(t, s.Write(&buf))

	want := "(untitled): 1 slides\n  slide 1 (1 text blocks)\n    - Ready to transform how …\n"
	assert.Equal(t, want, buf.String())
}
