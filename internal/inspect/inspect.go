// Package inspect reads a written deck back through an independent PPTX
// reader and summarises it. It is used by the --inspect flag and by tests
// that check what actually landed in the file.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/tabula/pptx"
)

// Summary is what a reader sees in a deck.
type Summary struct {
	Title       string
	Author      string
	Application string
	Slides      int
	// Texts holds, per slide, the text of each text-bearing shape in draw
	// order. Paragraphs of one shape are joined with "\n".
	Texts [][]string
}

// File opens the deck at path and summarises it.
func File(path string) (*Summary, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck %s: %w", path, err)
	}
	defer r.Close()

	meta := r.Metadata()
	s := &Summary{
		Title:       meta.Title,
		Author:      meta.Author,
		Application: meta.Creator,
		Slides:      r.SlideCount(),
		Texts:       make([][]string, 0, r.SlideCount()),
	}
	for i := 0; i < r.SlideCount(); i++ {
		slide, err := r.Slide(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read slide %d of %s: %w", i+1, path, err)
		}
		texts := make([]string, 0, len(slide.Content))
		for _, block := range slide.Content {
			texts = append(texts, block.Text)
		}
		s.Texts = append(s.Texts, texts)
	}
	return s, nil
}

// Write prints the summary as an indented outline: one heading per slide
// followed by its first line of each text block.
func (s *Summary) Write(w io.Writer) error {
	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	if _, err := fmt.Fprintf(w, "%s: %d slides\n", title, s.Slides); err != nil {
		return err
	}
	for i, texts := range s.Texts {
		if _, err := fmt.Fprintf(w, "  slide %d (%d text blocks)\n", i+1, len(texts)); err != nil {
			return err
		}
		for _, t := range texts {
			first, _, more := strings.Cut(t, "\n")
			if more {
				first += " …"
			}
			if _, err := fmt.Fprintf(w, "    - %s\n", first); err != nil {
				return err
			}
		}
	}
	return nil
}
