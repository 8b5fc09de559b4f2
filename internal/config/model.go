package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Defaults applied when a deck leaves a field unset.
const (
	DefaultWidth  = 13.333
	DefaultHeight = 7.5
	DefaultFont   = "Arial"
)

// Model is the unified, format-agnostic representation of one deck: its
// metadata, named colours, theme and ordered slides.
type Model struct {
	Deck    Deck
	Palette map[string]string
	// Theme holds the raw theme arguments; they are evaluated against the
	// palette when the deck is built.
	Theme  map[string]hcl.Expression
	Slides []*Slide
}

// Deck is the format-agnostic representation of the `deck` block.
type Deck struct {
	Name   string
	Title  string
	Author string
	// Output is the default output file name, relative to the working
	// directory. Empty means "<Name>.pptx".
	Output string
	// Created is an RFC 3339 timestamp recorded in the document properties.
	// Empty keeps the output free of wall-clock data.
	Created string
	// Width and Height are the slide size in inches.
	Width, Height float64
	Font          string
	DefRange      hcl.Range
}

// Slide is the format-agnostic representation of a `slide` block.
type Slide struct {
	Name string
	// Background is nil when the slide has no background of its own.
	Background hcl.Expression
	Elements   []*Element
	DefRange   hcl.Range
}

// Element is one drawable block on a slide. Kind selects the registered
// handler; Arguments are decoded into that handler's input struct.
type Element struct {
	Kind      string
	Name      string
	Arguments map[string]hcl.Expression
	DefRange  hcl.Range
}

// Address returns a stable human-readable identifier for the element.
func (e *Element) Address() string {
	return e.Kind + "." + e.Name
}

// Source is an in-memory deck file, used for the builtin decks.
type Source struct {
	Name string
	Data []byte
}
