package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// rootSchema lists the top-level blocks a deck file may contain. Top-level
// attributes and unknown blocks are rejected.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "deck", LabelNames: []string{"name"}},
		{Type: "palette"},
		{Type: "theme"},
		{Type: "slide", LabelNames: []string{"name"}},
	},
}

// deckBody is the content of the `deck "<name>"` block.
type deckBody struct {
	Title   string   `hcl:"title,optional"`
	Author  string   `hcl:"author,optional"`
	Output  string   `hcl:"output,optional"`
	Created string   `hcl:"created,optional"`
	Width   *float64 `hcl:"width,optional"`
	Height  *float64 `hcl:"height,optional"`
	Font    string   `hcl:"font,optional"`
}

// slideBody is the content of a `slide "<name>"` block.
type slideBody struct {
	Background hcl.Expression  `hcl:"background,optional"`
	Elements   []*elementBlock `hcl:"element,block"`
}

// elementBlock is an `element "<kind>" "<name>"` block. Its arguments depend
// on the kind, so the body is kept raw.
type elementBlock struct {
	Kind     string    `hcl:"kind,label"`
	Name     string    `hcl:"name,label"`
	Body     hcl.Body  `hcl:",remain"`
	DefRange hcl.Range `hcl:",def_range"`
}
