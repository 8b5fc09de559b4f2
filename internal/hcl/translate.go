// This file contains the logic for translating parsed HCL files into the
// format-agnostic deck model defined in the config package.

package hcl

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/hclutil"
	"github.com/vk/deckgen/internal/pptx"
)

// translate merges the top-level blocks of all files, in order, into a model.
func translate(files []*hcl.File) (*config.Model, hcl.Diagnostics) {
	var blocks hcl.Blocks
	var diags hcl.Diagnostics
	for _, f := range files {
		content, d := f.Body.Content(rootSchema)
		diags = append(diags, d...)
		if content != nil {
			blocks = append(blocks, content.Blocks...)
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	model := &config.Model{
		Palette: make(map[string]string),
		Theme:   make(map[string]hcl.Expression),
	}

	deckBlock, d := hclutil.FindUniqueBlock(blocks, "deck")
	diags = append(diags, d...)
	if deckBlock == nil {
		var subject *hcl.Range
		if len(files) > 0 {
			subject = files[0].Body.MissingItemRange().Ptr()
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing deck block",
			Detail:   `A deck needs exactly one "deck" block naming it.`,
			Subject:  subject,
		})
	} else {
		deck, d := translateDeck(deckBlock)
		diags = append(diags, d...)
		model.Deck = deck
	}

	paletteBlock, d := hclutil.FindUniqueBlock(blocks, "palette")
	diags = append(diags, d...)
	if paletteBlock != nil {
		diags = append(diags, translatePalette(paletteBlock, model.Palette)...)
	}

	themeBlock, d := hclutil.FindUniqueBlock(blocks, "theme")
	diags = append(diags, d...)
	if themeBlock != nil {
		attrs, d := themeBlock.Body.JustAttributes()
		diags = append(diags, d...)
		for name, attr := range attrs {
			model.Theme[name] = attr.Expr
		}
	}

	seen := make(map[string]hcl.Range)
	for _, block := range blocks {
		if block.Type != "slide" {
			continue
		}
		name := block.Labels[0]
		if prev, dup := seen[name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate slide name",
				Detail:   fmt.Sprintf("A slide named %q was already declared at %s.", name, prev),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[name] = block.DefRange

		slide, d := translateSlide(block)
		diags = append(diags, d...)
		if slide != nil {
			model.Slides = append(model.Slides, slide)
		}
	}

	return model, diags
}

func translateDeck(block *hcl.Block) (config.Deck, hcl.Diagnostics) {
	var body deckBody
	diags := gohcl.DecodeBody(block.Body, nil, &body)

	deck := config.Deck{
		Name:     block.Labels[0],
		Title:    body.Title,
		Author:   body.Author,
		Output:   body.Output,
		Created:  body.Created,
		Width:    config.DefaultWidth,
		Height:   config.DefaultHeight,
		Font:     body.Font,
		DefRange: block.DefRange,
	}
	if deck.Font == "" {
		deck.Font = config.DefaultFont
	}
	if body.Width != nil {
		deck.Width = *body.Width
	}
	if body.Height != nil {
		deck.Height = *body.Height
	}
	if deck.Width <= 0 || deck.Height <= 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid slide size",
			Detail:   fmt.Sprintf("Slide width and height must be positive, got %gx%g.", deck.Width, deck.Height),
			Subject:  block.DefRange.Ptr(),
		})
	}
	if deck.Created != "" {
		if _, err := time.Parse(time.RFC3339, deck.Created); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid created timestamp",
				Detail:   fmt.Sprintf("The created attribute must be an RFC 3339 timestamp: %s.", err),
				Subject:  block.DefRange.Ptr(),
			})
		}
	}
	return deck, diags
}

// translatePalette evaluates the palette's colour literals. Palette entries
// may not reference anything, so they are evaluated without a context.
func translatePalette(block *hcl.Block, into map[string]string) hcl.Diagnostics {
	attrs, diags := block.Body.JustAttributes()
	for name, attr := range attrs {
		val, d := attr.Expr.Value(nil)
		diags = append(diags, d...)
		if d.HasErrors() {
			continue
		}
		if val.IsNull() || !val.Type().Equals(cty.String) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid palette colour",
				Detail:   fmt.Sprintf("Palette entry %q must be a hex colour string such as \"0D6B56\".", name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		color, err := pptx.ParseColor(val.AsString())
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid palette colour",
				Detail:   err.Error(),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		into[name] = color.Hex()
	}
	return diags
}

func translateSlide(block *hcl.Block) (*config.Slide, hcl.Diagnostics) {
	var body slideBody
	diags := gohcl.DecodeBody(block.Body, nil, &body)
	if diags.HasErrors() {
		return nil, diags
	}

	slide := &config.Slide{
		Name:     block.Labels[0],
		DefRange: block.DefRange,
	}
	if hclutil.IsExprDefined(body.Background) {
		slide.Background = body.Background
	}

	seen := make(map[string]hcl.Range)
	for _, el := range body.Elements {
		key := el.Kind + "." + el.Name
		if prev, dup := seen[key]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate element",
				Detail:   fmt.Sprintf("Element %s was already declared on this slide at %s.", key, prev),
				Subject:  el.DefRange.Ptr(),
			})
			continue
		}
		seen[key] = el.DefRange

		attrs, d := el.Body.JustAttributes()
		diags = append(diags, d...)
		args := make(map[string]hcl.Expression, len(attrs))
		for name, attr := range attrs {
			args[name] = attr.Expr
		}
		slide.Elements = append(slide.Elements, &config.Element{
			Kind:      el.Kind,
			Name:      el.Name,
			Arguments: args,
			DefRange:  el.DefRange,
		})
	}
	return slide, diags
}
