package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/deckgen/internal/config"
)

// functions are the helpers available in element arguments.
var functions = map[string]function.Function{
	"upper":    stdlib.UpperFunc,
	"lower":    stdlib.LowerFunc,
	"title":    stdlib.TitleFunc,
	"join":     stdlib.JoinFunc,
	"format":   stdlib.FormatFunc,
	"concat":   stdlib.ConcatFunc,
	"coalesce": stdlib.CoalesceFunc,
	"min":      stdlib.MinFunc,
	"max":      stdlib.MaxFunc,
}

// EvalContext exposes the palette as `palette.<name>` and deck metadata as
// `deck.<attr>`, so arguments can write `color = palette.green` or
// `width = deck.width - 2`.
func (c *Converter) EvalContext(model *config.Model) *hcl.EvalContext {
	palette := make(map[string]cty.Value, len(model.Palette))
	for name, hex := range model.Palette {
		palette[name] = cty.StringVal(hex)
	}
	paletteVal := cty.EmptyObjectVal
	if len(palette) > 0 {
		paletteVal = cty.ObjectVal(palette)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": paletteVal,
			"deck": cty.ObjectVal(map[string]cty.Value{
				"name":   cty.StringVal(model.Deck.Name),
				"title":  cty.StringVal(model.Deck.Title),
				"author": cty.StringVal(model.Deck.Author),
				"width":  cty.NumberFloatVal(model.Deck.Width),
				"height": cty.NumberFloatVal(model.Deck.Height),
				"font":   cty.StringVal(model.Deck.Font),
			}),
		},
		Functions: functions,
	}
}
