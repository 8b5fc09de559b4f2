package builder

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/pptx"
)

// themeInput is the decoded `theme` block. Colours are hex strings, usually
// palette references.
type themeInput struct {
	Font    string `deck:"font,optional"`
	Accent  string `deck:"accent,optional"`
	Text    string `deck:"text,optional"`
	Muted   string `deck:"muted,optional"`
	Surface string `deck:"surface,optional"`
}

// decodeTheme layers the theme block over the default theme and the deck font.
func (b *DefaultBuilder) decodeTheme(ctx context.Context, model *config.Model, evalCtx *hcl.EvalContext) (canvas.Theme, hcl.Diagnostics) {
	theme := canvas.DefaultTheme()
	if model.Deck.Font != "" {
		theme.Font = model.Deck.Font
	}
	if len(model.Theme) == 0 {
		return theme, nil
	}

	in := themeInput{Font: theme.Font}
	if err := b.conv.DecodeBody(ctx, &in, model.Theme, evalCtx); err != nil {
		return theme, asDiagnostics(err, model.Deck.DefRange, "Invalid theme")
	}
	theme.Font = in.Font

	var diags hcl.Diagnostics
	set := func(name, value string, dst *pptx.Color) {
		if value == "" {
			return
		}
		c, err := pptx.ParseColor(value)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid theme colour",
				Detail:   fmt.Sprintf("Theme argument %q: %s.", name, err),
				Subject:  model.Theme[name].Range().Ptr(),
			})
			return
		}
		*dst = c
	}
	set("accent", in.Accent, &theme.Accent)
	set("text", in.Text, &theme.Text)
	set("muted", in.Muted, &theme.Muted)
	set("surface", in.Surface, &theme.Surface)
	return theme, diags
}
