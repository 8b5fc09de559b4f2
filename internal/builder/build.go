package builder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/deckgen/internal/canvas"
	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/ctxlog"
	"github.com/vk/deckgen/internal/pptx"
	"github.com/vk/deckgen/internal/registry"
)

// decodedElement is an element whose arguments are resolved and ready to draw.
type decodedElement struct {
	el      *config.Element
	handler *registry.RegisteredElement
	input   any
}

// decodedSlide is a slide whose background and elements are resolved.
type decodedSlide struct {
	slide      *config.Slide
	background *pptx.Color
	elements   []decodedElement
}

// Build implements the Builder interface.
func (b *DefaultBuilder) Build(ctx context.Context, model *config.Model) (*pptx.Presentation, error) {
	logger := ctxlog.FromContext(ctx).With("deck", model.Deck.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	pres := pptx.New()
	if err := pres.SetSize(pptx.Inches(model.Deck.Width), pptx.Inches(model.Deck.Height)); err != nil {
		return nil, fmt.Errorf("deck %q: %w", model.Deck.Name, err)
	}
	pres.Properties.Title = model.Deck.Title
	if pres.Properties.Title == "" {
		pres.Properties.Title = model.Deck.Name
	}
	pres.Properties.Creator = model.Deck.Author
	if model.Deck.Created != "" {
		created, err := time.Parse(time.RFC3339, model.Deck.Created)
		if err != nil {
			return nil, fmt.Errorf("deck %q: invalid created timestamp: %w", model.Deck.Name, err)
		}
		pres.Properties.Created = created
	}

	evalCtx := b.conv.EvalContext(model)
	theme, diags := b.decodeTheme(ctx, model, evalCtx)
	slides, d := b.decodeSlides(ctx, model, evalCtx)
	diags = append(diags, d...)
	if diags.HasErrors() {
		logger.Debug("Deck failed to decode.", "diagnostics", len(diags))
		return nil, fmt.Errorf("failed to decode deck %q: %w", model.Deck.Name, diags)
	}

	for _, ds := range slides {
		slide := pres.AddSlide()
		c := canvas.New(slide, theme, b.assetsDir)
		if ds.background != nil {
			c.SetBackground(*ds.background)
		}
		slideCtx := ctxlog.With(ctx, "slide", ds.slide.Name)
		for _, de := range ds.elements {
			elCtx := ctxlog.With(slideCtx, "element", de.el.Address())
			if err := de.handler.Fn(elCtx, c, de.input); err != nil {
				return nil, fmt.Errorf("%s: slide '%s', element '%s': %w", de.el.DefRange, ds.slide.Name, de.el.Address(), err)
			}
		}
		logger.Debug("Slide drawn.", "slide", ds.slide.Name, "index", slide.Index(), "shapes", slide.Len())
	}

	logger.Info("Deck built.", "slides", len(pres.Slides()))
	return pres, nil
}

// decodeSlides resolves every background and element body, collecting all
// diagnostics instead of stopping at the first.
func (b *DefaultBuilder) decodeSlides(ctx context.Context, model *config.Model, evalCtx *hcl.EvalContext) ([]decodedSlide, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	out := make([]decodedSlide, 0, len(model.Slides))

	for _, s := range model.Slides {
		ds := decodedSlide{slide: s}

		if s.Background != nil {
			bg, d := evalColor(s.Background, evalCtx)
			if d.HasErrors() {
				diags = append(diags, d...)
			} else {
				ds.background = &bg
			}
		}

		for _, el := range s.Elements {
			handler, ok := b.reg.Lookup(el.Kind)
			if !ok {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Unknown element kind",
					Detail:   fmt.Sprintf("Slide %q uses element kind %q, which has no registered handler.", s.Name, el.Kind),
					Subject:  el.DefRange.Ptr(),
				})
				continue
			}
			input := handler.NewInput()
			if err := b.conv.DecodeBody(ctx, input, el.Arguments, evalCtx); err != nil {
				diags = append(diags, asDiagnostics(err, el.DefRange, "Invalid element "+el.Address())...)
				continue
			}
			ds.elements = append(ds.elements, decodedElement{el: el, handler: handler, input: input})
		}
		out = append(out, ds)
	}
	return out, diags
}

// evalColor evaluates a colour expression to a pptx.Color.
func evalColor(expr hcl.Expression, evalCtx *hcl.EvalContext) (pptx.Color, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return pptx.Color{}, diags
	}
	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid background colour",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		}}
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return pptx.Color{}, invalid(fmt.Sprintf("A colour must be a hex string such as \"C7F464\", got %s.", val.Type().FriendlyName()))
	}
	c, err := pptx.ParseColor(val.AsString())
	if err != nil {
		return pptx.Color{}, invalid(err.Error() + ".")
	}
	return c, nil
}

// asDiagnostics turns a decode error into diagnostics that all carry a
// source range. Diagnostics without a subject get fallback.
func asDiagnostics(err error, fallback hcl.Range, summary string) hcl.Diagnostics {
	var diags hcl.Diagnostics
	if !errors.As(err, &diags) {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   err.Error(),
			Subject:  fallback.Ptr(),
		}}
	}
	out := make(hcl.Diagnostics, len(diags))
	for i, d := range diags {
		cp := *d
		if cp.Subject == nil {
			cp.Subject = fallback.Ptr()
		}
		out[i] = &cp
	}
	return out
}
