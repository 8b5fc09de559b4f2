package hcl

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/deckgen/internal/ctxlog"
)

// tagName is the struct tag element input fields are matched by.
const tagName = "deck"

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// fieldTag is a parsed `deck:"name,optional"` struct tag.
type fieldTag struct {
	name     string
	optional bool
}

func parseFieldTag(f reflect.StructField) (fieldTag, bool) {
	tag := f.Tag.Get(tagName)
	if tag == "" || tag == "-" {
		return fieldTag{}, false
	}
	parts := strings.Split(tag, ",")
	ft := fieldTag{name: parts[0]}
	for _, opt := range parts[1:] {
		if opt == "optional" {
			ft.optional = true
		}
	}
	return ft, ft.name != ""
}

// DecodeBody evaluates HCL expressions and populates the provided Go struct
// using reflection. Every problem found is reported, not just the first:
// missing required arguments, arguments the struct does not declare, and
// values that cannot be converted to the field type.
func (c *Converter) DecodeBody(ctx context.Context, target any, args map[string]hcl.Expression, evalCtx *hcl.EvalContext) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting HCL body decoding.", "argument_count", len(args))

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode target must be a non-nil pointer to a struct, got %T", target)
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	var diags hcl.Diagnostics
	used := make(map[string]bool, len(args))

	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		fieldVal := structVal.Field(i)
		if !fieldDef.IsExported() || !fieldVal.CanSet() {
			continue
		}
		tag, ok := parseFieldTag(fieldDef)
		if !ok {
			continue
		}

		expr, provided := args[tag.name]
		if !provided {
			if !tag.optional {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Missing required argument",
					Detail:   fmt.Sprintf("The argument %q is required, but no definition was found.", tag.name),
				})
			}
			continue
		}
		used[tag.name] = true

		val, d := expr.Value(evalCtx)
		diags = append(diags, d...)
		if d.HasErrors() {
			continue
		}
		if val.IsNull() {
			if !tag.optional {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid argument value",
					Detail:   fmt.Sprintf("The argument %q is required and may not be null.", tag.name),
					Subject:  expr.Range().Ptr(),
				})
			}
			continue
		}

		if err := c.decode(ctx, val, fieldVal.Addr().Interface()); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid argument value",
				Detail:   fmt.Sprintf("Failed to decode argument %q: %s.", tag.name, err),
				Subject:  expr.Range().Ptr(),
			})
		}
	}

	var unknown []string
	for name := range args {
		if !used[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   fmt.Sprintf("An argument named %q is not expected here.", name),
			Subject:  args[name].Range().Ptr(),
		})
	}

	if diags.HasErrors() {
		return diags
	}
	logger.Debug("Finished HCL body decoding successfully.")
	return nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
