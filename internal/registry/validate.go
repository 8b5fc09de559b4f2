package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/deckgen/internal/config"
	"github.com/vk/deckgen/internal/ctxlog"
)

// ValidateRegistry checks that every registered handler is complete and that
// each tagged field of its input struct has a cty equivalent, so any deck
// value can at least be attempted to decode into it.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, kind := range r.Kinds() {
		el := r.ElementRegistry[kind]
		if el.Fn == nil {
			errs = append(errs, fmt.Sprintf("element '%s': no handler function", kind))
		}
		if el.NewInput == nil {
			errs = append(errs, fmt.Sprintf("element '%s': no input constructor", kind))
			continue
		}

		input := el.NewInput()
		inputVal := reflect.ValueOf(input)
		if inputVal.Kind() != reflect.Ptr || inputVal.IsNil() || inputVal.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("element '%s': input constructor must return a pointer to a struct, got %T", kind, input))
			continue
		}

		inputType := inputVal.Elem().Type()
		seen := make(map[string]string)
		for i := 0; i < inputType.NumField(); i++ {
			field := inputType.Field(i)
			if !field.IsExported() {
				continue
			}
			tagName := strings.Split(field.Tag.Get("deck"), ",")[0]
			if tagName == "" || tagName == "-" {
				continue
			}
			if prev, dup := seen[tagName]; dup {
				errs = append(errs, fmt.Sprintf("element '%s': argument '%s' is bound to both %s and %s", kind, tagName, prev, field.Name))
				continue
			}
			seen[tagName] = field.Name

			if _, err := gocty.ImpliedType(reflect.Zero(field.Type).Interface()); err != nil {
				errs = append(errs, fmt.Sprintf("element '%s', argument '%s': Go field %s has no cty equivalent: %v", kind, tagName, field.Name, err))
			}
		}
		logger.Debug("Element handler validated.", "kind", kind, "arguments", len(seen))
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// ValidateModel checks that every element in the deck has a registered
// handler, reporting all unknown kinds at once.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	var errs []string
	for _, slide := range model.Slides {
		for _, el := range slide.Elements {
			if _, ok := r.ElementRegistry[el.Kind]; !ok {
				errs = append(errs, fmt.Sprintf("%s: slide '%s', element '%s': unknown element kind '%s' (known kinds: %s)",
					el.DefRange, slide.Name, el.Address(), el.Kind, strings.Join(r.Kinds(), ", ")))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("deck validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	ctxlog.FromContext(ctx).Debug("Deck elements validated against registry.", "slides", len(model.Slides))
	return nil
}
