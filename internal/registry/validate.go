package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// inputTag is the struct tag binding input-struct fields to manifest inputs.
const inputTag = "lgo"

// ValidateRegistry performs a strict parity check between node manifests and
// their Go handlers: every declared input must have a matching struct field
// of a compatible type, and vice versa, and every manifest must name a
// handler that actually exists.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for nodeType, def := range r.DefinitionRegistry {
		if def.Lifecycle == nil || def.Lifecycle.OnInvoke == "" {
			errs = append(errs, fmt.Sprintf("node '%s': manifest declares no on_invoke handler", nodeType))
			continue
		}
		handler, ok := r.HandlerRegistry[def.Lifecycle.OnInvoke]
		if !ok {
			errs = append(errs, fmt.Sprintf("node '%s': handler '%s' is not registered", nodeType, def.Lifecycle.OnInvoke))
			continue
		}

		if handler.InputType == nil {
			if len(def.Inputs) > 0 {
				errs = append(errs, fmt.Sprintf("node '%s': manifest declares inputs, but Go handler has no input struct", nodeType))
			}
			continue
		}

		goInputs := make(map[string]reflect.StructField)
		for i := 0; i < handler.InputType.NumField(); i++ {
			field := handler.InputType.Field(i)
			if !field.IsExported() {
				continue
			}
			tagName := strings.Split(field.Tag.Get(inputTag), ",")[0]
			if tagName != "" && tagName != "-" {
				goInputs[tagName] = field
			}
		}

		// Presence, both directions.
		for name := range goInputs {
			if _, ok := def.Inputs[name]; !ok {
				errs = append(errs, fmt.Sprintf("node '%s': Go struct has field for input '%s' which is not declared in manifest", nodeType, name))
			}
		}
		for name := range def.Inputs {
			if _, ok := goInputs[name]; !ok {
				errs = append(errs, fmt.Sprintf("node '%s': manifest declares input '%s' which is not found in Go struct", nodeType, name))
			}
		}

		// Type compatibility.
		for name, inputDef := range def.Inputs {
			goField, ok := goInputs[name]
			if !ok {
				continue // Already reported by the presence check.
			}

			manifestType := inputDef.Type
			if manifestType.Equals(cty.DynamicPseudoType) {
				logger.Warn("Manifest input with 'type = any' disables static type checking. Consider a specific type.",
					"node", nodeType, "input", name)
				continue
			}

			goFieldType, err := gocty.ImpliedType(reflect.Zero(goField.Type).Interface())
			if err != nil {
				errs = append(errs, fmt.Sprintf("node '%s', input '%s': could not imply cty type from Go field type %s: %v",
					nodeType, name, goField.Type, err))
				continue
			}

			if !manifestType.Equals(goFieldType) {
				errs = append(errs, fmt.Sprintf("node '%s', input '%s': type mismatch. Manifest requires '%s' but Go field '%s' provides '%s'",
					nodeType, name, manifestType.FriendlyName(), goField.Name, goFieldType.FriendlyName()))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
