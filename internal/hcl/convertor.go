package hcl

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/loopgridgo/internal/config"
	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// inputTag is the struct tag binding a Go input-struct field to a manifest
// input name.
const inputTag = "lgo"

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToCtyValue converts a native Go value into its corresponding cty.Value.
func (c *Converter) ToCtyValue(v any) (cty.Value, error) {
	if v == nil {
		return cty.NilVal, nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// DecodeBody walks the fields of a node's input struct, finds the matching
// loop arguments, and populates each field. Missing arguments fall back to
// the manifest default; a missing required argument is an error.
func (c *Converter) DecodeBody(
	ctx context.Context,
	inputStruct any,
	args map[string]hcl.Expression,
	defs map[string]*config.InputDefinition,
	evalCtx *hcl.EvalContext,
) error {
	logger := ctxlog.FromContext(ctx)

	structVal := reflect.ValueOf(inputStruct)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("inputStruct must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		fieldVal := structVal.Field(i)

		if !fieldDef.IsExported() || !fieldVal.CanSet() {
			continue
		}

		tagName := strings.Split(fieldDef.Tag.Get(inputTag), ",")[0]
		if tagName == "" || tagName == "-" {
			continue
		}

		inputDef, ok := defs[tagName]
		if !ok {
			continue // No manifest definition for this field.
		}

		var valueToDecode cty.Value
		argExpr, provided := args[tagName]

		if provided {
			val, diags := argExpr.Value(evalCtx)
			if diags.HasErrors() {
				return diags
			}
			valueToDecode = val
		} else {
			if inputDef.Default != nil {
				valueToDecode = *inputDef.Default
			} else if inputDef.Optional {
				continue
			} else {
				return fmt.Errorf("missing required argument %q", tagName)
			}
		}

		if err := c.decode(ctx, valueToDecode, inputDef.Type, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to decode argument %q: %w", tagName, err)
		}
	}

	logger.Debug("Finished decoding loop arguments.")
	return nil
}

// decode populates a Go value from a cty.Value, guided by the manifest type.
func (c *Converter) decode(ctx context.Context, val cty.Value, manifestType cty.Type, goVal any) error {
	goPtr := reflect.ValueOf(goVal).Elem()
	goType := goPtr.Type()

	// A target field of type cty.Value takes the value verbatim.
	if goType == reflect.TypeOf(cty.Value{}) {
		if val.IsKnown() {
			goPtr.Set(reflect.ValueOf(val))
		}
		return nil
	}

	if !val.IsKnown() || val.IsNull() {
		return nil // Nothing to decode.
	}

	switch goType.Kind() {
	case reflect.Interface: // 'any'
		nativeVal, err := config.NativeValue(val)
		if err != nil {
			return err
		}
		if nativeVal != nil {
			goPtr.Set(reflect.ValueOf(nativeVal))
		}
		return nil

	case reflect.Slice:
		if !val.Type().IsListType() && !val.Type().IsTupleType() && !val.Type().IsSetType() {
			return fmt.Errorf("type mismatch: cannot decode cty %s into Go slice %s", val.Type().FriendlyName(), goType.String())
		}

		goElemType := goType.Elem()
		ctyElemType, err := gocty.ImpliedType(reflect.Zero(goElemType).Interface())
		if err != nil {
			return fmt.Errorf("cannot imply cty type for slice element %s: %w", goElemType.String(), err)
		}
		listVal, err := convert.Convert(val, cty.List(ctyElemType))
		if err != nil {
			return fmt.Errorf("cannot convert value to a uniform list for slice %s: %w", goType.String(), err)
		}

		newSlice := reflect.MakeSlice(goType, listVal.LengthInt(), listVal.LengthInt())
		it := listVal.ElementIterator()
		for i := 0; it.Next(); i++ {
			_, elemVal := it.Element()
			if err := c.decode(ctx, elemVal, ctyElemType, newSlice.Index(i).Addr().Interface()); err != nil {
				return fmt.Errorf("in slice element %d: %w", i, err)
			}
		}
		goPtr.Set(newSlice)
		return nil

	default: // Primitives: string, bool, the numeric kinds.
		targetType := manifestType
		if targetType == cty.DynamicPseudoType {
			targetType = val.Type()
		}
		convertedVal, err := convert.Convert(val, targetType)
		if err != nil {
			return fmt.Errorf("cannot convert value of type %s to required manifest type %s: %w",
				val.Type().FriendlyName(), targetType.FriendlyName(), err)
		}
		return gocty.FromCtyValue(convertedVal, goVal)
	}
}

// convertDefault coerces a manifest default literal to the declared input type.
func convertDefault(val cty.Value, ty cty.Type) (cty.Value, error) {
	return convert.Convert(val, ty)
}
