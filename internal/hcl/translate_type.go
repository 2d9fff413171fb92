package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// primitiveTypes maps the bare type keywords a manifest may use to their
// cty equivalents.
var primitiveTypes = map[string]cty.Type{
	"string": cty.String,
	"number": cty.Number,
	"bool":   cty.Bool,
	"any":    cty.DynamicPseudoType,
}

// typeExprToCtyType resolves a manifest's `type = ...` expression, which is
// either a bare keyword (`number`) or a single-argument collection
// constructor (`list(string)`). A missing expression means `any`.
func typeExprToCtyType(expr hcl.Expression) (cty.Type, error) {
	if expr == nil {
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		name := v.Traversal.RootName()
		ty, ok := primitiveTypes[name]
		if !ok {
			return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", name)
		}
		return ty, nil

	case *hclsyntax.FunctionCallExpr:
		return collectionType(v)

	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

// collectionType resolves list/map/set constructor calls. Element types must
// be concrete; a collection of `any` has no decodable Go shape.
func collectionType(call *hclsyntax.FunctionCallExpr) (cty.Type, error) {
	if len(call.Args) != 1 {
		return cty.DynamicPseudoType, fmt.Errorf("type constructors (list, map, set) require exactly one argument, got %d", len(call.Args))
	}

	elem, err := typeExprToCtyType(call.Args[0])
	if err != nil {
		return cty.DynamicPseudoType, err
	}
	if elem == cty.DynamicPseudoType {
		return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
	}

	switch call.Name {
	case "list":
		return cty.List(elem), nil
	case "map":
		return cty.Map(elem), nil
	case "set":
		return cty.Set(elem), nil
	}
	return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor function %q", call.Name)
}
