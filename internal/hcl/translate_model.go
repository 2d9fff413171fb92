package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/loopgridgo/internal/config"
	"github.com/vk/loopgridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// translateLoop converts the HCL-specific loop schema into the agnostic model.
func (l *Loader) translateLoop(s *schema.Loop) *config.Loop {
	return &config.Loop{
		NodeType:  s.NodeType,
		Name:      s.Name,
		Arguments: extractBodyAttributes(s.Arguments),
	}
}

// translateNodeDefinition converts the HCL-specific node manifest into the
// agnostic model, parsing input/output type expressions and evaluating
// default values.
func (l *Loader) translateNodeDefinition(s *schema.NodeDefinition) (*config.NodeDefinition, error) {
	def := &config.NodeDefinition{
		Type:        s.Type,
		Description: s.Description,
		Category:    s.Category,
		Inputs:      make(map[string]*config.InputDefinition),
		Outputs:     make(map[string]*config.OutputDefinition),
	}
	if s.Lifecycle != nil {
		def.Lifecycle = &config.Lifecycle{OnInvoke: s.Lifecycle.OnInvoke}
	}

	for _, in := range s.Inputs {
		parsedType, err := typeExprToCtyType(in.Type)
		if err != nil {
			return nil, fmt.Errorf("in node %q, input %q: %w", s.Type, in.Name, err)
		}

		var defaultVal *cty.Value
		var isOptional bool
		if in.Default != nil && !in.Default.IsNull() {
			val := *in.Default
			if !parsedType.Equals(cty.DynamicPseudoType) {
				converted, err := convertDefault(val, parsedType)
				if err != nil {
					return nil, fmt.Errorf("in node %q, input %q: invalid default: %w", s.Type, in.Name, err)
				}
				val = converted
			}
			defaultVal = &val
			isOptional = true
		}

		def.Inputs[in.Name] = &config.InputDefinition{
			Name:        in.Name,
			Type:        parsedType,
			Description: in.Description,
			Default:     defaultVal,
			Optional:    isOptional,
		}
	}

	for _, out := range s.Outputs {
		parsedType, err := typeExprToCtyType(out.Type)
		if err != nil {
			return nil, fmt.Errorf("in node %q, output %q: %w", s.Type, out.Name, err)
		}
		def.Outputs[out.Name] = &config.OutputDefinition{
			Name:        out.Name,
			Type:        parsedType,
			Description: out.Description,
		}
	}

	return def, nil
}

// extractBodyAttributes flattens an arguments block body into a map of
// attribute expressions, the shape the agnostic model carries.
func extractBodyAttributes(args *schema.LoopArgs) map[string]hcl.Expression {
	if args == nil || args.Body == nil {
		return nil
	}
	attrs, _ := args.Body.JustAttributes()
	if attrs == nil {
		return nil
	}
	exprMap := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap
}
