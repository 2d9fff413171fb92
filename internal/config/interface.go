package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for format-specific data binding between raw
// configuration values and the Go types used by node modules.
type Converter interface {
	// DecodeBody decodes a loop's 'arguments' attributes into a node's input
	// struct, applying manifest defaults and rejecting missing required
	// arguments.
	DecodeBody(
		ctx context.Context,
		inputStruct any,
		args map[string]hcl.Expression,
		defs map[string]*InputDefinition,
		evalCtx *hcl.EvalContext,
	) error

	// ToCtyValue converts a native Go value (such as a node's output struct)
	// into its equivalent cty.Value.
	ToCtyValue(v any) (cty.Value, error)
}
