package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration: all node-type definitions plus the user's grid.
type Model struct {
	Nodes map[string]*NodeDefinition
	Grid  *Grid
}

// Grid represents the user's sweep definition: the ordered list of loop
// instances that are invoked once per pass.
type Grid struct {
	Loops []*Loop
}

// Loop is the format-agnostic representation of a `loop` block.
type Loop struct {
	NodeType  string
	Name      string
	Arguments map[string]hcl.Expression
}

// --- Module manifest models ---

// NodeDefinition is the format-agnostic representation of a node manifest.
type NodeDefinition struct {
	Type        string
	Description string
	Category    string
	Lifecycle   *Lifecycle
	Inputs      map[string]*InputDefinition
	Outputs     map[string]*OutputDefinition
}

// Lifecycle maps the node's invoke event to a Go handler name.
type Lifecycle struct {
	OnInvoke string
}

// InputDefinition is one declared input with its parsed type and default.
type InputDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}

// OutputDefinition is one declared output with its parsed type.
type OutputDefinition struct {
	Name        string
	Type        cty.Type
	Description string
}
