// Package schema defines the HCL block structures for loopgridgo's two file
// kinds: module manifests that declare loop-node types, and user grids that
// instantiate them.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// --- Grid structures ---

// LoopArgs holds the raw body of the 'arguments' block within a loop block.
type LoopArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// Loop represents a `loop` block from a user's grid file: one invocable
// instance of a declared node type, with its own persistent traversal state.
type Loop struct {
	NodeType  string    `hcl:"node_type,label"`
	Name      string    `hcl:"instance_name,label"`
	Arguments *LoopArgs `hcl:"arguments,block"`
}

// --- Module manifest schemas ---

// Lifecycle maps the node's invoke event to a registered Go handler.
type Lifecycle struct {
	OnInvoke string `hcl:"on_invoke"`
}

// InputDefinition declares a single typed input of a node.
type InputDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
	Default     *cty.Value     `hcl:"default,optional"`
}

// OutputDefinition declares a single typed output of a node.
type OutputDefinition struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Description string         `hcl:"description,optional"`
}

// NodeDefinition is the manifest of one loop-node type: its category in the
// host's node palette, its invoke handler, and its typed inputs and outputs.
type NodeDefinition struct {
	Type        string              `hcl:"type,label"`
	Description string              `hcl:"description,optional"`
	Category    string              `hcl:"category,optional"`
	Lifecycle   *Lifecycle          `hcl:"lifecycle,block"`
	Inputs      []*InputDefinition  `hcl:"input,block"`
	Outputs     []*OutputDefinition `hcl:"output,block"`
}
