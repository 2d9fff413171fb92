package registry

import (
	"github.com/vk/loopgridgo/internal/config"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/names"
)

// Module is the interface every loop-node module implements to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered handlers and node-type definitions for a
// single application instance.
type Registry struct {
	HandlerRegistry    map[string]*RegisteredNode
	DefinitionRegistry map[string]*config.NodeDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		HandlerRegistry:    make(map[string]*RegisteredNode),
		DefinitionRegistry: make(map[string]*config.NodeDefinition),
	}
}

// PopulateDefinitionsFromModel copies the loaded node-type definitions from
// the config model into the registry for access during execution.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	for key, val := range model.Nodes {
		r.DefinitionRegistry[key] = val
	}
}

// Invocation carries the host-owned dependencies handed to a node handler on
// each call: the instance's persistent traversal state and the catalog of
// valid sampler/scheduler names.
type Invocation struct {
	State *loop.State
	Names names.Catalog
}
