package registry

import (
	"fmt"
	"log/slog"
	"reflect"
)

// RegisteredNode holds the compiled Go parts of a node's invoke handler.
// Fn must have the signature
// func(ctx context.Context, inv *Invocation, input *T) (*O, error);
// NewInput returns a fresh *T and InputType is reflect.TypeOf(T{}).
type RegisteredNode struct {
	NewInput  func() any
	InputType reflect.Type
	Fn        any
}

// RegisterNode registers a Go handler for a node's invoke lifecycle event.
func (r *Registry) RegisterNode(name string, handler *RegisteredNode) {
	if _, exists := r.HandlerRegistry[name]; exists {
		panic(fmt.Sprintf("node handler with name '%s' already registered", name))
	}
	slog.Debug("Registering node handler.", "name", name)
	r.HandlerRegistry[name] = handler
}
