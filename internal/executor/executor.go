// Package executor invokes loop instances: it binds a loop's arguments to
// the node's input struct, hands the handler its persistent state, and
// records the typed outputs of every invocation.
package executor

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/vk/loopgridgo/internal/config"
	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/names"
	"github.com/vk/loopgridgo/internal/registry"
	"github.com/vk/loopgridgo/internal/statestore"
	"github.com/zclconf/go-cty/cty"
)

// Executor runs loop instances against their registered handlers. One
// executor owns the state store for the session, so repeated passes over the
// same grid advance each instance's traversal.
type Executor struct {
	registry  *registry.Registry
	converter config.Converter
	store     *statestore.Store
	catalog   names.Catalog

	mu      sync.Mutex
	history map[string][]cty.Value
}

// New creates an executor with a fresh state store.
func New(reg *registry.Registry, conv config.Converter, catalog names.Catalog) *Executor {
	return &Executor{
		registry:  reg,
		converter: conv,
		store:     statestore.New(),
		catalog:   catalog,
		history:   make(map[string][]cty.Value),
	}
}

// LoopID returns the canonical instance address of a loop block.
func LoopID(lp *config.Loop) string {
	return fmt.Sprintf("loop.%s.%s", lp.NodeType, lp.Name)
}

// ValidateGrid rejects grids that reference unknown node types or reuse an
// instance name, before any invocation happens.
func (e *Executor) ValidateGrid(grid *config.Grid) error {
	seen := make(map[string]struct{})
	for _, lp := range grid.Loops {
		id := LoopID(lp)
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate loop instance %q", id)
		}
		seen[id] = struct{}{}

		if _, ok := e.registry.DefinitionRegistry[lp.NodeType]; !ok {
			return fmt.Errorf("loop %q references unknown node type %q", id, lp.NodeType)
		}
	}
	return nil
}

// InvokeLoop performs a single invocation of one loop instance and returns
// its typed outputs. Each call reads and mutates exactly that instance's
// persistent state, so the next call advances the traversal.
func (e *Executor) InvokeLoop(ctx context.Context, lp *config.Loop) (cty.Value, error) {
	id := LoopID(lp)
	logger := ctxlog.FromContext(ctx).With("loop", id)
	logger.Debug("▶️ Invoking loop instance")

	def, ok := e.registry.DefinitionRegistry[lp.NodeType]
	if !ok {
		return cty.NilVal, fmt.Errorf("unknown node type %q", lp.NodeType)
	}
	handlerName := def.Lifecycle.OnInvoke
	handler, ok := e.registry.HandlerRegistry[handlerName]
	if !ok {
		return cty.NilVal, fmt.Errorf("handler %q not registered", handlerName)
	}

	inputStruct := handler.NewInput()
	if inputStruct != nil {
		if err := e.converter.DecodeBody(ctx, inputStruct, lp.Arguments, def.Inputs, nil); err != nil {
			return cty.NilVal, fmt.Errorf("failed to decode arguments for %s: %w", id, err)
		}
	}

	inv := &registry.Invocation{
		State: e.store.GetOrCreate(id),
		Names: e.catalog,
	}

	handlerFunc := reflect.ValueOf(handler.Fn)
	callArgs := []reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(inv)}
	if inputStruct == nil {
		callArgs = append(callArgs, reflect.Zero(handlerFunc.Type().In(2)))
	} else {
		callArgs = append(callArgs, reflect.ValueOf(inputStruct))
	}

	results := handlerFunc.Call(callArgs)
	nativeOutput, errResult := results[0].Interface(), results[1].Interface()
	if errResult != nil {
		return cty.NilVal, fmt.Errorf("loop %s failed: %w", id, errResult.(error))
	}

	ctyOutput, err := e.converter.ToCtyValue(nativeOutput)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert output of %s to cty.Value: %w", id, err)
	}

	e.mu.Lock()
	e.history[id] = append(e.history[id], ctyOutput)
	e.mu.Unlock()

	logger.Info("✅ Finished loop invocation", "output", formatValueForLogs(ctyOutput))
	return ctyOutput, nil
}

// History returns the outputs of every invocation of one instance, in call
// order.
func (e *Executor) History(id string) []cty.Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history[id]
}
