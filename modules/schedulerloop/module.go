// Package schedulerloop provides a node that traverses the host's scheduler
// names in sequential, random or ping-pong order.
package schedulerloop

import (
	"context"
	"reflect"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the scheduler_loop node.
type Input struct {
	Mode           string `lgo:"mode"`
	Seed           int64  `lgo:"seed"`
	Reset          bool   `lgo:"reset"`
	SkipSchedulers string `lgo:"skip_schedulers"`
}

// Output defines the values emitted on every invocation.
type Output struct {
	Scheduler          string `cty:"scheduler"`
	CurrentIndex       int    `cty:"current_index"`
	TotalCombinations  int    `cty:"total_combinations"`
	CurrentCombination string `cty:"current_combination"`
}

// OnInvokeSchedulerLoop advances the instance's traversal by one step and
// returns the current scheduler name.
func OnInvokeSchedulerLoop(ctx context.Context, inv *registry.Invocation, input *Input) (*Output, error) {
	mode, err := loop.ParseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	schedulers := loop.Filter(ctx, inv.Names.Schedulers(), input.SkipSchedulers)
	space := loop.NewSpace(loop.Strings("scheduler", schedulers))

	idx := loop.Invoke(inv.State, space.Size(), loop.Control{
		Mode:  mode,
		Seed:  input.Seed,
		Reset: input.Reset,
	})

	if space.Size() == 0 {
		return &Output{CurrentCombination: "no combinations available"}, nil
	}

	combo := space.At(idx)
	out := &Output{
		Scheduler:          combo[0].(string),
		CurrentIndex:       idx,
		TotalCombinations:  space.Size(),
		CurrentCombination: space.Label(combo),
	}

	ctxlog.FromContext(ctx).Debug("Selected combination.",
		"index", idx, "total", space.Size(), "combination", out.CurrentCombination, "mode", mode)
	return out, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNode("OnInvokeSchedulerLoop", &registry.RegisteredNode{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnInvokeSchedulerLoop,
	})
}
