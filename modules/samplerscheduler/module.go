// Package samplerscheduler provides a node that traverses the Cartesian
// product of the host's sampler and scheduler names.
package samplerscheduler

import (
	"context"
	"reflect"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the sampler_scheduler_loop node.
type Input struct {
	Mode           string `lgo:"mode"`
	Seed           int64  `lgo:"seed"`
	Reset          bool   `lgo:"reset"`
	SkipSamplers   string `lgo:"skip_samplers"`
	SkipSchedulers string `lgo:"skip_schedulers"`
}

// Output defines the values emitted on every invocation.
type Output struct {
	Sampler            string `cty:"sampler"`
	Scheduler          string `cty:"scheduler"`
	CurrentIndex       int    `cty:"current_index"`
	TotalCombinations  int    `cty:"total_combinations"`
	CurrentCombination string `cty:"current_combination"`
}

// OnInvokeSamplerScheduler advances the instance's traversal by one step and
// returns the current sampler/scheduler pair. The sampler axis varies
// slowest.
func OnInvokeSamplerScheduler(ctx context.Context, inv *registry.Invocation, input *Input) (*Output, error) {
	mode, err := loop.ParseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	samplers := loop.Filter(ctx, inv.Names.Samplers(), input.SkipSamplers)
	schedulers := loop.Filter(ctx, inv.Names.Schedulers(), input.SkipSchedulers)

	space := loop.NewSpace(
		loop.Strings("sampler", samplers),
		loop.Strings("scheduler", schedulers),
	)

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
		Sampler:            combo[0].(string),
		Scheduler:          combo[1].(string),
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
	r.RegisterNode("OnInvokeSamplerScheduler", &registry.RegisteredNode{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnInvokeSamplerScheduler,
	})
}
