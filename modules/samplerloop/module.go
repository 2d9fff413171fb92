// Package samplerloop provides a node that traverses the host's sampler
// names in sequential, random or ping-pong order.
package samplerloop

import (
	"context"
	"reflect"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the sampler_loop node.
type Input struct {
	Mode         string `lgo:"mode"`
	Seed         int64  `lgo:"seed"`
	Reset        bool   `lgo:"reset"`
	SkipSamplers string `lgo:"skip_samplers"`
}

// Output defines the values emitted on every invocation.
type Output struct {
	Sampler            string `cty:"sampler"`
	CurrentIndex       int    `cty:"current_index"`
	TotalCombinations  int    `cty:"total_combinations"`
	CurrentCombination string `cty:"current_combination"`
}

// OnInvokeSamplerLoop advances the instance's traversal by one step and
// returns the current sampler name.
func OnInvokeSamplerLoop(ctx context.Context, inv *registry.Invocation, input *Input) (*Output, error) {
	mode, err := loop.ParseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	samplers := loop.Filter(ctx, inv.Names.Samplers(), input.SkipSamplers)
	space := loop.NewSpace(loop.Strings("sampler", samplers))

	idx := loop.Invoke(inv.State, space.Size(), loop.Control{
		Mode:  mode,
		Seed:  input.Seed,
		Reset: input.Reset,
	})

	if space.Size() == 0 {
		// The host registry supplied no names at all. Emit harmless defaults
		// rather than failing the invocation.
		return &Output{CurrentCombination: "no combinations available"}, nil
	}

	combo := space.At(idx)
	out := &Output{
		Sampler:            combo[0].(string),
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
	r.RegisterNode("OnInvokeSamplerLoop", &registry.RegisteredNode{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnInvokeSamplerLoop,
	})
}
