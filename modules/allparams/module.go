// Package allparams provides the widest sweep node: combinations of steps,
// cfg and shift ranges with the host's sampler and scheduler names.
package allparams

import (
	"context"
	"reflect"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the all_parameters_loop node.
type Input struct {
	Mode           string  `lgo:"mode"`
	StepsStart     int     `lgo:"steps_start"`
	StepsEnd       int     `lgo:"steps_end"`
	StepsInterval  int     `lgo:"steps_interval"`
	CfgStart       float64 `lgo:"cfg_start"`
	CfgEnd         float64 `lgo:"cfg_end"`
	CfgInterval    float64 `lgo:"cfg_interval"`
	ShiftStart     float64 `lgo:"shift_start"`
	ShiftEnd       float64 `lgo:"shift_end"`
	ShiftInterval  float64 `lgo:"shift_interval"`
	Seed           int64   `lgo:"seed"`
	Reset          bool    `lgo:"reset"`
	SkipSamplers   string  `lgo:"skip_samplers"`
	SkipSchedulers string  `lgo:"skip_schedulers"`
}

// Output defines the values emitted on every invocation.
type Output struct {
	Steps              int     `cty:"steps"`
	Cfg                float64 `cty:"cfg"`
	Shift              float64 `cty:"shift"`
	Sampler            string  `cty:"sampler"`
	Scheduler          string  `cty:"scheduler"`
	CurrentIndex       int     `cty:"current_index"`
	TotalCombinations  int     `cty:"total_combinations"`
	CurrentCombination string  `cty:"current_combination"`
}

// OnInvokeAllParams advances the instance's traversal by one step and
// returns the current combination across all five axes. Axis order, slowest
// to fastest: steps, cfg, shift, sampler, scheduler.
func OnInvokeAllParams(ctx context.Context, inv *registry.Invocation, input *Input) (*Output, error) {
	mode, err := loop.ParseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	steps := loop.IntRange{Start: input.StepsStart, End: input.StepsEnd, Step: input.StepsInterval}.Enumerate()
	cfg := loop.Range{Start: input.CfgStart, End: input.CfgEnd, Step: input.CfgInterval}.Enumerate()
	shift := loop.Range{Start: input.ShiftStart, End: input.ShiftEnd, Step: input.ShiftInterval}.Enumerate()
	samplers := loop.Filter(ctx, inv.Names.Samplers(), input.SkipSamplers)
	schedulers := loop.Filter(ctx, inv.Names.Schedulers(), input.SkipSchedulers)

	space := loop.NewSpace(
		loop.Ints("steps", steps),
		loop.Floats("cfg", cfg),
		loop.Floats("shift", shift),
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
		Steps:              combo[0].(int),
		Cfg:                combo[1].(float64),
		Shift:              combo[2].(float64),
		Sampler:            combo[3].(string),
		Scheduler:          combo[4].(string),
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
	r.RegisterNode("OnInvokeAllParams", &registry.RegisteredNode{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnInvokeAllParams,
	})
}
