// Package paramsrange provides a node that sweeps combinations of steps, cfg
// and shift values in sequential order.
package paramsrange

import (
	"context"
	"reflect"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the parameters_range_loop node.
type Input struct {
	StepsStart    int     `lgo:"steps_start"`
	StepsEnd      int     `lgo:"steps_end"`
	StepsInterval int     `lgo:"steps_interval"`
	CfgStart      float64 `lgo:"cfg_start"`
	CfgEnd        float64 `lgo:"cfg_end"`
	CfgInterval   float64 `lgo:"cfg_interval"`
	ShiftStart    float64 `lgo:"shift_start"`
	ShiftEnd      float64 `lgo:"shift_end"`
	ShiftInterval float64 `lgo:"shift_interval"`
	Seed          int64   `lgo:"seed"`
	Reset         bool    `lgo:"reset"`
}

// Output defines the values emitted on every invocation.
type Output struct {
	Steps              int     `cty:"steps"`
	Cfg                float64 `cty:"cfg"`
	Shift              float64 `cty:"shift"`
	CurrentIndex       int     `cty:"current_index"`
	TotalCombinations  int     `cty:"total_combinations"`
	CurrentCombination string  `cty:"current_combination"`
}

// OnInvokeParamsRange advances the instance's traversal by one step and
// returns the current steps/cfg/shift combination. The steps axis varies
// slowest, shift fastest.
func OnInvokeParamsRange(ctx context.Context, inv *registry.Invocation, input *Input) (*Output, error) {
	steps := loop.IntRange{Start: input.StepsStart, End: input.StepsEnd, Step: input.StepsInterval}.Enumerate()
	cfg := loop.Range{Start: input.CfgStart, End: input.CfgEnd, Step: input.CfgInterval}.Enumerate()
	shift := loop.Range{Start: input.ShiftStart, End: input.ShiftEnd, Step: input.ShiftInterval}.Enumerate()

	space := loop.NewSpace(
		loop.Ints("steps", steps),
		loop.Floats("cfg", cfg),
		loop.Floats("shift", shift),
	)

	idx := loop.Invoke(inv.State, space.Size(), loop.Control{
		Mode:  loop.ModeSequential,
		Seed:  input.Seed,
		Reset: input.Reset,
	})

	combo := space.At(idx)
	out := &Output{
		Steps:              combo[0].(int),
		Cfg:                combo[1].(float64),
		Shift:              combo[2].(float64),
		CurrentIndex:       idx,
		TotalCombinations:  space.Size(),
		CurrentCombination: space.Label(combo),
	}

	ctxlog.FromContext(ctx).Debug("Selected combination.",
		"index", idx, "total", space.Size(), "combination", out.CurrentCombination)
	return out, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterNode("OnInvokeParamsRange", &registry.RegisteredNode{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnInvokeParamsRange,
	})
}
