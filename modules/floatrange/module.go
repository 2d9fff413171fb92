// Package floatrange provides a node that sweeps combinations of cfg and
// shift float values in sequential order.
package floatrange

import (
	"context"
	"reflect"

	"github.com/vk/loopgridgo/internal/ctxlog"
	"github.com/vk/loopgridgo/internal/loop"
	"github.com/vk/loopgridgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the float_range_loop node.
type Input struct {
	CfgStart   float64 `lgo:"cfg_start"`
	CfgEnd     float64 `lgo:"cfg_end"`
	CfgStep    float64 `lgo:"cfg_step"`
	ShiftStart float64 `lgo:"shift_start"`
	ShiftEnd   float64 `lgo:"shift_end"`
	ShiftStep  float64 `lgo:"shift_step"`
	Seed       int64   `lgo:"seed"`
	Reset      bool    `lgo:"reset"`
}

// Output defines the values emitted on every invocation.
type Output struct {
	Cfg                float64 `cty:"cfg"`
	Shift              float64 `cty:"shift"`
	CurrentIndex       int     `cty:"current_index"`
	TotalCombinations  int     `cty:"total_combinations"`
	CurrentCombination string  `cty:"current_combination"`
}

// OnInvokeFloatRange advances the instance's traversal by one step and
// returns the current cfg/shift combination. The cfg axis varies slowest.
func OnInvokeFloatRange(ctx context.Context, inv *registry.Invocation, input *Input) (*Output, error) {
	cfg := loop.Range{Start: input.CfgStart, End: input.CfgEnd, Step: input.CfgStep}.Enumerate()
	shift := loop.Range{Start: input.ShiftStart, End: input.ShiftEnd, Step: input.ShiftStep}.Enumerate()

	space := loop.NewSpace(
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
		Cfg:                combo[0].(float64),
		Shift:              combo[1].(float64),
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
	r.RegisterNode("OnInvokeFloatRange", &registry.RegisteredNode{
		NewInput:  func() any { return new(Input) },
		InputType: reflect.TypeOf(Input{}),
		Fn:        OnInvokeFloatRange,
	})
}
