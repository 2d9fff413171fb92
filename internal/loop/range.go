package loop

import "math"

// rangeEpsilon absorbs floating-point drift when deciding whether the next
// value still falls inside an inclusive range.
const rangeEpsilon = 1e-9

// Range describes an inclusive numeric sweep over [Start, End] in increments
// of Step, e.g. a cfg or shift axis.
type Range struct {
	Start float64
	End   float64
	Step  float64
}

// Enumerate expands the range into its ordered value list. Degenerate inputs
// never fail: a non-positive step or an end below the start clamp to the
// single-element list [Start], so a node always has a value to emit. Values
// are rounded to two decimals, matching the precision the host's widgets use,
// and the last value never exceeds End.
//
// Each value is computed as Start + i*Step so a step smaller than the
// rounding granularity still makes progress and the walk terminates for
// every positive step.
func (r Range) Enumerate() []float64 {
	if r.Step <= 0 || r.End < r.Start {
		return []float64{round2(r.Start)}
	}

	var values []float64
	for i := 0; ; i++ {
		v := r.Start + float64(i)*r.Step
		if v > r.End+rangeEpsilon {
			break
		}
		if v > r.End {
			v = r.End
		}
		values = append(values, round2(v))
	}
	return values
}

// IntRange is the integral counterpart of Range, used for the steps axis.
type IntRange struct {
	Start int
	End   int
	Step  int
}

// Enumerate expands the range into its ordered value list with the same
// clamping contract as Range.Enumerate.
func (r IntRange) Enumerate() []int {
	if r.Step <= 0 || r.End < r.Start {
		return []int{r.Start}
	}

	var values []int
	for v := r.Start; v <= r.End; v += r.Step {
		values = append(values, v)
	}
	return values
}

// round2 rounds to two decimal places to keep accumulated step additions from
// drifting, the same way the host rounds widget values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
