package loop

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimension is one named, ordered axis of a combination space. Order is
// significant: it defines traversal order and ping-pong direction.
type Dimension struct {
	Name   string
	values []any
}

// Floats builds a dimension from an enumerated float range.
func Floats(name string, vals []float64) Dimension {
	d := Dimension{Name: name, values: make([]any, len(vals))}
	for i, v := range vals {
		d.values[i] = v
	}
	return d
}

// Ints builds a dimension from an enumerated integer range.
func Ints(name string, vals []int) Dimension {
	d := Dimension{Name: name, values: make([]any, len(vals))}
	for i, v := range vals {
		d.values[i] = v
	}
	return d
}

// Strings builds a dimension from a categorical name list.
func Strings(name string, vals []string) Dimension {
	d := Dimension{Name: name, values: make([]any, len(vals))}
	for i, v := range vals {
		d.values[i] = v
	}
	return d
}

// Len returns the number of values on the axis.
func (d Dimension) Len() int {
	return len(d.values)
}

// Space is the ordered Cartesian product of one or more dimensions.
// Combinations are materialized lazily by mixed-radix decomposition of the
// index, so the product is never built eagerly.
type Space struct {
	dims []Dimension
	size int
}

// NewSpace builds a space over the given dimensions, listed slowest-varying
// first. A dimension with no values makes the space size zero; that
// degenerate state is valid and must be handled by callers, not crashed on.
func NewSpace(dims ...Dimension) *Space {
	size := 1
	for _, d := range dims {
		size *= d.Len()
	}
	if len(dims) == 0 {
		size = 0
	}
	return &Space{dims: dims, size: size}
}

// Size returns the total number of combinations.
func (s *Space) Size() int {
	return s.size
}

// At returns the combination at index i, one value per dimension in
// declaration order. The first-listed dimension varies slowest and the
// last-listed fastest, so index 0 is the first value of every axis.
func (s *Space) At(i int) []any {
	combo := make([]any, len(s.dims))
	rem := i
	for d := len(s.dims) - 1; d >= 0; d-- {
		n := s.dims[d].Len()
		combo[d] = s.dims[d].values[rem%n]
		rem /= n
	}
	return combo
}

// Label renders a combination as a stable, human-readable string such as
// "steps=30, cfg=4.50, sampler=euler". Field order matches dimension order.
func (s *Space) Label(combo []any) string {
	if s.size == 0 || len(combo) != len(s.dims) {
		return "no combinations available"
	}

	parts := make([]string, len(combo))
	for i, v := range combo {
		parts[i] = s.dims[i].Name + "=" + formatValue(v)
	}
	return strings.Join(parts, ", ")
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
