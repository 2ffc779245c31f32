package scan

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of cell types a distance buffer can hold.
type Number interface {
	constraints.Unsigned | constraints.Float
}

// Arith is the numeric policy of one realization.
type Arith[T Number] interface {
	// Unreached returns the value foreground cells start from.
	Unreached() T

	// Add returns a+b. Integer policies saturate at Unreached.
	Add(a, b T) T

	// Div returns v/w. Integer policies truncate.
	Div(v, w T) T

	// Weight converts a mask weight to a cell value.
	Weight(w float64) T
}

// Saturating is the policy for unsigned integer buffers.
// The type maximum is both the unreached sentinel and the saturation bound.
type Saturating[T constraints.Unsigned] struct{}

// Unreached returns the maximum value of T.
func (Saturating[T]) Unreached() T { return ^T(0) }

// Add adds a and b, clamping at the maximum value of T instead of wrapping.
func (Saturating[T]) Add(a, b T) T {
	s := a + b
	if s < a {
		return ^T(0)
	}
	return s
}

// Div performs integer division, saturated cells included.
func (Saturating[T]) Div(v, w T) T {
	if w == 0 {
		return v
	}
	return v / w
}

// Weight rounds w to the nearest integer in [1, max(T)].
func (Saturating[T]) Weight(w float64) T {
	r := math.Round(w)
	if r < 1 {
		return 1
	}
	if r >= float64(^T(0)) {
		return ^T(0)
	}
	return T(r)
}

// Real is the policy for floating-point buffers.
type Real[T constraints.Float] struct{}

// Unreached returns positive infinity.
func (Real[T]) Unreached() T { return T(math.Inf(1)) }

// Add returns a+b.
func (Real[T]) Add(a, b T) T { return a + b }

// Div returns v/w.
func (Real[T]) Div(v, w T) T { return v / w }

// Weight converts w to T.
func (Real[T]) Weight(w float64) T { return T(w) }
