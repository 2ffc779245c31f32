package chamfer

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the shape of a chamfer mask by the number of weight
// categories it uses.
type Kind uint8

const (
	// KindW2 uses orthogonal and diagonal steps (3x3 neighborhood).
	KindW2 Kind = iota + 1

	// KindW3 adds chess-knight steps (5x5 neighborhood).
	KindW3

	// KindW4 adds the (3,1) shift and its permutations (7x7 neighborhood).
	KindW4
)

// IsValid reports whether k is one of the defined kinds.
func (k Kind) IsValid() bool { return k >= KindW2 && k <= KindW4 }

// Arity returns the number of weights a mask of kind k takes.
func (k Kind) Arity() int {
	if !k.IsValid() {
		return 0
	}
	return int(k) + 1
}

// String returns "W2", "W3" or "W4".
func (k Kind) String() string {
	if !k.IsValid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return "W" + strconv.Itoa(k.Arity())
}

// KindForArity returns the kind taking n weights.
func KindForArity(n int) (Kind, bool) {
	k := Kind(n - 1)
	if n < 2 || !k.IsValid() {
		return 0, false
	}
	return k, true
}

// Offset is a neighbor shift (DX, DY) and the cost of stepping to it.
type Offset struct {
	DX, DY int
	Weight float64
}

// Weight categories, indexing the weight vector.
const (
	weightOrtho = iota
	weightDiag
	weightKnight
	weightShift31
)

// forwardTable lists the causal half of the richest mask, rows y-3 to y.
// Smaller kinds keep the entries whose category is below their arity.
var forwardTable = [...]struct {
	dx, dy int
	cat    int
}{
	{-1, -3, weightShift31},
	{+1, -3, weightShift31},

	{-1, -2, weightKnight},
	{+1, -2, weightKnight},

	{-3, -1, weightShift31},
	{-2, -1, weightKnight},
	{-1, -1, weightDiag},
	{0, -1, weightOrtho},
	{+1, -1, weightDiag},
	{+2, -1, weightKnight},
	{+3, -1, weightShift31},

	{-1, 0, weightOrtho},
}

// Mask is an immutable chamfer mask: a weighted set of neighbor offsets
// split into the half used by the forward raster sweep and its point mirror
// used by the backward sweep.
//
// A Mask is safe for concurrent use.
type Mask struct {
	kind     Kind
	label    string
	weights  []float64
	forward  []Offset
	backward []Offset
}

// New creates a mask whose kind is inferred from the number of weights:
// 2 for [KindW2], 3 for [KindW3], 4 for [KindW4]. Weights are given in the
// order orthogonal, diagonal, knight move, (3,1) shift.
func New(weights ...float64) (*Mask, error) {
	k, ok := KindForArity(len(weights))
	if !ok {
		return nil, &WeightCountError{Got: len(weights)}
	}
	return NewMask(k, weights...)
}

// NewMask creates a mask of the given kind. The number of weights must be
// kind.Arity() and every weight must be finite and strictly positive.
func NewMask(kind Kind, weights ...float64) (*Mask, error) {
	if !kind.IsValid() || len(weights) != kind.Arity() {
		return nil, &WeightCountError{Kind: kind, Got: len(weights)}
	}
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, &WeightValueError{Index: i, Value: w}
		}
	}
	return newMask(kind, formatLabel("Custom", weights), weights), nil
}

// mustMask builds a catalog entry. The weights are known valid.
func mustMask(label string, weights ...float64) *Mask {
	k, _ := KindForArity(len(weights))
	return newMask(k, label, weights)
}

func newMask(kind Kind, label string, weights []float64) *Mask {
	m := &Mask{
		kind:    kind,
		label:   label,
		weights: append([]float64(nil), weights...),
	}
	for _, e := range forwardTable {
		if e.cat >= len(weights) {
			continue
		}
		w := weights[e.cat]
		m.forward = append(m.forward, Offset{DX: e.dx, DY: e.dy, Weight: w})
		m.backward = append(m.backward, Offset{DX: -e.dx, DY: -e.dy, Weight: w})
	}
	return m
}

func formatLabel(name string, weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		if w == math.Trunc(w) {
			parts[i] = strconv.FormatFloat(w, 'f', 0, 64)
		} else {
			parts[i] = strconv.FormatFloat(w, 'g', 3, 64)
		}
	}
	return name + " (" + strings.Join(parts, ",") + ")"
}

// Kind returns the mask kind.
func (m *Mask) Kind() Kind { return m.kind }

// Label returns a human readable name such as "Borgefors (3,4)".
func (m *Mask) Label() string { return m.label }

// String implements fmt.Stringer.
func (m *Mask) String() string { return m.label }

// Weights returns a copy of the weight vector.
func (m *Mask) Weights() []float64 { return append([]float64(nil), m.weights...) }

// ReferenceWeight returns the weight of the orthogonal unit step, used to
// normalize distances to pixel units.
func (m *Mask) ReferenceWeight() float64 { return m.weights[weightOrtho] }

// ForwardOffsets returns the offsets whose targets precede the current
// pixel in raster order.
func (m *Mask) ForwardOffsets() []Offset { return append([]Offset(nil), m.forward...) }

// BackwardOffsets returns the point mirror of ForwardOffsets.
func (m *Mask) BackwardOffsets() []Offset { return append([]Offset(nil), m.backward...) }

// IsInteger reports whether every weight is a whole number, so the integer
// realization computes exactly the same path costs as the floating one.
func (m *Mask) IsInteger() bool {
	for _, w := range m.weights {
		if w != math.Trunc(w) {
			return false
		}
	}
	return true
}

// Radius returns the largest coordinate shift of any offset.
func (m *Mask) Radius() int {
	r := 0
	for _, o := range m.forward {
		r = max(r, abs(o.DX), abs(o.DY))
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
