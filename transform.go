package chamfer

import (
	"context"
	"log/slog"

	"github.com/gogpu/chamfer/internal/scan"
)

// Distance is the set of cell types a distance map can hold. Unsigned types
// use saturating arithmetic with the type maximum as the "unreached" value;
// floating types use +Inf.
type Distance interface {
	uint16 | uint32 | float32 | float64
}

// Transform computes chamfer distance maps of binary images: for each
// foreground pixel, the cheapest path of mask steps to a background pixel.
//
// A Transform holds no per-call state and is safe for concurrent use.
type Transform[T Distance] struct {
	mask *Mask
	opts options
}

// NewTransform creates a transform propagating distances with mask, which
// must not be nil.
func NewTransform[T Distance](mask *Mask, opts ...Option) *Transform[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Transform[T]{mask: mask, opts: o}
}

// NewShortTransform creates a transform computing 16-bit saturating
// integer distances.
func NewShortTransform(mask *Mask, opts ...Option) *Transform[uint16] {
	return NewTransform[uint16](mask, opts...)
}

// NewFloatTransform creates a transform computing 32-bit floating-point
// distances.
func NewFloatTransform(mask *Mask, opts ...Option) *Transform[float32] {
	return NewTransform[float32](mask, opts...)
}

// ComputeDistanceMap runs a single transform of img with mask. The cell
// type T selects the numeric realization.
func ComputeDistanceMap[T Distance](img *Binary, mask *Mask, normalize bool) *Map[T] {
	return NewTransform[T](mask, WithNormalize(normalize)).DistanceMap(img)
}

// Mask returns the chamfer mask of the transform.
func (t *Transform[T]) Mask() *Mask { return t.mask }

// Normalize reports whether results are divided by the reference weight.
func (t *Transform[T]) Normalize() bool { return t.opts.normalize }

// DistanceMap returns the distance map of img. Background pixels hold 0 and
// foreground pixels a strictly positive distance.
func (t *Transform[T]) DistanceMap(img *Binary) *Map[T] {
	m, _ := t.DistanceMapContext(context.Background(), img)
	return m
}

// DistanceMapContext is like DistanceMap but stops between rows when ctx is
// done, returning ctx.Err() and no map.
func (t *Transform[T]) DistanceMapContext(ctx context.Context, img *Binary) (*Map[T], error) {
	log := t.logger()
	a := arithFor[T]()

	plan := scan.Plan[T]{
		Arith:    a,
		Forward:  convertOffsets(a, t.mask.forward),
		Backward: convertOffsets(a, t.mask.backward),
		Report:   scan.Reporter(t.opts.progress),
	}
	if t.opts.normalize {
		plan.Divisor = a.Weight(t.mask.ReferenceWeight())
	}

	log.Debug("chamfer: distance map",
		"mask", t.mask.label,
		"width", img.width,
		"height", img.height,
		"normalize", t.opts.normalize)

	buf, err := plan.Run(ctx, scan.Grid{Width: img.width, Height: img.height, Pix: img.data})
	if err != nil {
		log.Debug("chamfer: distance map aborted", "err", err)
		return nil, err
	}

	unreached := a.Unreached()
	if plan.Divisor != 0 {
		unreached = a.Div(unreached, plan.Divisor)
	}
	m := &Map[T]{width: img.width, height: img.height, pix: buf, unreached: unreached}
	if n := m.countUnreached(); n > 0 {
		log.Warn("chamfer: foreground pixels without background", "count", n)
	}
	return m, nil
}

func (t *Transform[T]) logger() *slog.Logger {
	if t.opts.logger != nil {
		return t.opts.logger
	}
	return Logger()
}

// arithFor returns the numeric policy of T.
func arithFor[T Distance]() scan.Arith[T] {
	var a any
	switch any(*new(T)).(type) {
	case uint16:
		a = scan.Saturating[uint16]{}
	case uint32:
		a = scan.Saturating[uint32]{}
	case float32:
		a = scan.Real[float32]{}
	case float64:
		a = scan.Real[float64]{}
	}
	return a.(scan.Arith[T])
}

func convertOffsets[T Distance](a scan.Arith[T], offsets []Offset) []scan.Offset[T] {
	out := make([]scan.Offset[T], len(offsets))
	for i, o := range offsets {
		out[i] = scan.Offset[T]{DX: o.DX, DY: o.DY, W: a.Weight(o.Weight)}
	}
	return out
}
