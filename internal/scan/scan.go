package scan

import "context"

// Stage identifies a step of the transform in progress events.
type Stage string

// Stages in the order they run.
const (
	StageInit      Stage = "Initialization"
	StageForward   Stage = "Forward Scan"
	StageBackward  Stage = "Backward Scan"
	StageNormalize Stage = "Normalization"
	StageDone      Stage = ""
)

// Event reports progress of a stage. Row counts rows finished so far out of
// Rows. A stage starts with Row == 0 and ends with Row == Rows.
type Event struct {
	Stage Stage
	Row   int
	Rows  int
}

// Reporter receives progress events. A nil Reporter drops them.
type Reporter func(Event)

func (r Reporter) emit(stage Stage, row, rows int) {
	if r != nil {
		r(Event{Stage: stage, Row: row, Rows: rows})
	}
}

// Offset is a neighbor shift with its weight in buffer units.
type Offset[T Number] struct {
	DX, DY int
	W      T
}

// Grid is the binary input: row-major, zero is background.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// Plan bundles everything a full transform needs.
type Plan[T Number] struct {
	Arith    Arith[T]
	Forward  []Offset[T]
	Backward []Offset[T]

	// Divisor is applied by Normalize. Zero skips normalization.
	Divisor T

	Report Reporter
}

// Run initializes a buffer for g and runs both sweeps and the optional
// normalization. The context is checked between rows; on cancellation the
// partial buffer is dropped and ctx.Err() is returned.
func (p Plan[T]) Run(ctx context.Context, g Grid) ([]T, error) {
	buf := Init(p.Arith, g, p.Report)
	if err := Forward(ctx, p.Arith, buf, g, p.Forward, p.Report); err != nil {
		return nil, err
	}
	if err := Backward(ctx, p.Arith, buf, g, p.Backward, p.Report); err != nil {
		return nil, err
	}
	if p.Divisor != 0 {
		Normalize(p.Arith, buf, g, p.Divisor, p.Report)
	}
	p.Report.emit(StageDone, g.Height, g.Height)
	return buf, nil
}

// Init allocates a buffer the size of g holding 0 for background cells and
// the unreached sentinel for foreground cells.
func Init[T Number](a Arith[T], g Grid, r Reporter) []T {
	r.emit(StageInit, 0, g.Height)
	buf := make([]T, g.Width*g.Height)
	far := a.Unreached()
	for i, v := range g.Pix[:len(buf)] {
		if v != 0 {
			buf[i] = far
		}
	}
	r.emit(StageInit, g.Height, g.Height)
	return buf
}

// Forward relaxes buf in raster order with the causal offsets.
func Forward[T Number](ctx context.Context, a Arith[T], buf []T, g Grid, offsets []Offset[T], r Reporter) error {
	return sweep(ctx, a, buf, g, offsets, false, StageForward, r)
}

// Backward relaxes buf in reverse raster order with the anti-causal offsets.
func Backward[T Number](ctx context.Context, a Arith[T], buf []T, g Grid, offsets []Offset[T], r Reporter) error {
	return sweep(ctx, a, buf, g, offsets, true, StageBackward, r)
}

func sweep[T Number](ctx context.Context, a Arith[T], buf []T, g Grid, offsets []Offset[T], reverse bool, stage Stage, r Reporter) error {
	w, h := g.Width, g.Height
	for i := 0; i < h; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.emit(stage, i, h)

		y := i
		if reverse {
			y = h - 1 - i
		}
		for j := 0; j < w; j++ {
			x := j
			if reverse {
				x = w - 1 - j
			}
			idx := y*w + x
			if g.Pix[idx] == 0 {
				continue
			}

			cur := buf[idx]
			best := cur
			for _, o := range offsets {
				x2, y2 := x+o.DX, y+o.DY
				// Offsets routinely reach past the border.
				if x2 < 0 || x2 >= w || y2 < 0 || y2 >= h {
					continue
				}
				k := y2*w + x2
				cand := o.W
				if g.Pix[k] != 0 {
					cand = a.Add(buf[k], o.W)
				}
				if cand < best {
					best = cand
				}
			}
			if best < cur {
				buf[idx] = best
			}
		}
	}
	r.emit(stage, h, h)
	return nil
}

// Normalize divides every foreground cell by divisor. It must only run on a
// buffer both sweeps have finished with.
func Normalize[T Number](a Arith[T], buf []T, g Grid, divisor T, r Reporter) {
	r.emit(StageNormalize, 0, g.Height)
	for i := range buf {
		if g.Pix[i] != 0 {
			buf[i] = a.Div(buf[i], divisor)
		}
	}
	r.emit(StageNormalize, g.Height, g.Height)
}
