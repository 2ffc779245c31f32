package chamfer

import (
	"image"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Map is the result of a distance transform: a grid the size of the input
// image holding 0 at background pixels and the propagated distance at
// foreground pixels. The caller owns it.
type Map[T Distance] struct {
	width     int
	height    int
	pix       []T
	unreached T
}

// Width returns the map width.
func (m *Map[T]) Width() int { return m.width }

// Height returns the map height.
func (m *Map[T]) Height() int { return m.height }

// Bounds returns the map dimensions as an image.Rectangle.
func (m *Map[T]) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// At returns the distance at (x, y), or 0 outside the map.
func (m *Map[T]) At(x, y int) T {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// Pix returns the row-major cells. The slice is not copied.
func (m *Map[T]) Pix() []T { return m.pix }

// Unreached returns the value left in foreground cells no path reached. For
// unsigned maps it is the type maximum, divided by the reference weight when
// normalized, and saturated distances are indistinguishable from it.
func (m *Map[T]) Unreached() T { return m.unreached }

// Reached reports whether (x, y) holds a finite distance.
func (m *Map[T]) Reached(x, y int) bool { return m.At(x, y) != m.unreached }

// Max returns the largest reached distance, or 0 for an empty foreground.
func (m *Map[T]) Max() T {
	var hi T
	for _, v := range m.pix {
		if v != m.unreached && v > hi {
			hi = v
		}
	}
	return hi
}

func (m *Map[T]) countUnreached() int {
	n := 0
	for _, v := range m.pix {
		if v == m.unreached {
			n++
		}
	}
	return n
}

// Stats summarizes the distances over the foreground of an image.
type Stats struct {
	// Count is the number of reached foreground pixels.
	Count int
	// Unreached is the number of foreground pixels left at the sentinel.
	Unreached int

	Min, Max     float64
	Mean, StdDev float64
}

// Summary computes statistics of the distances at the foreground pixels of
// img, which must be the image the map was computed from. StdDev is the
// sample standard deviation, zero when fewer than two pixels are reached.
// An img of a different size yields the zero Stats.
func (m *Map[T]) Summary(img *Binary) Stats {
	var s Stats
	if img == nil || img.width != m.width || img.height != m.height {
		return s
	}
	values := make([]float64, 0, len(m.pix))
	for i, v := range m.pix {
		if img.data[i] == 0 {
			continue
		}
		if v == m.unreached {
			s.Unreached++
			continue
		}
		values = append(values, float64(v))
	}

	s.Count = len(values)
	if s.Count == 0 {
		return s
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	if s.Count == 1 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}

// Gray16 renders the map for display, scaling [0, scale] linearly to
// [0, 0xffff]. A non-positive scale uses Max. Unreached cells are white.
func (m *Map[T]) Gray16(scale float64) *image.Gray16 {
	if scale <= 0 {
		scale = float64(m.Max())
	}
	img := image.NewGray16(m.Bounds())
	for i, v := range m.pix {
		var g uint16
		switch {
		case v == m.unreached:
			g = 0xffff
		case scale > 0:
			g = uint16(min(float64(v)/scale, 1)*0xffff + 0.5)
		}
		img.Pix[2*i] = uint8(g >> 8)
		img.Pix[2*i+1] = uint8(g)
	}
	return img
}
