package chamfer

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cornerImage returns a 7x7 foreground image with one background pixel at
// (4, 4).
func cornerImage() *Binary {
	img := NewBinary(7, 7)
	img.Fill(255)
	img.Set(4, 4, 0)
	return img
}

// rectImage returns a 12x10 background image with a foreground rectangle
// over rows 2-7 and columns 2-9.
func rectImage() *Binary {
	img := NewBinary(12, 10)
	img.FillRect(image.Rect(2, 2, 10, 8), 255)
	return img
}

type pixel struct {
	x, y int
	want float64
}

var cornerCases = []struct {
	name   string
	mask   *Mask
	pixels []pixel
}{
	{"city-block", CityBlock, []pixel{{0, 0, 8}, {6, 0, 6}, {0, 6, 6}, {6, 6, 4}}},
	{"chessboard", Chessboard, []pixel{{0, 0, 4}, {6, 0, 4}, {0, 6, 4}, {6, 6, 2}}},
	{"weights 2,3", mustNew(2, 3), []pixel{{0, 0, 12}, {6, 0, 10}, {0, 6, 10}, {6, 6, 6}}},
	{"borgefors", Borgefors, []pixel{{0, 0, 16}, {6, 0, 14}, {0, 6, 14}, {6, 6, 8}}},
	{"chessknight", ChessKnight, []pixel{{4, 6, 10}, {6, 6, 14}, {0, 0, 28}, {6, 0, 22}, {0, 6, 22}}},
	{"knight 3,1", Knight31, []pixel{{1, 3, 16}, {3, 1, 16}, {1, 4, 15}, {0, 0, 28}}},
}

func mustNew(weights ...float64) *Mask {
	m, err := New(weights...)
	if err != nil {
		panic(err)
	}
	return m
}

func TestDistanceMapUntilCornersShort(t *testing.T) {
	img := cornerImage()
	for _, tt := range cornerCases {
		t.Run(tt.name, func(t *testing.T) {
			result := NewShortTransform(tt.mask, WithNormalize(false)).DistanceMap(img)
			if result.Width() != img.Width() || result.Height() != img.Height() {
				t.Fatalf("size = %dx%d, want %dx%d", result.Width(), result.Height(), img.Width(), img.Height())
			}
			for _, p := range tt.pixels {
				if got := result.At(p.x, p.y); float64(got) != p.want {
					t.Errorf("At(%d, %d) = %d, want %v", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestDistanceMapUntilCornersFloat(t *testing.T) {
	img := cornerImage()
	for _, tt := range cornerCases {
		t.Run(tt.name, func(t *testing.T) {
			result := NewFloatTransform(tt.mask, WithNormalize(false)).DistanceMap(img)
			for _, p := range tt.pixels {
				if got := result.At(p.x, p.y); math.Abs(float64(got)-p.want) > 0.01 {
					t.Errorf("At(%d, %d) = %v, want %v", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestDistanceMapUntilCornersUint32(t *testing.T) {
	img := cornerImage()
	result := ComputeDistanceMap[uint32](img, Borgefors, false)
	if got := result.At(0, 0); got != 16 {
		t.Errorf("At(0, 0) = %d, want 16", got)
	}
	if got := result.At(6, 6); got != 8 {
		t.Errorf("At(6, 6) = %d, want 8", got)
	}
}

func TestDistanceMapFromBordersChessboard(t *testing.T) {
	img := rectImage()
	result := NewShortTransform(Chessboard, WithNormalize(true)).DistanceMap(img)

	if result.Width() != 12 || result.Height() != 10 {
		t.Fatalf("size = %dx%d, want 12x10", result.Width(), result.Height())
	}
	if got := result.At(4, 4); got != 3 {
		t.Errorf("At(4, 4) = %d, want 3", got)
	}

	f := NewFloatTransform(Chessboard).DistanceMap(img)
	if got := f.At(4, 4); got != 3 {
		t.Errorf("float At(4, 4) = %v, want 3", got)
	}
}

func TestQuasiEuclidean(t *testing.T) {
	img := cornerImage()

	f := ComputeDistanceMap[float64](img, QuasiEuclidean, true)
	if got, want := f.At(0, 0), 4*math.Sqrt2; math.Abs(got-want) > 1e-9 {
		t.Errorf("float At(0, 0) = %v, want %v", got, want)
	}
	if got := f.At(4, 0); got != 4 {
		t.Errorf("float At(4, 0) = %v, want 4", got)
	}

	// Rounded to (1,1) in integer arithmetic.
	s := ComputeDistanceMap[uint16](img, QuasiEuclidean, true)
	if got := s.At(0, 0); got != 4 {
		t.Errorf("short At(0, 0) = %d, want 4", got)
	}
}

// propertyImage has scattered background and a foreground blob touching
// the border.
func propertyImage() *Binary {
	img := NewBinary(23, 17)
	img.FillRect(image.Rect(0, 0, 20, 15), 255)
	img.FillRect(image.Rect(6, 4, 9, 6), 0)
	img.Set(15, 10, 0)
	img.Set(3, 12, 0)
	img.FillRect(image.Rect(11, 0, 12, 7), 0)
	return img
}

func TestBackgroundIsZero(t *testing.T) {
	img := propertyImage()
	for _, mask := range Catalog() {
		for _, normalize := range []bool{false, true} {
			s := ComputeDistanceMap[uint16](img, mask, normalize)
			f := ComputeDistanceMap[float32](img, mask, normalize)
			for y := 0; y < img.Height(); y++ {
				for x := 0; x < img.Width(); x++ {
					fg := img.IsForeground(x, y)
					if !fg && (s.At(x, y) != 0 || f.At(x, y) != 0) {
						t.Fatalf("%s: background (%d, %d) = %d / %v, want 0", mask, x, y, s.At(x, y), f.At(x, y))
					}
					if fg && !normalize && (s.At(x, y) == 0 || f.At(x, y) <= 0) {
						t.Fatalf("%s: foreground (%d, %d) = %d / %v, want > 0", mask, x, y, s.At(x, y), f.At(x, y))
					}
				}
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	img := propertyImage()
	for _, mask := range Catalog() {
		a := ComputeDistanceMap[float32](img, mask, true)
		b := ComputeDistanceMap[float32](img, mask, true)
		if diff := cmp.Diff(a.Pix(), b.Pix()); diff != "" {
			t.Errorf("%s: repeated runs differ (-first +second):\n%s", mask, diff)
		}
	}
}

func TestNormalizationIdentity(t *testing.T) {
	img := propertyImage()
	for _, mask := range Catalog() {
		t.Run(mask.Label(), func(t *testing.T) {
			rawS := ComputeDistanceMap[uint16](img, mask, false).Pix()
			normS := ComputeDistanceMap[uint16](img, mask, true).Pix()
			w := uint16(math.Round(mask.ReferenceWeight()))
			want := make([]uint16, len(rawS))
			for i, v := range rawS {
				want[i] = v / w
			}
			if diff := cmp.Diff(want, normS); diff != "" {
				t.Errorf("short normalized != raw / %d (-want +got):\n%s", w, diff)
			}

			rawF := ComputeDistanceMap[float64](img, mask, false).Pix()
			normF := ComputeDistanceMap[float64](img, mask, true).Pix()
			for i, v := range rawF {
				if got, want := normF[i], v/mask.ReferenceWeight(); math.Abs(got-want) > 1e-12 {
					t.Fatalf("float cell %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestNormalizationIdentitySaturated(t *testing.T) {
	row := NewBinary(40, 1)
	row.Fill(255)
	row.Set(0, 0, 0)

	full := NewBinary(3, 3)
	full.Fill(255)

	tests := []struct {
		name string
		img  *Binary
		mask *Mask
	}{
		{"saturated row", row, mustNew(2000, 3000)},
		{"no background", full, Borgefors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := ComputeDistanceMap[uint16](tt.img, tt.mask, false).Pix()
			norm := ComputeDistanceMap[uint16](tt.img, tt.mask, true).Pix()
			w := uint16(tt.mask.ReferenceWeight())
			want := make([]uint16, len(raw))
			for i, v := range raw {
				want[i] = v / w
			}
			if diff := cmp.Diff(want, norm); diff != "" {
				t.Errorf("normalized != raw / %d (-want +got):\n%s", w, diff)
			}
		})
	}

	// 39*2000 exceeds the uint16 range.
	if got := ComputeDistanceMap[uint16](row, mustNew(2000, 3000), true).At(39, 0); got != 32 {
		t.Errorf("saturated At(39, 0) = %d, want 65535/2000 = 32", got)
	}
	if got := ComputeDistanceMap[uint16](full, Borgefors, true).At(1, 1); got != 21845 {
		t.Errorf("unreached At(1, 1) = %d, want 65535/3 = 21845", got)
	}
}

func TestIntegerAndFloatAgreeOnIntegerMasks(t *testing.T) {
	img := propertyImage()
	for _, mask := range Catalog() {
		if !mask.IsInteger() {
			continue
		}
		s := ComputeDistanceMap[uint16](img, mask, false).Pix()
		f := ComputeDistanceMap[float32](img, mask, false).Pix()
		for i := range s {
			if float32(s[i]) != f[i] {
				t.Fatalf("%s: cell %d short %d, float %v", mask, i, s[i], f[i])
			}
		}
	}
}

func TestSaturation(t *testing.T) {
	img := NewBinary(3, 1)
	img.Set(1, 0, 255)
	img.Set(2, 0, 255)
	mask := mustNew(40000, 50000)

	m := ComputeDistanceMap[uint16](img, mask, false)
	if got := m.At(1, 0); got != 40000 {
		t.Errorf("At(1, 0) = %d, want 40000", got)
	}
	// 40000+40000 would wrap to 14464.
	if got := m.At(2, 0); got != math.MaxUint16 {
		t.Errorf("At(2, 0) = %d, want saturated %d", got, math.MaxUint16)
	}
}

func TestNoBackground(t *testing.T) {
	img := NewBinary(5, 4)
	img.Fill(1)

	s := ComputeDistanceMap[uint16](img, Borgefors, true)
	f := ComputeDistanceMap[float32](img, Borgefors, true)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if s.Reached(x, y) || f.Reached(x, y) {
				t.Fatalf("(%d, %d) reached without any background", x, y)
			}
		}
	}
	if !math.IsInf(float64(f.At(2, 2)), 1) {
		t.Errorf("float At(2, 2) = %v, want +Inf", f.At(2, 2))
	}
}

func TestEmptyImage(t *testing.T) {
	m := ComputeDistanceMap[uint16](NewBinary(0, 0), Chessboard, true)
	if m.Width() != 0 || m.Height() != 0 || len(m.Pix()) != 0 {
		t.Errorf("empty image gave %dx%d map with %d cells", m.Width(), m.Height(), len(m.Pix()))
	}
}

func TestInputNotModified(t *testing.T) {
	img := propertyImage()
	before := append([]uint8(nil), img.Data()...)
	ComputeDistanceMap[uint16](img, Knight31, true)
	if diff := cmp.Diff(before, img.Data()); diff != "" {
		t.Errorf("input image modified (-before +after):\n%s", diff)
	}
}

func TestDistanceMapContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := NewShortTransform(Borgefors).DistanceMapContext(ctx, rectImage())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if m != nil {
		t.Error("canceled transform returned a map")
	}
}

func TestProgressEvents(t *testing.T) {
	counts := map[Stage]int{}
	var last ProgressEvent
	tr := NewFloatTransform(Borgefors, WithProgress(func(e ProgressEvent) {
		counts[e.Stage]++
		if e.Row > e.Rows {
			t.Errorf("event %+v has Row > Rows", e)
		}
		last = e
	}))
	img := rectImage()
	tr.DistanceMap(img)

	// One event before each row plus one at completion.
	for _, s := range []Stage{StageForward, StageBackward} {
		if got := counts[s]; got != img.Height()+1 {
			t.Errorf("%q events = %d, want %d", s, got, img.Height()+1)
		}
	}
	if counts[StageNormalize] == 0 {
		t.Error("no normalization events")
	}
	if last.Stage != StageDone {
		t.Errorf("last stage = %q, want done", last.Stage)
	}

	counts = map[Stage]int{}
	NewFloatTransform(Borgefors, WithNormalize(false), WithProgress(func(e ProgressEvent) {
		counts[e.Stage]++
	})).DistanceMap(img)
	if counts[StageNormalize] != 0 {
		t.Error("normalization events without normalization")
	}
}

func TestTransformAccessors(t *testing.T) {
	tr := NewShortTransform(Verwer, WithNormalize(false))
	if tr.Mask() != Verwer {
		t.Errorf("Mask() = %v, want Verwer", tr.Mask())
	}
	if tr.Normalize() {
		t.Error("Normalize() = true, want false")
	}
	if !NewFloatTransform(Verwer).Normalize() {
		t.Error("default Normalize() = false, want true")
	}
}

func TestWithLoggerWarnsUnreached(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	img := NewBinary(3, 3)
	img.Fill(255)
	NewShortTransform(Chessboard, WithLogger(l)).DistanceMap(img)

	out := buf.String()
	if !strings.Contains(out, "chamfer: distance map") {
		t.Errorf("missing debug record, got: %s", out)
	}
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "count=9") {
		t.Errorf("missing unreached warning, got: %s", out)
	}
}
