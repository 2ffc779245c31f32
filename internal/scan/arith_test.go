package scan

import (
	"math"
	"testing"
)

func TestSaturatingAdd(t *testing.T) {
	a := Saturating[uint16]{}
	tests := []struct {
		name string
		x, y uint16
		want uint16
	}{
		{"small", 3, 4, 7},
		{"zero", 0, 0, 0},
		{"exact max", math.MaxUint16 - 5, 5, math.MaxUint16},
		{"overflow", math.MaxUint16 - 2, 5, math.MaxUint16},
		{"sentinel", math.MaxUint16, 1, math.MaxUint16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Add(tt.x, tt.y); got != tt.want {
				t.Errorf("Add(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSaturatingUnreached(t *testing.T) {
	if got := (Saturating[uint16]{}).Unreached(); got != math.MaxUint16 {
		t.Errorf("uint16 Unreached() = %d, want %d", got, math.MaxUint16)
	}
	if got := (Saturating[uint32]{}).Unreached(); got != math.MaxUint32 {
		t.Errorf("uint32 Unreached() = %d, want %d", got, uint32(math.MaxUint32))
	}
}

func TestSaturatingDiv(t *testing.T) {
	a := Saturating[uint16]{}
	if got := a.Div(14, 3); got != 4 {
		t.Errorf("Div(14, 3) = %d, want 4", got)
	}
	if got := a.Div(math.MaxUint16, 3); got != 21845 {
		t.Errorf("Div(max, 3) = %d, want 21845", got)
	}
	if got := a.Div(9, 0); got != 9 {
		t.Errorf("Div(9, 0) = %d, want 9", got)
	}
}

func TestSaturatingWeight(t *testing.T) {
	a := Saturating[uint16]{}
	tests := []struct {
		in   float64
		want uint16
	}{
		{3, 3},
		{1.41, 1},
		{2.5, 3},
		{0.2, 1},
		{1e9, math.MaxUint16},
	}
	for _, tt := range tests {
		if got := a.Weight(tt.in); got != tt.want {
			t.Errorf("Weight(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReal(t *testing.T) {
	a := Real[float32]{}
	inf := a.Unreached()
	if !math.IsInf(float64(inf), 1) {
		t.Fatalf("Unreached() = %v, want +Inf", inf)
	}
	if got := a.Add(inf, 3); !math.IsInf(float64(got), 1) {
		t.Errorf("Add(+Inf, 3) = %v, want +Inf", got)
	}
	if got := a.Div(7, 2); got != 3.5 {
		t.Errorf("Div(7, 2) = %v, want 3.5", got)
	}
	if got := a.Weight(math.Sqrt2); got != float32(math.Sqrt2) {
		t.Errorf("Weight(sqrt2) = %v, want %v", got, float32(math.Sqrt2))
	}
}
