package spectrum

import (
	"math"
	"testing"
)

func TestInterpolateLinearHold(t *testing.T) {
	x := []float64{20, 100, 1000}
	y := []float64{12, 4, -8}
	q := []float64{0, 20, 60, 100, 550, 1000, 5000}
	got, err := InterpolateLinear(x, y, q, EdgeHold)
	if err != nil {
		t.Fatalf("InterpolateLinear() error = %v", err)
	}
	want := []float64{12, 12, 8, 4, -2, -8, -8}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterpolateLinearExtrapolate(t *testing.T) {
	x := []float64{100, 200, 300}
	y := []float64{0, -10, -30}
	got, err := InterpolateLinear(x, y, []float64{0, 150, 400}, EdgeExtrapolate)
	if err != nil {
		t.Fatalf("InterpolateLinear() error = %v", err)
	}
	want := []float64{10, -5, -50}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterpolateModesAgreeInsideRange(t *testing.T) {
	x := []float64{30, 60, 120, 250}
	y := []float64{5, 2, 0, -2}
	q := []float64{30, 45, 90, 200, 250}
	hold, err := InterpolateLinear(x, y, q, EdgeHold)
	if err != nil {
		t.Fatalf("hold error = %v", err)
	}
	extra, err := InterpolateLinear(x, y, q, EdgeExtrapolate)
	if err != nil {
		t.Fatalf("extrapolate error = %v", err)
	}
	for i := range q {
		if math.Abs(hold[i]-extra[i]) > 1e-12 {
			t.Fatalf("modes differ at %v: %v vs %v", q[i], hold[i], extra[i])
		}
	}
}

func TestInterpolateLinearErrors(t *testing.T) {
	if _, err := InterpolateLinear(nil, nil, []float64{1}, EdgeHold); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := InterpolateLinear([]float64{1, 2}, []float64{1}, []float64{1}, EdgeHold); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := InterpolateLinear([]float64{1, 1}, []float64{1, 2}, []float64{1}, EdgeHold); err == nil {
		t.Fatal("expected error for duplicate x")
	}
	if _, err := InterpolateLinear([]float64{1, 2}, []float64{1, 2}, []float64{1}, EdgeMode(9)); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestParseEdgeMode(t *testing.T) {
	tests := []struct {
		in   string
		want EdgeMode
		ok   bool
	}{
		{"hold", EdgeHold, true},
		{"clamp", EdgeHold, true},
		{"", EdgeHold, true},
		{"extrapolate", EdgeExtrapolate, true},
		{"wrap", EdgeHold, false},
	}
	for _, tt := range tests {
		got, err := ParseEdgeMode(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseEdgeMode(%q) error = %v, ok want %v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("ParseEdgeMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if EdgeExtrapolate.String() != "extrapolate" || EdgeHold.String() != "hold" {
		t.Fatal("unexpected String() output")
	}
}
