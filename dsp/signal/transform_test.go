package signal

import (
	"math"
	"testing"
)

func TestIntegrate(t *testing.T) {
	out, err := Integrate([]float64{1, -2, 3, 0.5})
	if err != nil {
		t.Fatalf("Integrate() error = %v", err)
	}
	want := []float64{1, -1, 2, 2.5}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want[i])
		}
	}
}

func TestDetrendRemovesLine(t *testing.T) {
	in := make([]float64, 50)
	for i := range in {
		in[i] = 3 + 0.25*float64(i)
	}
	out, err := Detrend(in)
	if err != nil {
		t.Fatalf("Detrend() error = %v", err)
	}
	for i, v := range out {
		if math.Abs(v) > 1e-12 {
			t.Fatalf("out[%d]=%v, want 0", i, v)
		}
	}
}

func TestDetrendKeepsResidual(t *testing.T) {
	in := []float64{1, -1, 1, -1}
	out, err := Detrend(in)
	if err != nil {
		t.Fatalf("Detrend() error = %v", err)
	}
	var sum, moment float64
	for i, v := range out {
		sum += v
		moment += v * (float64(i) - 1.5)
	}
	if math.Abs(sum) > 1e-12 || math.Abs(moment) > 1e-12 {
		t.Fatalf("detrended signal still has mean %v or slope moment %v", sum, moment)
	}
}

func TestDetrendSingleSample(t *testing.T) {
	out, err := Detrend([]float64{5})
	if err != nil {
		t.Fatalf("Detrend() error = %v", err)
	}
	if out[0] != 0 {
		t.Fatalf("out[0]=%v, want 0", out[0])
	}
	if _, err := Detrend(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSanitizeNonFinite(t *testing.T) {
	data := []float64{0.5, math.NaN(), math.Inf(1), -0.25, math.Inf(-1)}
	n := SanitizeNonFinite(data)
	if n != 3 {
		t.Fatalf("replaced=%d, want 3", n)
	}
	want := []float64{0.5, 0, 0, -0.25, 0}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data[%d]=%v, want %v", i, data[i], want[i])
		}
	}
}
