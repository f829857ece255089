package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
	"github.com/cwbudde/algo-noise/internal/testutil"
)

// direct evaluates the difference equation without any state sharing.
func direct(b, a, x []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		acc := 0.0
		for k := range b {
			if n-k >= 0 {
				acc += b[k] * x[n-k]
			}
		}
		for k := 1; k < len(a); k++ {
			if n-k >= 0 {
				acc -= a[k] * y[n-k]
			}
		}
		y[n] = acc / a[0]
	}
	return y
}

func TestFilterMatchesDifferenceEquation(t *testing.T) {
	b := []float64{0.049922035, -0.095993537, 0.050612699, -0.004408786}
	a := []float64{1, -2.494956002, 2.017265875, -0.522189400}
	x := testutil.DeterministicGaussian(7, 512)

	f, err := New(b, a)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, f.Filter(x), direct(b, a, x), 1e-12)
}

func TestFilterNormalizesLeadingCoefficient(t *testing.T) {
	x := testutil.DeterministicGaussian(3, 64)
	f1, err := New([]float64{0.5, 0.25}, []float64{1, -0.5})
	if err != nil {
		t.Fatal(err)
	}
	f2, err := New([]float64{1, 0.5}, []float64{2, -1})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, f1.Filter(x), f2.Filter(x), 1e-15)
}

func TestFilterUnequalLengths(t *testing.T) {
	x := testutil.DeterministicGaussian(11, 128)

	// FIR only.
	fir, err := New([]float64{0.25, 0.5, 0.25}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if fir.Order() != 2 {
		t.Fatalf("order=%d, want 2", fir.Order())
	}
	testutil.RequireSliceNearlyEqual(t, fir.Filter(x), direct([]float64{0.25, 0.5, 0.25}, []float64{1}, x), 1e-15)

	// Pure gain.
	g, err := New([]float64{2}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.ProcessSample(3); got != 6 {
		t.Fatalf("gain filter = %v, want 6", got)
	}
}

func TestFilterMatchesBiquad(t *testing.T) {
	c := biquad.Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1}
	f, err := New([]float64{c.B0, c.B1, c.B2}, []float64{1, c.A1, c.A2})
	if err != nil {
		t.Fatal(err)
	}
	x := testutil.DeterministicGaussian(5, 300)
	want := biquad.NewChain([]biquad.Coefficients{c}).Filter(x)
	testutil.RequireSliceNearlyEqual(t, f.Filter(x), want, 1e-12)
}

func TestFilterReset(t *testing.T) {
	f, err := New([]float64{1}, []float64{1, -0.9})
	if err != nil {
		t.Fatal(err)
	}
	first := f.ProcessSample(1)
	f.ProcessSample(1)
	f.Reset()
	if got := f.ProcessSample(1); got != first {
		t.Fatalf("after reset got %v, want %v", got, first)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, []float64{1}); !errors.Is(err, ErrEmptyCoefficients) {
		t.Fatalf("empty b: err=%v", err)
	}
	if _, err := New([]float64{1}, nil); !errors.Is(err, ErrEmptyCoefficients) {
		t.Fatalf("empty a: err=%v", err)
	}
	if _, err := New([]float64{1}, []float64{0, 1}); !errors.Is(err, ErrZeroLeading) {
		t.Fatalf("zero a0: err=%v", err)
	}
	if _, err := New([]float64{1}, []float64{math.NaN()}); !errors.Is(err, ErrZeroLeading) {
		t.Fatalf("NaN a0: err=%v", err)
	}
}
