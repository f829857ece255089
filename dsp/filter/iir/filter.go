package iir

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyCoefficients is returned when either coefficient slice is empty.
	ErrEmptyCoefficients = errors.New("iir: empty coefficients")
	// ErrZeroLeading is returned when a[0] is zero or not finite.
	ErrZeroLeading = errors.New("iir: leading denominator coefficient must be non-zero")
)

// Filter is a direct-form II transposed IIR filter:
//
//	y[n] = b0*x[n] + z0
//	z[k] = b[k+1]*x[n] - a[k+1]*y[n] + z[k+1]
//
// Coefficients are normalized so that a[0] == 1.
type Filter struct {
	b []float64
	a []float64
	z []float64
}

// New builds a Filter from numerator b and denominator a. The shorter slice
// is zero-padded to the longer one.
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if a[0] == 0 || math.IsNaN(a[0]) || math.IsInf(a[0], 0) {
		return nil, fmt.Errorf("%w: a[0]=%v", ErrZeroLeading, a[0])
	}

	n := max(len(b), len(a))
	f := &Filter{
		b: make([]float64, n),
		a: make([]float64, n),
		z: make([]float64, n-1),
	}
	inv := 1 / a[0]
	for i, v := range b {
		f.b[i] = v * inv
	}
	for i, v := range a {
		f.a[i] = v * inv
	}
	return f, nil
}

// Order returns the filter order (number of delay elements).
func (f *Filter) Order() int {
	return len(f.z)
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b[0]*x + f.zero()
	last := len(f.z) - 1
	for k := 0; k < last; k++ {
		f.z[k] = f.b[k+1]*x - f.a[k+1]*y + f.z[k+1]
	}
	if last >= 0 {
		f.z[last] = f.b[last+1]*x - f.a[last+1]*y
	}
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Filter resets the state and returns a filtered copy of src.
func (f *Filter) Filter(src []float64) []float64 {
	f.Reset()
	out := make([]float64, len(src))
	copy(out, src)
	f.ProcessBlock(out)
	return out
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	clear(f.z)
}

func (f *Filter) zero() float64 {
	if len(f.z) == 0 {
		return 0
	}
	return f.z[0]
}
