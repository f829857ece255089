package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch is returned when per-bin data does not match the bins.
var ErrLengthMismatch = errors.New("spectrum: length mismatch")

// Split copies the real and imaginary parts of bins into re and im, which
// must be at least len(bins) long.
func Split(bins []complex128, re, im []float64) {
	for k, c := range bins {
		re[k], im[k] = real(c), imag(c)
	}
}

// Join is the inverse of Split.
func Join(bins []complex128, re, im []float64) {
	for k := range bins {
		bins[k] = complex(re[k], im[k])
	}
}

// Power returns |X[k]|^2 for every bin, or nil for no bins.
func Power(bins []complex128) []float64 {
	n := len(bins)
	if n == 0 {
		return nil
	}
	scratch := make([]float64, 2*n)
	re, im := scratch[:n], scratch[n:]
	Split(bins, re, im)

	out := make([]float64, n)
	vecmath.Power(out, re, im)
	return out
}

// ScaleBins multiplies bin k by the real gain gains[k] in place, leaving
// every bin's phase unchanged.
func ScaleBins(bins []complex128, gains []float64) error {
	if len(gains) != len(bins) {
		return fmt.Errorf("%w: %d gains for %d bins", ErrLengthMismatch, len(gains), len(bins))
	}
	n := len(bins)
	scratch := make([]float64, 2*n)
	re, im := scratch[:n], scratch[n:]

	Split(bins, re, im)
	vecmath.MulBlockInPlace(re, gains)
	vecmath.MulBlockInPlace(im, gains)
	Join(bins, re, im)
	return nil
}

// BinFrequencies returns k*sampleRate/n for the n/2+1 non-negative bins of
// a length-n real transform.
func BinFrequencies(n int, sampleRate float64) ([]float64, error) {
	switch {
	case n <= 0:
		return nil, fmt.Errorf("spectrum: transform length must be > 0, got %d", n)
	case !(sampleRate > 0):
		return nil, fmt.Errorf("spectrum: sample rate must be > 0, got %v", sampleRate)
	}
	freqs := make([]float64, n/2+1)
	for k := range freqs {
		freqs[k] = float64(k) * sampleRate / float64(n)
	}
	return freqs, nil
}
