// Package window generates analysis windows for spectral estimation.
package window

import (
	"errors"
	"math"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
)

var typeNames = [...]string{"rectangular", "hann", "hamming", "blackman"}

// String returns the lower-case window name.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// cosine-sum terms a0 - a1*cos(2πx) + a2*cos(4πx)
var cosineTerms = map[Type][3]float64{
	TypeRectangular: {1, 0, 0},
	TypeHann:        {0.5, 0.5, 0},
	TypeHamming:     {0.54, 0.46, 0},
	TypeBlackman:    {0.42, 0.5, 0.08},
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length. Unknown types
// and non-positive lengths return nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	terms, ok := cosineTerms[t]
	if length <= 0 || !ok {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)
	if cfg.periodic {
		den = float64(length)
	}
	for i := range out {
		x := float64(i) / den
		out[i] = terms[0] - terms[1]*math.Cos(2*math.Pi*x) + terms[2]*math.Cos(4*math.Pi*x)
	}

	return out
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// PowerGain returns sum(w[n]^2), the scale that makes a windowed
// periodogram an unbiased power density estimate.
func PowerGain(coeffs []float64) float64 {
	sumSquares := 0.0
	for _, c := range coeffs {
		sumSquares += c * c
	}
	return sumSquares
}
