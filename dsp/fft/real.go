package fft

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by transform plans.
var (
	ErrInvalidLength  = errors.New("fft: length must be > 0")
	ErrLengthMismatch = errors.New("fft: buffer length mismatch")
)

// complexTransform is a length-n complex DFT with a normalized inverse.
type complexTransform interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// RealPlan transforms real signals of a fixed length.
//
// A RealPlan owns scratch memory and is not safe for concurrent use.
type RealPlan struct {
	n    int
	tr   complexTransform
	work []complex128
}

// NewRealPlan creates a plan for real signals of length n.
func NewRealPlan(n int) (*RealPlan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	var (
		tr  complexTransform
		err error
	)
	switch {
	case n == 1:
		tr = identity{}
	case isPowerOf2(n) && n >= minPlanSize:
		tr, err = algofft.NewPlan64(n)
	default:
		tr, err = newBluestein(n)
	}
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan for length %d: %w", n, err)
	}

	return &RealPlan{
		n:    n,
		tr:   tr,
		work: make([]complex128, n),
	}, nil
}

// Len returns the time-domain length handled by the plan.
func (p *RealPlan) Len() int { return p.n }

// Bins returns the number of non-negative frequency bins, n/2+1.
func (p *RealPlan) Bins() int { return p.n/2 + 1 }

// Forward returns the n/2+1 complex bins of the real signal x.
func (p *RealPlan) Forward(x []float64) ([]complex128, error) {
	if len(x) != p.n {
		return nil, fmt.Errorf("%w: input %d, plan %d", ErrLengthMismatch, len(x), p.n)
	}
	for i, v := range x {
		p.work[i] = complex(v, 0)
	}
	if err := p.tr.Forward(p.work, p.work); err != nil {
		return nil, fmt.Errorf("fft: forward transform failed: %w", err)
	}

	out := make([]complex128, p.Bins())
	copy(out, p.work[:len(out)])
	// DC (and Nyquist for even n) of a real signal are real.
	out[0] = complex(real(out[0]), 0)
	if p.n%2 == 0 {
		out[len(out)-1] = complex(real(out[len(out)-1]), 0)
	}
	return out, nil
}

// Inverse rebuilds the Hermitian spectrum from bins and returns the real
// time-domain signal of length n.
//
// The imaginary parts of the DC and (for even n) Nyquist bins are ignored,
// which is what guarantees a real result.
func (p *RealPlan) Inverse(bins []complex128) ([]float64, error) {
	if len(bins) != p.Bins() {
		return nil, fmt.Errorf("%w: bins %d, want %d", ErrLengthMismatch, len(bins), p.Bins())
	}

	p.work[0] = complex(real(bins[0]), 0)
	half := p.n / 2
	for k := 1; k < len(bins); k++ {
		p.work[k] = bins[k]
	}
	if p.n%2 == 0 {
		p.work[half] = complex(real(bins[half]), 0)
	}
	for k := 1; k < (p.n+1)/2; k++ {
		p.work[p.n-k] = cmplx.Conj(bins[k])
	}

	if err := p.tr.Inverse(p.work, p.work); err != nil {
		return nil, fmt.Errorf("fft: inverse transform failed: %w", err)
	}

	out := make([]float64, p.n)
	for i := range out {
		out[i] = real(p.work[i])
	}
	return out, nil
}

// minPlanSize is the smallest length handed to algo-fft directly; shorter
// lengths go through the chirp-z path, which pads to at least this size.
const minPlanSize = 4

// identity is the length-1 DFT.
type identity struct{}

func (identity) Forward(dst, src []complex128) error { copy(dst, src); return nil }
func (identity) Inverse(dst, src []complex128) error { copy(dst, src); return nil }

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
