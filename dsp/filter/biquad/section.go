package biquad

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad/internal/arch/registry"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// A first-order section has B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	return c.A2 < 1 && c.A2 > -1 && c.A1 < 1+c.A2 && -c.A1 < 1+c.A2
}

// Section is one biquad with its delay state.
type Section struct {
	Coefficients

	state [2]float64
}

// NewSection returns a zero-state Section.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

var blockKernel = sync.OnceValue(func() registry.Entry {
	e, ok := registry.Kernels.Best(cpu.DetectFeatures())
	if !ok {
		panic("biquad: no block kernel registered")
	}
	return e
})

// KernelName reports which block kernel ProcessBlock dispatches to.
func KernelName() string {
	return blockKernel().Name
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.state[0]
	s.state[0] = s.B1*x - s.A1*y + s.state[1]
	s.state[1] = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place without allocating.
func (s *Section) ProcessBlock(buf []float64) {
	s.state = blockKernel().Kernel(
		[3]float64{s.B0, s.B1, s.B2},
		[2]float64{s.A1, s.A2},
		s.state, buf)
}

// Reset zeroes the delay state.
func (s *Section) Reset() {
	s.state = [2]float64{}
}

// State returns the delay state [d0, d1].
func (s *Section) State() [2]float64 {
	return s.state
}
