package noise

import (
	"fmt"
	"math"
)

// Shaper turns white Gaussian noise into colored noise of the same length.
//
// Shapers are stateless: Shape never modifies white and may be called
// concurrently on independent buffers.
type Shaper interface {
	Name() string
	Shape(white []float64, sampleRate float64) ([]float64, error)
}

func validateInput(white []float64, sampleRate float64) error {
	if len(white) == 0 {
		return ErrInvalidLength
	}
	return validateSampleRate(sampleRate)
}

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// WhiteShaper passes white noise through unchanged.
type WhiteShaper struct{}

var _ Shaper = WhiteShaper{}

// Name implements Shaper.
func (WhiteShaper) Name() string { return "white" }

// Shape returns a copy of white.
func (WhiteShaper) Shape(white []float64, sampleRate float64) ([]float64, error) {
	if err := validateInput(white, sampleRate); err != nil {
		return nil, err
	}
	out := make([]float64, len(white))
	copy(out, white)
	return out, nil
}
