package noise

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
	"github.com/cwbudde/algo-noise/dsp/filter/design/pass"
	"github.com/cwbudde/algo-noise/dsp/signal"
)

// BrownHighpassHz is the corner of the first-order high-pass that removes
// the sub-sonic energy left after integration.
const BrownHighpassHz = 20.0

// BrownIntegrator builds brown noise by cumulative sum, linear detrend and
// a first-order Butterworth high-pass at BrownHighpassHz.
type BrownIntegrator struct{}

var _ Shaper = BrownIntegrator{}

// Name implements Shaper.
func (BrownIntegrator) Name() string { return "brown" }

// Shape implements Shaper. Sample rates at or below 40 Hz cannot host the
// high-pass and are rejected.
func (BrownIntegrator) Shape(white []float64, sampleRate float64) ([]float64, error) {
	if err := validateInput(white, sampleRate); err != nil {
		return nil, err
	}
	hp := pass.ButterworthHP(BrownHighpassHz, 1, sampleRate)
	if hp == nil {
		return nil, fmt.Errorf("%w: %v Hz cannot host a %v Hz high-pass", ErrInvalidSampleRate, sampleRate, BrownHighpassHz)
	}

	walk, err := signal.Integrate(white)
	if err != nil {
		return nil, err
	}
	walk, err = signal.Detrend(walk)
	if err != nil {
		return nil, err
	}

	return biquad.NewChain(hp).Filter(walk), nil
}
