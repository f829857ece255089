package noise

import "github.com/cwbudde/algo-noise/dsp/filter/iir"

// Third-order pink (1/f) approximation, accurate to about ±0.5 dB over the
// audio band at 44.1 kHz.
var (
	pinkB = []float64{0.049922035, -0.095993537, 0.050612699, -0.004408786}
	pinkA = []float64{1, -2.494956002, 2.017265875, -0.522189400}
)

// PinkFilter colors noise with a fixed recursive filter of -3 dB/octave.
type PinkFilter struct{}

var _ Shaper = PinkFilter{}

// Name implements Shaper.
func (PinkFilter) Name() string { return "pink" }

// Shape filters white from a zero initial state.
func (PinkFilter) Shape(white []float64, sampleRate float64) ([]float64, error) {
	if err := validateInput(white, sampleRate); err != nil {
		return nil, err
	}
	f, err := iir.New(pinkB, pinkA)
	if err != nil {
		return nil, err
	}
	return f.Filter(white), nil
}
