package loudness

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
)

// BS.1770 K-weighting prototype, re-derived for any sample rate via the
// bilinear transform. At 48 kHz these reproduce the published coefficients.
const (
	shelfFreq = 1681.974450955533
	shelfGain = 3.999843853973347 // dB
	shelfQ    = 0.7071752369554196
	shelfVb   = 0.4996667741545416 // band gain exponent

	rlbFreq = 38.13547087602444
	rlbQ    = 0.5003270373238773
)

// kWeighting returns the pre-filter (high shelf) and RLB high-pass stages.
func kWeighting(sampleRate float64) (shelf, rlb biquad.Coefficients) {
	k := math.Tan(math.Pi * shelfFreq / sampleRate)
	vh := math.Pow(10, shelfGain/20)
	vb := math.Pow(vh, shelfVb)
	a0 := 1 + k/shelfQ + k*k
	shelf = biquad.Coefficients{
		B0: (vh + vb*k/shelfQ + k*k) / a0,
		B1: 2 * (k*k - vh) / a0,
		B2: (vh - vb*k/shelfQ + k*k) / a0,
		A1: 2 * (k*k - 1) / a0,
		A2: (1 - k/shelfQ + k*k) / a0,
	}

	k = math.Tan(math.Pi * rlbFreq / sampleRate)
	a0 = 1 + k/rlbQ + k*k
	rlb = biquad.Coefficients{
		B0: 1,
		B1: -2,
		B2: 1,
		A1: 2 * (k*k - 1) / a0,
		A2: (1 - k/rlbQ + k*k) / a0,
	}

	return shelf, rlb
}
