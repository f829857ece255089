package pass

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
)

type response int

const (
	lowpass response = iota
	highpass
	allpass
)

// validCutoff reports whether freq lies strictly inside (0, Nyquist).
func validCutoff(freq, sampleRate float64) bool {
	return sampleRate > 0 && freq > 0 && freq < sampleRate/2
}

// butterworth designs an order-n cascade: the conjugate pole pairs as RBJ
// second-order sections, highest Q last, then a one-pole section when n is
// odd.
func butterworth(kind response, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validCutoff(freq, sampleRate) {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, secondOrder(kind, freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 == 1 {
		sections = append(sections, firstOrder(kind, freq, sampleRate))
	}
	return sections
}

// butterworthQ is the quality factor of pole pair index of an order-n
// Butterworth prototype, 1/(2 sin((2i+1)pi/2n)).
func butterworthQ(order, index int) float64 {
	return 0.5 / math.Sin(math.Pi*float64(2*index+1)/float64(2*order))
}

// secondOrder is the RBJ cookbook low-, high- or all-pass at freq with
// quality q.
func secondOrder(kind response, freq, q, sampleRate float64) biquad.Coefficients {
	sin, cos := math.Sincos(2 * math.Pi * freq / sampleRate)
	alpha := sin / (2 * q)
	a0 := 1 + alpha
	c := biquad.Coefficients{
		A1: -2 * cos / a0,
		A2: (1 - alpha) / a0,
	}

	switch kind {
	case lowpass:
		c.B1 = (1 - cos) / a0
		c.B0 = c.B1 / 2
		c.B2 = c.B0
	case highpass:
		c.B1 = -(1 + cos) / a0
		c.B0 = -c.B1 / 2
		c.B2 = c.B0
	case allpass:
		c.B0, c.B1, c.B2 = c.A2, c.A1, 1
	}
	return c
}

// firstOrder is the bilinear-transformed one-pole low- or high-pass.
func firstOrder(kind response, freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	c := biquad.Coefficients{A1: (k - 1) / (k + 1)}
	if kind == lowpass {
		c.B0 = k / (k + 1)
		c.B1 = c.B0
	} else {
		c.B0 = 1 / (k + 1)
		c.B1 = -c.B0
	}
	return c
}
