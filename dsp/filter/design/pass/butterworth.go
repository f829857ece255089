package pass

import "github.com/cwbudde/algo-noise/dsp/filter/biquad"

// ButterworthLP designs an order-n low-pass cascade with -3.01 dB at freq.
// Odd orders end in a first-order section (B2 = A2 = 0). It returns nil
// unless order >= 1 and 0 < freq < sampleRate/2.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(lowpass, freq, order, sampleRate)
}

// ButterworthHP is the high-pass counterpart of ButterworthLP.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(highpass, freq, order, sampleRate)
}
