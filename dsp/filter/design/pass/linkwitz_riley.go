package pass

import "github.com/cwbudde/algo-noise/dsp/filter/biquad"

// LinkwitzRileyLP designs an order-n Linkwitz-Riley low-pass: two cascaded
// order-n/2 Butterworth low-passes, -6.02 dB at freq.
//
// Only orders divisible by 4 (LR4, LR8, ...) are supported, since those are
// the orders whose low- and high-pass outputs are in phase and sum to
// [LinkwitzRileyAllpass] without a polarity flip. Invalid parameters
// return nil.
func LinkwitzRileyLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return linkwitzRiley(lowpass, freq, order, sampleRate)
}

// LinkwitzRileyHP is the high-pass counterpart of LinkwitzRileyLP.
func LinkwitzRileyHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return linkwitzRiley(highpass, freq, order, sampleRate)
}

// LinkwitzRileyAllpass returns the allpass equal to the sum of
// LinkwitzRileyLP and LinkwitzRileyHP at the same freq and order.
//
// In a crossover tree, bands that do not pass through a split are run
// through this allpass so that all bands stay phase aligned and their sum
// has a flat magnitude.
func LinkwitzRileyAllpass(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if !validLinkwitzRiley(freq, order, sampleRate) {
		return nil
	}
	half := order / 2
	sections := make([]biquad.Coefficients, 0, half/2)
	for i := half/2 - 1; i >= 0; i-- {
		sections = append(sections, secondOrder(allpass, freq, butterworthQ(half, i), sampleRate))
	}
	return sections
}

func linkwitzRiley(kind response, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if !validLinkwitzRiley(freq, order, sampleRate) {
		return nil
	}
	bw := butterworth(kind, freq, order/2, sampleRate)
	return append(bw, bw...)
}

func validLinkwitzRiley(freq float64, order int, sampleRate float64) bool {
	return order > 0 && order%4 == 0 && validCutoff(freq, sampleRate)
}
