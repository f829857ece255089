package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-noise/dsp/fft"
	"github.com/cwbudde/algo-noise/dsp/window"
)

// ErrShortInput is returned when a signal is shorter than one analysis segment.
var ErrShortInput = errors.New("spectrum: input shorter than segment")

// Welch estimates the one-sided power spectral density of x (units²/Hz)
// by averaging Hann-windowed periodograms of segmentLen samples with 50%
// overlap. It returns the bin frequencies alongside the density.
func Welch(x []float64, segmentLen int, sampleRate float64) (freqs, psd []float64, err error) {
	freqs, err = BinFrequencies(segmentLen, sampleRate)
	if err != nil {
		return nil, nil, err
	}
	if len(x) < segmentLen {
		return nil, nil, fmt.Errorf("%w: %d < %d", ErrShortInput, len(x), segmentLen)
	}

	plan, err := fft.NewRealPlan(segmentLen)
	if err != nil {
		return nil, nil, err
	}

	win := window.Generate(window.TypeHann, segmentLen, window.WithPeriodic())
	hop := max(segmentLen/2, 1)
	seg := make([]float64, segmentLen)
	psd = make([]float64, len(freqs))

	segments := 0
	for start := 0; start+segmentLen <= len(x); start += hop {
		vecmath.MulBlock(seg, x[start:start+segmentLen], win)

		bins, err := plan.Forward(seg)
		if err != nil {
			return nil, nil, err
		}
		vecmath.AddBlockInPlace(psd, Power(bins))
		segments++
	}

	scale := 1 / (float64(segments) * sampleRate * window.PowerGain(win))
	vecmath.ScaleBlock(psd, psd, scale)

	// Fold negative frequencies into the one-sided estimate.
	last := len(psd) - 1
	if segmentLen%2 != 0 {
		last++
	}
	for k := 1; k < last; k++ {
		psd[k] *= 2
	}

	return freqs, psd, nil
}
