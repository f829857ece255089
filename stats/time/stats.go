// Package time computes time-domain level statistics of sample buffers.
package time

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Stats holds time-domain level statistics for a buffer.
//
// Non-finite samples are skipped and counted in NonFinite; all other
// fields describe the finite samples only.
//
//nolint:revive
type Stats struct {
	Length         int
	NonFinite      int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Peak           float64 // max |x|
	PeakPos        int
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Clipped        int // samples with |x| >= 1
	Variance       float64
	Skewness       float64
	Kurtosis       float64 // excess
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for the higher-order moments.
func Calculate(signal []float64) Stats {
	s := emptyStats()
	s.Length = len(signal)

	var (
		n        int
		mean, m2 float64
		m3, m4   float64
		sumSq    float64
		peak     float64
		peakPos  int
		clipped  int
	)

	for i, x := range signal {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			s.NonFinite++
			continue
		}

		n++
		ni := float64(n)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(n-1)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*float64(n-2) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		a := math.Abs(x)
		if a > peak {
			peak = a
			peakPos = i
		}
		if a >= 1 {
			clipped++
		}
	}

	if n == 0 {
		return s
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	s.DC = mean
	s.RMS = rms
	s.RMS_dB = core.LinearToDB(rms)
	s.Peak = peak
	s.PeakPos = peakPos
	s.Peak_dB = core.LinearToDB(peak)
	s.Clipped = clipped

	if rms > 0 {
		s.CrestFactor = peak / rms
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	} else {
		s.CrestFactor_dB = 0
	}

	s.Variance = m2 / nf
	if s.Variance > 0 {
		s.Skewness = (m3 / nf) / (s.Variance * math.Sqrt(s.Variance))
		s.Kurtosis = (m4/nf)/(s.Variance*s.Variance) - 3
	}

	return s
}

// RMS returns the root-mean-square of the signal.
//
// Samples are divided by the peak before squaring, so any finite input
// gives a finite, non-zero result unless the signal is silent.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := Peak(signal)
	if peak == 0 || math.IsInf(peak, 0) {
		// Silence, or input that is not finite: scaling cannot help.
		peak = 1
	}

	var sumSq float64
	for _, x := range signal {
		r := x / peak
		sumSq += r * r
	}

	return peak * math.Sqrt(sumSq/float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Kahan summation.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of the signal.
func Moments(signal []float64) (mean, variance, skewness, kurtosis float64) {
	s := Calculate(signal)
	return s.DC, s.Variance, s.Skewness, s.Kurtosis
}
