// Package frequency computes descriptors of one-sided power spectra, such
// as those returned by spectrum.Welch.
//
// All functions take a power (or power density) slice and the matching bin
// frequencies in Hz. Bin 0 is treated as DC.
package frequency

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

var errMismatchedLength = errors.New("frequency: power and freqs must have same length")

// Stats holds spectral shape descriptors of a power spectrum.
type Stats struct {
	BinCount int
	Centroid float64 // power-weighted mean frequency (Hz)
	Spread   float64 // power-weighted standard deviation around Centroid (Hz)
	Flatness float64 // Wiener entropy, 0..1
	Rolloff  float64 // frequency below which 85% of the power lies (Hz)
}

// Band is the average level of one octave band.
type Band struct {
	Low, High float64 // edges in Hz
	Level     float64 // mean power in dB (10*log10)
}

// Calculate computes all descriptors in one call.
func Calculate(power, freqs []float64) (Stats, error) {
	if len(power) != len(freqs) {
		return Stats{}, errMismatchedLength
	}

	s := Stats{BinCount: len(power)}
	if len(power) < 2 {
		return s, nil
	}

	total := sum(power)
	s.Centroid = centroid(power, freqs, total)
	s.Spread = spread(power, freqs, s.Centroid, total)
	s.Flatness = Flatness(power)
	s.Rolloff = rolloff(power, freqs, 0.85, total)

	return s, nil
}

func sum(v []float64) float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}

// Centroid returns the power-weighted mean frequency in Hz.
func Centroid(power, freqs []float64) float64 {
	if len(power) != len(freqs) || len(power) < 2 {
		return 0
	}
	return centroid(power, freqs, sum(power))
}

func centroid(power, freqs []float64, total float64) float64 {
	if total == 0 {
		return 0
	}
	weighted := 0.0
	for i, p := range power {
		weighted += freqs[i] * p
	}
	return weighted / total
}

func spread(power, freqs []float64, cent, total float64) float64 {
	if total == 0 {
		return 0
	}
	weighted := 0.0
	for i, p := range power {
		d := freqs[i] - cent
		weighted += d * d * p
	}
	return math.Sqrt(weighted / total)
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1:
// the geometric mean of the bins divided by their arithmetic mean.
//
// DC bin (index 0) is excluded. If any considered bin is zero, 0 is returned.
func Flatness(power []float64) float64 {
	n := len(power)
	if n < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, p := range power[1:] {
		if p <= 0 {
			return 0
		}
		sumLin += p
		sumLog += math.Log(p)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

// Rolloff returns the frequency below which the given fraction (0..1) of
// the total power lies.
func Rolloff(power, freqs []float64, fraction float64) float64 {
	if len(power) != len(freqs) || len(power) < 2 {
		return 0
	}
	return rolloff(power, freqs, fraction, sum(power))
}

func rolloff(power, freqs []float64, fraction, total float64) float64 {
	if total == 0 {
		return 0
	}
	threshold := fraction * total
	cum := 0.0
	for i, p := range power {
		cum += p
		if cum >= threshold {
			return freqs[i]
		}
	}
	return freqs[len(freqs)-1]
}

// OctaveBands averages power over consecutive octaves starting at lowHz and
// ending at the last octave whose upper edge does not exceed highHz. Empty
// octaves (no bins) are skipped.
func OctaveBands(power, freqs []float64, lowHz, highHz float64) ([]Band, error) {
	if len(power) != len(freqs) {
		return nil, errMismatchedLength
	}
	if lowHz <= 0 || highHz <= lowHz {
		return nil, errors.New("frequency: invalid octave range")
	}

	var bands []Band
	for lo := lowHz; lo*2 <= highHz*(1+1e-9); lo *= 2 {
		hi := lo * 2
		total, count := 0.0, 0
		for i, f := range freqs {
			if f >= lo && f < hi {
				total += power[i]
				count++
			}
		}
		if count == 0 {
			continue
		}
		mean := total / float64(count)
		bands = append(bands, Band{Low: lo, High: hi, Level: core.PowerToDB(mean)})
	}

	return bands, nil
}

// OctaveSlope fits a straight line through the octave-band levels between
// lowHz and highHz and returns its slope in dB per octave. White noise gives
// about 0, pink about -3 and brown about -6.
func OctaveSlope(power, freqs []float64, lowHz, highHz float64) (float64, error) {
	bands, err := OctaveBands(power, freqs, lowHz, highHz)
	if err != nil {
		return 0, err
	}

	var xs, ys []float64
	for _, b := range bands {
		if math.IsInf(b.Level, 0) {
			continue
		}
		xs = append(xs, math.Log2(math.Sqrt(b.Low*b.High)))
		ys = append(ys, b.Level)
	}
	if len(xs) < 2 {
		return 0, errors.New("frequency: need at least two non-empty octaves")
	}

	mx, my := 0.0, 0.0
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	num, den := 0.0, 0.0
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}

	return num / den, nil
}
