package noise

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/spectrum"
)

// MaxGainDB is the largest per-bin gain a curve may reach. Extrapolated
// curves that climb past it are rejected rather than overflowing.
const MaxGainDB = 240.0

// InterpolateGains evaluates the profile's dB curve at every frequency in
// freqs. Points outside the profile range follow mode. DC is not treated
// specially here.
func InterpolateGains(p Profile, freqs []float64, mode spectrum.EdgeMode) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	db, err := spectrum.InterpolateLinear(p.Freqs, p.GainsDB, freqs, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	return db, nil
}

// GainCurve returns the linear amplitude multiplier 10^(dB/20) for each bin
// of a length-n real transform at sampleRate. The DC multiplier is forced
// to 0. A non-DC bin above MaxGainDB fails with ErrInvalidProfile.
func GainCurve(p Profile, n int, sampleRate float64, mode spectrum.EdgeMode) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	freqs, err := spectrum.BinFrequencies(n, sampleRate)
	if err != nil {
		return nil, err
	}
	gains, err := InterpolateGains(p, freqs, mode)
	if err != nil {
		return nil, err
	}
	if err := checkGainsDB(p.Name, gains[1:]); err != nil {
		return nil, err
	}
	for i, db := range gains {
		gains[i] = core.DBToLinear(db)
	}
	gains[0] = 0

	return gains, nil
}

// CheckGainRange verifies that the curve stays finite and within MaxGainDB
// on every non-DC bin of a length-n transform at sampleRate. The curve is
// piecewise linear, so only the outer bins and the interior breakpoints
// need evaluating.
func CheckGainRange(p Profile, n int, sampleRate float64, mode spectrum.EdgeMode) error {
	if n <= 0 {
		return ErrInvalidLength
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}
	if n < 2 {
		return nil
	}

	lo := sampleRate / float64(n)
	hi := float64(n/2) * sampleRate / float64(n)
	points := []float64{lo, hi}
	for _, f := range p.Freqs {
		if f > lo && f < hi {
			points = append(points, f)
		}
	}

	db, err := InterpolateGains(p, points, mode)
	if err != nil {
		return err
	}
	return checkGainsDB(p.Name, db)
}

func checkGainsDB(name string, db []float64) error {
	for _, g := range db {
		if math.IsNaN(g) || g > MaxGainDB {
			return fmt.Errorf("%w %q: gain %v dB exceeds %v dB", ErrInvalidProfile, name, g, MaxGainDB)
		}
	}
	return nil
}
