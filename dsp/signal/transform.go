package signal

import (
	"fmt"
	"math"
)

// Integrate returns the running sum of data.
func Integrate(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("integrate input must not be empty")
	}
	out := make([]float64, len(data))
	var acc float64
	for i, v := range data {
		acc += v
		out[i] = acc
	}
	return out, nil
}

// Detrend subtracts the least-squares line a + b*i from data and returns a new slice.
//
// The result has zero mean and no linear drift. A single sample detrends to 0.
func Detrend(data []float64) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("detrend input must not be empty")
	}
	out := make([]float64, n)
	if n == 1 {
		return out, nil
	}

	// Regress against centered indices so the slope and intercept decouple.
	nf := float64(n)
	center := (nf - 1) / 2
	var sumY, sumXY, sumXX float64
	for i, y := range data {
		x := float64(i) - center
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	mean := sumY / nf
	slope := sumXY / sumXX

	for i, y := range data {
		out[i] = y - mean - slope*(float64(i)-center)
	}
	return out, nil
}

// SanitizeNonFinite replaces NaN and ±Inf samples with 0 in place and
// returns how many were replaced.
func SanitizeNonFinite(data []float64) int {
	replaced := 0
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data[i] = 0
			replaced++
		}
	}
	return replaced
}
