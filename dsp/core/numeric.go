package core

import "math"

// Clamp limits value to [lo, hi]. NaN is returned unchanged.
func Clamp(value, lo, hi float64) float64 {
	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	}
	return value
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToLinear converts a level in dB to an amplitude ratio, 10^(db/20).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB is the inverse of DBToLinear: -Inf at zero, NaN below.
func LinearToDB(amplitude float64) float64 {
	return PowerToDB(amplitude) * 2
}

// PowerToDB converts a power ratio to dB, 10*log10(p): -Inf at zero, NaN below.
func PowerToDB(p float64) float64 {
	switch {
	case p < 0 || math.IsNaN(p):
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	}
	return 10 * math.Log10(p)
}

// DBToPower is the inverse of PowerToDB.
func DBToPower(db float64) float64 {
	return math.Pow(10, db/10)
}
