package spectrum

import (
	"fmt"
	"sort"
)

// EdgeMode selects how [InterpolateLinear] treats query points outside the
// control-point range.
type EdgeMode int

const (
	// EdgeHold holds the nearest endpoint value constant. This is the default
	// and is what explicit endpoint clamping produces as well.
	EdgeHold EdgeMode = iota
	// EdgeExtrapolate continues the first and last segments linearly.
	EdgeExtrapolate
)

// String returns the mode name used on command lines.
func (m EdgeMode) String() string {
	switch m {
	case EdgeHold:
		return "hold"
	case EdgeExtrapolate:
		return "extrapolate"
	default:
		return fmt.Sprintf("EdgeMode(%d)", int(m))
	}
}

// ParseEdgeMode parses "hold" (alias "clamp") or "extrapolate".
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch s {
	case "hold", "clamp", "":
		return EdgeHold, nil
	case "extrapolate":
		return EdgeExtrapolate, nil
	default:
		return EdgeHold, fmt.Errorf("unknown edge mode %q", s)
	}
}

// InterpolateLinear performs piecewise-linear interpolation at queryX.
//
// x must be strictly increasing and have the same length as y. A single
// control point yields a constant curve in either mode.
func InterpolateLinear(x, y, queryX []float64, mode EdgeMode) ([]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("interpolate requires non-empty x and y")
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("interpolate x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return nil, fmt.Errorf("interpolate x must be strictly increasing at index %d", i)
		}
	}
	if mode != EdgeHold && mode != EdgeExtrapolate {
		return nil, fmt.Errorf("interpolate: unsupported edge mode %v", mode)
	}

	last := len(x) - 1
	out := make([]float64, len(queryX))
	for i, q := range queryX {
		switch {
		case last == 0:
			out[i] = y[0]
		case q <= x[0]:
			if mode == EdgeExtrapolate {
				out[i] = lerp(x[0], x[1], y[0], y[1], q)
			} else {
				out[i] = y[0]
			}
		case q >= x[last]:
			if mode == EdgeExtrapolate {
				out[i] = lerp(x[last-1], x[last], y[last-1], y[last], q)
			} else {
				out[i] = y[last]
			}
		default:
			j := sort.SearchFloat64s(x, q)
			out[i] = lerp(x[j-1], x[j], y[j-1], y[j], q)
		}
	}
	return out, nil
}

func lerp(x0, x1, y0, y1, q float64) float64 {
	t := (q - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}
