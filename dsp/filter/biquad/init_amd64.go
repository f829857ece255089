//go:build amd64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-noise/dsp/filter/biquad/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-noise/dsp/filter/biquad/internal/arch/unrolled" // register 4x-unrolled backend
)
