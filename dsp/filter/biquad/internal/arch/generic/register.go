// Package generic registers the portable biquad kernel, the fallback every
// build carries.
package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Kernels.Add(registry.Entry{
		Name:   "generic",
		Level:  cpu.SIMDNone,
		Kernel: filter,
	})
}

func filter(b [3]float64, a [2]float64, state [2]float64, buf []float64) [2]float64 {
	d0, d1 := state[0], state[1]
	for i, x := range buf {
		y := b[0]*x + d0
		d0 = b[1]*x - a[0]*y + d1
		d1 = b[2]*x - a[1]*y
		buf[i] = y
	}
	return [2]float64{d0, d1}
}
