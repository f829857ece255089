//go:build amd64 && !purego

// Package unrolled registers a biquad kernel that handles four samples per
// loop iteration. The recursion stays serial; the gain comes from fewer
// bounds checks and loop branches on long noise buffers.
package unrolled

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Kernels.Add(registry.Entry{
		Name:     "unrolled4",
		Level:    cpu.SIMDAVX2,
		Priority: 20,
		Kernel:   filter,
	})
}

func filter(b [3]float64, a [2]float64, state [2]float64, buf []float64) [2]float64 {
	b0, b1, b2 := b[0], b[1], b[2]
	a1, a2 := a[0], a[1]
	d0, d1 := state[0], state[1]

	n := len(buf) &^ 3
	for i := 0; i < n; i += 4 {
		blk := buf[i : i+4 : i+4]
		for j, x := range blk {
			y := b0*x + d0
			d0 = b1*x - a1*y + d1
			d1 = b2*x - a2*y
			blk[j] = y
		}
	}
	for i := n; i < len(buf); i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}
	return [2]float64{d0, d1}
}
