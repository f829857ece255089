// Package pcm converts floating-point samples to fixed-point PCM.
package pcm

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Int16 full-scale values.
const (
	MaxInt16 = math.MaxInt16
	MinInt16 = math.MinInt16
)

// ErrLengthMismatch is returned when dst and src lengths differ.
var ErrLengthMismatch = errors.New("pcm: dst and src length mismatch")

// Int16 maps s to clamp(round(s*32767), -32768, 32767).
//
// Inputs at or below -1 saturate to -32768 so that the full negative code
// is reachable; NaN encodes as 0.
func Int16(s float64) int16 {
	switch {
	case math.IsNaN(s):
		return 0
	case s <= -1:
		return MinInt16
	}
	return int16(core.Clamp(math.Round(s*MaxInt16), MinInt16, MaxInt16))
}

// EncodeInt16 returns the 16-bit encoding of buf.
func EncodeInt16(buf []float64) []int16 {
	out := make([]int16, len(buf))
	_ = EncodeInt16Into(out, buf)
	return out
}

// EncodeInt16Into encodes src into dst without allocating.
func EncodeInt16Into(dst []int16, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}
	for i, s := range src {
		dst[i] = Int16(s)
	}
	return nil
}

// ToInt converts int16 samples to the int slice layout used by audio
// buffer libraries.
func ToInt(samples []int16) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		out[i] = int(v)
	}
	return out
}

// SizeBytes returns the byte size of n mono 16-bit samples.
func SizeBytes(n int) int64 {
	return int64(n) * 2
}
