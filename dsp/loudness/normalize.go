package loudness

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/signal"
	timestats "github.com/cwbudde/algo-noise/stats/time"
)

// DefaultTargetRMS is a comfortable listening level on a [-1, 1] scale.
const DefaultTargetRMS = 0.15

// Report describes what a normalization pass did to a buffer.
type Report struct {
	NonFinite   int     // samples replaced by 0
	InputRMS    float64 // RMS after sanitizing, before scaling
	Gain        float64 // total linear gain applied
	PeakLimited bool    // the 1/peak stage fired
}

// Normalizer scales buffers to a target RMS and limits the peak to 1.
type Normalizer struct {
	targetRMS float64
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithTargetRMS overrides the target RMS level. Non-positive or non-finite
// values are ignored.
func WithTargetRMS(rms float64) Option {
	return func(n *Normalizer) {
		if rms > 0 && !math.IsInf(rms, 0) && !math.IsNaN(rms) {
			n.targetRMS = rms
		}
	}
}

// NewNormalizer returns a Normalizer targeting DefaultTargetRMS unless
// overridden.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{targetRMS: DefaultTargetRMS}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// TargetRMS returns the configured target level.
func (n *Normalizer) TargetRMS() float64 {
	return n.targetRMS
}

// Normalize returns a normalized copy of buf.
func (n *Normalizer) Normalize(buf []float64) []float64 {
	out := make([]float64, len(buf))
	copy(out, buf)
	n.NormalizeInPlace(out)
	return out
}

// NormalizeInPlace sanitizes non-finite samples to 0, scales buf to the
// target RMS and, if the scaled peak exceeds 1, rescales by 1/peak.
// Silent buffers are left unchanged.
func (n *Normalizer) NormalizeInPlace(buf []float64) Report {
	rep := Report{Gain: 1}
	rep.NonFinite = signal.SanitizeNonFinite(buf)

	rep.InputRMS = timestats.RMS(buf)
	if rep.InputRMS == 0 {
		return rep
	}

	rep.Gain = n.targetRMS / rep.InputRMS
	if math.IsInf(rep.Gain, 0) {
		// Subnormal input: divide by the peak first so neither step
		// overflows. The reported gain may still be +Inf.
		peak := timestats.Peak(buf)
		for i := range buf {
			buf[i] /= peak
		}
		rep.Gain = n.targetRMS / timestats.RMS(buf)
		vecmath.ScaleBlock(buf, buf, rep.Gain)
		rep.Gain /= peak
	} else {
		vecmath.ScaleBlock(buf, buf, rep.Gain)
	}

	if peak := timestats.Peak(buf); peak > 1 {
		vecmath.ScaleBlock(buf, buf, 1/peak)
		clampUnit(buf)
		rep.Gain /= peak
		rep.PeakLimited = true
	}

	return rep
}

// NormalizePeak sanitizes non-finite samples and scales buf in place so its
// peak absolute value equals 1. Silent buffers are left unchanged. It
// returns the applied gain.
func NormalizePeak(buf []float64) float64 {
	signal.SanitizeNonFinite(buf)

	peak := timestats.Peak(buf)
	if peak == 0 {
		return 1
	}

	gain := 1 / peak
	vecmath.ScaleBlock(buf, buf, gain)
	clampUnit(buf)
	return gain
}

// clampUnit absorbs the one-ulp overshoot that x*(1/peak) can produce.
func clampUnit(buf []float64) {
	for i, v := range buf {
		buf[i] = core.Clamp(v, -1, 1)
	}
}
