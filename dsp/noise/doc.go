// Package noise synthesizes colored noise.
//
// White Gaussian noise from a [signal.Source] is passed through a [Shaper],
// normalized by a [loudness.Normalizer] and encoded to 16-bit PCM. Shapers
// come in four strategies that are deliberately kept apart because they are
// not numerically equivalent:
//
//   - [SpectralShaper] applies a piecewise-linear dB gain curve per FFT bin.
//   - [PinkFilter] runs a fixed recursive filter.
//   - [BrownIntegrator] integrates, detrends and high-passes at 20 Hz.
//   - [MultibandLayer] sums log-spaced band-pass layers of another shaper.
//
// Named gain curves live in an immutable [Catalog] passed to [Resolve] or
// the [Synthesizer]; nothing in the package holds global mutable state.
package noise
