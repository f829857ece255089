// Package fft provides a real-signal transform pair on top of algo-fft.
//
// [RealPlan.Forward] maps N real samples to the N/2+1 non-negative frequency
// bins and [RealPlan.Inverse] maps such a half spectrum back to N real
// samples. Power-of-two lengths use an algo-fft plan directly; any other
// length goes through Bluestein's chirp-z algorithm on a power-of-two plan,
// so buffers of arbitrary length are supported without padding.
package fft
