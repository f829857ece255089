// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Sections are cascaded via
// [Chain] for the Butterworth high-pass, low-pass and band-pass filters used
// by the noise shapers. Block processing dispatches to the fastest kernel the
// running CPU supports.
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
