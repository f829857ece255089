// Package pass designs Butterworth and Linkwitz-Riley low-pass and
// high-pass cascades, and the matching Linkwitz-Riley allpass, as biquad
// coefficient sets.
//
// Designs return nil when the parameters cannot produce a stable filter
// (non-positive or unsupported order, cutoff outside (0, Nyquist)).
package pass
