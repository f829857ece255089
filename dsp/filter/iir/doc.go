// Package iir implements general direct-form II transposed IIR filters of
// arbitrary order.
//
// Use the biquad package for cascades of second-order sections; iir is for
// published difference equations that are given as a single b/a pair.
package iir
