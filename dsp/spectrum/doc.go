// Package spectrum provides frequency-domain helpers for spectral shaping.
//
// It maps bin indices to frequencies, interpolates sparse gain curves onto
// dense bin grids, and extracts magnitude or power from complex bins. The
// transforms themselves live in dsp/fft.
package spectrum
