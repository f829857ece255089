package fft

import (
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// bluestein computes a length-n DFT as a circular convolution of size m,
// where m is the smallest power of two >= 2n-1:
//
//	X[k] = w[k] * sum_j (x[j]*w[j]) * conj(w[k-j]),  w[j] = exp(-iπ j²/n)
type bluestein struct {
	n      int
	plan   *algofft.Plan[complex128]
	chirp  []complex128
	kernel []complex128 // FFT of the conjugate chirp, wrapped to length m
	buf    []complex128
}

func newBluestein(n int) (*bluestein, error) {
	m := nextPowerOf2(2*n - 1)
	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, err
	}

	b := &bluestein{
		n:      n,
		plan:   plan,
		chirp:  make([]complex128, n),
		kernel: make([]complex128, m),
		buf:    make([]complex128, m),
	}

	// j² mod 2n keeps the phase argument small for long transforms.
	mod := uint64(2 * n)
	for j := range n {
		jj := uint64(j) * uint64(j) % mod
		angle := -math.Pi * float64(jj) / float64(n)
		b.chirp[j] = cmplx.Rect(1, angle)
	}

	b.kernel[0] = cmplx.Conj(b.chirp[0])
	for j := 1; j < n; j++ {
		c := cmplx.Conj(b.chirp[j])
		b.kernel[j] = c
		b.kernel[m-j] = c
	}
	if err := plan.Forward(b.kernel, b.kernel); err != nil {
		return nil, err
	}

	return b, nil
}

// Forward computes the unnormalized DFT of src into dst. dst may alias src.
func (b *bluestein) Forward(dst, src []complex128) error {
	for i := range b.buf {
		b.buf[i] = 0
	}
	for j := 0; j < b.n; j++ {
		b.buf[j] = src[j] * b.chirp[j]
	}

	if err := b.plan.Forward(b.buf, b.buf); err != nil {
		return err
	}
	for i := range b.buf {
		b.buf[i] *= b.kernel[i]
	}
	if err := b.plan.Inverse(b.buf, b.buf); err != nil {
		return err
	}

	for k := 0; k < b.n; k++ {
		dst[k] = b.buf[k] * b.chirp[k]
	}
	return nil
}

// Inverse computes the 1/n-normalized inverse DFT via conj(DFT(conj(X)))/n.
func (b *bluestein) Inverse(dst, src []complex128) error {
	for k := 0; k < b.n; k++ {
		dst[k] = cmplx.Conj(src[k])
	}
	if err := b.Forward(dst, dst); err != nil {
		return err
	}
	scale := 1 / float64(b.n)
	for k := 0; k < b.n; k++ {
		c := cmplx.Conj(dst[k])
		dst[k] = complex(real(c)*scale, imag(c)*scale)
	}
	return nil
}
