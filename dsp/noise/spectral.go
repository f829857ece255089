package noise

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/fft"
	"github.com/cwbudde/algo-noise/dsp/spectrum"
)

// SpectralShaper colors noise by scaling each FFT bin with a gain curve.
//
// The whole buffer is transformed at once; any length is supported.
type SpectralShaper struct {
	profile Profile
	edge    spectrum.EdgeMode
}

var _ Shaper = (*SpectralShaper)(nil)

// SpectralOption configures a SpectralShaper.
type SpectralOption func(*SpectralShaper)

// WithEdgeMode selects how the curve behaves outside its frequency range.
// The default is spectrum.EdgeHold. Extrapolated curves must still stay
// within MaxGainDB up to Nyquist.
func WithEdgeMode(mode spectrum.EdgeMode) SpectralOption {
	return func(s *SpectralShaper) {
		s.edge = mode
	}
}

// NewSpectralShaper validates p and returns a shaper for it.
func NewSpectralShaper(p Profile, opts ...SpectralOption) (*SpectralShaper, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &SpectralShaper{profile: p.clone(), edge: spectrum.EdgeHold}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.edge != spectrum.EdgeHold && s.edge != spectrum.EdgeExtrapolate {
		return nil, fmt.Errorf("%w: edge mode %v", ErrInvalidProfile, s.edge)
	}
	return s, nil
}

// Name implements Shaper.
func (s *SpectralShaper) Name() string { return "spectral:" + s.profile.Name }

// Profile returns a copy of the gain curve.
func (s *SpectralShaper) Profile() Profile { return s.profile.clone() }

// EdgeMode returns the configured edge behavior.
func (s *SpectralShaper) EdgeMode() spectrum.EdgeMode { return s.edge }

// CheckRange reports whether Shape would accept an n-sample buffer at
// sampleRate, without allocating it.
func (s *SpectralShaper) CheckRange(n int, sampleRate float64) error {
	return CheckGainRange(s.profile, n, sampleRate, s.edge)
}

// Shape transforms white, multiplies every bin by its linear gain (DC by 0)
// and transforms back. Phase is preserved.
func (s *SpectralShaper) Shape(white []float64, sampleRate float64) ([]float64, error) {
	if err := validateInput(white, sampleRate); err != nil {
		return nil, err
	}

	gains, err := GainCurve(s.profile, len(white), sampleRate, s.edge)
	if err != nil {
		return nil, err
	}

	plan, err := fft.NewRealPlan(len(white))
	if err != nil {
		return nil, err
	}
	bins, err := plan.Forward(white)
	if err != nil {
		return nil, err
	}

	if err := spectrum.ScaleBins(bins, gains); err != nil {
		return nil, err
	}

	return plan.Inverse(bins)
}
