package noise

import (
	"errors"
	"time"

	"github.com/cwbudde/algo-noise/dsp/loudness"
	"github.com/cwbudde/algo-noise/dsp/pcm"
	"github.com/cwbudde/algo-noise/dsp/signal"
)

// Result is the output of one synthesis run.
type Result struct {
	Samples       []float64 // normalized, in [-1, 1]
	PCM           []int16
	SampleRate    float64
	Shaper        string
	Normalization loudness.Report
}

// Duration returns the playback length of the result.
func (r Result) Duration() time.Duration {
	if r.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(r.Samples)) / r.SampleRate * float64(time.Second))
}

// Synthesizer runs Random Source -> Shaper -> Normalizer -> Encoder.
//
// A Synthesizer holds no per-run state; its Source decides whether repeated
// runs produce identical noise.
type Synthesizer struct {
	source     signal.Source
	catalog    *Catalog
	normalizer *loudness.Normalizer
}

// SynthOption configures a Synthesizer.
type SynthOption func(*Synthesizer)

// WithCatalog sets the profile catalog. The default is DefaultCatalog().
func WithCatalog(c *Catalog) SynthOption {
	return func(s *Synthesizer) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithNormalizer replaces the default RMS normalizer.
func WithNormalizer(n *loudness.Normalizer) SynthOption {
	return func(s *Synthesizer) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// NewSynthesizer returns a Synthesizer drawing white noise from src.
func NewSynthesizer(src signal.Source, opts ...SynthOption) (*Synthesizer, error) {
	if src == nil {
		return nil, errors.New("noise: nil random source")
	}
	s := &Synthesizer{source: src}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.normalizer == nil {
		s.normalizer = loudness.NewNormalizer()
	}
	return s, nil
}

// Catalog returns the profile catalog in use.
func (s *Synthesizer) Catalog() *Catalog {
	return s.catalog
}

// Generate validates req and runs the full chain. Configuration errors are
// returned before any sample buffer is allocated.
func (s *Synthesizer) Generate(req Request) (Result, error) {
	plan, err := Resolve(req, s.catalog)
	if err != nil {
		return Result{}, err
	}

	white, err := s.source.Normal(req.Samples)
	if err != nil {
		return Result{}, err
	}
	shaped, err := plan.Shaper.Shape(white, req.SampleRate)
	if err != nil {
		return Result{}, err
	}

	var rep loudness.Report
	switch plan.Normalization {
	case NormalizePeak:
		rep.NonFinite = signal.SanitizeNonFinite(shaped)
		rep.Gain = loudness.NormalizePeak(shaped)
	default:
		rep = s.normalizer.NormalizeInPlace(shaped)
	}

	return Result{
		Samples:       shaped,
		PCM:           pcm.EncodeInt16(shaped),
		SampleRate:    req.SampleRate,
		Shaper:        plan.Shaper.Name(),
		Normalization: rep,
	}, nil
}
