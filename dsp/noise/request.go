package noise

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/spectrum"
)

// Type names a built-in noise construction.
type Type string

// Built-in noise types.
const (
	TypeWhite       Type = "white"
	TypePink        Type = "pink"
	TypeBrown       Type = "brown"
	TypeGrey        Type = "grey"
	TypeBrownLegacy Type = "brown-legacy"
)

// Types returns the built-in noise types.
func Types() []Type {
	return []Type{TypeWhite, TypePink, TypeBrown, TypeGrey, TypeBrownLegacy}
}

// ParseType parses a noise type name, case-insensitively. "red" is accepted
// as an alias for brown.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "red" {
		return TypeBrown, nil
	}
	for _, t := range Types() {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNoise, s)
}

// Normalization selects the level stage applied after shaping.
type Normalization int

const (
	// NormalizeRMS scales to the normalizer's target RMS, then peak-limits.
	NormalizeRMS Normalization = iota
	// NormalizePeak scales the peak to full scale.
	NormalizePeak
)

func (n Normalization) String() string {
	switch n {
	case NormalizeRMS:
		return "rms"
	case NormalizePeak:
		return "peak"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// MaxSamples bounds a single in-memory request (about 18 days at 44.1 kHz).
const MaxSamples int64 = 1 << 36

// Request describes one synthesis run.
type Request struct {
	Type       Type
	Profile    string // catalog profile name; takes precedence over Type
	Samples    int
	SampleRate float64
	Layered    bool
	Layers     int // DefaultLayers when zero
	Edge       spectrum.EdgeMode
}

// SamplesForDuration converts a duration in minutes to a sample count,
// truncating toward zero. Products within 1e-6 of an integer count as that
// integer, so 0.01 minutes at 44.1 kHz is 26460 samples rather than 26459.
func SamplesForDuration(minutes, sampleRate float64) (int, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return 0, err
	}
	n := math.Floor(minutes*60*sampleRate + 1e-6)
	if !(n >= 1) || n > float64(MaxSamples) {
		return 0, fmt.Errorf("%w: %v minutes at %v Hz gives %v samples", ErrInvalidLength, minutes, sampleRate, n)
	}
	return int(n), nil
}

// Validate checks the request without consulting a catalog.
func (r Request) Validate() error {
	if r.Samples <= 0 || int64(r.Samples) > MaxSamples {
		return fmt.Errorf("%w: %d samples", ErrInvalidLength, r.Samples)
	}
	if err := validateSampleRate(r.SampleRate); err != nil {
		return err
	}
	if r.Layers < 0 {
		return fmt.Errorf("%w: layers must be >= 0, got %d", ErrInvalidLayers, r.Layers)
	}
	if r.Edge != spectrum.EdgeHold && r.Edge != spectrum.EdgeExtrapolate {
		return fmt.Errorf("%w: edge mode %v", ErrInvalidConfig, r.Edge)
	}
	if r.Profile == "" {
		if _, err := ParseType(string(r.Type)); err != nil {
			return err
		}
	}
	return nil
}

// Plan is a resolved request: which shaper runs and how its output is leveled.
type Plan struct {
	Shaper        Shaper
	Normalization Normalization
}

// Resolve validates req and maps it to a Plan. Profiles are looked up in
// catalog, which may be nil when req names a built-in type.
func Resolve(req Request, catalog *Catalog) (Plan, error) {
	if err := req.Validate(); err != nil {
		return Plan{}, err
	}

	plan := Plan{Normalization: NormalizeRMS}

	if req.Profile != "" {
		if catalog == nil {
			return Plan{}, fmt.Errorf("%w: profile %q requested without a catalog", ErrUnknownNoise, req.Profile)
		}
		p, ok := catalog.Lookup(req.Profile)
		if !ok {
			return Plan{}, fmt.Errorf("%w: profile %q", ErrUnknownNoise, req.Profile)
		}
		s, err := NewSpectralShaper(p, WithEdgeMode(req.Edge))
		if err != nil {
			return Plan{}, err
		}
		plan.Shaper = s
	} else {
		typ, _ := ParseType(string(req.Type))
		switch typ {
		case TypeWhite:
			plan.Shaper = WhiteShaper{}
		case TypePink:
			plan.Shaper = PinkFilter{}
		case TypeBrown:
			plan.Shaper = BrownIntegrator{}
		case TypeGrey:
			s, err := NewSpectralShaper(GreyProfile(), WithEdgeMode(req.Edge))
			if err != nil {
				return Plan{}, err
			}
			plan.Shaper = s
		case TypeBrownLegacy:
			plan.Shaper = LowpassLayers{}
			plan.Normalization = NormalizePeak
		}
	}

	if s, ok := plan.Shaper.(*SpectralShaper); ok {
		if err := s.CheckRange(req.Samples, req.SampleRate); err != nil {
			return Plan{}, err
		}
	}

	if req.Layered {
		layers := req.Layers
		if layers == 0 {
			layers = DefaultLayers
		}
		if layers > 1 {
			// Reject rates that cannot host the bands before any allocation.
			if _, err := LayerBands(layers, DefaultLayerOrder, req.SampleRate); err != nil {
				return Plan{}, err
			}
		}
		m, err := NewMultibandLayer(plan.Shaper, WithLayers(layers))
		if err != nil {
			return Plan{}, err
		}
		plan.Shaper = m
	}

	return plan, nil
}
