package noise

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// Profile is a named piecewise-linear gain curve in dB over frequency.
type Profile struct {
	Name        string
	Description string
	Freqs       []float64 // Hz, strictly increasing, >= 0
	GainsDB     []float64
}

// Validate checks the curve invariants: at least two points, matching
// lengths, finite values, non-negative and strictly increasing frequencies.
func (p Profile) Validate() error {
	if len(p.Freqs) < 2 {
		return fmt.Errorf("%w %q: need at least 2 points, got %d", ErrInvalidProfile, p.Name, len(p.Freqs))
	}
	if len(p.Freqs) != len(p.GainsDB) {
		return fmt.Errorf("%w %q: %d freqs vs %d gains", ErrInvalidProfile, p.Name, len(p.Freqs), len(p.GainsDB))
	}
	for i, f := range p.Freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return fmt.Errorf("%w %q: frequency %v at index %d", ErrInvalidProfile, p.Name, f, i)
		}
		if g := p.GainsDB[i]; math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("%w %q: gain %v at index %d", ErrInvalidProfile, p.Name, g, i)
		}
		if i > 0 && !(f > p.Freqs[i-1]) {
			return fmt.Errorf("%w %q: frequencies not strictly increasing at index %d", ErrInvalidProfile, p.Name, i)
		}
	}
	return nil
}

func (p Profile) clone() Profile {
	p.Freqs = slices.Clone(p.Freqs)
	p.GainsDB = slices.Clone(p.GainsDB)
	return p
}

// Catalog is an immutable set of named profiles.
type Catalog struct {
	profiles map[string]Profile
	names    []string
}

// NewCatalog validates and copies profiles into a Catalog. Names must be
// non-empty and unique.
func NewCatalog(profiles ...Profile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("%w: empty profile name", ErrInvalidProfile)
		}
		if _, dup := c.profiles[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate profile %q", ErrInvalidProfile, p.Name)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		c.profiles[p.Name] = p.clone()
		c.names = append(c.names, p.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Lookup returns a copy of the named profile.
func (c *Catalog) Lookup(name string) (Profile, bool) {
	p, ok := c.profiles[name]
	if !ok {
		return Profile{}, false
	}
	return p.clone(), true
}

// Names returns the profile names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.names)
}

var screenshotFreqs = []float64{30, 60, 120, 250, 500, 1000, 2000, 4000, 8000, 16000}

var technicalFreqs = []float64{20, 100, 400, 1600, 6400, 20000}

// GreyProfile is the inverted equal-loudness "smiley" curve used by the
// grey noise type.
func GreyProfile() Profile {
	return Profile{
		Name:        "grey",
		Description: "Psychoacoustically flat noise: boosted lows and highs, dip around 2 kHz",
		Freqs:       []float64{20, 100, 500, 1000, 2000, 4000, 8000, 16000},
		GainsDB:     []float64{12, 4, -2, -8, -10, -4, 2, 8},
	}
}

// DefaultProfiles returns the built-in profile definitions.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:        "white",
			Description: "Flat spectrum across the audible range",
			Freqs:       []float64{20, 20000},
			GainsDB:     []float64{0, 0},
		},
		{
			Name:        "grey_screenshot",
			Description: "Grey noise traced from an analyzer screenshot: gentle low lift, mid dip, high lift",
			Freqs:       slices.Clone(screenshotFreqs),
			GainsDB:     []float64{5, 2, 0, -2, -4, -6, -4.5, -1.5, 1, 4},
		},
		{
			Name:        "brown_screenshot",
			Description: "Brown noise traced from an analyzer screenshot: steady roll-off toward the highs",
			Freqs:       slices.Clone(screenshotFreqs),
			GainsDB:     []float64{6, 4, 2, -0.5, -3, -5.5, -8, -10, -12, -14},
		},
		{
			Name:        "pink_technical",
			Description: "Textbook pink noise, -3 dB per octave",
			Freqs:       slices.Clone(technicalFreqs),
			GainsDB:     []float64{0, -7, -13, -19, -25, -29},
		},
		{
			Name:        "brown_technical",
			Description: "Textbook brown noise, -6 dB per octave",
			Freqs:       slices.Clone(technicalFreqs),
			GainsDB:     []float64{0, -14, -26, -38, -50, -58},
		},
		GreyProfile(),
	}
}

// DefaultCatalog returns a Catalog of the built-in profiles.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultProfiles()...)
	if err != nil {
		panic(fmt.Sprintf("noise: built-in catalog invalid: %v", err))
	}
	return c
}
