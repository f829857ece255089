package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-noise/dsp/spectrum"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"flat", Profile{Name: "flat", Freqs: []float64{20, 20000}, GainsDB: []float64{0, 0}}, false},
		{"starts at DC", Profile{Name: "dc", Freqs: []float64{0, 100}, GainsDB: []float64{-6, 0}}, false},
		{"single point", Profile{Name: "one", Freqs: []float64{100}, GainsDB: []float64{0}}, true},
		{"length mismatch", Profile{Name: "mm", Freqs: []float64{20, 200}, GainsDB: []float64{0}}, true},
		{"duplicate freq", Profile{Name: "dup", Freqs: []float64{20, 20, 200}, GainsDB: []float64{0, 1, 2}}, true},
		{"decreasing", Profile{Name: "dec", Freqs: []float64{200, 20}, GainsDB: []float64{0, 0}}, true},
		{"negative freq", Profile{Name: "neg", Freqs: []float64{-1, 20}, GainsDB: []float64{0, 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidProfile)
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []string{
		"brown_screenshot", "brown_technical", "grey", "grey_screenshot", "pink_technical", "white",
	}, c.Names())
	assert.Equal(t, 6, c.Len())

	p, ok := c.Lookup("pink_technical")
	require.True(t, ok)
	assert.Equal(t, []float64{20, 100, 400, 1600, 6400, 20000}, p.Freqs)
	assert.Equal(t, []float64{0, -7, -13, -19, -25, -29}, p.GainsDB)
	assert.NotEmpty(t, p.Description)

	_, ok = c.Lookup("purple")
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	src := Profile{Name: "mine", Freqs: []float64{20, 20000}, GainsDB: []float64{3, 3}}
	c, err := NewCatalog(src)
	require.NoError(t, err)

	src.GainsDB[0] = 99
	p, _ := c.Lookup("mine")
	assert.Equal(t, 3.0, p.GainsDB[0], "catalog must not alias caller slices")

	p.Freqs[0] = 1
	again, _ := c.Lookup("mine")
	assert.Equal(t, 20.0, again.Freqs[0], "Lookup must return a copy")

	names := c.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"mine"}, c.Names())
}

func TestNewCatalogErrors(t *testing.T) {
	flat := Profile{Name: "a", Freqs: []float64{20, 20000}, GainsDB: []float64{0, 0}}

	_, err := NewCatalog(flat, flat)
	require.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewCatalog(Profile{Name: " ", Freqs: flat.Freqs, GainsDB: flat.GainsDB})
	require.ErrorIs(t, err, ErrInvalidProfile)

	_, err = NewCatalog(Profile{Name: "bad", Freqs: []float64{20}, GainsDB: []float64{0}})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInterpolateGainsEdges(t *testing.T) {
	grey := GreyProfile()
	freqs := []float64{10, 20, 60, 16000, 20000}

	hold, err := InterpolateGains(grey, freqs, spectrum.EdgeHold)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{12, 12, 8, 8, 8}, hold, 1e-12)

	extra, err := InterpolateGains(grey, freqs, spectrum.EdgeExtrapolate)
	require.NoError(t, err)
	// Below 20 Hz the 20..100 Hz segment (-0.1 dB/Hz) continues; above
	// 16 kHz the 8..16 kHz segment (+0.75 dB/kHz) continues.
	assert.InDeltaSlice(t, []float64{13, 12, 8, 8, 11}, extra, 1e-12)
}

func TestGainCurveForcesDCToZero(t *testing.T) {
	p := Profile{Name: "boost", Freqs: []float64{0, 22050}, GainsDB: []float64{20, 20}}
	g, err := GainCurve(p, 16, 44100, spectrum.EdgeHold)
	require.NoError(t, err)
	require.Len(t, g, 9)

	assert.Equal(t, 0.0, g[0])
	for k := 1; k < len(g); k++ {
		assert.InDelta(t, 10.0, g[k], 1e-12, "bin %d", k)
	}

	_, err = GainCurve(p, 0, 44100, spectrum.EdgeHold)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = GainCurve(p, 16, 0, spectrum.EdgeHold)
	require.ErrorIs(t, err, ErrInvalidSampleRate)
}
