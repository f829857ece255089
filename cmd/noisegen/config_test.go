package main

import (
	stderrors "errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/spectrum"
)

func missingEnv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "noisegen.env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]string{"-env", missingEnv(t)}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "white", cfg.Type)
	assert.Empty(t, cfg.Profile)
	assert.Equal(t, 0.05, cfg.Duration)
	assert.Equal(t, 44100.0, cfg.SampleRate)
	assert.Equal(t, "noise_output.wav", cfg.Output)
	assert.False(t, cfg.Layered)
	assert.Equal(t, noise.DefaultLayers, cfg.Layers)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "hold", cfg.Edge)

	req, err := cfg.request()
	require.NoError(t, err)
	assert.Equal(t, noise.TypeWhite, req.Type)
	assert.Equal(t, 132300, req.Samples)
	assert.Equal(t, spectrum.EdgeHold, req.Edge)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-env", missingEnv(t),
		"-type", "red", "-duration", "0.5", "-sample-rate", "8000",
		"-layered", "-layers", "3", "-seed", "42", "-edge", "extrapolate", "-output", "x.wav",
	}, io.Discard)
	require.NoError(t, err)

	req, err := cfg.request()
	require.NoError(t, err)
	assert.Equal(t, noise.TypeBrown, req.Type)
	assert.Equal(t, 240000, req.Samples)
	assert.Equal(t, 8000.0, req.SampleRate)
	assert.True(t, req.Layered)
	assert.Equal(t, 3, req.Layers)
	assert.Equal(t, spectrum.EdgeExtrapolate, req.Edge)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "x.wav", cfg.Output)
}

func TestParseConfigEnvFile(t *testing.T) {
	env := writeEnv(t, "NOISEGEN_TYPE=pink\nNOISEGEN_DURATION=1\nNOISEGEN_SAMPLE_RATE=22050\nNOISEGEN_SEED=7\nNOISEGEN_LAYERED=true\n")

	cfg, err := parseConfig([]string{"-env", env, "-duration", "0.1"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "pink", cfg.Type)
	assert.Equal(t, 0.1, cfg.Duration, "flag beats env file")
	assert.Equal(t, 22050.0, cfg.SampleRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Layered)
}

func TestParseConfigProcessEnvBeatsFile(t *testing.T) {
	env := writeEnv(t, "NOISEGEN_TYPE=pink\n")
	t.Setenv("NOISEGEN_TYPE", "grey")

	cfg, err := parseConfig([]string{"-env", env}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "grey", cfg.Type)
}

func TestParseConfigBadEnvValue(t *testing.T) {
	env := writeEnv(t, "NOISEGEN_LAYERS=many\n")
	_, err := parseConfig([]string{"-env", env}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOISEGEN_LAYERS")
}

func TestParseConfigFlagErrors(t *testing.T) {
	_, err := parseConfig([]string{"-duration", "soon"}, io.Discard)
	require.Error(t, err)

	_, err = parseConfig([]string{"-env", missingEnv(t), "extra"}, io.Discard)
	require.Error(t, err)

	_, err = parseConfig([]string{"-h"}, io.Discard)
	assert.Equal(t, flag.ErrHelp, err)
}

func TestConfigRequestErrors(t *testing.T) {
	base := func() *config {
		cfg, err := parseConfig([]string{"-env", filepath.Join(os.TempDir(), "noisegen-absent.env")}, io.Discard)
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name      string
		mod       func(*config)
		configErr bool
	}{
		{"unknown type", func(c *config) { c.Type = "violet" }, true},
		{"zero duration", func(c *config) { c.Duration = 0 }, true},
		{"negative rate", func(c *config) { c.SampleRate = -1 }, true},
		{"fractional rate", func(c *config) { c.SampleRate = 44100.5 }, false},
		{"bad edge", func(c *config) { c.Edge = "wrap" }, false},
		{"empty output", func(c *config) { c.Output = " " }, false},
		{"negative layers", func(c *config) { c.Layers = -2 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mod(cfg)
			_, err := cfg.request()
			require.Error(t, err)
			if tt.configErr {
				assert.True(t, stderrors.Is(errors.Cause(err), noise.ErrInvalidConfig), "%v", err)
			}
		})
	}

	// An unknown -type is ignored once a profile is named.
	cfg := base()
	cfg.Type, cfg.Profile = "violet", "grey_screenshot"
	req, err := cfg.request()
	require.NoError(t, err)
	assert.Equal(t, "grey_screenshot", req.Profile)
}

func TestConfigRequestLayersAtMostOneKeepsBase(t *testing.T) {
	for _, layers := range []string{"0", "1", "-2"} {
		cfg, err := parseConfig([]string{"-env", missingEnv(t), "-layered", "-layers", layers, "-duration", "0.001"}, io.Discard)
		require.NoError(t, err)

		req, err := cfg.request()
		require.NoError(t, err)
		assert.Equal(t, 1, req.Layers, "layers=%s", layers)

		plan, err := noise.Resolve(req, nil)
		require.NoError(t, err)
		assert.Equal(t, "layered(white,1)", plan.Shaper.Name())

		white := []float64{0.5, -0.25, 0.125, 1}
		got, err := plan.Shaper.Shape(white, req.SampleRate)
		require.NoError(t, err)
		assert.Equal(t, white, got, "layers=%s", layers)
	}
}
