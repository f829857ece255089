package main

import (
	"bytes"
	"context"
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/signal"
	"github.com/cwbudde/algo-noise/formats/wav"
)

func TestRunWritesWAV(t *testing.T) {
	ctx := logger.WithContext(context.Background())
	dir := t.TempDir()
	out := filepath.Join(dir, "pink.wav")

	err := run(ctx, []string{
		"-env", filepath.Join(dir, "absent.env"),
		"-type", "pink", "-duration", "0.01", "-seed", "3", "-output", out,
	}, io.Discard, io.Discard)
	require.NoError(t, err)

	sr, pcm, err := wav.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 44100, sr)
	assert.Len(t, pcm, 26460)
}

func TestRunSeedIsReproducible(t *testing.T) {
	ctx := logger.WithContext(context.Background())
	dir := t.TempDir()

	read := func(name string) []int16 {
		out := filepath.Join(dir, name)
		require.NoError(t, run(ctx, []string{
			"-env", filepath.Join(dir, "absent.env"),
			"-profile", "brown_technical", "-duration", "0.005", "-seed", "11", "-output", out,
		}, io.Discard, io.Discard))
		_, pcm, err := wav.ReadFile(out)
		require.NoError(t, err)
		return pcm
	}
	assert.Equal(t, read("a.wav"), read("b.wav"))
}

func TestRunConfigErrorWritesNothing(t *testing.T) {
	ctx := logger.WithContext(context.Background())
	dir := t.TempDir()
	out := filepath.Join(dir, "never.wav")

	err := run(ctx, []string{"-env", filepath.Join(dir, "absent.env"), "-type", "violet", "-output", out}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestRunList(t *testing.T) {
	var stdout bytes.Buffer
	err := run(context.Background(), []string{"-list", "-env", filepath.Join(t.TempDir(), "absent.env")}, &stdout, io.Discard)
	require.NoError(t, err)

	text := stdout.String()
	for _, typ := range noise.Types() {
		assert.Contains(t, text, string(typ))
	}
	for _, name := range noise.DefaultCatalog().Names() {
		assert.Contains(t, text, name)
	}
}

func TestSummarize(t *testing.T) {
	synth, err := noise.NewSynthesizer(signal.NewGenerator(signal.WithSeed(5)))
	require.NoError(t, err)
	res, err := synth.Generate(noise.Request{Type: noise.TypeWhite, Samples: 44100, SampleRate: 44100})
	require.NoError(t, err)

	s := summarize(res)
	assert.Equal(t, 44100, s.Samples)
	assert.InDelta(t, 20*math.Log10(0.15), s.RMSdB, 1e-6)
	assert.Greater(t, s.CrestdB, 6.0)
	assert.Zero(t, s.Clipped)
	assert.InDelta(t, 44100*2.0/(1<<20), s.SizeMiB, 1e-12)
	assert.False(t, math.IsInf(s.LUFS, 0))

	require.True(t, s.Spectral)
	assert.InDelta(t, 11025, s.Centroid, 500)
	assert.Greater(t, s.Flatness, 0.9)
	assert.Greater(t, s.Rolloff, s.Centroid)
	assert.InDelta(t, 0, s.Slope, 0.75)
	assert.InDelta(t, 0, s.DC, 0.01)

	res, err = synth.Generate(noise.Request{Type: noise.TypePink, Samples: 4 * 44100, SampleRate: 44100})
	require.NoError(t, err)
	assert.InDelta(t, -3, summarize(res).Slope, 0.75)

	short := summarize(noise.Result{Samples: []float64{0.1}, PCM: []int16{3277}, SampleRate: 44100})
	assert.False(t, short.Spectral)
}
