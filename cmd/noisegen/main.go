// Command noisegen synthesizes colored noise into a mono 16-bit WAV file.
//
// Usage:
//
//	noisegen [flags]
//
// Defaults may come from NOISEGEN_* variables in the environment or in an
// env file (-env, default .env); command-line flags take precedence.
//
// Examples:
//
//	noisegen -type pink -duration 5
//	noisegen -type brown -layered -layers 7 -output brown_layered.wav
//	noisegen -profile brown_technical -edge extrapolate -seed 1
//	noisegen -list
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/signal"
	"github.com/cwbudde/algo-noise/formats/wav"
)

func main() {
	ctx := logger.WithContext(context.Background())

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			return
		}
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	catalog := noise.DefaultCatalog()
	if cfg.List {
		return printList(stdout, catalog)
	}

	req, err := cfg.request()
	if err != nil {
		return errors.Wrapf(err, "config")
	}

	opt := signal.WithSeed(cfg.Seed)
	if cfg.Seed == 0 {
		opt = signal.WithTimeSeed()
	}
	gen := signal.NewGenerator(opt)

	synth, err := noise.NewSynthesizer(gen, noise.WithCatalog(catalog))
	if err != nil {
		return errors.Wrapf(err, "synthesizer")
	}
	logger.Tf(ctx, "generate type=%v, profile=%v, samples=%v, rate=%v, layered=%v, layers=%v, edge=%v, seed=%v",
		req.Type, req.Profile, req.Samples, req.SampleRate, req.Layered, req.Layers, req.Edge, gen.Seed())

	res, err := synth.Generate(req)
	if err != nil {
		return errors.Wrapf(err, "generate %v samples", req.Samples)
	}
	if n := res.Normalization.NonFinite; n > 0 {
		logger.Wf(ctx, "replaced %v non-finite samples with zero", n)
	}
	if res.Normalization.PeakLimited {
		logger.Wf(ctx, "peak exceeded full scale after RMS normalization, rescaled by %.3f", res.Normalization.Gain)
	}

	if err := wav.WriteFile(cfg.Output, int(req.SampleRate), res.PCM); err != nil {
		return errors.Wrapf(err, "write %v", cfg.Output)
	}

	s := summarize(res)
	logger.Tf(ctx, "shaper=%v, normalization gain=%.4g, samples=%v, duration=%v",
		res.Shaper, res.Normalization.Gain, s.Samples, s.Duration)
	logger.Tf(ctx, "level rms=%.2f dBFS, peak=%.2f dBFS, crest=%.2f dB, dc=%.2g, clipped=%v, loudness=%.2f LUFS",
		s.RMSdB, s.PeakdB, s.CrestdB, s.DC, s.Clipped, s.LUFS)
	if s.Spectral {
		logger.Tf(ctx, "spectrum centroid=%.1f Hz, rolloff=%.1f Hz, flatness=%.3f, slope=%.2f dB/oct",
			s.Centroid, s.Rolloff, s.Flatness, s.Slope)
	} else {
		logger.Wf(ctx, "signal too short for a spectral summary")
	}
	logger.Tf(ctx, "wrote %v, size=%.2f MiB", cfg.Output, s.SizeMiB)
	return nil
}
