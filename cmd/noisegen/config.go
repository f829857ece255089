package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/spectrum"
)

const (
	defaultEnvFile    = ".env"
	defaultOutput     = "noise_output.wav"
	defaultDuration   = 0.05 // minutes
	defaultSampleRate = 44100
)

// envKeys maps env-file keys to the flag they provide a default for.
var envKeys = []struct {
	key, flag string
}{
	{"NOISEGEN_TYPE", "type"},
	{"NOISEGEN_PROFILE", "profile"},
	{"NOISEGEN_DURATION", "duration"},
	{"NOISEGEN_SAMPLE_RATE", "sample-rate"},
	{"NOISEGEN_OUTPUT", "output"},
	{"NOISEGEN_LAYERED", "layered"},
	{"NOISEGEN_LAYERS", "layers"},
	{"NOISEGEN_SEED", "seed"},
	{"NOISEGEN_EDGE", "edge"},
}

type config struct {
	Type       string
	Profile    string
	Duration   float64 // minutes
	SampleRate float64
	Output     string
	Layered    bool
	Layers     int
	Seed       int64 // 0 seeds from the clock
	Edge       string
	List       bool
	EnvFile    string
}

func newFlagSet(cfg *config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("noisegen", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.Type, "type", string(noise.TypeWhite), "noise type: white, pink, brown, grey or brown-legacy")
	fs.StringVar(&cfg.Profile, "profile", "", "catalog profile for spectral shaping (overrides -type)")
	fs.Float64Var(&cfg.Duration, "duration", defaultDuration, "duration in minutes")
	fs.Float64Var(&cfg.SampleRate, "sample-rate", defaultSampleRate, "sample rate in Hz")
	fs.StringVar(&cfg.Output, "output", defaultOutput, "output WAV file")
	fs.BoolVar(&cfg.Layered, "layered", false, "sum log-spaced band-pass layers of the noise")
	fs.IntVar(&cfg.Layers, "layers", noise.DefaultLayers, "number of layers with -layered")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 for time-based")
	fs.StringVar(&cfg.Edge, "edge", spectrum.EdgeHold.String(), "gain curve edge mode: hold or extrapolate")
	fs.BoolVar(&cfg.List, "list", false, "list noise types and profiles, then exit")
	fs.StringVar(&cfg.EnvFile, "env", defaultEnvFile, "env file with NOISEGEN_* defaults")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: noisegen [flags]\n\n")
		fmt.Fprintf(out, "Generates colored noise and writes it as a mono 16-bit WAV file.\n\n")
		fmt.Fprintf(out, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  noisegen -type brown -duration 10 -output brown.wav\n")
		fmt.Fprintf(out, "  noisegen -profile grey_screenshot -layered -seed 42\n")
		fmt.Fprintf(out, "  noisegen -list\n")
	}
	return fs
}

// parseConfig parses args, then fills every flag not given on the command
// line from the process environment or, failing that, the env file.
func parseConfig(args []string, out io.Writer) (*config, error) {
	cfg := &config{}
	fs := newFlagSet(cfg, out)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, errors.Wrapf(err, "parse flags")
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments %v", fs.Args())
	}

	envs, err := godotenv.Read(cfg.EnvFile)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "load %v", cfg.EnvFile)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	for _, e := range envKeys {
		if set[e.flag] {
			continue
		}
		v, ok := os.LookupEnv(e.key)
		if !ok {
			v, ok = envs[e.key]
		}
		if !ok || v == "" {
			continue
		}
		if err := fs.Set(e.flag, v); err != nil {
			return nil, errors.Wrapf(err, "%v=%v", e.key, v)
		}
	}
	return cfg, nil
}

// request validates cfg and turns it into a synthesis request.
func (c *config) request() (noise.Request, error) {
	edge, err := spectrum.ParseEdgeMode(c.Edge)
	if err != nil {
		return noise.Request{}, errors.Wrapf(err, "edge")
	}
	if c.SampleRate != math.Trunc(c.SampleRate) || c.SampleRate > math.MaxUint32 {
		return noise.Request{}, errors.Errorf("sample rate %v must be a whole number of Hz", c.SampleRate)
	}
	if strings.TrimSpace(c.Output) == "" {
		return noise.Request{}, errors.Errorf("empty output path")
	}
	samples, err := noise.SamplesForDuration(c.Duration, c.SampleRate)
	if err != nil {
		return noise.Request{}, errors.Wrapf(err, "duration")
	}

	req := noise.Request{
		Profile:    strings.TrimSpace(c.Profile),
		Samples:    samples,
		SampleRate: c.SampleRate,
		Layered:    c.Layered,
		// Any count <= 1 means the base noise unchanged; the library would
		// read an explicit 0 as "use the default".
		Layers: max(c.Layers, 1),
		Edge:   edge,
	}
	if req.Profile == "" {
		typ, err := noise.ParseType(c.Type)
		if err != nil {
			return noise.Request{}, errors.Wrapf(err, "type")
		}
		req.Type = typ
	}
	if err := req.Validate(); err != nil {
		return noise.Request{}, errors.Wrapf(err, "request")
	}
	return req, nil
}
