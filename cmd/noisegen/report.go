package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-noise/dsp/loudness"
	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/pcm"
	"github.com/cwbudde/algo-noise/dsp/spectrum"
	freqstats "github.com/cwbudde/algo-noise/stats/frequency"
	timestats "github.com/cwbudde/algo-noise/stats/time"
)

// Welch segment bounds for the spectral summary.
const (
	minAnalysisSegment = 256
	maxAnalysisSegment = 4096
)

// Octave range for the slope estimate; the top is capped at Nyquist.
const (
	slopeLowHz  = 62.5
	slopeHighHz = 16000
)

// summary describes a generated file.
type summary struct {
	Samples  int
	Duration time.Duration
	DC       float64
	RMSdB    float64
	PeakdB   float64
	CrestdB  float64
	Clipped  int
	LUFS     float64
	SizeMiB  float64

	// Zero when the signal is too short for a spectral estimate.
	Centroid float64
	Flatness float64
	Rolloff  float64
	Slope    float64 // dB/octave, 0 when the range holds fewer than two octaves
	Spectral bool
}

func summarize(res noise.Result) summary {
	st := timestats.Calculate(res.Samples)
	s := summary{
		Samples:  st.Length,
		Duration: res.Duration(),
		DC:       st.DC,
		RMSdB:    st.RMS_dB,
		PeakdB:   st.Peak_dB,
		CrestdB:  st.CrestFactor_dB,
		Clipped:  st.Clipped,
		LUFS:     loudness.Integrated(res.Samples, res.SampleRate),
		SizeMiB:  float64(pcm.SizeBytes(len(res.PCM))) / (1 << 20),
	}

	if len(res.Samples) < minAnalysisSegment {
		return s
	}
	seg := min(maxAnalysisSegment, len(res.Samples))
	freqs, psd, err := spectrum.Welch(res.Samples, seg, res.SampleRate)
	if err != nil {
		return s
	}
	fs, err := freqstats.Calculate(psd, freqs)
	if err != nil {
		return s
	}
	s.Centroid, s.Flatness, s.Rolloff, s.Spectral = fs.Centroid, fs.Flatness, fs.Rolloff, true

	if slope, err := freqstats.OctaveSlope(psd, freqs, slopeLowHz, min(slopeHighHz, res.SampleRate/2)); err == nil {
		s.Slope = slope
	}
	return s
}

// printList writes the built-in types and catalog profiles.
func printList(w io.Writer, catalog *noise.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Types:\n")
	for _, t := range noise.Types() {
		fmt.Fprintf(tw, "  %s\n", t)
	}
	fmt.Fprintf(tw, "\nProfiles:\n")
	for _, name := range catalog.Names() {
		p, _ := catalog.Lookup(name)
		fmt.Fprintf(tw, "  %s\t%d points\t%s\n", p.Name, len(p.Freqs), p.Description)
	}
	return tw.Flush()
}
