package noise_test

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/signal"
	timestats "github.com/cwbudde/algo-noise/stats/time"
)

func ExampleSynthesizer_Generate() {
	src := signal.NewGenerator(signal.WithSeed(42))
	synth, err := noise.NewSynthesizer(src)
	if err != nil {
		panic(err)
	}

	n, err := noise.SamplesForDuration(0.01, 44100)
	if err != nil {
		panic(err)
	}
	res, err := synth.Generate(noise.Request{Type: noise.TypePink, Samples: n, SampleRate: 44100})
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s: %d samples, rms=%.3f\n", res.Shaper, len(res.PCM), timestats.RMS(res.Samples))
	// Output: pink: 26460 samples, rms=0.150
}

func ExampleDefaultCatalog() {
	for _, name := range noise.DefaultCatalog().Names() {
		fmt.Println(name)
	}
	// Output:
	// brown_screenshot
	// brown_technical
	// grey
	// grey_screenshot
	// pink_technical
	// white
}

func ExampleParseType() {
	t, err := noise.ParseType("Red")
	fmt.Println(t, err)
	// Output: brown <nil>
}
