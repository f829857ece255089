package frequency_test

import (
	"fmt"

	frequencystats "github.com/cwbudde/algo-noise/stats/frequency"
)

func ExampleCalculate() {
	power := []float64{0, 1, 2, 1, 0}
	freqs := []float64{0, 1000, 2000, 3000, 4000}
	s, err := frequencystats.Calculate(power, freqs)
	if err != nil {
		panic(err)
	}
	fmt.Printf("centroid=%.0f Hz rolloff=%.0f Hz\n", s.Centroid, s.Rolloff)
	// Output:
	// centroid=2000 Hz rolloff=3000 Hz
}

// A 1/f power spectrum, the shape of pink noise, falls 3 dB per octave.
func ExampleOctaveSlope() {
	freqs := make([]float64, 20001)
	power := make([]float64, len(freqs))
	for k := 1; k < len(freqs); k++ {
		freqs[k] = float64(k)
		power[k] = 1 / freqs[k]
	}

	slope, err := frequencystats.OctaveSlope(power, freqs, 100, 12800)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f dB/octave\n", slope)
	// Output:
	// -3.0 dB/octave
}
