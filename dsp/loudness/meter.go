package loudness

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
)

const (
	momentaryDuration = 0.4 // seconds

	// Gating parameters.
	absThreshold    = -70.0
	relThreshold    = -10.0
	blockOverlap    = 0.75
	blockStepFactor = 1.0 - blockOverlap

	lufsFloor = -120.0
)

// Meter measures BS.1770 loudness of a mono signal.
type Meter struct {
	sampleRate float64

	shelf *biquad.Section
	rlb   *biquad.Section

	// Sliding 400 ms window of squared K-weighted samples.
	history    []float64
	writeIdx   int
	runningSum float64

	blockStep        int
	samplesSinceStep int
	filled           int

	// Mean-square value of each gating block.
	blocks []float64
	peak   float64
}

// NewMeter creates a mono meter. Only the sample rate option is used.
func NewMeter(opts ...core.ProcessorOption) *Meter {
	cfg := core.ApplyProcessorOptions(opts...)

	shelf, rlb := kWeighting(cfg.SampleRate)
	window := max(int(math.Round(momentaryDuration*cfg.SampleRate)), 1)

	return &Meter{
		sampleRate: cfg.SampleRate,
		shelf:      biquad.NewSection(shelf),
		rlb:        biquad.NewSection(rlb),
		history:    make([]float64, window),
		blockStep:  max(int(math.Round(momentaryDuration*blockStepFactor*cfg.SampleRate)), 1),
	}
}

// SampleRate returns the rate the K-weighting filters were designed for.
func (m *Meter) SampleRate() float64 {
	return m.sampleRate
}

// Reset clears all integration state and the peak value.
func (m *Meter) Reset() {
	m.shelf.Reset()
	m.rlb.Reset()
	clear(m.history)
	m.writeIdx = 0
	m.runningSum = 0
	m.samplesSinceStep = 0
	m.filled = 0
	m.blocks = nil
	m.peak = 0
}

// ProcessSample feeds one sample.
func (m *Meter) ProcessSample(x float64) {
	if a := math.Abs(x); a > m.peak {
		m.peak = a
	}

	y := m.rlb.ProcessSample(m.shelf.ProcessSample(x))
	sq := y * y

	m.runningSum += sq - m.history[m.writeIdx]
	if m.runningSum < 0 {
		m.runningSum = 0
	}
	m.history[m.writeIdx] = sq
	m.writeIdx = (m.writeIdx + 1) % len(m.history)

	if m.filled < len(m.history) {
		m.filled++
	}

	m.samplesSinceStep++
	if m.samplesSinceStep >= m.blockStep {
		m.samplesSinceStep = 0
		// Blocks only count once a full 400 ms window has been seen.
		if m.filled == len(m.history) {
			m.blocks = append(m.blocks, m.runningSum/float64(len(m.history)))
		}
	}
}

// ProcessBlock feeds a block of samples.
func (m *Meter) ProcessBlock(block []float64) {
	for _, x := range block {
		m.ProcessSample(x)
	}
}

// Momentary returns the loudness of the last 400 ms in LUFS.
func (m *Meter) Momentary() float64 {
	return toLUFS(m.runningSum / float64(len(m.history)))
}

// Integrated returns the gated integrated loudness in LUFS, or -Inf when no
// block passes the gates (including signals shorter than 400 ms).
func (m *Meter) Integrated() float64 {
	var (
		absGatedSum float64
		absGated    int
	)
	for _, b := range m.blocks {
		if toLUFS(b) > absThreshold {
			absGatedSum += b
			absGated++
		}
	}
	if absGated == 0 {
		return math.Inf(-1)
	}

	gammaRel := toLUFS(absGatedSum/float64(absGated)) + relThreshold

	var (
		relGatedSum float64
		relGated    int
	)
	for _, b := range m.blocks {
		l := toLUFS(b)
		if l > absThreshold && l > gammaRel {
			relGatedSum += b
			relGated++
		}
	}
	if relGated == 0 {
		return math.Inf(-1)
	}

	return toLUFS(relGatedSum / float64(relGated))
}

// Peak returns the maximum absolute sample value since Reset.
func (m *Meter) Peak() float64 {
	return m.peak
}

// Integrated measures the integrated loudness of buf in one call.
func Integrated(buf []float64, sampleRate float64) float64 {
	m := NewMeter(core.WithSampleRate(sampleRate))
	m.ProcessBlock(buf)
	return m.Integrated()
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return lufsFloor
	}

	return -0.691 + core.PowerToDB(meanSquare)
}
