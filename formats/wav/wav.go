package wav

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/cwbudde/algo-noise/dsp/pcm"
)

const (
	bitDepth    = 16
	numChannels = 1
	// WAVE_FORMAT_PCM
	formatPCM = 1

	chunkSamples = 1 << 16
)

// Write encodes samples as a mono 16-bit PCM WAV stream. The encoder seeks
// back to patch the RIFF and data sizes once all samples are written.
func Write(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	// The encoder emits its header on the first write.
	if len(samples) == 0 {
		return ErrNoSamples
	}

	enc := gowav.NewEncoder(w, sampleRate, bitDepth, numChannels, formatPCM)
	format := &audio.Format{SampleRate: sampleRate, NumChannels: numChannels}

	for start := 0; start < len(samples); start += chunkSamples {
		end := min(start+chunkSamples, len(samples))
		buf := &audio.IntBuffer{
			Format:         format,
			Data:           pcm.ToInt(samples[start:end]),
			SourceBitDepth: bitDepth,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("wav: write samples %d..%d: %w", start, end, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes samples to it.
func WriteFile(path string, sampleRate int, samples []int16) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wav: %w", cerr)
		}
	}()

	return Write(f, sampleRate, samples)
}

// Read decodes a mono 16-bit PCM WAV stream.
func Read(r io.ReadSeeker) (sampleRate int, samples []int16, err error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, nil, ErrNotWAV
	}
	if dec.BitDepth != bitDepth || dec.NumChans != numChannels || dec.WavAudioFormat != formatPCM {
		return 0, nil, fmt.Errorf("%w: %d-bit, %d channel(s), format %d",
			ErrUnsupportedFormat, dec.BitDepth, dec.NumChans, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("wav: decode: %w", err)
	}

	samples = make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return int(dec.SampleRate), samples, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) (sampleRate int, samples []int16, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("wav: %w", err)
	}
	defer f.Close()

	return Read(f)
}
