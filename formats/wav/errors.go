package wav

import "errors"

var (
	ErrInvalidSampleRate = errors.New("wav: sample rate must be > 0")
	ErrNoSamples         = errors.New("wav: no samples to write")
	ErrNotWAV            = errors.New("wav: not a WAV file")
	ErrUnsupportedFormat = errors.New("wav: only mono 16-bit PCM is supported")
)
