package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration error, so
// errors.Is(err, ErrInvalidConfig) identifies requests rejected before any
// buffer was allocated.
var ErrInvalidConfig = errors.New("noise: invalid configuration")

var (
	ErrUnknownNoise      = fmt.Errorf("%w: unknown noise type or profile", ErrInvalidConfig)
	ErrInvalidProfile    = fmt.Errorf("%w: invalid gain profile", ErrInvalidConfig)
	ErrInvalidLength     = fmt.Errorf("%w: length must be > 0", ErrInvalidConfig)
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate out of range", ErrInvalidConfig)
	ErrInvalidLayers     = fmt.Errorf("%w: invalid layer configuration", ErrInvalidConfig)
)
