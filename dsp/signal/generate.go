// Package signal provides the seeded Gaussian noise source and the
// integrate/detrend steps used to build brown noise.
package signal

import (
	"fmt"
	"math/rand"
	"time"
)

// Source produces independent standard-normal samples.
//
// Each call is self-contained: implementations must not carry random state
// from one call into the next, so a single Source can serve concurrent
// requests as long as each request uses its own Source value.
type Source interface {
	Normal(samples int) ([]float64, error)
}

// Generator draws Gaussian noise from a seeded PRNG.
type Generator struct {
	seed int64
}

var _ Source = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithTimeSeed seeds the generator from the wall clock.
func WithTimeSeed() Option {
	return func(g *Generator) {
		g.seed = time.Now().UnixNano()
	}
}

// NewGenerator creates a generator. The seed defaults to 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Seed returns the seed used for noise generation.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Normal generates samples drawn from N(0, 1).
//
// A fresh PRNG is created from the seed on every call, so two calls with the
// same seed return identical buffers.
func (g *Generator) Normal(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("normal samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out, nil
}
