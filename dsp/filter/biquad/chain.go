package biquad

import "slices"

// Chain runs a signal through several sections in series, as produced by
// the Butterworth designs in dsp/filter/design/pass.
type Chain struct {
	sections []Section
}

// NewChain builds a cascade with one zero-state Section per coefficient set.
func NewChain(coeffs []Coefficients) *Chain {
	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i].Coefficients = c
	}
	return &Chain{sections: sections}
}

// ProcessSample runs x through every section in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}
	return x
}

// ProcessBlock filters buf in place, one whole section at a time.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Filter returns src filtered from zero state. src is not modified.
func (c *Chain) Filter(src []float64) []float64 {
	c.Reset()
	out := slices.Clone(src)
	c.ProcessBlock(out)
	return out
}

// Reset zeroes every section's state.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the cascade length.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns the i-th section.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// Stable reports whether every section is stable.
func (c *Chain) Stable() bool {
	for i := range c.sections {
		if !c.sections[i].Stable() {
			return false
		}
	}
	return true
}
