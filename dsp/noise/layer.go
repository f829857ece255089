package noise

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-noise/dsp/filter/biquad"
	"github.com/cwbudde/algo-noise/dsp/filter/design/pass"
)

// Layering defaults.
const (
	DefaultLayers     = 7
	DefaultLayerOrder = 4

	layerLowHz  = 20.0
	layerHighHz = 20000.0
	// The top edge stays below sampleRate/2.1 to keep clear of Nyquist.
	layerNyquistMargin = 2.1
)

// Band is one layer of a multiband decomposition.
//
// Bands returned by LayerBands are the leaves of a Linkwitz-Riley crossover
// tree over the shared edge list, so the sum of all band outputs has the
// magnitude of the outer 20 Hz high-pass and top low-pass alone.
type Band struct {
	Low, High float64 // Hz
	Order     int     // Linkwitz-Riley order, a positive multiple of 4

	index int
	edges []float64 // all band edges, shared by every band of one split
}

// Coefficients returns the cascade for the band at sampleRate, or nil if a
// stage cannot be realized. It runs the outer edge filters, the high-pass of
// every crossover at or below Low, the low-pass at High, and the allpass of
// every crossover above High.
func (b Band) Coefficients(sampleRate float64) []biquad.Coefficients {
	n := len(b.edges) - 1
	if n < 1 || b.index < 0 || b.index >= n {
		return nil
	}

	var out []biquad.Coefficients
	add := func(stage []biquad.Coefficients) bool {
		out = append(out, stage...)
		return stage != nil
	}

	ok := add(pass.LinkwitzRileyHP(b.edges[0], b.Order, sampleRate)) &&
		add(pass.LinkwitzRileyLP(b.edges[n], b.Order, sampleRate))
	for k := 1; ok && k <= b.index; k++ {
		ok = add(pass.LinkwitzRileyHP(b.edges[k], b.Order, sampleRate))
	}
	if ok && b.index < n-1 {
		ok = add(pass.LinkwitzRileyLP(b.edges[b.index+1], b.Order, sampleRate))
	}
	for k := b.index + 2; ok && k < n; k++ {
		ok = add(pass.LinkwitzRileyAllpass(b.edges[k], b.Order, sampleRate))
	}
	if !ok {
		return nil
	}
	return out
}

// LayerBands splits 20 Hz .. min(20000, sampleRate/2.1) into layers
// contiguous bands with log-spaced edges. order is the Linkwitz-Riley order
// and must be a positive multiple of 4.
func LayerBands(layers, order int, sampleRate float64) ([]Band, error) {
	if layers < 1 {
		return nil, fmt.Errorf("%w: layers must be >= 1, got %d", ErrInvalidLayers, layers)
	}
	if err := validateLayerOrder(order); err != nil {
		return nil, err
	}
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	top := math.Min(layerHighHz, sampleRate/layerNyquistMargin)
	if top <= layerLowHz {
		return nil, fmt.Errorf("%w: %v Hz leaves no room above %v Hz", ErrInvalidSampleRate, sampleRate, layerLowHz)
	}

	lo, hi := math.Log10(layerLowHz), math.Log10(top)
	edges := make([]float64, layers+1)
	for i := range edges {
		edges[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(layers))
	}
	edges[0], edges[layers] = layerLowHz, top

	bands := make([]Band, layers)
	for i := range bands {
		bands[i] = Band{Low: edges[i], High: edges[i+1], Order: order, index: i, edges: edges}
	}
	return bands, nil
}

func validateLayerOrder(order int) error {
	if order < 4 || order%4 != 0 {
		return fmt.Errorf("%w: order must be a positive multiple of 4, got %d", ErrInvalidLayers, order)
	}
	return nil
}

// MultibandLayer splits the output of a base shaper into log-spaced
// crossover bands and sums them back sample by sample.
type MultibandLayer struct {
	base   Shaper
	layers int
	order  int
}

var _ Shaper = (*MultibandLayer)(nil)

// LayerOption configures a MultibandLayer.
type LayerOption func(*MultibandLayer)

// WithLayers sets the number of bands. Values <= 1 disable layering.
func WithLayers(n int) LayerOption {
	return func(m *MultibandLayer) {
		m.layers = n
	}
}

// WithLayerOrder sets the Linkwitz-Riley crossover order (4, 8, ...).
func WithLayerOrder(order int) LayerOption {
	return func(m *MultibandLayer) {
		m.order = order
	}
}

// NewMultibandLayer wraps base with DefaultLayers bands of order
// DefaultLayerOrder unless overridden.
func NewMultibandLayer(base Shaper, opts ...LayerOption) (*MultibandLayer, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: nil base shaper", ErrInvalidLayers)
	}
	m := &MultibandLayer{base: base, layers: DefaultLayers, order: DefaultLayerOrder}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if err := validateLayerOrder(m.order); err != nil {
		return nil, err
	}
	return m, nil
}

// Name implements Shaper.
func (m *MultibandLayer) Name() string {
	return fmt.Sprintf("layered(%s,%d)", m.base.Name(), m.layers)
}

// Layers returns the configured band count.
func (m *MultibandLayer) Layers() int { return m.layers }

// Shape runs the base shaper and, for more than one layer, replaces its
// output by the sum of its band-pass layers.
func (m *MultibandLayer) Shape(white []float64, sampleRate float64) ([]float64, error) {
	base, err := m.base.Shape(white, sampleRate)
	if err != nil {
		return nil, err
	}
	if m.layers <= 1 {
		return base, nil
	}

	bands, err := LayerBands(m.layers, m.order, sampleRate)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(base))
	for _, b := range bands {
		coeffs := b.Coefficients(sampleRate)
		if coeffs == nil {
			return nil, fmt.Errorf("%w: band %.1f..%.1f Hz not realizable at %v Hz", ErrInvalidLayers, b.Low, b.High, sampleRate)
		}
		vecmath.AddBlockInPlace(out, biquad.NewChain(coeffs).Filter(base))
	}
	return out, nil
}

// LegacyCutoffs are the low-pass corners summed by LowpassLayers.
var LegacyCutoffs = []float64{5, 10, 20, 40, 80, 160, 320}

// LowpassLayers sums several Butterworth low-passes of the same white
// noise. It is the earliest brown noise construction and is kept for
// reproducing old renders; it has no high-pass and is typically
// peak-normalized rather than RMS-normalized.
type LowpassLayers struct {
	Cutoffs []float64 // Hz; LegacyCutoffs when empty
	Order   int       // DefaultLayerOrder when zero
}

var _ Shaper = LowpassLayers{}

// Name implements Shaper.
func (LowpassLayers) Name() string { return "brown-legacy" }

// Shape implements Shaper.
func (l LowpassLayers) Shape(white []float64, sampleRate float64) ([]float64, error) {
	if err := validateInput(white, sampleRate); err != nil {
		return nil, err
	}
	cutoffs := l.Cutoffs
	if len(cutoffs) == 0 {
		cutoffs = LegacyCutoffs
	}
	order := l.Order
	if order == 0 {
		order = DefaultLayerOrder
	}

	out := make([]float64, len(white))
	for _, fc := range cutoffs {
		coeffs := pass.ButterworthLP(fc, order, sampleRate)
		if coeffs == nil {
			return nil, fmt.Errorf("%w: low-pass at %v Hz, order %d, not realizable at %v Hz", ErrInvalidLayers, fc, order, sampleRate)
		}
		vecmath.AddBlockInPlace(out, biquad.NewChain(coeffs).Filter(white))
	}
	return out, nil
}
