package logicle

import (
	"math"
	"slices"
)

// Fast is the logicle transform answered from a precomputed table of
// bins+1 raw values, by binary search and linear interpolation.
// A Fast is immutable and safe for concurrent use.
type Fast struct {
	p      params
	bins   int
	lookup []float64
}

// NewFast returns an accelerated transform with the given number of bins.
// A is adjusted so that the raw value 0 falls on a bin boundary.
func NewFast(T, W, M, A float64, bins int) (*Fast, error) {
	if bins <= 0 {
		return nil, illegalParameter("bins is not positive")
	}

	l, err := newLogicle(T, W, M, A, bins)
	if err != nil {
		return nil, err
	}

	lookup := make([]float64, bins+1)
	for i := range lookup {
		lookup[i] = l.p.inverse(float64(i) / float64(bins))
	}

	logger().Trace().
		Int("bins", bins).
		Float64("bottom", lookup[0]).
		Float64("top", lookup[bins]).
		Msg("built logicle lookup table")

	return &Fast{p: l.p, bins: bins, lookup: lookup}, nil
}

// Clone returns an independent copy of f, including its table.
func (f *Fast) Clone() *Fast {
	return &Fast{p: f.p, bins: f.bins, lookup: slices.Clone(f.lookup)}
}

func (f *Fast) T() float64 { return f.p.T }
func (f *Fast) W() float64 { return f.p.W }
func (f *Fast) M() float64 { return f.p.M }
func (f *Fast) A() float64 { return f.p.A }

// Bins returns the number of table bins.
func (f *Fast) Bins() int { return f.bins }

// Lookup returns table entry i. Unlike InverseIndex it also accepts
// i == Bins(), the top of the table. It panics if i is outside [0, Bins()].
func (f *Fast) Lookup(i int) float64 { return f.lookup[i] }

// Params returns a snapshot of all constants of the transform.
func (f *Fast) Params() Params { return f.p.snapshot(f.bins) }

// IntScale returns the bin containing value, i.e. the index i with
// lookup[i] <= value < lookup[i+1].
func (f *Fast) IntScale(value float64) (int, error) {
	if math.IsNaN(value) {
		return 0, illegalValue(value)
	}

	lo := 0
	hi := f.bins
	for lo <= hi {
		mid := (lo + hi) >> 1
		key := f.lookup[mid]
		switch {
		case value < key:
			hi = mid - 1
		case value > key:
			lo = mid + 1
		case mid < f.bins:
			return mid, nil
		default:
			// lookup[bins] is an interpolation endpoint only
			return 0, illegalValue(value)
		}
	}

	if hi < 0 || lo > f.bins {
		return 0, illegalValue(value)
	}
	return lo - 1, nil
}

// Scale returns the position of value, interpolated within its bin.
func (f *Fast) Scale(value float64) (float64, error) {
	index, err := f.IntScale(value)
	if err != nil {
		return 0, err
	}

	delta := (value - f.lookup[index]) / (f.lookup[index+1] - f.lookup[index])
	return (float64(index) + delta) / float64(f.bins), nil
}

// Inverse returns the raw value at scale, which must be in [0, 1).
func (f *Fast) Inverse(scale float64) (float64, error) {
	x := scale * float64(f.bins)
	fl := math.Floor(x)
	if !(fl >= 0 && fl < float64(f.bins)) {
		return 0, illegalValue(scale)
	}
	index := int(fl)

	delta := x - fl
	return (1-delta)*f.lookup[index] + delta*f.lookup[index+1], nil
}

// InverseIndex returns the raw value at the lower boundary of bin index.
func (f *Fast) InverseIndex(index int) (float64, error) {
	if index < 0 || index >= f.bins {
		return 0, illegalIndex(index)
	}
	return f.lookup[index], nil
}

func (f *Fast) DynamicRange() float64 {
	return f.p.dynamicRange()
}

// Bounds returns the raw values at the bottom and the top of the display.
func (f *Fast) Bounds() (lo, hi float64) {
	return f.lookup[0], math.Nextafter(f.lookup[f.bins], math.Inf(-1))
}

func (f *Fast) AxisLabels() []float64 {
	return f.p.axisLabels(f.lookup[0])
}
