package logicle

import "math"

// Scaler is the capability shared by Logicle and Fast.
type Scaler interface {
	Scale(value float64) (float64, error)
	Inverse(scale float64) (float64, error)
	Bounds() (lo, hi float64)
	AxisLabels() []float64
	Params() Params
}

var (
	_ Scaler = (*Logicle)(nil)
	_ Scaler = (*Fast)(nil)
)

// Config collects the construction parameters used by NewScaler.
type Config struct {
	T    float64
	W    float64
	M    float64
	A    float64
	Bins int
}

type Option func(*Config)

// WithDecades sets M.
func WithDecades(m float64) Option {
	return func(c *Config) {
		c.M = m
	}
}

// WithNegativeDecades sets A.
func WithNegativeDecades(a float64) Option {
	return func(c *Config) {
		c.A = a
	}
}

// WithBins sets the table size. Zero selects the unaccelerated transform.
func WithBins(bins int) Option {
	return func(c *Config) {
		c.Bins = bins
	}
}

func DefaultConfig(T, W float64) Config {
	return Config{
		T:    T,
		W:    W,
		M:    DefaultDecades,
		A:    0,
		Bins: DefaultBins,
	}
}

// NewScaler builds a Fast transform, or a Logicle when the bin count is zero.
func NewScaler(T, W float64, opts ...Option) (Scaler, error) {
	c := DefaultConfig(T, W)
	for _, opt := range opts {
		opt(&c)
	}
	return c.Build()
}

// Build constructs the transform described by c.
func (c Config) Build() (Scaler, error) {
	if c.Bins == 0 {
		l, err := New(c.T, c.W, c.M, c.A)
		if err != nil {
			return nil, err
		}
		return l, nil
	}

	f, err := NewFast(c.T, c.W, c.M, c.A, c.Bins)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Clip clamps value into the bounds of s, so that s.Scale does not fail for
// finite values. NaN is returned unchanged.
func Clip(s Scaler, value float64) float64 {
	lo, hi := s.Bounds()
	return math.Max(lo, math.Min(value, hi))
}
