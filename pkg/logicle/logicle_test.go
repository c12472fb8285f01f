package logicle

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape struct {
	T, W, M, A float64
}

func (s shape) String() string {
	return fmt.Sprintf("T=%g,W=%g,M=%g,A=%g", s.T, s.W, s.M, s.A)
}

var shapes = []shape{
	{262144, 0.5, 4.5, 0},
	{262144, 1, 4.5, 1},
	{262144, 2, 4.5, 0},
	{262144, 0.5, 4.5, -0.5},
	{10000, 1, 4.5, 0},
	{10000, 0, 4.5, 0},
	{1, 0.5, 4.5, 0},
}

var rawValues = []float64{-1000, -100, -10, -1, -0.01, 1e-6, 0.5, 1, 10, 100, 1e3, 1e4, 1e5, 262144, 1e6}

func closeTo(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), msgAndArgs...)
}

func TestNewValidation(t *testing.T) {
	testCases := []struct {
		name    string
		T, W, M float64
		A       float64
		message string
	}{
		{"zero T", 0, 0.5, 4.5, 0, "T is not positive"},
		{"negative T", -1, 0.5, 4.5, 0, "T is not positive"},
		{"negative W", 262144, -0.1, 4.5, 0, "W is negative"},
		{"zero M", 262144, 0, 0, 0, "M is not positive"},
		{"W too large", 262144, 3, 4.5, 0, "W is too large"},
		{"A below -W", 262144, 0.5, 4.5, -1, "A is too large"},
		{"A above M-2W", 262144, 1, 4.5, 3, "A is too large"},
		{"NaN T", math.NaN(), 0.5, 4.5, 0, "parameters must be finite"},
		{"infinite M", 262144, 0.5, math.Inf(1), 0, "parameters must be finite"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.T, tc.W, tc.M, tc.A)
			require.Error(t, err)
			assert.Nil(t, l)
			assert.True(t, errors.Is(err, ErrIllegalParameter))
			assert.False(t, errors.Is(err, ErrDidNotConverge))
			assert.Equal(t, IllegalParameter, KindOf(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestNewValid(t *testing.T) {
	l, err := New(262144, 0.5, 4.5, 0)
	require.NoError(t, err)

	assert.Equal(t, 262144.0, l.T())
	assert.Equal(t, 0.5, l.W())
	assert.Equal(t, 4.5, l.M())
	assert.Equal(t, 0.0, l.A())

	assert.Equal(t, 0.0, l.X2())
	assert.InDelta(t, 1.0/9, l.X1(), 1e-15)
	assert.InDelta(t, 2.0/9, l.X0(), 1e-15)

	c := l.Coefficients()
	assert.InEpsilon(t, 4.5*math.Ln10, c.B, 1e-15)
	assert.InEpsilon(t, 4.530271309267249, c.D, 1e-12)
	assert.Equal(t, 0.0, l.p.taylor[1])
}

func TestBreakpointOrder(t *testing.T) {
	for _, s := range shapes {
		l, err := New(s.T, s.W, s.M, s.A)
		require.NoError(t, err, s)
		if s.A >= 0 {
			assert.LessOrEqual(t, 0.0, l.X2(), s)
		}
		assert.LessOrEqual(t, l.X2(), l.X1(), s)
		assert.LessOrEqual(t, l.X1(), l.X0(), s)
		assert.LessOrEqual(t, l.X0(), 1.0, s)
	}
}

func TestZeroFixedPoint(t *testing.T) {
	for _, s := range shapes {
		l, err := New(s.T, s.W, s.M, s.A)
		require.NoError(t, err, s)

		x, err := l.Scale(0)
		require.NoError(t, err)
		assert.Equal(t, l.X1(), x, s)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range shapes {
		l, err := New(s.T, s.W, s.M, s.A)
		require.NoError(t, err, s)

		for _, v := range rawValues {
			x, err := l.Scale(v)
			require.NoError(t, err, "%s: scale(%g)", s, v)
			back, err := l.Inverse(x)
			require.NoError(t, err)
			closeTo(t, v, back, "%s: inverse(scale(%g))", s, v)
		}
	}
}

func TestTopOfScale(t *testing.T) {
	for _, s := range shapes {
		l, err := New(s.T, s.W, s.M, s.A)
		require.NoError(t, err, s)

		top, err := l.Inverse(1)
		require.NoError(t, err)
		closeTo(t, s.T, top, s)
	}
}

func TestSymmetry(t *testing.T) {
	for _, s := range shapes {
		l, err := New(s.T, s.W, s.M, s.A)
		require.NoError(t, err, s)

		for i := -50; i <= 150; i++ {
			pos := float64(i) / 100
			v, _ := l.Inverse(pos)
			mirrored, _ := l.Inverse(2*l.X1() - pos)
			closeTo(t, -v, mirrored, "%s: position %g", s, pos)
		}
	}
}

func TestMonotonic(t *testing.T) {
	for _, s := range shapes {
		l, err := New(s.T, s.W, s.M, s.A)
		require.NoError(t, err, s)

		prev := math.Inf(-1)
		for i := -50; i <= 150; i++ {
			v, _ := l.Inverse(float64(i) / 100)
			assert.Greater(t, v, prev, "%s: inverse at %d", s, i)
			prev = v
		}

		prev = math.Inf(-1)
		for _, v := range rawValues {
			x, err := l.Scale(v)
			require.NoError(t, err)
			assert.Greater(t, x, prev, "%s: scale(%g)", s, v)
			prev = x
		}
	}
}

func TestScaleNaN(t *testing.T) {
	l, err := New(262144, 0.5, 4.5, 0)
	require.NoError(t, err)

	_, err = l.Scale(math.NaN())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDidNotConverge)
	assert.Equal(t, DidNotConverge, KindOf(err))

	// the failed call leaves the transform usable
	x, err := l.Scale(1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.4543, x, 1e-3)
}

func TestDynamicRange(t *testing.T) {
	testCases := []struct {
		s    shape
		want float64
	}{
		{shape{262144, 0.5, 4.5, 0}, 3042.115846389531},
		{shape{10000, 1, 4.5, 0}, 611.9823092761411},
		{shape{262144, 0, 4.5, 0}, 15811.388316653309},
	}
	for _, tc := range testCases {
		l, err := New(tc.s.T, tc.s.W, tc.s.M, tc.s.A)
		require.NoError(t, err, tc.s)
		assert.InEpsilon(t, tc.want, l.DynamicRange(), 1e-9, tc.s)
		assert.InEpsilon(t, tc.want, l.Params().DynamicRange, 1e-9, tc.s)
	}
}

func TestBounds(t *testing.T) {
	l, err := New(262144, 0.5, 4.5, 0)
	require.NoError(t, err)

	lo, hi := l.Bounds()
	assert.InDelta(t, -110.87459125896835, lo, 1e-9)
	assert.Less(t, hi, 262144.0)
	assert.InDelta(t, 262144.0, hi, 1e-3)

	assert.Equal(t, lo, Clip(l, -1e6))
	assert.Equal(t, hi, Clip(l, 1e9))
	assert.Equal(t, 42.0, Clip(l, 42))
	assert.True(t, math.IsNaN(Clip(l, math.NaN())))
}

func TestLogicleClone(t *testing.T) {
	l, err := New(262144, 0.5, 4.5, 0)
	require.NoError(t, err)

	c := l.Clone()
	assert.Equal(t, l.Params(), c.Params())

	c.p.taylor[0] = 0
	assert.NotEqual(t, 0.0, l.p.taylor[0])
}

func TestParamsSnapshot(t *testing.T) {
	l, err := New(262144, 1, 4.5, 1)
	require.NoError(t, err)

	p := l.Params()
	assert.Equal(t, 262144.0, p.T)
	assert.Equal(t, 1.0, p.A)
	assert.Zero(t, p.Bins)
	assert.Equal(t, l.Coefficients(), p.Coefficients)
	assert.Equal(t, l.X1(), p.Breakpoints.X1)
	assert.InDelta(t, 1.0/5.5, p.Breakpoints.W, 1e-15)
}
