// Package logicle implements the logicle (biexponential) data scale together
// with a lookup table accelerated variant of it.
//
// The scale maps raw values, which may be negative and may span many decades,
// onto display positions. Near zero the mapping is almost linear, far from
// zero it is logarithmic. Position 1 corresponds to the raw value T and the
// raw value 0 is mapped to the breakpoint X1.
//
// References:
//   - Parks DR, Roederer M, Moore WA. A new "Logicle" display method avoids
//     deceptive effects of logarithmic scaling for low signals and
//     compensated data. Cytometry A. 2006;69(6):541-51.
//   - Moore WA, Parks DR. Update for the logicle data scale including
//     operational code implementations. Cytometry A. 2012;81(4):273-7.
package logicle

import "math"

// params holds the user parameters and every constant derived from them.
// It is a plain value: copying it copies the Taylor coefficients too.
type params struct {
	T, W, M, A float64

	a, b, c, d, f float64
	w, x0, x1, x2 float64

	xTaylor float64
	taylor  [taylorLength]float64
}

// Logicle is the unaccelerated transform. The zero value is not usable,
// construct it with New. A Logicle is immutable and safe for concurrent use.
type Logicle struct {
	p params
}

// New returns the logicle transform with top of scale T, linear width W
// and M decades, A of which are additional negative decades.
func New(T, W, M, A float64) (*Logicle, error) {
	return newLogicle(T, W, M, A, 0)
}

// newLogicle is New with an optional bin count. When bins > 0, A is adjusted
// slightly so that the raw value 0 falls on a bin boundary.
func newLogicle(T, W, M, A float64, bins int) (*Logicle, error) {
	p, err := initialize(T, W, M, A, bins)
	if err != nil {
		return nil, err
	}
	return &Logicle{p: p}, nil
}

func validate(T, W, M, A float64) error {
	for _, v := range []float64{T, W, M, A} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return illegalParameter("parameters must be finite")
		}
	}
	if T <= 0 {
		return illegalParameter("T is not positive")
	}
	if W < 0 {
		return illegalParameter("W is negative")
	}
	if M <= 0 {
		return illegalParameter("M is not positive")
	}
	if 2*W > M {
		return illegalParameter("W is too large")
	}
	if -A > W || A+W > M-W {
		return illegalParameter("A is too large")
	}
	return nil
}

func initialize(T, W, M, A float64, bins int) (params, error) {
	if err := validate(T, W, M, A); err != nil {
		return params{}, err
	}

	// put zero on a bin boundary
	if bins > 0 {
		zero := (W + A) / (M + A)
		zero = math.Floor(zero*float64(bins)+.5) / float64(bins)
		A = (M*zero - W) / (1 - zero)
		if !(-A <= W && A+W <= M-W) {
			return params{}, illegalParameter("bins is too small to align zero")
		}
	}

	p := params{T: T, W: W, M: M, A: A}

	p.w = W / (M + A)
	p.x2 = A / (M + A)
	p.x1 = p.x2 + p.w
	p.x0 = p.x2 + 2*p.w
	p.b = (M + A) * ln10

	d, err := solve(p.b, p.w)
	if err != nil {
		return params{}, err
	}
	p.d = d

	cOverA := math.Exp(p.x0 * (p.b + p.d))
	mfOverA := math.Exp(p.b*p.x1) - cOverA/math.Exp(p.d*p.x1)
	p.a = T / ((math.Exp(p.b) - mfOverA) - cOverA/math.Exp(p.d))
	p.c = cOverA * p.a
	p.f = -mfOverA * p.a

	// The closed form loses precision close to x1, use a series there.
	p.xTaylor = p.x1 + p.w/4
	posCoef := p.a * math.Exp(p.b*p.x1)
	negCoef := -p.c / math.Exp(p.d*p.x1)
	for i := 0; i < taylorLength; i++ {
		posCoef *= p.b / float64(i+1)
		negCoef *= -p.d / float64(i+1)
		p.taylor[i] = posCoef + negCoef
	}
	// exact by construction
	p.taylor[1] = 0

	logger().Debug().
		Float64("T", p.T).Float64("W", p.W).Float64("M", p.M).Float64("A", p.A).
		Float64("b", p.b).Float64("d", p.d).Float64("x1", p.x1).Int("bins", bins).
		Msg("initialized logicle parameters")

	return p, nil
}

// Clone returns an independent copy of l.
func (l *Logicle) Clone() *Logicle {
	c := *l
	return &c
}

func (l *Logicle) T() float64 { return l.p.T }
func (l *Logicle) W() float64 { return l.p.W }
func (l *Logicle) M() float64 { return l.p.M }
func (l *Logicle) A() float64 { return l.p.A }

func (l *Logicle) X0() float64 { return l.p.x0 }
func (l *Logicle) X1() float64 { return l.p.x1 }
func (l *Logicle) X2() float64 { return l.p.x2 }

// Coefficients returns the biexponential constants a, b, c, d and f.
func (l *Logicle) Coefficients() Coefficients { return l.p.coefficients() }

// Params returns a snapshot of all constants of the transform.
func (l *Logicle) Params() Params { return l.p.snapshot(0) }
