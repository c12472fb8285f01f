package logicle

import "math"

// series evaluates the Taylor expansion of the biexponential around x1.
func (p *params) series(scale float64) float64 {
	x := scale - p.x1
	// taylor[1] is zero, so it is skipped
	sum := p.taylor[taylorLength-1] * x
	for i := taylorLength - 2; i >= 2; i-- {
		sum = (sum + p.taylor[i]) * x
	}
	return (sum*x + p.taylor[0]) * x
}

func (p *params) inverse(scale float64) float64 {
	// reflect negative scale regions
	negative := scale < p.x1
	if negative {
		scale = 2*p.x1 - scale
	}

	var inverse float64
	if scale < p.xTaylor {
		inverse = p.series(scale)
	} else {
		// this form has better round off behavior
		inverse = (p.a*math.Exp(p.b*scale) + p.f) - p.c/math.Exp(p.d*scale)
	}

	if negative {
		return -inverse
	}
	return inverse
}

func (p *params) scale(value float64) (float64, error) {
	if value == 0 {
		return p.x1, nil
	}

	negative := value < 0
	if negative {
		value = -value
	}

	// initial guess
	var x float64
	if value < p.f {
		x = p.x1 + value/p.taylor[0]
	} else {
		x = math.Log(value/p.a) / p.b
	}

	// double precision unless in the extended range
	tolerance := 3 * epsilon
	if x > 1 {
		tolerance = 3 * x * epsilon
	}

	for i := 0; i < scaleIterations; i++ {
		ae2bx := p.a * math.Exp(p.b*x)
		ce2mdx := p.c / math.Exp(p.d*x)
		var y float64
		if x < p.xTaylor {
			y = p.series(x) - value
		} else {
			y = (ae2bx + p.f) - (ce2mdx + value)
		}
		abe2bx := p.b * ae2bx
		cde2mdx := p.d * ce2mdx
		dy := abe2bx + cde2mdx
		ddy := p.b*abe2bx - p.d*cde2mdx

		// Halley's method
		delta := y / (dy * (1 - y*ddy/(2*dy*dy)))
		x -= delta

		if math.Abs(delta) < tolerance {
			if negative {
				return 2*p.x1 - x, nil
			}
			return x, nil
		}
	}

	return 0, didNotConverge("scale() didn't converge")
}

func (p *params) slope(scale float64) float64 {
	if scale < p.x1 {
		scale = 2*p.x1 - scale
	}
	return p.a*p.b*math.Exp(p.b*scale) + p.c*p.d/math.Exp(p.d*scale)
}

func (p *params) dynamicRange() float64 {
	return p.slope(1) / p.slope(p.x1)
}

// Scale returns the position of the raw value.
func (l *Logicle) Scale(value float64) (float64, error) {
	return l.p.scale(value)
}

// Inverse returns the raw value at the given position. The returned error is
// always nil; it is there to satisfy the Scaler interface.
func (l *Logicle) Inverse(scale float64) (float64, error) {
	return l.p.inverse(scale), nil
}

// DynamicRange returns the ratio of the slope at position 1 to the slope at X1.
func (l *Logicle) DynamicRange() float64 {
	return l.p.dynamicRange()
}

// Bounds returns the raw values at the bottom and the top of the display.
func (l *Logicle) Bounds() (lo, hi float64) {
	return l.p.inverse(0), l.p.inverse(1 - epsilon)
}
