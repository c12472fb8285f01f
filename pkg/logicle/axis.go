package logicle

import "math"

// axisLabels enumerates decade labels between the raw value bottom and T.
// The result has exactly one zero; every negative label mirrors a positive one.
func (p *params) axisLabels(bottom float64) []float64 {
	// decades in the positive logarithmic region
	pd := p.M - 2*p.W
	// smallest power of ten in that region
	log10x := math.Ceil(math.Log(p.T)/ln10 - pd)
	x := math.Exp(ln10 * log10x)

	var np int
	if x > p.T {
		x = p.T
		np = 1
	} else {
		np = int(math.Floor(math.Log(p.T)/ln10-log10x)) + 1
	}

	var nn int
	switch {
	case x > -bottom:
		nn = 0
	case x == p.T:
		nn = 1
	default:
		nn = int(math.Floor(math.Log(-bottom)/ln10-log10x)) + 1
	}

	label := make([]float64, nn+np+1)
	label[nn] = 0
	for i := 1; i <= nn; i++ {
		label[nn-i] = -x
		label[nn+i] = x
		x *= 10
	}
	for i := nn + 1; i <= np; i++ {
		label[nn+i] = x
		x *= 10
	}
	return label
}

// AxisLabels returns decade aligned tick values for the raw data axis, in
// increasing order.
func (l *Logicle) AxisLabels() []float64 {
	return l.p.axisLabels(l.p.inverse(0))
}
