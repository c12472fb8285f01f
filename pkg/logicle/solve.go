package logicle

import "math"

// solve finds the positive root d of
//
//	2·ln(d) + w·d − 2·ln(b) + w·b = 0
//
// using Newton's method safeguarded by bisection on the bracket [0, b].
func solve(b, w float64) (float64, error) {
	// w == 0 is the arcsinh case
	if w == 0 {
		return b, nil
	}

	// precision is the same as that of b
	tolerance := 2 * b * epsilon

	dLo := 0.0
	dHi := b

	// bisection first step
	d := (dLo + dHi) / 2
	lastDelta := dHi - dLo
	var delta float64

	fB := -2*math.Log(b) + w*b
	f := 2*math.Log(d) + w*d + fB
	lastF := math.NaN()

	for i := 1; i < solveIterations; i++ {
		df := 2/d + w

		if ((d-dHi)*df-f)*((d-dLo)*df-f) >= 0 || math.Abs(1.9*f) > math.Abs(lastDelta*df) {
			// Newton would leave the bracket or is too slow
			delta = (dHi - dLo) / 2
			d = dLo + delta
			if d == dLo {
				return d, nil
			}
		} else {
			delta = f / df
			t := d
			d -= delta
			if d == t {
				return d, nil
			}
		}
		if math.Abs(delta) < tolerance {
			return d, nil
		}
		lastDelta = delta

		f = 2*math.Log(d) + w*d + fB
		if f == 0 || f == lastF {
			return d, nil
		}
		lastF = f

		if f < 0 {
			dLo = d
		} else {
			dHi = d
		}
	}

	return 0, didNotConverge("exceeded maximum iterations in solve()")
}
