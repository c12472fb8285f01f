package scaling

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ViewLimits widens [dataMin, dataMax] to the nearest tenth of a decade.
func ViewLimits(dataMin, dataMax float64) (vmin, vmax float64) {
	if dataMax < dataMin {
		dataMin, dataMax = dataMax, dataMin
	}

	if dataMax > 0 {
		unit := math.Pow10(int(math.Ceil(math.Log10(dataMax))) - 1)
		vmax = math.Ceil(dataMax/unit) * unit
	} else {
		vmax = 100
	}

	if dataMin >= 0 {
		vmin = 0
	} else {
		unit := math.Pow10(int(math.Ceil(math.Log10(-dataMin))) - 1)
		vmin = math.Floor(dataMin/unit) * unit
	}

	return vmin, vmax
}

// MajorTicks returns a tick at every decade of the view, zero and the
// negative decades included. top and decades are the T and M of the scale.
func MajorTicks(vmin, vmax, top, decades float64) []float64 {
	vmin, vmax = ViewLimits(vmin, vmax)
	return decadeTicks(vmin, vmax, top, decades, 1)
}

// MinorTicks returns a tick at every tenth of a decade.
func MinorTicks(vmin, vmax, top, decades float64) []float64 {
	return decadeTicks(vmin, vmax, top, decades, 0.1)
}

func decadeTicks(vmin, vmax, top, decades, step float64) []float64 {
	maxDecade := math.Ceil(math.Log10(vmax * 1.1))
	minPositiveDecade := math.Floor(math.Log10(top) - decades)

	var ticks []float64
	if vmin < 0 {
		maxNegativeDecade := math.Floor(math.Log10(-vmin))
		for _, x := range arange(maxNegativeDecade, 1, -step) {
			ticks = append(ticks, -math.Pow(10, x))
		}
		ticks = append(ticks, 0)
	} else if vmin == 0 {
		ticks = append(ticks, 0)
	}

	for _, x := range arange(minPositiveDecade, maxDecade, step) {
		ticks = append(ticks, math.Pow(10, x))
	}
	return ticks
}

// arange returns start, start+step, ... up to but excluding stop.
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop-start)/step - 1e-9))
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	return floats.Span(make([]float64, n), start, start+float64(n-1)*step)
}
