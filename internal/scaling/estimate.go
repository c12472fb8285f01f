package scaling

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrNoData = errors.New("scaling: no data")

// EstimateTop returns the largest data value, to be used as T.
func EstimateTop(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrNoData
	}

	top := floats.Max(data)
	if !(top > 0) {
		return 0, fmt.Errorf("scaling: logicle range must be > 0, data maximum is %g", top)
	}
	return top, nil
}

// EstimateWidth chooses W so that the r quantile of the negative data sits at
// the bottom of the linear region:
//
//	W = (M − log10(T/|q|)) / 2
//
// q is the r quantile of the negative values, linearly interpolated between
// order statistics at position (n−1)·r (Hyndman–Fan type 7). When there is no
// usable negative data FallbackWidth is returned.
func EstimateWidth(data []float64, top, decades, r float64) (float64, error) {
	if r <= 0 || r >= 1 {
		return 0, fmt.Errorf("scaling: r must be between 0 and 1, got %g", r)
	}

	var negative []float64
	for _, v := range data {
		if v < 0 {
			negative = append(negative, v)
		}
	}
	if len(negative) == 0 {
		log.Warn().Int("samples", len(data)).Msg("data has no negative values, try a log scale instead")
		return FallbackWidth, nil
	}

	slices.Sort(negative)
	q := quantile(negative, r)

	w := (decades - math.Log10(top/math.Abs(q))) / 2
	if w <= 0 {
		log.Warn().Float64("quantile", q).Float64("W", w).Msg("data does not have enough negative values, try a log scale instead")
		return FallbackWidth, nil
	}

	log.Debug().Float64("quantile", q).Float64("W", w).Msg("estimated logicle width")
	return w, nil
}

// quantile returns the type 7 r quantile of sorted. stat.LinInterp places
// sample i at cumulative weight (i+1)/n, so r is shifted onto that grid.
func quantile(sorted []float64, r float64) float64 {
	n := float64(len(sorted))
	return stat.Quantile(((n-1)*r+1)/n, stat.LinInterp, sorted, nil)
}
