package logicle

import "math"

const (
	// DefaultDecades is the default value of M.
	DefaultDecades = 4.5
	// DefaultBins is the default lookup table size of the accelerated transform.
	DefaultBins = 1 << 12

	ln10    = math.Ln10
	epsilon = 0x1p-52

	taylorLength = 16

	solveIterations = 20
	scaleIterations = 10
)
