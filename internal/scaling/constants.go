package scaling

import "github.com/tensorplex-labs/logicle/pkg/logicle"

const (
	// AutoWidth asks the pipeline to estimate W from the data.
	AutoWidth = -1.0

	// FallbackWidth is used when the data has too little negative signal.
	FallbackWidth = 0.5
)

func DefaultParams() Params {
	return Params{
		T:    0,
		W:    AutoWidth,
		M:    logicle.DefaultDecades,
		A:    0,
		R:    0.05,
		Bins: logicle.DefaultBins,
	}
}
