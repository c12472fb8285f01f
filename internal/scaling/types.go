package scaling

// Params describe how a scale is built from data.
type Params struct {
	T    float64 // top of scale; zero means the data maximum
	W    float64 // linear width in decades; AutoWidth means estimate
	M    float64 // decades
	A    float64 // additional negative decades
	R    float64 // quantile of the negative data used to estimate W
	Bins int     // lookup table size; zero means no table
}
