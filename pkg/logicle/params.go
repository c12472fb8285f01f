package logicle

// Coefficients are the constants of the biexponential
//
//	inverse(x) = a·exp(b·x) − c·exp(−d·x) + f    (x ≥ x1)
type Coefficients struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	F float64 `json:"f"`
}

// Breakpoints are the positions bounding the quasi linear region.
// X1 is the position of the raw value 0.
type Breakpoints struct {
	W  float64 `json:"w"`
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
}

// Params is a read-only snapshot of a transform, for diagnostics and
// serialization by callers.
type Params struct {
	T            float64      `json:"T"`
	W            float64      `json:"W"`
	M            float64      `json:"M"`
	A            float64      `json:"A"`
	Bins         int          `json:"bins,omitempty"`
	Coefficients Coefficients `json:"coefficients"`
	Breakpoints  Breakpoints  `json:"breakpoints"`
	DynamicRange float64      `json:"dynamic_range"`
}

func (p *params) coefficients() Coefficients {
	return Coefficients{A: p.a, B: p.b, C: p.c, D: p.d, F: p.f}
}

func (p *params) snapshot(bins int) Params {
	return Params{
		T:            p.T,
		W:            p.W,
		M:            p.M,
		A:            p.A,
		Bins:         bins,
		Coefficients: p.coefficients(),
		Breakpoints:  Breakpoints{W: p.w, X0: p.x0, X1: p.x1, X2: p.x2},
		DynamicRange: p.dynamicRange(),
	}
}
