// Package scaling builds logicle scales from data and computes axis ticks for them
package scaling

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/logicle/internal/utils/logger"
	"github.com/tensorplex-labs/logicle/pkg/logicle"
)

type Pipeline struct {
	Params Params
}

type PipelineOption func(*Pipeline)

func WithTop(top float64) PipelineOption {
	return func(p *Pipeline) {
		p.Params.T = top
	}
}

func WithWidth(width float64) PipelineOption {
	return func(p *Pipeline) {
		p.Params.W = width
	}
}

func WithDecades(decades float64) PipelineOption {
	return func(p *Pipeline) {
		p.Params.M = decades
	}
}

func WithNegativeDecades(negative float64) PipelineOption {
	return func(p *Pipeline) {
		p.Params.A = negative
	}
}

func WithQuantile(r float64) PipelineOption {
	return func(p *Pipeline) {
		p.Params.R = r
	}
}

func WithBins(bins int) PipelineOption {
	return func(p *Pipeline) {
		p.Params.Bins = bins
	}
}

func WithParams(params Params) PipelineOption {
	return func(p *Pipeline) {
		p.Params = params
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		Params: DefaultParams(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Build fills in T and W from data where they are not fixed and constructs
// the scale.
func (p *Pipeline) Build(data []float64) (logicle.Scaler, error) {
	params := p.Params

	if params.T == 0 {
		top, err := EstimateTop(data)
		if err != nil {
			return nil, err
		}
		params.T = top
	}

	if params.W == AutoWidth {
		w, err := EstimateWidth(data, params.T, params.M, params.R)
		if err != nil {
			return nil, err
		}
		params.W = w
	}

	logger.Sugar().Infow("Building logicle scale", "params", params, "samples", len(data))

	s, err := logicle.NewScaler(params.T, params.W,
		logicle.WithDecades(params.M),
		logicle.WithNegativeDecades(params.A),
		logicle.WithBins(params.Bins),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to build logicle scale")
		return nil, fmt.Errorf("build logicle scale: %w", err)
	}
	return s, nil
}
