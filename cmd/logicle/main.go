package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/logicle/internal/config"
	"github.com/tensorplex-labs/logicle/internal/scaling"
	"github.com/tensorplex-labs/logicle/internal/utils/logger"
	"github.com/tensorplex-labs/logicle/pkg/logicle"
)

var clip = flag.Bool("clip", false, "clamp raw values into the display range before scaling")

const usage = `usage: logicle [-debug|-trace|-info] [-clip] <command> [args...]

commands:
  params             print the derived parameters
  labels             print the axis labels
  ticks <min> <max>  print major and minor ticks for a data range
  scale <value>...   map raw values to display positions
  inverse <pos>...   map display positions to raw values
  estimate <v>...    estimate T and W from the given data

The scale shape is read from LOGICLE_T, LOGICLE_W, LOGICLE_M, LOGICLE_A,
LOGICLE_BINS and LOGICLE_R.
`

func main() {
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage) }
	logger.Init()
	logicle.SetLogger(log.Logger)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(context.Background())
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("Failed to load configuration")
	}

	out, err := run(cfg, args[0], args[1:])
	if err != nil {
		log.Fatal().Stack().Err(err).Str("command", args[0]).Msg("Command failed")
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode output")
	}
	fmt.Println(string(data))
}

// mapping is one converted value. In is kept as text so that non-finite
// inputs still encode as JSON.
type mapping struct {
	In    string  `json:"in"`
	Out   float64 `json:"out"`
	Error string  `json:"error,omitempty"`
}

type ticks struct {
	Major []float64 `json:"major"`
	Minor []float64 `json:"minor"`
}

func run(cfg *config.AppConfig, command string, args []string) (any, error) {
	if command == "estimate" {
		data, err := parseFloats(args)
		if err != nil {
			return nil, err
		}
		params := cfg.ScalingParams()
		params.T = 0
		params.W = scaling.AutoWidth
		s, err := scaling.NewPipeline(scaling.WithParams(params)).Build(data)
		if err != nil {
			return nil, err
		}
		return s.Params(), nil
	}

	s, err := scaling.NewPipeline(scaling.WithParams(cfg.ScalingParams())).Build(nil)
	if err != nil {
		return nil, err
	}

	switch command {
	case "params":
		return s.Params(), nil

	case "labels":
		return s.AxisLabels(), nil

	case "ticks":
		if len(args) != 2 {
			return nil, errors.New("ticks needs <min> <max>")
		}
		bounds, err := parseFloats(args)
		if err != nil {
			return nil, err
		}
		p := s.Params()
		return ticks{
			Major: scaling.MajorTicks(bounds[0], bounds[1], p.T, p.M),
			Minor: scaling.MinorTicks(bounds[0], bounds[1], p.T, p.M),
		}, nil

	case "scale", "inverse":
		values, err := parseFloats(args)
		if err != nil {
			return nil, err
		}
		result := make([]mapping, len(values))
		for i, v := range values {
			result[i] = apply(s, command, v)
		}
		return result, nil
	}

	return nil, errors.Errorf("unknown command %q", command)
}

func apply(s logicle.Scaler, command string, v float64) mapping {
	var (
		out float64
		err error
	)
	if command == "scale" {
		in := v
		if *clip {
			in = logicle.Clip(s, v)
		}
		out, err = s.Scale(in)
	} else {
		out, err = s.Inverse(v)
	}

	in := strconv.FormatFloat(v, 'g', -1, 64)
	if err != nil {
		log.Warn().Err(err).Str("kind", logicle.KindOf(err).String()).Float64("value", v).Msgf("%s failed", command)
		return mapping{In: in, Error: err.Error()}
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		log.Warn().Float64("value", v).Float64("result", out).Msgf("%s is not finite", command)
		return mapping{In: in, Error: fmt.Sprintf("%s of %s is not finite", command, in)}
	}
	log.Debug().Float64("in", v).Float64("out", out).Msg(command)
	return mapping{In: in, Out: out}
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}
