// Package config defines environment configuration structs and loaders.
package config

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"

	"github.com/tensorplex-labs/logicle/internal/scaling"
)

type AppConfig struct {
	LogicleEnvConfig
	Environment string `env:"ENVIRONMENT, default=prod"`
}

// LogicleEnvConfig holds the shape of the scale.
type LogicleEnvConfig struct {
	Top      float64 `env:"LOGICLE_T, default=262144"`
	Width    float64 `env:"LOGICLE_W, default=0.5"`
	Decades  float64 `env:"LOGICLE_M, default=4.5"`
	Negative float64 `env:"LOGICLE_A, default=0"`
	Bins     int     `env:"LOGICLE_BINS, default=4096"`
	Quantile float64 `env:"LOGICLE_R, default=0.05"`
}

func LoadConfig(ctx context.Context) (*AppConfig, error) {
	return LoadConfigWith(ctx, envconfig.OsLookuper())
}

// LoadConfigWith reads the configuration through lookuper.
func LoadConfigWith(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, errors.Wrap(err, "process logicle env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values the scale constructors do not check themselves.
func (c *LogicleEnvConfig) Validate() error {
	if c.Bins < 0 {
		return errors.Errorf("LOGICLE_BINS must not be negative, got %d", c.Bins)
	}
	if c.Quantile <= 0 || c.Quantile >= 1 {
		return errors.Errorf("LOGICLE_R must be between 0 and 1, got %g", c.Quantile)
	}
	return nil
}

// ScalingParams converts the configuration for the scaling pipeline.
func (c *LogicleEnvConfig) ScalingParams() scaling.Params {
	return scaling.Params{
		T:    c.Top,
		W:    c.Width,
		M:    c.Decades,
		A:    c.Negative,
		R:    c.Quantile,
		Bins: c.Bins,
	}
}
