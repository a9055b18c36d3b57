// SPDX-License-Identifier: MIT

// Package config loads the lusolve YAML configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors lusolve.yaml. Command-line flags override it field by field.
type Config struct {
	Solver    SolverConfig    `yaml:"solver"`
	Generator GeneratorConfig `yaml:"generator"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
}

type SolverConfig struct {
	ConditionThreshold float64 `yaml:"condition_threshold"` // κ₁ limit, >= 1
	PivotTolerance     float64 `yaml:"pivot_tolerance"`     // 0 = n·ε
}

type GeneratorConfig struct {
	Min  int   `yaml:"min"`
	Max  int   `yaml:"max"`
	Seed int64 `yaml:"seed"` // 0 = derive from the clock
}

type OutputConfig struct {
	Precision    int     `yaml:"precision"`
	ShowFactors  bool    `yaml:"show_factors"`
	PlotWidthCM  float64 `yaml:"plot_width_cm"`
	PlotHeightCM float64 `yaml:"plot_height_cm"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// DefaultConfig returns the values written on first run.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			ConditionThreshold: 1e10,
		},
		Generator: GeneratorConfig{Min: 1, Max: 9},
		Output: OutputConfig{
			Precision:    2,
			PlotWidthCM:  20,
			PlotHeightCM: 15,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Validate reports the first field outside its domain.
func (c Config) Validate() error {
	s := c.Solver
	if math.IsNaN(s.ConditionThreshold) || math.IsInf(s.ConditionThreshold, 0) || s.ConditionThreshold < 1 {
		return fmt.Errorf("solver.condition_threshold=%v, want finite >= 1: %w", s.ConditionThreshold, ErrInvalid)
	}
	if math.IsNaN(s.PivotTolerance) || s.PivotTolerance < 0 || s.PivotTolerance >= 1 {
		return fmt.Errorf("solver.pivot_tolerance=%v, want [0, 1): %w", s.PivotTolerance, ErrInvalid)
	}
	if c.Generator.Min > c.Generator.Max {
		return fmt.Errorf("generator.min=%d > generator.max=%d: %w", c.Generator.Min, c.Generator.Max, ErrInvalid)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 15 {
		return fmt.Errorf("output.precision=%d, want 0..15: %w", c.Output.Precision, ErrInvalid)
	}
	if c.Output.PlotWidthCM <= 0 || c.Output.PlotHeightCM <= 0 {
		return fmt.Errorf("output plot size %vx%v cm: %w", c.Output.PlotWidthCM, c.Output.PlotHeightCM, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}
