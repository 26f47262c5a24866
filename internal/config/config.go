// Package config handles YAML configuration parsing.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"poissim/internal/sim"
	"poissim/internal/stats"
)

// Config is the root configuration structure.
type Config struct {
	Simulation SimulationConfig  `yaml:"simulation"`
	Output     OutputConfig      `yaml:"output,omitempty"`
	Tolerances *stats.Tolerances `yaml:"tolerances,omitempty"`
}

// SimulationConfig holds the simulation parameters.
type SimulationConfig struct {
	TimeHorizon   float64 `yaml:"time_horizon"`
	Rate          float64 `yaml:"rate"`
	Subintervals  int     `yaml:"subintervals"`
	Trials        int     `yaml:"trials"`
	Seed          uint64  `yaml:"seed"`
	CountStrategy string  `yaml:"count_strategy,omitempty"`
}

// Params converts the simulation section to sim.Params.
func (s SimulationConfig) Params() sim.Params {
	return sim.Params{
		T:      s.TimeHorizon,
		Lambda: s.Rate,
		N:      s.Subintervals,
		Trials: s.Trials,
		Seed:   s.Seed,
	}
}

// Strategy parses the configured count strategy.
func (s SimulationConfig) Strategy() (sim.CountStrategy, error) {
	return sim.ParseCountStrategy(s.CountStrategy)
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	SummaryFile string      `yaml:"summary_file,omitempty"`
	Plots       PlotsConfig `yaml:"plots,omitempty"`
}

// PlotsConfig controls the optional comparison plots.
type PlotsConfig struct {
	Enabled           bool   `yaml:"enabled"`
	CountsFile        string `yaml:"counts_file,omitempty"`
	InterarrivalsFile string `yaml:"interarrivals_file,omitempty"`
}

// Default returns the built-in configuration. The values match the reference
// experiment, so the binary produces a meaningful run with no config file.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TimeHorizon:   1.0,
			Rate:          3.5,
			Subintervals:  5000,
			Trials:        20000,
			Seed:          12345,
			CountStrategy: string(sim.CountDirect),
		},
		Output: OutputConfig{
			SummaryFile: "poisson_approx_summary.json",
			Plots: PlotsConfig{
				Enabled:           false,
				CountsFile:        "counts_vs_poisson.png",
				InterarrivalsFile: "interarrivals_vs_exponential.png",
			},
		},
	}
}

// Load reads and parses a YAML configuration file. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
