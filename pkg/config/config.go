// Package config loads the YAML run configuration and the .env file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config is the full run configuration. Zero fields take the defaults from Default.
type Config struct {
	Input      InputConfig      `yaml:"input" json:"input"`
	Output     OutputConfig     `yaml:"output" json:"output"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
	Validation ValidationConfig `yaml:"validation" json:"validation"`
	Batch      BatchConfig      `yaml:"batch" json:"batch"`
	API        APIConfig        `yaml:"api" json:"api"`
	// LineItems is an optional YAML file of extra label aliases.
	LineItems string `yaml:"line_items" json:"line_items"`
}

// InputConfig selects where observations come from.
type InputConfig struct {
	Source              string  `yaml:"source" json:"source"` // "files" or "postgres"
	Dir                 string  `yaml:"dir" json:"dir"`
	ObservationsPattern string  `yaml:"observations_pattern" json:"observations_pattern"`
	MarketCapPattern    string  `yaml:"market_cap_pattern" json:"market_cap_pattern"`
	MarketCapScale      float64 `yaml:"market_cap_scale" json:"market_cap_scale"`
}

// OutputConfig lists the sinks every computed entity is written to.
type OutputConfig struct {
	Dir   string   `yaml:"dir" json:"dir"`
	Sinks []string `yaml:"sinks" json:"sinks"` // any of "csv", "xlsx", "postgres"
}

type LoggingConfig struct {
	Level  string   `yaml:"level" json:"level"`
	Output []string `yaml:"output" json:"output"` // "console", "file"
	File   string   `yaml:"file" json:"file"`
}

// ValidationConfig holds the relative tolerances of the integrity checks.
type ValidationConfig struct {
	BalanceTolerance  float64 `yaml:"balance_tolerance" json:"balance_tolerance"`
	CashFlowTolerance float64 `yaml:"cash_flow_tolerance" json:"cash_flow_tolerance"`
}

type BatchConfig struct {
	Entities    []string `yaml:"entities" json:"entities"`
	Parallelism int      `yaml:"parallelism" json:"parallelism"`
	Schedule    string   `yaml:"schedule" json:"schedule"`
}

type APIConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Source:         "files",
			Dir:            "outputs",
			MarketCapScale: 1e8,
		},
		Output: OutputConfig{
			Dir:   "outputs/analysis",
			Sinks: []string{"csv"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"console"},
			File:   "logs/fin_metrics.log",
		},
		Validation: ValidationConfig{
			BalanceTolerance:  0.01,
			CashFlowTolerance: 0.01,
		},
		Batch: BatchConfig{
			Parallelism: runtime.NumCPU(),
		},
		API: APIConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults. It also loads
// .env into the process environment when present so DATABASE_URL can live there.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults refills fields a file explicitly zeroed.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Input.Source == "" {
		c.Input.Source = def.Input.Source
	}
	if c.Input.MarketCapScale <= 0 {
		c.Input.MarketCapScale = def.Input.MarketCapScale
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if len(c.Output.Sinks) == 0 {
		c.Output.Sinks = def.Output.Sinks
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if len(c.Logging.Output) == 0 {
		c.Logging.Output = def.Logging.Output
	}
	if c.Batch.Parallelism <= 0 {
		c.Batch.Parallelism = def.Batch.Parallelism
	}
	if c.API.Addr == "" {
		c.API.Addr = def.API.Addr
	}
}

// Validate rejects unknown source and sink names.
func (c *Config) Validate() error {
	switch c.Input.Source {
	case "files", "postgres":
	default:
		return fmt.Errorf("config: unknown input source %q", c.Input.Source)
	}
	for _, s := range c.Output.Sinks {
		switch s {
		case "csv", "xlsx", "postgres":
		default:
			return fmt.Errorf("config: unknown sink %q", s)
		}
	}
	if c.Validation.BalanceTolerance < 0 || c.Validation.CashFlowTolerance < 0 {
		return fmt.Errorf("config: negative validation tolerance")
	}
	return nil
}

// UsesPostgres reports whether any part of the run needs a database pool.
func (c *Config) UsesPostgres() bool {
	if c.Input.Source == "postgres" {
		return true
	}
	for _, s := range c.Output.Sinks {
		if s == "postgres" {
			return true
		}
	}
	return false
}
