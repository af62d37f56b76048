// Package config loads the optional HCL configuration file for poker-hands.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when no path is given.
const DefaultFile = "poker-hands.hcl"

// MaxWorkers bounds the batch worker count.
const MaxWorkers = 256

// Config represents the complete tool configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Output   *OutputSettings `hcl:"output,block"`
	Batch    *BatchSettings  `hcl:"batch,block"`
}

// OutputSettings controls how results are printed
type OutputSettings struct {
	// Color is one of "auto", "always" or "never".
	Color string `hcl:"color,optional"`
	// SplitTies reports fully tied showdowns as split rather than as a win
	// for player A. The evaluated hand is the same either way.
	SplitTies bool `hcl:"split_ties,optional"`
}

// BatchSettings configures batch evaluation
type BatchSettings struct {
	Workers int    `hcl:"workers,optional"`
	Report  string `hcl:"report,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file is not an
// error; defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Batch == nil {
		c.Batch = &BatchSettings{}
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = runtime.NumCPU()
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output: invalid color mode: %q", c.Output.Color)
	}

	if c.Batch.Workers < 1 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("batch: workers must be between 1 and %d, got %d", MaxWorkers, c.Batch.Workers)
	}

	return nil
}
