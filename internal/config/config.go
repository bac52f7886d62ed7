// Package config loads the handrank HCL configuration file.
package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Verification modes.
const (
	ModeExhaustive = "exhaustive"
	ModeSample     = "sample"
)

// Config represents the complete configuration file
type Config struct {
	LogLevel string           `hcl:"log_level,optional"`
	Verify   *VerifySettings  `hcl:"verify,block"`
	Display  *DisplaySettings `hcl:"display,block"`
}

// VerifySettings controls cross-validation runs.
type VerifySettings struct {
	Mode             string `hcl:"mode,optional"`
	Workers          int    `hcl:"workers,optional"`
	Samples          int    `hcl:"samples,optional"`
	Seed             int64  `hcl:"seed,optional"`
	MaxMismatches    int    `hcl:"max_mismatches,optional"`
	ProgressInterval string `hcl:"progress_interval,optional"`
	Reference        bool   `hcl:"reference,optional"`
}

// DisplaySettings controls terminal output.
type DisplaySettings struct {
	Color *bool `hcl:"color,optional"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	color := true
	return &Config{
		LogLevel: "info",
		Verify: &VerifySettings{
			Mode:             ModeExhaustive,
			Workers:          runtime.GOMAXPROCS(0),
			Samples:          1_000_000,
			MaxMismatches:    20,
			ProgressInterval: "1s",
		},
		Display: &DisplaySettings{Color: &color},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; values absent from the file keep their defaults.
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}

	if c.Verify == nil {
		c.Verify = def.Verify
	} else {
		v := c.Verify
		if v.Mode == "" {
			v.Mode = def.Verify.Mode
		}
		if v.Workers == 0 {
			v.Workers = def.Verify.Workers
		}
		if v.Samples == 0 {
			v.Samples = def.Verify.Samples
		}
		if v.MaxMismatches == 0 {
			v.MaxMismatches = def.Verify.MaxMismatches
		}
		if v.ProgressInterval == "" {
			v.ProgressInterval = def.Verify.ProgressInterval
		}
	}

	if c.Display == nil {
		c.Display = def.Display
	} else if c.Display.Color == nil {
		c.Display.Color = def.Display.Color
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Verify.Mode {
	case ModeExhaustive, ModeSample:
	default:
		return fmt.Errorf("verify.mode must be %q or %q, got %q", ModeExhaustive, ModeSample, c.Verify.Mode)
	}
	if c.Verify.Workers < 1 {
		return fmt.Errorf("verify.workers must be positive, got %d", c.Verify.Workers)
	}
	if c.Verify.Samples < 1 {
		return fmt.Errorf("verify.samples must be positive, got %d", c.Verify.Samples)
	}
	if _, err := c.Verify.Interval(); err != nil {
		return err
	}
	return nil
}

// Interval parses ProgressInterval.
func (v *VerifySettings) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(v.ProgressInterval)
	if err != nil {
		return 0, fmt.Errorf("verify.progress_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("verify.progress_interval must be positive, got %s", d)
	}
	return d, nil
}

// ColorEnabled reports whether styled output is wanted.
func (c *Config) ColorEnabled() bool {
	return c.Display == nil || c.Display.Color == nil || *c.Display.Color
}
