package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/tui"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"handrank.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	NoColor  bool   `help:"Disable coloured output"`

	out    io.Writer `kong:"-"`
	errOut io.Writer `kong:"-"`
}

func (g *Globals) stdout() io.Writer {
	if g.out != nil {
		return g.out
	}
	return os.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.errOut != nil {
		return g.errOut
	}
	return os.Stderr
}

// setup loads configuration, applies flag overrides and returns a logger
// configured from the result.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.NoColor {
		off := false
		cfg.Display.Color = &off
	}
	tui.SetColor(cfg.ColorEnabled())

	logger := newLogger(g.stderr(), cfg.LogLevel)
	logger.Debug("Configuration loaded", "file", g.Config, "level", cfg.LogLevel)
	return cfg, logger, nil
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
		logger.Warn("Unknown log level, using info", "level", level)
	}
	return logger
}
