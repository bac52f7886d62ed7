package main

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/handrank/internal/config"
	"github.com/lox/handrank/internal/fileutil"
	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/internal/tui"
	"github.com/lox/handrank/internal/verify"
)

// VerifyCmd cross-checks the two evaluators. Unset flags fall back to the
// verify block of the config file.
type VerifyCmd struct {
	Mode      string `short:"m" enum:",exhaustive,sample" default:"" help:"Verification mode: exhaustive or sample (overrides config)"`
	Samples   int    `short:"n" help:"Hands to sample in sample mode (overrides config)"`
	Workers   int    `short:"w" help:"Worker goroutines (overrides config)"`
	Seed      int64  `short:"s" help:"Sampling seed (random when zero and unset in config)"`
	Reference bool   `short:"r" help:"Also check hand ordering against an independent evaluator"`
	TUI       bool   `name:"tui" help:"Show an interactive progress bar"`
	Report    string `help:"Write a JSON report to this file"`
}

func (c *VerifyCmd) options(cfg *config.Config) (verify.Options, error) {
	v := cfg.Verify
	if c.Mode != "" {
		v.Mode = c.Mode
	}
	if c.Samples != 0 {
		v.Samples = c.Samples
	}
	if c.Workers != 0 {
		v.Workers = c.Workers
	}
	if c.Seed != 0 {
		v.Seed = c.Seed
	}
	if c.Reference {
		v.Reference = true
	}
	if err := cfg.Validate(); err != nil {
		return verify.Options{}, err
	}

	interval, err := v.Interval()
	if err != nil {
		return verify.Options{}, err
	}

	opts := verify.Options{
		Mode:          verify.Mode(v.Mode),
		Workers:       v.Workers,
		Samples:       v.Samples,
		MaxMismatches: v.MaxMismatches,
		Interval:      interval,
		Reference:     v.Reference,
	}
	if opts.Mode == verify.ModeSample {
		opts.Seed = randutil.SeedOrNow(v.Seed)
	}
	return opts, nil
}

func (c *VerifyCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	opts, err := c.options(cfg)
	if err != nil {
		return err
	}
	if opts.Mode == verify.ModeSample {
		logger.Info("Sampling", "samples", opts.Samples, "seed", opts.Seed)
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	runner := verify.NewRunner(opts, logger, quartz.NewReal())

	var report *verify.Report
	if c.TUI {
		report, err = tui.RunVerification(ctx, runner, fmt.Sprintf("%s verification", opts.Mode), logger)
	} else {
		report, err = runner.Run(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(g.stdout(), tui.FormatReport(report))

	if c.Report != "" {
		if err := fileutil.WriteJSON(c.Report, report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Report written", "file", c.Report)
	}
	return report.Err()
}
