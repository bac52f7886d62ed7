package main

import (
	"fmt"

	"github.com/lox/handrank/internal/tui"
	"github.com/lox/handrank/poker"
)

// EvalCmd evaluates hands independently.
type EvalCmd struct {
	Hands   []string `arg:"" name:"hand" help:"Five cards, e.g. 'Ah Kh Qh Jh 10h'"`
	Pattern bool     `short:"p" help:"Also classify with the pattern classifier and flag disagreements"`
}

func (c *EvalCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}

	out := g.stdout()
	for _, h := range hands {
		s := poker.Evaluate(h)
		fast := poker.EvaluateResult(h)
		fmt.Fprintln(out, tui.FormatEvaluation(h, fast, s))

		if !c.Pattern {
			continue
		}
		slow := poker.ClassifyPattern(h)
		if slow != fast {
			logger.Warn("Evaluators disagree", "hand", h, "fast", fast, "pattern", slow)
			return fmt.Errorf("evaluators disagree on %s", h)
		}
		logger.Debug("Pattern classifier agrees", "hand", h, "result", slow)
	}
	return nil
}
