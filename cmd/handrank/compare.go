package main

import (
	"fmt"

	"github.com/lox/handrank/internal/tui"
	"github.com/lox/handrank/poker"
)

// CompareCmd ranks hands against each other.
type CompareCmd struct {
	Hands []string `arg:"" name:"hand" help:"Two or more hands of five cards"`
}

func (c *CompareCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	if len(c.Hands) < 2 {
		return fmt.Errorf("need at least two hands to compare, got %d", len(c.Hands))
	}
	hands, err := parseHands(c.Hands)
	if err != nil {
		return err
	}
	if err := validateNoDuplicates(hands); err != nil {
		return err
	}

	winners := poker.Winners(hands)
	logger.Debug("Compared hands", "hands", len(hands), "winners", len(winners))
	fmt.Fprint(g.stdout(), tui.FormatStandings(hands, winners))
	return nil
}
