package main

import (
	"fmt"

	"github.com/lox/handrank/internal/randutil"
	"github.com/lox/handrank/internal/tui"
	"github.com/lox/handrank/poker"
)

// maxPlayers is how many five-card hands one deck can supply.
const maxPlayers = 52 / poker.HandSize

// DealCmd deals random hands from a shuffled deck.
type DealCmd struct {
	Players int   `short:"n" default:"2" help:"Number of hands to deal"`
	Seed    int64 `short:"s" help:"Deterministic RNG seed (random when zero)"`
}

func (c *DealCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	if c.Players < 1 || c.Players > maxPlayers {
		return fmt.Errorf("players must be between 1 and %d, got %d", maxPlayers, c.Players)
	}

	seed := randutil.SeedOrNow(c.Seed)
	logger.Info("Dealing", "players", c.Players, "seed", seed)

	deck := poker.NewDeck(randutil.New(seed))
	hands := make([]poker.Hand, c.Players)
	for i := range hands {
		h, ok := deck.DealHand()
		if !ok {
			return fmt.Errorf("deck exhausted after %d hands", i)
		}
		hands[i] = h
	}

	fmt.Fprint(g.stdout(), tui.FormatStandings(hands, poker.Winners(hands)))
	return nil
}
