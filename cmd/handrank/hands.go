package main

import (
	"fmt"

	"github.com/lox/handrank/poker"
)

// parseHands parses each argument as a separate five-card hand.
func parseHands(handStrings []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, 0, len(handStrings))
	for i, s := range handStrings {
		h, err := poker.ParseHand(s)
		if err != nil {
			return nil, fmt.Errorf("hand %d %q: %w", i+1, s, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// validateNoDuplicates rejects hands that share a card.
func validateNoDuplicates(hands []poker.Hand) error {
	var owner [52]int
	for i, h := range hands {
		for _, c := range h {
			if prev := owner[c.Index()]; prev != 0 {
				return fmt.Errorf("card %s appears in hands %d and %d", c, prev, i+1)
			}
			owner[c.Index()] = i + 1
		}
	}
	return nil
}
