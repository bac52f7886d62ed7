package poker

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards the evaluators accept.
const HandSize = 5

// Hand is exactly five cards. Evaluators assume the cards are legal and
// distinct; use Validate at trust boundaries.
type Hand [HandSize]Card

// NewHand builds a hand from five cards.
func NewHand(c1, c2, c3, c4, c5 Card) Hand {
	return Hand{c1, c2, c3, c4, c5}
}

// Validate checks that every card is legal and no card repeats.
func (h Hand) Validate() error {
	var seen [52]bool
	for _, c := range h {
		if !c.Valid() {
			return fmt.Errorf("%w: rank %d suit %d", ErrInvalidValue, c.Rank, c.Suit)
		}
		idx := c.Index()
		if seen[idx] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[idx] = true
	}
	return nil
}

// String returns the cards in notation separated by spaces.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// SortDescending returns a copy of the hand ordered from highest to lowest
// rank. Cards of equal rank keep their relative order.
func SortDescending(h Hand) Hand {
	// insertion sort: five elements, no allocation
	for i := 1; i < len(h); i++ {
		c := h[i]
		j := i - 1
		for j >= 0 && h[j].Rank < c.Rank {
			h[j+1] = h[j]
			j--
		}
		h[j+1] = c
	}
	return h
}

// highest returns the first card of maximal rank.
func (h Hand) highest() Card {
	best := h[0]
	for _, c := range h[1:] {
		if c.Rank > best.Rank {
			best = c
		}
	}
	return best
}
