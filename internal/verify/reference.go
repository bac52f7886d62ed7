package verify

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/handrank/poker"
)

var referenceSuits = map[poker.Suit]ph.Suit{
	poker.Clubs:    ph.Club,
	poker.Diamonds: ph.Diamond,
	poker.Hearts:   ph.Heart,
	poker.Spades:   ph.Spade,
}

// referenceDeck maps every card index onto the independent evaluator's
// card representation.
func referenceDeck() (*[52]ph.Card, error) {
	var deck [52]ph.Card
	for _, c := range poker.AllCards() {
		// the reference numbers ranks 1..13 with the ace low
		rank := ph.Rank(c.Rank)
		if c.Rank == poker.Ace {
			rank = 1
		}
		card, err := ph.MakeCard(referenceSuits[c.Suit], rank)
		if err != nil {
			return nil, fmt.Errorf("reference card %s: %w", c, err)
		}
		deck[c.Index()] = card
	}
	return &deck, nil
}

// referenceChecker compares the ordering of consecutive hands against an
// independent evaluator. Only the sign of the comparison matters; the two
// scales are unrelated.
type referenceChecker struct {
	deck *[52]ph.Card

	prevStrength poker.Strength
	prevScore    int16
	primed       bool

	checked       int
	disagreements int
}

func newReferenceChecker(deck *[52]ph.Card) *referenceChecker {
	return &referenceChecker{deck: deck}
}

func (r *referenceChecker) score(h poker.Hand) int16 {
	var cards [5]ph.Card
	for i, c := range h {
		cards[i] = r.deck[c.Index()]
	}
	return ph.Eval5(&cards)
}

func (r *referenceChecker) observe(h poker.Hand, s poker.Strength) {
	score := r.score(h)
	if r.primed {
		r.checked++
		// Reference scores grow with hand quality; strengths shrink.
		if sign(int(score)-int(r.prevScore)) != s.Compare(r.prevStrength) {
			r.disagreements++
		}
	}
	r.prevStrength, r.prevScore, r.primed = s, score, true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
