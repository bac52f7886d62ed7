package poker

import "fmt"

// Suit represents a card suit. Suits carry no ordering.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// String returns the lower-case suit letter used in card notation.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true for Hearts and Diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank is the face value of a card, Two=2 through Ace=14.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

// String returns the rank as written in card notation ("10" for ten).
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "10"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// index maps Two..Ace onto 0..12.
func (r Rank) index() int {
	return int(r - Two)
}

// Card is an immutable playing card. Two cards are the same card when both
// rank and suit match; Compare orders by rank alone.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card is one of the 52 legal cards.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit < NumSuits
}

// Index returns a dense index in [0, 52), suit-major.
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + c.Rank.index()
}

// Compare orders cards by rank: -1 if c is lower, 1 if higher, 0 on equal rank.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// String returns the canonical notation, e.g. "Ad" or "10h".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// GoString makes test failure output readable.
func (c Card) GoString() string {
	return fmt.Sprintf("poker.Card(%s)", c)
}

// AllCards returns the 52 legal cards in canonical suit-major order, so
// that AllCards()[c.Index()] == c.
func AllCards() [52]Card {
	return allCards
}

var allCards = func() [52]Card {
	var cards [52]Card
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			cards[c.Index()] = c
		}
	}
	return cards
}()
