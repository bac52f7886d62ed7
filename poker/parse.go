package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failure classes. ParseCard and ParseHand wrap these so callers can
// test with errors.Is.
var (
	ErrInvalidLength = errors.New("invalid card length")
	ErrInvalidValue  = errors.New("invalid card value")
	ErrInvalidSuit   = errors.New("invalid card suit")
	ErrHandSize      = errors.New("hand must contain exactly 5 cards")
	ErrDuplicateCard = errors.New("duplicate card")
)

// ParseError describes a token that could not be parsed as a card.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("card %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseCard parses a single card token such as "Ad", "10h" or "Tc".
// The rank comes first, then the suit letter (h, d, s, c); both are
// case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, &ParseError{Token: s, Err: ErrInvalidLength}
	}

	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, &ParseError{Token: s, Err: err}
	}

	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, &ParseError{Token: s, Err: err}
	}

	return NewCard(rank, suit), nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return c
}

func parseRank(s string) (Rank, error) {
	if len(s) == 2 {
		if s == "10" {
			return Ten, nil
		}
		return 0, ErrInvalidValue
	}

	switch c := s[0]; c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), nil
	default:
		return 0, ErrInvalidValue
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 's', 'S':
		return Spades, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, ErrInvalidSuit
	}
}

// ParseHand parses five card tokens separated by spaces or commas,
// e.g. "Ad Kd Qd Jd 10d". The cards must be distinct.
func ParseHand(s string) (Hand, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d in %q", ErrHandSize, len(tokens), s)
	}

	var h Hand
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return Hand{}, err
		}
		h[i] = c
	}

	if err := h.Validate(); err != nil {
		return Hand{}, err
	}
	return h, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}
