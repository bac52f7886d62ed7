package poker

import "fmt"

// Category enumerates the hand categories. The numeric value is the
// category's priority: lower is better, so RoyalFlush sorts first and the
// None sentinel sorts after every real category.
type Category uint8

const (
	RoyalFlush Category = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
	None
)

// NumCategories counts the real categories, excluding None.
const NumCategories = int(None)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "One Pair"
	case HighCard:
		return "High Card"
	default:
		return "None"
	}
}

// Compare returns 1 if c is the better category, -1 if worse, 0 if equal.
func (c Category) Compare(other Category) int {
	switch {
	case c < other:
		return 1
	case c > other:
		return -1
	default:
		return 0
	}
}

// categoryBands holds the last strength of each category, best first.
var categoryBands = [NumCategories]Strength{
	RoyalFlush:    firstStraightFlush,
	StraightFlush: firstFourOfAKind - 1,
	FourOfAKind:   firstFullHouse - 1,
	FullHouse:     firstFlush - 1,
	Flush:         firstStraight - 1,
	Straight:      firstThreeOfAKind - 1,
	ThreeOfAKind:  firstTwoPair - 1,
	TwoPair:       firstOnePair - 1,
	OnePair:       firstHighCard - 1,
	HighCard:      WorstStrength,
}

// Classify maps a strength onto its category. A strength outside
// [BestStrength, WorstStrength] means the tables or the card encoding are
// broken, and Classify panics rather than guess.
func Classify(s Strength) Category {
	if !s.Valid() {
		panic(fmt.Sprintf("poker: strength %d outside [%d, %d]", s, BestStrength, WorstStrength))
	}
	for c, last := range categoryBands {
		if s <= last {
			return Category(c)
		}
	}
	panic("unreachable")
}

// Result is a category together with its tie-break payload. Kicker is only
// set for HighCard.
type Result struct {
	Category Category
	Kicker   Card
}

// Compare orders results by category. The kicker rank is consulted only
// when both results are HighCard.
func (r Result) Compare(other Result) int {
	if c := r.Category.Compare(other.Category); c != 0 {
		return c
	}
	if r.Category == HighCard {
		return r.Kicker.Compare(other.Kicker)
	}
	return 0
}

func (r Result) String() string {
	if r.Category == HighCard {
		return fmt.Sprintf("%s (%s)", r.Category, r.Kicker)
	}
	return r.Category.String()
}
