package poker

import "fmt"

// PackedCard is the 32-bit card encoding consumed by the perfect-hash
// evaluator:
//
//	+--------+--------+--------+--------+
//	|xxxbbbbb|bbbbbbbb|ssssrrrr|xxpppppp|
//	+--------+--------+--------+--------+
//
// b is a one-hot rank bit (deuce = bit 16), s a one-hot suit nibble,
// r the rank index 0..12 and p the rank's prime. The product of five
// primes identifies a rank multiset, AND of the suit nibbles detects a
// flush and OR of the rank bits yields the set of ranks present.
type PackedCard uint32

// rankPrimes assigns a distinct prime to each rank index, deuce first.
var rankPrimes = [NumRanks]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

var suitMasks = [NumSuits]uint32{
	Hearts:   0x2,
	Diamonds: 0x4,
	Spades:   0x1,
	Clubs:    0x8,
}

var packedCards = func() [52]PackedCard {
	var packed [52]PackedCard
	for _, c := range allCards {
		r := uint32(c.Rank.index())
		packed[c.Index()] = PackedCard(1<<(16+r) | suitMasks[c.Suit]<<12 | r<<8 | rankPrimes[r])
	}
	return packed
}()

// Encode returns the packed form of a legal card. It panics on a card
// outside the 52-card deck.
func Encode(c Card) PackedCard {
	if !c.Valid() {
		panic(fmt.Sprintf("poker: cannot encode illegal card rank=%d suit=%d", c.Rank, c.Suit))
	}
	return packedCards[c.Index()]
}

// Prime returns the rank prime held in the low byte.
func (p PackedCard) Prime() uint32 {
	return uint32(p) & 0xFF
}

// RankIndex returns 0 for a deuce through 12 for an ace.
func (p PackedCard) RankIndex() int {
	return int(p>>8) & 0xF
}

// SuitMask returns the one-hot suit nibble.
func (p PackedCard) SuitMask() uint32 {
	return uint32(p>>12) & 0xF
}

// RankBit returns the one-hot 13-bit rank presence mask.
func (p PackedCard) RankBit() uint32 {
	return uint32(p>>16) & 0x1FFF
}

// Decode inverts Encode.
func (p PackedCard) Decode() Card {
	var suit Suit
	for s, m := range suitMasks {
		if m == p.SuitMask() {
			suit = Suit(s)
			break
		}
	}
	return NewCard(Two+Rank(p.RankIndex()), suit)
}
