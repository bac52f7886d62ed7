package poker

import (
	"fmt"
	"math/bits"
	"sort"
)

// Equivalence-class layout, strongest first. Each constant is the first
// strength of its category.
const (
	firstStraightFlush Strength = 1
	firstFourOfAKind   Strength = 11
	firstFullHouse     Strength = 167
	firstFlush         Strength = 323
	firstStraight      Strength = 1600
	firstThreeOfAKind  Strength = 1610
	firstTwoPair       Strength = 2468
	firstOnePair       Strength = 3326
	firstHighCard      Strength = 6186
)

const (
	rankMaskSize    = 1 << NumRanks // 8192
	hashAdjustSize  = 512
	hashValuesSize  = 8192
	pairedMultisets = 4888
)

// straightMasks lists the ten straights from ace-high down to the wheel.
var straightMasks = [10]uint16{
	0x1F00, 0x0F80, 0x07C0, 0x03E0, 0x01F0,
	0x00F8, 0x007C, 0x003E, 0x001F, 0x100F,
}

// Lookup tables. Written once during package initialisation, read-only
// afterwards.
var (
	flushes    [rankMaskSize]Strength
	unique5    [rankMaskSize]Strength
	hashAdjust [hashAdjustSize]uint16
	hashValues [hashValuesSize]Strength
)

func init() {
	buildDistinctRankTables()
	buildHashTables(pairedStrengths())
}

func isStraightMask(mask uint16) bool {
	for _, s := range straightMasks {
		if mask == s {
			return true
		}
	}
	return false
}

// buildDistinctRankTables fills flushes and unique5. Five-bit masks compared
// as integers order the same way high-card hands do, so walking masks
// downwards enumerates flushes and high cards strongest first.
func buildDistinctRankTables() {
	for i, mask := range straightMasks {
		flushes[mask] = firstStraightFlush + Strength(i)
		unique5[mask] = firstStraight + Strength(i)
	}

	next := Strength(0)
	for mask := rankMaskSize - 1; mask >= 0; mask-- {
		m := uint16(mask)
		if bits.OnesCount16(m) != HandSize || isStraightMask(m) {
			continue
		}
		flushes[m] = firstFlush + next
		unique5[m] = firstHighCard + next
		next++
	}
	if next != firstStraight-firstFlush {
		panic(fmt.Sprintf("poker: built %d flush classes", next))
	}
}

type pairedClass struct {
	product  uint32
	strength Strength
}

// pairedStrengths enumerates every rank multiset with a repeated rank, in
// strength order, together with its prime product.
func pairedStrengths() []pairedClass {
	classes := make([]pairedClass, 0, pairedMultisets)
	next := firstFourOfAKind
	add := func(ranks ...int) {
		product := uint32(1)
		for _, r := range ranks {
			product *= rankPrimes[r]
		}
		classes = append(classes, pairedClass{product: product, strength: next})
		next++
	}

	// four of a kind: quad rank, kicker
	for q := NumRanks - 1; q >= 0; q-- {
		for k := NumRanks - 1; k >= 0; k-- {
			if k != q {
				add(q, q, q, q, k)
			}
		}
	}
	// full house: trips, pair
	for t := NumRanks - 1; t >= 0; t-- {
		for p := NumRanks - 1; p >= 0; p-- {
			if p != t {
				add(t, t, t, p, p)
			}
		}
	}
	if next != firstFlush {
		panic(fmt.Sprintf("poker: four of a kind and full house end at %d", next))
	}

	// flushes and straights are resolved by the distinct-rank tables
	next = firstThreeOfAKind

	// three of a kind: trips, two kickers
	for t := NumRanks - 1; t >= 0; t-- {
		for k1 := NumRanks - 1; k1 >= 0; k1-- {
			for k2 := k1 - 1; k2 >= 0; k2-- {
				if k1 != t && k2 != t {
					add(t, t, t, k1, k2)
				}
			}
		}
	}
	// two pair: high pair, low pair, kicker
	for hi := NumRanks - 1; hi >= 0; hi-- {
		for lo := hi - 1; lo >= 0; lo-- {
			for k := NumRanks - 1; k >= 0; k-- {
				if k != hi && k != lo {
					add(hi, hi, lo, lo, k)
				}
			}
		}
	}
	// one pair: pair, three kickers
	for p := NumRanks - 1; p >= 0; p-- {
		for k1 := NumRanks - 1; k1 >= 0; k1-- {
			for k2 := k1 - 1; k2 >= 0; k2-- {
				for k3 := k2 - 1; k3 >= 0; k3-- {
					if k1 != p && k2 != p && k3 != p {
						add(p, p, k1, k2, k3)
					}
				}
			}
		}
	}

	if len(classes) != pairedMultisets || next != firstHighCard {
		panic(fmt.Sprintf("poker: built %d paired classes ending at %d", len(classes), next))
	}
	return classes
}

type hashSlot struct {
	a        uint16
	strength Strength
}

// buildHashTables derives hashAdjust by hash-and-displace over the fixed
// mixing function: every key lands in bucket b with a 13-bit offset a, and
// each bucket receives the smallest displacement d for which all of its
// a^d slots are free. Larger buckets are placed first.
func buildHashTables(classes []pairedClass) {
	var buckets [hashAdjustSize][]hashSlot
	for _, c := range classes {
		a, b := splitHash(c.product)
		for _, s := range buckets[b] {
			if s.a == a {
				panic(fmt.Sprintf("poker: hash collision for product %d", c.product))
			}
		}
		buckets[b] = append(buckets[b], hashSlot{a: a, strength: c.strength})
	}

	order := make([]int, hashAdjustSize)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(buckets[order[i]]) > len(buckets[order[j]])
	})

	var used [hashValuesSize]bool
	for _, b := range order {
		slots := buckets[b]
		if len(slots) == 0 {
			break
		}
		d, ok := findDisplacement(slots, &used)
		if !ok {
			panic(fmt.Sprintf("poker: no displacement for hash bucket %d", b))
		}
		hashAdjust[b] = d
		for _, s := range slots {
			idx := s.a ^ d
			used[idx] = true
			hashValues[idx] = s.strength
		}
	}
}

func findDisplacement(slots []hashSlot, used *[hashValuesSize]bool) (uint16, bool) {
search:
	for d := 0; d < hashValuesSize; d++ {
		for _, s := range slots {
			if used[s.a^uint16(d)] {
				continue search
			}
		}
		return uint16(d), true
	}
	return 0, false
}
