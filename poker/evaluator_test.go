package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBoundaryStrengths(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand     string
		strength Strength
		category Category
	}{
		{"Ad Kd Qd Jd 10d", 1, RoyalFlush},
		{"Ks Qs Js 10s 9s", 2, StraightFlush},
		{"5h 4h 3h 2h Ah", 10, StraightFlush},
		{"Ad Ah Ac As Kd", 11, FourOfAKind},
		{"2d 2h 2c 2s 3d", 166, FourOfAKind},
		{"Ad Ah Ac Ks Kd", 167, FullHouse},
		{"2d 2h 2c 3s 3d", 322, FullHouse},
		{"Ac Kc Qc Jc 9c", 323, Flush},
		{"7s 5s 4s 3s 2s", 1599, Flush},
		{"Ah Kd Qc Js 10h", 1600, Straight},
		{"5c 4h 3d 2s Ad", 1609, Straight},
		{"Ad Ah Ac Ks Qd", 1610, ThreeOfAKind},
		{"2d 2h 2c 4s 3d", 2467, ThreeOfAKind},
		{"Ad Ah Kc Ks Qd", 2468, TwoPair},
		{"3d 3h 2c 2s 4d", 3325, TwoPair},
		{"Ad Ah Kc Qs Jd", 3326, OnePair},
		{"2d 2h 5c 4s 3d", 6185, OnePair},
		{"Ad Kh Qc Js 9d", 6186, HighCard},
		{"7d 5h 4c 3s 2d", 7462, HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			t.Parallel()
			s := Evaluate(MustParseHand(tt.hand))
			assert.Equal(t, tt.strength, s)
			assert.Equal(t, tt.category, Classify(s))
		})
	}
}

func TestEvaluateIsOrderIndependent(t *testing.T) {
	t.Parallel()
	h := MustParseHand("9d 5h 5c 6s 6d")
	want := Evaluate(h)

	perms := [][5]int{
		{4, 3, 2, 1, 0},
		{1, 0, 3, 2, 4},
		{2, 4, 0, 3, 1},
	}
	for _, p := range perms {
		permuted := NewHand(h[p[0]], h[p[1]], h[p[2]], h[p[3]], h[p[4]])
		assert.Equal(t, want, Evaluate(permuted))
	}
}

func TestEvaluateIgnoresSuitPermutation(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		Evaluate(MustParseHand("Kd Kh Kc 8s 8d")),
		Evaluate(MustParseHand("Ks Kc Kh 8d 8h")))
	assert.Equal(t,
		Evaluate(MustParseHand("Qh 9h 7h 6h 3h")),
		Evaluate(MustParseHand("Qc 9c 7c 6c 3c")))
}

func TestCompareStrength(t *testing.T) {
	t.Parallel()
	royal := Evaluate(MustParseHand("As Ks Qs Js 10s"))
	quads := Evaluate(MustParseHand("As Ah Ad Ac Ks"))
	high := Evaluate(MustParseHand("As Kh Qd 9s 7c"))

	if royal.Compare(quads) <= 0 {
		t.Errorf("Royal flush should beat four of a kind")
	}
	if quads.Compare(high) <= 0 {
		t.Errorf("Four of a kind should beat high card")
	}
	if high.Compare(royal) >= 0 {
		t.Errorf("High card should lose to royal flush")
	}

	// same class, different suits
	other := Evaluate(MustParseHand("Ah Kh Qh Jh 10h"))
	assert.Equal(t, 0, royal.Compare(other))
	assert.Equal(t, royal, other)
}

func TestStrengthString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Royal Flush", Strength(1).String())
	assert.Equal(t, "Full House", Evaluate(MustParseHand("Kd Kh Kc 8s 8d")).String())
	assert.Equal(t, "Unknown", Strength(0).String())
	assert.Equal(t, "Unknown", Strength(7463).String())
}

func TestEvaluateBatch(t *testing.T) {
	t.Parallel()
	hands := []Hand{
		MustParseHand("Ad Kd Qd Jd 10d"),
		MustParseHand("7d 5h 4c 3s 2d"),
	}

	out := EvaluateBatch(hands, nil)
	require.Len(t, out, 2)
	assert.Equal(t, []Strength{1, 7462}, out)

	buf := make([]Strength, 8)
	out = EvaluateBatch(hands, buf)
	assert.Len(t, out, 2)
	assert.Equal(t, Strength(1), buf[0], "results are written into the caller's buffer")
}

func TestWinners(t *testing.T) {
	t.Parallel()
	hands := []Hand{
		MustParseHand("9d 5h 5c 6s 6d"),
		MustParseHand("Kd Kh Kc 8s 8d"),
		MustParseHand("Qs Qd 2c 2s 3d"),
		MustParseHand("Ac Ah Ad 8c 8h"),
	}
	assert.Equal(t, []int{3}, Winners(hands))

	tied := []Hand{
		MustParseHand("Ad Kd Qd Jd 10d"),
		MustParseHand("7d 5h 4c 3s 2d"),
		MustParseHand("As Ks Qs Js 10s"),
	}
	assert.Equal(t, []int{0, 2}, Winners(tied))
	assert.Nil(t, Winners(nil))
}

func TestEvaluateDoesNotAllocate(t *testing.T) {
	h := MustParseHand("9d 5h 5c 6s 6d")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Evaluate(h)
	})
	assert.Zero(t, allocs)
}

func TestLookupTablesArePopulated(t *testing.T) {
	t.Parallel()
	count := func(table []Strength) int {
		n := 0
		for _, s := range table {
			if s != 0 {
				n++
			}
		}
		return n
	}

	// C(13,5) rank sets with five distinct ranks
	assert.Equal(t, 1287, count(flushes[:]))
	assert.Equal(t, 1287, count(unique5[:]))
	assert.Equal(t, pairedMultisets, count(hashValues[:]))

	for _, c := range pairedStrengths() {
		require.Equal(t, c.strength, hashValues[findFast(c.product)], "product %d", c.product)
	}
}

func TestFindFastStaysInRange(t *testing.T) {
	t.Parallel()
	for _, product := range []uint32{0, 1, 48, 0xFFFFFFFF, 41 * 41 * 41 * 41 * 37} {
		a, b := splitHash(product)
		assert.Less(t, a, uint16(hashValuesSize))
		assert.Less(t, b, uint16(hashAdjustSize))
		assert.Less(t, findFast(product), uint16(hashValuesSize))
	}
}
