package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPattern(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		hand     string
		category Category
	}{
		{"royal flush diamonds", "Ad Kd Qd Jd 10d", RoyalFlush},
		{"royal flush clubs unsorted", "10c Jc Ac Qc Kc", RoyalFlush},
		{"straight flush wheel", "5d 4d 3d 2d Ad", StraightFlush},
		{"straight flush ten high", "10h 9h 8h 7h 6h", StraightFlush},
		{"straight flush king high", "Ks Qs Js 10s 9s", StraightFlush},
		{"straight flush six high", "6c 5c 4c 3c 2c", StraightFlush},
		{"quads first", "Kd Kh Kc Ks Qd", FourOfAKind},
		{"quads last", "Kd 6h 6c 6s 6d", FourOfAKind},
		{"quad aces", "Ad Ah Ac As Kd", FourOfAKind},
		{"quad twos", "2d 2h 2c 2s 3d", FourOfAKind},
		{"kings full of eights", "Kd Kh Kc 8s 8d", FullHouse},
		{"queens full of twos", "2d 2h Qc Qs Qd", FullHouse},
		{"threes full of aces", "3d 3h 3c As Ad", FullHouse},
		{"flush hearts", "Kh Jh 9h 7h 3h", Flush},
		{"flush diamonds", "Ad Qd 10d 6d 2d", Flush},
		{"flush almost straight", "Kh Qh Jh 9h 7h", Flush},
		{"broadway straight", "Ah Kd Qc Js 10h", Straight},
		{"middle straight", "9d 8h 7c 6s 5d", Straight},
		{"wheel straight", "5c 4h 3d 2s Ad", Straight},
		{"king high straight", "Kd Qh Jc 10s 9d", Straight},
		{"trips at top", "Kd Kh Kc 10s 8d", ThreeOfAKind},
		{"trips at bottom", "2d Jh Qc Qs Qd", ThreeOfAKind},
		{"trips in middle", "Ah Jd Jh Jc 9s", ThreeOfAKind},
		{"two pair adjacent", "Kd Kh Jc Js 10d", TwoPair},
		{"two pair low", "9d 5h 5c 6s 6d", TwoPair},
		{"two pair split", "Kd Kh Jc 10s 10d", TwoPair},
		{"pair first", "Kd Kh 2c Js 10d", OnePair},
		{"pair second", "Ah Qd Qh Jc 9s", OnePair},
		{"pair third", "Ah Kd 10h 10c 6s", OnePair},
		{"pair last", "9d 5h 5c 3s 6d", OnePair},
		{"pair of twos", "2h 2d Ac Ks Qh", OnePair},
		{"low pair near straight", "5d 4h 3c 3s 2d", OnePair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := MustParseHand(tt.hand)
			got := ClassifyPattern(h)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, Card{}, got.Kicker, "only high card carries a kicker")
			assert.Equal(t, tt.category, EvaluateResult(h).Category)
		})
	}
}

func TestClassifyPatternHighCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand   string
		kicker string
	}{
		{"Ah Kd Qc Js 9h", "Ah"},
		{"Kh Jd 9c 7s 5h", "Kh"},
		{"Qd 10h 8c 6s 3h", "Qd"},
		{"Jc 9h 7d 5s 2h", "Jc"},
		{"Kh Qd Jc 10s 8h", "Kh"},
		{"9d 8h 6c 5s 4d", "9d"},
		{"2h 4d Kc 9s 7h", "Kc"},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			t.Parallel()
			h := MustParseHand(tt.hand)
			want := Result{Category: HighCard, Kicker: MustParseCard(tt.kicker)}
			assert.Equal(t, want, ClassifyPattern(h))
			assert.Equal(t, want, EvaluateResult(h))
		})
	}
}

func TestClassifyPatternLeavesHandUntouched(t *testing.T) {
	t.Parallel()
	h := MustParseHand("2h 4d Kc 9s 7h")
	before := h
	_ = ClassifyPattern(h)
	assert.Equal(t, before, h)
}

func TestConsecutive(t *testing.T) {
	t.Parallel()
	assert.True(t, consecutive(14, 13, 12, 11, 10))
	assert.False(t, consecutive(13, 14, 12, 11, 5))
	assert.True(t, consecutive(9, 8, 7, 6, 5))
	assert.True(t, consecutive(5, 4, 3, 2, 1))
	assert.False(t, consecutive(10, 9, 8, 7, 5))
	assert.False(t, consecutive(14, 5, 4, 3, 2), "the wheel is handled separately")
}

func TestCategoryOrdering(t *testing.T) {
	t.Parallel()
	order := []Category{
		RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
		Straight, ThreeOfAKind, TwoPair, OnePair, HighCard, None,
	}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1], order[i])
		assert.Equal(t, 1, order[i-1].Compare(order[i]), "%s should beat %s", order[i-1], order[i])
		assert.Equal(t, -1, order[i].Compare(order[i-1]))
	}
	assert.Equal(t, 10, NumCategories)
}

func TestResultCompare(t *testing.T) {
	t.Parallel()
	aceHigh := ClassifyPattern(MustParseHand("Ah Kd Qc Js 9h"))
	kingHigh := ClassifyPattern(MustParseHand("Kh Jd 9c 7s 5h"))
	otherAceHigh := ClassifyPattern(MustParseHand("Ac 7d 5c 4s 2h"))
	pair := ClassifyPattern(MustParseHand("2h 2d 7c 5s 3h"))
	trips := ClassifyPattern(MustParseHand("Kd Kh Kc 10s 8d"))

	assert.Equal(t, 1, aceHigh.Compare(kingHigh))
	assert.Equal(t, -1, kingHigh.Compare(aceHigh))
	assert.Equal(t, 0, aceHigh.Compare(otherAceHigh), "kicker compares by rank only")
	assert.Equal(t, 1, pair.Compare(aceHigh), "category decides before the kicker")
	assert.Equal(t, 0, trips.Compare(ClassifyPattern(MustParseHand("2d 2h 2c 4s 3d"))))
	assert.Equal(t, "High Card (Ah)", aceHigh.String())
	assert.Equal(t, "Three of a Kind", trips.String())
}

func TestClassifyPanicsOutsideRange(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { Classify(0) })
	assert.Panics(t, func() { Classify(WorstStrength + 1) })
	assert.NotPanics(t, func() { Classify(BestStrength) })
	assert.NotPanics(t, func() { Classify(WorstStrength) })
}

func TestClassifyBands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		first, last Strength
		category    Category
	}{
		{1, 1, RoyalFlush},
		{2, 10, StraightFlush},
		{11, 166, FourOfAKind},
		{167, 322, FullHouse},
		{323, 1599, Flush},
		{1600, 1609, Straight},
		{1610, 2467, ThreeOfAKind},
		{2468, 3325, TwoPair},
		{3326, 6185, OnePair},
		{6186, 7462, HighCard},
	}
	for _, tt := range tests {
		for s := tt.first; s <= tt.last; s++ {
			if got := Classify(s); got != tt.category {
				t.Fatalf("Classify(%d) = %s, want %s", s, got, tt.category)
			}
		}
	}
}
