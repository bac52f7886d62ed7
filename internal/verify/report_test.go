package verify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handrank/poker"
)

func passingExhaustive() *Report {
	return &Report{
		Mode:              ModeExhaustive,
		Hands:             TotalHands,
		Categories:        ExpectedCategories,
		DistinctStrengths: poker.DistinctStrengths,
	}
}

func TestExpectedCategoriesSumToTotal(t *testing.T) {
	t.Parallel()
	n := 0
	for _, c := range ExpectedCategories {
		n += c
	}
	assert.Equal(t, TotalHands, n)
}

func TestReportErr(t *testing.T) {
	t.Parallel()

	t.Run("passing exhaustive", func(t *testing.T) {
		assert.NoError(t, passingExhaustive().Err())
	})

	t.Run("sample ignores frequencies", func(t *testing.T) {
		r := &Report{Mode: ModeSample, Hands: 10}
		r.Categories[poker.HighCard] = 10
		assert.NoError(t, r.Err())
	})

	t.Run("mismatches", func(t *testing.T) {
		r := passingExhaustive()
		r.MismatchCount = 3
		assert.ErrorContains(t, r.Err(), "3 hands")
	})

	t.Run("reference disagreements", func(t *testing.T) {
		r := &Report{Mode: ModeSample, ReferenceChecked: 10, ReferenceDisagreements: 2}
		assert.ErrorContains(t, r.Err(), "2 of 10")
	})

	t.Run("wrong frequencies", func(t *testing.T) {
		r := passingExhaustive()
		r.Categories[poker.RoyalFlush] = 5
		r.Categories[poker.HighCard]--
		err := r.Err()
		require.Error(t, err)
		assert.ErrorContains(t, err, "Royal Flush: counted 5, want 4")
		assert.ErrorContains(t, err, "High Card")
	})

	t.Run("missing strengths", func(t *testing.T) {
		r := passingExhaustive()
		r.DistinctStrengths = 7000
		assert.ErrorContains(t, r.Err(), "7000 distinct")
	})
}

func TestReportJSON(t *testing.T) {
	t.Parallel()
	r := passingExhaustive()
	r.Mismatches = []Mismatch{{
		Hand:     poker.MustParseHand("Ah Kh Qh Jh 10h"),
		Strength: 1,
		Fast:     poker.Result{Category: poker.RoyalFlush},
		Pattern:  poker.Result{Category: poker.Flush},
	}}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "exhaustive", decoded["mode"])
	assert.Equal(t, true, decoded["passed"])
	assert.NotContains(t, decoded, "seed")

	categories := decoded["categories"].(map[string]any)
	assert.EqualValues(t, 4, categories["Royal Flush"])
	assert.EqualValues(t, 1_302_540, categories["High Card"])

	mismatches := decoded["mismatches"].([]any)
	require.Len(t, mismatches, 1)
	m := mismatches[0].(map[string]any)
	assert.Equal(t, "Ah Kh Qh Jh 10h", m["hand"])
	assert.Equal(t, "Royal Flush", m["fast"])
	assert.Equal(t, "Flush", m["pattern"])
}

func TestTallyMergeCapsMismatches(t *testing.T) {
	t.Parallel()
	m := Mismatch{Hand: poker.MustParseHand("2h 3h 4h 5h 7d")}

	a := &tally{hands: 2, mismatchCount: 2, mismatches: []Mismatch{m, m}}
	a.strengths[5] = true
	b := &tally{hands: 3, mismatchCount: 3, mismatches: []Mismatch{m, m, m}}
	b.strengths[5] = true
	b.strengths[9] = true

	merged := &tally{}
	merged.merge(a, 3)
	merged.merge(b, 3)

	assert.Equal(t, 5, merged.hands)
	assert.Equal(t, 5, merged.mismatchCount)
	assert.Len(t, merged.mismatches, 3)
	assert.Equal(t, 2, merged.distinctStrengths())
}

func TestTallyObserveRecordsDisagreement(t *testing.T) {
	t.Parallel()
	tl := &tally{}
	tl.observe(poker.MustParseHand("Ah Ad Ac As Kh"), 10)
	tl.observe(poker.MustParseHand("2c 3d 4h 5s 7c"), 10)

	assert.Equal(t, 2, tl.hands)
	assert.Equal(t, 1, tl.categories[poker.FourOfAKind])
	assert.Equal(t, 1, tl.categories[poker.HighCard])
	assert.True(t, tl.strengths[poker.WorstStrength])
	assert.Zero(t, tl.mismatchCount)
}
