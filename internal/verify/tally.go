package verify

import (
	"encoding/json"

	"github.com/lox/handrank/poker"
)

// Mismatch records a hand on which the two evaluators disagree.
type Mismatch struct {
	Hand     poker.Hand
	Strength poker.Strength
	Fast     poker.Result
	Pattern  poker.Result
}

// MarshalJSON writes the mismatch in card notation.
func (m Mismatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Hand     string `json:"hand"`
		Strength int    `json:"strength"`
		Fast     string `json:"fast"`
		Pattern  string `json:"pattern"`
	}{m.Hand.String(), int(m.Strength), m.Fast.String(), m.Pattern.String()})
}

// tally is owned by one worker until merged.
type tally struct {
	hands         int
	categories    [poker.NumCategories]int
	strengths     [poker.WorstStrength + 1]bool
	mismatches    []Mismatch
	mismatchCount int

	ref *referenceChecker
}

func (t *tally) observe(h poker.Hand, maxMismatches int) {
	s := poker.Evaluate(h)
	fast := poker.EvaluateResult(h)
	slow := poker.ClassifyPattern(h)

	t.hands++
	t.categories[fast.Category]++
	t.strengths[s] = true
	if fast != slow {
		t.mismatchCount++
		if len(t.mismatches) < maxMismatches {
			t.mismatches = append(t.mismatches, Mismatch{Hand: h, Strength: s, Fast: fast, Pattern: slow})
		}
	}

	if t.ref != nil {
		t.ref.observe(h, s)
	}
}

func (t *tally) merge(o *tally, maxMismatches int) {
	t.hands += o.hands
	for i, n := range o.categories {
		t.categories[i] += n
	}
	for i, seen := range o.strengths {
		if seen {
			t.strengths[i] = true
		}
	}
	t.mismatchCount += o.mismatchCount
	for _, m := range o.mismatches {
		if len(t.mismatches) >= maxMismatches {
			break
		}
		t.mismatches = append(t.mismatches, m)
	}
	if o.ref != nil {
		if t.ref == nil {
			t.ref = &referenceChecker{}
		}
		t.ref.checked += o.ref.checked
		t.ref.disagreements += o.ref.disagreements
	}
}

func (t *tally) distinctStrengths() int {
	n := 0
	for _, seen := range t.strengths {
		if seen {
			n++
		}
	}
	return n
}
