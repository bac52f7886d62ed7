package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lox/handrank/poker"
)

// TotalHands is the number of distinct 5-card hands in a 52-card deck.
const TotalHands = 2_598_960

// ExpectedCategories holds the exhaustive frequency of each category,
// indexed by poker.Category.
var ExpectedCategories = [poker.NumCategories]int{
	poker.RoyalFlush:    4,
	poker.StraightFlush: 36,
	poker.FourOfAKind:   624,
	poker.FullHouse:     3_744,
	poker.Flush:         5_108,
	poker.Straight:      10_200,
	poker.ThreeOfAKind:  54_912,
	poker.TwoPair:       123_552,
	poker.OnePair:       1_098_240,
	poker.HighCard:      1_302_540,
}

// Report summarises a verification run.
type Report struct {
	Mode              Mode
	Seed              int64
	Hands             int
	Categories        [poker.NumCategories]int
	DistinctStrengths int
	MismatchCount     int
	Mismatches        []Mismatch

	Reference              bool
	ReferenceChecked       int
	ReferenceDisagreements int

	Elapsed time.Duration
}

func newReport(opts Options, t *tally, elapsed time.Duration) *Report {
	r := &Report{
		Mode:              opts.Mode,
		Hands:             t.hands,
		Categories:        t.categories,
		DistinctStrengths: t.distinctStrengths(),
		MismatchCount:     t.mismatchCount,
		Mismatches:        t.mismatches,
		Reference:         opts.Reference,
		Elapsed:           elapsed,
	}
	if opts.Mode == ModeSample {
		r.Seed = opts.Seed
	}
	if t.ref != nil {
		r.ReferenceChecked = t.ref.checked
		r.ReferenceDisagreements = t.ref.disagreements
	}
	return r
}

// Err reports every failed check. Exhaustive runs are additionally held to
// the known category frequencies and strength count.
func (r *Report) Err() error {
	var errs []error
	if r.MismatchCount > 0 {
		errs = append(errs, fmt.Errorf("%d hands classified differently by the two evaluators", r.MismatchCount))
	}
	if r.ReferenceDisagreements > 0 {
		errs = append(errs, fmt.Errorf("%d of %d orderings disagree with the reference evaluator",
			r.ReferenceDisagreements, r.ReferenceChecked))
	}
	if r.Mode == ModeExhaustive {
		if r.Hands != TotalHands {
			errs = append(errs, fmt.Errorf("evaluated %d hands, want %d", r.Hands, TotalHands))
		}
		for c, n := range r.Categories {
			if n != ExpectedCategories[c] {
				errs = append(errs, fmt.Errorf("%s: counted %d, want %d", poker.Category(c), n, ExpectedCategories[c]))
			}
		}
		if r.DistinctStrengths != poker.DistinctStrengths {
			errs = append(errs, fmt.Errorf("saw %d distinct strengths, want %d", r.DistinctStrengths, poker.DistinctStrengths))
		}
	}
	return errors.Join(errs...)
}

// Rate returns hands evaluated per second.
func (r *Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Elapsed.Seconds()
}

// MarshalJSON writes categories keyed by name.
func (r *Report) MarshalJSON() ([]byte, error) {
	categories := make(map[string]int, poker.NumCategories)
	for c, n := range r.Categories {
		categories[poker.Category(c).String()] = n
	}
	var failure string
	if err := r.Err(); err != nil {
		failure = err.Error()
	}

	return json.Marshal(struct {
		Mode                   Mode           `json:"mode"`
		Seed                   int64          `json:"seed,omitempty"`
		Hands                  int            `json:"hands"`
		Categories             map[string]int `json:"categories"`
		DistinctStrengths      int            `json:"distinct_strengths"`
		MismatchCount          int            `json:"mismatch_count"`
		Mismatches             []Mismatch     `json:"mismatches,omitempty"`
		Reference              bool           `json:"reference"`
		ReferenceChecked       int            `json:"reference_checked,omitempty"`
		ReferenceDisagreements int            `json:"reference_disagreements,omitempty"`
		ElapsedMillis          int64          `json:"elapsed_ms"`
		Passed                 bool           `json:"passed"`
		Failure                string         `json:"failure,omitempty"`
	}{
		Mode:                   r.Mode,
		Seed:                   r.Seed,
		Hands:                  r.Hands,
		Categories:             categories,
		DistinctStrengths:      r.DistinctStrengths,
		MismatchCount:          r.MismatchCount,
		Mismatches:             r.Mismatches,
		Reference:              r.Reference,
		ReferenceChecked:       r.ReferenceChecked,
		ReferenceDisagreements: r.ReferenceDisagreements,
		ElapsedMillis:          r.Elapsed.Milliseconds(),
		Passed:                 failure == "",
		Failure:                failure,
	})
}
