package poker

// Strength is the equivalence class of a 5-card hand. Lower values are
// stronger: 1 is a royal flush and 7462 is 7-5-4-3-2 offsuit.
type Strength uint16

const (
	// BestStrength is the strength of a royal flush.
	BestStrength Strength = 1
	// WorstStrength is the strength of the weakest high-card hand.
	WorstStrength Strength = 7462
	// DistinctStrengths is the number of equivalence classes of 5-card hands.
	DistinctStrengths = int(WorstStrength)
)

// Valid reports whether s is a strength the evaluator can produce.
func (s Strength) Valid() bool {
	return s >= BestStrength && s <= WorstStrength
}

// Category returns the category of the hand this strength describes.
func (s Strength) Category() Category {
	return Classify(s)
}

// String returns a human-readable hand description.
func (s Strength) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return Classify(s).String()
}

// Compare returns 1 if s beats other, -1 if it loses and 0 on a tie.
func (s Strength) Compare(other Strength) int {
	return CompareStrength(s, other)
}

// Score evaluates five packed cards. The cards must be distinct encodings
// produced by Encode.
func Score(c1, c2, c3, c4, c5 PackedCard) Strength {
	q := (c1 | c2 | c3 | c4 | c5) >> 16
	if c1&c2&c3&c4&c5&0xF000 != 0 {
		return flushes[q]
	}
	if s := unique5[q]; s != 0 {
		return s
	}
	return hashValues[findFast(uint32(c1&0xFF)*uint32(c2&0xFF)*uint32(c3&0xFF)*uint32(c4&0xFF)*uint32(c5&0xFF))]
}

// mix scrambles a prime product. The constants are fixed; the hash
// tables are only valid for exactly this function.
func mix(u uint32) uint32 {
	u += 0xE91AAA35
	u ^= u >> 16
	u += u << 8
	u ^= u >> 4
	return u
}

// splitHash returns the 13-bit slot offset a and the 9-bit bucket b.
func splitHash(product uint32) (a, b uint16) {
	u := mix(product)
	b = uint16((u >> 8) & 0x1FF)
	a = uint16((u + (u << 2)) >> 19)
	return a, b
}

func findFast(product uint32) uint16 {
	a, b := splitHash(product)
	return a ^ hashAdjust[b]
}

// Evaluate returns the strength of a hand of five legal, distinct cards.
func Evaluate(h Hand) Strength {
	return Score(Encode(h[0]), Encode(h[1]), Encode(h[2]), Encode(h[3]), Encode(h[4]))
}

// EvaluateBatch evaluates multiple hands and writes results into out.
// If out is nil or smaller than hands, a new slice is allocated and returned.
func EvaluateBatch(hands []Hand, out []Strength) []Strength {
	if len(out) < len(hands) {
		out = make([]Strength, len(hands))
	} else {
		out = out[:len(hands)]
	}

	for i, h := range hands {
		out[i] = Evaluate(h)
	}

	return out
}

// EvaluateResult runs the fast path and reports the result in the same
// shape as ClassifyPattern, so the two evaluators can be compared directly.
func EvaluateResult(h Hand) Result {
	cat := Classify(Evaluate(h))
	if cat == HighCard {
		return Result{Category: cat, Kicker: h.highest()}
	}
	return Result{Category: cat}
}

// CompareStrength compares two strengths and returns 1 if a wins, -1 if b
// wins, 0 for tie
func CompareStrength(a, b Strength) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}

// Winners returns the indices of the strongest hands. Several indices are
// returned on a tie; an empty input returns nil.
func Winners(hands []Hand) []int {
	if len(hands) == 0 {
		return nil
	}

	best := WorstStrength + 1
	var winners []int
	for i, h := range hands {
		switch s := Evaluate(h); {
		case s < best:
			best = s
			winners = append(winners[:0], i)
		case s == best:
			winners = append(winners, i)
		}
	}
	return winners
}
