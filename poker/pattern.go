package poker

// ClassifyPattern categorises a hand by inspecting its cards directly,
// without the lookup tables. It works on a descending-sorted copy; the
// caller's hand is left untouched. It serves as an oracle for Evaluate.
func ClassifyPattern(h Hand) Result {
	s := SortDescending(h)
	v0, v1, v2, v3, v4 := s[0].Rank, s[1].Rank, s[2].Rank, s[3].Rank, s[4].Rank

	flush := sameSuit(s)
	run := consecutive(v0, v1, v2, v3, v4)
	wheel := v0 == Ace && v1 == Five && v2 == Four && v3 == Three && v4 == Two

	switch {
	case flush && v0 == Ace && v1 == King && v2 == Queen && v3 == Jack && v4 == Ten:
		return Result{Category: RoyalFlush}
	case flush && run:
		return Result{Category: StraightFlush}
	case flush && wheel:
		return Result{Category: StraightFlush}
	case v0 == v1 && v1 == v2 && v2 == v3, v1 == v2 && v2 == v3 && v3 == v4:
		return Result{Category: FourOfAKind}
	case v0 == v1 && v1 == v2 && v3 == v4, v0 == v1 && v2 == v3 && v3 == v4:
		return Result{Category: FullHouse}
	case flush:
		return Result{Category: Flush}
	case run:
		return Result{Category: Straight}
	case wheel:
		return Result{Category: Straight}
	case v0 == v1 && v1 == v2, v1 == v2 && v2 == v3, v2 == v3 && v3 == v4:
		return Result{Category: ThreeOfAKind}
	case v0 == v1 && v2 == v3, v0 == v1 && v3 == v4, v1 == v2 && v3 == v4:
		return Result{Category: TwoPair}
	case v0 == v1, v1 == v2, v2 == v3, v3 == v4:
		return Result{Category: OnePair}
	default:
		return Result{Category: HighCard, Kicker: s[0]}
	}
}

func sameSuit(h Hand) bool {
	return h[0].Suit == h[1].Suit && h[1].Suit == h[2].Suit && h[2].Suit == h[3].Suit && h[3].Suit == h[4].Suit
}

// consecutive reports whether five descending ranks step down by exactly one.
// The wheel does not qualify: an ace never chains to a five.
func consecutive(v0, v1, v2, v3, v4 Rank) bool {
	return v0 == v1+1 && v1 == v2+1 && v2 == v3+1 && v3 == v4+1
}
