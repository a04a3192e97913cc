package poker

// HandValue is the strength of a 7-card hand. Stronger hands compare greater.
// The category lives in the bits above 20 (see Category); the low bits order hands
// within a category. Valid values lie in [1, 9<<20).
type HandValue int32

// HandCategory enumerates the categories of poker hands ordered from weakest to strongest.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const categoryShift = 20

const (
	highCardStart      HandValue = HandValue(HighCard)<<categoryShift + 1
	pairStart          HandValue = HandValue(Pair) << categoryShift
	twoPairStart       HandValue = HandValue(TwoPair) << categoryShift
	threeOfAKindStart  HandValue = HandValue(ThreeOfAKind) << categoryShift
	straightStart      HandValue = HandValue(Straight) << categoryShift
	flushStart         HandValue = HandValue(Flush) << categoryShift
	fullHouseStart     HandValue = HandValue(FullHouse) << categoryShift
	fourOfAKindStart   HandValue = HandValue(FourOfAKind) << categoryShift
	straightFlushStart HandValue = HandValue(StraightFlush) << categoryShift
)

// noRank marks an n-of-a-kind that has not been seen.
const noRank uint8 = 255

// Category returns the hand category encoded in v.
func (v HandValue) Category() HandCategory {
	return HandCategory(v >> categoryShift)
}

// String returns the category name of the hand.
func (v HandValue) String() string {
	return v.Category().String()
}

// String returns a human-readable category name.
func (c HandCategory) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Strength canonicalizes a copy of the set and evaluates it.
func (cs CardSet) Strength() HandValue {
	cs.Canonicalize()
	return cs.Evaluate()
}

// Evaluate scores a canonicalized 7-card set.
//
// A set that does not hold exactly seven cards evaluates to 0, outside the valid range.
// Whether the set is canonical is not checked; evaluating a non-canonical set gives a
// meaningless value.
func (cs *CardSet) Evaluate() HandValue {
	if cs.size != MaxCards {
		return 0
	}

	var ranks [MaxCards]uint8
	for i, c := range cs.cards {
		ranks[i] = c.Rank()
	}

	// Canonical form puts the dominant suit at index 3 and sorts it to the front, so a
	// fifth card of suit 3 means at least five cards share it.
	if cs.cards[4].Suit() == 3 {
		run := 1
		for i := 1; i < MaxCards; i++ {
			if cs.cards[i].Suit() != 3 {
				break
			}
			if ranks[i-1] != ranks[i]+1 {
				run = 1
				continue
			}
			run++
			if run == 4 && ranks[i] == Two && ranks[0] == Ace {
				return straightFlushStart
			}
			if run == 5 {
				return straightFlushStart + 1 + HandValue(ranks[i])
			}
		}
		return flushStart + topFive(&ranks)
	}

	// Past this point suits are irrelevant.
	sortDescending(&ranks)

	threeKind, twoKindHigh, twoKindLow := noRank, noRank, noRank
	kind := 1
	for i := 1; i < MaxCards; i++ {
		if ranks[i-1] == ranks[i] {
			kind++
			if i != MaxCards-1 {
				continue
			}
		}
		switch {
		case kind == 4:
			quad := ranks[i-1]
			kicker := ranks[0]
			if kicker == quad {
				kicker = ranks[4]
			}
			return fourOfAKindStart + 13*HandValue(quad) + HandValue(kicker)
		case threeKind == noRank && kind == 3:
			threeKind = ranks[i-1]
		case twoKindHigh == noRank && kind >= 2:
			twoKindHigh = ranks[i-1]
		case twoKindLow == noRank && kind == 2:
			twoKindLow = ranks[i-1]
		}
		kind = 1
	}

	if threeKind != noRank && twoKindHigh != noRank {
		return fullHouseStart + 13*HandValue(threeKind) + HandValue(twoKindHigh)
	}

	run := 1
	for i := 1; i < MaxCards; i++ {
		if ranks[i-1] != ranks[i]+1 {
			if ranks[i-1] != ranks[i] {
				run = 1
			}
			continue
		}
		run++
		if run == 4 && ranks[i] == Two && ranks[0] == Ace {
			return straightStart
		}
		if run == 5 {
			return straightStart + 1 + HandValue(ranks[i])
		}
	}

	switch {
	case threeKind != noRank:
		var kickers [2]uint8
		k := 0
		for i := 0; i < 5 && k < 2; i++ {
			if ranks[i] == threeKind {
				i += 2
				continue
			}
			kickers[k] = ranks[i]
			k++
		}
		return threeOfAKindStart + 156*HandValue(threeKind) + 12*HandValue(kickers[0]) + HandValue(kickers[1])

	case twoKindLow != noRank:
		var kicker uint8
		for i := 0; i < 5; i++ {
			if ranks[i] == twoKindHigh || ranks[i] == twoKindLow {
				i++
				continue
			}
			kicker = ranks[i]
			break
		}
		return twoPairStart + 156*(HandValue(twoKindHigh)-1) + 13*HandValue(twoKindLow) + HandValue(kicker)

	case twoKindHigh != noRank:
		var kickers [3]uint8
		k := 0
		for i := 0; i < 5 && k < 3; i++ {
			if ranks[i] == twoKindHigh {
				i++
				continue
			}
			kickers[k] = ranks[i]
			k++
		}
		return pairStart + 1716*HandValue(twoKindHigh) + 132*HandValue(kickers[0]) + 11*HandValue(kickers[1]) + HandValue(kickers[2])
	}

	return highCardStart + topFive(&ranks)
}

// topFive weights the first five ranks positionally; used for flushes and high cards.
func topFive(ranks *[MaxCards]uint8) HandValue {
	return 11880*HandValue(ranks[0]) +
		990*HandValue(ranks[1]) +
		90*HandValue(ranks[2]) +
		9*HandValue(ranks[3]) +
		HandValue(ranks[4])
}

func sortDescending(ranks *[MaxCards]uint8) {
	for i := 1; i < MaxCards; i++ {
		for j := i; j > 0 && ranks[j-1] < ranks[j]; j-- {
			ranks[j-1], ranks[j] = ranks[j], ranks[j-1]
		}
	}
}
