package poker

// rankPrimes maps each rank to a distinct prime so that the product over a suit's
// cards fingerprints which ranks that suit holds.
var rankPrimes = [13]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Canonicalize rewrites the set as the representative of its suit-isomorphism class.
//
// Suits are relabelled so that suits holding fewer cards get lower indices, with ties
// broken by the prime fingerprint of the ranks they hold; the cards are then sorted by
// descending code. After this the most populated suit is always suit 3, so a flush sits
// rank-sorted at the front of the set.
func (cs *CardSet) Canonicalize() {
	n := int(cs.size)

	var suitCount [4]int
	suitFingerprint := [4]uint64{1, 1, 1, 1}
	for _, c := range cs.cards[:n] {
		s := c.Suit()
		suitCount[s]++
		suitFingerprint[s] *= rankPrimes[c.Rank()]
	}

	// Stable insertion sort of the four suits by (count, fingerprint).
	order := [4]uint8{0, 1, 2, 3}
	for i := 1; i < 4; i++ {
		for j := i; j > 0; j-- {
			a, b := order[j-1], order[j]
			if suitCount[a] < suitCount[b] ||
				(suitCount[a] == suitCount[b] && suitFingerprint[a] <= suitFingerprint[b]) {
				break
			}
			order[j-1], order[j] = b, a
		}
	}
	var mapping [4]uint8
	for target, suit := range order {
		mapping[suit] = uint8(target)
	}

	for i := 0; i < n; i++ {
		c := cs.cards[i]
		cs.cards[i] = NewCard(c.Rank(), mapping[c.Suit()])
	}

	// Descending by code.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && cs.cards[j-1] < cs.cards[j]; j-- {
			cs.cards[j-1], cs.cards[j] = cs.cards[j], cs.cards[j-1]
		}
	}
}

// Canonical returns a canonicalized copy of the set.
func (cs CardSet) Canonical() CardSet {
	cs.Canonicalize()
	return cs
}

// IsCanonical reports whether canonicalizing the set would leave it unchanged.
func (cs CardSet) IsCanonical() bool {
	return cs.Canonical() == cs
}
