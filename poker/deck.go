package poker

import (
	"math/rand/v2"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card // Fixed size array
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for i := range d.cards {
		d.cards[i] = Card(i)
	}
	d.Shuffle()
	return d
}

// NewOrderedDeck creates an unshuffled deck that deals the given cards first,
// followed by every remaining card in code order.
func NewOrderedDeck(first ...Card) *Deck {
	d := &Deck{}
	var used [52]bool
	i := 0
	for _, c := range first {
		if !c.IsValid() || used[c] {
			continue
		}
		used[c] = true
		d.cards[i] = c
		i++
	}
	for c := Card(0); c < 52; c++ {
		if !used[c] {
			d.cards[i] = c
			i++
		}
	}
	return d
}

// Shuffle shuffles the deck using Fisher-Yates and resets the deal position.
// A deck without an RNG keeps its order.
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card from the deck, or NoCard when it is empty.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return NoCard
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
