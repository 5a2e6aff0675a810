package card

import "math/rand/v2"

// DeckSize is the number of cards in every deck variant.
const DeckSize = 52

// Deck is an ordered sequence of cards. The first card is index 0.
type Deck struct {
	Cards []Card
}

// NewDeck builds the conventional deck: all four suits, thirteen ranks each,
// suit-major order with ranks descending from King.
func NewDeck() Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return Deck{Cards: cards}
}

// FromSuit builds a 52-card deck of a single suit: four runs of King down to Ace.
func FromSuit(suit Suit) Deck {
	cards := make([]Card, 0, DeckSize)
	for range 4 {
		for _, rank := range Ranks() {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return Deck{Cards: cards}
}

// FromSuits builds a 52-card deck of two suits. The deck repeats twice a run of
// the first suit followed by a run of the second one.
func FromSuits(first, second Suit) Deck {
	cards := make([]Card, 0, DeckSize)
	for range 2 {
		for _, rank := range Ranks() {
			cards = append(cards, Card{Rank: rank, Suit: first})
		}
		for _, rank := range Ranks() {
			cards = append(cards, Card{Rank: rank, Suit: second})
		}
	}
	return Deck{Cards: cards}
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Clone returns a copy of the deck that shares no storage with d.
func (d *Deck) Clone() Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return Deck{Cards: cards}
}

// Shuffle randomly orders the cards in place. A nil generator shuffles with
// entropy from NewSource.
func (d *Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(NewSource())
	}
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Combine moves every card of src to the end of d, keeping their order.
// src is left empty.
func (d *Deck) Combine(src *Deck) {
	d.Cards = append(d.Cards, src.Cards...)
	src.Cards = nil
}
