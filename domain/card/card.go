package card

import (
	"errors"
	"fmt"
)

// ErrInvalidRank is returned when a numeric rank code is outside 1..13.
var ErrInvalidRank = errors.New("invalid rank")

// Rank is the value of a card. The numeric value of a rank is its code:
// Ace is 1 and King is 13.
type Rank uint8

// Card rank constants, from the lowest to the highest.
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks returns all card ranks in descending order (King first).
func Ranks() [13]Rank {
	return [13]Rank{King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two, Ace}
}

// RankFromNumber converts a numeric code (1-13) into a Rank.
//
// Parameters:
//   - n: 1 for Ace through 13 for King
//
// Returns the Rank, or an error wrapping ErrInvalidRank that names the
// offending value.
func RankFromNumber(n int) (Rank, error) {
	if n < int(Ace) || n > int(King) {
		return 0, fmt.Errorf("%w: unexpected card value %d", ErrInvalidRank, n)
	}
	return Rank(n), nil
}

// Number returns the numeric code of the rank (King=13 down to Ace=1).
func (r Rank) Number() int {
	return int(r)
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Previous returns the rank one higher than r. King has no previous rank.
func (r Rank) Previous() (Rank, bool) {
	if !r.Valid() || r == King {
		return 0, false
	}
	return r + 1, true
}

// Next returns the rank one lower than r. Ace has no next rank.
func (r Rank) Next() (Rank, bool) {
	if !r.Valid() || r == Ace {
		return 0, false
	}
	return r - 1, true
}

// String returns the short label of the rank: "K", "Q", "J", "10" ... "2", "A".
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", r)
	}
	return "?"
}

// Suit is the suit of a card.
type Suit uint8

// Suits in the order NewDeck lays them out.
const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits returns every suit in deck order.
func Suits() [4]Suit {
	return [4]Suit{Hearts, Diamonds, Clubs, Spades}
}

// String returns the glyph of the suit.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Name returns the English name of the suit.
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// IsRed reports whether the suit is drawn in red (Hearts and Diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is a playing card. Two cards are equal iff rank and suit are equal.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String returns the rank label followed by the suit glyph, e.g. "10♠".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
