// Package card implements the playing-card model used by the Spider Solitaire
// engine: ranks, suits, cards and 52-card decks.
//
// # Core Types
//
// Rank: one of the thirteen card values, ordered King (13) down to Ace (1).
//
// Suit: one of Hearts, Diamonds, Clubs and Spades.
//
// Card: an immutable rank and suit pair. Cards are comparable with ==.
//
// Deck: an ordered, mutable sequence of cards.
//
// # Deck Variants
//
// Spider Solitaire is played with one, two or four suits. FromSuit, FromSuits
// and NewDeck build the 52-card deck for each variant; two decks are joined
// with Combine before shuffling.
//
// # Randomness
//
// Shuffle draws its permutation from a math/rand/v2 generator. When no
// generator is supplied the deck is shuffled with entropy read from a kyber
// random stream (see NewSource).
package card
