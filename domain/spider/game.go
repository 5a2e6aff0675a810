package spider

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/luca-patrignani/spidertaire/domain/card"
)

// Game is the state of one Spider Solitaire game.
type Game struct {
	difficulty Difficulty
	records    []Record         // arena, indexed by record id
	grid       map[Position]int // occupied cell -> record id
	available  []AvailableSet   // front is dealt first
}

type options struct {
	rng *rand.Rand
}

// Option configures NewGame.
type Option func(*options)

// WithRand shuffles the new game's deck with r instead of the default
// kyber-backed source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// NewEmptyGame returns a game with an empty tableau and no reserve sets.
func NewEmptyGame(difficulty Difficulty) *Game {
	return &Game{
		difficulty: difficulty,
		records:    make([]Record, 0, cardsPerGame),
		grid:       make(map[Position]int, cardsPerGame),
	}
}

// NewGame starts a game: two decks of the difficulty's suit configuration are
// combined and shuffled, 44 cards are laid face down and 10 face up row by
// row across the ten columns, and the last 50 cards form five reserve sets.
func NewGame(difficulty Difficulty, opts ...Option) (*Game, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	deck, err := difficulty.deck()
	if err != nil {
		return nil, err
	}
	second := deck.Clone()
	deck.Combine(&second)
	deck.Shuffle(o.rng)

	g := NewEmptyGame(difficulty)
	g.available = make([]AvailableSet, 0, reserveSets)
	for i, c := range deck.Cards[:initialLayout] {
		vis := Hidden
		if i >= hiddenCards {
			vis = Shown
		}
		pos := Position{Column: i % Columns, Row: i / Columns}
		if err := g.Place(c, pos, vis); err != nil {
			return nil, err
		}
	}
	for rest := deck.Cards[initialLayout:]; len(rest) >= cardsPerDeal; rest = rest[cardsPerDeal:] {
		g.available = append(g.available, AvailableSet(rest[:cardsPerDeal]))
	}
	return g, nil
}

// Difficulty returns the difficulty the game was created with.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// Place puts c at pos with the given visibility. It fails if pos is outside
// the tableau or already occupied.
func (g *Game) Place(c card.Card, pos Position, vis Visibility) error {
	if !pos.valid() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if _, ok := g.grid[pos]; ok {
		return fmt.Errorf("%w: %v", ErrOccupied, pos)
	}
	g.records = append(g.records, Record{Card: c, Position: pos, Visibility: vis})
	g.grid[pos] = len(g.records) - 1
	return nil
}

// AddAvailable appends a reserve set at the back of the queue.
func (g *Game) AddAvailable(set AvailableSet) {
	g.available = append(g.available, set)
}

// At returns the record occupying pos.
func (g *Game) At(pos Position) (Record, bool) {
	id, ok := g.grid[pos]
	if !ok {
		return Record{}, false
	}
	return g.records[id], true
}

// Occupied reports whether a card, hidden or shown, is at pos.
func (g *Game) Occupied(pos Position) bool {
	_, ok := g.grid[pos]
	return ok
}

// Records returns a copy of every placed card ordered by column, then row.
func (g *Game) Records() []Record {
	out := slices.Clone(g.records)
	slices.SortFunc(out, func(a, b Record) int {
		if c := cmp.Compare(a.Position.Column, b.Position.Column); c != 0 {
			return c
		}
		return cmp.Compare(a.Position.Row, b.Position.Row)
	})
	return out
}

// Count returns the number of placed cards with the given visibility.
func (g *Game) Count(vis Visibility) int {
	n := 0
	for _, r := range g.records {
		if r.Visibility == vis {
			n++
		}
	}
	return n
}

// Reserve returns the number of reserve sets still to be dealt.
func (g *Game) Reserve() int {
	return len(g.available)
}

// Heights returns, per column, the maximum occupied row + 1 (0 when empty).
func (g *Game) Heights() [Columns]int {
	var heights [Columns]int
	for pos := range g.grid {
		if pos.Row+1 > heights[pos.Column] {
			heights[pos.Column] = pos.Row + 1
		}
	}
	return heights
}

// remove drops pos from the position index and returns the record id that
// occupied it. The index and the arena must never disagree.
func (g *Game) remove(pos Position) int {
	id, ok := g.grid[pos]
	if !ok {
		panic(fmt.Sprintf("spider: tableau index and card records are out of sync at %v", pos))
	}
	delete(g.grid, pos)
	return id
}

// put moves record id to pos, which must be free.
func (g *Game) put(id int, pos Position) {
	if other, ok := g.grid[pos]; ok {
		panic(fmt.Sprintf("spider: cell %v already holds record %d", pos, other))
	}
	g.grid[pos] = id
	g.records[id].Position = pos
}
