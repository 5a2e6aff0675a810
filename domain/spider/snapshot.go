package spider

import (
	"fmt"

	"github.com/luca-patrignani/spidertaire/domain/card"
)

// Snapshot is the complete state of a game, reserve cards included. It is
// what Restore consumes and what the move journal digests.
type Snapshot struct {
	Difficulty Difficulty     `json:"difficulty"`
	Cells      []Record       `json:"cells"`
	Available  []AvailableSet `json:"available"`
}

// Cell is a tableau cell as published to hosts. Card is nil for hidden cards.
type Cell struct {
	Position   Position   `json:"position"`
	Visibility Visibility `json:"visibility"`
	Card       *card.Card `json:"card,omitempty"`
}

// View is what a host reads once per frame to draw the game.
type View struct {
	Difficulty Difficulty   `json:"difficulty"`
	Cells      []Cell       `json:"cells"`
	LegalMoves []Move       `json:"legal_moves"`
	Reserve    int          `json:"reserve"`
	Heights    [Columns]int `json:"heights"`
}

// Snapshot serializes the current state.
func (g *Game) Snapshot() Snapshot {
	available := make([]AvailableSet, len(g.available))
	copy(available, g.available)
	return Snapshot{
		Difficulty: g.difficulty,
		Cells:      g.Records(),
		Available:  available,
	}
}

// View returns the host-facing state: cells, legal moves and reserve count.
func (g *Game) View() View {
	records := g.Records()
	cells := make([]Cell, len(records))
	for i, r := range records {
		cells[i] = Cell{Position: r.Position, Visibility: r.Visibility}
		if r.Visibility == Shown {
			c := r.Card
			cells[i].Card = &c
		}
	}
	return View{
		Difficulty: g.difficulty,
		Cells:      cells,
		LegalMoves: g.LegalMoves(),
		Reserve:    len(g.available),
		Heights:    g.Heights(),
	}
}

// Restore rebuilds a game from a snapshot. Cells must be inside the tableau,
// hold valid cards and not overlap.
func Restore(s Snapshot) (*Game, error) {
	if s.Difficulty > Hard {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidSnapshot, ErrUnknownDifficulty, s.Difficulty)
	}
	g := NewEmptyGame(s.Difficulty)
	for _, r := range s.Cells {
		if !r.Card.Rank.Valid() {
			return nil, fmt.Errorf("%w: %w: %d at %v", ErrInvalidSnapshot, card.ErrInvalidRank, r.Card.Rank, r.Position)
		}
		if err := g.Place(r.Card, r.Position, r.Visibility); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	}
	for _, set := range s.Available {
		g.AddAvailable(set)
	}
	g.Reveal()
	return g, nil
}
