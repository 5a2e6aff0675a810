package spider

import "slices"

// LegalMoves computes every legal single-card placement from scratch.
//
// A shown card C can move to the cell beneath a shown card R when R's rank is
// exactly one above C's and that cell is empty. Hidden cards never qualify but
// still block the destination. Suits are not compared.
//
// Moves are listed by source position, column first. The result is stale as
// soon as the game changes.
func (g *Game) LegalMoves() []Move {
	shown := make([]Record, 0, len(g.records))
	for _, r := range g.Records() {
		if r.Visibility == Shown {
			shown = append(shown, r)
		}
	}

	moves := make([]Move, 0, 40)
	for _, c := range shown {
		for _, r := range shown {
			next, ok := r.Card.Rank.Next()
			if !ok || next != c.Card.Rank {
				continue
			}
			target := r.Position.NextRow()
			if g.Occupied(target) {
				continue
			}
			moves = append(moves, Move{From: c.Position, To: target})
		}
	}
	return moves
}

// IsLegal reports whether m is currently a legal move.
func (g *Game) IsLegal(m Move) bool {
	return slices.Contains(g.LegalMoves(), m)
}

// MoveFrom returns the first legal move whose source is pos and whose stack
// fits at the destination, which is how a click on a tableau card is resolved.
func (g *Game) MoveFrom(pos Position) (Move, bool) {
	for _, m := range g.LegalMoves() {
		if m.From != pos {
			continue
		}
		if _, ok := g.relocations(m); ok {
			return m, true
		}
	}
	return Move{}, false
}
