package spider

import (
	"errors"
	"reflect"
	"testing"

	"github.com/luca-patrignani/spidertaire/domain/card"
)

// cascadeTableau lays out column 0 as two hidden cards, a shown 8 at (0,2)
// and a shown card of rank below at (0,3); column 4 holds four hidden cards
// and a shown 9 at (4,4).
func cascadeTableau(t *testing.T, below card.Rank) *Game {
	t.Helper()
	g := NewEmptyGame(Easy)
	column(t, g, 0, 2)
	place(t, g, card.Eight, 0, 2, Shown)
	place(t, g, below, 0, 3, Shown)
	column(t, g, 4, 4)
	place(t, g, card.Nine, 4, 4, Shown)
	return g
}

func TestApplyMoveCascadesStack(t *testing.T) {
	g := cascadeTableau(t, card.Seven)
	m := Move{From: Position{Column: 0, Row: 2}, To: Position{Column: 4, Row: 5}}
	if !g.ApplyMove(m) {
		t.Fatalf("expected %v to be applied, legal moves: %v", m, g.LegalMoves())
	}

	r, ok := g.At(Position{Column: 4, Row: 5})
	if !ok || r.Card.Rank != card.Eight {
		t.Fatalf("expected the 8 at (4,5), got %v %v", r, ok)
	}
	r, ok = g.At(Position{Column: 4, Row: 6})
	if !ok || r.Card.Rank != card.Seven {
		t.Fatalf("expected the 7 at (4,6), got %v %v", r, ok)
	}
	if r.Position != (Position{Column: 4, Row: 6}) {
		t.Fatalf("record position not updated: %v", r.Position)
	}
	for _, pos := range []Position{{Column: 0, Row: 2}, {Column: 0, Row: 3}} {
		if g.Occupied(pos) {
			t.Fatalf("expected %v to be vacated", pos)
		}
	}
	if len(g.Records()) != 9 {
		t.Fatalf("a move must not create or drop cards, got %d", len(g.Records()))
	}
}

// The engine moves every shown card stacked below the selected one, even
// when the stack is not a descending same-suit run. This differs from classic
// Spider Solitaire and must stay that way.
func TestApplyMoveCascadesNonRunStackWithoutContinuityCheck(t *testing.T) {
	g := cascadeTableau(t, card.King)
	if err := g.Place(card.Card{Rank: card.Two, Suit: card.Hearts}, Position{Column: 0, Row: 4}, Shown); err != nil {
		t.Fatal(err)
	}
	m := Move{From: Position{Column: 0, Row: 2}, To: Position{Column: 4, Row: 5}}
	if !g.ApplyMove(m) {
		t.Fatalf("expected %v to be applied", m)
	}
	want := map[Position]card.Rank{
		{Column: 4, Row: 5}: card.Eight,
		{Column: 4, Row: 6}: card.King,
		{Column: 4, Row: 7}: card.Two,
	}
	for pos, rank := range want {
		r, ok := g.At(pos)
		if !ok || r.Card.Rank != rank {
			t.Fatalf("expected %v at %v, got %v %v", rank, pos, r, ok)
		}
	}
}

func TestApplyMoveIgnoresIllegalMove(t *testing.T) {
	g := cascadeTableau(t, card.Seven)
	before := g.Snapshot()
	m := Move{From: Position{Column: 0, Row: 3}, To: Position{Column: 4, Row: 5}}
	if g.ApplyMove(m) {
		t.Fatalf("%v is not legal", m)
	}
	after := g.Snapshot()
	if len(before.Cells) != len(after.Cells) {
		t.Fatal("state changed after an illegal move")
	}
	for i := range before.Cells {
		if before.Cells[i] != after.Cells[i] {
			t.Fatalf("cell %d changed: %v -> %v", i, before.Cells[i], after.Cells[i])
		}
	}
}

func TestApplyMoveRevealsExposedCard(t *testing.T) {
	g := cascadeTableau(t, card.Seven)
	if r, _ := g.At(Position{Column: 0, Row: 1}); r.Visibility != Hidden {
		t.Fatal("expected (0,1) to start hidden")
	}
	g.ApplyMove(Move{From: Position{Column: 0, Row: 2}, To: Position{Column: 4, Row: 5}})
	if r, _ := g.At(Position{Column: 0, Row: 1}); r.Visibility != Shown {
		t.Fatal("expected (0,1) to be revealed")
	}
	if r, _ := g.At(Position{Column: 0, Row: 0}); r.Visibility != Hidden {
		t.Fatal("expected (0,0) to stay hidden")
	}
}

func TestRevealStaysShown(t *testing.T) {
	g := NewEmptyGame(Easy)
	column(t, g, 3, 2)
	place(t, g, card.Five, 3, 2, Shown)
	place(t, g, card.Six, 7, 0, Shown)
	g.AddAvailable(fullSet(card.Ace))

	if !g.ApplyMove(Move{From: Position{Column: 3, Row: 2}, To: Position{Column: 7, Row: 1}}) {
		t.Fatal("expected the five to move under the six")
	}
	if r, _ := g.At(Position{Column: 3, Row: 1}); r.Visibility != Shown {
		t.Fatal("expected (3,1) to be revealed")
	}

	// an unrelated change refills (3,2); the card must stay face up
	if !g.Deal() {
		t.Fatal("expected a deal")
	}
	if !g.Occupied(Position{Column: 3, Row: 2}) {
		t.Fatal("expected the deal to land on (3,2)")
	}
	g.Reveal()
	if r, _ := g.At(Position{Column: 3, Row: 1}); r.Visibility != Shown {
		t.Fatal("a revealed card must never be hidden again")
	}
}

func TestRevealIsIdempotent(t *testing.T) {
	g := NewEmptyGame(Easy)
	place(t, g, card.Five, 0, 0, Hidden)
	place(t, g, card.Five, 1, 0, Hidden)
	place(t, g, card.Five, 1, 1, Hidden)

	flipped := g.Reveal()
	if len(flipped) != 2 {
		t.Fatalf("expected two cards revealed, got %v", flipped)
	}
	if again := g.Reveal(); len(again) != 0 {
		t.Fatalf("second reveal flipped %v", again)
	}
	if r, _ := g.At(Position{Column: 1, Row: 0}); r.Visibility != Hidden {
		t.Fatal("a covered card must stay hidden")
	}
}

// assertIndexed fails when a record and the position index disagree.
func assertIndexed(t *testing.T, g *Game) {
	t.Helper()
	for _, r := range g.Records() {
		got, ok := g.At(r.Position)
		if !ok || got != r {
			t.Fatalf("record %v is not indexed at its position (got %v %v)", r, got, ok)
		}
	}
}

// Moving the 5 under its own 6 carries the 6 along and leaves a gap at rows
// 1 and 2 of column 0. The queen of column 1 may then legally go to (0,1),
// but its twos would cascade onto the 5 and 6 that now sit lower down.
func TestApplyMoveRefusesCascadeOntoCardsBelowGap(t *testing.T) {
	g := NewEmptyGame(Easy)
	place(t, g, card.King, 0, 0, Hidden)
	place(t, g, card.Five, 0, 1, Shown)
	place(t, g, card.Six, 0, 2, Shown)
	place(t, g, card.Queen, 1, 0, Shown)
	for row := 1; row <= 3; row++ {
		place(t, g, card.Two, 1, row, Shown)
	}

	first := Move{From: Position{Column: 0, Row: 1}, To: Position{Column: 0, Row: 3}}
	if !g.ApplyMove(first) {
		t.Fatalf("expected %v to be applied, legal moves: %v", first, g.LegalMoves())
	}
	assertIndexed(t, g)
	for _, pos := range []Position{{Column: 0, Row: 1}, {Column: 0, Row: 2}} {
		if g.Occupied(pos) {
			t.Fatalf("expected a gap at %v", pos)
		}
	}

	blocked := Move{From: Position{Column: 1, Row: 0}, To: Position{Column: 0, Row: 1}}
	if !g.IsLegal(blocked) {
		t.Fatalf("expected %v among the legal moves %v", blocked, g.LegalMoves())
	}
	before := g.Snapshot()
	if g.ApplyMove(blocked) {
		t.Fatalf("%v must not be applied over occupied cells", blocked)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Fatal("a refused move changed the game")
	}
	assertIndexed(t, g)

	if _, err := g.Apply(MoveAction(blocked)); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if err := g.Validate(MoveAction(blocked)); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected Validate to agree with Apply, got %v", err)
	}
	if m, ok := g.MoveFrom(blocked.From); ok {
		t.Fatalf("select must skip the blocked move, got %v", m)
	}
}
