package card

import (
	"errors"
	"testing"
)

func TestRankBoundaries(t *testing.T) {
	if r, ok := King.Previous(); ok {
		t.Fatalf("expected King to have no previous rank, got %v", r)
	}
	if r, ok := Ace.Next(); ok {
		t.Fatalf("expected Ace to have no next rank, got %v", r)
	}
	if r, _ := Seven.Previous(); r != Eight {
		t.Fatalf("expected 8 above 7, got %v", r)
	}
	if r, _ := Seven.Next(); r != Six {
		t.Fatalf("expected 6 below 7, got %v", r)
	}
}

func TestRankRoundTrip(t *testing.T) {
	for _, rank := range Ranks() {
		if rank == Ace {
			continue
		}
		next, ok := rank.Next()
		if !ok {
			t.Fatalf("rank %v should have a next rank", rank)
		}
		back, ok := next.Previous()
		if !ok || back != rank {
			t.Fatalf("round trip of %v gave %v", rank, back)
		}
	}
}

func TestRankNumbers(t *testing.T) {
	if King.Number() != 13 {
		t.Fatalf("expected K=13, got %d", King.Number())
	}
	if Ace.Number() != 1 {
		t.Fatalf("expected A=1, got %d", Ace.Number())
	}
	seen := map[Rank]bool{}
	for n := 1; n <= 13; n++ {
		r, err := RankFromNumber(n)
		if err != nil {
			t.Fatal(err)
		}
		if r.Number() != n {
			t.Fatalf("expected %d, got %d", n, r.Number())
		}
		seen[r] = true
	}
	if len(seen) != 13 {
		t.Fatalf("expected 13 distinct ranks, got %d", len(seen))
	}
}

func TestRankFromNumberInvalid(t *testing.T) {
	for _, n := range []int{0, 14, 100, -1} {
		_, err := RankFromNumber(n)
		if !errors.Is(err, ErrInvalidRank) {
			t.Fatalf("expected ErrInvalidRank for %d, got %v", n, err)
		}
	}
}

func TestLabels(t *testing.T) {
	c := Card{Rank: Ten, Suit: Spades}
	if c.String() != "10♠" {
		t.Fatalf("expected 10♠, got %s", c.String())
	}
	c = Card{Rank: Queen, Suit: Hearts}
	if c.String() != "Q♥" {
		t.Fatalf("expected Q♥, got %s", c.String())
	}
	if !Diamonds.IsRed() || Clubs.IsRed() {
		t.Fatal("wrong colour grouping")
	}
}
