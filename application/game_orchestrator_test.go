package application

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"

	"github.com/luca-patrignani/spidertaire/domain/spider"
)

func newTestOrchestrator(t *testing.T) *GameOrchestrator {
	t.Helper()
	o, err := NewGameOrchestrator(spider.Easy,
		WithSeed(42),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("failed to create orchestrator: %v", err)
	}
	return o
}

func TestSeededGamesAreReproducible(t *testing.T) {
	a := newTestOrchestrator(t)
	b := newTestOrchestrator(t)
	if !reflect.DeepEqual(a.View(), b.View()) {
		t.Fatal("same seed produced different games")
	}
	next, err := a.NewGame(spider.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(next, b.View()) {
		t.Fatal("a new game reused the previous shuffle")
	}
}

func TestSubmitDealJournalsAndNotifies(t *testing.T) {
	o := newTestOrchestrator(t)
	var got []spider.View
	unsubscribe := o.Subscribe(func(v spider.View) { got = append(got, v) })

	view, err := o.Submit(spider.Action{Type: spider.ActionDeal})
	if err != nil {
		t.Fatal(err)
	}
	if view.Reserve != 4 {
		t.Fatalf("expected 4 reserve sets, got %d", view.Reserve)
	}
	if len(got) != 2 || got[0].Reserve != 5 || got[1].Reserve != 4 {
		t.Fatalf("expected the initial view and one notification, got %d views", len(got))
	}
	if o.Journal().Len() != 2 {
		t.Fatalf("expected genesis plus one block, got %d", o.Journal().Len())
	}

	unsubscribe()
	if _, err := o.Submit(spider.Action{Type: spider.ActionDeal}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatal("unsubscribed listener was notified")
	}
	if err := o.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestSubmitIgnoresMisclicks(t *testing.T) {
	o := newTestOrchestrator(t)
	before := o.View()
	_, err := o.Submit(spider.Action{Type: spider.ActionMove, From: spider.Position{Column: 0, Row: 0}, To: spider.Position{Column: 9, Row: 9}})
	if !errors.Is(err, spider.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if !reflect.DeepEqual(before, o.View()) {
		t.Fatal("a rejected action changed the game")
	}
	if o.Journal().Len() != 1 {
		t.Fatal("a rejected action was journaled")
	}

	for range 5 {
		if _, err := o.Submit(spider.Action{Type: spider.ActionDeal}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := o.Submit(spider.Action{Type: spider.ActionDeal}); !errors.Is(err, spider.ErrNoReserve) {
		t.Fatalf("expected ErrNoReserve, got %v", err)
	}
}

func TestSubmitJournalsResolvedSelect(t *testing.T) {
	o := newTestOrchestrator(t)
	// deal until some move exists
	view := o.View()
	for len(view.LegalMoves) == 0 && view.Reserve > 0 {
		var err error
		if view, err = o.Submit(spider.Action{Type: spider.ActionDeal}); err != nil {
			t.Fatal(err)
		}
	}
	if len(view.LegalMoves) == 0 {
		t.Skip("seeded game has no legal move")
	}
	from := view.LegalMoves[0].From
	if _, err := o.Submit(spider.Action{Type: spider.ActionSelect, From: from}); err != nil {
		t.Fatal(err)
	}
	latest := o.Journal().GetLatest()
	if latest.Action.Type != spider.ActionMove || latest.Action.From != from {
		t.Fatalf("expected the resolved move to be journaled, got %v", latest.Action)
	}
	if err := o.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestConcurrentSubmits(t *testing.T) {
	o := newTestOrchestrator(t)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.Submit(spider.Action{Type: spider.ActionDeal})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	applied := 0
	for err := range errs {
		switch {
		case err == nil:
			applied++
		case !errors.Is(err, spider.ErrNoReserve):
			t.Fatalf("unexpected error %v", err)
		}
	}
	if applied != 5 {
		t.Fatalf("expected exactly 5 deals, got %d", applied)
	}
	if err := o.Verify(); err != nil {
		t.Fatal(err)
	}
}
