// Package application wires the Spider Solitaire engine to its hosts. The
// GameOrchestrator is the single owner of the game state: hosts submit
// actions to it, it validates and applies them one at a time, records them in
// the journal and notifies subscribed hosts of the new view.
package application

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/luca-patrignani/spidertaire/domain/spider"
	"github.com/luca-patrignani/spidertaire/ledger"
)

// ErrCorruptedJournal is returned when the journal fails verification.
var ErrCorruptedJournal = errors.New("journal verification failed")

// GameOrchestrator serialises host input events against one game.
type GameOrchestrator struct {
	mu        sync.Mutex
	game      *spider.Game    // stato del gioco
	journal   *ledger.Journal // log immutabile
	logger    *slog.Logger
	seed      *uint64
	games     uint64
	listeners map[int]func(spider.View)
	nextID    int
}

// Option configures a GameOrchestrator.
type Option func(*GameOrchestrator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *GameOrchestrator) {
		o.logger = logger
	}
}

// WithSeed makes every new game shuffle deterministically. The n-th game
// started by the orchestrator uses seed+n.
func WithSeed(seed uint64) Option {
	return func(o *GameOrchestrator) {
		o.seed = &seed
	}
}

// NewGameOrchestrator starts a game of the given difficulty.
func NewGameOrchestrator(difficulty spider.Difficulty, opts ...Option) (*GameOrchestrator, error) {
	o := &GameOrchestrator{
		logger:    slog.Default(),
		listeners: make(map[int]func(spider.View)),
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.start(difficulty); err != nil {
		return nil, err
	}
	return o, nil
}

// start replaces the current game and journal. o.mu must be held or o not yet shared.
func (o *GameOrchestrator) start(difficulty spider.Difficulty) error {
	var gameOpts []spider.Option
	if o.seed != nil {
		s := *o.seed + o.games
		gameOpts = append(gameOpts, spider.WithRand(rand.New(rand.NewPCG(s, s))))
	}
	game, err := spider.NewGame(difficulty, gameOpts...)
	if err != nil {
		return err
	}
	journal, err := ledger.NewJournal(game.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to create journal: %w", err)
	}
	o.game = game
	o.journal = journal
	o.games++
	o.logger.Info("new game", "difficulty", difficulty.String(), "reserve", game.Reserve())
	return nil
}

// Submit validates and applies an action. Ordinary misclicks (illegal moves,
// dealing with an empty reserve) are returned as errors and leave the game
// untouched.
func (o *GameOrchestrator) Submit(action spider.Action) (spider.View, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	done, err := o.game.Apply(action)
	if err != nil {
		o.logger.Info("action ignored", "action", action.String(), "reason", err.Error())
		return o.game.View(), err
	}
	if err := o.journal.Append(done, o.game.Snapshot()); err != nil {
		return spider.View{}, fmt.Errorf("failed to journal %v: %w", done, err)
	}
	view := o.game.View()
	o.logger.Debug("action applied", "action", done.String(), "reserve", view.Reserve, "legal_moves", len(view.LegalMoves))
	o.notify(view)
	return view, nil
}

// NewGame discards the current game and starts a new one.
func (o *GameOrchestrator) NewGame(difficulty spider.Difficulty) (spider.View, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.start(difficulty); err != nil {
		return spider.View{}, err
	}
	view := o.game.View()
	o.notify(view)
	return view, nil
}

// View returns the current host-facing state.
func (o *GameOrchestrator) View() spider.View {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.game.View()
}

// Difficulty returns the difficulty of the current game.
func (o *GameOrchestrator) Difficulty() spider.Difficulty {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.game.Difficulty()
}

// Journal returns the journal of the current game.
func (o *GameOrchestrator) Journal() *ledger.Journal {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.journal
}

// Verify checks the journal of the current game by replaying it from the
// genesis state.
func (o *GameOrchestrator) Verify() error {
	if _, err := o.Journal().Replay(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptedJournal, err)
	}
	return nil
}

// Subscribe registers fn and calls it at once with the current view, then
// after every applied action or new game. fn runs while the orchestrator is
// locked, so views arrive in order; it must return quickly and must not call
// back into the orchestrator. The returned function unsubscribes.
func (o *GameOrchestrator) Subscribe(fn func(spider.View)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	fn(o.game.View())
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.listeners, id)
	}
}

// notify must be called with o.mu held.
func (o *GameOrchestrator) notify(view spider.View) {
	for _, fn := range o.listeners {
		fn(view)
	}
}
