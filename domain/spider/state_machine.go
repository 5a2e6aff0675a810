package spider

import "fmt"

// ActionType identifies a host request.
type ActionType string

const (
	ActionMove   ActionType = "move"   // explicit (from, to) move
	ActionSelect ActionType = "select" // click on a tableau cell: first legal move from it
	ActionDeal   ActionType = "deal"   // click on the reserve pile
)

// Action is an input event translated by the host into engine terms.
type Action struct {
	Type ActionType `json:"type"`
	From Position   `json:"from"`
	To   Position   `json:"to"`
}

// MoveAction builds the action applying m.
func MoveAction(m Move) Action {
	return Action{Type: ActionMove, From: m.From, To: m.To}
}

func (a Action) String() string {
	switch a.Type {
	case ActionMove:
		return fmt.Sprintf("move %v->%v", a.From, a.To)
	case ActionSelect:
		return fmt.Sprintf("select %v", a.From)
	default:
		return string(a.Type)
	}
}

// Resolve checks a against the current state and returns the concrete action
// that Apply would execute: a select becomes the move it stands for.
//
// Returns ErrIllegalMove, ErrNoReserve or ErrUnknownAction when the action
// cannot be applied. Those are ordinary misclicks, not failures of the engine.
func (g *Game) Resolve(a Action) (Action, error) {
	switch a.Type {
	case ActionMove:
		m := Move{From: a.From, To: a.To}
		if !g.applicable(m) {
			return Action{}, fmt.Errorf("%w: %v", ErrIllegalMove, m)
		}
		return a, nil
	case ActionSelect:
		m, ok := g.MoveFrom(a.From)
		if !ok {
			return Action{}, fmt.Errorf("%w: nothing to move from %v", ErrIllegalMove, a.From)
		}
		return MoveAction(m), nil
	case ActionDeal:
		if len(g.available) == 0 {
			return Action{}, ErrNoReserve
		}
		return Action{Type: ActionDeal}, nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
}

// Validate verifies that a can be applied to the current state.
func (g *Game) Validate(a Action) error {
	_, err := g.Resolve(a)
	return err
}

// Apply validates and executes a, returning the concrete action performed.
// An invalid action leaves the game untouched.
func (g *Game) Apply(a Action) (Action, error) {
	resolved, err := g.Resolve(a)
	if err != nil {
		return Action{}, err
	}
	switch resolved.Type {
	case ActionMove:
		if !g.ApplyMove(Move{From: resolved.From, To: resolved.To}) {
			return Action{}, fmt.Errorf("%w: %v", ErrIllegalMove, resolved)
		}
	case ActionDeal:
		if !g.Deal() {
			return Action{}, ErrNoReserve
		}
	}
	return resolved, nil
}
