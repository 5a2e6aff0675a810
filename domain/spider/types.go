package spider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/spidertaire/domain/card"
)

// Columns is the number of tableau columns.
const Columns = 10

// Layout of a new game.
const (
	hiddenCards   = 44
	shownCards    = 10
	reserveSets   = 5
	cardsPerDeal  = Columns
	cardsPerGame  = 2 * card.DeckSize
	initialLayout = hiddenCards + shownCards
)

var (
	// ErrUnknownDifficulty is returned for a difficulty other than easy, medium or hard.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrOccupied is returned when placing a card on a taken cell.
	ErrOccupied = errors.New("cell already occupied")

	// ErrOutOfBounds is returned for a column outside 0..9 or a negative row.
	ErrOutOfBounds = errors.New("position outside the tableau")

	// ErrIllegalMove reports a move that cannot be executed in the current state.
	ErrIllegalMove = errors.New("move is not legal")

	// ErrNoReserve reports a deal with every reserve set already dealt.
	ErrNoReserve = errors.New("no reserve set left to deal")

	// ErrUnknownAction reports an action type the engine does not know.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidSnapshot wraps the reason a snapshot cannot be restored.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Position is a cell of the tableau grid.
type Position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// NextRow returns the position directly beneath p.
func (p Position) NextRow() Position {
	return Position{Column: p.Column, Row: p.Row + 1}
}

func (p Position) valid() bool {
	return p.Column >= 0 && p.Column < Columns && p.Row >= 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Visibility tells whether a card is face down or face up.
type Visibility uint8

const (
	Hidden Visibility = iota // face down
	Shown                    // face up
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}

func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Visibility) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hidden":
		*v = Hidden
	case "shown":
		*v = Shown
	default:
		return fmt.Errorf("invalid visibility %q", text)
	}
	return nil
}

// Difficulty determines the number of suits in play.
type Difficulty uint8

const (
	Easy   Difficulty = iota // one suit
	Medium                   // two suits
	Hard                     // four suits
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts "easy", "medium" or "hard" (case insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if d > Hard {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, d)
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// deck builds the 52-card deck of the difficulty's suit configuration.
func (d Difficulty) deck() (card.Deck, error) {
	switch d {
	case Easy:
		return card.FromSuit(card.Spades), nil
	case Medium:
		return card.FromSuits(card.Spades, card.Hearts), nil
	case Hard:
		return card.NewDeck(), nil
	default:
		return card.Deck{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, d)
	}
}

// Record is a card placed on the tableau.
type Record struct {
	Card       card.Card  `json:"card"`
	Position   Position   `json:"position"`
	Visibility Visibility `json:"visibility"`
}

// AvailableSet is a reserve group dealt one card per column.
type AvailableSet [Columns]card.Card

// Move relocates the shown card at From (and the cards stacked below it) to To.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}
