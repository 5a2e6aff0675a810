// Package spider implements the rules engine of Spider Solitaire: the tableau
// layout, move legality, move execution and the dealing of reserve sets.
//
// # Core Types
//
// Game: the explicit game-state context. It owns an arena of card records,
// a position index mapping grid cells to records and the queue of reserve
// sets still to be dealt. Every rule operates on a *Game; there is no global
// state.
//
// Position: a (column, row) cell of the ten-column tableau. Rows grow
// downward without bound.
//
// Move: a (source, destination) pair produced by LegalMoves. A move is only
// meaningful for the state it was computed from.
//
// Action: a host request (move, select or deal) accepted by Validate and
// Apply.
//
// # Rules
//
// A shown card may move directly beneath any shown card one rank higher,
// provided the destination cell is empty. Suits are ignored. Every shown card
// stacked below the moved card follows it, keeping its offset, whether or not
// the stack forms a run. A hidden card is turned face up as soon as the cell
// below it is empty. Dealing places one reserve card at the bottom of each
// column and does not require the columns to be non-empty.
//
// There is no win condition: completed King to Ace runs are neither detected
// nor removed.
//
// # Concurrency
//
// A Game is not safe for concurrent use. Hosts must serialise input events
// (see package application).
package spider
