// Package ledger implements an append-only journal of the actions applied to
// a Spider Solitaire game.
//
// # Core Components
//
// Journal: an append-only log of applied actions with sha256 hash chaining
// for tamper detection.
//
// Block: a single applied action with the digest of the game state it
// produced and the link to the previous block.
//
// # Usage
//
// Create a journal from the snapshot of a new game, then append a block
// every time an action is applied. Verify can be called at any time to check
// that the chain is intact; Replay rebuilds the game the journal describes.
package ledger
