package ledger

import "github.com/luca-patrignani/spidertaire/domain/spider"

// ActionGenesis marks the first block of a journal.
const ActionGenesis spider.ActionType = "genesis"

// Block is one entry of the journal.
type Block struct {
	Index       int           `json:"index"`
	Timestamp   int64         `json:"timestamp"`
	PrevHash    string        `json:"prev_hash"`
	Hash        string        `json:"hash"`
	Action      spider.Action `json:"action"`
	StateDigest string        `json:"state_digest"` // sha256 of the snapshot after Action
	Metadata    Metadata      `json:"metadata"`
}

// Metadata carries information about the game after the block's action.
type Metadata struct {
	Reserve int               `json:"reserve"` // reserve sets left after Action
	Extra   map[string]string `json:"extra,omitempty"`
}
