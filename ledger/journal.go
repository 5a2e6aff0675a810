package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/spidertaire/domain/spider"
)

// Journal is an append-only, hash-chained log of the actions applied to one
// game.
type Journal struct {
	mu      sync.RWMutex
	genesis spider.Snapshot
	blocks  []Block
}

// NewJournal creates a journal whose genesis block records the initial state
// of a game. The snapshot is kept so that the game can be replayed.
func NewJournal(initial spider.Snapshot) (*Journal, error) {
	j := &Journal{
		genesis: initial,
		blocks:  make([]Block, 0, 64),
	}

	digest, err := Digest(initial)
	if err != nil {
		return nil, err
	}
	genesis := Block{
		Index:       0,
		Timestamp:   time.Now().Unix(),
		PrevHash:    "0",
		Action:      spider.Action{Type: ActionGenesis},
		StateDigest: digest,
		Metadata:    Metadata{Reserve: len(initial.Available)},
	}
	genesis.Hash = calculateHash(genesis)
	j.blocks = append(j.blocks, genesis)

	return j, nil
}

// Append adds a block for an applied action. state is the snapshot of the game
// right after the action. The extra parameter can optionally contain
// additional metadata.
func (j *Journal) Append(action spider.Action, state spider.Snapshot, extra ...map[string]string) error {
	digest, err := Digest(state)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := j.blocks[len(j.blocks)-1]

	newBlock := Block{
		Index:       latest.Index + 1,
		Timestamp:   time.Now().Unix(),
		PrevHash:    latest.Hash,
		Action:      action,
		StateDigest: digest,
		Metadata: Metadata{
			Reserve: len(state.Available),
			Extra:   extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	if err := validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	j.blocks = append(j.blocks, newBlock)
	return nil
}

// GetLatest returns the most recently added block.
func (j *Journal) GetLatest() Block {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.blocks[len(j.blocks)-1]
}

// GetByIndex retrieves a block by its index in the chain. Returns an error if the index
// is out of range.
func (j *Journal) GetByIndex(index int) (Block, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if index < 0 || index >= len(j.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return j.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.blocks)
}

// Blocks returns a copy of the chain.
func (j *Journal) Blocks() []Block {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]Block, len(j.blocks))
	copy(out, j.blocks)
	return out
}

// Verify validates the integrity of the entire chain by checking the genesis
// block and each subsequent block's hash, index continuity and previous hash
// linkage.
func (j *Journal) Verify() error {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(j.blocks) == 0 {
		return fmt.Errorf("empty journal")
	}

	genesis := j.blocks[0]
	if genesis.PrevHash != "0" || genesis.Action.Type != ActionGenesis {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("genesis block hash mismatch")
	}

	for i := 1; i < len(j.blocks); i++ {
		if err := validateBlock(j.blocks[i], j.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// Replay rebuilds the game from the genesis snapshot by applying every
// journaled action, checking each resulting state against its digest.
func (j *Journal) Replay() (*spider.Game, error) {
	if err := j.Verify(); err != nil {
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	g, err := spider.Restore(j.genesis)
	if err != nil {
		return nil, err
	}
	for _, b := range j.blocks[1:] {
		if _, err := g.Apply(b.Action); err != nil {
			return nil, fmt.Errorf("block %d: %w", b.Index, err)
		}
		digest, err := Digest(g.Snapshot())
		if err != nil {
			return nil, err
		}
		if digest != b.StateDigest {
			return nil, fmt.Errorf("block %d: state digest mismatch", b.Index)
		}
	}
	return g, nil
}

// validateBlock verifies that a block is valid relative to the previous block.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	return nil
}

// Digest returns the hex sha256 of the JSON encoding of a snapshot.
func Digest(s spider.Snapshot) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// calculateHash computes the SHA256 hash of a block based on its index,
// timestamp, previous hash, action, state digest and reserve count.
func calculateHash(block Block) string {
	actionBytes, _ := json.Marshal(block.Action)
	extraBytes, _ := json.Marshal(block.Metadata.Extra)

	data := fmt.Sprintf("%d%d%s%s%s%d%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(actionBytes),
		block.StateDigest,
		block.Metadata.Reserve,
		string(extraBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
