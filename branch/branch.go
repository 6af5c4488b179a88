// Package branch implements the in-memory candidate branch used while
// evaluating a chain reorganization: an ordered, not-yet-committed run of
// consecutive blocks extending a known height of the stored chain.
//
// An organizer builds a branch by walking candidate blocks backwards from a
// tip, pushing each one in at the oldest end until a block fails to link.
// Once built, the branch answers the questions the validation engine needs
// before deciding whether to adopt it: how much work the branch claims,
// whether an outpoint resolves to an output created inside the branch,
// whether that output is already spent inside the branch, and what the
// header fields at a given uncommitted height are.
//
// A branch is owned by a single reorganization attempt: one goroutine grows
// it and later reads from it. No internal locking is provided. Blocks are
// shared immutable pointers and are never copied or mutated by the branch.
package branch

import (
	"math/big"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/model"
	"github.com/bsv-blockchain/go-chainbranch/ulogger"
	"github.com/bsv-blockchain/go-chainbranch/util"
	"github.com/bsv-blockchain/go-chainbranch/work"
)

// Branch holds the uncommitted blocks above a fork point. blocks[0] is the
// oldest block, at forkHeight+1; the last element is the branch tip. Every
// block's previous-hash links to the block before it; PushFront establishes
// the invariant incrementally and nothing re-checks it afterwards.
type Branch struct {
	logger     ulogger.Logger
	forkHeight uint32
	blocks     []*model.Block
}

// ForkPoint identifies the stored-chain block a branch attaches to.
type ForkPoint struct {
	Hash   *chainhash.Hash
	Height uint32
}

// New creates an empty branch anchored at the given fork height.
func New(logger ulogger.Logger, forkHeight uint32) *Branch {
	return &Branch{
		logger:     logger,
		forkHeight: forkHeight,
		blocks:     make([]*model.Block, 0),
	}
}

// ForkHeight returns the height of the last block shared with the stored
// chain. The branch content begins at ForkHeight()+1.
func (b *Branch) ForkHeight() uint32 {
	return b.forkHeight
}

// SetForkHeight re-anchors the branch. Callers may only do this while the
// branch is empty, or when they have otherwise guaranteed the link invariant
// still holds; nothing is validated here.
func (b *Branch) SetForkHeight(forkHeight uint32) {
	b.forkHeight = forkHeight
}

// PushFront inserts block below the current oldest block. The block is
// accepted when the branch is empty or when the current oldest block
// declares block's hash as its previous block hash; otherwise the branch is
// left untouched and false is returned. A rejection is an expected outcome
// while walking candidate blocks backwards, not an error.
func (b *Branch) PushFront(block *model.Block) bool {
	if !b.Empty() {
		oldest := b.blocks[0]
		if !oldest.Header.HashPrevBlock.IsEqual(block.Hash()) {
			b.logger.Debugf("branch at fork height %d rejected block %s: oldest block %s does not link to it", b.forkHeight, block.Hash(), oldest.Hash())
			return false
		}
	}

	b.blocks = append([]*model.Block{block}, b.blocks...)

	return true
}

// Top returns the branch tip, or nil when the branch is empty.
func (b *Branch) Top() *model.Block {
	if b.Empty() {
		return nil
	}

	return b.blocks[len(b.blocks)-1]
}

// TopHeight returns the absolute height of the branch tip; it equals the
// fork height when the branch is empty.
func (b *Branch) TopHeight() uint32 {
	return b.forkHeight + uint32(len(b.blocks))
}

// Blocks returns the underlying block sequence, oldest first. The slice is
// shared, not copied; callers must treat it as read-only.
func (b *Branch) Blocks() []*model.Block {
	return b.blocks
}

func (b *Branch) Empty() bool {
	return len(b.blocks) == 0
}

func (b *Branch) Size() int {
	return len(b.blocks)
}

// Hash returns the hash of the stored-chain block this branch extends: the
// previous-block hash declared by the oldest branch block, or the zero hash
// when the branch is empty.
func (b *Branch) Hash() *chainhash.Hash {
	if b.Empty() {
		return &chainhash.Hash{}
	}

	return b.blocks[0].Header.HashPrevBlock
}

// Fork returns the fork point descriptor for this branch.
func (b *Branch) Fork() ForkPoint {
	return ForkPoint{
		Hash:   b.Hash(),
		Height: b.forkHeight,
	}
}

// indexOf maps an absolute chain height to a position in blocks. The
// subtraction saturates at zero, so the numeric result alone cannot signal
// an invalid height; callers must check height > forkHeight first.
func (b *Branch) indexOf(height uint32) int {
	return int(util.SafeSubtract(util.SafeSubtract(height, b.forkHeight), 1))
}

// heightAt maps a position in blocks to an absolute chain height.
func (b *Branch) heightAt(index int) uint32 {
	return util.SafeAdd(util.SafeAdd(uint32(index), b.forkHeight), 1)
}

// Work returns the total work the branch's headers claim.
//
// The organizer compares this value against the actual accumulated work of
// the competing stored segment before validating a single block. The
// comparison is both the consensus fork-choice rule and a denial-of-service
// gate: a branch has to claim more work than the stored segment has already
// proven before it earns any per-block validation effort, so cheap low-work
// spam never gets that far. A longer run of low-work headers can still pass
// the gate, but only by claiming the same aggregate work as a shorter
// high-work run, so splitting work across more blocks buys an attacker
// nothing. Whether each header's work was actually expended is re-checked
// during block validation.
func (b *Branch) Work() *big.Int {
	total := new(big.Int)

	for _, block := range b.blocks {
		total.Add(total, work.CalculateBlockWork(block.Header.Bits))
	}

	return total
}

// ChainWork appends the branch's claimed work to the cumulative chain work
// at the fork point, carried in the hash encoding the block store uses.
func (b *Branch) ChainWork(forkWork *chainhash.Hash) (*chainhash.Hash, error) {
	cumulative := forkWork

	var err error
	for _, block := range b.blocks {
		if cumulative, err = work.CalculateWork(cumulative, block.Header.Bits); err != nil {
			return nil, err
		}
	}

	return cumulative, nil
}

// blockAt returns the branch block at the given absolute height, or nil when
// the height is at or below the fork point or beyond the tip.
func (b *Branch) blockAt(height uint32) *model.Block {
	if height <= b.forkHeight {
		return nil
	}

	index := b.indexOf(height)
	if index >= len(b.blocks) {
		return nil
	}

	return b.blocks[index]
}
