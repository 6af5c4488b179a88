package branch

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/model"
	"github.com/bsv-blockchain/go-chainbranch/ulogger"
	"github.com/stretchr/testify/require"
)

// newTestBlock builds a block at height on top of prev, with extra
// transactions following the generated coinbase.
func newTestBlock(t *testing.T, prev *chainhash.Hash, height uint32, txs ...*bt.Tx) *model.Block {
	t.Helper()

	block, err := model.NewTestBlock(prev, height, txs...)
	require.NoError(t, err)

	return block
}

// newLinkedBlocks builds n consecutive blocks starting at startHeight, the
// first one on top of prev. Blocks are returned oldest first.
func newLinkedBlocks(t *testing.T, prev *chainhash.Hash, startHeight uint32, n int) []*model.Block {
	t.Helper()

	blocks := make([]*model.Block, 0, n)

	for i := 0; i < n; i++ {
		block := newTestBlock(t, prev, startHeight+uint32(i))
		blocks = append(blocks, block)
		prev = block.Hash()
	}

	return blocks
}

// growBranch pushes blocks (given oldest first) into a new branch the way an
// organizer does: tip first, walking backwards.
func growBranch(t *testing.T, forkHeight uint32, blocks []*model.Block) *Branch {
	t.Helper()

	b := New(ulogger.NewTestLogger(t), forkHeight)

	for i := len(blocks) - 1; i >= 0; i-- {
		require.True(t, b.PushFront(blocks[i]), "block %s must link", blocks[i].Hash())
	}

	return b
}

// replaceTxs swaps a block's transaction list, keeping the header. Branch
// queries never verify merkle roots, so tests can assemble arbitrary
// transaction placements this way.
func replaceTxs(t *testing.T, block *model.Block, txs ...*bt.Tx) *model.Block {
	t.Helper()

	replaced, err := model.NewBlock(block.Header, txs)
	require.NoError(t, err)

	return replaced
}
