package branch

import (
	"github.com/bsv-blockchain/go-chainbranch/errors"
	"github.com/bsv-blockchain/go-chainbranch/model"
)

// PopulateSpent reports whether outpoint is consumed by a transaction inside
// the branch, writing Spent and Confirmed into res. The two flags are kept
// equal; the branch does not grade provisional against final spends. Only
// the spent flags are written; the resolution fields belong to
// PopulatePrevout.
//
// The oldest block of the branch is excluded from the scan, so a single
// collision counts as spent. The spend scan is linear in the branch size;
// branches are bounded by the organizer, which keeps this acceptable for
// reorganization depths seen in practice.
func (b *Branch) PopulateSpent(outpoint model.Outpoint, res *model.PrevoutResolution) {
	// With fewer than two blocks there is nothing left to examine: any
	// spender sharing the branch with the transaction under test would have
	// to sit in the same single block, and same-block double spends are
	// already rejected by the block's internal-consistency check.
	if b.Size() < 2 {
		res.Spent = false
		res.Confirmed = false

		return
	}

	spent := false

	for _, block := range b.blocks[1:] {
		if blockSpends(block, outpoint) {
			spent = true
			break
		}
	}

	res.Spent = spent
	res.Confirmed = spent
}

// blockSpends reports whether any non-coinbase transaction of the block has
// an input referencing outpoint. The coinbase is skipped because its input
// never references a real output.
func blockSpends(block *model.Block, outpoint model.Outpoint) bool {
	if len(block.Txs) == 0 {
		// An empty block cannot have passed the upstream structural checks.
		// Degrading this to "unspent" could green-light a double spend, so
		// it has to stop the process instead.
		panic(errors.NewBlockInvalidError("empty block %s in branch", block.Hash()))
	}

	for _, tx := range block.Txs[1:] {
		for _, input := range tx.Inputs {
			if input.PreviousTxOutIndex == outpoint.Vout &&
				outpoint.Txid.IsEqual(input.PreviousTxIDChainHash()) {
				return true
			}
		}
	}

	return false
}
