package branch

import (
	"github.com/bsv-blockchain/go-chainbranch/model"
)

// PopulatePrevout resolves outpoint against the branch and writes the
// outcome into res. Only the resolution fields (Output, CoinbaseHeight) are
// written; the spent flags belong to PopulateSpent.
//
// Blocks are scanned newest to oldest. The direction matters: under BIP30
// two transactions in the branch may share an id, and the most recently
// mined one is the live one, so the first match from the tip is the right
// candidate. Transactions within a block are scanned in order, and the
// block height is recorded iff the match sits at the coinbase position —
// consumers treat the presence of the height as the "created by a coinbase"
// signal for maturity and BIP34 checks, independent of its value.
//
// Not finding the outpoint is a normal outcome; the caller falls back to the
// block store for outputs created at or below the fork height.
func (b *Branch) PopulatePrevout(outpoint model.Outpoint, res *model.PrevoutResolution) {
	res.Output = nil
	res.CoinbaseHeight = model.CoinbaseHeightUnset

	// A coinbase input references no real output.
	if outpoint.IsNull() {
		return
	}

	for index := len(b.blocks) - 1; index >= 0; index-- {
		for position, tx := range b.blocks[index].Txs {
			if !outpoint.Txid.IsEqual(tx.TxIDChainHash()) || outpoint.Vout >= uint32(len(tx.Outputs)) {
				continue
			}

			res.Output = tx.Outputs[outpoint.Vout]

			if position == 0 {
				res.CoinbaseHeight = b.heightAt(index)
			}

			return
		}
	}
}
