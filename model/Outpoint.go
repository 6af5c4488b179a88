package model

import (
	"fmt"
	"math"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// Outpoint identifies the output of a previous transaction by the creating
// transaction's ID and the output index within it.
type Outpoint struct {
	Txid chainhash.Hash
	Vout uint32
}

// nullVout is the output index a coinbase input carries; together with an
// all-zero txid it marks an outpoint that references no real output.
const nullVout = math.MaxUint32

var nullTxid chainhash.Hash

func NewOutpoint(txid *chainhash.Hash, vout uint32) Outpoint {
	return Outpoint{Txid: *txid, Vout: vout}
}

// OutpointFromInput returns the outpoint an input spends.
func OutpointFromInput(in *bt.Input) Outpoint {
	return Outpoint{
		Txid: *in.PreviousTxIDChainHash(),
		Vout: in.PreviousTxOutIndex,
	}
}

// IsNull reports whether the outpoint is the coinbase marker.
func (o Outpoint) IsNull() bool {
	return o.Vout == nullVout && o.Txid == nullTxid
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid.String(), o.Vout)
}

// CoinbaseHeightUnset marks a resolution whose creating transaction is not a
// coinbase. It keeps a real coinbase at height 0 distinguishable from "no
// coinbase".
const CoinbaseHeightUnset = math.MaxUint32

// PrevoutResolution is the mutable result a branch query writes into. It is
// attached to the evaluation of one transaction input and never stored in
// the branch itself.
//
// PopulatePrevout writes Output and CoinbaseHeight; PopulateSpent writes
// Spent and Confirmed. Neither touches the other's fields, so the two can be
// run in either order against the same resolution.
type PrevoutResolution struct {
	// Output is the resolved output, nil when the outpoint was not found in
	// the branch. A nil Output is an expected outcome: the caller falls back
	// to the block store for outputs at or below the fork height.
	Output *bt.Output

	// CoinbaseHeight is the absolute height of the block whose coinbase
	// created the output, or CoinbaseHeightUnset when the creating
	// transaction is not a coinbase. Consumers use "height set" as the
	// coinbase signal for maturity and BIP34 checks.
	CoinbaseHeight uint32

	// Spent and Confirmed report whether another transaction within the
	// branch consumes the output. The branch keeps the two equal; it does
	// not grade provisional against final spends.
	Spent     bool
	Confirmed bool
}

// NewPrevoutResolution returns a resolution in its not-found state.
func NewPrevoutResolution() *PrevoutResolution {
	return &PrevoutResolution{CoinbaseHeight: CoinbaseHeightUnset}
}

// Found reports whether the outpoint was resolved within the branch.
func (r *PrevoutResolution) Found() bool {
	return r.Output != nil
}

// FromCoinbase reports whether the resolved output was created by a coinbase
// transaction.
func (r *PrevoutResolution) FromCoinbase() bool {
	return r.CoinbaseHeight != CoinbaseHeightUnset
}
