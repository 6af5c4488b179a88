// Package work provides proof-of-work arithmetic for chain and branch
// evaluation.
//
// The work value of a block is the expected number of hash operations needed
// to produce a header hash under the block's difficulty target. Cumulative
// work decides between competing chains: the segment with more accumulated
// work wins.
package work

import (
	"math/big"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/model"
)

var (
	// oneLsh256 is 1 shifted left 256 bits.  It is defined here to avoid
	// the overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)
)

// CalculateBlockWork returns the work a block claims through its difficulty
// bits:
//
//	work = 2^256 / target
//
// A zero or negative target is not a valid claim and yields zero work.
func CalculateBlockWork(nBits model.NBit) *big.Int {
	target := nBits.CalculateTarget()
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}

	return new(big.Int).Div(oneLsh256, target)
}

// CalculateWork adds the work claimed by nBits to the cumulative work of all
// previous blocks. Cumulative work is carried in the same little-endian hash
// encoding the block store keeps it in.
func CalculateWork(prevWork *chainhash.Hash, nBits model.NBit) (*chainhash.Hash, error) {
	work := CalculateBlockWork(nBits)

	// Add to previous work
	newWork := new(big.Int).Add(new(big.Int).SetBytes(bt.ReverseBytes(prevWork.CloneBytes())), work)

	b := bt.ReverseBytes(newWork.Bytes())
	hash := &chainhash.Hash{}
	copy(hash[:], b)

	return hash, nil
}
