package model

import (
	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/errors"
	"github.com/bsv-blockchain/go-chainbranch/util"
)

// Block is a full block as carried through reorganization evaluation: the
// header plus the complete ordered transaction list. Txs[0] is the coinbase.
//
// Blocks are treated as immutable once built. The same *Block may be
// referenced concurrently from a candidate pool, a branch and the block
// store; none of them copies the payload.
type Block struct {
	Header *BlockHeader
	Txs    []*bt.Tx

	// local
	hash *chainhash.Hash
}

func NewBlock(header *BlockHeader, txs []*bt.Tx) (*Block, error) {
	if header == nil {
		return nil, errors.NewBlockInvalidError("block header is required")
	}

	return &Block{
		Header: header,
		Txs:    txs,
	}, nil
}

func (b *Block) Hash() *chainhash.Hash {
	if b.hash != nil {
		return b.hash
	}

	b.hash = b.Header.Hash()

	return b.hash
}

func (b *Block) String() string {
	return b.Hash().String()
}

func (b *Block) TransactionCount() uint64 {
	return uint64(len(b.Txs))
}

// CoinbaseTx returns the first transaction of the block, or nil when the
// block carries no transactions.
func (b *Block) CoinbaseTx() *bt.Tx {
	if len(b.Txs) == 0 {
		return nil
	}

	return b.Txs[0]
}

// ExtractCoinbaseHeight returns the block height serialized into the
// coinbase unlocking script (BIP34, blocks of version 2 or later).
func (b *Block) ExtractCoinbaseHeight() (uint32, error) {
	coinbase := b.CoinbaseTx()
	if coinbase == nil {
		return 0, errors.NewBlockInvalidError("block %s has no coinbase tx", b.Hash())
	}

	return util.ExtractCoinbaseHeight(coinbase)
}
