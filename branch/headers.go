package branch

import (
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/model"
)

// Header accessors let algorithms that need a window of recent headers, such
// as difficulty retargeting or median-time checks, read headers that are
// still inside the uncommitted branch. Each returns ok=false when the height
// is at or below the fork point (the caller falls back to the block store)
// or, defensively, when no block exists at the translated index.

// BitsAt returns the difficulty bits of the branch block at the given
// absolute height.
func (b *Branch) BitsAt(height uint32) (model.NBit, bool) {
	block := b.blockAt(height)
	if block == nil {
		return model.NBit{}, false
	}

	return block.Header.Bits, true
}

// VersionAt returns the version of the branch block at the given absolute
// height.
func (b *Branch) VersionAt(height uint32) (uint32, bool) {
	block := b.blockAt(height)
	if block == nil {
		return 0, false
	}

	return block.Header.Version, true
}

// TimestampAt returns the timestamp of the branch block at the given
// absolute height.
func (b *Branch) TimestampAt(height uint32) (uint32, bool) {
	block := b.blockAt(height)
	if block == nil {
		return 0, false
	}

	return block.Header.Timestamp, true
}

// HashAt returns the hash of the branch block at the given absolute height.
func (b *Branch) HashAt(height uint32) (*chainhash.Hash, bool) {
	block := b.blockAt(height)
	if block == nil {
		return nil, false
	}

	return block.Hash(), true
}
