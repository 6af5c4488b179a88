package model

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/errors"
)

// BlockHeaderSize is the serialized size of a block header in bytes.
const BlockHeaderSize = 80

type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block header in the blockchain.
	HashPrevBlock *chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	HashMerkleRoot *chainhash.Hash

	// Time the block was created in unix time.
	Timestamp uint32

	// Difficulty target for the block.
	Bits NBit

	// Nonce used to generate the block.
	Nonce uint32
}

func NewBlockHeaderFromBytes(headerBytes []byte) (*BlockHeader, error) {
	if len(headerBytes) != BlockHeaderSize {
		return nil, errors.NewBlockInvalidError("block header should be %d bytes long, got %d", BlockHeaderSize, len(headerBytes))
	}

	hashPrevBlock, err := chainhash.NewHash(headerBytes[4:36])
	if err != nil {
		return nil, errors.NewBlockInvalidError("error creating previous block hash from bytes", err)
	}

	hashMerkleRoot, err := chainhash.NewHash(headerBytes[36:68])
	if err != nil {
		return nil, errors.NewBlockInvalidError("error creating merkle root hash from bytes", err)
	}

	bits, err := NewNBitFromSlice(headerBytes[72:76])
	if err != nil {
		return nil, errors.NewBlockInvalidError("error creating nBit from bytes", err)
	}

	return &BlockHeader{
		Version:        binary.LittleEndian.Uint32(headerBytes[:4]),
		HashPrevBlock:  hashPrevBlock,
		HashMerkleRoot: hashMerkleRoot,
		Timestamp:      binary.LittleEndian.Uint32(headerBytes[68:72]),
		Bits:           *bits,
		Nonce:          binary.LittleEndian.Uint32(headerBytes[76:]),
	}, nil
}

func NewBlockHeaderFromString(headerHex string) (*BlockHeader, error) {
	headerBytes, err := hex.DecodeString(headerHex)
	if err != nil {
		return nil, errors.NewBlockInvalidError("error decoding header hex string to bytes", err)
	}

	return NewBlockHeaderFromBytes(headerBytes)
}

func (bh *BlockHeader) Bytes() []byte {
	b := make([]byte, 0, BlockHeaderSize)
	b = binary.LittleEndian.AppendUint32(b, bh.Version)
	b = append(b, bh.HashPrevBlock[:]...)
	b = append(b, bh.HashMerkleRoot[:]...)
	b = binary.LittleEndian.AppendUint32(b, bh.Timestamp)
	b = append(b, bh.Bits[:]...)
	b = binary.LittleEndian.AppendUint32(b, bh.Nonce)

	return b
}

func (bh *BlockHeader) Hash() *chainhash.Hash {
	hash := chainhash.DoubleHashH(bh.Bytes())
	return &hash
}

func (bh *BlockHeader) String() string {
	return bh.Hash().String()
}

// HasMetTargetDifficulty reports whether the header's own hash satisfies the
// target its bits declare. This is a claim check only; whether the bits are
// the correct bits for the height is decided by the validation engine.
func (bh *BlockHeader) HasMetTargetDifficulty() (bool, *chainhash.Hash, error) {
	hash := bh.Hash()

	target := bh.Bits.CalculateTarget()
	if target.Sign() <= 0 {
		return false, hash, errors.NewBlockInvalidError("invalid target for bits %s", bh.Bits.String())
	}

	hashInt := new(big.Int).SetBytes(bt.ReverseBytes(hash.CloneBytes()))

	return hashInt.Cmp(target) < 0, hash, nil
}
