package model

import (
	"encoding/binary"
	"encoding/hex"
	"math/big"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-chainbranch/errors"
	"github.com/bsv-blockchain/go-chaincfg"
)

// NBit is the compact representation of a block's difficulty target, stored
// little-endian as it appears in a serialized block header.
type NBit [4]byte

// difficulty1Target is the target of the lowest difficulty (nBits 0x1d00ffff),
// used as the reference when converting a target to a difficulty.
var difficulty1Target = new(big.Int).Lsh(big.NewInt(0xffff), 208)

func NewNBitFromSlice(b []byte) (*NBit, error) {
	if len(b) != 4 {
		return nil, errors.NewInvalidArgumentError("nBit should be 4 bytes long, got %d", len(b))
	}

	var nBit NBit
	copy(nBit[:], b)

	return &nBit, nil
}

// NewNBitFromString parses the big-endian hex form, e.g. "1d00ffff".
func NewNBitFromString(s string) (*NBit, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("error decoding nBit hex string", err)
	}

	return NewNBitFromSlice(bt.ReverseBytes(b))
}

// NewNBitFromPowLimit returns the NBit encoding of a network's proof-of-work
// limit.
func NewNBitFromPowLimit(params *chaincfg.Params) (*NBit, error) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, params.PowLimitBits)

	return NewNBitFromSlice(b)
}

func (n NBit) String() string {
	return hex.EncodeToString(bt.ReverseBytes(n[:]))
}

// CloneBytes returns the little-endian wire form.
func (n NBit) CloneBytes() []byte {
	b := make([]byte, 4)
	copy(b, n[:])

	return b
}

// CalculateTarget expands the compact form into the full target. The result
// is negative when the sign bit is set and zero when the mantissa is zero;
// neither encodes a usable target and callers are expected to check the sign.
func (n NBit) CalculateTarget() *big.Int {
	compact := binary.LittleEndian.Uint32(n[:])

	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// A compact target with exponent <= 3 packs the mantissa's low bytes only.
	var target *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		target = big.NewInt(int64(mantissa))
	} else {
		target = big.NewInt(int64(mantissa))
		target.Lsh(target, 8*(exponent-3))
	}

	if isNegative {
		target.Neg(target)
	}

	return target
}

// CalculateDifficulty returns the ratio between the difficulty-1 target and
// this target.
func (n NBit) CalculateDifficulty() *big.Float {
	target := n.CalculateTarget()
	if target.Sign() <= 0 {
		return big.NewFloat(0)
	}

	return new(big.Float).Quo(
		new(big.Float).SetInt(difficulty1Target),
		new(big.Float).SetInt(target),
	)
}
