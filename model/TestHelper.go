package model

import (
	"encoding/binary"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
)

// Helpers for assembling blocks and transactions in tests. Kept in the
// package proper so downstream packages can build branches without
// redeclaring them.

const (
	// TestPayoutAddress receives all test outputs.
	TestPayoutAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

	// TestBits is a minimum-difficulty target so test headers never need
	// mining.
	TestBits = "207fffff"

	testCoinbaseValue = 50_0000_0000
	testArbitraryText = "/chainbranch/"
)

// NewTestCoinbaseTx returns a coinbase transaction paying satoshis to the
// test address, with the block height serialized into the unlocking script
// the way BIP34 requires.
func NewTestCoinbaseTx(height uint32, satoshis uint64) (*bt.Tx, error) {
	heightBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(heightBytes, height)

	script := make([]byte, 0, 1+len(heightBytes)+len(testArbitraryText))
	script = append(script, byte(len(heightBytes)))
	script = append(script, heightBytes...)
	script = append(script, testArbitraryText...)

	input := &bt.Input{
		PreviousTxOutIndex: 0xFFFFFFFF,
		SequenceNumber:     0xFFFFFFFF,
		UnlockingScript:    bscript.NewFromBytes(script),
	}
	if err := input.PreviousTxIDAdd(&chainhash.Hash{}); err != nil {
		return nil, err
	}

	tx := bt.NewTx()
	tx.Inputs = append(tx.Inputs, input)

	if err := tx.AddP2PKHOutputFromAddress(TestPayoutAddress, satoshis); err != nil {
		return nil, err
	}

	return tx, nil
}

// NewTestSpendTx returns a transaction spending the given output of parent
// and paying satoshis back to the test address.
func NewTestSpendTx(parent *bt.Tx, vout uint32, satoshis uint64) (*bt.Tx, error) {
	tx := bt.NewTx()

	err := tx.From(
		parent.TxIDChainHash().String(),
		vout,
		parent.Outputs[vout].LockingScript.String(),
		parent.Outputs[vout].Satoshis,
	)
	if err != nil {
		return nil, err
	}

	if err = tx.AddP2PKHOutputFromAddress(TestPayoutAddress, satoshis); err != nil {
		return nil, err
	}

	return tx, nil
}

// NewTestBlock assembles a block at the given height on top of prevHash. The
// coinbase is generated; extra transactions follow it in the given order.
// The merkle root is a stand-in (the branch never verifies it) but the
// header is unique per height and previous hash.
func NewTestBlock(prevHash *chainhash.Hash, height uint32, txs ...*bt.Tx) (*Block, error) {
	coinbase, err := NewTestCoinbaseTx(height, testCoinbaseValue)
	if err != nil {
		return nil, err
	}

	bits, err := NewNBitFromString(TestBits)
	if err != nil {
		return nil, err
	}

	header := &BlockHeader{
		Version:        2,
		HashPrevBlock:  prevHash,
		HashMerkleRoot: coinbase.TxIDChainHash(),
		Timestamp:      1231469665 + height*600,
		Bits:           *bits,
		Nonce:          0,
	}

	return NewBlock(header, append([]*bt.Tx{coinbase}, txs...))
}
