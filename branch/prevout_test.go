package branch

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulatePrevoutNullOutpoint(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	b := growBranch(t, 100, newLinkedBlocks(t, &prev, 101, 3))

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.Outpoint{Txid: chainhash.Hash{}, Vout: 0xFFFFFFFF}, res)

	assert.False(t, res.Found())
	assert.False(t, res.FromCoinbase())
}

func TestPopulatePrevoutNotInBranch(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	b := growBranch(t, 100, newLinkedBlocks(t, &prev, 101, 3))

	// an output created at or below the fork height; the caller falls back
	// to the block store for it
	stored := chainhash.HashH([]byte("stored chain tx"))

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.NewOutpoint(&stored, 0), res)

	assert.False(t, res.Found())
}

func TestPopulatePrevoutFindsCoinbaseOutput(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	blocks := newLinkedBlocks(t, &prev, 101, 5)
	b := growBranch(t, 100, blocks)

	coinbase := blocks[2].CoinbaseTx()

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.NewOutpoint(coinbase.TxIDChainHash(), 0), res)

	require.True(t, res.Found())
	assert.Same(t, coinbase.Outputs[0], res.Output)
	assert.True(t, res.FromCoinbase())
	assert.Equal(t, uint32(103), res.CoinbaseHeight)
}

func TestPopulatePrevoutFindsNonCoinbaseOutput(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	blocks := newLinkedBlocks(t, &prev, 101, 3)

	spend, err := model.NewTestSpendTx(blocks[0].CoinbaseTx(), 0, 40_0000_0000)
	require.NoError(t, err)

	blocks[1] = replaceTxs(t, blocks[1], blocks[1].CoinbaseTx(), spend)
	b := growBranch(t, 100, blocks)

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.NewOutpoint(spend.TxIDChainHash(), 0), res)

	require.True(t, res.Found())
	assert.Same(t, spend.Outputs[0], res.Output)

	// the creating transaction is not a coinbase, so no height is recorded
	assert.False(t, res.FromCoinbase())
	assert.Equal(t, uint32(model.CoinbaseHeightUnset), res.CoinbaseHeight)
}

func TestPopulatePrevoutVoutOutOfRange(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	blocks := newLinkedBlocks(t, &prev, 101, 3)
	b := growBranch(t, 100, blocks)

	coinbase := blocks[1].CoinbaseTx()
	require.Equal(t, 1, len(coinbase.Outputs))

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.NewOutpoint(coinbase.TxIDChainHash(), 1), res)

	assert.False(t, res.Found())
}

// Two branch blocks carrying coinbases with the same transaction id is the
// BIP30 situation: the newer one masks the older one, so a scan from the tip
// must resolve to the newer instance and its block height.
func TestPopulatePrevoutDuplicateTxidNewestWins(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	blocks := newLinkedBlocks(t, &prev, 101, 5)

	older, err := model.NewTestCoinbaseTx(7777, 50_0000_0000)
	require.NoError(t, err)

	newer, err := model.NewTestCoinbaseTx(7777, 50_0000_0000)
	require.NoError(t, err)

	// distinct instances with identical ids
	require.NotSame(t, older, newer)
	require.Equal(t, older.TxIDChainHash(), newer.TxIDChainHash())

	blocks[1] = replaceTxs(t, blocks[1], older)
	blocks[3] = replaceTxs(t, blocks[3], newer)
	b := growBranch(t, 100, blocks)

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.NewOutpoint(newer.TxIDChainHash(), 0), res)

	require.True(t, res.Found())
	assert.Same(t, newer.Outputs[0], res.Output)
	assert.Equal(t, uint32(104), res.CoinbaseHeight)
}

func TestPopulatePrevoutResetsStaleResolution(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	blocks := newLinkedBlocks(t, &prev, 101, 3)
	b := growBranch(t, 100, blocks)

	res := model.NewPrevoutResolution()
	b.PopulatePrevout(model.NewOutpoint(blocks[0].CoinbaseTx().TxIDChainHash(), 0), res)
	require.True(t, res.Found())
	require.True(t, res.FromCoinbase())

	// the same resolution reused for a miss must come back clean
	missing := chainhash.HashH([]byte("missing"))
	b.PopulatePrevout(model.NewOutpoint(&missing, 0), res)

	assert.False(t, res.Found())
	assert.False(t, res.FromCoinbase())
}

func TestPopulatePrevoutLeavesSpentFlagsAlone(t *testing.T) {
	prev := chainhash.HashH([]byte("fork"))
	blocks := newLinkedBlocks(t, &prev, 101, 3)
	b := growBranch(t, 100, blocks)

	res := model.NewPrevoutResolution()
	res.Spent = true
	res.Confirmed = true

	b.PopulatePrevout(model.NewOutpoint(blocks[1].CoinbaseTx().TxIDChainHash(), 0), res)

	require.True(t, res.Found())
	assert.True(t, res.Spent)
	assert.True(t, res.Confirmed)
}
