package model

import (
	"math"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutpointIsNull(t *testing.T) {
	assert.True(t, Outpoint{Vout: math.MaxUint32}.IsNull())

	txid := chainhash.HashH([]byte("tx"))
	assert.False(t, NewOutpoint(&txid, math.MaxUint32).IsNull())
	assert.False(t, NewOutpoint(&chainhash.Hash{}, 0).IsNull())
}

func TestOutpointString(t *testing.T) {
	txid := chainhash.HashH([]byte("tx"))
	op := NewOutpoint(&txid, 7)

	assert.Equal(t, txid.String()+":7", op.String())
}

func TestOutpointFromInput(t *testing.T) {
	coinbase, err := NewTestCoinbaseTx(100, testCoinbaseValue)
	require.NoError(t, err)

	spend, err := NewTestSpendTx(coinbase, 0, 1000)
	require.NoError(t, err)

	op := OutpointFromInput(spend.Inputs[0])
	assert.Equal(t, *coinbase.TxIDChainHash(), op.Txid)
	assert.Equal(t, uint32(0), op.Vout)

	// a coinbase input carries the null marker
	cbOp := OutpointFromInput(coinbase.Inputs[0])
	assert.True(t, cbOp.IsNull())
}

func TestPrevoutResolutionDefaults(t *testing.T) {
	res := NewPrevoutResolution()

	assert.False(t, res.Found())
	assert.False(t, res.FromCoinbase())
	assert.False(t, res.Spent)
	assert.False(t, res.Confirmed)
}

func TestPrevoutResolutionHeightZeroIsSet(t *testing.T) {
	res := NewPrevoutResolution()
	res.CoinbaseHeight = 0

	// a coinbase at height 0 stays distinguishable from "no coinbase"
	assert.True(t, res.FromCoinbase())
}
