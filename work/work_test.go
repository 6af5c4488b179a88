package work

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	"github.com/bsv-blockchain/go-chainbranch/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nBitFromString(t *testing.T, s string) model.NBit {
	t.Helper()

	nBits, err := model.NewNBitFromString(s)
	require.NoError(t, err)

	return *nBits
}

func TestCalculateBlockWork(t *testing.T) {
	tests := []struct {
		name         string
		bits         string
		expectedWork string // hex string of expected work value
		expectsZero  bool
	}{
		{
			name:         "genesis block difficulty",
			bits:         "1d00ffff",
			expectedWork: "0000000000000000000000000000000000000000000000000000000100010001",
		},
		{
			name:         "typical mainnet difficulty",
			bits:         "1a05db8b",
			expectedWork: "000000000000000000000000000000000000000000000000002bb43836381c9c",
		},
		{
			name:         "high difficulty",
			bits:         "17053894",
			expectedWork: "0000000000000000000000000000000000000000000031085d594cb7e26e94b5",
		},
		{
			name:         "maximum target, lowest difficulty",
			bits:         "207fffff",
			expectedWork: "0000000000000000000000000000000000000000000000000000000000000002",
		},
		{
			name:        "negative target",
			bits:        "01800000",
			expectsZero: true,
		},
		{
			name:        "zero target",
			bits:        "00000000",
			expectsZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := CalculateBlockWork(nBitFromString(t, tt.bits))

			if tt.expectsZero {
				assert.Equal(t, 0, work.Sign())
				return
			}

			expected, ok := new(big.Int).SetString(tt.expectedWork, 16)
			require.True(t, ok)
			assert.Equal(t, 0, expected.Cmp(work), "expected %s, got %x", tt.expectedWork, work)
		})
	}
}

func TestCalculateWorkAccumulates(t *testing.T) {
	prevWork := &chainhash.Hash{}

	nBits := nBitFromString(t, "1d00ffff")

	cumulative, err := CalculateWork(prevWork, nBits)
	require.NoError(t, err)

	cumulative, err = CalculateWork(cumulative, nBits)
	require.NoError(t, err)

	got := new(big.Int).SetBytes(bt.ReverseBytes(cumulative.CloneBytes()))

	expected := new(big.Int).Mul(CalculateBlockWork(nBits), big.NewInt(2))
	assert.Equal(t, 0, expected.Cmp(got))
}

func TestCalculateWorkEncoding(t *testing.T) {
	prevWork := &chainhash.Hash{}

	cumulative, err := CalculateWork(prevWork, nBitFromString(t, "1d00ffff"))
	require.NoError(t, err)

	// little-endian in the hash, so the low bytes carry the value
	assert.Equal(t, "0100010001", hex.EncodeToString(bt.ReverseBytes(cumulative.CloneBytes()))[54:])
}
