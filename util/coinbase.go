package util

import (
	"encoding/binary"
	"strings"

	"github.com/bsv-blockchain/go-bt/v2"
	"github.com/bsv-blockchain/go-bt/v2/bscript"
	"github.com/bsv-blockchain/go-chainbranch/errors"
)

// ExtractCoinbaseHeight returns the block height serialized into the coinbase
// unlocking script, as required for version 2 and later blocks (BIP34).
func ExtractCoinbaseHeight(coinbaseTx *bt.Tx) (uint32, error) {
	if len(coinbaseTx.Inputs) != 1 {
		return 0, errors.NewTxInvalidError("coinbase tx should have exactly one input, got %d", len(coinbaseTx.Inputs))
	}

	height, _, err := extractCoinbaseHeightAndText(*coinbaseTx.Inputs[0].UnlockingScript)

	return height, err
}

// ExtractCoinbaseMiner returns the miner identification text that follows the
// serialized height in the coinbase unlocking script.
func ExtractCoinbaseMiner(coinbaseTx *bt.Tx) (string, error) {
	_, miner, err := extractCoinbaseHeightAndText(*coinbaseTx.Inputs[0].UnlockingScript)
	if err != nil && errors.Is(err, errors.ErrTxCoinbaseMissingBlockHeight) {
		err = nil
	}

	return miner, err
}

func extractCoinbaseHeightAndText(sigScript bscript.Script) (uint32, string, error) {
	if len(sigScript) < 1 {
		return 0, "", errors.New(errors.ERR_TX_COINBASE_MISSING_BLOCK_HEIGHT, "the coinbase signature script must start with the length of the serialized block height")
	}

	serializedLen := int(sigScript[0])
	if len(sigScript[1:]) < serializedLen {
		return 0, "", errors.New(errors.ERR_TX_COINBASE_MISSING_BLOCK_HEIGHT, "the coinbase signature script must start with the serialized block height")
	}

	serializedHeightBytes := sigScript[1 : serializedLen+1]
	if len(serializedHeightBytes) > 8 {
		return 0, "", errors.New(errors.ERR_TX_COINBASE_MISSING_BLOCK_HEIGHT, "serialized block height too large")
	}

	heightBytes := make([]byte, 8)
	copy(heightBytes, serializedHeightBytes)
	serializedHeight := binary.LittleEndian.Uint64(heightBytes)

	arbitraryTextBytes := sigScript[serializedLen+1:]
	arbitraryText := string(arbitraryTextBytes)

	return uint32(serializedHeight), extractMiner(arbitraryText), nil
}

func extractMiner(str string) string {
	str = strings.ToValidUTF8(str, "?")

	// Split the arbitrary text by "/"
	parts := strings.Split(str, "/")
	if len(parts) == 1 {
		return str
	}

	// Join all the parts except the last one
	str = strings.Join(parts[:len(parts)-1], "/")

	return str + "/"
}
