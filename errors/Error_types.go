package errors

// ERR identifies the class of an Error. The numeric values are stable and
// stay aligned with the codes the node services use for the same conditions.
type ERR int32

const (
	ERR_UNKNOWN                          ERR = 0
	ERR_INVALID_ARGUMENT                 ERR = 1
	ERR_NOT_FOUND                        ERR = 3
	ERR_PROCESSING                       ERR = 4
	ERR_ERROR                            ERR = 9
	ERR_BLOCK_NOT_FOUND                  ERR = 10
	ERR_BLOCK_INVALID                    ERR = 11
	ERR_BLOCK_ERROR                      ERR = 13
	ERR_TX_NOT_FOUND                     ERR = 30
	ERR_TX_INVALID                       ERR = 31
	ERR_TX_INVALID_DOUBLE_SPEND          ERR = 32
	ERR_TX_COINBASE_MISSING_BLOCK_HEIGHT ERR = 35
	ERR_SPENT                            ERR = 40
)

var ERR_name = map[int32]string{
	0:  "UNKNOWN",
	1:  "INVALID_ARGUMENT",
	3:  "NOT_FOUND",
	4:  "PROCESSING",
	9:  "ERROR",
	10: "BLOCK_NOT_FOUND",
	11: "BLOCK_INVALID",
	13: "BLOCK_ERROR",
	30: "TX_NOT_FOUND",
	31: "TX_INVALID",
	32: "TX_INVALID_DOUBLE_SPEND",
	35: "TX_COINBASE_MISSING_BLOCK_HEIGHT",
	40: "SPENT",
}

func (e ERR) String() string {
	if name, ok := ERR_name[int32(e)]; ok {
		return name
	}

	return "UNRECOGNIZED"
}

var (
	ErrUnknown                      = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument              = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrNotFound                     = New(ERR_NOT_FOUND, "not found")
	ErrProcessing                   = New(ERR_PROCESSING, "error processing")
	ErrError                        = New(ERR_ERROR, "generic error")
	ErrBlockNotFound                = New(ERR_BLOCK_NOT_FOUND, "block not found")
	ErrBlockInvalid                 = New(ERR_BLOCK_INVALID, "block invalid")
	ErrBlockError                   = New(ERR_BLOCK_ERROR, "block error")
	ErrTxNotFound                   = New(ERR_TX_NOT_FOUND, "tx not found")
	ErrTxInvalid                    = New(ERR_TX_INVALID, "tx invalid")
	ErrTxInvalidDoubleSpend         = New(ERR_TX_INVALID_DOUBLE_SPEND, "tx invalid double spend")
	ErrTxCoinbaseMissingBlockHeight = New(ERR_TX_COINBASE_MISSING_BLOCK_HEIGHT, "the coinbase signature script doesn't have the block height")
	ErrSpent                        = New(ERR_SPENT, "utxo already spent")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}
func NewBlockNotFoundError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_NOT_FOUND, message, params...)
}
func NewBlockInvalidError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_INVALID, message, params...)
}
func NewBlockError(message string, params ...interface{}) error {
	return New(ERR_BLOCK_ERROR, message, params...)
}
func NewTxNotFoundError(message string, params ...interface{}) error {
	return New(ERR_TX_NOT_FOUND, message, params...)
}
func NewTxInvalidError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID, message, params...)
}
func NewTxInvalidDoubleSpendError(message string, params ...interface{}) error {
	return New(ERR_TX_INVALID_DOUBLE_SPEND, message, params...)
}
func NewTxCoinbaseMissingBlockHeightError(message string, params ...interface{}) error {
	return New(ERR_TX_COINBASE_MISSING_BLOCK_HEIGHT, message, params...)
}
func NewSpentError(message string, params ...interface{}) error {
	return New(ERR_SPENT, message, params...)
}
