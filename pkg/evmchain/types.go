package evmchain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// DepositEvent is the chain-agnostic shape the operator/canceler
// consume, decoded out of a contracts.BridgeDeposit log. Nonce is
// decoded from the last 8 bytes of its 32-byte slot; a decoder
// reading the first 24 bytes of that slot instead of the last 8
// silently truncates every nonce to zero.
type DepositEvent struct {
	DestChain   uint32
	DestAccount [32]byte
	SrcAccount  [32]byte
	Token       common.Address
	Amount      *big.Int
	Nonce       uint64
	Fee         *big.Int
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// WithdrawSubmitEvent mirrors contracts.BridgeWithdrawSubmit plus the
// chain-position fields the watcher needs for idempotent ingestion.
type WithdrawSubmitEvent struct {
	WithdrawHash [32]byte
	SrcChain     uint32
	Token        common.Address
	Amount       *big.Int
	Nonce        uint64
	OperatorGas  *big.Int
	BlockNumber  uint64
	TxHash       common.Hash
	LogIndex     uint
}

// WithdrawApproveEvent mirrors contracts.BridgeWithdrawApprove.
type WithdrawApproveEvent struct {
	WithdrawHash [32]byte
	BlockNumber  uint64
	TxHash       common.Hash
	LogIndex     uint
}

// WithdrawCancelEvent mirrors contracts.BridgeWithdrawCancel.
type WithdrawCancelEvent struct {
	WithdrawHash [32]byte
	Canceler     common.Address
	BlockNumber  uint64
	TxHash       common.Hash
	LogIndex     uint
}
