// Package chainadapter defines the chain-agnostic surface the
// operator and canceler drive: one implementation per wire family
// (pkg/evmchain for EVM, pkg/cosmoschain for Cosmos-like chains),
// normalized to the bridge's own UniversalAddress/TransferHash/ChainId
// types so the off-chain engines never branch on chain kind.
package chainadapter

import (
	"context"
	"math/big"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// DepositEvent is a Deposit emitted on a source chain, decoded into
// bridge-canonical types.
type DepositEvent struct {
	DestChain   codec.ChainId
	DestAccount codec.UniversalAddress
	SrcAccount  codec.UniversalAddress
	Token       codec.UniversalAddress
	Amount      *big.Int
	Nonce       uint64
	Fee         *big.Int
	BlockNumber uint64
	TxHash      string
	LogIndex    uint32
}

// WithdrawSubmitEvent is a WithdrawSubmit emitted on a destination
// chain -- the writer's cue to cross-check the matching deposit on
// SrcChain before approving.
type WithdrawSubmitEvent struct {
	WithdrawHash codec.TransferHash
	SrcChain     codec.ChainId
	Token        codec.UniversalAddress
	Amount       *big.Int
	Nonce        uint64
	OperatorGas  *big.Int
	BlockNumber  uint64
	TxHash       string
	LogIndex     uint32
}

// WithdrawApproveEvent is what the canceler watches to trigger its
// independent verification pass.
type WithdrawApproveEvent struct {
	WithdrawHash codec.TransferHash
	BlockNumber  uint64
	TxHash       string
	LogIndex     uint32
}

// DepositRecord mirrors a chain's getDeposit query result. A
// zero Timestamp means no deposit was ever recorded for the hash --
// the condition the canceler treats as fraudulent.
type DepositRecord struct {
	DestChain   codec.ChainId
	DestAccount codec.UniversalAddress
	SrcAccount  codec.UniversalAddress
	LocalToken  codec.UniversalAddress
	NetAmount   *big.Int
	Nonce       uint64
	Fee         *big.Int
	Timestamp   uint64
}

// Found reports whether this record corresponds to an actual deposit.
func (d DepositRecord) Found() bool { return d.Timestamp != 0 }

// PendingWithdrawInfo mirrors a chain's getPendingWithdraw query result.
type PendingWithdrawInfo struct {
	SrcChain     codec.ChainId
	SrcAccount   codec.UniversalAddress
	DestAccount  codec.UniversalAddress
	LocalToken   codec.UniversalAddress
	Recipient    codec.UniversalAddress
	Amount       *big.Int
	Nonce        uint64
	SrcDecimals  uint8
	DestDecimals uint8
	OperatorGas  *big.Int
	SubmittedAt  uint64
	ApprovedAt   uint64
	Approved     bool
	Cancelled    bool
	Executed     bool
}

// Chain is the per-chain driver the operator and canceler depend on.
// evmchain.Client is adapted to this interface by evmchain.Adapter;
// pkg/cosmoschain implements it directly.
type Chain interface {
	Identifier() string
	BridgeChainID() codec.ChainId
	ConfirmationBlocks() uint64

	LastScannedBlock() uint64
	LatestBlockNumber(ctx context.Context) (uint64, error)

	WatchDepositEvents(ctx context.Context, fromBlock uint64, handler func(*DepositEvent) error) error
	WatchWithdrawSubmitEvents(ctx context.Context, fromBlock uint64, handler func(*WithdrawSubmitEvent) error) error
	WatchWithdrawApproveEvents(ctx context.Context, fromBlock uint64, handler func(*WithdrawApproveEvent) error) error

	GetDeposit(ctx context.Context, hash codec.TransferHash) (DepositRecord, error)
	GetPendingWithdraw(ctx context.Context, hash codec.TransferHash) (PendingWithdrawInfo, error)

	WithdrawApprove(ctx context.Context, hash codec.TransferHash) (string, error)
	WithdrawCancel(ctx context.Context, hash codec.TransferHash) (string, error)
	WithdrawUncancel(ctx context.Context, hash codec.TransferHash) (string, error)
	WithdrawExecute(ctx context.Context, hash codec.TransferHash, mintBurn bool) (string, error)

	Close()
}
