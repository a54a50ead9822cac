package bridgecore

import (
	"math/big"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// DepositRecord is stored on the source chain, indexed by nonce and
// by transfer-hash. It is created once by a deposit* call and is
// never mutated or deleted.
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

// IsZero reports whether this record represents "no deposit found" --
// the canceler's verification step relies on exactly this
// check when it queries a source chain for a hash that was never
// deposited.
func (d DepositRecord) IsZero() bool {
	return d.Timestamp == 0
}

// PendingWithdraw is stored on the destination chain, indexed by
// transfer-hash. It is created by withdrawSubmit and mutated by
// withdrawApprove/withdrawCancel/withdrawUncancel, terminated by
// withdrawExecute*.
type PendingWithdraw struct {
	SrcChain     codec.ChainId
	SrcAccount   codec.UniversalAddress
	DestAccount  codec.UniversalAddress
	LocalToken   codec.UniversalAddress
	Recipient    codec.UniversalAddress
	Amount       *big.Int // in source-chain decimals
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

// IsZero reports whether this record represents "no pending withdraw
// found".
func (p PendingWithdraw) IsZero() bool {
	return p.SubmittedAt == 0
}

// FeeConfig is the per-chain fee pipeline configuration. CustomBps
// overrides take priority over the CL8Y discount,
// which in turn takes priority over StandardBps; every configured bps
// value must be <= MaxFeeBps.
type FeeConfig struct {
	StandardBps   uint32
	DiscountedBps uint32
	CL8YThreshold *big.Int
	CL8YToken     *codec.UniversalAddress // nil disables the discount tier
	FeeRecipient  codec.UniversalAddress
	CustomBps     map[codec.UniversalAddress]uint32
}

const (
	// MaxFeeBps bounds every configured bps value at 1%.
	MaxFeeBps = 100
	// BpsDenominator is the fixed-point denominator fee math divides by.
	BpsDenominator = 10_000
	// CancelWindowSeconds is the fixed window after approved_at during
	// which withdrawCancel is permitted and withdrawExecute* is
	// forbidden.
	CancelWindowSeconds = 300
)
