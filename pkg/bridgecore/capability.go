package bridgecore

import (
	"math/big"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// TokenVault is the chain-specific capability hook set a Bridge
// invokes to actually move value. There is no inheritance hierarchy
// behind the two-discipline model: a concrete chain
// adapter implements every method below and the Bridge switches on the
// registered TokenType to decide which pair (LockFrom/Unlock or
// BurnFrom/Mint) to call.
//
// Implementations must be check-effects-interactions safe: withdraw
// execution commits executed=true before calling Unlock/Mint (and
// rolls it back if the call fails), while deposit and approve call
// into TokenVault before recording their own state change.
type TokenVault interface {
	// LockFrom transfers amount of token from owner into the bridge's
	// custody (the LockUnlock deposit path).
	LockFrom(owner codec.UniversalAddress, token codec.UniversalAddress, amount *big.Int) error
	// Unlock releases amount of token from custody to recipient (the
	// LockUnlock withdraw-execute path).
	Unlock(token codec.UniversalAddress, recipient codec.UniversalAddress, amount *big.Int) error
	// BurnFrom destroys amount of token held by owner (the MintBurn
	// deposit path).
	BurnFrom(owner codec.UniversalAddress, token codec.UniversalAddress, amount *big.Int) error
	// Mint creates amount of token and credits recipient (the
	// MintBurn withdraw-execute path).
	Mint(token codec.UniversalAddress, recipient codec.UniversalAddress, amount *big.Int) error
	// TransferFee moves the fee portion of a deposit to the
	// configured fee recipient, regardless of token type.
	TransferFee(owner codec.UniversalAddress, token codec.UniversalAddress, amount *big.Int) error
	// BalanceOf returns owner's balance of token, used by the CL8Y
	// discount-tier check in the fee pipeline.
	BalanceOf(owner codec.UniversalAddress, token codec.UniversalAddress) (*big.Int, error)
	// PayTip forwards a withdrawSubmit caller's operator_gas tip (paid
	// in the chain's native asset) to recipient once the operator
	// approves the withdrawal.
	PayTip(recipient codec.UniversalAddress, amount *big.Int) error
}
