package bridgecore

import (
	"math/big"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/registry"
)

// DepositNative records a deposit of a LockUnlock-classified native
// token. The caller's vault locks the net amount and forwards the fee;
// the bridge never moves value itself.
func (b *Bridge) DepositNative(srcAccount, localToken codec.UniversalAddress, amount *big.Int, destChain codec.ChainId, destAccount codec.UniversalAddress) (DepositRecord, error) {
	return b.deposit(srcAccount, localToken, amount, destChain, destAccount, registry.LockUnlock, func(fee, net *big.Int) error {
		if fee.Sign() > 0 {
			if err := b.vault.TransferFee(srcAccount, localToken, fee); err != nil {
				return err
			}
		}
		return b.vault.LockFrom(srcAccount, localToken, net)
	})
}

// DepositERC20Lock records a deposit of a LockUnlock-classified
// pre-existing token.
func (b *Bridge) DepositERC20Lock(srcAccount, localToken codec.UniversalAddress, amount *big.Int, destChain codec.ChainId, destAccount codec.UniversalAddress) (DepositRecord, error) {
	return b.DepositNative(srcAccount, localToken, amount, destChain, destAccount)
}

// DepositERC20MintableBurn records a deposit of a MintBurn-classified
// wrapped token: the net amount is burned from the depositor and the
// fee is forwarded out of the same burned balance.
func (b *Bridge) DepositERC20MintableBurn(srcAccount, localToken codec.UniversalAddress, amount *big.Int, destChain codec.ChainId, destAccount codec.UniversalAddress) (DepositRecord, error) {
	return b.deposit(srcAccount, localToken, amount, destChain, destAccount, registry.MintBurn, func(fee, net *big.Int) error {
		if fee.Sign() > 0 {
			if err := b.vault.TransferFee(srcAccount, localToken, fee); err != nil {
				return err
			}
		}
		return b.vault.BurnFrom(srcAccount, localToken, net)
	})
}

// deposit implements the shared body of every deposit* entry point:
// validate, compute the fee, assign the next nonce and hash, settle
// value movement via the supplied closure (rolling the nonce back if
// it fails), and record.
func (b *Bridge) deposit(srcAccount, localToken codec.UniversalAddress, amount *big.Int, destChain codec.ChainId, destAccount codec.UniversalAddress, wantType registry.TokenType, settle func(fee, net *big.Int) error) (DepositRecord, error) {
	if amount == nil || amount.Sign() <= 0 {
		return DepositRecord{}, bridgeerr.InvalidAmount("deposit amount must be positive")
	}
	if !b.chains.IsRegisteredChain(destChain) {
		return DepositRecord{}, bridgeerr.ChainNotRegistered("destination chain not registered")
	}

	tokenRec, err := b.tokens.Token(localToken)
	if err != nil {
		return DepositRecord{}, err
	}
	if tokenRec.TokenType != wantType {
		return DepositRecord{}, bridgeerr.TokenNotMapped("token is not configured for this deposit path")
	}

	destMap, err := b.tokens.Destination(localToken, destChain)
	if err != nil {
		return DepositRecord{}, err
	}

	fee, err := b.CalculateFee(srcAccount, amount)
	if err != nil {
		return DepositRecord{}, err
	}
	net := new(big.Int).Sub(amount, fee)
	if net.Sign() <= 0 {
		return DepositRecord{}, bridgeerr.InvalidAmount("deposit amount does not cover fee")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Nonces start at 1; a zero nonce never appears on the wire.
	b.depositNonce++
	nonce := b.depositNonce

	hash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain:    b.selfChain,
		DestChain:   destChain,
		SrcAccount:  srcAccount,
		DestAccount: destAccount,
		Token:       destMap.DestToken,
		Amount:      net,
		Nonce:       new(big.Int).SetUint64(nonce),
	})

	if err := settle(fee, net); err != nil {
		b.depositNonce--
		return DepositRecord{}, err
	}

	rec := DepositRecord{
		DestChain:   destChain,
		DestAccount: destAccount,
		SrcAccount:  srcAccount,
		LocalToken:  localToken,
		NetAmount:   net,
		Nonce:       nonce,
		Fee:         fee,
		Timestamp:   b.now(),
	}
	b.deposits[hash] = rec

	b.emit("Deposit", map[string]any{
		"hash":         hash,
		"dest_chain":   destChain,
		"dest_account": destAccount,
		"src_account":  srcAccount,
		"token":        localToken,
		"net_amount":   net,
		"nonce":        nonce,
		"fee":          fee,
	})

	return rec, nil
}
