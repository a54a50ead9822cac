package bridgecore

import (
	"math/big"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/registry"
)

// WithdrawSubmit records a claim against a deposit made on srcChain.
// Both the src_account and dest_account fields of the transfer hash
// are the caller's own address: the protocol only links a withdraw to
// its deposit when the bridging identity deposited on behalf of
// itself, so caller must be the same UniversalAddress the user
// deposited with on the source chain.
func (b *Bridge) WithdrawSubmit(caller codec.UniversalAddress, srcChain codec.ChainId, localToken codec.UniversalAddress, amount *big.Int, nonce uint64, operatorGas *big.Int) (PendingWithdraw, error) {
	if amount == nil || amount.Sign() <= 0 {
		return PendingWithdraw{}, bridgeerr.InvalidAmount("withdraw amount must be positive")
	}
	if !b.chains.IsRegisteredChain(srcChain) {
		return PendingWithdraw{}, bridgeerr.ChainNotRegistered("source chain not registered")
	}
	if operatorGas == nil {
		operatorGas = big.NewInt(0)
	}

	tokenRec, err := b.tokens.Token(localToken)
	if err != nil {
		return PendingWithdraw{}, err
	}
	srcMap, err := b.tokens.Source(localToken, srcChain)
	if err != nil {
		return PendingWithdraw{}, err
	}

	hash := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain:    srcChain,
		DestChain:   b.selfChain,
		SrcAccount:  caller,
		DestAccount: caller,
		Token:       localToken,
		Amount:      amount,
		Nonce:       new(big.Int).SetUint64(nonce),
	})

	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.pending[hash]; ok && !existing.IsZero() {
		return PendingWithdraw{}, bridgeerr.AlreadySubmitted("withdraw already submitted for this transfer")
	}

	p := &PendingWithdraw{
		SrcChain:     srcChain,
		SrcAccount:   caller,
		DestAccount:  caller,
		LocalToken:   localToken,
		Recipient:    caller,
		Amount:       amount,
		Nonce:        nonce,
		SrcDecimals:  srcMap.SrcDecimals,
		DestDecimals: tokenRec.LocalDecimals,
		OperatorGas:  operatorGas,
		SubmittedAt:  b.now(),
	}
	b.pending[hash] = p

	b.emit("WithdrawSubmit", map[string]any{
		"hash":      hash,
		"src_chain": srcChain,
		"account":   caller,
		"token":     localToken,
		"amount":    amount,
		"nonce":     nonce,
	})

	return *p, nil
}

// WithdrawApprove is the operator's attestation that hash's deposit
// was independently verified on the source chain. It starts the
// cancel window and forwards the caller's operator_gas tip.
func (b *Bridge) WithdrawApprove(operator codec.UniversalAddress, hash codec.TransferHash) (PendingWithdraw, error) {
	if !b.roles.IsOperator(operator) {
		return PendingWithdraw{}, bridgeerr.Unauthorized("caller is not an operator")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.pending[hash]
	if !ok || p.IsZero() {
		return PendingWithdraw{}, bridgeerr.NotFound("no pending withdraw for this hash")
	}
	if p.Approved {
		return PendingWithdraw{}, bridgeerr.AlreadyApproved("withdraw already approved")
	}
	if p.Executed {
		return PendingWithdraw{}, bridgeerr.AlreadyExecuted("withdraw already executed")
	}

	if p.OperatorGas.Sign() > 0 {
		if err := b.vault.PayTip(operator, p.OperatorGas); err != nil {
			return PendingWithdraw{}, err
		}
	}

	p.Approved = true
	p.ApprovedAt = b.now()

	b.emit("WithdrawApprove", map[string]any{
		"hash":        hash,
		"operator":    operator,
		"approved_at": p.ApprovedAt,
	})

	return *p, nil
}

// WithdrawCancel is a canceler's veto of an approved withdraw, such as
// one it could not verify against the source chain. Canceler-only, and
// only permitted within the cancel window that began at approval.
func (b *Bridge) WithdrawCancel(canceler codec.UniversalAddress, hash codec.TransferHash) (PendingWithdraw, error) {
	if !b.roles.IsCanceler(canceler) {
		return PendingWithdraw{}, bridgeerr.Unauthorized("caller is not a canceler")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.pending[hash]
	if !ok || p.IsZero() {
		return PendingWithdraw{}, bridgeerr.NotFound("no pending withdraw for this hash")
	}
	if !p.Approved {
		return PendingWithdraw{}, bridgeerr.NotApproved("withdraw has not been approved")
	}
	if p.Executed {
		return PendingWithdraw{}, bridgeerr.AlreadyExecuted("withdraw already executed")
	}
	if p.Cancelled {
		return PendingWithdraw{}, bridgeerr.AlreadyCancelled("withdraw already cancelled")
	}
	if b.now() >= p.ApprovedAt+CancelWindowSeconds {
		return PendingWithdraw{}, bridgeerr.CancelWindowExpired("cancel window has closed")
	}

	p.Cancelled = true

	b.emit("WithdrawCancel", map[string]any{
		"hash":     hash,
		"canceler": canceler,
	})

	return *p, nil
}

// WithdrawUncancel reverses a cancellation and restarts the cancel
// window, rather than restoring the original approval timestamp: a
// second, equally skeptical review period must elapse before the
// withdraw can execute.
func (b *Bridge) WithdrawUncancel(operator codec.UniversalAddress, hash codec.TransferHash) (PendingWithdraw, error) {
	if !b.roles.IsOperator(operator) {
		return PendingWithdraw{}, bridgeerr.Unauthorized("caller is not an operator")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.pending[hash]
	if !ok || p.IsZero() {
		return PendingWithdraw{}, bridgeerr.NotFound("no pending withdraw for this hash")
	}
	if !p.Cancelled {
		return PendingWithdraw{}, bridgeerr.NotCancelled("withdraw is not cancelled")
	}

	p.Cancelled = false
	p.ApprovedAt = b.now()

	b.emit("WithdrawUncancel", map[string]any{
		"hash":        hash,
		"operator":    operator,
		"approved_at": p.ApprovedAt,
	})

	return *p, nil
}

// WithdrawExecuteUnlock settles a LockUnlock withdraw by releasing
// custody to the recipient.
func (b *Bridge) WithdrawExecuteUnlock(hash codec.TransferHash) (PendingWithdraw, error) {
	return b.withdrawExecute(hash, registry.LockUnlock, func(p *PendingWithdraw, destAmount *big.Int) error {
		return b.vault.Unlock(p.LocalToken, p.Recipient, destAmount)
	})
}

// WithdrawExecuteMint settles a MintBurn withdraw by minting to the
// recipient.
func (b *Bridge) WithdrawExecuteMint(hash codec.TransferHash) (PendingWithdraw, error) {
	return b.withdrawExecute(hash, registry.MintBurn, func(p *PendingWithdraw, destAmount *big.Int) error {
		return b.vault.Mint(p.LocalToken, p.Recipient, destAmount)
	})
}

// withdrawExecute is the shared body of the two execute entry points:
// anyone may call it once the approval's cancel window has elapsed
// without a cancellation.
func (b *Bridge) withdrawExecute(hash codec.TransferHash, wantType registry.TokenType, settle func(p *PendingWithdraw, destAmount *big.Int) error) (PendingWithdraw, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.pending[hash]
	if !ok || p.IsZero() {
		return PendingWithdraw{}, bridgeerr.NotFound("no pending withdraw for this hash")
	}
	if p.Executed {
		return PendingWithdraw{}, bridgeerr.AlreadyExecuted("withdraw already executed")
	}
	if p.Cancelled {
		return PendingWithdraw{}, bridgeerr.AlreadyCancelled("withdraw was cancelled")
	}
	if !p.Approved {
		return PendingWithdraw{}, bridgeerr.NotApproved("withdraw has not been approved")
	}
	if b.now() < p.ApprovedAt+CancelWindowSeconds {
		return PendingWithdraw{}, bridgeerr.CancelWindowActive("cancel window still active")
	}

	tokenRec, err := b.tokens.Token(p.LocalToken)
	if err != nil {
		return PendingWithdraw{}, err
	}
	if tokenRec.TokenType != wantType {
		return PendingWithdraw{}, bridgeerr.TokenNotMapped("token is not configured for this execute path")
	}

	destAmount := codec.Normalize(p.Amount, p.SrcDecimals, p.DestDecimals)

	// Check-effects-interactions: executed is committed before the
	// token capability is invoked, not after. A failed settle still
	// rolls the whole transition back atomically; it just never
	// observes executed=false while the capability call is in flight.
	p.Executed = true
	if err := settle(p, destAmount); err != nil {
		p.Executed = false
		return PendingWithdraw{}, err
	}

	b.emit("WithdrawExecute", map[string]any{
		"hash":        hash,
		"recipient":   p.Recipient,
		"dest_amount": destAmount,
	})

	return *p, nil
}
