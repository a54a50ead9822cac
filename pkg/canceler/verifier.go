package canceler

import (
	"context"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/internal/metrics"
	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// verify independently re-derives hash's legitimacy straight from the
// two chains it spans: it queries the destination chain's
// own live PendingWithdraw struct, recomputes the transfer hash from
// that struct to catch an ABI/format attack, and cross-checks the
// source chain's deposit record. It never reads a row any other
// process wrote -- the whole point of a canceler is to trust nothing
// but what the chains themselves say.
func (e *Engine) verify(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain, hash codec.TransferHash) {
	started := time.Now()
	defer func() {
		metrics.VerificationDuration.WithLabelValues(destChain.Identifier()).Observe(time.Since(started).Seconds())
	}()

	vctx, cancel := context.WithTimeout(ctx, e.verificationBudget())
	defer cancel()

	info, err := destChain.GetPendingWithdraw(vctx, hash)
	if err != nil {
		e.logger.Warn("verifier: getPendingWithdraw failed", zap.String("hash", hashHex(hash)), zap.Error(err))
		return
	}

	if !info.Approved || info.Cancelled || info.Executed {
		// Nothing to act on yet, or it already reached a terminal
		// state -- stop rechecking it on the backstop poller.
		e.forget(destChainID, hash)
		return
	}

	recomputed := codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain:    info.SrcChain,
		DestChain:   destChainID,
		SrcAccount:  info.SrcAccount,
		DestAccount: info.DestAccount,
		Token:       info.LocalToken,
		Amount:      info.Amount,
		Nonce:       new(big.Int).SetUint64(info.Nonce),
	})
	if recomputed != hash {
		e.cancel(ctx, destChainID, destChain, hash, "recomputed transfer hash does not match the approved hash")
		return
	}

	srcChain, ok := e.chains[info.SrcChain]
	if !ok {
		e.logger.Error("verifier: no client configured for source chain",
			zap.Uint32("src_chain_id", uint32(info.SrcChain)))
		return
	}

	rec, err := srcChain.GetDeposit(vctx, hash)
	if err != nil {
		e.logger.Warn("verifier: getDeposit failed", zap.String("hash", hashHex(hash)), zap.Error(err))
		return
	}

	if reason, mismatched := mismatch(rec, info); mismatched {
		e.cancel(ctx, destChainID, destChain, hash, reason)
		return
	}
	// No mismatch: leave hash in the worklist. It stays in rotation
	// until the auto-executor executes it or a later tick finds a
	// problem, matching the cancel window's "can be cancelled any
	// time before execution" rule.
}

// mismatch reports whether the source chain's deposit record fails to
// corroborate info: absent, or its nonce, amount, source account or
// destination account diverges from what the destination chain's own
// live PendingWithdraw struct says.
func mismatch(rec chainadapter.DepositRecord, info chainadapter.PendingWithdrawInfo) (string, bool) {
	if !rec.Found() {
		return "no matching deposit found on source chain", true
	}
	if rec.Nonce != info.Nonce {
		return "deposit nonce does not match withdraw submission", true
	}
	if rec.NetAmount == nil || info.Amount == nil || rec.NetAmount.Cmp(info.Amount) != 0 {
		return "deposit amount does not match withdraw submission", true
	}
	if rec.SrcAccount != info.SrcAccount {
		return "deposit account does not match withdraw submission", true
	}
	if rec.DestAccount != info.DestAccount {
		return "deposit destination account does not match withdraw submission", true
	}
	return "", false
}

func (e *Engine) cancel(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain, hash codec.TransferHash, reason string) {
	if _, err := destChain.WithdrawCancel(ctx, hash); err != nil {
		metrics.ErrorsTotal.WithLabelValues("canceler", "cancel_tx_failed").Inc()
		e.logger.Error("canceler: withdrawCancel failed",
			zap.String("hash", hashHex(hash)), zap.String("reason", reason), zap.Error(err))
		return
	}

	metrics.TransfersTotal.WithLabelValues(destChain.Identifier(), "cancelled").Inc()
	e.logger.Warn("withdraw cancelled",
		zap.String("hash", hashHex(hash)), zap.Uint32("dest_chain_id", uint32(destChainID)), zap.String("reason", reason))
	e.forget(destChainID, hash)

	// Best-effort audit trail only: the live chain queries above are
	// verification's source of truth, not this row. A store outage
	// here never changes the cancellation outcome.
	if e.store == nil {
		return
	}
	if err := e.store.MarkVerifyError(ctx, hashHex(hash), reason); err != nil {
		e.logger.Warn("canceler: failed to record verify-error audit trail", zap.Error(err))
	}
}
