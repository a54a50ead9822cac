package operator

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/internal/metrics"
	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/db"
)

// runWriter drains destChain's unapproved pending submits, cross-
// checking each against its source chain's deposit record before
// approving it. Components never poll the source chain
// for approvals themselves -- direction routing means only the
// destination chain's writer ever calls withdrawApprove for a given
// transfer.
func (e *Engine) runWriter(ctx context.Context, destChain chainadapter.Chain) {
	defer e.wg.Done()

	destChainID := destChain.BridgeChainID()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			e.processWriterTick(ctx, destChainID, destChain)
		}
	}
}

func (e *Engine) processWriterTick(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain) {
	breaker := e.breakers[destChainID]
	if breaker != nil && !breaker.Allow(time.Now()) {
		return
	}

	rows, err := e.store.ListUnexecuted(ctx, uint32(destChainID))
	if err != nil {
		e.logger.Warn("writer: failed to list unexecuted submits", zap.Error(err))
		return
	}
	metrics.PendingTransfers.WithLabelValues(e.chainLabel(destChainID)).Set(float64(len(rows)))

	for _, row := range rows {
		if row.Approved {
			continue
		}
		e.tryApprove(ctx, destChainID, destChain, row)
	}
}

func (e *Engine) tryApprove(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain, row *db.PendingSubmitRow) {
	srcChain, ok := e.chains[codec.ChainId(row.SrcChainID)]
	if !ok {
		e.logger.Error("writer: no client configured for source chain",
			zap.Uint32("src_chain_id", row.SrcChainID))
		return
	}

	hash, err := parseTransferHash(row.TransferHash)
	if err != nil {
		e.logger.Error("writer: invalid stored transfer hash", zap.Error(err))
		return
	}

	breaker := e.breakers[destChainID]
	var rec chainadapter.DepositRecord
	if err := withRetry(e.retryConfig(destChainID), breaker, func() error {
		var err error
		rec, err = srcChain.GetDeposit(ctx, hash)
		return err
	}); err != nil {
		e.logger.Warn("writer: getDeposit failed", zap.String("hash", row.TransferHash), zap.Error(err))
		return
	}

	if !rec.Found() {
		// Deposit may not have propagated to this source chain's read
		// replica yet; this is not a chain failure, so it never
		// counts against the circuit breaker -- just retry next tick.
		return
	}
	if rec.Nonce != row.Nonce || rec.NetAmount.String() != row.Amount || addrHex(rec.SrcAccount) != row.Account {
		if err := e.store.MarkVerifyError(ctx, row.TransferHash, "deposit record does not match withdraw submission"); err != nil {
			e.logger.Error("writer: failed to record verify error", zap.Error(err))
		}
		return
	}

	if err := withRetry(e.retryConfig(destChainID), breaker, func() error {
		_, err := destChain.WithdrawApprove(ctx, hash)
		return err
	}); err != nil {
		metrics.TransactionsSent.WithLabelValues(e.chainLabel(destChainID), "failed").Inc()
		e.logger.Warn("writer: withdrawApprove failed", zap.String("hash", row.TransferHash), zap.Error(err))
		// An approve that reverts because the withdraw is already
		// approved on-chain (a crash between tx and row write, or a
		// second operator instance) is the outcome this writer wanted;
		// fold the live state back into the row instead of retrying.
		if info, qerr := destChain.GetPendingWithdraw(ctx, hash); qerr == nil && info.Approved {
			now := time.Now()
			row.Approved = true
			row.ApprovedAt = &now
			if uerr := e.store.UpsertPendingSubmit(ctx, row); uerr != nil {
				e.logger.Error("writer: failed to reconcile approval", zap.Error(uerr))
			}
		}
		return
	}
	metrics.TransactionsSent.WithLabelValues(e.chainLabel(destChainID), "success").Inc()

	now := time.Now()
	row.Approved = true
	row.ApprovedAt = &now
	if err := e.store.UpsertPendingSubmit(ctx, row); err != nil {
		e.logger.Error("writer: failed to persist approval", zap.Error(err))
	}
}

func parseTransferHash(s string) (codec.TransferHash, error) {
	var out codec.TransferHash
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, fmt.Errorf("invalid transfer hash %q: want 32 bytes, got %d", s, len(b))
	}
	copy(out[:], b)
	return out, nil
}
