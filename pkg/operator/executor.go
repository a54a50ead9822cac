package operator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/internal/metrics"
	"github.com/chainsafe/watchtower-bridge/pkg/bridgecore"
	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/db"
	"github.com/chainsafe/watchtower-bridge/pkg/registry"
)

// runAutoExecutor is the single loop that executes every approved,
// non-cancelled withdraw once CANCEL_WINDOW has elapsed past its
// approval. It runs once across all destination chains --
// unlike the watchers and writers, which are per-chain.
func (e *Engine) runAutoExecutor(ctx context.Context) {
	defer e.wg.Done()

	interval := e.cfg.Operator.AutoExecuteInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			for destChainID, chain := range e.chains {
				e.executeReady(ctx, destChainID, chain)
			}
		}
	}
}

func (e *Engine) executeReady(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain) {
	rows, err := e.store.ListUnexecuted(ctx, uint32(destChainID))
	if err != nil {
		e.logger.Warn("auto-executor: failed to list unexecuted submits", zap.Error(err))
		return
	}

	window := time.Duration(bridgecore.CancelWindowSeconds) * time.Second
	now := time.Now()

	for _, row := range rows {
		if !row.Approved || row.ApprovedAt == nil {
			continue
		}
		if now.Before(row.ApprovedAt.Add(window)) {
			continue
		}
		e.execute(ctx, destChainID, destChain, row)
	}
}

func (e *Engine) execute(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain, row *db.PendingSubmitRow) {
	hash, err := parseTransferHash(row.TransferHash)
	if err != nil {
		e.logger.Error("auto-executor: invalid stored transfer hash", zap.Error(err))
		return
	}
	localToken, err := parseUniversalAddress(row.LocalToken)
	if err != nil {
		e.logger.Error("auto-executor: invalid stored local token", zap.Error(err))
		return
	}
	mintBurn := e.tokenType(destChainID, localToken) == registry.MintBurn

	breaker := e.breakers[destChainID]
	if err := withRetry(e.retryConfig(destChainID), breaker, func() error {
		_, err := destChain.WithdrawExecute(ctx, hash, mintBurn)
		return err
	}); err != nil {
		e.logger.Warn("auto-executor: withdrawExecute failed", zap.String("hash", row.TransferHash), zap.Error(err))
		e.reconcileRow(ctx, destChain, row, hash)
		return
	}

	label := e.chainLabel(destChainID)
	metrics.TransfersTotal.WithLabelValues(label, "executed").Inc()
	metrics.TransferDuration.WithLabelValues(label).Observe(time.Since(row.SubmittedAt).Seconds())

	now := time.Now()
	row.Executed = true
	row.ExecutedAt = &now
	if err := e.store.UpsertPendingSubmit(ctx, row); err != nil {
		e.logger.Error("auto-executor: failed to persist execution", zap.Error(err))
	}
}

// reconcileRow re-reads the withdraw's live on-chain state after a
// failed execute and folds any terminal flags back into the row. A
// withdraw a canceler vetoed, or one a user self-executed, would
// otherwise stay in the work queue and be retried every tick.
func (e *Engine) reconcileRow(ctx context.Context, destChain chainadapter.Chain, row *db.PendingSubmitRow, hash codec.TransferHash) {
	info, err := destChain.GetPendingWithdraw(ctx, hash)
	if err != nil {
		return
	}
	if !info.Cancelled && !info.Executed {
		return
	}

	now := time.Now()
	row.Cancelled = info.Cancelled
	row.Executed = info.Executed
	if info.Executed {
		row.ExecutedAt = &now
	}
	if err := e.store.UpsertPendingSubmit(ctx, row); err != nil {
		e.logger.Error("auto-executor: failed to reconcile row state", zap.Error(err))
		return
	}
	e.logger.Info("auto-executor: withdraw reached terminal state outside this process",
		zap.String("hash", row.TransferHash),
		zap.Bool("cancelled", info.Cancelled),
		zap.Bool("executed", info.Executed))
}
