package canceler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
)

// runApproveWatcher verifies a withdraw the moment its WithdrawApprove
// event is observed, so a bad approval is caught well inside the
// cancel window instead of waiting for the next poll tick.
func (e *Engine) runApproveWatcher(ctx context.Context, destChain chainadapter.Chain) {
	defer e.wg.Done()

	destChainID := destChain.BridgeChainID()
	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		from := destChain.LastScannedBlock()
		err := destChain.WatchWithdrawApproveEvents(ctx, from, func(ev *chainadapter.WithdrawApproveEvent) error {
			e.track(destChainID, ev.WithdrawHash)
			e.verify(ctx, destChainID, destChain, ev.WithdrawHash)
			return nil
		})
		if ctx.Err() != nil {
			return
		}
		e.logger.Warn("withdraw-approve watcher exited, restarting",
			zap.String("chain", destChain.Identifier()), zap.Error(err))
		e.sleep(ctx, backoff)
		if backoff < 60*time.Second {
			backoff *= 2
		}
	}
}

// runPoller re-verifies every hash in this chain's in-memory worklist
// on a fixed cadence, catching anything the event stream missed across a
// watcher restart.
func (e *Engine) runPoller(ctx context.Context, destChain chainadapter.Chain) {
	defer e.wg.Done()

	destChainID := destChain.BridgeChainID()
	ticker := time.NewTicker(e.pollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			for _, hash := range e.worklistSnapshot(destChainID) {
				e.verify(ctx, destChainID, destChain, hash)
			}
		}
	}
}

func (e *Engine) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
