package operator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/internal/metrics"
	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/db"
)

// runDepositWatcher persists every Deposit event chain emits, keyed
// by (chain_id, tx_hash, log_index) so redelivery on reconnect is a
// no-op. It restarts the chain's blocking watch loop with
// backoff if it returns for any reason other than context
// cancellation -- the loop itself already tolerates transient RPC
// hiccups internally.
func (e *Engine) runDepositWatcher(ctx context.Context, chain chainadapter.Chain) {
	defer e.wg.Done()

	chainID := chain.BridgeChainID()
	b := newBackoff(e.retryConfig(chainID))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		from := e.depositStartBlock(ctx, chain)
		err := chain.WatchDepositEvents(ctx, from, func(ev *chainadapter.DepositEvent) error {
			return e.handleDeposit(ctx, chainID, ev)
		})
		if ctx.Err() != nil {
			return
		}
		e.logger.Warn("deposit watcher exited, restarting",
			zap.String("chain", chain.Identifier()), zap.Error(err))
		e.sleep(ctx, b.next())
	}
}

// runWithdrawSubmitWatcher mirrors runDepositWatcher for the
// destination-chain half of a transfer: a withdrawSubmit call the
// writer must cross-check against the source chain before approving.
func (e *Engine) runWithdrawSubmitWatcher(ctx context.Context, chain chainadapter.Chain) {
	defer e.wg.Done()

	chainID := chain.BridgeChainID()
	b := newBackoff(e.retryConfig(chainID))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		from := chain.LastScannedBlock()
		err := chain.WatchWithdrawSubmitEvents(ctx, from, func(ev *chainadapter.WithdrawSubmitEvent) error {
			return e.handleWithdrawSubmit(ctx, chainID, chain, ev)
		})
		if ctx.Err() != nil {
			return
		}
		e.logger.Warn("withdraw-submit watcher exited, restarting",
			zap.String("chain", chain.Identifier()), zap.Error(err))
		e.sleep(ctx, b.next())
	}
}

func (e *Engine) handleDeposit(ctx context.Context, chainID codec.ChainId, ev *chainadapter.DepositEvent) error {
	hash := e.computeDepositHash(chainID, ev)

	row := &db.DepositRow{
		ChainID:      uint32(chainID),
		TxHash:       ev.TxHash,
		LogIndex:     ev.LogIndex,
		TransferHash: hashHex(hash),
		DestChainID:  uint32(ev.DestChain),
		SrcAccount:   addrHex(ev.SrcAccount),
		DestAccount:  addrHex(ev.DestAccount),
		LocalToken:   addrHex(ev.Token),
		NetAmount:    ev.Amount.String(),
		Fee:          ev.Fee.String(),
		Nonce:        ev.Nonce,
		BlockNumber:  ev.BlockNumber,
	}
	if err := e.store.InsertDeposit(ctx, row); err != nil {
		return err
	}

	label := e.chainLabel(chainID)
	metrics.EventsDetected.WithLabelValues(label, "deposit").Inc()
	metrics.TransferAmount.WithLabelValues(label, row.LocalToken).
		Observe(displayAmount(ev.Amount, e.tokenDecimalsFor(chainID, ev.Token)))
	metrics.LastProcessedBlock.WithLabelValues(label).Set(float64(ev.BlockNumber))

	return e.store.SetChainState(ctx, uint32(chainID), ev.BlockNumber)
}

// chainLabel resolves a chain's human identifier for metric labels,
// falling back to its numeric ID when the chain is not in config.
func (e *Engine) chainLabel(chainID codec.ChainId) string {
	if cc, ok := e.chainConfig(chainID); ok {
		return cc.Identifier
	}
	return fmt.Sprintf("chain-%d", chainID)
}

// handleWithdrawSubmit persists a withdraw's destination-chain side.
// The WithdrawSubmit event itself carries no account field -- the
// contract binds account identity into withdrawHash rather than
// re-emitting it -- so the caller's account is read back from the
// destination chain's own pending-withdraw state, where the contract
// records msg.sender as both src_account and dest_account.
func (e *Engine) handleWithdrawSubmit(ctx context.Context, destChainID codec.ChainId, destChain chainadapter.Chain, ev *chainadapter.WithdrawSubmitEvent) error {
	info, err := destChain.GetPendingWithdraw(ctx, ev.WithdrawHash)
	if err != nil {
		return err
	}

	row := &db.PendingSubmitRow{
		TransferHash: hashHex(ev.WithdrawHash),
		SrcChainID:   uint32(ev.SrcChain),
		DestChainID:  uint32(destChainID),
		Account:      addrHex(info.SrcAccount),
		LocalToken:   addrHex(ev.Token),
		Amount:       ev.Amount.String(),
		Nonce:        ev.Nonce,
		OperatorGas:  ev.OperatorGas.String(),
		SubmittedAt:  time.Now(),
	}
	if err := e.store.UpsertPendingSubmit(ctx, row); err != nil {
		return err
	}
	metrics.EventsDetected.WithLabelValues(e.chainLabel(destChainID), "withdraw_submit").Inc()
	return nil
}

// depositStartBlock resumes from the durable chain_state offset,
// falling back to the configured StartBlock, then chain head.
func (e *Engine) depositStartBlock(ctx context.Context, chain chainadapter.Chain) uint64 {
	state, err := e.store.GetChainState(ctx, uint32(chain.BridgeChainID()))
	if err == nil && state != nil {
		return state.LastBlock
	}
	if cfg, ok := e.chainConfig(chain.BridgeChainID()); ok && cfg.StartBlock > 0 {
		return uint64(cfg.StartBlock)
	}
	if head, err := chain.LatestBlockNumber(ctx); err == nil {
		return head
	}
	return 0
}

func (e *Engine) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
