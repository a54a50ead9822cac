// Package canceler implements the off-chain watchdog that
// independently re-derives every withdraw's source deposit and cancels
// any approval it cannot corroborate before the cancel window closes.
// It trusts nothing the operator wrote -- it recomputes every check
// from the chains themselves, which is the whole point of having a
// role separate from the one that approves transfers.
package canceler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
	"github.com/chainsafe/watchtower-bridge/pkg/db"
)

// Engine runs one approve-watcher and one poller per destination
// chain. The watcher reacts to a WithdrawApprove event the moment it
// is observed; the poller is the backstop that catches anything the
// watcher's stream missed on reconnect, bounded by Canceler.PollInterval.
//
// Every verification decision is made from hashes and chain queries
// only -- destChain.GetPendingWithdraw and srcChain.GetDeposit -- never
// from a row an operator process wrote. store is touched solely to
// leave a best-effort audit trail once a cancellation decision has
// already been made on-chain; a store outage never blocks or skews a
// verification outcome. The canceler shares no state with the
// operator.
type Engine struct {
	cfg    *config.Config
	chains map[codec.ChainId]chainadapter.Chain
	store  *db.Store
	logger *zap.Logger

	mu       sync.RWMutex
	ready    map[codec.ChainId]bool
	worklist map[codec.ChainId]map[codec.TransferHash]struct{}
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewEngine builds an Engine over chains, keyed by their bridge chain ID.
func NewEngine(cfg *config.Config, chains map[codec.ChainId]chainadapter.Chain, store *db.Store, logger *zap.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		chains:   chains,
		store:    store,
		logger:   logger,
		ready:    make(map[codec.ChainId]bool),
		worklist: make(map[codec.ChainId]map[codec.TransferHash]struct{}),
		stopCh:   make(chan struct{}),
	}
}

// track adds hash to destChainID's backstop worklist: the poller
// rechecks it every tick until forget removes it.
func (e *Engine) track(destChainID codec.ChainId, hash codec.TransferHash) {
	e.mu.Lock()
	defer e.mu.Unlock()
	set, ok := e.worklist[destChainID]
	if !ok {
		set = make(map[codec.TransferHash]struct{})
		e.worklist[destChainID] = set
	}
	set[hash] = struct{}{}
}

// forget removes hash from destChainID's worklist once verify()
// observes it has reached a terminal state.
func (e *Engine) forget(destChainID codec.ChainId, hash codec.TransferHash) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.worklist[destChainID], hash)
}

// worklistSnapshot returns the hashes currently tracked for destChainID.
func (e *Engine) worklistSnapshot(destChainID codec.ChainId) []codec.TransferHash {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]codec.TransferHash, 0, len(e.worklist[destChainID]))
	for h := range e.worklist[destChainID] {
		out = append(out, h)
	}
	return out
}

// Start launches every chain's watcher and poller and returns
// immediately; the goroutines run until ctx is canceled or Stop is called.
func (e *Engine) Start(ctx context.Context) error {
	for _, chain := range e.chains {
		chain := chain
		e.wg.Add(1)
		go e.runApproveWatcher(ctx, chain)

		e.wg.Add(1)
		go e.runPoller(ctx, chain)
	}

	e.wg.Add(1)
	go e.runReadinessLoop(ctx)

	e.logger.Info("canceler engine started", zap.Int("chains", len(e.chains)))
	return nil
}

// Stop signals every goroutine to exit and blocks until they do.
func (e *Engine) Stop() {
	close(e.stopCh)
	e.wg.Wait()
}

// IsReady reports whether, at the readiness loop's last sample, every
// configured chain's last scanned block was within
// ConfirmationBlocks()+1 of its head.
func (e *Engine) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for id := range e.chains {
		if !e.ready[id] {
			return false
		}
	}
	return true
}

func (e *Engine) runReadinessLoop(ctx context.Context) {
	defer e.wg.Done()
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			for id, chain := range e.chains {
				head, err := chain.LatestBlockNumber(ctx)
				if err != nil {
					continue
				}
				last := chain.LastScannedBlock()
				e.mu.Lock()
				e.ready[id] = head <= last+chain.ConfirmationBlocks()+1
				e.mu.Unlock()
			}
		}
	}
}

func (e *Engine) verificationBudget() time.Duration {
	if e.cfg.Canceler.VerificationBudget > 0 {
		return e.cfg.Canceler.VerificationBudget
	}
	return 30 * time.Second
}

func (e *Engine) pollInterval() time.Duration {
	if e.cfg.Canceler.PollInterval > 0 {
		return e.cfg.Canceler.PollInterval
	}
	return 10 * time.Second
}
