// Package operator implements the off-chain service that watches
// every configured chain for Deposit and WithdrawSubmit events,
// cross-checks each withdraw against its source-chain deposit before
// approving it, and executes approved withdraws once the cancel
// window has elapsed. It holds no consensus state of its own --
// everything durable lives in pkg/db, keyed so redelivery and restart
// are both safe.
package operator

import (
	"context"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
	"github.com/chainsafe/watchtower-bridge/pkg/db"
	"github.com/chainsafe/watchtower-bridge/pkg/registry"
)

// tokenRoute is the destination-side half of a token's cross-chain
// mapping, mirrored from configuration so the watcher can recompute
// the same transfer_hash the source chain's contract computed --
// the operator's ingestion path re-derives hashes locally just as the
// canceler's verification path does.
type tokenRoute struct {
	destToken codec.UniversalAddress
}

// Engine orchestrates the per-chain watchers and writers plus the
// single auto-executor loop.
type Engine struct {
	cfg    *config.Config
	chains map[codec.ChainId]chainadapter.Chain
	store  *db.Store
	logger *zap.Logger

	tokenTypes    map[codec.ChainId]map[codec.UniversalAddress]registry.TokenType
	tokenDecimals map[codec.ChainId]map[codec.UniversalAddress]uint8
	routes        map[codec.ChainId]map[codec.UniversalAddress]map[codec.ChainId]tokenRoute
	breakers      map[codec.ChainId]*circuitBreaker

	mu     sync.RWMutex
	ready  map[codec.ChainId]bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewEngine builds an Engine over chains, keyed by their bridge chain
// ID. Every chain in cfg.Chains must have a matching entry in chains.
func NewEngine(cfg *config.Config, chains map[codec.ChainId]chainadapter.Chain, store *db.Store, logger *zap.Logger) *Engine {
	e := &Engine{
		cfg:           cfg,
		chains:        chains,
		store:         store,
		logger:        logger,
		tokenTypes:    make(map[codec.ChainId]map[codec.UniversalAddress]registry.TokenType),
		tokenDecimals: make(map[codec.ChainId]map[codec.UniversalAddress]uint8),
		routes:        make(map[codec.ChainId]map[codec.UniversalAddress]map[codec.ChainId]tokenRoute),
		breakers:      make(map[codec.ChainId]*circuitBreaker),
		ready:         make(map[codec.ChainId]bool),
		stopCh:        make(chan struct{}),
	}
	e.loadTokenConfig()
	return e
}

func (e *Engine) loadTokenConfig() {
	for _, cc := range e.cfg.Chains {
		chainID := codec.ChainId(cc.BridgeChainID)
		e.breakers[chainID] = newCircuitBreaker(cc.Retry.CircuitBreaker, cc.Identifier)

		for _, tc := range cc.Tokens {
			local, err := parseUniversalAddress(tc.LocalToken)
			if err != nil {
				e.logger.Error("skipping unparseable token config", zap.Error(err))
				continue
			}
			if e.tokenTypes[chainID] == nil {
				e.tokenTypes[chainID] = make(map[codec.UniversalAddress]registry.TokenType)
				e.tokenDecimals[chainID] = make(map[codec.UniversalAddress]uint8)
			}
			tt := registry.LockUnlock
			if tc.Type == "mint_burn" {
				tt = registry.MintBurn
			}
			e.tokenTypes[chainID][local] = tt
			e.tokenDecimals[chainID][local] = tc.Decimals

			for _, r := range tc.Routes {
				destToken, err := parseUniversalAddress(r.DestToken)
				if err != nil {
					e.logger.Error("skipping unparseable route", zap.Error(err))
					continue
				}
				if e.routes[chainID] == nil {
					e.routes[chainID] = make(map[codec.UniversalAddress]map[codec.ChainId]tokenRoute)
				}
				if e.routes[chainID][local] == nil {
					e.routes[chainID][local] = make(map[codec.ChainId]tokenRoute)
				}
				e.routes[chainID][local][codec.ChainId(r.DestChainID)] = tokenRoute{destToken: destToken}
			}
		}
	}
}

// Start launches every watcher, writer, and the auto-executor, then
// returns immediately; the goroutines run until ctx is canceled or
// Stop is called.
func (e *Engine) Start(ctx context.Context) error {
	for _, chain := range e.chains {
		chain := chain
		e.wg.Add(1)
		go e.runDepositWatcher(ctx, chain)

		e.wg.Add(1)
		go e.runWithdrawSubmitWatcher(ctx, chain)

		e.wg.Add(1)
		go e.runWriter(ctx, chain)
	}

	e.wg.Add(1)
	go e.runAutoExecutor(ctx)

	e.wg.Add(1)
	go e.runReadinessLoop(ctx)

	e.logger.Info("operator engine started", zap.Int("chains", len(e.chains)))
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

func (e *Engine) chainConfig(id codec.ChainId) (config.ChainConfig, bool) {
	for _, cc := range e.cfg.Chains {
		if codec.ChainId(cc.BridgeChainID) == id {
			return cc, true
		}
	}
	return config.ChainConfig{}, false
}

func (e *Engine) retryConfig(id codec.ChainId) config.RetryConfig {
	if cc, ok := e.chainConfig(id); ok {
		return cc.Retry
	}
	return config.RetryConfig{InitialBackoff: time.Second, MaxBackoff: 60 * time.Second, MaxAttempts: 5}
}

func (e *Engine) tokenType(chainID codec.ChainId, localToken codec.UniversalAddress) registry.TokenType {
	if m, ok := e.tokenTypes[chainID]; ok {
		if tt, ok := m[localToken]; ok {
			return tt
		}
	}
	return registry.LockUnlock
}

func (e *Engine) tokenDecimalsFor(chainID codec.ChainId, localToken codec.UniversalAddress) uint8 {
	if m, ok := e.tokenDecimals[chainID]; ok {
		if d, ok := m[localToken]; ok {
			return d
		}
	}
	return 18
}

// computeDepositHash recomputes the canonical transfer hash for a
// Deposit event using the configured route for its destination chain
// -- the same destination-token substitution the source chain's
// contract performs before emitting the event.
func (e *Engine) computeDepositHash(srcChainID codec.ChainId, ev *chainadapter.DepositEvent) codec.TransferHash {
	destToken := ev.Token
	if m, ok := e.routes[srcChainID][ev.Token]; ok {
		if r, ok := m[ev.DestChain]; ok {
			destToken = r.destToken
		}
	}
	return codec.ComputeTransferHash(codec.TransferHashInput{
		SrcChain:    srcChainID,
		DestChain:   ev.DestChain,
		SrcAccount:  ev.SrcAccount,
		DestAccount: ev.DestAccount,
		Token:       destToken,
		Amount:      ev.Amount,
		Nonce:       new(big.Int).SetUint64(ev.Nonce),
	})
}
