// Package evmchain is the EVM-family chain adapter: it drives an
// on-chain Bridge contract instance (pkg/evmchain/contracts) the same
// way the operator and canceler drive a Cosmos-like one.
package evmchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/chainsafe/watchtower-bridge/internal/metrics"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
	"github.com/chainsafe/watchtower-bridge/pkg/evmchain/contracts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Client drives one EVM chain's bridge contract: it signs and submits
// the write-path transitions and polls the read-path events.
type Client struct {
	cfg        config.ChainConfig
	eth        *ethclient.Client
	privateKey *ecdsa.PrivateKey
	address    common.Address
	logger     *zap.Logger

	bridgeAddress common.Address
	bridge        *contracts.Bridge

	mu               sync.RWMutex
	lastScannedBlock uint64

	// txMu serializes every GetTransactor-through-submit critical section
	// for this client's signer. PendingNonceAt reads the mempool-visible nonce, which
	// only advances once a prior transaction has actually been broadcast;
	// two transactions built concurrently from the same signer would race
	// to claim the same nonce otherwise. It is released once the
	// transaction has been submitted, before waiting for it to be mined,
	// so confirmation latency never serializes unrelated submissions.
	txMu sync.Mutex
}

// NewClient dials the chain's RPC endpoint and binds the Bridge contract.
func NewClient(cfg config.ChainConfig, logger *zap.Logger) (*Client, error) {
	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to EVM RPC: %w", err)
	}

	keyHex, err := cfg.SignerKey()
	if err != nil {
		eth.Close()
		return nil, err
	}
	privateKey, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to load signer key: %w", err)
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	bridgeAddress := common.HexToAddress(cfg.BridgeContract)

	bridge, err := contracts.NewBridge(bridgeAddress, eth)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to bind bridge contract: %w", err)
	}

	logger.Info("connected to EVM chain",
		zap.String("identifier", cfg.Identifier),
		zap.Uint32("bridge_chain_id", cfg.BridgeChainID),
		zap.Int64("native_chain_id", cfg.NativeChainID),
		zap.String("bridge_contract", bridgeAddress.Hex()),
		zap.String("signer_address", address.Hex()))

	return &Client{
		cfg:           cfg,
		eth:           eth,
		privateKey:    privateKey,
		address:       address,
		bridgeAddress: bridgeAddress,
		bridge:        bridge,
		logger:        logger,
	}, nil
}

func (c *Client) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
}

// LastScannedBlock returns the highest block the watcher has scanned,
// used by the HTTP status surface's readiness check.
func (c *Client) LastScannedBlock() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastScannedBlock
}

func (c *Client) setLastScannedBlock(b uint64) {
	c.mu.Lock()
	if b > c.lastScannedBlock {
		c.lastScannedBlock = b
	}
	c.mu.Unlock()
}

// GetTransactor builds a signer with the nonce, gas, and chain-id
// fields filled in before the wallet signs; a transactor missing any
// of them cannot produce a valid signature.
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	chainID := big.NewInt(c.cfg.NativeChainID)

	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	auth.Nonce = big.NewInt(int64(nonce))
	auth.GasLimit = c.cfg.GasLimit

	header, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}

	tip, err := c.eth.SuggestGasTipCap(ctx)
	if err != nil {
		tip = big.NewInt(2_000_000_000)
		c.logger.Warn("failed to get suggested tip, using fallback", zap.Error(err))
	}
	minTip := big.NewInt(2_000_000_000)
	if tip.Cmp(minTip) < 0 {
		tip = minTip
	}

	baseFee := header.BaseFee
	maxFee := new(big.Int).Mul(baseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)

	if c.cfg.MaxGasPriceWei != "" {
		maxAllowed, ok := new(big.Int).SetString(c.cfg.MaxGasPriceWei, 10)
		if ok && maxFee.Cmp(maxAllowed) > 0 {
			maxFee = maxAllowed
		}
	}

	auth.GasFeeCap = maxFee
	auth.GasTipCap = tip
	return auth, nil
}

func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// WatchDepositEvents polls this chain's bridge for Deposit events from
// fromBlock onward. Polling (rather than a push subscription) keeps
// the watcher working against HTTP-only RPC endpoints.
func (c *Client) WatchDepositEvents(ctx context.Context, fromBlock uint64, handler func(*DepositEvent) error) error {
	c.logger.Info("starting deposit watcher", zap.Uint64("from_block", fromBlock))

	current := fromBlock
	c.setLastScannedBlock(current)

	ticker := time.NewTicker(c.cfg.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			latest, err := c.LatestBlockNumber(ctx)
			if err != nil {
				c.logger.Warn("failed to get latest block", zap.Error(err))
				continue
			}
			if latest <= current {
				c.setLastScannedBlock(latest)
				continue
			}

			opts := &bind.FilterOpts{Start: current + 1, End: &latest, Context: ctx}
			iter, err := c.bridge.FilterDeposit(opts, nil, nil)
			if err != nil {
				c.logger.Warn("failed to filter deposit events", zap.Error(err))
				continue
			}
			for iter.Next() {
				ev := iter.Event
				deposit := &DepositEvent{
					DestChain:   ev.DestChain,
					DestAccount: ev.DestAccount,
					SrcAccount:  ev.SrcAccount,
					Token:       ev.Token,
					Amount:      ev.Amount,
					Nonce:       ev.Nonce,
					Fee:         ev.Fee,
					BlockNumber: ev.Raw.BlockNumber,
					TxHash:      ev.Raw.TxHash,
					LogIndex:    ev.Raw.Index,
				}
				if err := handler(deposit); err != nil {
					c.logger.Error("deposit handler failed", zap.Error(err), zap.String("tx_hash", ev.Raw.TxHash.Hex()))
				}
			}
			if err := iter.Error(); err != nil {
				c.logger.Warn("deposit iterator error", zap.Error(err))
			}
			iter.Close()

			metrics.BlocksProcessed.WithLabelValues(c.cfg.Identifier).Add(float64(latest - current))
			current = latest
			c.setLastScannedBlock(current)
		}
	}
}

// WatchWithdrawSubmitEvents polls this chain's bridge for
// WithdrawSubmit events, the destination-side half of a transfer the
// writer must cross-check against the source chain before approving.
func (c *Client) WatchWithdrawSubmitEvents(ctx context.Context, fromBlock uint64, handler func(*WithdrawSubmitEvent) error) error {
	current := fromBlock
	ticker := time.NewTicker(c.cfg.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			latest, err := c.LatestBlockNumber(ctx)
			if err != nil {
				c.logger.Warn("failed to get latest block", zap.Error(err))
				continue
			}
			if latest <= current {
				continue
			}

			opts := &bind.FilterOpts{Start: current + 1, End: &latest, Context: ctx}
			iter, err := c.bridge.FilterWithdrawSubmit(opts, nil)
			if err != nil {
				c.logger.Warn("failed to filter withdraw-submit events", zap.Error(err))
				continue
			}
			for iter.Next() {
				ev := iter.Event
				submit := &WithdrawSubmitEvent{
					WithdrawHash: ev.WithdrawHash,
					SrcChain:     ev.SrcChain,
					Token:        ev.Token,
					Amount:       ev.Amount,
					Nonce:        ev.Nonce,
					OperatorGas:  ev.OperatorGas,
					BlockNumber:  ev.Raw.BlockNumber,
					TxHash:       ev.Raw.TxHash,
					LogIndex:     ev.Raw.Index,
				}
				if err := handler(submit); err != nil {
					c.logger.Error("withdraw-submit handler failed", zap.Error(err), zap.String("tx_hash", ev.Raw.TxHash.Hex()))
				}
			}
			if err := iter.Error(); err != nil {
				c.logger.Warn("withdraw-submit iterator error", zap.Error(err))
			}
			iter.Close()
			current = latest
		}
	}
}

// WatchWithdrawApproveEvents polls for WithdrawApprove events, which
// is what the canceler watches to trigger its independent verification.
func (c *Client) WatchWithdrawApproveEvents(ctx context.Context, fromBlock uint64, handler func(*WithdrawApproveEvent) error) error {
	current := fromBlock
	ticker := time.NewTicker(c.cfg.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			latest, err := c.LatestBlockNumber(ctx)
			if err != nil {
				c.logger.Warn("failed to get latest block", zap.Error(err))
				continue
			}
			if latest <= current {
				continue
			}

			opts := &bind.FilterOpts{Start: current + 1, End: &latest, Context: ctx}
			iter, err := c.bridge.FilterWithdrawApprove(opts, nil)
			if err != nil {
				c.logger.Warn("failed to filter withdraw-approve events", zap.Error(err))
				continue
			}
			for iter.Next() {
				ev := iter.Event
				approve := &WithdrawApproveEvent{
					WithdrawHash: ev.WithdrawHash,
					BlockNumber:  ev.Raw.BlockNumber,
					TxHash:       ev.Raw.TxHash,
					LogIndex:     ev.Raw.Index,
				}
				if err := handler(approve); err != nil {
					c.logger.Error("withdraw-approve handler failed", zap.Error(err), zap.String("tx_hash", ev.Raw.TxHash.Hex()))
				}
			}
			if err := iter.Error(); err != nil {
				c.logger.Warn("withdraw-approve iterator error", zap.Error(err))
			}
			iter.Close()
			current = latest
		}
	}
}

// GetDeposit reads a DepositRecord by transfer-hash from the source
// chain's bridge, used by the writer to cross-check a pending submit
// and by the canceler to verify an approval.
func (c *Client) GetDeposit(ctx context.Context, hash [32]byte) (contracts.DepositRecord, error) {
	return c.bridge.GetDeposit(&bind.CallOpts{Context: ctx}, hash)
}

// GetPendingWithdraw reads a PendingWithdraw by transfer-hash from the
// destination chain's bridge.
func (c *Client) GetPendingWithdraw(ctx context.Context, hash [32]byte) (contracts.PendingWithdraw, error) {
	return c.bridge.GetPendingWithdraw(&bind.CallOpts{Context: ctx}, hash)
}

// WithdrawApprove submits the operator-only withdrawApprove transition.
func (c *Client) WithdrawApprove(ctx context.Context, hash [32]byte) (common.Hash, error) {
	tx, err := c.submitSigned(ctx, func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return c.bridge.WithdrawApprove(auth, hash)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("withdrawApprove failed: %w", err)
	}
	return c.waitMined(ctx, tx, "withdrawApprove")
}

// WithdrawCancel submits the canceler-only withdrawCancel transition.
func (c *Client) WithdrawCancel(ctx context.Context, hash [32]byte) (common.Hash, error) {
	tx, err := c.submitSigned(ctx, func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return c.bridge.WithdrawCancel(auth, hash)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("withdrawCancel failed: %w", err)
	}
	return c.waitMined(ctx, tx, "withdrawCancel")
}

// WithdrawUncancel submits the operator-only withdrawUncancel transition.
func (c *Client) WithdrawUncancel(ctx context.Context, hash [32]byte) (common.Hash, error) {
	tx, err := c.submitSigned(ctx, func(auth *bind.TransactOpts) (*types.Transaction, error) {
		return c.bridge.WithdrawUncancel(auth, hash)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("withdrawUncancel failed: %w", err)
	}
	return c.waitMined(ctx, tx, "withdrawUncancel")
}

// WithdrawExecute submits whichever execute transition matches the
// token's registered handling discipline.
func (c *Client) WithdrawExecute(ctx context.Context, hash [32]byte, mintBurn bool) (common.Hash, error) {
	tx, err := c.submitSigned(ctx, func(auth *bind.TransactOpts) (*types.Transaction, error) {
		if mintBurn {
			return c.bridge.WithdrawExecuteMint(auth, hash)
		}
		return c.bridge.WithdrawExecuteUnlock(auth, hash)
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("withdrawExecute failed: %w", err)
	}
	return c.waitMined(ctx, tx, "withdrawExecute")
}

// submitSigned runs the GetTransactor-through-send critical section
// under txMu so two goroutines submitting against this client's signer
// (the writer approving and the auto-executor executing, say) can never
// read the same pending nonce and race to claim it. The lock is released
// the moment send returns, before the caller waits for a receipt, so a
// slow confirmation never blocks the next submission.
func (c *Client) submitSigned(ctx context.Context, send func(auth *bind.TransactOpts) (*types.Transaction, error)) (*types.Transaction, error) {
	c.txMu.Lock()
	defer c.txMu.Unlock()

	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return nil, err
	}
	return send(auth)
}

func (c *Client) waitMined(ctx context.Context, tx *types.Transaction, op string) (common.Hash, error) {
	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to wait for tx receipt: %w", err)
	}
	metrics.GasUsed.WithLabelValues(op).Observe(float64(receipt.GasUsed))
	if receipt.Status == 0 {
		return common.Hash{}, fmt.Errorf("transaction reverted: tx_hash=%s", tx.Hash().Hex())
	}
	return tx.Hash(), nil
}
