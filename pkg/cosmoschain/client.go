// Package cosmoschain is the Cosmos/Terra-family chain adapter: it
// drives a Cosmos-like bridge module over a plain gRPC broadcast/query
// service, the same role pkg/evmchain plays for EVM chains. No
// generated protobuf stubs travel with this module's dependency
// lineage (see DESIGN.md), so requests and responses are carried as
// google.golang.org/protobuf's well-known structpb.Struct, addressed
// by a fixed method-name convention instead of a compiled service
// descriptor -- a plain-RPC shape, not a Cosmos SDK Msg service.
package cosmoschain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // cosmos-style address derivation requires ripemd160
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
)

// Client drives one Cosmos-like chain's bridge module: it signs and
// broadcasts the write-path transitions and polls/streams the
// read-path events, mirroring evmchain.Client's role on a Cosmos-like
// chain.
type Client struct {
	cfg    config.ChainConfig
	conn   *grpc.ClientConn
	logger *zap.Logger

	privKey    *secp256k1.PrivateKey
	signerAddr string // bech32, this chain's HRP

	bridgeAddress string

	mu               sync.RWMutex
	lastScannedBlock uint64
}

// NewClient dials cfg.RPCURL as a plain gRPC endpoint and derives the
// signer's bech32 address from the secp256k1 key named by
// cfg.SignerKeyEnv, the same key-loading discipline evmchain.NewClient
// uses for EVM signer keys.
func NewClient(cfg config.ChainConfig, logger *zap.Logger) (*Client, error) {
	if cfg.Bech32HRP == "" {
		return nil, fmt.Errorf("cosmoschain: chain %q missing bech32_hrp", cfg.Identifier)
	}

	conn, err := grpc.NewClient(cfg.RPCURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial Cosmos-like RPC: %w", err)
	}

	keyHex, err := cfg.SignerKey()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	keyBytes, err := hex.DecodeString(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to decode signer key: %w", err)
	}
	privKey := secp256k1.PrivKeyFromBytes(keyBytes)

	addr, err := bech32AddressFromPubKey(privKey.PubKey().SerializeCompressed(), cfg.Bech32HRP)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to derive signer address: %w", err)
	}

	logger.Info("connected to Cosmos-like chain",
		zap.String("identifier", cfg.Identifier),
		zap.Uint32("bridge_chain_id", cfg.BridgeChainID),
		zap.String("bridge_contract", cfg.BridgeContract),
		zap.String("signer_address", addr))

	return &Client{
		cfg:           cfg,
		conn:          conn,
		logger:        logger,
		privKey:       privKey,
		signerAddr:    addr,
		bridgeAddress: cfg.BridgeContract,
	}, nil
}

func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Client) Identifier() string { return c.cfg.Identifier }
func (c *Client) BridgeChainID() codec.ChainId { return codec.ChainId(c.cfg.BridgeChainID) }
func (c *Client) ConfirmationBlocks() uint64 { return c.cfg.ConfirmationBlocks }

func (c *Client) LastScannedBlock() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastScannedBlock
}

func (c *Client) setLastScannedBlock(h uint64) {
	c.mu.Lock()
	if h > c.lastScannedBlock {
		c.lastScannedBlock = h
	}
	c.mu.Unlock()
}

// LatestBlockNumber queries the chain's current height via the
// bridge module's GetLatestHeight query.
func (c *Client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	resp, err := c.query(ctx, "GetLatestHeight", nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest height: %w", err)
	}
	return fieldUint64(resp, "height"), nil
}

// bech32AddressFromPubKey derives a Cosmos-style 20-byte account
// address (ripemd160(sha256(compressed_pubkey))) and encodes it under
// hrp, the same derivation cosmos-sdk's secp256k1 keys use.
func bech32AddressFromPubKey(compressedPubKey []byte, hrp string) (string, error) {
	shaSum := sha256.Sum256(compressedPubKey)
	ripemd := ripemd160.New()
	if _, err := ripemd.Write(shaSum[:]); err != nil {
		return "", fmt.Errorf("ripemd160 hash: %w", err)
	}
	raw := ripemd.Sum(nil)

	var u codec.UniversalAddress
	copy(u[12:32], raw)
	return codec.ToCosmos(u, hrp)
}

const (
	streamReconnectDelay    = 5 * time.Second
	streamMaxReconnectDelay = 60 * time.Second
)
