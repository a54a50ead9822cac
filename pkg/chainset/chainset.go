// Package chainset wires every chain in configuration to its concrete
// chainadapter.Chain implementation, so the operator and canceler
// server entrypoints share one dial path instead of each re-deriving
// it from config.ChainConfig.Kind.
package chainset

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
	"github.com/chainsafe/watchtower-bridge/pkg/cosmoschain"
	"github.com/chainsafe/watchtower-bridge/pkg/evmchain"
)

// Build dials every configured chain and returns it keyed by its
// bridge chain ID, plus a close func that tears every dialed client
// down in one call. On any dial failure it closes what it already
// opened before returning the error, so a caller never leaks a
// partially-built set.
func Build(_ context.Context, cfg *config.Config, logger *zap.Logger) (map[codec.ChainId]chainadapter.Chain, func(), error) {
	chains := make(map[codec.ChainId]chainadapter.Chain, len(cfg.Chains))
	var opened []chainadapter.Chain

	closeAll := func() {
		for _, c := range opened {
			c.Close()
		}
	}

	for _, cc := range cfg.Chains {
		chainID := codec.ChainId(cc.BridgeChainID)

		switch cc.Kind {
		case config.ChainKindEVM:
			client, err := evmchain.NewClient(cc, logger)
			if err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("dial chain %s: %w", cc.Identifier, err)
			}
			adapter := evmchain.NewAdapter(client, cc.Identifier, chainID, cc.ConfirmationBlocks)
			chains[chainID] = adapter
			opened = append(opened, adapter)

		case config.ChainKindCosmos:
			client, err := cosmoschain.NewClient(cc, logger)
			if err != nil {
				closeAll()
				return nil, nil, fmt.Errorf("dial chain %s: %w", cc.Identifier, err)
			}
			chains[chainID] = client
			opened = append(opened, client)

		default:
			closeAll()
			return nil, nil, fmt.Errorf("chain %s: unknown chain kind %q", cc.Identifier, cc.Kind)
		}
	}

	return chains, closeAll, nil
}
