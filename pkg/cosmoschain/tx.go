package cosmoschain

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// WithdrawApprove submits the operator-only withdrawApprove
// transition over the Tx service, signed with the client's signer key.
func (c *Client) WithdrawApprove(ctx context.Context, hash codec.TransferHash) (string, error) {
	resp, err := c.broadcastTx(ctx, "WithdrawApprove", map[string]any{
		"bridge_address": c.bridgeAddress,
		"transfer_hash":  hashHex(hash),
	})
	return txHashResult(resp, err, "WithdrawApprove")
}

// WithdrawCancel submits the canceler-only withdrawCancel transition.
func (c *Client) WithdrawCancel(ctx context.Context, hash codec.TransferHash) (string, error) {
	resp, err := c.broadcastTx(ctx, "WithdrawCancel", map[string]any{
		"bridge_address": c.bridgeAddress,
		"transfer_hash":  hashHex(hash),
	})
	return txHashResult(resp, err, "WithdrawCancel")
}

// WithdrawUncancel submits the operator-only withdrawUncancel transition.
func (c *Client) WithdrawUncancel(ctx context.Context, hash codec.TransferHash) (string, error) {
	resp, err := c.broadcastTx(ctx, "WithdrawUncancel", map[string]any{
		"bridge_address": c.bridgeAddress,
		"transfer_hash":  hashHex(hash),
	})
	return txHashResult(resp, err, "WithdrawUncancel")
}

// WithdrawExecute submits whichever execute transition matches the
// token's registered handling discipline, mirroring
// evmchain.Client.WithdrawExecute's mintBurn branch.
func (c *Client) WithdrawExecute(ctx context.Context, hash codec.TransferHash, mintBurn bool) (string, error) {
	rpc := "WithdrawExecuteUnlock"
	if mintBurn {
		rpc = "WithdrawExecuteMint"
	}
	resp, err := c.broadcastTx(ctx, rpc, map[string]any{
		"bridge_address": c.bridgeAddress,
		"transfer_hash":  hashHex(hash),
	})
	return txHashResult(resp, err, rpc)
}

func txHashResult(resp *structpb.Struct, err error, rpc string) (string, error) {
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", rpc, err)
	}
	return fieldString(resp, "tx_hash"), nil
}
