package cosmoschain

import (
	"context"
	"fmt"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// GetDeposit mirrors a Cosmos-like bridge module's deposit_hash query
// -- the counterpart of evmchain.Client.GetDeposit. A record
// with Timestamp == 0 reports "no deposit found", exactly as the EVM
// side does.
func (c *Client) GetDeposit(ctx context.Context, hash codec.TransferHash) (chainadapter.DepositRecord, error) {
	resp, err := c.query(ctx, "GetDeposit", map[string]any{
		"bridge_address": c.bridgeAddress,
		"transfer_hash":  hashHex(hash),
	})
	if err != nil {
		return chainadapter.DepositRecord{}, fmt.Errorf("GetDeposit: %w", err)
	}

	destAccount, err := parseAddr(fieldString(resp, "dest_account"))
	if err != nil {
		return chainadapter.DepositRecord{}, err
	}
	srcAccount, err := parseAddr(fieldString(resp, "src_account"))
	if err != nil {
		return chainadapter.DepositRecord{}, err
	}
	localToken, err := parseAddr(fieldString(resp, "local_token"))
	if err != nil {
		return chainadapter.DepositRecord{}, err
	}

	return chainadapter.DepositRecord{
		DestChain:   codec.ChainId(fieldUint64(resp, "dest_chain")),
		DestAccount: destAccount,
		SrcAccount:  srcAccount,
		LocalToken:  localToken,
		NetAmount:   parseBig(fieldString(resp, "net_amount")),
		Nonce:       fieldUint64(resp, "nonce"),
		Fee:         parseBig(fieldString(resp, "fee")),
		Timestamp:   fieldUint64(resp, "timestamp"),
	}, nil
}

// GetPendingWithdraw mirrors a Cosmos-like bridge module's
// pending_withdraw query, returning the full struct every bridge
// implementation exposes.
func (c *Client) GetPendingWithdraw(ctx context.Context, hash codec.TransferHash) (chainadapter.PendingWithdrawInfo, error) {
	resp, err := c.query(ctx, "GetPendingWithdraw", map[string]any{
		"bridge_address": c.bridgeAddress,
		"transfer_hash":  hashHex(hash),
	})
	if err != nil {
		return chainadapter.PendingWithdrawInfo{}, fmt.Errorf("GetPendingWithdraw: %w", err)
	}

	srcAccount, err := parseAddr(fieldString(resp, "src_account"))
	if err != nil {
		return chainadapter.PendingWithdrawInfo{}, err
	}
	destAccount, err := parseAddr(fieldString(resp, "dest_account"))
	if err != nil {
		return chainadapter.PendingWithdrawInfo{}, err
	}
	localToken, err := parseAddr(fieldString(resp, "local_token"))
	if err != nil {
		return chainadapter.PendingWithdrawInfo{}, err
	}
	recipient, err := parseAddr(fieldString(resp, "recipient"))
	if err != nil {
		return chainadapter.PendingWithdrawInfo{}, err
	}

	return chainadapter.PendingWithdrawInfo{
		SrcChain:     codec.ChainId(fieldUint64(resp, "src_chain")),
		SrcAccount:   srcAccount,
		DestAccount:  destAccount,
		LocalToken:   localToken,
		Recipient:    recipient,
		Amount:       parseBig(fieldString(resp, "amount")),
		Nonce:        fieldUint64(resp, "nonce"),
		SrcDecimals:  uint8(fieldUint64(resp, "src_decimals")),
		DestDecimals: uint8(fieldUint64(resp, "dest_decimals")),
		OperatorGas:  parseBig(fieldString(resp, "operator_gas")),
		SubmittedAt:  fieldUint64(resp, "submitted_at"),
		ApprovedAt:   fieldUint64(resp, "approved_at"),
		Approved:     fieldBool(resp, "approved"),
		Cancelled:    fieldBool(resp, "cancelled"),
		Executed:     fieldBool(resp, "executed"),
	}, nil
}
