package evmchain

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// Adapter lifts a Client to the chain-agnostic chainadapter.Chain
// surface, translating between EVM-native common.Address/[32]byte and
// the bridge's canonical codec.UniversalAddress/codec.TransferHash.
type Adapter struct {
	*Client
	identifier    string
	bridgeChainID codec.ChainId
	confirmations uint64
}

// NewAdapter wraps client for identifier, which must be the same
// string passed to registry.ChainRegistry.RegisterChain for this chain.
func NewAdapter(client *Client, identifier string, bridgeChainID codec.ChainId, confirmationBlocks uint64) *Adapter {
	return &Adapter{Client: client, identifier: identifier, bridgeChainID: bridgeChainID, confirmations: confirmationBlocks}
}

func (a *Adapter) Identifier() string { return a.identifier }
func (a *Adapter) BridgeChainID() codec.ChainId { return a.bridgeChainID }
func (a *Adapter) ConfirmationBlocks() uint64 { return a.confirmations }

func (a *Adapter) WatchDepositEvents(ctx context.Context, fromBlock uint64, handler func(*chainadapter.DepositEvent) error) error {
	return a.Client.WatchDepositEvents(ctx, fromBlock, func(ev *DepositEvent) error {
		return handler(&chainadapter.DepositEvent{
			DestChain:   codec.ChainId(ev.DestChain),
			DestAccount: ev.DestAccount,
			SrcAccount:  ev.SrcAccount,
			Token:       codec.FromEVM(ev.Token),
			Amount:      ev.Amount,
			Nonce:       ev.Nonce,
			Fee:         ev.Fee,
			BlockNumber: ev.BlockNumber,
			TxHash:      ev.TxHash.Hex(),
			LogIndex:    uint32(ev.LogIndex),
		})
	})
}

func (a *Adapter) WatchWithdrawSubmitEvents(ctx context.Context, fromBlock uint64, handler func(*chainadapter.WithdrawSubmitEvent) error) error {
	return a.Client.WatchWithdrawSubmitEvents(ctx, fromBlock, func(ev *WithdrawSubmitEvent) error {
		return handler(&chainadapter.WithdrawSubmitEvent{
			WithdrawHash: codec.TransferHash(ev.WithdrawHash),
			SrcChain:     codec.ChainId(ev.SrcChain),
			Token:        codec.FromEVM(ev.Token),
			Amount:       ev.Amount,
			Nonce:        ev.Nonce,
			OperatorGas:  ev.OperatorGas,
			BlockNumber:  ev.BlockNumber,
			TxHash:       ev.TxHash.Hex(),
			LogIndex:     uint32(ev.LogIndex),
		})
	})
}

func (a *Adapter) WatchWithdrawApproveEvents(ctx context.Context, fromBlock uint64, handler func(*chainadapter.WithdrawApproveEvent) error) error {
	return a.Client.WatchWithdrawApproveEvents(ctx, fromBlock, func(ev *WithdrawApproveEvent) error {
		return handler(&chainadapter.WithdrawApproveEvent{
			WithdrawHash: codec.TransferHash(ev.WithdrawHash),
			BlockNumber:  ev.BlockNumber,
			TxHash:       ev.TxHash.Hex(),
			LogIndex:     uint32(ev.LogIndex),
		})
	})
}

func (a *Adapter) GetDeposit(ctx context.Context, hash codec.TransferHash) (chainadapter.DepositRecord, error) {
	rec, err := a.Client.GetDeposit(ctx, [32]byte(hash))
	if err != nil {
		return chainadapter.DepositRecord{}, err
	}
	return chainadapter.DepositRecord{
		DestChain:   codec.ChainId(rec.DestChain),
		DestAccount: rec.DestAccount,
		SrcAccount:  rec.SrcAccount,
		LocalToken:  codec.FromEVM(rec.LocalToken),
		NetAmount:   rec.NetAmount,
		Nonce:       rec.Nonce,
		Fee:         rec.Fee,
		Timestamp:   rec.Timestamp,
	}, nil
}

func (a *Adapter) GetPendingWithdraw(ctx context.Context, hash codec.TransferHash) (chainadapter.PendingWithdrawInfo, error) {
	pw, err := a.Client.GetPendingWithdraw(ctx, [32]byte(hash))
	if err != nil {
		return chainadapter.PendingWithdrawInfo{}, err
	}
	return chainadapter.PendingWithdrawInfo{
		SrcChain:     codec.ChainId(pw.SrcChain),
		SrcAccount:   pw.SrcAccount,
		DestAccount:  pw.DestAccount,
		LocalToken:   codec.FromEVM(pw.LocalToken),
		Recipient:    codec.FromEVM(pw.Recipient),
		Amount:       pw.Amount,
		Nonce:        pw.Nonce,
		SrcDecimals:  pw.SrcDecimals,
		DestDecimals: pw.DestDecimals,
		OperatorGas:  pw.OperatorGas,
		SubmittedAt:  pw.SubmittedAt,
		ApprovedAt:   pw.ApprovedAt,
		Approved:     pw.Approved,
		Cancelled:    pw.Cancelled,
		Executed:     pw.Executed,
	}, nil
}

func (a *Adapter) WithdrawApprove(ctx context.Context, hash codec.TransferHash) (string, error) {
	h, err := a.Client.WithdrawApprove(ctx, [32]byte(hash))
	return txHashString(h, err)
}

func (a *Adapter) WithdrawCancel(ctx context.Context, hash codec.TransferHash) (string, error) {
	h, err := a.Client.WithdrawCancel(ctx, [32]byte(hash))
	return txHashString(h, err)
}

func (a *Adapter) WithdrawUncancel(ctx context.Context, hash codec.TransferHash) (string, error) {
	h, err := a.Client.WithdrawUncancel(ctx, [32]byte(hash))
	return txHashString(h, err)
}

func (a *Adapter) WithdrawExecute(ctx context.Context, hash codec.TransferHash, mintBurn bool) (string, error) {
	h, err := a.Client.WithdrawExecute(ctx, [32]byte(hash), mintBurn)
	return txHashString(h, err)
}

func txHashString(h common.Hash, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return h.Hex(), nil
}
