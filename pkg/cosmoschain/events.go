package cosmoschain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// grpcStreamDesc describes every bridge stream RPC used by this
// package: a client-initiated, server-streaming call over a single
// dynamically-addressed method, mirroring how a hand-rolled gRPC
// client invokes an RPC it has no generated descriptor for.
var grpcStreamDesc = grpc.StreamDesc{
	StreamName:    "BridgeStream",
	ServerStreams: true,
}

// WatchDepositEvents streams Deposit events from fromBlock onward,
// reconnecting with exponential backoff the same way
// cantonsdk/bridge.Client.StreamWithdrawalEvents does -- a stream
// break is not a fatal error, only a cue to resume from the last
// height this loop successfully delivered.
func (c *Client) WatchDepositEvents(ctx context.Context, fromBlock uint64, handler func(*chainadapter.DepositEvent) error) error {
	return c.watchStream(ctx, "StreamDepositEvents", fromBlock, func(msg *structpb.Struct) error {
		destAccount, err := parseAddr(fieldString(msg, "dest_account"))
		if err != nil {
			return err
		}
		srcAccount, err := parseAddr(fieldString(msg, "src_account"))
		if err != nil {
			return err
		}
		token, err := parseAddr(fieldString(msg, "token"))
		if err != nil {
			return err
		}
		return handler(&chainadapter.DepositEvent{
			DestChain:   codec.ChainId(fieldUint64(msg, "dest_chain")),
			DestAccount: destAccount,
			SrcAccount:  srcAccount,
			Token:       token,
			Amount:      parseBig(fieldString(msg, "amount")),
			Nonce:       fieldUint64(msg, "nonce"),
			Fee:         parseBig(fieldString(msg, "fee")),
			BlockNumber: fieldUint64(msg, "height"),
			TxHash:      fieldString(msg, "tx_hash"),
			LogIndex:    uint32(fieldUint64(msg, "log_index")),
		})
	})
}

// WatchWithdrawSubmitEvents streams WithdrawSubmit events.
func (c *Client) WatchWithdrawSubmitEvents(ctx context.Context, fromBlock uint64, handler func(*chainadapter.WithdrawSubmitEvent) error) error {
	return c.watchStream(ctx, "StreamWithdrawSubmitEvents", fromBlock, func(msg *structpb.Struct) error {
		hash, err := parseHash(fieldString(msg, "withdraw_hash"))
		if err != nil {
			return err
		}
		token, err := parseAddr(fieldString(msg, "token"))
		if err != nil {
			return err
		}
		return handler(&chainadapter.WithdrawSubmitEvent{
			WithdrawHash: hash,
			SrcChain:     codec.ChainId(fieldUint64(msg, "src_chain")),
			Token:        token,
			Amount:       parseBig(fieldString(msg, "amount")),
			Nonce:        fieldUint64(msg, "nonce"),
			OperatorGas:  parseBig(fieldString(msg, "operator_gas")),
			BlockNumber:  fieldUint64(msg, "height"),
			TxHash:       fieldString(msg, "tx_hash"),
			LogIndex:     uint32(fieldUint64(msg, "log_index")),
		})
	})
}

// WatchWithdrawApproveEvents streams WithdrawApprove events, which is
// what the canceler watches on a Cosmos-like destination chain.
func (c *Client) WatchWithdrawApproveEvents(ctx context.Context, fromBlock uint64, handler func(*chainadapter.WithdrawApproveEvent) error) error {
	return c.watchStream(ctx, "StreamWithdrawApproveEvents", fromBlock, func(msg *structpb.Struct) error {
		hash, err := parseHash(fieldString(msg, "withdraw_hash"))
		if err != nil {
			return err
		}
		return handler(&chainadapter.WithdrawApproveEvent{
			WithdrawHash: hash,
			BlockNumber:  fieldUint64(msg, "height"),
			TxHash:       fieldString(msg, "tx_hash"),
			LogIndex:     uint32(fieldUint64(msg, "log_index")),
		})
	})
}

// watchStream opens rpc as a server-streaming RPC starting at
// fromBlock and redelivers every message to onMsg until ctx is
// canceled, reconnecting on any transient stream error with the same
// capped exponential backoff as the EVM adapter's watcher restart
// loop. Transient provider errors are retried, never fatal.
func (c *Client) watchStream(ctx context.Context, rpc string, fromBlock uint64, onMsg func(*structpb.Struct) error) error {
	current := fromBlock
	c.setLastScannedBlock(current)
	delay := streamReconnectDelay

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := c.streamOnce(ctx, rpc, current, func(msg *structpb.Struct) error {
			if err := onMsg(msg); err != nil {
				return err
			}
			if h := fieldUint64(msg, "height"); h > current {
				current = h
				c.setLastScannedBlock(current)
			}
			return nil
		})
		if err == nil || errors.Is(err, io.EOF) || ctx.Err() != nil {
			return err
		}

		c.logger.Warn("cosmoschain: stream reconnecting", zap.String("rpc", rpc), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay = min(delay*2, streamMaxReconnectDelay)
	}
}

func (c *Client) streamOnce(ctx context.Context, rpc string, fromBlock uint64, onMsg func(*structpb.Struct) error) error {
	req, err := structpb.NewStruct(map[string]any{
		"bridge_address": c.bridgeAddress,
		"from_height":    float64(fromBlock),
	})
	if err != nil {
		return fmt.Errorf("encode stream request: %w", err)
	}

	stream, err := c.conn.NewStream(ctx, &grpcStreamDesc, methodFullName(rpc))
	if err != nil {
		return fmt.Errorf("open %s stream: %w", rpc, err)
	}
	if err := stream.SendMsg(req); err != nil {
		return fmt.Errorf("send %s request: %w", rpc, err)
	}
	if err := stream.CloseSend(); err != nil {
		return fmt.Errorf("close %s send: %w", rpc, err)
	}

	for {
		msg := &structpb.Struct{}
		if err := stream.RecvMsg(msg); err != nil {
			return err
		}
		if err := onMsg(msg); err != nil {
			return err
		}
	}
}
