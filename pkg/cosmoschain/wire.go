package cosmoschain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
)

// methodFullName builds the fully-qualified gRPC method path for a
// bridge module RPC. The service itself is addressed by name rather
// than a generated descriptor (see package doc).
func methodFullName(rpc string) string {
	return "/watchtower.bridge.v1.BridgeQuery/" + rpc
}

func txMethodFullName(rpc string) string {
	return "/watchtower.bridge.v1.BridgeTx/" + rpc
}

// query invokes a read-only bridge RPC, marshaling fields into a
// structpb.Struct request and returning the decoded response fields.
// structpb.Struct implements proto.Message, so grpc's default codec
// carries it without a compiled service stub.
func (c *Client) query(ctx context.Context, rpc string, fields map[string]any) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, methodFullName(rpc), req, resp); err != nil {
		return nil, wrapRPCError(rpc, err)
	}
	return resp, nil
}

// broadcastTx invokes a write-path bridge RPC over the transaction
// service, signed with the client's signer key. Every broadcast
// carries a fresh command_id so the Tx service can deduplicate a
// redelivered request without re-running the transition.
func (c *Client) broadcastTx(ctx context.Context, rpc string, fields map[string]any) (*structpb.Struct, error) {
	fields["command_id"] = uuid.NewString()
	signed, err := c.signRequest(fields)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}
	req, err := structpb.NewStruct(signed)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	resp := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, txMethodFullName(rpc), req, resp); err != nil {
		return nil, wrapRPCError(rpc, err)
	}
	return resp, nil
}

// wrapRPCError tags retriable gRPC failures (connection drops, node
// restarts, height-not-yet-available reads) as transient so the
// operator's retry policy backs off instead of giving up on them.
func wrapRPCError(rpc string, err error) error {
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
			return bridgeerr.Transient(rpc, err)
		case codes.NotFound:
			// "could not find results for height N" from a node that has
			// not caught up yet. A missing deposit is not an error at
			// all -- the module answers those with a zero record.
			if strings.Contains(s.Message(), "height") {
				return bridgeerr.Transient(rpc, err)
			}
		}
	}
	return fmt.Errorf("%s: %w", rpc, err)
}

func fieldString(s *structpb.Struct, key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.Fields[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func fieldBool(s *structpb.Struct, key string) bool {
	if s == nil {
		return false
	}
	if v, ok := s.Fields[key]; ok {
		return v.GetBoolValue()
	}
	return false
}

func fieldUint64(s *structpb.Struct, key string) uint64 {
	if s == nil {
		return 0
	}
	if v, ok := s.Fields[key]; ok {
		return uint64(v.GetNumberValue())
	}
	return 0
}
