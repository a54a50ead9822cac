// Package registry implements the chain registry, token registry, and
// role registry: the closed set of chain IDs, per-token
// cross-chain decimal/destination mappings, and the operator/canceler
// role sets every privileged state-machine transition reads.
package registry

import (
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// TokenType tags a registered local token with its handling
// discipline. There is no inheritance hierarchy; each bridge adapter
// switches on this tag to call the matching capability hook.
type TokenType int

const (
	// LockUnlock is for pre-existing native tokens: deposits lock into
	// a vault, withdrawals unlock from it.
	LockUnlock TokenType = iota
	// MintBurn is for bridge-issued wrapped tokens: deposits burn,
	// withdrawals mint.
	MintBurn
)

func (t TokenType) String() string {
	if t == MintBurn {
		return "MintBurn"
	}
	return "LockUnlock"
}

// ChainRecord is the forward mapping entry a chain registry stores per
// registered chain.
type ChainRecord struct {
	ID             codec.ChainId
	Identifier     string
	IdentifierHash [32]byte
	Enabled        bool
}

// DestMapping is the outgoing half of a token's cross-chain
// configuration: where and at what decimals the token is represented
// on a given destination chain.
type DestMapping struct {
	DestToken    codec.UniversalAddress
	DestDecimals uint8
}

// SrcMapping is the incoming half: the decimals a given source chain
// uses for this local token.
type SrcMapping struct {
	SrcDecimals uint8
}

// TokenRecord is a registered local token and its per-direction
// cross-chain mappings.
type TokenRecord struct {
	LocalToken    codec.UniversalAddress
	TokenType     TokenType
	LocalDecimals uint8
	DestMap       map[codec.ChainId]DestMapping
	SrcMap        map[codec.ChainId]SrcMapping
}
