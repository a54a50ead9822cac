package registry

import (
	"fmt"
	"sync"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// decimalDelta returns |a - b| as an int, avoiding uint8 underflow.
func decimalDelta(a, b uint8) int {
	if a >= b {
		return int(a - b)
	}
	return int(b - a)
}

// TokenRegistry holds local token records plus
// their per-destination and per-source decimal/address mappings.
// Mutation is admin-only, checked against the same RoleRegistry the
// withdraw state machine reads.
type TokenRegistry struct {
	mu     sync.RWMutex
	roles  *RoleRegistry
	tokens map[codec.UniversalAddress]*TokenRecord
}

// NewTokenRegistry creates an empty token registry whose mutating
// operations are gated on roles.
func NewTokenRegistry(roles *RoleRegistry) *TokenRegistry {
	return &TokenRegistry{roles: roles, tokens: make(map[codec.UniversalAddress]*TokenRecord)}
}

// RegisterToken registers localToken with its handling discipline and
// local decimals. Admin-only. Idempotent on an exact match of
// (type, decimals); fails with AlreadyRegistered otherwise.
func (r *TokenRegistry) RegisterToken(admin, localToken codec.UniversalAddress, tokenType TokenType, localDecimals uint8) error {
	if !r.roles.IsAdmin(admin) {
		return bridgeerr.Unauthorized("caller is not an admin")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.tokens[localToken]; ok {
		if existing.TokenType == tokenType && existing.LocalDecimals == localDecimals {
			return nil
		}
		return bridgeerr.AlreadyRegistered(fmt.Sprintf("token %x already registered with different parameters", localToken))
	}

	r.tokens[localToken] = &TokenRecord{
		LocalToken:    localToken,
		TokenType:     tokenType,
		LocalDecimals: localDecimals,
		DestMap:       make(map[codec.ChainId]DestMapping),
		SrcMap:        make(map[codec.ChainId]SrcMapping),
	}
	return nil
}

// SetTokenDestinationWithDecimals configures the outgoing half of
// localToken's cross-chain mapping for destChain. Admin-only. Rejects
// a destDecimals more than codec.MaxDecimalDelta away from the token's
// registered local decimals, where truncation loss gets economically
// significant.
func (r *TokenRegistry) SetTokenDestinationWithDecimals(admin, localToken codec.UniversalAddress, destChain codec.ChainId, destToken codec.UniversalAddress, destDecimals uint8) error {
	if !r.roles.IsAdmin(admin) {
		return bridgeerr.Unauthorized("caller is not an admin")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tokens[localToken]
	if !ok {
		return bridgeerr.TokenNotMapped(fmt.Sprintf("token %x not registered", localToken))
	}
	if decimalDelta(rec.LocalDecimals, destDecimals) > codec.MaxDecimalDelta {
		return bridgeerr.InvalidAmount(fmt.Sprintf("token %x: decimal delta %d exceeds MaxDecimalDelta", localToken, decimalDelta(rec.LocalDecimals, destDecimals)))
	}
	rec.DestMap[destChain] = DestMapping{DestToken: destToken, DestDecimals: destDecimals}
	return nil
}

// SetIncomingTokenMapping configures the incoming half: the decimals
// srcChain uses for localToken. Admin-only. Rejects a srcDecimals more
// than codec.MaxDecimalDelta away from the token's registered local
// decimals.
func (r *TokenRegistry) SetIncomingTokenMapping(admin codec.UniversalAddress, srcChain codec.ChainId, localToken codec.UniversalAddress, srcDecimals uint8) error {
	if !r.roles.IsAdmin(admin) {
		return bridgeerr.Unauthorized("caller is not an admin")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tokens[localToken]
	if !ok {
		return bridgeerr.TokenNotMapped(fmt.Sprintf("token %x not registered", localToken))
	}
	if decimalDelta(rec.LocalDecimals, srcDecimals) > codec.MaxDecimalDelta {
		return bridgeerr.InvalidAmount(fmt.Sprintf("token %x: decimal delta %d exceeds MaxDecimalDelta", localToken, decimalDelta(rec.LocalDecimals, srcDecimals)))
	}
	rec.SrcMap[srcChain] = SrcMapping{SrcDecimals: srcDecimals}
	return nil
}

// Token returns the full record for localToken.
func (r *TokenRegistry) Token(localToken codec.UniversalAddress) (TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.tokens[localToken]
	if !ok {
		return TokenRecord{}, bridgeerr.TokenNotMapped(fmt.Sprintf("token %x not registered", localToken))
	}
	return *rec, nil
}

// Destination resolves localToken's outgoing mapping for destChain. A
// deposit attempted without this mapping fails TokenNotMapped.
func (r *TokenRegistry) Destination(localToken codec.UniversalAddress, destChain codec.ChainId) (DestMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.tokens[localToken]
	if !ok {
		return DestMapping{}, bridgeerr.TokenNotMapped(fmt.Sprintf("token %x not registered", localToken))
	}
	m, ok := rec.DestMap[destChain]
	if !ok {
		return DestMapping{}, bridgeerr.TokenNotMapped(fmt.Sprintf("token %x has no destination mapping for chain %d", localToken, destChain))
	}
	return m, nil
}

// Source resolves localToken's incoming mapping for srcChain. A
// withdrawSubmit attempted without this mapping fails TokenNotMapped
// identically to a missing destination mapping.
func (r *TokenRegistry) Source(localToken codec.UniversalAddress, srcChain codec.ChainId) (SrcMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.tokens[localToken]
	if !ok {
		return SrcMapping{}, bridgeerr.TokenNotMapped(fmt.Sprintf("token %x not registered", localToken))
	}
	m, ok := rec.SrcMap[srcChain]
	if !ok {
		return SrcMapping{}, bridgeerr.TokenNotMapped(fmt.Sprintf("token %x has no source mapping for chain %d", localToken, srcChain))
	}
	return m, nil
}
