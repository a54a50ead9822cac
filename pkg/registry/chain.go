package registry

import (
	"fmt"
	"sync"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// ChainRegistry is the chain registry: a closed, append-only set of
// bridge-internal 4-byte chain IDs. It is safe for concurrent use --
// the operator and canceler both read it from multiple goroutines.
// Mutation is operator-only, checked against the same RoleRegistry the
// withdraw state machine reads.
type ChainRegistry struct {
	mu sync.RWMutex

	selfID codec.ChainId
	roles  *RoleRegistry

	nextID codec.ChainId
	byID   map[codec.ChainId]*ChainRecord
	byHash map[[32]byte]codec.ChainId
}

// NewChainRegistry creates a registry for a bridge instance whose own
// chain ID is selfID, set once at initialization. roles gates the
// registry's mutating operations.
func NewChainRegistry(selfID codec.ChainId, roles *RoleRegistry) *ChainRegistry {
	return &ChainRegistry{
		selfID: selfID,
		roles:  roles,
		nextID: 1,
		byID:   make(map[codec.ChainId]*ChainRecord),
		byHash: make(map[[32]byte]codec.ChainId),
	}
}

// SelfID returns this bridge instance's own chain ID.
func (r *ChainRegistry) SelfID() codec.ChainId {
	return r.selfID
}

// RegisterChain assigns the next sequential ID to identifier and
// records both the forward (id -> record) and reverse (hash -> id)
// mappings. Operator-only. Fails with AlreadyRegistered if the
// identifier (by hash) is already known.
func (r *ChainRegistry) RegisterChain(operator codec.UniversalAddress, identifier string) (codec.ChainId, error) {
	if !r.roles.IsOperator(operator) {
		return 0, bridgeerr.Unauthorized("caller is not an operator")
	}

	hash := codec.IdentifierHash(identifier)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byHash[hash]; exists {
		return 0, bridgeerr.AlreadyRegistered("chain identifier already registered: " + identifier)
	}

	id := r.nextID
	r.nextID++

	r.byID[id] = &ChainRecord{
		ID:             id,
		Identifier:     identifier,
		IdentifierHash: hash,
		Enabled:        true,
	}
	r.byHash[hash] = id

	return id, nil
}

// UpdateChain toggles a chain's enablement without removing its
// historical record. Operator-only.
func (r *ChainRegistry) UpdateChain(operator codec.UniversalAddress, id codec.ChainId, enabled bool) error {
	if !r.roles.IsOperator(operator) {
		return bridgeerr.Unauthorized("caller is not an operator")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return bridgeerr.ChainNotRegistered(fmt.Sprintf("chain %d not registered", id))
	}
	rec.Enabled = enabled
	return nil
}

// IsRegisteredChain reports whether id has been registered and is
// currently enabled.
func (r *ChainRegistry) IsRegisteredChain(id codec.ChainId) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	return ok && rec.Enabled
}

// Chain returns the full record for id.
func (r *ChainRegistry) Chain(id codec.ChainId) (ChainRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return ChainRecord{}, bridgeerr.ChainNotRegistered(fmt.Sprintf("chain %d not registered", id))
	}
	return *rec, nil
}

// ChainByIdentifier resolves a chain by its human identifier string.
func (r *ChainRegistry) ChainByIdentifier(identifier string) (ChainRecord, error) {
	hash := codec.IdentifierHash(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byHash[hash]
	if !ok {
		return ChainRecord{}, bridgeerr.ChainNotRegistered("chain identifier not registered: " + identifier)
	}
	return *r.byID[id], nil
}
