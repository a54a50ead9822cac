package registry

import (
	"sync"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// RoleRegistry holds the admin, operator, and canceler
// address sets every privileged transition reads. Admins mutate the
// role sets (and the admin-only token-registry configuration);
// operators and cancelers drive the withdraw state machine.
// Addresses are kept as UniversalAddress so a single registry serves
// both an EVM and a Cosmos-like bridge instance without a chain-native
// address type leaking into the state machine.
type RoleRegistry struct {
	mu        sync.RWMutex
	admins    map[codec.UniversalAddress]bool
	operators map[codec.UniversalAddress]bool
	cancelers map[codec.UniversalAddress]bool
}

// NewRoleRegistry creates a role registry seeded with a single admin,
// set once at initialization the same way the registry's self chain ID
// is. Every further role mutation must come from an admin.
func NewRoleRegistry(initialAdmin codec.UniversalAddress) *RoleRegistry {
	r := &RoleRegistry{
		admins:    make(map[codec.UniversalAddress]bool),
		operators: make(map[codec.UniversalAddress]bool),
		cancelers: make(map[codec.UniversalAddress]bool),
	}
	r.admins[initialAdmin] = true
	return r
}

// requireAdmin is the shared gate in front of every role mutation.
// Callers must not hold r.mu.
func (r *RoleRegistry) requireAdmin(caller codec.UniversalAddress) error {
	if !r.IsAdmin(caller) {
		return bridgeerr.Unauthorized("caller is not an admin")
	}
	return nil
}

// GrantAdmin adds addr to the admin set.
func (r *RoleRegistry) GrantAdmin(admin, addr codec.UniversalAddress) error {
	if err := r.requireAdmin(admin); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[addr] = true
	return nil
}

// RevokeAdmin removes addr from the admin set.
func (r *RoleRegistry) RevokeAdmin(admin, addr codec.UniversalAddress) error {
	if err := r.requireAdmin(admin); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, addr)
	return nil
}

// IsAdmin reports whether addr currently holds the admin role.
func (r *RoleRegistry) IsAdmin(addr codec.UniversalAddress) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.admins[addr]
}

// GrantOperator adds addr to the operator set.
func (r *RoleRegistry) GrantOperator(admin, addr codec.UniversalAddress) error {
	if err := r.requireAdmin(admin); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operators[addr] = true
	return nil
}

// RevokeOperator removes addr from the operator set.
func (r *RoleRegistry) RevokeOperator(admin, addr codec.UniversalAddress) error {
	if err := r.requireAdmin(admin); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.operators, addr)
	return nil
}

// IsOperator reports whether addr currently holds the operator role.
func (r *RoleRegistry) IsOperator(addr codec.UniversalAddress) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.operators[addr]
}

// GrantCanceler adds addr to the canceler set.
func (r *RoleRegistry) GrantCanceler(admin, addr codec.UniversalAddress) error {
	if err := r.requireAdmin(admin); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelers[addr] = true
	return nil
}

// RevokeCanceler removes addr from the canceler set.
func (r *RoleRegistry) RevokeCanceler(admin, addr codec.UniversalAddress) error {
	if err := r.requireAdmin(admin); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cancelers, addr)
	return nil
}

// IsCanceler reports whether addr currently holds the canceler role.
func (r *RoleRegistry) IsCanceler(addr codec.UniversalAddress) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cancelers[addr]
}
