package bridgecore

import (
	"sync"
	"time"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/chainsafe/watchtower-bridge/pkg/registry"
)

// Bridge is the reference, chain-agnostic transfer state machine: one
// instance models a single chain's bridge contract. A concrete chain
// adapter (EVM, Cosmos-like) wires its own persistence/event-emission
// around the same transitions this type implements, so the two never
// drift.
type Bridge struct {
	mu sync.Mutex

	selfChain codec.ChainId
	chains    *registry.ChainRegistry
	tokens    *registry.TokenRegistry
	roles     *registry.RoleRegistry
	feeConfig *FeeConfig
	vault     TokenVault

	// now is overridable so tests can control cancel-window timing
	// deterministically instead of sleeping 300s.
	now func() uint64

	depositNonce uint64
	deposits     map[codec.TransferHash]DepositRecord
	pending      map[codec.TransferHash]*PendingWithdraw

	events []Event
}

// Event is a lightweight, in-memory record of a state-machine
// transition (Deposit, WithdrawSubmit, WithdrawApprove,
// WithdrawCancel, WithdrawUncancel, WithdrawExecute). It exists so
// tests and the operator's reconciliation path can observe what a
// Bridge did without a real event log; a chain adapter emits its own
// on-chain logs independently and does not depend on this slice.
type Event struct {
	Name   string
	Fields map[string]any
}

func (b *Bridge) emit(name string, fields map[string]any) {
	b.events = append(b.events, Event{Name: name, Fields: fields})
}

// Events returns every event recorded so far, in emission order.
func (b *Bridge) Events() []Event {
	return append([]Event(nil), b.events...)
}

// NewBridge wires a Bridge instance. feeConfig.CustomBps must be
// non-nil (use NewFeeConfig or construct it directly).
func NewBridge(selfChain codec.ChainId, chains *registry.ChainRegistry, tokens *registry.TokenRegistry, roles *registry.RoleRegistry, feeConfig *FeeConfig, vault TokenVault) *Bridge {
	return &Bridge{
		selfChain: selfChain,
		chains:    chains,
		tokens:    tokens,
		roles:     roles,
		feeConfig: feeConfig,
		vault:     vault,
		now:       func() uint64 { return uint64(time.Now().Unix()) },
		deposits:  make(map[codec.TransferHash]DepositRecord),
		pending:   make(map[codec.TransferHash]*PendingWithdraw),
	}
}

// NewFeeConfig constructs a FeeConfig with an initialized CustomBps
// map, so callers don't have to remember the nil-map gotcha.
func NewFeeConfig(standardBps, discountedBps uint32, feeRecipient codec.UniversalAddress) *FeeConfig {
	return &FeeConfig{
		StandardBps:   standardBps,
		DiscountedBps: discountedBps,
		FeeRecipient:  feeRecipient,
		CustomBps:     make(map[codec.UniversalAddress]uint32),
	}
}

// SetClock overrides the bridge's time source; used only by tests.
func (b *Bridge) SetClock(now func() uint64) {
	b.now = now
}

// GetDeposit returns the DepositRecord stored under hash, or a
// zero-value record (IsZero()==true) if none exists -- this is the
// canceler's primary cross-chain verification query.
func (b *Bridge) GetDeposit(hash codec.TransferHash) DepositRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deposits[hash]
}

// GetPendingWithdraw returns the PendingWithdraw stored under hash,
// or a zero-value record if none exists.
func (b *Bridge) GetPendingWithdraw(hash codec.TransferHash) PendingWithdraw {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.pending[hash]; ok {
		return *p
	}
	return PendingWithdraw{}
}

// IsRegisteredChain proxies to the chain registry.
func (b *Bridge) IsRegisteredChain(id codec.ChainId) bool {
	return b.chains.IsRegisteredChain(id)
}

// IsOperator proxies to the role registry.
func (b *Bridge) IsOperator(addr codec.UniversalAddress) bool {
	return b.roles.IsOperator(addr)
}

// IsCanceler proxies to the role registry.
func (b *Bridge) IsCanceler(addr codec.UniversalAddress) bool {
	return b.roles.IsCanceler(addr)
}
