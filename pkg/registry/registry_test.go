package registry

import (
	"testing"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
	"github.com/ethereum/go-ethereum/common"
)

var (
	testAdmin    = codec.UniversalAddress{31: 0x01}
	testOperator = codec.UniversalAddress{31: 0x02}
	testIntruder = codec.UniversalAddress{31: 0x03}
)

// testRoles builds a role registry seeded with testAdmin and
// testOperator, the minimal privileged set the registry mutators need.
func testRoles(t *testing.T) *RoleRegistry {
	t.Helper()
	roles := NewRoleRegistry(testAdmin)
	if err := roles.GrantOperator(testAdmin, testOperator); err != nil {
		t.Fatalf("GrantOperator: %v", err)
	}
	return roles
}

func TestChainRegistryRegisterAssignsSequentialIDs(t *testing.T) {
	r := NewChainRegistry(0, testRoles(t))

	id1, err := r.RegisterChain(testOperator, "evm-sepolia")
	if err != nil {
		t.Fatalf("RegisterChain: %v", err)
	}
	id2, err := r.RegisterChain(testOperator, "cosmos-terra")
	if err != nil {
		t.Fatalf("RegisterChain: %v", err)
	}
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected sequential ids 1,2 got %d,%d", id1, id2)
	}
	if !r.IsRegisteredChain(id1) || !r.IsRegisteredChain(id2) {
		t.Fatalf("expected both chains enabled")
	}
}

func TestChainRegistryRejectsDuplicateIdentifier(t *testing.T) {
	r := NewChainRegistry(0, testRoles(t))
	if _, err := r.RegisterChain(testOperator, "evm-sepolia"); err != nil {
		t.Fatalf("RegisterChain: %v", err)
	}
	_, err := r.RegisterChain(testOperator, "evm-sepolia")
	if !bridgeerr.IsKind(err, bridgeerr.KindAlreadyRegistered) {
		t.Fatalf("expected AlreadyRegistered, got %v", err)
	}
}

func TestChainRegistryMutatorsAreOperatorOnly(t *testing.T) {
	r := NewChainRegistry(0, testRoles(t))

	_, err := r.RegisterChain(testIntruder, "evm-sepolia")
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized RegisterChain by non-operator, got %v", err)
	}
	// An admin who is not also an operator cannot register chains either.
	_, err = r.RegisterChain(testAdmin, "evm-sepolia")
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized RegisterChain by admin-only caller, got %v", err)
	}

	id, err := r.RegisterChain(testOperator, "evm-sepolia")
	if err != nil {
		t.Fatalf("RegisterChain: %v", err)
	}
	err = r.UpdateChain(testIntruder, id, false)
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized UpdateChain by non-operator, got %v", err)
	}
	if !r.IsRegisteredChain(id) {
		t.Fatalf("unauthorized UpdateChain must not mutate the record")
	}
}

func TestChainRegistryUpdateChain(t *testing.T) {
	r := NewChainRegistry(0, testRoles(t))
	id, _ := r.RegisterChain(testOperator, "evm-sepolia")

	if err := r.UpdateChain(testOperator, id, false); err != nil {
		t.Fatalf("UpdateChain: %v", err)
	}
	if r.IsRegisteredChain(id) {
		t.Fatalf("expected chain disabled")
	}

	rec, err := r.Chain(id)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	if rec.Identifier != "evm-sepolia" {
		t.Fatalf("historical record lost on disable: %+v", rec)
	}
}

func TestChainRegistryUpdateUnknownChain(t *testing.T) {
	r := NewChainRegistry(0, testRoles(t))
	err := r.UpdateChain(testOperator, 99, true)
	if !bridgeerr.IsKind(err, bridgeerr.KindChainNotRegistered) {
		t.Fatalf("expected ChainNotRegistered, got %v", err)
	}
}

func TestTokenRegistryRegisterIsIdempotentOnExactMatch(t *testing.T) {
	r := NewTokenRegistry(testRoles(t))
	tok := codec.UniversalAddress{1}

	if err := r.RegisterToken(testAdmin, tok, MintBurn, 18); err != nil {
		t.Fatalf("RegisterToken: %v", err)
	}
	if err := r.RegisterToken(testAdmin, tok, MintBurn, 18); err != nil {
		t.Fatalf("expected idempotent re-registration to succeed, got %v", err)
	}

	err := r.RegisterToken(testAdmin, tok, LockUnlock, 18)
	if !bridgeerr.IsKind(err, bridgeerr.KindAlreadyRegistered) {
		t.Fatalf("expected AlreadyRegistered on mismatched re-registration, got %v", err)
	}
}

func TestTokenRegistryMutatorsAreAdminOnly(t *testing.T) {
	r := NewTokenRegistry(testRoles(t))
	tok := codec.UniversalAddress{1}
	destTok := codec.UniversalAddress{2}

	err := r.RegisterToken(testIntruder, tok, MintBurn, 18)
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized RegisterToken by non-admin, got %v", err)
	}
	// An operator who is not also an admin cannot configure tokens.
	err = r.RegisterToken(testOperator, tok, MintBurn, 18)
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized RegisterToken by operator-only caller, got %v", err)
	}
	if _, err := r.Token(tok); !bridgeerr.IsKind(err, bridgeerr.KindTokenNotMapped) {
		t.Fatalf("unauthorized RegisterToken must not create a record, got %v", err)
	}

	if err := r.RegisterToken(testAdmin, tok, MintBurn, 18); err != nil {
		t.Fatalf("RegisterToken: %v", err)
	}
	err = r.SetTokenDestinationWithDecimals(testIntruder, tok, 2, destTok, 6)
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized SetTokenDestinationWithDecimals by non-admin, got %v", err)
	}
	err = r.SetIncomingTokenMapping(testIntruder, 1, tok, 18)
	if !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized SetIncomingTokenMapping by non-admin, got %v", err)
	}
}

func TestTokenRegistryRequiresBothDirectionsConfigured(t *testing.T) {
	r := NewTokenRegistry(testRoles(t))
	tok := codec.UniversalAddress{1}
	destTok := codec.UniversalAddress{2}

	if err := r.RegisterToken(testAdmin, tok, MintBurn, 18); err != nil {
		t.Fatalf("RegisterToken: %v", err)
	}

	_, err := r.Destination(tok, 2)
	if !bridgeerr.IsKind(err, bridgeerr.KindTokenNotMapped) {
		t.Fatalf("expected TokenNotMapped before SetTokenDestinationWithDecimals, got %v", err)
	}

	if err := r.SetTokenDestinationWithDecimals(testAdmin, tok, 2, destTok, 6); err != nil {
		t.Fatalf("SetTokenDestinationWithDecimals: %v", err)
	}

	dest, err := r.Destination(tok, 2)
	if err != nil {
		t.Fatalf("Destination: %v", err)
	}
	if dest.DestToken != destTok || dest.DestDecimals != 6 {
		t.Fatalf("unexpected destination mapping: %+v", dest)
	}

	_, err = r.Source(tok, 1)
	if !bridgeerr.IsKind(err, bridgeerr.KindTokenNotMapped) {
		t.Fatalf("expected TokenNotMapped before SetIncomingTokenMapping, got %v", err)
	}
	if err := r.SetIncomingTokenMapping(testAdmin, 1, tok, 18); err != nil {
		t.Fatalf("SetIncomingTokenMapping: %v", err)
	}
	src, err := r.Source(tok, 1)
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if src.SrcDecimals != 18 {
		t.Fatalf("unexpected source mapping: %+v", src)
	}
}

func TestTokenRegistryRejectsDecimalDeltaBeyondMax(t *testing.T) {
	r := NewTokenRegistry(testRoles(t))
	tok := codec.UniversalAddress{1}
	destTok := codec.UniversalAddress{2}

	if err := r.RegisterToken(testAdmin, tok, MintBurn, 18); err != nil {
		t.Fatalf("RegisterToken: %v", err)
	}

	err := r.SetTokenDestinationWithDecimals(testAdmin, tok, 2, destTok, 37)
	if !bridgeerr.IsKind(err, bridgeerr.KindInvalidAmount) {
		t.Fatalf("expected InvalidAmount for a decimal delta beyond MaxDecimalDelta, got %v", err)
	}

	err = r.SetIncomingTokenMapping(testAdmin, 1, tok, 37)
	if !bridgeerr.IsKind(err, bridgeerr.KindInvalidAmount) {
		t.Fatalf("expected InvalidAmount for a decimal delta beyond MaxDecimalDelta, got %v", err)
	}
}

func TestRoleRegistryGrantRevoke(t *testing.T) {
	r := NewRoleRegistry(testAdmin)
	alice := codec.FromEVM(common.HexToAddress("0xAbCdEf0123456789AbCdEf0123456789aBcDeF01"))

	if r.IsOperator(alice) {
		t.Fatalf("expected alice to not be an operator initially")
	}
	if err := r.GrantOperator(testAdmin, alice); err != nil {
		t.Fatalf("GrantOperator: %v", err)
	}
	if !r.IsOperator(alice) {
		t.Fatalf("expected alice to be an operator after grant")
	}
	if err := r.RevokeOperator(testAdmin, alice); err != nil {
		t.Fatalf("RevokeOperator: %v", err)
	}
	if r.IsOperator(alice) {
		t.Fatalf("expected alice to not be an operator after revoke")
	}

	if err := r.GrantCanceler(testAdmin, alice); err != nil {
		t.Fatalf("GrantCanceler: %v", err)
	}
	if !r.IsCanceler(alice) {
		t.Fatalf("expected alice to be a canceler after grant")
	}
}

func TestRoleRegistryMutationIsAdminOnly(t *testing.T) {
	r := NewRoleRegistry(testAdmin)
	alice := codec.UniversalAddress{31: 0x42}

	if err := r.GrantOperator(testIntruder, alice); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized GrantOperator by non-admin, got %v", err)
	}
	if err := r.GrantCanceler(testIntruder, alice); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized GrantCanceler by non-admin, got %v", err)
	}
	if err := r.GrantAdmin(testIntruder, testIntruder); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized self-serve GrantAdmin, got %v", err)
	}
	if r.IsOperator(alice) || r.IsCanceler(alice) || r.IsAdmin(testIntruder) {
		t.Fatalf("unauthorized grants must not mutate any role set")
	}

	// A granted operator still cannot mutate roles; only admins can.
	if err := r.GrantOperator(testAdmin, alice); err != nil {
		t.Fatalf("GrantOperator: %v", err)
	}
	if err := r.RevokeOperator(alice, alice); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized RevokeOperator by operator, got %v", err)
	}
}

func TestRoleRegistryAdminGrantAndRevoke(t *testing.T) {
	r := NewRoleRegistry(testAdmin)
	second := codec.UniversalAddress{31: 0x55}

	if err := r.GrantAdmin(testAdmin, second); err != nil {
		t.Fatalf("GrantAdmin: %v", err)
	}
	if !r.IsAdmin(second) {
		t.Fatalf("expected second admin after grant")
	}

	// The new admin's grants carry the same authority.
	alice := codec.UniversalAddress{31: 0x66}
	if err := r.GrantCanceler(second, alice); err != nil {
		t.Fatalf("GrantCanceler by second admin: %v", err)
	}

	if err := r.RevokeAdmin(testAdmin, second); err != nil {
		t.Fatalf("RevokeAdmin: %v", err)
	}
	if r.IsAdmin(second) {
		t.Fatalf("expected second admin revoked")
	}
	if err := r.GrantOperator(second, alice); !bridgeerr.IsKind(err, bridgeerr.KindUnauthorized) {
		t.Fatalf("expected Unauthorized grant from revoked admin, got %v", err)
	}
}
