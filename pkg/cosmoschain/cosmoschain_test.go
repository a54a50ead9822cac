package cosmoschain

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

func TestHashHexParseHashRoundTrip(t *testing.T) {
	var h codec.TransferHash
	for i := range h {
		h[i] = byte(i)
	}

	s := hashHex(h)
	if !strings.HasPrefix(s, "0x") {
		t.Fatalf("expected 0x prefix, got %s", s)
	}

	got, err := parseHash(s)
	if err != nil {
		t.Fatalf("parseHash: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: got %x want %x", got, h)
	}
}

func TestParseHashRejectsWrongLength(t *testing.T) {
	if _, err := parseHash("0xabcd"); err == nil {
		t.Fatal("expected error for short hash")
	}
}

func TestParseAddrRoundTrip(t *testing.T) {
	var u codec.UniversalAddress
	copy(u[12:], []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20})

	got, err := parseAddr("0x" + hex.EncodeToString(u[:]))
	if err != nil {
		t.Fatalf("parseAddr: %v", err)
	}
	if got != u {
		t.Fatalf("round trip mismatch: got %x want %x", got, u)
	}
}

func TestParseBigDefaultsToZeroOnGarbage(t *testing.T) {
	if got := parseBig("not-a-number"); got.Cmp(big.NewInt(0)) != 0 {
		t.Fatalf("expected 0, got %s", got.String())
	}
	if got := parseBig("12345"); got.Cmp(big.NewInt(12345)) != 0 {
		t.Fatalf("expected 12345, got %s", got.String())
	}
}

func TestCanonicalDigestIsOrderIndependent(t *testing.T) {
	a := map[string]any{"b": "2", "a": "1", "c": true}
	b := map[string]any{"c": true, "a": "1", "b": "2"}

	da := canonicalDigest(a)
	db := canonicalDigest(b)
	if da != db {
		t.Fatalf("expected identical digests regardless of map iteration order")
	}
}

func TestCanonicalDigestChangesWithValue(t *testing.T) {
	a := canonicalDigest(map[string]any{"a": "1"})
	b := canonicalDigest(map[string]any{"a": "2"})
	if a == b {
		t.Fatal("expected different digests for different values")
	}
}

func TestSignRequestProducesRecoverableSignature(t *testing.T) {
	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	addr, err := bech32AddressFromPubKey(privKey.PubKey().SerializeCompressed(), "terra")
	if err != nil {
		t.Fatalf("bech32AddressFromPubKey: %v", err)
	}

	c := &Client{privKey: privKey, signerAddr: addr}

	signed, err := c.signRequest(map[string]any{"bridge_address": "bridge1", "transfer_hash": "0xdead"})
	if err != nil {
		t.Fatalf("signRequest: %v", err)
	}
	if signed["signer"] != addr {
		t.Fatalf("expected signer field %q, got %v", addr, signed["signer"])
	}

	sigHex, ok := signed["signature"].(string)
	if !ok || sigHex == "" {
		t.Fatalf("expected non-empty signature field, got %v", signed["signature"])
	}

	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}

	// The digest covers every field except the signature itself.
	delete(signed, "signature")
	digest := canonicalDigest(signed)
	recoveredPub, _, err := ecdsa.RecoverCompact(sig, digest[:])
	if err != nil {
		t.Fatalf("RecoverCompact: %v", err)
	}
	if !bytes.Equal(recoveredPub.SerializeCompressed(), privKey.PubKey().SerializeCompressed()) {
		t.Fatal("recovered public key does not match signer's key")
	}
}

func TestBech32AddressFromPubKeyUsesHRP(t *testing.T) {
	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	addr, err := bech32AddressFromPubKey(privKey.PubKey().SerializeCompressed(), "cosmos")
	if err != nil {
		t.Fatalf("bech32AddressFromPubKey: %v", err)
	}
	if !strings.HasPrefix(addr, "cosmos1") {
		t.Fatalf("expected cosmos1 prefix, got %s", addr)
	}

	other, err := bech32AddressFromPubKey(privKey.PubKey().SerializeCompressed(), "terra")
	if err != nil {
		t.Fatalf("bech32AddressFromPubKey: %v", err)
	}
	if !strings.HasPrefix(other, "terra1") {
		t.Fatalf("expected terra1 prefix, got %s", other)
	}
}
