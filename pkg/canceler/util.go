package canceler

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

func parseUniversalAddress(s string) (codec.UniversalAddress, error) {
	var out codec.UniversalAddress
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("invalid address %q: want 32 bytes, got %d", s, len(b))
	}
	copy(out[:], b)
	return out, nil
}

func parseTransferHash(s string) (codec.TransferHash, error) {
	var out codec.TransferHash
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, fmt.Errorf("invalid transfer hash %q: %w", s, err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("invalid transfer hash %q: want 32 bytes, got %d", s, len(b))
	}
	copy(out[:], b)
	return out, nil
}

func addrHex(u codec.UniversalAddress) string {
	return "0x" + hex.EncodeToString(u[:])
}

func hashHex(h codec.TransferHash) string {
	return "0x" + hex.EncodeToString(h[:])
}
