package operator

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// parseUniversalAddress decodes a 0x-prefixed 32-byte hex string, the
// canonical address encoding used throughout configuration so the
// operator never needs chain-kind-aware address parsing.
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

func addrHex(u codec.UniversalAddress) string {
	return "0x" + hex.EncodeToString(u[:])
}

func hashHex(h codec.TransferHash) string {
	return "0x" + hex.EncodeToString(h[:])
}

// displayAmount scales a base-unit amount down by the token's decimals
// for metrics/log output; protocol math never goes through this path.
func displayAmount(amount *big.Int, decimals uint8) float64 {
	if amount == nil {
		return 0
	}
	f, _ := decimal.NewFromBigInt(amount, -int32(decimals)).Float64()
	return f
}
