// Package codec implements the chain-independent canonical encoding
// primitives shared by every bridge port: chain identifiers, universal
// addresses, and the transfer-hash content identifier.
package codec

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// ChainId is the bridge's own 4-byte chain identifier. It is never the
// foreign chain's native chain ID (e.g. an EVM chain ID or a Cosmos
// chain-id string); it is assigned sequentially by the chain registry.
type ChainId uint32

// Bytes returns the big-endian 4-byte representation.
func (c ChainId) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(c))
	return b
}

// padChainID32 lays a 4-byte chain ID left-aligned in a 32-byte word:
// bytes 0..3 hold the ID, bytes 4..31 are zero. This is distinct from
// pad32BE, which right-aligns. Mixing the two is the documented
// bug-class the transfer hash must avoid.
func padChainID32(c ChainId) [32]byte {
	var out [32]byte
	b := c.Bytes()
	copy(out[0:4], b[:])
	return out
}

// IdentifierHash returns keccak256(identifier_utf8), used by the chain
// registry as the reverse-lookup key for RegisterChain.
func IdentifierHash(identifier string) [32]byte {
	return [32]byte(crypto.Keccak256Hash([]byte(identifier)))
}
