package codec

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// UniversalAddress is the 32-byte canonical form every account or
// token address is carried in inside a transfer hash.
type UniversalAddress [32]byte

// IsZero reports whether the address is the zero value.
func (a UniversalAddress) IsZero() bool {
	return a == UniversalAddress{}
}

func (a UniversalAddress) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, a[:])
	return out
}

// FromEVM projects a 20-byte EVM address into the canonical form:
// bytes 0..11 zero, bytes 12..31 the address.
func FromEVM(addr common.Address) UniversalAddress {
	var u UniversalAddress
	copy(u[12:32], addr.Bytes())
	return u
}

// ToEVM recovers the EVM address from a UniversalAddress. The caller
// is responsible for knowing the address names an EVM account (the
// UniversalAddress alone does not carry a type tag).
func ToEVM(u UniversalAddress) common.Address {
	var addr common.Address
	copy(addr[:], u[12:32])
	return addr
}

// FromCosmos bech32-decodes addr (any hrp) to its canonical 20-byte
// form and lays it out identically to FromEVM. It takes no hrp
// argument: decoding is hrp-agnostic and the decoded prefix is not
// checked.
func FromCosmos(addr string) (UniversalAddress, error) {
	_, data, err := bech32Decode(addr)
	if err != nil {
		return UniversalAddress{}, err
	}
	raw, err := convertBits(data, 5, 8, false)
	if err != nil {
		return UniversalAddress{}, err
	}
	var u UniversalAddress
	copy(u[12:32], raw)
	return u, nil
}

// ToCosmos bech32-encodes the 20-byte tail of u under hrp.
func ToCosmos(u UniversalAddress, hrp string) (string, error) {
	raw := u[12:32]
	data, err := convertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32Encode(hrp, data)
}

// FromDenom encodes a native denomination string (e.g. "uluna") as
// keccak256(denom_utf8), filling all 32 bytes -- unlike account
// addresses, which always occupy bytes 12..31.
func FromDenom(denom string) UniversalAddress {
	return UniversalAddress(crypto.Keccak256Hash([]byte(denom)))
}
