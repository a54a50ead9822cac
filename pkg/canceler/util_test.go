package canceler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

func TestParseUniversalAddressRoundTrip(t *testing.T) {
	var addr codec.UniversalAddress
	addr[12] = 0xab
	addr[31] = 0xcd

	parsed, err := parseUniversalAddress(addrHex(addr))
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
}

func TestParseUniversalAddressRejectsWrongLength(t *testing.T) {
	_, err := parseUniversalAddress("0xabcd")
	assert.Error(t, err)
}

func TestParseUniversalAddressRejectsInvalidHex(t *testing.T) {
	_, err := parseUniversalAddress("0xzz")
	assert.Error(t, err)
}

func TestParseTransferHashRoundTrip(t *testing.T) {
	var h codec.TransferHash
	h[0] = 0x01
	h[31] = 0xff

	parsed, err := parseTransferHash(hashHex(h))
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestParseTransferHashRejectsInvalidHex(t *testing.T) {
	_, err := parseTransferHash("0xnotHex")
	assert.Error(t, err)
}
