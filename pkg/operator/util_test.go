package operator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

func TestParseUniversalAddressRoundTrip(t *testing.T) {
	var addr codec.UniversalAddress
	addr[12] = 0x11
	addr[31] = 0x22

	parsed, err := parseUniversalAddress(addrHex(addr))
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
}

func TestParseUniversalAddressRejectsWrongLength(t *testing.T) {
	_, err := parseUniversalAddress("0x1234")
	assert.Error(t, err)
}

func TestHashHexEncodesBigEndianBytes(t *testing.T) {
	var h codec.TransferHash
	h[0] = 0xde
	h[31] = 0xad
	want := "0x" + "de" + strings.Repeat("00", 30) + "ad"
	assert.Equal(t, want, hashHex(h))
}
