package cosmoschain

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// signRequest signs a deterministic encoding of fields (sorted keys,
// "key=value" joined by "&") with the client's secp256k1 signer key
// and returns fields augmented with "signer" and "signature", the
// Cosmos-style transaction-authentication a bridge module's Tx
// service expects in place of an EVM transaction's implicit sender
// recovery.
func (c *Client) signRequest(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		out[k] = v
	}
	out["signer"] = c.signerAddr

	digest := canonicalDigest(out)
	sig := ecdsa.SignCompact(c.privKey, digest[:], false)
	out["signature"] = hex.EncodeToString(sig)
	return out, nil
}

func canonicalDigest(fields map[string]any) [32]byte {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(toCanonicalString(fields[k]))
		sb.WriteByte('&')
	}
	return sha256.Sum256([]byte(sb.String()))
}

func toCanonicalString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
