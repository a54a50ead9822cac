package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// TransferHash is the load-bearing cross-chain content identifier:
// the same 32-byte value regardless of whether it is computed as a
// deposit hash on the source chain or a withdraw hash on the
// destination chain for the same logical transfer.
type TransferHash [32]byte

func (h TransferHash) Bytes() []byte { return h[:] }

// pad32BE right-aligns x's big-endian bytes in a 32-byte word. This is
// the encoder for amount and nonce; it must NOT be used for chain IDs,
// which are left-aligned (see padChainID32) -- conflating the two is
// a known cross-port bug class.
func pad32BE(x *big.Int) [32]byte {
	var out [32]byte
	if x == nil {
		return out
	}
	b := x.Bytes()
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(out[32-len(b):], b)
	return out
}

// TransferHashInput is the seven-field tuple the transfer hash is a
// deterministic function of. Token must already be the
// *destination*-chain token, encoded as a UniversalAddress -- the
// source-chain bridge resolves it via TokenConfig.dest_map before
// calling this.
type TransferHashInput struct {
	SrcChain    ChainId
	DestChain   ChainId
	SrcAccount  UniversalAddress
	DestAccount UniversalAddress
	Token       UniversalAddress
	Amount      *big.Int // post-fee net amount, in source-chain decimals
	Nonce       *big.Int
}

// ComputeTransferHash assembles the 224-byte canonical buffer and
// returns its keccak256.
func ComputeTransferHash(in TransferHashInput) TransferHash {
	buf := make([]byte, 0, 224)
	srcChain := padChainID32(in.SrcChain)
	destChain := padChainID32(in.DestChain)
	amount := pad32BE(in.Amount)
	nonce := pad32BE(in.Nonce)

	buf = append(buf, srcChain[:]...)
	buf = append(buf, destChain[:]...)
	buf = append(buf, in.SrcAccount[:]...)
	buf = append(buf, in.DestAccount[:]...)
	buf = append(buf, in.Token[:]...)
	buf = append(buf, amount[:]...)
	buf = append(buf, nonce[:]...)

	return TransferHash(crypto.Keccak256Hash(buf))
}
