package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestFromEVMToEVMRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0xAbCdEf0123456789AbCdEf0123456789aBcDeF01")
	u := FromEVM(addr)
	for i := 0; i < 12; i++ {
		if u[i] != 0 {
			t.Fatalf("expected leading 12 bytes zero, got %x at %d", u[i], i)
		}
	}
	if got := ToEVM(u); got != addr {
		t.Fatalf("round trip mismatch: got %s want %s", got.Hex(), addr.Hex())
	}
}

func TestFromCosmosToCosmosRoundTrip(t *testing.T) {
	addr := common.HexToAddress("0x14fdD2A0EAD9f4F7d0186C5f9b3Ec8E1234567Ab")
	u := FromEVM(addr)

	encoded, err := ToCosmos(u, "terra")
	if err != nil {
		t.Fatalf("ToCosmos: %v", err)
	}

	decoded, err := FromCosmos(encoded)
	if err != nil {
		t.Fatalf("FromCosmos: %v", err)
	}
	if decoded != u {
		t.Fatalf("round trip mismatch: got %x want %x", decoded, u)
	}

	reEncoded, err := ToCosmos(decoded, "terra")
	if err != nil {
		t.Fatalf("ToCosmos (2nd): %v", err)
	}
	if reEncoded != encoded {
		t.Fatalf("encode->decode->encode mismatch: %s vs %s", reEncoded, encoded)
	}
}

func TestFromDenomFillsAllBytes(t *testing.T) {
	u := FromDenom("uluna")
	allZero := true
	for _, b := range u {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("expected keccak256(denom) to fill all 32 bytes")
	}
}

func TestNormalizeUpshift(t *testing.T) {
	amount := new(big.Int).Exp(big.NewInt(10), big.NewInt(6), nil)
	got := Normalize(amount, 6, 18)
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestNormalizeDownshiftTruncates(t *testing.T) {
	amount := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil) // one token, 18 dec
	got := Normalize(amount, 18, 6)
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(6), nil) // one whole token, 6 dec
	if got.Cmp(want) != 0 {
		t.Fatalf("got %s want %s", got, want)
	}

	// truncation: one unit below a power-of-ten boundary loses the remainder
	amount2 := new(big.Int).Sub(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), big.NewInt(1))
	got2 := Normalize(amount2, 18, 6)
	wantTrunc := new(big.Int).Sub(want, big.NewInt(1))
	if got2.Cmp(wantTrunc) != 0 {
		t.Fatalf("truncation mismatch: got %s want %s", got2, wantTrunc)
	}
}

// TestTransferHashVector checks, over a fixed input, that the hash is
// deterministic and that changing only src_chain changes it. It does
// not compare against a literal expected digest.
func TestTransferHashVector(t *testing.T) {
	tokenAddr := common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789ABCDEF00")
	in := TransferHashInput{
		SrcChain:    ChainId(1),
		DestChain:   ChainId(2),
		SrcAccount:  UniversalAddress{},
		DestAccount: UniversalAddress{},
		Token:       FromEVM(tokenAddr),
		Amount:      new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		Nonce:       big.NewInt(1),
	}

	h1 := ComputeTransferHash(in)
	h2 := ComputeTransferHash(in)
	if h1 != h2 {
		t.Fatal("transfer hash is not deterministic")
	}

	// Chain-ID layout check: mutating only the chain IDs must change
	// the hash (guards against accidentally padding them like amounts).
	in2 := in
	in2.SrcChain = ChainId(0x00000100) // same numeric value shifted if encoder were wrong
	if ComputeTransferHash(in2) == h1 {
		t.Fatal("expected hash to change when src_chain changes")
	}
}

func TestTransferHashUsesDestinationToken(t *testing.T) {
	srcToken := FromEVM(common.HexToAddress("0x1111111111111111111111111111111111111111"))
	destToken := FromEVM(common.HexToAddress("0x2222222222222222222222222222222222222222"))

	base := TransferHashInput{
		SrcChain: ChainId(1), DestChain: ChainId(2),
		Amount: big.NewInt(100), Nonce: big.NewInt(1),
	}
	withSrc := base
	withSrc.Token = srcToken
	withDest := base
	withDest.Token = destToken

	if ComputeTransferHash(withSrc) == ComputeTransferHash(withDest) {
		t.Fatal("hash must depend on which token field is supplied (must be dest token)")
	}
}
