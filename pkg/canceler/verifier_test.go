package canceler

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chainsafe/watchtower-bridge/pkg/chainadapter"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

func sampleAccount() codec.UniversalAddress {
	var a codec.UniversalAddress
	a[31] = 0x42
	return a
}

func sampleInfo() chainadapter.PendingWithdrawInfo {
	return chainadapter.PendingWithdrawInfo{
		SrcChain:   1,
		SrcAccount: sampleAccount(),
		Nonce:      1,
		Amount:     big.NewInt(995000),
		Approved:   true,
	}
}

// TestMismatchNoMatchingDeposit models a fabricated withdraw: an attacker
// submits a withdraw with a nonce that has no corresponding deposit on
// the source chain, so getDeposit returns a zero-timestamp record.
func TestMismatchNoMatchingDeposit(t *testing.T) {
	info := sampleInfo()
	reason, bad := mismatch(chainadapter.DepositRecord{}, info)
	assert.True(t, bad)
	assert.Contains(t, reason, "no matching deposit")
}

// TestMismatchNonceDisagreement models the canceler rejecting an
// approval whose deposit record exists but whose nonce diverges from
// what the destination chain's live PendingWithdraw struct claims.
func TestMismatchNonceDisagreement(t *testing.T) {
	info := sampleInfo()
	rec := chainadapter.DepositRecord{
		Timestamp:  1700000000,
		Nonce:      9999,
		NetAmount:  info.Amount,
		SrcAccount: info.SrcAccount,
	}
	reason, bad := mismatch(rec, info)
	assert.True(t, bad)
	assert.Contains(t, reason, "nonce")
}

func TestMismatchAmountDisagreement(t *testing.T) {
	info := sampleInfo()
	rec := chainadapter.DepositRecord{
		Timestamp:  1700000000,
		Nonce:      info.Nonce,
		NetAmount:  big.NewInt(1),
		SrcAccount: info.SrcAccount,
	}
	reason, bad := mismatch(rec, info)
	assert.True(t, bad)
	assert.Contains(t, reason, "amount")
}

func TestMismatchAccountDisagreement(t *testing.T) {
	info := sampleInfo()
	var other codec.UniversalAddress
	other[31] = 0x99
	rec := chainadapter.DepositRecord{
		Timestamp:  1700000000,
		Nonce:      info.Nonce,
		NetAmount:  info.Amount,
		SrcAccount: other,
	}
	reason, bad := mismatch(rec, info)
	assert.True(t, bad)
	assert.Contains(t, reason, "account")
}

// TestMismatchExactMatchDoesNothing models the happy path: a genuine
// deposit that agrees on every field is not a mismatch, so the
// canceler leaves the withdraw alone.
func TestMismatchExactMatchDoesNothing(t *testing.T) {
	info := sampleInfo()
	rec := chainadapter.DepositRecord{
		Timestamp:  1700000000,
		Nonce:      info.Nonce,
		NetAmount:  info.Amount,
		SrcAccount: info.SrcAccount,
	}
	_, bad := mismatch(rec, info)
	assert.False(t, bad)
}

// TestMismatchNilAmountIsTreatedAsDisagreement guards against a nil
// big.Int (a zero-value PendingWithdrawInfo.Amount) being mistaken for
// a match via a nil-pointer Cmp panic or a false equality.
func TestMismatchNilAmountIsTreatedAsDisagreement(t *testing.T) {
	info := sampleInfo()
	info.Amount = nil
	rec := chainadapter.DepositRecord{
		Timestamp:  1700000000,
		Nonce:      info.Nonce,
		NetAmount:  big.NewInt(995000),
		SrcAccount: info.SrcAccount,
	}
	reason, bad := mismatch(rec, info)
	assert.True(t, bad)
	assert.Contains(t, reason, "amount")
}
