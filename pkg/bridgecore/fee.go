package bridgecore

import (
	"math/big"

	"github.com/chainsafe/watchtower-bridge/pkg/bridgeerr"
	"github.com/chainsafe/watchtower-bridge/pkg/codec"
)

// CalculateFee is the pure, side-effect-free fee pipeline.
// Priority: a per-account custom override, then
// the CL8Y-balance discount tier, then the standard rate. Every bps
// value the config carries is assumed <= MaxFeeBps and is not checked
// here; SetCustomFee enforces that bound for custom overrides, while
// StandardBps and DiscountedBps are taken as configured.
func (b *Bridge) CalculateFee(depositor codec.UniversalAddress, amount *big.Int) (*big.Int, error) {
	bps := b.feeConfig.StandardBps

	if custom, ok := b.feeConfig.CustomBps[depositor]; ok {
		bps = custom
	} else if b.feeConfig.CL8YToken != nil {
		balance, err := b.vault.BalanceOf(depositor, *b.feeConfig.CL8YToken)
		if err != nil {
			return nil, err
		}
		if b.feeConfig.CL8YThreshold != nil && balance.Cmp(b.feeConfig.CL8YThreshold) >= 0 {
			bps = b.feeConfig.DiscountedBps
		}
	}

	fee := new(big.Int).Mul(amount, big.NewInt(int64(bps)))
	fee.Quo(fee, big.NewInt(BpsDenominator))
	return fee, nil
}

// SetCustomFee records a per-account fee override. bps must be
// <= MaxFeeBps.
func (b *Bridge) SetCustomFee(account codec.UniversalAddress, bps uint32) error {
	if bps > MaxFeeBps {
		return bridgeerr.InvalidAmount("custom fee bps exceeds MaxFeeBps")
	}
	b.feeConfig.CustomBps[account] = bps
	return nil
}
