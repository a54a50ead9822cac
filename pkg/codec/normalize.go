package codec

import (
	"math/big"
)

// MaxDecimalDelta bounds |dest_decimals - src_decimals|. Configuration
// that would require a larger shift is rejected at registry-mapping
// time rather than silently truncated away at execute time.
const MaxDecimalDelta = 18

var bigTen = big.NewInt(10)

// Normalize converts amount from srcDecimals precision to
// destDecimals precision: multiplying (exact) when the destination
// has more decimals, truncating-dividing when it has fewer.
func Normalize(amount *big.Int, srcDecimals, destDecimals uint8) *big.Int {
	if amount == nil {
		return big.NewInt(0)
	}
	out := new(big.Int).Set(amount)
	if destDecimals >= srcDecimals {
		delta := int(destDecimals - srcDecimals)
		if delta == 0 {
			return out
		}
		factor := new(big.Int).Exp(bigTen, big.NewInt(int64(delta)), nil)
		return out.Mul(out, factor)
	}
	delta := int(srcDecimals - destDecimals)
	factor := new(big.Int).Exp(bigTen, big.NewInt(int64(delta)), nil)
	return out.Quo(out, factor) // truncating division
}
