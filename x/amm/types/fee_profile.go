package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// BasisPointDenominator is the scale of all basis-point fee fields (10000 = 100%).
const BasisPointDenominator = 10_000

// FeeProfile describes the transfer-time behavior of a token denom: whether
// moving it deducts a fee, and whether moving it requires a programmable hook.
// Profiles are resolved from the token registry on every operation and never
// cached across operations, since the registry is external state.
type FeeProfile struct {
	HasTransferFee  bool        `json:"has_transfer_fee"`
	FeeBasisPoints  uint32      `json:"fee_basis_points"`
	FeeCap          sdkmath.Int `json:"fee_cap"`
	HasTransferHook bool        `json:"has_transfer_hook"`
	HookProgramID   string      `json:"hook_program_id"`
}

// DenomFlags reports token features the pool cannot safely support.
type DenomFlags struct {
	NonTransferable bool `json:"non_transferable"`
	DefaultFrozen   bool `json:"default_frozen"`
}

// Fee returns the transfer fee deducted when moving amount of this denom:
// min(amount * bp / 10000, cap). Zero when the denom has no transfer fee.
func (p FeeProfile) Fee(amount sdkmath.Int) sdkmath.Int {
	if !p.HasTransferFee || p.FeeBasisPoints == 0 || !amount.IsPositive() {
		return sdkmath.ZeroInt()
	}

	fee := new(big.Int).Mul(amount.BigInt(), big.NewInt(int64(p.FeeBasisPoints)))
	fee.Quo(fee, big.NewInt(BasisPointDenominator))

	result := sdkmath.NewIntFromBigInt(fee)
	if !p.FeeCap.IsNil() && result.GT(p.FeeCap) {
		return p.FeeCap
	}
	return result
}

// NetAfterFee returns the amount the recipient actually receives when gross
// units are sent: gross - Fee(gross), floored at zero.
func (p FeeProfile) NetAfterFee(gross sdkmath.Int) sdkmath.Int {
	fee := p.Fee(gross)
	if fee.GTE(gross) {
		return sdkmath.ZeroInt()
	}
	return gross.Sub(fee)
}

// GrossForNet returns the gross amount that must be sent so that the recipient
// receives at least net units after the transfer fee:
// ceil(net * 10000 / (10000 - bp)). Rounding up guarantees the net target is
// met; the overshoot is at most one base unit.
func (p FeeProfile) GrossForNet(net sdkmath.Int) (sdkmath.Int, error) {
	if !p.HasTransferFee || p.FeeBasisPoints == 0 {
		return net, nil
	}
	if p.FeeBasisPoints >= BasisPointDenominator {
		return sdkmath.Int{}, ErrMathOverflow.Wrapf("transfer fee %dbp consumes the full amount", p.FeeBasisPoints)
	}
	if !net.IsPositive() {
		return net, nil
	}

	numerator := new(big.Int).Mul(net.BigInt(), big.NewInt(BasisPointDenominator))
	denominator := big.NewInt(BasisPointDenominator - int64(p.FeeBasisPoints))

	gross, remainder := new(big.Int).QuoRem(numerator, denominator, new(big.Int))
	if remainder.Sign() != 0 {
		gross.Add(gross, big.NewInt(1))
	}
	return sdkmath.NewIntFromBigInt(gross), nil
}
