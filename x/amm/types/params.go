package types

// Params holds the genesis-managed module parameters.
type Params struct {
	// MaxTradeFeeBasisPoints caps the static trading fee accepted at pool
	// initialization.
	MaxTradeFeeBasisPoints uint32 `json:"max_trade_fee_basis_points"`

	// MaxTransferFeeBasisPoints caps the default transfer fee a pool may
	// configure for new token accounts.
	MaxTransferFeeBasisPoints uint32 `json:"max_transfer_fee_basis_points"`

	// BaseDynamicFeeBasisPoints seeds new velocity records.
	BaseDynamicFeeBasisPoints uint32 `json:"base_dynamic_fee_basis_points"`

	// MaxDynamicFeeBasisPoints is the velocity fee ceiling for new records.
	MaxDynamicFeeBasisPoints uint32 `json:"max_dynamic_fee_basis_points"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		MaxTradeFeeBasisPoints:    MaxTradeFeeBasisPoints,           // 10%
		MaxTransferFeeBasisPoints: BasisPointDenominator,            // 100%
		BaseDynamicFeeBasisPoints: DefaultBaseDynamicFeeBasisPoints, // 0.1%
		MaxDynamicFeeBasisPoints:  DefaultMaxDynamicFeeBasisPoints,  // 3.0%
	}
}

// Validate checks parameter bounds.
func (p Params) Validate() error {
	if p.MaxTradeFeeBasisPoints > BasisPointDenominator {
		return ErrInvalidFee.Wrapf("max trade fee %dbp exceeds %dbp", p.MaxTradeFeeBasisPoints, BasisPointDenominator)
	}
	if p.MaxTransferFeeBasisPoints > BasisPointDenominator {
		return ErrInvalidFee.Wrapf("max transfer fee %dbp exceeds %dbp", p.MaxTransferFeeBasisPoints, BasisPointDenominator)
	}
	if p.BaseDynamicFeeBasisPoints == 0 {
		return ErrInvalidFee.Wrap("base dynamic fee must be positive")
	}
	if p.MaxDynamicFeeBasisPoints < p.BaseDynamicFeeBasisPoints {
		return ErrInvalidFee.Wrap("max dynamic fee must be at least the base dynamic fee")
	}
	if p.MaxDynamicFeeBasisPoints > BasisPointDenominator {
		return ErrInvalidFee.Wrapf("max dynamic fee %dbp exceeds %dbp", p.MaxDynamicFeeBasisPoints, BasisPointDenominator)
	}
	return nil
}
