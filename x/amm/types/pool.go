package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// MaxTradeFeeBasisPoints caps the pool trading fee at 10%.
	MaxTradeFeeBasisPoints = 1_000

	// MaxApprovedHookPrograms bounds the hook-program whitelist per pool.
	MaxApprovedHookPrograms = 10
)

// Pool is one constant-product liquidity pool for a (denomX, denomY, seed)
// triple. Seed and denoms are immutable after initialization; pools are never
// deleted. Reserves and share supply are mutated only by deposit, withdraw and
// swap.
type Pool struct {
	Seed      uint64 `json:"seed"`
	DenomX    string `json:"denom_x"`
	DenomY    string `json:"denom_y"`
	Fee       uint32 `json:"fee"`
	Locked    bool   `json:"locked"`
	Authority string `json:"authority,omitempty"`

	FeeDestination                string      `json:"fee_destination"`
	DefaultTransferFeeBasisPoints uint32      `json:"default_transfer_fee_basis_points"`
	DefaultTransferFeeMax         sdkmath.Int `json:"default_transfer_fee_max"`
	DefaultHookProgram            string      `json:"default_hook_program,omitempty"`
	ApprovedHookPrograms          []string    `json:"approved_hook_programs,omitempty"`

	SupportsTransferFees  bool `json:"supports_transfer_fees"`
	SupportsTransferHooks bool `json:"supports_transfer_hooks"`

	ReserveX    sdkmath.Int `json:"reserve_x"`
	ReserveY    sdkmath.Int `json:"reserve_y"`
	ShareSupply sdkmath.Int `json:"share_supply"`
}

// Validate checks the structural invariants of a pool record.
func (p Pool) Validate() error {
	if err := sdk.ValidateDenom(p.DenomX); err != nil {
		return ErrInvalidToken.Wrapf("denom x: %v", err)
	}
	if err := sdk.ValidateDenom(p.DenomY); err != nil {
		return ErrInvalidToken.Wrapf("denom y: %v", err)
	}
	if p.DenomX == p.DenomY {
		return ErrIdenticalMints
	}
	if p.Fee > MaxTradeFeeBasisPoints {
		return ErrInvalidFee.Wrapf("trade fee %dbp exceeds %dbp", p.Fee, MaxTradeFeeBasisPoints)
	}
	if p.DefaultTransferFeeBasisPoints > BasisPointDenominator {
		return ErrInvalidFee.Wrapf("default transfer fee %dbp exceeds %dbp", p.DefaultTransferFeeBasisPoints, BasisPointDenominator)
	}
	if p.Authority != "" {
		if _, err := sdk.AccAddressFromBech32(p.Authority); err != nil {
			return ErrInvalidAddress.Wrapf("authority: %v", err)
		}
	}
	if p.FeeDestination != "" {
		if _, err := sdk.AccAddressFromBech32(p.FeeDestination); err != nil {
			return ErrInvalidAddress.Wrapf("fee destination: %v", err)
		}
	}
	if len(p.ApprovedHookPrograms) > MaxApprovedHookPrograms {
		return ErrHookProgramLimit.Wrapf("%d programs, max %d", len(p.ApprovedHookPrograms), MaxApprovedHookPrograms)
	}
	if p.ReserveX.IsNil() || p.ReserveX.IsNegative() ||
		p.ReserveY.IsNil() || p.ReserveY.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserves must be non-negative")
	}
	if p.ShareSupply.IsNil() || p.ShareSupply.IsNegative() {
		return ErrInvalidPoolState.Wrap("share supply must be non-negative")
	}
	if p.ShareSupply.IsZero() != (p.ReserveX.IsZero() && p.ReserveY.IsZero()) {
		return ErrInvalidPoolState.Wrap("share supply is zero exactly when both reserves are zero")
	}
	return nil
}

// IsEmpty reports the seeding state: no shares have been minted and both
// vaults are empty. The first deposit into an empty pool bypasses curve math.
func (p Pool) IsEmpty() bool {
	return p.ShareSupply.IsZero() && p.ReserveX.IsZero() && p.ReserveY.IsZero()
}

// HasDenom reports whether denom is one of the pool's two token denoms.
func (p Pool) HasDenom(denom string) bool {
	return denom == p.DenomX || denom == p.DenomY
}

// OtherDenom returns the opposite side of the pair.
func (p Pool) OtherDenom(denom string) string {
	if denom == p.DenomX {
		return p.DenomY
	}
	return p.DenomX
}

// IsApprovedHookProgram reports whether program is on the pool's whitelist.
func (p Pool) IsApprovedHookProgram(program string) bool {
	if program == "" {
		return false
	}
	for _, approved := range p.ApprovedHookPrograms {
		if approved == program {
			return true
		}
	}
	return false
}

// ApproveHookProgram adds program to the whitelist, enforcing the bounded set.
func (p *Pool) ApproveHookProgram(program string) error {
	if program == "" {
		return ErrInvalidAddress.Wrap("hook program cannot be empty")
	}
	if p.IsApprovedHookProgram(program) {
		return nil
	}
	if len(p.ApprovedHookPrograms) >= MaxApprovedHookPrograms {
		return ErrHookProgramLimit.Wrapf("pool %d already has %d approved hook programs", p.Seed, len(p.ApprovedHookPrograms))
	}
	p.ApprovedHookPrograms = append(p.ApprovedHookPrograms, program)
	return nil
}

// CheckAuthority verifies that addr is the pool's update authority.
func (p Pool) CheckAuthority(addr string) error {
	if p.Authority == "" {
		return ErrNoAuthoritySet
	}
	if p.Authority != addr {
		return ErrInvalidAuthority.Wrapf("pool %d authority mismatch", p.Seed)
	}
	return nil
}
