package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/loko-chain/loko/x/amm/types"
)

// Constant-product curve math. All functions are pure and operate on net
// amounts, i.e. amounts after any transfer fee has been deducted; gross/net
// reconciliation happens at the call sites.

// DepositAmounts returns the token amounts backing the requested shares in a
// non-empty pool. Proportional, floor rounded so minted shares are never
// backed by less than the computed deposit.
func DepositAmounts(pool types.Pool, shares math.Int) (math.Int, math.Int, error) {
	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount, "shares must be positive")
	}
	if pool.ShareSupply.IsZero() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidPoolState, "pool has no share supply")
	}

	amountX, err := SafeMulDiv(shares, pool.ReserveX, pool.ShareSupply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountY, err := SafeMulDiv(shares, pool.ReserveY, pool.ShareSupply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountX, amountY, nil
}

// WithdrawAmounts returns the token amounts released by burning the given
// shares. Symmetric to DepositAmounts; floor rounding keeps the remaining
// reserves at least proportional to the remaining supply.
func WithdrawAmounts(pool types.Pool, shares math.Int) (math.Int, math.Int, error) {
	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount, "shares must be positive")
	}
	if shares.GT(pool.ShareSupply) {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInsufficientFunds,
			"cannot burn %s shares, supply is %s", shares, pool.ShareSupply)
	}

	amountX, err := SafeMulDiv(shares, pool.ReserveX, pool.ShareSupply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	amountY, err := SafeMulDiv(shares, pool.ReserveY, pool.ShareSupply)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amountX, amountY, nil
}

// SwapOutput solves the constant product for the output amount. The trade fee
// is charged on the net input before it enters the curve, so the product of
// the post-trade reserves never decreases.
//
//	effectiveIn = netIn * (10000 - feeBp) / 10000
//	out         = reserveOut * effectiveIn / (reserveIn + effectiveIn)
func SwapOutput(reserveIn, reserveOut, netIn math.Int, feeBp uint32) (math.Int, error) {
	if !netIn.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount, "swap input must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, sdkerrors.Wrap(types.ErrInvalidPoolState, "pool reserves must be positive")
	}
	if feeBp >= types.BasisPointDenominator {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidFee, "trade fee %dbp consumes entire input", feeBp)
	}

	feeFactor := math.NewInt(int64(types.BasisPointDenominator - feeBp))
	effectiveIn, err := SafeMulDiv(netIn, feeFactor, math.NewInt(types.BasisPointDenominator))
	if err != nil {
		return math.Int{}, err
	}
	if effectiveIn.IsZero() {
		return math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount, "swap input too small after fee")
	}

	newReserveIn, err := SafeAdd(reserveIn, effectiveIn)
	if err != nil {
		return math.Int{}, err
	}
	out, err := SafeMulDiv(reserveOut, effectiveIn, newReserveIn)
	if err != nil {
		return math.Int{}, err
	}
	if out.GTE(reserveOut) {
		return math.Int{}, sdkerrors.Wrap(types.ErrInsufficientFunds, "swap would drain the output reserve")
	}
	return out, nil
}
