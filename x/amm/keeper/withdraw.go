package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// Withdraw burns shares and releases the proportional reserves. The curve
// amounts are gross vault debits; min_x/min_y are checked against the net the
// provider will receive after any transfer fee, before anything is released.
func (k Keeper) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (math.Int, math.Int, error) {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if pool.Locked {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrPoolLocked, "pool %d", pool.Seed)
	}

	held, err := k.GetShares(ctx, pool.Seed, provider)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if held.LT(msg.Shares) {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInsufficientFunds,
			"provider holds %s shares, wants to burn %s", held, msg.Shares)
	}

	grossX, grossY, err := WithdrawAmounts(pool, msg.Shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !grossX.IsPositive() && !grossY.IsPositive() {
		return math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount,
			"requested shares round to an empty withdrawal")
	}

	// Derive the net proceeds from the fee profiles and check min_x/min_y
	// before anything moves, so a failed bound leaves pool and balances
	// untouched.
	profileX, err := k.tokenKeeper.FeeProfile(ctx, pool.DenomX)
	if err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", pool.DenomX, err)
	}
	profileY, err := k.tokenKeeper.FeeProfile(ctx, pool.DenomY)
	if err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", pool.DenomY, err)
	}
	expectedX := profileX.NetAfterFee(grossX)
	expectedY := profileY.NetAfterFee(grossY)
	if expectedX.LT(msg.MinX) || expectedY.LT(msg.MinY) {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrSlippageExceeded,
			"withdrawal nets %s/%s, caller requires %s/%s", expectedX, expectedY, msg.MinX, msg.MinY)
	}

	// Burn and debit reserves before the outbound transfers settle.
	pool.ReserveX, err = SafeSub(pool.ReserveX, grossX)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool.ReserveY, err = SafeSub(pool.ReserveY, grossY)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pool.ShareSupply, err = SafeSub(pool.ShareSupply, msg.Shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.SetShares(ctx, pool.Seed, provider, held.Sub(msg.Shares)); err != nil {
		return math.Int{}, math.Int{}, err
	}

	netX := math.ZeroInt()
	if grossX.IsPositive() {
		netX, err = k.transferOut(ctx, pool.DenomX, provider, grossX, msg.HookAccounts)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	netY := math.ZeroInt()
	if grossY.IsPositive() {
		netY, err = k.transferOut(ctx, pool.DenomY, provider, grossY, msg.HookAccounts)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdraw,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", pool.Seed)),
		sdk.NewAttribute(types.AttributeKeyProvider, msg.Provider),
		sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
		sdk.NewAttribute(types.AttributeKeyAmountX, netX.String()),
		sdk.NewAttribute(types.AttributeKeyAmountY, netY.String()),
	))
	withdrawalsTotal.Inc()

	return netX, netY, nil
}
