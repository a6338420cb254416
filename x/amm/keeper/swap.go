package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// Swap trades amount_in of denom_in against the pool. The curve consumes the
// net input (post transfer fee); the output side debits the gross amount that
// delivers at least the curve output to the trader. The trade fee is resolved
// before any transfer, so the swap's own velocity contribution prices the
// next trade, not this one.
func (k Keeper) Swap(ctx context.Context, msg *types.MsgSwap) (math.Int, uint32, error) {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return math.Int{}, 0, err
	}
	if pool.Locked {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrPoolLocked, "pool %d", pool.Seed)
	}
	if !pool.HasDenom(msg.DenomIn) {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrInvalidToken,
			"denom %s is not in pool %d", msg.DenomIn, pool.Seed)
	}
	denomOut := pool.OtherDenom(msg.DenomIn)

	profileIn, err := k.tokenKeeper.FeeProfile(ctx, msg.DenomIn)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", msg.DenomIn, err)
	}
	profileOut, err := k.tokenKeeper.FeeProfile(ctx, denomOut)
	if err != nil {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", denomOut, err)
	}

	feeBp := k.TradeFeeBps(ctx, pool, msg.DenomIn)

	netIn := profileIn.NetAfterFee(msg.AmountIn)
	if !netIn.IsPositive() {
		return math.Int{}, 0, sdkerrors.Wrap(types.ErrInvalidAmount,
			"swap input is consumed entirely by the transfer fee")
	}

	reserveIn, reserveOut := pool.ReserveX, pool.ReserveY
	if msg.DenomIn == pool.DenomY {
		reserveIn, reserveOut = pool.ReserveY, pool.ReserveX
	}

	amountOut, err := SwapOutput(reserveIn, reserveOut, netIn, feeBp)
	if err != nil {
		return math.Int{}, 0, err
	}
	if amountOut.LT(msg.MinAmountOut) {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrSlippageExceeded,
			"swap yields %s, caller requires %s", amountOut, msg.MinAmountOut)
	}

	grossOut, err := profileOut.GrossForNet(amountOut)
	if err != nil {
		return math.Int{}, 0, err
	}
	if grossOut.GT(reserveOut) {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrInsufficientFunds,
			"gross output %s exceeds vault reserve %s", grossOut, reserveOut)
	}

	received, err := k.transferIn(ctx, msg.DenomIn, trader, msg.AmountIn, msg.HookAccounts)
	if err != nil {
		return math.Int{}, 0, err
	}
	if received.LT(netIn) {
		return math.Int{}, 0, sdkerrors.Wrapf(types.ErrInvalidPoolState,
			"vault received %s, curve priced %s", received, netIn)
	}
	if _, err := k.transferOut(ctx, denomOut, trader, grossOut, msg.HookAccounts); err != nil {
		return math.Int{}, 0, err
	}

	newReserveIn, err := SafeAdd(reserveIn, received)
	if err != nil {
		return math.Int{}, 0, err
	}
	newReserveOut, err := SafeSub(reserveOut, grossOut)
	if err != nil {
		return math.Int{}, 0, err
	}
	if msg.DenomIn == pool.DenomX {
		pool.ReserveX, pool.ReserveY = newReserveIn, newReserveOut
	} else {
		pool.ReserveY, pool.ReserveX = newReserveIn, newReserveOut
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwap,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", pool.Seed)),
		sdk.NewAttribute(types.AttributeKeyTrader, msg.Trader),
		sdk.NewAttribute(types.AttributeKeyDenomIn, msg.DenomIn),
		sdk.NewAttribute(types.AttributeKeyDenomOut, denomOut),
		sdk.NewAttribute(types.AttributeKeyAmountIn, msg.AmountIn.String()),
		sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		sdk.NewAttribute(types.AttributeKeyFeeBasisPoints, fmt.Sprintf("%d", feeBp)),
	))
	swapsTotal.Inc()

	return amountOut, feeBp, nil
}
