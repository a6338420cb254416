package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// Deposit mints shares against a proportional token deposit. The caller's
// max_x/max_y are gross bounds; the curve operates on their net equivalents so
// transfer-fee denoms cannot mint shares backed by fees the vault never saw.
func (k Keeper) Deposit(ctx context.Context, msg *types.MsgDeposit) (math.Int, math.Int, math.Int, error) {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAddress, err.Error())
	}

	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if pool.Locked {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrPoolLocked, "pool %d", pool.Seed)
	}

	profileX, err := k.tokenKeeper.FeeProfile(ctx, pool.DenomX)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", pool.DenomX, err)
	}
	profileY, err := k.tokenKeeper.FeeProfile(ctx, pool.DenomY)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", pool.DenomY, err)
	}

	// The curve sees what the vault will actually receive.
	netMaxX := profileX.NetAfterFee(msg.MaxX)
	netMaxY := profileY.NetAfterFee(msg.MaxY)
	if !netMaxX.IsPositive() || !netMaxY.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount,
			"deposit maxima are consumed entirely by transfer fees")
	}

	var netX, netY math.Int
	if pool.IsEmpty() {
		// Seeding deposit: the net maxima become the initial reserves and
		// fix the pool price.
		netX, netY = netMaxX, netMaxY
	} else {
		netX, netY, err = DepositAmounts(pool, msg.Shares)
		if err != nil {
			return math.Int{}, math.Int{}, math.Int{}, err
		}
		if !netX.IsPositive() || !netY.IsPositive() {
			return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrap(types.ErrInvalidAmount,
				"requested shares round to an empty deposit")
		}
		if netX.GT(netMaxX) || netY.GT(netMaxY) {
			return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrSlippageExceeded,
				"deposit needs %s/%s net, caller allows %s/%s", netX, netY, netMaxX, netMaxY)
		}
	}

	// Re-derive the gross sends; the ceil overshoot must stay inside the
	// caller's gross bounds.
	grossX, err := profileX.GrossForNet(netX)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	grossY, err := profileY.GrossForNet(netY)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if grossX.GT(msg.MaxX) || grossY.GT(msg.MaxY) {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrSlippageExceeded,
			"gross deposit %s/%s exceeds caller maxima %s/%s", grossX, grossY, msg.MaxX, msg.MaxY)
	}

	receivedX, err := k.transferIn(ctx, pool.DenomX, provider, grossX, msg.HookAccounts)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	receivedY, err := k.transferIn(ctx, pool.DenomY, provider, grossY, msg.HookAccounts)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	// Credit the vault with what actually arrived; the ceil in GrossForNet
	// can deliver one unit over the curve amount.
	if receivedX.LT(netX) || receivedY.LT(netY) {
		return math.Int{}, math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidPoolState,
			"vault received %s/%s, curve requires %s/%s", receivedX, receivedY, netX, netY)
	}

	pool.ReserveX, err = SafeAdd(pool.ReserveX, receivedX)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	pool.ReserveY, err = SafeAdd(pool.ReserveY, receivedY)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	pool.ShareSupply, err = SafeAdd(pool.ShareSupply, msg.Shares)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	existing, err := k.GetShares(ctx, pool.Seed, provider)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	updated, err := SafeAdd(existing, msg.Shares)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if err := k.SetShares(ctx, pool.Seed, provider, updated); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDeposit,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", pool.Seed)),
		sdk.NewAttribute(types.AttributeKeyProvider, msg.Provider),
		sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
		sdk.NewAttribute(types.AttributeKeyAmountX, receivedX.String()),
		sdk.NewAttribute(types.AttributeKeyAmountY, receivedY.String()),
	))
	depositsTotal.Inc()

	return msg.Shares, receivedX, receivedY, nil
}
