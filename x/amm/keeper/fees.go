package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// CollectFees drains withheld transfer fees for one of the pool's denoms from
// the given source accounts into the pool's fee destination. The token
// service owns the withheld balances; the module only directs the sweep.
func (k Keeper) CollectFees(ctx context.Context, msg *types.MsgCollectFees) (math.Int, error) {
	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return math.Int{}, err
	}
	if err := pool.CheckAuthority(msg.Authority); err != nil {
		return math.Int{}, err
	}
	if !pool.HasDenom(msg.Denom) {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken,
			"denom %s is not in pool %d", msg.Denom, pool.Seed)
	}

	profile, err := k.tokenKeeper.FeeProfile(ctx, msg.Denom)
	if err != nil {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", msg.Denom, err)
	}
	if !profile.HasTransferFee {
		return math.Int{}, sdkerrors.Wrapf(types.ErrTransferFeeNotFound,
			"denom %s withholds no transfer fees", msg.Denom)
	}
	if pool.FeeDestination == "" {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidAddress,
			"pool %d has no fee destination", pool.Seed)
	}
	destination, err := sdk.AccAddressFromBech32(pool.FeeDestination)
	if err != nil {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidAddress, "fee destination: %v", err)
	}

	sources := make([]sdk.AccAddress, 0, len(msg.Sources))
	for _, src := range msg.Sources {
		addr, err := sdk.AccAddressFromBech32(src)
		if err != nil {
			return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidAddress, "source %s: %v", src, err)
		}
		sources = append(sources, addr)
	}

	collected, err := k.tokenKeeper.WithdrawWithheldFees(ctx, msg.Denom, sources, destination)
	if err != nil {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInsufficientFunds, "withdraw withheld fees: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCollectFees,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", msg.Seed)),
		sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
		sdk.NewAttribute(types.AttributeKeyCollected, collected.String()),
		sdk.NewAttribute(types.AttributeKeyFeeDestination, pool.FeeDestination),
	))
	if collected.IsInt64() {
		feesCollected.WithLabelValues(msg.Denom).Add(float64(collected.Int64()))
	}

	return collected, nil
}
