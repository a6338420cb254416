package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// GetFeeStats loads the velocity record for a denom.
func (k Keeper) GetFeeStats(ctx context.Context, denom string) (types.DynamicFeeStats, bool) {
	store := k.getStore(ctx)
	bz := store.Get(FeeStatsKey(denom))
	if bz == nil {
		return types.DynamicFeeStats{}, false
	}
	var stats types.DynamicFeeStats
	k.cdc.MustUnmarshal(bz, &stats)
	return stats, true
}

// SetFeeStats persists a velocity record.
func (k Keeper) SetFeeStats(ctx context.Context, stats types.DynamicFeeStats) error {
	if err := stats.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&stats)
	if err != nil {
		return fmt.Errorf("marshal fee stats for %s: %w", stats.Denom, err)
	}
	store.Set(FeeStatsKey(stats.Denom), bz)
	return nil
}

// HasFeeStats reports whether a velocity record exists for a denom.
func (k Keeper) HasFeeStats(ctx context.Context, denom string) bool {
	return k.getStore(ctx).Has(FeeStatsKey(denom))
}

// GetAllFeeStats exports every velocity record.
func (k Keeper) GetAllFeeStats(ctx context.Context) []types.DynamicFeeStats {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FeeStatsKeyPrefix)
	defer iterator.Close()

	var all []types.DynamicFeeStats
	for ; iterator.Valid(); iterator.Next() {
		var stats types.DynamicFeeStats
		k.cdc.MustUnmarshal(iterator.Value(), &stats)
		all = append(all, stats)
	}
	return all
}

// RecordTransfer folds one transfer of a hook-enabled denom into its velocity
// record, creating the record lazily on first use. Returns the fee in effect
// after the transfer.
func (k Keeper) RecordTransfer(ctx context.Context, denom string, amount math.Int) (uint32, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	stats, found := k.GetFeeStats(ctx, denom)
	if !found {
		params := k.GetParams(ctx)
		stats = types.NewDynamicFeeStats(denom,
			params.BaseDynamicFeeBasisPoints, params.MaxDynamicFeeBasisPoints, now)
	}

	previous := stats.CurrentFeeBasisPoints
	feeBp, err := stats.RecordTransfer(now, amount)
	if err != nil {
		return 0, err
	}
	if err := k.SetFeeStats(ctx, stats); err != nil {
		return 0, err
	}

	dynamicFeeGauge.WithLabelValues(denom).Set(float64(feeBp))
	transfersRecorded.WithLabelValues(denom).Inc()

	if feeBp != previous {
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeDynamicFeeUpdate,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyFeeBasisPoints, fmt.Sprintf("%d", feeBp)),
		))
	}
	return feeBp, nil
}

// TradeFeeBps resolves the fee a swap pays. Hook-enabled denoms whose hook
// program is approved for the pool substitute their current dynamic fee for
// the pool's static fee; the input side wins when both denoms qualify. The
// fee is read before any transfer so the swap itself cannot move it.
func (k Keeper) TradeFeeBps(ctx context.Context, pool types.Pool, denomIn string) uint32 {
	if !pool.SupportsTransferHooks {
		return pool.Fee
	}

	for _, denom := range []string{denomIn, pool.OtherDenom(denomIn)} {
		profile, err := k.tokenKeeper.FeeProfile(ctx, denom)
		if err != nil || !profile.HasTransferHook {
			continue
		}
		if !pool.IsApprovedHookProgram(profile.HookProgramID) {
			continue
		}
		if stats, found := k.GetFeeStats(ctx, denom); found {
			return stats.CurrentFeeBasisPoints
		}
	}
	return pool.Fee
}
