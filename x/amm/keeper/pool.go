package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// SetPool persists a pool record under its seed.
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	store := k.getStore(ctx)
	bz, err := k.cdc.Marshal(&pool)
	if err != nil {
		return fmt.Errorf("marshal pool %d: %w", pool.Seed, err)
	}
	store.Set(PoolKey(pool.Seed), bz)
	return nil
}

// GetPool loads the pool for a seed, or ErrPoolNotFound.
func (k Keeper) GetPool(ctx context.Context, seed uint64) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(seed))
	if bz == nil {
		return types.Pool{}, sdkerrors.Wrapf(types.ErrPoolNotFound, "seed %d", seed)
	}
	var pool types.Pool
	if err := k.cdc.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("unmarshal pool %d: %w", seed, err)
	}
	return pool, nil
}

// HasPool reports whether a pool exists for the seed.
func (k Keeper) HasPool(ctx context.Context, seed uint64) bool {
	return k.getStore(ctx).Has(PoolKey(seed))
}

// IteratePools calls cb for every stored pool until cb returns true.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("unmarshal pool at key %x: %w", iterator.Key(), err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every pool, ordered by seed.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// setPoolByDenoms indexes the pool seed by its denom pair. Multiple pools can
// share a pair under distinct seeds; the index keeps the first seed only, as a
// discovery hint for queries.
func (k Keeper) setPoolByDenoms(ctx context.Context, denomX, denomY string, seed uint64) {
	store := k.getStore(ctx)
	key := PoolByDenomsKey(denomX, denomY)
	if store.Has(key) {
		return
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, seed)
	store.Set(key, bz)
}

// GetPoolSeedByDenoms returns the first pool seed indexed for a denom pair.
func (k Keeper) GetPoolSeedByDenoms(ctx context.Context, denomX, denomY string) (uint64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PoolByDenomsKey(denomX, denomY))
	if bz == nil {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

// InitializePool creates an empty pool for a (denomX, denomY, seed) triple.
// The pool starts with zero reserves; the first deposit seeds the price. The
// token extension surface of both denoms is probed up front so pools never
// reference denoms they cannot settle transfers for.
func (k Keeper) InitializePool(ctx context.Context, msg *types.MsgInitializePool) (types.Pool, error) {
	if k.HasPool(ctx, msg.Seed) {
		return types.Pool{}, sdkerrors.Wrapf(types.ErrPoolAlreadyExists, "seed %d", msg.Seed)
	}

	params := k.GetParams(ctx)
	if msg.Fee > params.MaxTradeFeeBasisPoints {
		return types.Pool{}, sdkerrors.Wrapf(types.ErrInvalidFee,
			"trade fee %dbp exceeds module maximum %dbp", msg.Fee, params.MaxTradeFeeBasisPoints)
	}
	if msg.TransferFeeBasisPoints > params.MaxTransferFeeBasisPoints {
		return types.Pool{}, sdkerrors.Wrapf(types.ErrInvalidFee,
			"transfer fee %dbp exceeds module maximum %dbp", msg.TransferFeeBasisPoints, params.MaxTransferFeeBasisPoints)
	}

	pool := types.Pool{
		Seed:                          msg.Seed,
		DenomX:                        msg.DenomX,
		DenomY:                        msg.DenomY,
		Fee:                           msg.Fee,
		Authority:                     msg.Authority,
		FeeDestination:                msg.Creator,
		DefaultTransferFeeBasisPoints: msg.TransferFeeBasisPoints,
		DefaultTransferFeeMax:         msg.MaxTransferFee,
		DefaultHookProgram:            msg.HookProgram,
		ReserveX:                      math.ZeroInt(),
		ReserveY:                      math.ZeroInt(),
		ShareSupply:                   math.ZeroInt(),
	}

	for _, denom := range []string{msg.DenomX, msg.DenomY} {
		flags, err := k.tokenKeeper.DenomFlags(ctx, denom)
		if err != nil {
			return types.Pool{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", denom, err)
		}
		if flags.NonTransferable {
			return types.Pool{}, sdkerrors.Wrapf(types.ErrUnsupportedExtension,
				"denom %s is non-transferable", denom)
		}
		if flags.DefaultFrozen {
			return types.Pool{}, sdkerrors.Wrapf(types.ErrUnsupportedExtension,
				"denom %s freezes new accounts by default", denom)
		}

		profile, err := k.tokenKeeper.FeeProfile(ctx, denom)
		if err != nil {
			return types.Pool{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", denom, err)
		}
		if profile.HasTransferFee {
			pool.SupportsTransferFees = true
		}
		if profile.HasTransferHook {
			if profile.HookProgramID == "" {
				return types.Pool{}, sdkerrors.Wrapf(types.ErrTransferHookNotFound,
					"denom %s declares a hook without a program", denom)
			}
			pool.SupportsTransferHooks = true
			if err := pool.ApproveHookProgram(profile.HookProgramID); err != nil {
				return types.Pool{}, err
			}
		}
	}
	if msg.HookProgram != "" {
		if err := pool.ApproveHookProgram(msg.HookProgram); err != nil {
			return types.Pool{}, err
		}
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, err
	}
	k.setPoolByDenoms(ctx, msg.DenomX, msg.DenomY, msg.Seed)

	// Hook-enabled denoms get a velocity record so swaps pick up the
	// dynamic fee from the first transfer on.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if pool.SupportsTransferHooks {
		now := sdkCtx.BlockTime().Unix()
		for _, denom := range []string{pool.DenomX, pool.DenomY} {
			profile, err := k.tokenKeeper.FeeProfile(ctx, denom)
			if err != nil {
				return types.Pool{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", denom, err)
			}
			if profile.HasTransferHook && !k.HasFeeStats(ctx, denom) {
				stats := types.NewDynamicFeeStats(denom,
					params.BaseDynamicFeeBasisPoints, params.MaxDynamicFeeBasisPoints, now)
				if err := k.SetFeeStats(ctx, stats); err != nil {
					return types.Pool{}, err
				}
			}
		}
	}

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeInitializePool,
			sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", pool.Seed)),
			sdk.NewAttribute(types.AttributeKeyDenomX, pool.DenomX),
			sdk.NewAttribute(types.AttributeKeyDenomY, pool.DenomY),
			sdk.NewAttribute(types.AttributeKeyFeeBasisPoints, fmt.Sprintf("%d", pool.Fee)),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Creator),
		),
	})

	poolsInitialized.Inc()
	k.Logger(sdkCtx).Info("pool initialized",
		"seed", pool.Seed,
		"denom_x", pool.DenomX,
		"denom_y", pool.DenomY,
		"fee_bp", pool.Fee,
	)

	return pool, nil
}
