package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// Pool administration. Every operation authenticates against the pool's
// update authority; pools created without one are permanently frozen in
// their initial configuration.

// LockPool freezes a pool. Locking an already locked pool is a no-op.
func (k Keeper) LockPool(ctx context.Context, authority string, seed uint64) error {
	pool, err := k.GetPool(ctx, seed)
	if err != nil {
		return err
	}
	if err := pool.CheckAuthority(authority); err != nil {
		return err
	}
	if pool.Locked {
		return nil
	}
	pool.Locked = true
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	k.emitLifecycleEvent(ctx, types.EventTypeLockPool, seed, authority)
	return nil
}

// UnlockPool reopens a locked pool. Unlocking an open pool is a no-op.
func (k Keeper) UnlockPool(ctx context.Context, authority string, seed uint64) error {
	pool, err := k.GetPool(ctx, seed)
	if err != nil {
		return err
	}
	if err := pool.CheckAuthority(authority); err != nil {
		return err
	}
	if !pool.Locked {
		return nil
	}
	pool.Locked = false
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	k.emitLifecycleEvent(ctx, types.EventTypeUnlockPool, seed, authority)
	return nil
}

// UpdateTransferFeeConfig replaces the pool's default transfer-fee settings
// for new token accounts. Existing withheld fees are unaffected.
func (k Keeper) UpdateTransferFeeConfig(ctx context.Context, msg *types.MsgUpdateTransferFeeConfig) error {
	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return err
	}
	if err := pool.CheckAuthority(msg.Authority); err != nil {
		return err
	}
	if !pool.SupportsTransferFees {
		return sdkerrors.Wrapf(types.ErrTransferFeeNotFound,
			"pool %d has no transfer-fee denom", pool.Seed)
	}

	params := k.GetParams(ctx)
	if msg.NewFeeBasisPoints > params.MaxTransferFeeBasisPoints {
		return sdkerrors.Wrapf(types.ErrInvalidFee,
			"transfer fee %dbp exceeds module maximum %dbp", msg.NewFeeBasisPoints, params.MaxTransferFeeBasisPoints)
	}

	pool.DefaultTransferFeeBasisPoints = msg.NewFeeBasisPoints
	pool.DefaultTransferFeeMax = msg.NewMaxFee
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateTransferFee,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", msg.Seed)),
		sdk.NewAttribute(types.AttributeKeyFeeBasisPoints, fmt.Sprintf("%d", msg.NewFeeBasisPoints)),
	))
	return nil
}

// UpdateFeeDestination changes the account collected fees are sent to.
func (k Keeper) UpdateFeeDestination(ctx context.Context, msg *types.MsgUpdateFeeDestination) error {
	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return err
	}
	if err := pool.CheckAuthority(msg.Authority); err != nil {
		return err
	}

	pool.FeeDestination = msg.NewDestination
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateDestination,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", msg.Seed)),
		sdk.NewAttribute(types.AttributeKeyFeeDestination, msg.NewDestination),
	))
	return nil
}

// UpdateHookProgram sets or clears the pool's default hook program. A newly
// set program joins the bounded approved set; clearing keeps previously
// approved programs valid for in-flight token accounts.
func (k Keeper) UpdateHookProgram(ctx context.Context, msg *types.MsgUpdateHookProgram) error {
	pool, err := k.GetPool(ctx, msg.Seed)
	if err != nil {
		return err
	}
	if err := pool.CheckAuthority(msg.Authority); err != nil {
		return err
	}
	if !pool.SupportsTransferHooks {
		return sdkerrors.Wrapf(types.ErrTransferHookNotFound,
			"pool %d has no hook-enabled denom", pool.Seed)
	}

	if msg.NewHookProgram != "" {
		if err := pool.ApproveHookProgram(msg.NewHookProgram); err != nil {
			return err
		}
	}
	pool.DefaultHookProgram = msg.NewHookProgram
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateHookProgram,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", msg.Seed)),
		sdk.NewAttribute(types.AttributeKeyHookProgram, msg.NewHookProgram),
	))
	return nil
}

func (k Keeper) emitLifecycleEvent(ctx context.Context, eventType string, seed uint64, authority string) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		eventType,
		sdk.NewAttribute(types.AttributeKeySeed, fmt.Sprintf("%d", seed)),
		sdk.NewAttribute(sdk.AttributeKeySender, authority),
	))
}
