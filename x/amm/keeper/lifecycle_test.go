package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loko-chain/loko/testutil/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

func TestLockUnlockPool(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool := initTestPool(t, k, ctx, 1, denomX, denomY, authority)

	require.NoError(t, k.LockPool(ctx, authority, pool.Seed))
	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.True(t, stored.Locked)

	// Locking twice is a no-op.
	require.NoError(t, k.LockPool(ctx, authority, pool.Seed))

	require.NoError(t, k.UnlockPool(ctx, authority, pool.Seed))
	stored, err = k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.False(t, stored.Locked)

	// Unlocking an open pool is a no-op.
	require.NoError(t, k.UnlockPool(ctx, authority, pool.Seed))
}

func TestLockPool_WrongAuthority(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, types.TestAddr())

	err := k.LockPool(ctx, types.TestAddr(), pool.Seed)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAuthority)
}

func TestLockPool_NoAuthoritySet(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")

	err := k.LockPool(ctx, types.TestAddr(), pool.Seed)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrNoAuthoritySet)
}

func TestUpdateTransferFeeConfig(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool, err := k.InitializePool(ctx, types.NewMsgInitializePool(
		types.TestAddr(), 1, feeDenom, denomY, 30, authority, 50, math.NewInt(1_000), ""))
	require.NoError(t, err)

	require.NoError(t, k.UpdateTransferFeeConfig(ctx, &types.MsgUpdateTransferFeeConfig{
		Authority:         authority,
		Seed:              pool.Seed,
		NewFeeBasisPoints: 75,
		NewMaxFee:         math.NewInt(2_000),
	}))

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, uint32(75), stored.DefaultTransferFeeBasisPoints)
	require.Equal(t, math.NewInt(2_000), stored.DefaultTransferFeeMax)
}

func TestUpdateTransferFeeConfig_NoFeeDenom(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool := initTestPool(t, k, ctx, 1, denomX, denomY, authority)

	err := k.UpdateTransferFeeConfig(ctx, &types.MsgUpdateTransferFeeConfig{
		Authority:         authority,
		Seed:              pool.Seed,
		NewFeeBasisPoints: 75,
		NewMaxFee:         math.NewInt(2_000),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrTransferFeeNotFound)
}

func TestUpdateFeeDestination(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool := initTestPool(t, k, ctx, 1, denomX, denomY, authority)

	destination := types.TestAddr()
	require.NoError(t, k.UpdateFeeDestination(ctx, &types.MsgUpdateFeeDestination{
		Authority:      authority,
		Seed:           pool.Seed,
		NewDestination: destination,
	}))

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, destination, stored.FeeDestination)
}

func TestUpdateHookProgram(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool, err := k.InitializePool(ctx, types.NewMsgInitializePool(
		types.TestAddr(), 1, hookDenom, denomY, 30, authority, 0, math.ZeroInt(), ""))
	require.NoError(t, err)

	require.NoError(t, k.UpdateHookProgram(ctx, &types.MsgUpdateHookProgram{
		Authority:      authority,
		Seed:           pool.Seed,
		NewHookProgram: "prog-2",
	}))

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, "prog-2", stored.DefaultHookProgram)
	require.True(t, stored.IsApprovedHookProgram("prog-2"))
	// The original program stays approved for in-flight token accounts.
	require.True(t, stored.IsApprovedHookProgram(hookProgram))

	// Clearing the default keeps the approved set.
	require.NoError(t, k.UpdateHookProgram(ctx, &types.MsgUpdateHookProgram{
		Authority: authority,
		Seed:      pool.Seed,
	}))
	stored, err = k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Empty(t, stored.DefaultHookProgram)
	require.True(t, stored.IsApprovedHookProgram("prog-2"))
}

func TestUpdateHookProgram_NoHookDenom(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool := initTestPool(t, k, ctx, 1, denomX, denomY, authority)

	err := k.UpdateHookProgram(ctx, &types.MsgUpdateHookProgram{
		Authority:      authority,
		Seed:           pool.Seed,
		NewHookProgram: "prog-2",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrTransferHookNotFound)
}
