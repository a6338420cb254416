package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loko-chain/loko/testutil/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

func TestWithdraw_Proportional(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(2_000_000))

	x, y, err := k.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), pool.Seed, math.NewInt(400_000), math.NewInt(400_000), math.NewInt(800_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400_000), x)
	require.Equal(t, math.NewInt(800_000), y)

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600_000), stored.ReserveX)
	require.Equal(t, math.NewInt(1_200_000), stored.ReserveY)
	require.Equal(t, math.NewInt(600_000), stored.ShareSupply)

	held, err := k.GetShares(ctx, pool.Seed, provider)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600_000), held)
}

func TestWithdraw_FullExit(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(2_000_000))

	x, y, err := k.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), pool.Seed, math.NewInt(1_000_000), math.ZeroInt(), math.ZeroInt()))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), x)
	require.Equal(t, math.NewInt(2_000_000), y)

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.True(t, stored.IsEmpty())

	// The share record is deleted, not zeroed.
	held, err := k.GetShares(ctx, pool.Seed, provider)
	require.NoError(t, err)
	require.True(t, held.IsZero())
	records, err := k.GetAllShareRecords(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestWithdraw_MoreThanHeld(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000), math.NewInt(1_000), math.NewInt(1_000))

	_, _, err := k.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), pool.Seed, math.NewInt(1_001), math.ZeroInt(), math.ZeroInt()))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestWithdraw_FeeOnTransferDenom(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, feeDenom, denomY, "")
	provider := testProvider()
	tk.Fund(provider, feeDenom, math.NewInt(10_000))
	tk.Fund(provider, denomY, math.NewInt(10_000))
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(9_900), math.NewInt(10_000), math.NewInt(10_000))

	// The vault debits the gross curve amount; the 1% transfer fee comes out
	// of the provider's proceeds on the way back.
	x, y, err := k.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), pool.Seed, math.NewInt(9_900), math.NewInt(9_801), math.NewInt(10_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_801), x) // 9900 - 1%
	require.Equal(t, math.NewInt(10_000), y)

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.True(t, stored.IsEmpty())
}

func TestWithdraw_MinNotMet(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, feeDenom, denomY, "")
	provider := testProvider()
	tk.Fund(provider, feeDenom, math.NewInt(10_000))
	tk.Fund(provider, denomY, math.NewInt(10_000))
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(9_900), math.NewInt(10_000), math.NewInt(10_000))

	balanceBefore := tk.BalanceOf(provider, feeDenom)

	// The provider demands the gross amount but the transfer fee eats 1%.
	_, _, err := k.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), pool.Seed, math.NewInt(9_900), math.NewInt(9_900), math.ZeroInt()))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// The bound is checked before anything is released: balances, reserves and
	// shares are untouched.
	require.Equal(t, balanceBefore, tk.BalanceOf(provider, feeDenom))
	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_900), stored.ReserveX)
	require.Equal(t, math.NewInt(9_900), stored.ShareSupply)
	held, err := k.GetShares(ctx, pool.Seed, provider)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_900), held)
}

func TestWithdraw_LockedPool(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool := initTestPool(t, k, ctx, 1, denomX, denomY, authority)
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000), math.NewInt(1_000), math.NewInt(1_000))

	require.NoError(t, k.LockPool(ctx, authority, pool.Seed))

	_, _, err := k.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), pool.Seed, math.NewInt(1_000), math.ZeroInt(), math.ZeroInt()))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrPoolLocked)
}
