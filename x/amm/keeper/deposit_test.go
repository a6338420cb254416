package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loko-chain/loko/testutil/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

func TestDeposit_SeedsEmptyPool(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	tk.Fund(provider, denomX, math.NewInt(1_000_000))
	tk.Fund(provider, denomY, math.NewInt(2_000_000))

	// The seeding deposit takes both maxima verbatim and fixes the price.
	shares, x, y, err := k.Deposit(ctx, types.NewMsgDeposit(
		provider.String(), pool.Seed, math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(2_000_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), shares)
	require.Equal(t, math.NewInt(1_000_000), x)
	require.Equal(t, math.NewInt(2_000_000), y)

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), stored.ReserveX)
	require.Equal(t, math.NewInt(2_000_000), stored.ReserveY)
	require.Equal(t, math.NewInt(1_000_000), stored.ShareSupply)

	held, err := k.GetShares(ctx, pool.Seed, provider)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), held)

	// The vault holds the full deposit.
	require.Equal(t, math.NewInt(1_000_000), tk.BalanceOf(k.VaultAddress(), denomX))
	require.Equal(t, math.NewInt(2_000_000), tk.BalanceOf(k.VaultAddress(), denomY))
}

func TestDeposit_Proportional(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(2_000_000))

	second := testProvider()
	tk.Fund(second, denomX, math.NewInt(100_000))
	tk.Fund(second, denomY, math.NewInt(200_000))

	shares, x, y, err := k.Deposit(ctx, types.NewMsgDeposit(
		second.String(), pool.Seed, math.NewInt(100_000), math.NewInt(100_000), math.NewInt(200_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), shares)
	require.Equal(t, math.NewInt(100_000), x)
	require.Equal(t, math.NewInt(200_000), y)

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100_000), stored.ShareSupply)
}

func TestDeposit_SlippageExceeded(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(2_000_000))

	second := testProvider()
	tk.Fund(second, denomX, math.NewInt(100_000))
	tk.Fund(second, denomY, math.NewInt(200_000))

	// 100k shares need 200k of denom y; the cap allows only 150k.
	_, _, _, err := k.Deposit(ctx, types.NewMsgDeposit(
		second.String(), pool.Seed, math.NewInt(100_000), math.NewInt(100_000), math.NewInt(150_000)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestDeposit_FeeOnTransferDenom(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, feeDenom, denomY, "")
	provider := testProvider()
	tk.Fund(provider, feeDenom, math.NewInt(10_000))
	tk.Fund(provider, denomY, math.NewInt(10_000))

	// 1% fee on ufee: a 10000 gross max nets 9900 into the vault. The pool
	// books only what arrived.
	shares, x, y, err := k.Deposit(ctx, types.NewMsgDeposit(
		provider.String(), pool.Seed, math.NewInt(9_900), math.NewInt(10_000), math.NewInt(10_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_900), shares)
	require.Equal(t, math.NewInt(9_900), x)
	require.Equal(t, math.NewInt(10_000), y)

	stored, err := k.GetPool(ctx, pool.Seed)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_900), stored.ReserveX)
	require.Equal(t, math.NewInt(10_000), stored.ReserveY)

	// The withheld fee sits with the token service, not the vault.
	require.Equal(t, math.NewInt(9_900), tk.BalanceOf(k.VaultAddress(), feeDenom))
	require.Equal(t, math.NewInt(100), tk.Withheld[feeDenom])
}

func TestDeposit_FeeAndHookDenom(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	// A denom carrying both extensions settles through the hook path, with the
	// fee still enforced in flight.
	tk.SetProfile("udual", types.FeeProfile{
		HasTransferFee:  true,
		FeeBasisPoints:  100,
		HasTransferHook: true,
		HookProgramID:   hookProgram,
	})
	pool, err := k.InitializePool(ctx, types.NewMsgInitializePool(
		types.TestAddr(), 1, "udual", denomY, 30, "", 0, math.ZeroInt(), ""))
	require.NoError(t, err)

	provider := testProvider()
	tk.Fund(provider, "udual", math.NewInt(10_000))
	tk.Fund(provider, denomY, math.NewInt(10_000))

	msg := types.NewMsgDeposit(
		provider.String(), pool.Seed, math.NewInt(9_900), math.NewInt(10_000), math.NewInt(10_000))
	msg.HookAccounts = []string{"resolved-acc-1", "resolved-acc-2"}
	shares, x, y, err := k.Deposit(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_900), shares)
	require.Equal(t, math.NewInt(9_900), x)
	require.Equal(t, math.NewInt(10_000), y)

	// The resolved accounts reached the token service on the udual leg; the
	// plain denomY leg does not dispatch a hook.
	require.Len(t, tk.HookAccountsSeen, 1)
	require.Equal(t, []string{"resolved-acc-1", "resolved-acc-2"}, tk.HookAccountsSeen[0])

	// The fee was withheld in flight and the transfer fed the velocity record.
	require.Equal(t, math.NewInt(100), tk.Withheld["udual"])
	stats, found := k.GetFeeStats(ctx, "udual")
	require.True(t, found)
	require.Equal(t, uint64(1), stats.TotalTransfers)
}

func TestDeposit_MaximaConsumedByFees(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	tk.SetProfile("uconfiscate", types.FeeProfile{
		HasTransferFee: true,
		FeeBasisPoints: types.BasisPointDenominator,
	})
	pool := initTestPool(t, k, ctx, 1, "uconfiscate", denomY, "")

	provider := testProvider()
	tk.Fund(provider, "uconfiscate", math.NewInt(10_000))
	tk.Fund(provider, denomY, math.NewInt(10_000))

	_, _, _, err := k.Deposit(ctx, types.NewMsgDeposit(
		provider.String(), pool.Seed, math.NewInt(1), math.NewInt(10_000), math.NewInt(10_000)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestDeposit_LockedPool(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	authority := types.TestAddr()
	pool := initTestPool(t, k, ctx, 1, denomX, denomY, authority)
	require.NoError(t, k.LockPool(ctx, authority, pool.Seed))

	provider := testProvider()
	tk.Fund(provider, denomX, math.NewInt(1_000))
	tk.Fund(provider, denomY, math.NewInt(1_000))

	_, _, _, err := k.Deposit(ctx, types.NewMsgDeposit(
		provider.String(), pool.Seed, math.NewInt(1_000), math.NewInt(1_000), math.NewInt(1_000)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrPoolLocked)
}

func TestDeposit_UnknownPool(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	_, _, _, err := k.Deposit(ctx, types.NewMsgDeposit(
		types.TestAddr(), 404, math.NewInt(1), math.NewInt(1), math.NewInt(1)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestDeposit_InsufficientProviderBalance(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, "")
	provider := testProvider()
	tk.Fund(provider, denomX, math.NewInt(10))

	_, _, _, err := k.Deposit(ctx, types.NewMsgDeposit(
		provider.String(), pool.Seed, math.NewInt(1_000), math.NewInt(1_000), math.NewInt(1_000)))
	require.Error(t, err)
}
