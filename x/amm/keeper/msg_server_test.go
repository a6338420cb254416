package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loko-chain/loko/testutil/keeper"
	"github.com/loko-chain/loko/x/amm/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

// TestMsgServer_FullFlow walks a pool through its whole life over the message
// handlers: initialize, seed, trade, collect, lock.
func TestMsgServer_FullFlow(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)
	srv := keeper.NewMsgServerImpl(k)

	authority := types.TestAddr()
	creator := types.TestAddr()

	initResp, err := srv.InitializePool(ctx, types.NewMsgInitializePool(
		creator, 1, feeDenom, denomY, 30, authority, 0, math.ZeroInt(), ""))
	require.NoError(t, err)
	require.Equal(t, uint64(1), initResp.Seed)

	provider := testProvider()
	tk.Fund(provider, feeDenom, math.NewInt(1_000_000))
	tk.Fund(provider, denomY, math.NewInt(1_000_000))

	depositResp, err := srv.Deposit(ctx, types.NewMsgDeposit(
		provider.String(), 1, math.NewInt(990_000), math.NewInt(1_000_000), math.NewInt(1_000_000)))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(990_000), depositResp.Shares)
	require.Equal(t, math.NewInt(990_000), depositResp.AmountX)
	require.Equal(t, math.NewInt(1_000_000), depositResp.AmountY)

	trader := testProvider()
	tk.Fund(trader, denomY, math.NewInt(10_000))
	swapResp, err := srv.Swap(ctx, types.NewMsgSwap(
		trader.String(), 1, denomY, math.NewInt(10_000), math.NewInt(1)))
	require.NoError(t, err)
	require.Equal(t, uint32(30), swapResp.FeeBps)
	require.True(t, swapResp.AmountOut.IsPositive())

	collectResp, err := srv.CollectFees(ctx, &types.MsgCollectFees{
		Authority: authority,
		Seed:      1,
		Denom:     feeDenom,
		Sources:   []string{types.TestAddr()},
	})
	require.NoError(t, err)
	require.True(t, collectResp.Collected.IsPositive())

	withdrawResp, err := srv.Withdraw(ctx, types.NewMsgWithdraw(
		provider.String(), 1, math.NewInt(90_000), math.ZeroInt(), math.ZeroInt()))
	require.NoError(t, err)
	require.True(t, withdrawResp.AmountX.IsPositive())
	require.True(t, withdrawResp.AmountY.IsPositive())

	_, err = srv.LockPool(ctx, &types.MsgLockPool{Authority: authority, Seed: 1})
	require.NoError(t, err)

	_, err = srv.Swap(ctx, types.NewMsgSwap(
		trader.String(), 1, denomY, math.NewInt(1_000), math.NewInt(1)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrPoolLocked)

	_, err = srv.UnlockPool(ctx, &types.MsgUnlockPool{Authority: authority, Seed: 1})
	require.NoError(t, err)
}

func TestMsgServer_RejectsInvalidMessages(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.InitializePool(ctx, types.NewMsgInitializePool(
		"nope", 1, denomX, denomY, 30, "", 0, math.ZeroInt(), ""))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = srv.Deposit(ctx, types.NewMsgDeposit(
		types.TestAddr(), 1, math.ZeroInt(), math.NewInt(1), math.NewInt(1)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = srv.Swap(ctx, types.NewMsgSwap(
		types.TestAddr(), 1, "", math.NewInt(1), math.NewInt(1)))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidToken)
}
