package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loko-chain/loko/testutil/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

func TestGenesis_RoundTrip(t *testing.T) {
	k, tk, ctx := keepertest.AmmKeeper(t)
	registerTestDenoms(tk)

	pool := initTestPool(t, k, ctx, 1, denomX, denomY, types.TestAddr())
	provider := testProvider()
	seedTestLiquidity(t, k, tk, ctx, pool, provider,
		math.NewInt(1_000_000), math.NewInt(1_000_000), math.NewInt(2_000_000))

	initTestPool(t, k, ctx, 2, hookDenom, denomY, "")

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 2)
	require.Len(t, exported.Shares, 1)
	require.Len(t, exported.FeeStats, 1)

	// Import into a fresh keeper and compare the exports.
	k2, _, ctx2 := keepertest.AmmKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	reExported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reExported)

	// The denom index survives the round trip.
	seed, found := k2.GetPoolSeedByDenoms(ctx2, denomX, denomY)
	require.True(t, found)
	require.Equal(t, uint64(1), seed)
}

func TestInitGenesis_RejectsInvalidState(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	state := types.GenesisState{
		Params: types.Params{BaseDynamicFeeBasisPoints: 0},
	}
	require.Error(t, k.InitGenesis(ctx, state))
}

func TestParams_SetGet(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)

	require.Equal(t, types.DefaultParams(), k.GetParams(ctx))

	params := types.Params{
		MaxTradeFeeBasisPoints:    500,
		MaxTransferFeeBasisPoints: 1_000,
		BaseDynamicFeeBasisPoints: 20,
		MaxDynamicFeeBasisPoints:  400,
	}
	require.NoError(t, k.SetParams(ctx, params))
	require.Equal(t, params, k.GetParams(ctx))

	require.Error(t, k.SetParams(ctx, types.Params{BaseDynamicFeeBasisPoints: 0}))
}
