package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/loko-chain/loko/testutil/keeper"
	"github.com/loko-chain/loko/x/amm/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

// Shared fixtures for keeper tests.

const (
	denomX      = "uloko"
	denomY      = "uusdc"
	feeDenom    = "ufee"
	hookDenom   = "uhook"
	hookProgram = "hook-prog-1"
)

// registerTestDenoms gives the mock token service one plain pair, one
// fee-on-transfer denom (1%, uncapped) and one hook-enabled denom.
func registerTestDenoms(tk *keepertest.MockTokenKeeper) {
	tk.SetProfile(denomX, types.FeeProfile{})
	tk.SetProfile(denomY, types.FeeProfile{})
	tk.SetProfile(feeDenom, types.FeeProfile{
		HasTransferFee: true,
		FeeBasisPoints: 100,
	})
	tk.SetProfile(hookDenom, types.FeeProfile{
		HasTransferHook: true,
		HookProgramID:   hookProgram,
	})
}

func initTestPool(t *testing.T, k keeper.Keeper, ctx sdk.Context, seed uint64, dx, dy, authority string) types.Pool {
	t.Helper()
	pool, err := k.InitializePool(ctx, types.NewMsgInitializePool(
		types.TestAddr(), seed, dx, dy, 30, authority, 0, math.ZeroInt(), ""))
	require.NoError(t, err)
	return pool
}

// seedTestLiquidity funds the provider and makes the seeding deposit that
// fixes the pool price. Amounts are gross maxima.
func seedTestLiquidity(t *testing.T, k keeper.Keeper, tk *keepertest.MockTokenKeeper, ctx sdk.Context, pool types.Pool, provider sdk.AccAddress, shares, maxX, maxY math.Int) {
	t.Helper()
	tk.Fund(provider, pool.DenomX, maxX)
	tk.Fund(provider, pool.DenomY, maxY)

	msg := types.NewMsgDeposit(provider.String(), pool.Seed, shares, maxX, maxY)
	minted, _, _, err := k.Deposit(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, shares, minted)
}

func testProvider() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(types.TestAddr())
}
