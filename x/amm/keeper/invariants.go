package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "vault-backing", VaultBackingInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return VaultBackingInvariant(k)(ctx)
	}
}

// PoolStateInvariant checks the structural invariants of every stored pool:
// valid denoms, bounded fees, and supply zero exactly when both reserves are.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-state", err.Error()), true
		}
		for _, pool := range pools {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Seed, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d structurally invalid pools\n%s", count, msg),
		), broken
	}
}

// ShareSupplyInvariant checks that each pool's share supply equals the sum of
// its providers' balances.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "share-supply", err.Error()), true
		}
		for _, pool := range pools {
			total := math.ZeroInt()
			err := k.IterateShares(ctx, pool.Seed, func(_ sdk.AccAddress, shares math.Int) bool {
				total = total.Add(shares)
				return false
			})
			if err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Seed, err)
				continue
			}
			if !total.Equal(pool.ShareSupply) {
				count++
				msg += fmt.Sprintf("pool %d: share supply %s != provider total %s\n",
					pool.Seed, pool.ShareSupply, total)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with inconsistent share supply\n%s", count, msg),
		), broken
	}
}

// VaultBackingInvariant checks that the module account holds at least the sum
// of all pool reserves per denom.
func VaultBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		totals := make(map[string]math.Int)
		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "vault-backing", err.Error()), true
		}
		for _, pool := range pools {
			for denom, reserve := range map[string]math.Int{
				pool.DenomX: pool.ReserveX,
				pool.DenomY: pool.ReserveY,
			} {
				if existing, ok := totals[denom]; ok {
					totals[denom] = existing.Add(reserve)
				} else {
					totals[denom] = reserve
				}
			}
		}

		for denom, required := range totals {
			balance := k.bankKeeper.GetBalance(ctx, k.vaultAddr, denom)
			if balance.Amount.LT(required) {
				count++
				msg += fmt.Sprintf("denom %s: vault balance %s < total reserves %s\n",
					denom, balance.Amount, required)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "vault-backing",
			fmt.Sprintf("found %d denoms with unbacked reserves\n%s", count, msg),
		), broken
	}
}
