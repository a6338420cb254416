package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// InitGenesis imports the module state.
func (k Keeper) InitGenesis(ctx context.Context, state types.GenesisState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis: %w", err)
	}

	if err := k.SetParams(ctx, state.Params); err != nil {
		return err
	}

	for _, pool := range state.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		k.setPoolByDenoms(ctx, pool.DenomX, pool.DenomY, pool.Seed)
	}

	for _, rec := range state.Shares {
		provider, err := sdk.AccAddressFromBech32(rec.Provider)
		if err != nil {
			return fmt.Errorf("share record provider %q: %w", rec.Provider, err)
		}
		if err := k.SetShares(ctx, rec.Seed, provider, rec.Shares); err != nil {
			return err
		}
	}

	for _, stats := range state.FeeStats {
		if err := k.SetFeeStats(ctx, stats); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}
	shares, err := k.GetAllShareRecords(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:   k.GetParams(ctx),
		Pools:    pools,
		Shares:   shares,
		FeeStats: k.GetAllFeeStats(ctx),
	}, nil
}
