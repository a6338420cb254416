package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// GetShares retrieves a provider's share balance in a pool
func (k Keeper) GetShares(ctx context.Context, seed uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(ShareKey(seed, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetShares sets a provider's share balance in a pool, deleting the record
// when shares reach zero.
func (k Keeper) SetShares(ctx context.Context, seed uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(ShareKey(seed, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(ShareKey(seed, provider), bz)
	return nil
}

// IterateShares calls cb for every share balance in a pool.
func (k Keeper) IterateShares(ctx context.Context, seed uint64, cb func(provider sdk.AccAddress, shares math.Int) bool) error {
	store := k.getStore(ctx)
	prefix := ShareKeyByPoolPrefix(seed)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(provider, shares) {
			break
		}
	}
	return nil
}

// GetAllShareRecords exports every share balance across all pools.
func (k Keeper) GetAllShareRecords(ctx context.Context) ([]types.ShareRecord, error) {
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	var records []types.ShareRecord
	for _, pool := range pools {
		err := k.IterateShares(ctx, pool.Seed, func(provider sdk.AccAddress, shares math.Int) bool {
			records = append(records, types.ShareRecord{
				Seed:     pool.Seed,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}
