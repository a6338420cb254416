package keeper

import (
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// Query paths routed by NewQuerier.
const (
	QueryParams       = "params"
	QueryPool         = "pool"
	QueryPools        = "pools"
	QueryShares       = "shares"
	QueryFeeStats     = "fee-stats"
	QuerySimulateSwap = "simulate-swap"
)

// NewQuerier routes legacy ABCI query paths to the query server. Requests and
// responses are amino JSON.
func NewQuerier(k Keeper) func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		if len(path) == 0 {
			return nil, types.ErrInvalidAmount.Wrap("empty query path")
		}

		switch path[0] {
		case QueryParams:
			res, err := k.Params(ctx, &types.QueryParamsRequest{})
			if err != nil {
				return nil, err
			}
			return types.Amino.MarshalJSON(res)

		case QueryPool:
			var q types.QueryPoolRequest
			if err := types.Amino.UnmarshalJSON(req.Data, &q); err != nil {
				return nil, err
			}
			res, err := k.Pool(ctx, &q)
			if err != nil {
				return nil, err
			}
			return types.Amino.MarshalJSON(res)

		case QueryPools:
			var q types.QueryPoolsRequest
			if len(req.Data) > 0 {
				if err := types.Amino.UnmarshalJSON(req.Data, &q); err != nil {
					return nil, err
				}
			}
			res, err := k.Pools(ctx, &q)
			if err != nil {
				return nil, err
			}
			return types.Amino.MarshalJSON(res)

		case QueryShares:
			var q types.QuerySharesRequest
			if err := types.Amino.UnmarshalJSON(req.Data, &q); err != nil {
				return nil, err
			}
			res, err := k.Shares(ctx, &q)
			if err != nil {
				return nil, err
			}
			return types.Amino.MarshalJSON(res)

		case QueryFeeStats:
			var q types.QueryFeeStatsRequest
			if err := types.Amino.UnmarshalJSON(req.Data, &q); err != nil {
				return nil, err
			}
			res, err := k.FeeStats(ctx, &q)
			if err != nil {
				return nil, err
			}
			return types.Amino.MarshalJSON(res)

		case QuerySimulateSwap:
			var q types.QuerySimulateSwapRequest
			if err := types.Amino.UnmarshalJSON(req.Data, &q); err != nil {
				return nil, err
			}
			res, err := k.SimulateSwap(ctx, &q)
			if err != nil {
				return nil, err
			}
			return types.Amino.MarshalJSON(res)

		default:
			return nil, types.ErrInvalidAmount.Wrapf("unknown query path %s", path[0])
		}
	}
}
