package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/loko-chain/loko/x/amm/types"
)

var _ types.QueryServer = Keeper{}

// Params returns the module parameters
func (k Keeper) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryParamsResponse{
		Params: k.GetParams(goCtx),
	}, nil
}

// Pool queries a pool by seed
func (k Keeper) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	pool, err := k.GetPool(goCtx, req.Seed)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "pool %d not found", req.Seed)
	}

	return &types.QueryPoolResponse{Pool: pool}, nil
}

// Pools queries all pools with pagination
func (k Keeper) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	allPools, err := k.GetAllPools(goCtx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	pools := allPools
	pageRes := &query.PageResponse{Total: uint64(len(allPools))}

	if req.Pagination != nil {
		offset := req.Pagination.Offset
		limit := req.Pagination.Limit
		if limit == 0 {
			limit = 100
		}
		if offset > uint64(len(allPools)) {
			offset = uint64(len(allPools))
		}
		end := offset + limit
		if end > uint64(len(allPools)) {
			end = uint64(len(allPools))
		}
		pools = allPools[offset:end]
		if end < uint64(len(allPools)) {
			pageRes.NextKey = sdk.Uint64ToBigEndian(end)
		}
	}

	return &types.QueryPoolsResponse{
		Pools:      pools,
		Pagination: pageRes,
	}, nil
}

// Shares queries a provider's share balance in a pool
func (k Keeper) Shares(goCtx context.Context, req *types.QuerySharesRequest) (*types.QuerySharesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid provider address: %s", err)
	}
	if !k.HasPool(goCtx, req.Seed) {
		return nil, status.Errorf(codes.NotFound, "pool %d not found", req.Seed)
	}

	shares, err := k.GetShares(goCtx, req.Seed, provider)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QuerySharesResponse{Shares: shares}, nil
}

// FeeStats queries the velocity record for a denom
func (k Keeper) FeeStats(goCtx context.Context, req *types.QueryFeeStatsRequest) (*types.QueryFeeStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	stats, found := k.GetFeeStats(goCtx, req.Denom)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no fee stats for denom %s", req.Denom)
	}

	return &types.QueryFeeStatsResponse{Stats: stats}, nil
}

// SimulateSwap simulates a swap without executing it. The simulation prices
// the transfer fees on both legs exactly as Swap would.
func (k Keeper) SimulateSwap(goCtx context.Context, req *types.QuerySimulateSwapRequest) (*types.QuerySimulateSwapResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.AmountIn.IsNil() || !req.AmountIn.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "amount in must be positive")
	}

	pool, err := k.GetPool(goCtx, req.Seed)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "pool %d not found", req.Seed)
	}
	if !pool.HasDenom(req.DenomIn) {
		return nil, status.Errorf(codes.InvalidArgument, "denom %s is not in pool %d", req.DenomIn, req.Seed)
	}

	profileIn, err := k.tokenKeeper.FeeProfile(goCtx, req.DenomIn)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	feeBp := k.TradeFeeBps(goCtx, pool, req.DenomIn)
	netIn := profileIn.NetAfterFee(req.AmountIn)
	if !netIn.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "swap input is consumed entirely by the transfer fee")
	}

	reserveIn, reserveOut := pool.ReserveX, pool.ReserveY
	if req.DenomIn == pool.DenomY {
		reserveIn, reserveOut = pool.ReserveY, pool.ReserveX
	}

	amountOut, err := SwapOutput(reserveIn, reserveOut, netIn, feeBp)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return &types.QuerySimulateSwapResponse{
		AmountOut: amountOut,
		FeeBps:    feeBp,
	}, nil
}
