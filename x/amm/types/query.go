package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Shares(context.Context, *QuerySharesRequest) (*QuerySharesResponse, error)
	FeeStats(context.Context, *QueryFeeStatsRequest) (*QueryFeeStatsResponse, error)
	SimulateSwap(context.Context, *QuerySimulateSwapRequest) (*QuerySimulateSwapResponse, error)
}

// QueryParamsRequest requests the module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests a pool by seed
type QueryPoolRequest struct {
	Seed uint64 `json:"seed"`
}

// QueryPoolResponse returns a single pool
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests all pools with pagination
type QueryPoolsRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryPoolsResponse returns pools with pagination metadata
type QueryPoolsResponse struct {
	Pools      []Pool              `json:"pools"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QuerySharesRequest requests a provider's share balance in a pool
type QuerySharesRequest struct {
	Seed     uint64 `json:"seed"`
	Provider string `json:"provider"`
}

// QuerySharesResponse returns a share balance
type QuerySharesResponse struct {
	Shares math.Int `json:"shares"`
}

// QueryFeeStatsRequest requests the velocity record for a denom
type QueryFeeStatsRequest struct {
	Denom string `json:"denom"`
}

// QueryFeeStatsResponse returns a velocity record
type QueryFeeStatsResponse struct {
	Stats DynamicFeeStats `json:"stats"`
}

// QuerySimulateSwapRequest simulates a swap without executing it
type QuerySimulateSwapRequest struct {
	Seed     uint64   `json:"seed"`
	DenomIn  string   `json:"denom_in"`
	AmountIn math.Int `json:"amount_in"`
}

// QuerySimulateSwapResponse returns the simulated output
type QuerySimulateSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
	FeeBps    uint32   `json:"fee_bps"`
}
