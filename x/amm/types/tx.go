package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializePool(context.Context, *MsgInitializePool) (*MsgInitializePoolResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	LockPool(context.Context, *MsgLockPool) (*MsgLockPoolResponse, error)
	UnlockPool(context.Context, *MsgUnlockPool) (*MsgUnlockPoolResponse, error)
	CollectFees(context.Context, *MsgCollectFees) (*MsgCollectFeesResponse, error)
	UpdateTransferFeeConfig(context.Context, *MsgUpdateTransferFeeConfig) (*MsgUpdateTransferFeeConfigResponse, error)
	UpdateFeeDestination(context.Context, *MsgUpdateFeeDestination) (*MsgUpdateFeeDestinationResponse, error)
	UpdateHookProgram(context.Context, *MsgUpdateHookProgram) (*MsgUpdateHookProgramResponse, error)
}

// Response types

// MsgInitializePoolResponse defines the response for InitializePool
type MsgInitializePoolResponse struct {
	Seed uint64 `json:"seed"`
}

// MsgDepositResponse defines the response for Deposit
type MsgDepositResponse struct {
	Shares  math.Int `json:"shares"`
	AmountX math.Int `json:"amount_x"`
	AmountY math.Int `json:"amount_y"`
}

// MsgWithdrawResponse defines the response for Withdraw
type MsgWithdrawResponse struct {
	AmountX math.Int `json:"amount_x"`
	AmountY math.Int `json:"amount_y"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
	FeeBps    uint32   `json:"fee_bps"`
}

// MsgLockPoolResponse defines the response for LockPool
type MsgLockPoolResponse struct{}

// MsgUnlockPoolResponse defines the response for UnlockPool
type MsgUnlockPoolResponse struct{}

// MsgCollectFeesResponse defines the response for CollectFees
type MsgCollectFeesResponse struct {
	Collected math.Int `json:"collected"`
}

// MsgUpdateTransferFeeConfigResponse defines the response for UpdateTransferFeeConfig
type MsgUpdateTransferFeeConfigResponse struct{}

// MsgUpdateFeeDestinationResponse defines the response for UpdateFeeDestination
type MsgUpdateFeeDestinationResponse struct{}

// MsgUpdateHookProgramResponse defines the response for UpdateHookProgram
type MsgUpdateHookProgramResponse struct{}
