package keeper

import (
	"context"
	"fmt"

	"github.com/loko-chain/loko/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitializePool handles the creation of a new empty pool
func (ms msgServer) InitializePool(goCtx context.Context, msg *types.MsgInitializePool) (*types.MsgInitializePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializePool: validate: %w", err)
	}

	pool, err := ms.Keeper.InitializePool(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("InitializePool: %w", err)
	}

	return &types.MsgInitializePoolResponse{Seed: pool.Seed}, nil
}

// Deposit handles a proportional liquidity deposit
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	shares, amountX, amountY, err := ms.Keeper.Deposit(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	return &types.MsgDepositResponse{
		Shares:  shares,
		AmountX: amountX,
		AmountY: amountY,
	}, nil
}

// Withdraw handles burning shares for the underlying reserves
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	amountX, amountY, err := ms.Keeper.Withdraw(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{
		AmountX: amountX,
		AmountY: amountY,
	}, nil
}

// Swap handles a constant-product trade
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	amountOut, feeBp, err := ms.Keeper.Swap(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut: amountOut,
		FeeBps:    feeBp,
	}, nil
}

// LockPool handles freezing a pool
func (ms msgServer) LockPool(goCtx context.Context, msg *types.MsgLockPool) (*types.MsgLockPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("LockPool: validate: %w", err)
	}

	if err := ms.Keeper.LockPool(goCtx, msg.Authority, msg.Seed); err != nil {
		return nil, fmt.Errorf("LockPool: %w", err)
	}

	return &types.MsgLockPoolResponse{}, nil
}

// UnlockPool handles reopening a locked pool
func (ms msgServer) UnlockPool(goCtx context.Context, msg *types.MsgUnlockPool) (*types.MsgUnlockPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UnlockPool: validate: %w", err)
	}

	if err := ms.Keeper.UnlockPool(goCtx, msg.Authority, msg.Seed); err != nil {
		return nil, fmt.Errorf("UnlockPool: %w", err)
	}

	return &types.MsgUnlockPoolResponse{}, nil
}

// CollectFees handles sweeping withheld transfer fees
func (ms msgServer) CollectFees(goCtx context.Context, msg *types.MsgCollectFees) (*types.MsgCollectFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CollectFees: validate: %w", err)
	}

	collected, err := ms.Keeper.CollectFees(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("CollectFees: %w", err)
	}

	return &types.MsgCollectFeesResponse{Collected: collected}, nil
}

// UpdateTransferFeeConfig handles replacing a pool's default transfer fee
func (ms msgServer) UpdateTransferFeeConfig(goCtx context.Context, msg *types.MsgUpdateTransferFeeConfig) (*types.MsgUpdateTransferFeeConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateTransferFeeConfig: validate: %w", err)
	}

	if err := ms.Keeper.UpdateTransferFeeConfig(goCtx, msg); err != nil {
		return nil, fmt.Errorf("UpdateTransferFeeConfig: %w", err)
	}

	return &types.MsgUpdateTransferFeeConfigResponse{}, nil
}

// UpdateFeeDestination handles rerouting collected fees
func (ms msgServer) UpdateFeeDestination(goCtx context.Context, msg *types.MsgUpdateFeeDestination) (*types.MsgUpdateFeeDestinationResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateFeeDestination: validate: %w", err)
	}

	if err := ms.Keeper.UpdateFeeDestination(goCtx, msg); err != nil {
		return nil, fmt.Errorf("UpdateFeeDestination: %w", err)
	}

	return &types.MsgUpdateFeeDestinationResponse{}, nil
}

// UpdateHookProgram handles setting or clearing a pool's default hook program
func (ms msgServer) UpdateHookProgram(goCtx context.Context, msg *types.MsgUpdateHookProgram) (*types.MsgUpdateHookProgramResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateHookProgram: validate: %w", err)
	}

	if err := ms.Keeper.UpdateHookProgram(goCtx, msg); err != nil {
		return nil, fmt.Errorf("UpdateHookProgram: %w", err)
	}

	return &types.MsgUpdateHookProgramResponse{}, nil
}
