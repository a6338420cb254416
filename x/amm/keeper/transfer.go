package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// transfer settles a gross amount between from and to through the token
// service, dispatching on the denom's extension profile, and returns the net
// amount the recipient is credited. Hook-enabled denoms feed the velocity
// record after settlement so the dynamic fee reflects completed transfers
// only.
func (k Keeper) transfer(ctx context.Context, denom string, from, to sdk.AccAddress, gross math.Int, hookAccounts []string) (math.Int, error) {
	if !gross.IsPositive() {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidAmount, "transfer of %s %s", gross, denom)
	}

	profile, err := k.tokenKeeper.FeeProfile(ctx, denom)
	if err != nil {
		return math.Int{}, sdkerrors.Wrapf(types.ErrInvalidToken, "denom %s: %v", denom, err)
	}

	switch {
	case profile.HasTransferHook:
		// Hook dispatch wins when a denom carries both extensions: the hook
		// needs its resolved accounts, while any transfer fee is still
		// enforced by the token service in flight.
		if err := k.tokenKeeper.TransferWithHook(ctx, denom, from, to, gross, hookAccounts); err != nil {
			return math.Int{}, sdkerrors.Wrapf(types.ErrInsufficientFunds, "transfer %s %s: %v", gross, denom, err)
		}
	case profile.HasTransferFee:
		// Declare the fee we derived so a drifted fee config fails loudly
		// instead of silently starving the vault.
		expectedFee := profile.Fee(gross)
		if err := k.tokenKeeper.TransferWithFee(ctx, denom, from, to, gross, expectedFee); err != nil {
			return math.Int{}, sdkerrors.Wrapf(types.ErrInsufficientFunds, "transfer %s %s: %v", gross, denom, err)
		}
	default:
		if err := k.tokenKeeper.Transfer(ctx, denom, from, to, gross); err != nil {
			return math.Int{}, sdkerrors.Wrapf(types.ErrInsufficientFunds, "transfer %s %s: %v", gross, denom, err)
		}
	}

	if profile.HasTransferHook {
		if _, err := k.RecordTransfer(ctx, denom, gross); err != nil {
			return math.Int{}, err
		}
	}

	return profile.NetAfterFee(gross), nil
}

// transferIn settles gross from the user into the vault.
func (k Keeper) transferIn(ctx context.Context, denom string, from sdk.AccAddress, gross math.Int, hookAccounts []string) (math.Int, error) {
	return k.transfer(ctx, denom, from, k.vaultAddr, gross, hookAccounts)
}

// transferOut settles gross from the vault to the user.
func (k Keeper) transferOut(ctx context.Context, denom string, to sdk.AccAddress, gross math.Int, hookAccounts []string) (math.Int, error) {
	return k.transfer(ctx, denom, k.vaultAddr, to, gross, hookAccounts)
}
