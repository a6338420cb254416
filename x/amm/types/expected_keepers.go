package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenKeeper is the token transfer service the module invokes and never
// implements. It owns account bookkeeping, fee withholding and hook execution;
// the amm core only derives amounts and issues instructions against it.
type TokenKeeper interface {
	// FeeProfile resolves the transfer-fee and hook metadata for a denom.
	FeeProfile(ctx context.Context, denom string) (FeeProfile, error)

	// DenomFlags reports features the pool cannot safely support.
	DenomFlags(ctx context.Context, denom string) (DenomFlags, error)

	// Transfer moves amount of denom from one account to another. The token
	// service deducts any transfer fee from the amount in flight.
	Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount sdkmath.Int) error

	// TransferWithFee is the fee-declaring variant: it fails if the fee the
	// token service enforces does not equal expectedFee.
	TransferWithFee(ctx context.Context, denom string, from, to sdk.AccAddress, amount, expectedFee sdkmath.Int) error

	// TransferWithHook is the hook-aware variant: hookAccounts carries the
	// caller-resolved auxiliary accounts the denom's hook program requires.
	TransferWithHook(ctx context.Context, denom string, from, to sdk.AccAddress, amount sdkmath.Int, hookAccounts []string) error

	// WithdrawWithheldFees drains withheld transfer fees for denom from the
	// source accounts into destination, returning the total collected.
	WithdrawWithheldFees(ctx context.Context, denom string, sources []sdk.AccAddress, destination sdk.AccAddress) (sdkmath.Int, error)
}

// BankKeeper is the minimal balance surface used by module invariants to
// check that vault reserves are backed by the module account.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}
