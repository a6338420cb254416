package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidAmount        = errors.Register(ModuleName, 1, "invalid amount")
	ErrSlippageExceeded     = errors.Register(ModuleName, 2, "slippage exceeded")
	ErrMathOverflow         = errors.Register(ModuleName, 3, "math overflow")
	ErrUnderflow            = errors.Register(ModuleName, 4, "underflow detected")
	ErrInsufficientFunds    = errors.Register(ModuleName, 5, "insufficient funds")
	ErrInvalidToken         = errors.Register(ModuleName, 6, "invalid token")
	ErrIdenticalMints       = errors.Register(ModuleName, 7, "identical mints not allowed")
	ErrPoolLocked           = errors.Register(ModuleName, 8, "this pool is locked")
	ErrInvalidAuthority     = errors.Register(ModuleName, 9, "invalid update authority")
	ErrNoAuthoritySet       = errors.Register(ModuleName, 10, "no update authority set")
	ErrUnsupportedExtension = errors.Register(ModuleName, 11, "unsupported token extension")
	ErrTransferHookNotFound = errors.Register(ModuleName, 12, "transfer hook extension not found")
	ErrTransferFeeNotFound  = errors.Register(ModuleName, 13, "transfer fee extension not found")
	ErrInvalidFee           = errors.Register(ModuleName, 14, "fee is greater than the allowed maximum")
	ErrPoolNotFound         = errors.Register(ModuleName, 15, "pool not found")
	ErrPoolAlreadyExists    = errors.Register(ModuleName, 16, "pool already exists")
	ErrInvalidAddress       = errors.Register(ModuleName, 17, "invalid address")
	ErrHookProgramLimit     = errors.Register(ModuleName, 18, "approved hook program limit reached")
	ErrInvalidPoolState     = errors.Register(ModuleName, 19, "invalid pool state")
)
