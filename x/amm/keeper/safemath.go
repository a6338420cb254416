package keeper

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/loko-chain/loko/x/amm/types"
)

// SafeMath provides overflow-safe arithmetic operations for AMM module

var maxIntValue = new(big.Int).Exp(big.NewInt(2), big.NewInt(255), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())

	if result.CmpAbs(maxIntValue) >= 0 {
		return math.Int{}, sdkerrors.Wrap(types.ErrMathOverflow, "addition result exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, sdkerrors.Wrapf(types.ErrUnderflow, "cannot subtract %s from %s", b.String(), a.String())
	}

	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	// Handle zero cases early
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())

	if result.CmpAbs(maxIntValue) >= 0 {
		return math.Int{}, sdkerrors.Wrap(types.ErrMathOverflow, "multiplication result exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division by zero checking
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, sdkerrors.Wrap(types.ErrMathOverflow, "division by zero")
	}

	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c with overflow protection.
// The intermediate product may exceed the Int range; only the quotient is
// range-checked.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, sdkerrors.Wrap(types.ErrMathOverflow, "division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())

	if result.CmpAbs(maxIntValue) >= 0 {
		return math.Int{}, sdkerrors.Wrap(types.ErrMathOverflow, "quotient exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeAddUint64 adds two uint64 values with overflow checking
func SafeAddUint64(a, b uint64) (uint64, error) {
	if a > (1<<64 - 1 - b) {
		return 0, sdkerrors.Wrap(types.ErrMathOverflow, "uint64 addition overflow")
	}
	return a + b, nil
}
