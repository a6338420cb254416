package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/loko-chain/loko/x/amm/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

// FuzzSwapOutput checks the curve never panics, never drains the output
// reserve, and never lets the reserve product decrease.
func FuzzSwapOutput(f *testing.F) {
	f.Add(int64(1_000_000), int64(1_000_000), int64(10_000), uint32(30))
	f.Add(int64(1), int64(1), int64(1), uint32(0))
	f.Add(int64(1<<60), int64(3), int64(1<<60), uint32(100))
	f.Add(int64(7), int64(1<<62), int64(999), uint32(9_999))

	f.Fuzz(func(t *testing.T, reserveIn, reserveOut, amountIn int64, feeBp uint32) {
		if reserveIn <= 0 || reserveOut <= 0 || amountIn <= 0 {
			return
		}

		out, err := keeper.SwapOutput(
			math.NewInt(reserveIn), math.NewInt(reserveOut), math.NewInt(amountIn), feeBp)
		if err != nil {
			return
		}

		require.True(t, out.IsPositive() || out.IsZero())
		require.True(t, out.LT(math.NewInt(reserveOut)))

		before := new(big.Int).Mul(big.NewInt(reserveIn), big.NewInt(reserveOut))
		after := new(big.Int).Mul(
			new(big.Int).Add(big.NewInt(reserveIn), big.NewInt(amountIn)),
			new(big.Int).Sub(big.NewInt(reserveOut), out.BigInt()),
		)
		require.True(t, after.Cmp(before) >= 0,
			"product decreased: in=%d reserves=%d/%d fee=%d out=%s", amountIn, reserveIn, reserveOut, feeBp, out)
	})
}

// FuzzGrossForNet checks the gross/net reconciliation identity: sending the
// grossed-up amount always nets at least the target, overshooting by at most
// one unit.
func FuzzGrossForNet(f *testing.F) {
	f.Add(int64(9_970), uint32(30))
	f.Add(int64(1), uint32(1))
	f.Add(int64(1<<62), uint32(9_999))
	f.Add(int64(1_000_000), uint32(0))

	f.Fuzz(func(t *testing.T, net int64, feeBp uint32) {
		if net <= 0 {
			return
		}
		profile := types.FeeProfile{
			HasTransferFee: feeBp > 0,
			FeeBasisPoints: feeBp,
		}

		gross, err := profile.GrossForNet(math.NewInt(net))
		if err != nil {
			require.GreaterOrEqual(t, feeBp, uint32(types.BasisPointDenominator))
			return
		}

		delivered := profile.NetAfterFee(gross)
		require.True(t, delivered.GTE(math.NewInt(net)),
			"net=%d bp=%d gross=%s delivered=%s", net, feeBp, gross, delivered)
		require.True(t, delivered.Sub(math.NewInt(net)).LTE(math.OneInt()),
			"net=%d bp=%d overshoot=%s", net, feeBp, delivered.Sub(math.NewInt(net)))
	})
}

// FuzzSafeMulDiv checks the checked arithmetic helpers reject overflow
// instead of wrapping.
func FuzzSafeMulDiv(f *testing.F) {
	f.Add(int64(1<<62), int64(1<<62), int64(1))
	f.Add(int64(100), int64(200), int64(7))
	f.Add(int64(1), int64(1), int64(1))

	f.Fuzz(func(t *testing.T, a, b, c int64) {
		if c == 0 {
			return
		}

		result, err := keeper.SafeMulDiv(math.NewInt(a), math.NewInt(b), math.NewInt(c))
		if err != nil {
			require.ErrorIs(t, err, types.ErrMathOverflow)
			return
		}

		expected := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
		expected.Quo(expected, big.NewInt(c))
		require.Equal(t, expected.String(), result.BigInt().String())
	})
}
