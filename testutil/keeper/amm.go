package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/loko-chain/loko/x/amm/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

// MockTokenKeeper is an in-memory token service for keeper tests. It applies
// transfer fees the way the real service would: the fee is deducted in flight
// and accumulates as a withheld balance per denom.
type MockTokenKeeper struct {
	Profiles map[string]types.FeeProfile
	Flags    map[string]types.DenomFlags
	Balances map[string]map[string]math.Int // address -> denom -> amount
	Withheld map[string]math.Int            // denom -> withheld fees

	// HookAccountsSeen records the auxiliary accounts passed to hook
	// transfers, most recent last.
	HookAccountsSeen [][]string
}

// NewMockTokenKeeper returns an empty mock token service.
func NewMockTokenKeeper() *MockTokenKeeper {
	return &MockTokenKeeper{
		Profiles: make(map[string]types.FeeProfile),
		Flags:    make(map[string]types.DenomFlags),
		Balances: make(map[string]map[string]math.Int),
		Withheld: make(map[string]math.Int),
	}
}

var _ types.TokenKeeper = (*MockTokenKeeper)(nil)

// SetProfile registers a denom's fee profile.
func (m *MockTokenKeeper) SetProfile(denom string, profile types.FeeProfile) {
	m.Profiles[denom] = profile
}

// SetFlags registers a denom's feature flags.
func (m *MockTokenKeeper) SetFlags(denom string, flags types.DenomFlags) {
	m.Flags[denom] = flags
}

// Fund credits an account with amount of denom.
func (m *MockTokenKeeper) Fund(addr sdk.AccAddress, denom string, amount math.Int) {
	balances, ok := m.Balances[addr.String()]
	if !ok {
		balances = make(map[string]math.Int)
		m.Balances[addr.String()] = balances
	}
	existing, ok := balances[denom]
	if !ok {
		existing = math.ZeroInt()
	}
	balances[denom] = existing.Add(amount)
}

// BalanceOf returns an account's balance of denom.
func (m *MockTokenKeeper) BalanceOf(addr sdk.AccAddress, denom string) math.Int {
	balances, ok := m.Balances[addr.String()]
	if !ok {
		return math.ZeroInt()
	}
	amount, ok := balances[denom]
	if !ok {
		return math.ZeroInt()
	}
	return amount
}

// FeeProfile implements types.TokenKeeper.
func (m *MockTokenKeeper) FeeProfile(_ context.Context, denom string) (types.FeeProfile, error) {
	return m.Profiles[denom], nil
}

// DenomFlags implements types.TokenKeeper.
func (m *MockTokenKeeper) DenomFlags(_ context.Context, denom string) (types.DenomFlags, error) {
	return m.Flags[denom], nil
}

func (m *MockTokenKeeper) move(denom string, from, to sdk.AccAddress, amount math.Int) error {
	profile := m.Profiles[denom]
	fee := profile.Fee(amount)

	balance := m.BalanceOf(from, denom)
	if balance.LT(amount) {
		return fmt.Errorf("insufficient funds: %s has %s %s, needs %s", from, balance, denom, amount)
	}
	m.Balances[from.String()][denom] = balance.Sub(amount)
	m.Fund(to, denom, amount.Sub(fee))

	if fee.IsPositive() {
		withheld, ok := m.Withheld[denom]
		if !ok {
			withheld = math.ZeroInt()
		}
		m.Withheld[denom] = withheld.Add(fee)
	}
	return nil
}

// Transfer implements types.TokenKeeper.
func (m *MockTokenKeeper) Transfer(_ context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	return m.move(denom, from, to, amount)
}

// TransferWithFee implements types.TokenKeeper.
func (m *MockTokenKeeper) TransferWithFee(_ context.Context, denom string, from, to sdk.AccAddress, amount, expectedFee math.Int) error {
	fee := m.Profiles[denom].Fee(amount)
	if !fee.Equal(expectedFee) {
		return fmt.Errorf("declared fee %s does not match enforced fee %s", expectedFee, fee)
	}
	return m.move(denom, from, to, amount)
}

// TransferWithHook implements types.TokenKeeper.
func (m *MockTokenKeeper) TransferWithHook(_ context.Context, denom string, from, to sdk.AccAddress, amount math.Int, hookAccounts []string) error {
	m.HookAccountsSeen = append(m.HookAccountsSeen, hookAccounts)
	return m.move(denom, from, to, amount)
}

// WithdrawWithheldFees implements types.TokenKeeper.
func (m *MockTokenKeeper) WithdrawWithheldFees(_ context.Context, denom string, _ []sdk.AccAddress, destination sdk.AccAddress) (math.Int, error) {
	withheld, ok := m.Withheld[denom]
	if !ok || withheld.IsZero() {
		return math.ZeroInt(), nil
	}
	m.Withheld[denom] = math.ZeroInt()
	m.Fund(destination, denom, withheld)
	return withheld, nil
}

// MockBankKeeper reads balances straight from the mock token service.
type MockBankKeeper struct {
	Tokens *MockTokenKeeper
}

var _ types.BankKeeper = MockBankKeeper{}

// GetBalance implements types.BankKeeper.
func (m MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.Coin{Denom: denom, Amount: m.Tokens.BalanceOf(addr, denom)}
}

// AmmKeeper creates a test keeper for the AMM module backed by an in-memory
// multistore and the mock token service.
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockTokenKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	tokens := NewMockTokenKeeper()
	k := keeper.NewKeeper(
		types.Amino,
		storeKey,
		tokens,
		MockBankKeeper{Tokens: tokens},
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return *k, tokens, ctx
}
