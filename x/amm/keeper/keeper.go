package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/loko-chain/loko/x/amm/types"
)

// Keeper of the amm store
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         *codec.LegacyAmino
	tokenKeeper types.TokenKeeper
	bankKeeper  types.BankKeeper
	vaultAddr   sdk.AccAddress
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	tokenKeeper types.TokenKeeper,
	bankKeeper types.BankKeeper,
) *Keeper {
	return &Keeper{
		storeKey:    key,
		cdc:         cdc,
		tokenKeeper: tokenKeeper,
		bankKeeper:  bankKeeper,
		vaultAddr:   authtypes.NewModuleAddress(types.ModuleName),
	}
}

// VaultAddress returns the module account holding all pool reserves.
func (k Keeper) VaultAddress() sdk.AccAddress {
	return k.vaultAddr
}

// Logger returns a module-scoped logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
