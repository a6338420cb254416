package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializePool{}, "amm/MsgInitializePool", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "amm/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "amm/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgLockPool{}, "amm/MsgLockPool", nil)
	cdc.RegisterConcrete(&MsgUnlockPool{}, "amm/MsgUnlockPool", nil)
	cdc.RegisterConcrete(&MsgCollectFees{}, "amm/MsgCollectFees", nil)
	cdc.RegisterConcrete(&MsgUpdateTransferFeeConfig{}, "amm/MsgUpdateTransferFeeConfig", nil)
	cdc.RegisterConcrete(&MsgUpdateFeeDestination{}, "amm/MsgUpdateFeeDestination", nil)
	cdc.RegisterConcrete(&MsgUpdateHookProgram{}, "amm/MsgUpdateHookProgram", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializePool{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgSwap{},
		&MsgLockPool{},
		&MsgUnlockPool{},
		&MsgCollectFees{},
		&MsgUpdateTransferFeeConfig{},
		&MsgUpdateFeeDestination{},
		&MsgUpdateHookProgram{},
	)
}

var (
	// Amino is the amino codec used for sign bytes and state encoding.
	Amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(Amino)
)

func init() {
	RegisterCodec(Amino)
	Amino.Seal()
}
