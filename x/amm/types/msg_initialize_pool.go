package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgInitializePool{}

// MsgInitializePool defines a message to initialize a new liquidity pool.
type MsgInitializePool struct {
	Creator                string      `json:"creator"`
	Seed                   uint64      `json:"seed"`
	DenomX                 string      `json:"denom_x"`
	DenomY                 string      `json:"denom_y"`
	Fee                    uint32      `json:"fee"`
	Authority              string      `json:"authority,omitempty"`
	TransferFeeBasisPoints uint32      `json:"transfer_fee_basis_points"`
	MaxTransferFee         sdkmath.Int `json:"max_transfer_fee"`
	HookProgram            string      `json:"hook_program,omitempty"`
}

// NewMsgInitializePool creates a new MsgInitializePool instance
func NewMsgInitializePool(creator string, seed uint64, denomX, denomY string, fee uint32, authority string, transferFeeBp uint32, maxTransferFee sdkmath.Int, hookProgram string) *MsgInitializePool {
	return &MsgInitializePool{
		Creator:                creator,
		Seed:                   seed,
		DenomX:                 denomX,
		DenomY:                 denomY,
		Fee:                    fee,
		Authority:              authority,
		TransferFeeBasisPoints: transferFeeBp,
		MaxTransferFee:         maxTransferFee,
		HookProgram:            hookProgram,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgInitializePool) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgInitializePool) Type() string {
	return "initialize_pool"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgInitializePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitializePool) GetSignBytes() []byte {
	bz := Amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitializePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.DenomX); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "denom x: %s", err)
	}
	if err := sdk.ValidateDenom(msg.DenomY); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "denom y: %s", err)
	}
	if msg.DenomX == msg.DenomY {
		return sdkerrors.Wrap(ErrIdenticalMints, "pool denoms must be different")
	}

	if msg.Fee > MaxTradeFeeBasisPoints {
		return sdkerrors.Wrapf(ErrInvalidFee, "trade fee %dbp exceeds %dbp", msg.Fee, MaxTradeFeeBasisPoints)
	}
	if msg.TransferFeeBasisPoints > BasisPointDenominator {
		return sdkerrors.Wrapf(ErrInvalidFee, "transfer fee %dbp exceeds %dbp", msg.TransferFeeBasisPoints, BasisPointDenominator)
	}

	if msg.MaxTransferFee.IsNil() || msg.MaxTransferFee.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max transfer fee must be non-negative")
	}

	if msg.Authority != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
		}
	}

	return nil
}

// proto.Message plumbing for the hand-written type
func (msg *MsgInitializePool) Reset()         { *msg = MsgInitializePool{} }
func (msg *MsgInitializePool) String() string { return proto.CompactTextString(msg) }
func (*MsgInitializePool) ProtoMessage()      {}
