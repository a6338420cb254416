package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap one pool token for the other.
// AmountIn is the gross amount the trader sends; MinAmountOut is checked
// against the net amount the trader receives after output-side fees.
type MsgSwap struct {
	Trader       string      `json:"trader"`
	Seed         uint64      `json:"seed"`
	DenomIn      string      `json:"denom_in"`
	AmountIn     sdkmath.Int `json:"amount_in"`
	MinAmountOut sdkmath.Int `json:"min_amount_out"`
	HookAccounts []string    `json:"hook_accounts,omitempty"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, seed uint64, denomIn string, amountIn, minAmountOut sdkmath.Int) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		Seed:         seed,
		DenomIn:      denomIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string {
	return "swap"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := Amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if err := sdk.ValidateDenom(msg.DenomIn); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "denom in: %s", err)
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out must be non-negative")
	}

	return nil
}

// proto.Message plumbing for the hand-written type
func (msg *MsgSwap) Reset()         { *msg = MsgSwap{} }
func (msg *MsgSwap) String() string { return proto.CompactTextString(msg) }
func (*MsgSwap) ProtoMessage()      {}
