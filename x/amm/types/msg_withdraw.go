package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdraw{}

// MsgWithdraw defines a message to burn pool shares for both pool tokens.
// MinX and MinY are net bounds: the least the provider will accept after any
// transfer fee is deducted on the way out.
type MsgWithdraw struct {
	Provider     string      `json:"provider"`
	Seed         uint64      `json:"seed"`
	Shares       sdkmath.Int `json:"shares"`
	MinX         sdkmath.Int `json:"min_x"`
	MinY         sdkmath.Int `json:"min_y"`
	HookAccounts []string    `json:"hook_accounts,omitempty"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(provider string, seed uint64, shares, minX, minY sdkmath.Int) *MsgWithdraw {
	return &MsgWithdraw{
		Provider: provider,
		Seed:     seed,
		Shares:   shares,
		MinX:     minX,
		MinY:     minY,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdraw) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgWithdraw) Type() string {
	return "withdraw"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdraw) GetSignBytes() []byte {
	bz := Amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}
	if msg.MinX.IsNil() || msg.MinX.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min x must be non-negative")
	}
	if msg.MinY.IsNil() || msg.MinY.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min y must be non-negative")
	}

	return nil
}

// proto.Message plumbing for the hand-written type
func (msg *MsgWithdraw) Reset()         { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string { return proto.CompactTextString(msg) }
func (*MsgWithdraw) ProtoMessage()      {}
