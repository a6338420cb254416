package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgDeposit{}

// MsgDeposit defines a message to deposit both pool tokens for shares.
// MaxX and MaxY are gross amounts: the most the provider is willing to send,
// transfer fees included. HookAccounts carries the caller-resolved auxiliary
// accounts for hook-enabled denoms.
type MsgDeposit struct {
	Provider     string      `json:"provider"`
	Seed         uint64      `json:"seed"`
	Shares       sdkmath.Int `json:"shares"`
	MaxX         sdkmath.Int `json:"max_x"`
	MaxY         sdkmath.Int `json:"max_y"`
	HookAccounts []string    `json:"hook_accounts,omitempty"`
}

// NewMsgDeposit creates a new MsgDeposit instance
func NewMsgDeposit(provider string, seed uint64, shares, maxX, maxY sdkmath.Int) *MsgDeposit {
	return &MsgDeposit{
		Provider: provider,
		Seed:     seed,
		Shares:   shares,
		MaxX:     maxX,
		MaxY:     maxY,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDeposit) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgDeposit) Type() string {
	return "deposit"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeposit) GetSignBytes() []byte {
	bz := Amino.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}
	if msg.MaxX.IsNil() || !msg.MaxX.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max x must be positive")
	}
	if msg.MaxY.IsNil() || !msg.MaxY.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max y must be positive")
	}

	return nil
}

// proto.Message plumbing for the hand-written type
func (msg *MsgDeposit) Reset()         { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string { return proto.CompactTextString(msg) }
func (*MsgDeposit) ProtoMessage()      {}
