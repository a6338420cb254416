package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgLockPool{}
	_ sdk.Msg = &MsgUnlockPool{}
	_ sdk.Msg = &MsgCollectFees{}
	_ sdk.Msg = &MsgUpdateTransferFeeConfig{}
	_ sdk.Msg = &MsgUpdateFeeDestination{}
	_ sdk.Msg = &MsgUpdateHookProgram{}
)

// MsgLockPool locks a pool against deposits, withdrawals and swaps.
type MsgLockPool struct {
	Authority string `json:"authority"`
	Seed      uint64 `json:"seed"`
}

func (msg MsgLockPool) Route() string { return RouterKey }
func (msg MsgLockPool) Type() string  { return "lock_pool" }

func (msg MsgLockPool) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgLockPool) GetSignBytes() []byte {
	return sdk.MustSortJSON(Amino.MustMarshalJSON(&msg))
}

func (msg MsgLockPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

func (msg *MsgLockPool) Reset()         { *msg = MsgLockPool{} }
func (msg *MsgLockPool) String() string { return proto.CompactTextString(msg) }
func (*MsgLockPool) ProtoMessage()      {}

// MsgUnlockPool reopens a locked pool.
type MsgUnlockPool struct {
	Authority string `json:"authority"`
	Seed      uint64 `json:"seed"`
}

func (msg MsgUnlockPool) Route() string { return RouterKey }
func (msg MsgUnlockPool) Type() string  { return "unlock_pool" }

func (msg MsgUnlockPool) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgUnlockPool) GetSignBytes() []byte {
	return sdk.MustSortJSON(Amino.MustMarshalJSON(&msg))
}

func (msg MsgUnlockPool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

func (msg *MsgUnlockPool) Reset()         { *msg = MsgUnlockPool{} }
func (msg *MsgUnlockPool) String() string { return proto.CompactTextString(msg) }
func (*MsgUnlockPool) ProtoMessage()      {}

// MsgCollectFees drains withheld transfer fees from the source accounts into
// the pool's fee destination.
type MsgCollectFees struct {
	Authority string   `json:"authority"`
	Seed      uint64   `json:"seed"`
	Denom     string   `json:"denom"`
	Sources   []string `json:"sources"`
}

func (msg MsgCollectFees) Route() string { return RouterKey }
func (msg MsgCollectFees) Type() string  { return "collect_fees" }

func (msg MsgCollectFees) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgCollectFees) GetSignBytes() []byte {
	return sdk.MustSortJSON(Amino.MustMarshalJSON(&msg))
}

func (msg MsgCollectFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidToken, "denom: %s", err)
	}
	if len(msg.Sources) == 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "at least one source account is required")
	}
	for _, src := range msg.Sources {
		if _, err := sdk.AccAddressFromBech32(src); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid source account %s: %s", src, err)
		}
	}
	return nil
}

func (msg *MsgCollectFees) Reset()         { *msg = MsgCollectFees{} }
func (msg *MsgCollectFees) String() string { return proto.CompactTextString(msg) }
func (*MsgCollectFees) ProtoMessage()      {}

// MsgUpdateTransferFeeConfig updates the pool's default transfer-fee settings.
type MsgUpdateTransferFeeConfig struct {
	Authority         string      `json:"authority"`
	Seed              uint64      `json:"seed"`
	NewFeeBasisPoints uint32      `json:"new_fee_basis_points"`
	NewMaxFee         sdkmath.Int `json:"new_max_fee"`
}

func (msg MsgUpdateTransferFeeConfig) Route() string { return RouterKey }
func (msg MsgUpdateTransferFeeConfig) Type() string  { return "update_transfer_fee_config" }

func (msg MsgUpdateTransferFeeConfig) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgUpdateTransferFeeConfig) GetSignBytes() []byte {
	return sdk.MustSortJSON(Amino.MustMarshalJSON(&msg))
}

func (msg MsgUpdateTransferFeeConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.NewFeeBasisPoints > BasisPointDenominator {
		return sdkerrors.Wrapf(ErrInvalidFee, "transfer fee %dbp exceeds %dbp", msg.NewFeeBasisPoints, BasisPointDenominator)
	}
	if msg.NewMaxFee.IsNil() || msg.NewMaxFee.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "max fee must be non-negative")
	}
	return nil
}

func (msg *MsgUpdateTransferFeeConfig) Reset()         { *msg = MsgUpdateTransferFeeConfig{} }
func (msg *MsgUpdateTransferFeeConfig) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateTransferFeeConfig) ProtoMessage()      {}

// MsgUpdateFeeDestination changes the account receiving collected fees.
type MsgUpdateFeeDestination struct {
	Authority      string `json:"authority"`
	Seed           uint64 `json:"seed"`
	NewDestination string `json:"new_destination"`
}

func (msg MsgUpdateFeeDestination) Route() string { return RouterKey }
func (msg MsgUpdateFeeDestination) Type() string  { return "update_fee_destination" }

func (msg MsgUpdateFeeDestination) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgUpdateFeeDestination) GetSignBytes() []byte {
	return sdk.MustSortJSON(Amino.MustMarshalJSON(&msg))
}

func (msg MsgUpdateFeeDestination) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewDestination); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid fee destination: %s", err)
	}
	return nil
}

func (msg *MsgUpdateFeeDestination) Reset()         { *msg = MsgUpdateFeeDestination{} }
func (msg *MsgUpdateFeeDestination) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateFeeDestination) ProtoMessage()      {}

// MsgUpdateHookProgram sets or clears the pool's default hook program. A new
// program joins the bounded approved set.
type MsgUpdateHookProgram struct {
	Authority      string `json:"authority"`
	Seed           uint64 `json:"seed"`
	NewHookProgram string `json:"new_hook_program,omitempty"`
}

func (msg MsgUpdateHookProgram) Route() string { return RouterKey }
func (msg MsgUpdateHookProgram) Type() string  { return "update_hook_program" }

func (msg MsgUpdateHookProgram) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Authority)}
}

func (msg MsgUpdateHookProgram) GetSignBytes() []byte {
	return sdk.MustSortJSON(Amino.MustMarshalJSON(&msg))
}

func (msg MsgUpdateHookProgram) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}

func (msg *MsgUpdateHookProgram) Reset()         { *msg = MsgUpdateHookProgram{} }
func (msg *MsgUpdateHookProgram) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateHookProgram) ProtoMessage()      {}
