package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestMsgInitializePool_ValidateBasic(t *testing.T) {
	creator := TestAddr()

	valid := func() *MsgInitializePool {
		return NewMsgInitializePool(creator, 1, "uloko", "uusdc", 30, "", 0, math.ZeroInt(), "")
	}

	tests := []struct {
		name    string
		mutate  func(m *MsgInitializePool)
		wantErr error
	}{
		{
			name:   "valid minimal",
			mutate: func(m *MsgInitializePool) {},
		},
		{
			name: "valid with authority and extensions",
			mutate: func(m *MsgInitializePool) {
				m.Authority = TestAddr()
				m.TransferFeeBasisPoints = 50
				m.MaxTransferFee = math.NewInt(1_000)
				m.HookProgram = "prog-1"
			},
		},
		{
			name:    "bad creator",
			mutate:  func(m *MsgInitializePool) { m.Creator = "nope" },
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "bad denom",
			mutate:  func(m *MsgInitializePool) { m.DenomX = "" },
			wantErr: ErrInvalidToken,
		},
		{
			name:    "identical denoms",
			mutate:  func(m *MsgInitializePool) { m.DenomY = m.DenomX },
			wantErr: ErrIdenticalMints,
		},
		{
			name:    "trade fee above cap",
			mutate:  func(m *MsgInitializePool) { m.Fee = MaxTradeFeeBasisPoints + 1 },
			wantErr: ErrInvalidFee,
		},
		{
			name:    "transfer fee above 100%",
			mutate:  func(m *MsgInitializePool) { m.TransferFeeBasisPoints = BasisPointDenominator + 1 },
			wantErr: ErrInvalidFee,
		},
		{
			name:    "nil max transfer fee",
			mutate:  func(m *MsgInitializePool) { m.MaxTransferFee = math.Int{} },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "bad authority",
			mutate:  func(m *MsgInitializePool) { m.Authority = "nope" },
			wantErr: ErrInvalidAddress,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := valid()
			tc.mutate(msg)
			err := msg.ValidateBasic()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestMsgDeposit_ValidateBasic(t *testing.T) {
	provider := TestAddr()
	one := math.NewInt(1)

	require.NoError(t, NewMsgDeposit(provider, 1, one, one, one).ValidateBasic())

	require.ErrorIs(t,
		NewMsgDeposit("nope", 1, one, one, one).ValidateBasic(), ErrInvalidAddress)
	require.ErrorIs(t,
		NewMsgDeposit(provider, 1, math.ZeroInt(), one, one).ValidateBasic(), ErrInvalidAmount)
	require.ErrorIs(t,
		NewMsgDeposit(provider, 1, one, math.Int{}, one).ValidateBasic(), ErrInvalidAmount)
	require.ErrorIs(t,
		NewMsgDeposit(provider, 1, one, one, math.NewInt(-1)).ValidateBasic(), ErrInvalidAmount)
}

func TestMsgWithdraw_ValidateBasic(t *testing.T) {
	provider := TestAddr()
	one := math.NewInt(1)
	zero := math.ZeroInt()

	require.NoError(t, NewMsgWithdraw(provider, 1, one, zero, zero).ValidateBasic())

	require.ErrorIs(t,
		NewMsgWithdraw("nope", 1, one, zero, zero).ValidateBasic(), ErrInvalidAddress)
	require.ErrorIs(t,
		NewMsgWithdraw(provider, 1, zero, zero, zero).ValidateBasic(), ErrInvalidAmount)
	require.ErrorIs(t,
		NewMsgWithdraw(provider, 1, one, math.NewInt(-1), zero).ValidateBasic(), ErrInvalidAmount)
}

func TestMsgSwap_ValidateBasic(t *testing.T) {
	trader := TestAddr()
	in := math.NewInt(10_000)
	minOut := math.NewInt(9_000)

	require.NoError(t, NewMsgSwap(trader, 1, "uloko", in, minOut).ValidateBasic())

	require.ErrorIs(t,
		NewMsgSwap("nope", 1, "uloko", in, minOut).ValidateBasic(), ErrInvalidAddress)
	require.ErrorIs(t,
		NewMsgSwap(trader, 1, "", in, minOut).ValidateBasic(), ErrInvalidToken)
	require.ErrorIs(t,
		NewMsgSwap(trader, 1, "uloko", math.ZeroInt(), minOut).ValidateBasic(), ErrInvalidAmount)
	require.ErrorIs(t,
		NewMsgSwap(trader, 1, "uloko", in, math.NewInt(-1)).ValidateBasic(), ErrInvalidAmount)
}

func TestAdminMsgs_ValidateBasic(t *testing.T) {
	authority := TestAddr()
	source := TestAddr()

	require.NoError(t, MsgLockPool{Authority: authority, Seed: 1}.ValidateBasic())
	require.ErrorIs(t, MsgLockPool{Authority: "nope"}.ValidateBasic(), ErrInvalidAddress)

	require.NoError(t, MsgUnlockPool{Authority: authority, Seed: 1}.ValidateBasic())
	require.ErrorIs(t, MsgUnlockPool{Authority: "nope"}.ValidateBasic(), ErrInvalidAddress)

	collect := MsgCollectFees{Authority: authority, Seed: 1, Denom: "ufee", Sources: []string{source}}
	require.NoError(t, collect.ValidateBasic())
	require.ErrorIs(t,
		MsgCollectFees{Authority: authority, Denom: "ufee"}.ValidateBasic(), ErrInvalidAmount)
	require.ErrorIs(t,
		MsgCollectFees{Authority: authority, Denom: "ufee", Sources: []string{"nope"}}.ValidateBasic(), ErrInvalidAddress)

	update := MsgUpdateTransferFeeConfig{Authority: authority, Seed: 1, NewFeeBasisPoints: 50, NewMaxFee: math.NewInt(1_000)}
	require.NoError(t, update.ValidateBasic())
	update.NewFeeBasisPoints = BasisPointDenominator + 1
	require.ErrorIs(t, update.ValidateBasic(), ErrInvalidFee)
	update.NewFeeBasisPoints = 50
	update.NewMaxFee = math.Int{}
	require.ErrorIs(t, update.ValidateBasic(), ErrInvalidAmount)

	dest := MsgUpdateFeeDestination{Authority: authority, Seed: 1, NewDestination: TestAddr()}
	require.NoError(t, dest.ValidateBasic())
	dest.NewDestination = "nope"
	require.ErrorIs(t, dest.ValidateBasic(), ErrInvalidAddress)

	hook := MsgUpdateHookProgram{Authority: authority, Seed: 1, NewHookProgram: "prog-2"}
	require.NoError(t, hook.ValidateBasic())
	require.NoError(t, MsgUpdateHookProgram{Authority: authority, Seed: 1}.ValidateBasic())
}

func TestMsg_SignersAndSignBytes(t *testing.T) {
	provider := TestAddr()
	msg := NewMsgDeposit(provider, 3, math.NewInt(5), math.NewInt(10), math.NewInt(10))

	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, provider, signers[0].String())

	require.Equal(t, RouterKey, msg.Route())
	require.Equal(t, "deposit", msg.Type())
	require.NotEmpty(t, msg.GetSignBytes())
}
