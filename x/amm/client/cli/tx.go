package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/loko-chain/loko/x/amm/types"
)

const (
	flagAuthority      = "authority"
	flagTransferFeeBps = "transfer-fee-bps"
	flagMaxTransferFee = "max-transfer-fee"
	flagHookProgram    = "hook-program"
	flagHookAccounts   = "hook-accounts"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdInitializePool(),
		CmdDeposit(),
		CmdWithdraw(),
		CmdSwap(),
		CmdLockPool(),
		CmdUnlockPool(),
		CmdCollectFees(),
		CmdUpdateTransferFeeConfig(),
		CmdUpdateFeeDestination(),
		CmdUpdateHookProgram(),
	)

	return ammTxCmd
}

// CmdInitializePool returns a CLI command handler for creating an empty pool
func CmdInitializePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize-pool [seed] [denom-x] [denom-y] [fee-bps]",
		Short: "Initialize an empty constant-product pool",
		Long: `Initialize an empty pool for a denom pair. The pool holds no tokens until
the first deposit, which fixes the initial price.

Example:
  $ lokod tx amm initialize-pool 1 uloko uusdt 30 --from mykey
  $ lokod tx amm initialize-pool 7 uloko uhook 30 --authority loko1... --hook-program hook1 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			fee, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-bps: %w", err)
			}

			authority, err := cmd.Flags().GetString(flagAuthority)
			if err != nil {
				return err
			}
			transferFeeBps, err := cmd.Flags().GetUint32(flagTransferFeeBps)
			if err != nil {
				return err
			}
			maxTransferFeeStr, err := cmd.Flags().GetString(flagMaxTransferFee)
			if err != nil {
				return err
			}
			maxTransferFee, ok := math.NewIntFromString(maxTransferFeeStr)
			if !ok {
				return fmt.Errorf("invalid max-transfer-fee: %s (must be integer)", maxTransferFeeStr)
			}
			hookProgram, err := cmd.Flags().GetString(flagHookProgram)
			if err != nil {
				return err
			}

			msg := &types.MsgInitializePool{
				Creator:                clientCtx.GetFromAddress().String(),
				Seed:                   seed,
				DenomX:                 args[1],
				DenomY:                 args[2],
				Fee:                    uint32(fee),
				Authority:              authority,
				TransferFeeBasisPoints: transferFeeBps,
				MaxTransferFee:         maxTransferFee,
				HookProgram:            hookProgram,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagAuthority, "", "Update authority for the pool (empty freezes the configuration)")
	cmd.Flags().Uint32(flagTransferFeeBps, 0, "Default transfer fee for new token accounts, in basis points")
	cmd.Flags().String(flagMaxTransferFee, "0", "Cap for the default transfer fee, in base units")
	cmd.Flags().String(flagHookProgram, "", "Default hook program for new token accounts")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for depositing liquidity
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [seed] [shares] [max-x] [max-y]",
		Short: "Deposit liquidity for pool shares",
		Long: `Deposit both pool tokens for the requested shares. max-x and max-y bound the
gross amounts sent, transfer fees included. The first deposit into an empty
pool takes both maxima verbatim and fixes the price.

Example:
  $ lokod tx amm deposit 1 1000000 1000000 2000000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}
			maxX, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid max-x: %s (must be integer)", args[2])
			}
			maxY, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid max-y: %s (must be integer)", args[3])
			}
			hookAccounts, err := cmd.Flags().GetStringSlice(flagHookAccounts)
			if err != nil {
				return err
			}

			msg := &types.MsgDeposit{
				Provider:     clientCtx.GetFromAddress().String(),
				Seed:         seed,
				Shares:       shares,
				MaxX:         maxX,
				MaxY:         maxY,
				HookAccounts: hookAccounts,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().StringSlice(flagHookAccounts, nil, "Auxiliary accounts required by hook-enabled denoms")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for withdrawing liquidity
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [seed] [shares] [min-x] [min-y]",
		Short: "Burn pool shares for the underlying tokens",
		Long: `Burn shares for the proportional reserves. min-x and min-y are checked
against the net amounts received after any transfer fee on the way out.

Example:
  $ lokod tx amm withdraw 1 500000 490000 980000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}
			minX, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid min-x: %s (must be integer)", args[2])
			}
			minY, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-y: %s (must be integer)", args[3])
			}
			hookAccounts, err := cmd.Flags().GetStringSlice(flagHookAccounts)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdraw{
				Provider:     clientCtx.GetFromAddress().String(),
				Seed:         seed,
				Shares:       shares,
				MinX:         minX,
				MinY:         minY,
				HookAccounts: hookAccounts,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().StringSlice(flagHookAccounts, nil, "Auxiliary accounts required by hook-enabled denoms")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for swapping against a pool
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [seed] [denom-in] [amount-in] [min-amount-out]",
		Short: "Swap tokens against a pool",
		Long: `Swap amount-in of denom-in for the opposite pool denom. min-amount-out is
checked against the curve output before transfer fees on the way out.

Example:
  $ lokod tx amm swap 1 uloko 10000 9900 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}
			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}
			hookAccounts, err := cmd.Flags().GetStringSlice(flagHookAccounts)
			if err != nil {
				return err
			}

			msg := &types.MsgSwap{
				Trader:       clientCtx.GetFromAddress().String(),
				Seed:         seed,
				DenomIn:      args[1],
				AmountIn:     amountIn,
				MinAmountOut: minAmountOut,
				HookAccounts: hookAccounts,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().StringSlice(flagHookAccounts, nil, "Auxiliary accounts required by hook-enabled denoms")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdLockPool returns a CLI command handler for locking a pool
func CmdLockPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock-pool [seed]",
		Short: "Lock a pool against deposits, withdrawals and swaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			msg := &types.MsgLockPool{
				Authority: clientCtx.GetFromAddress().String(),
				Seed:      seed,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnlockPool returns a CLI command handler for unlocking a pool
func CmdUnlockPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock-pool [seed]",
		Short: "Reopen a locked pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			msg := &types.MsgUnlockPool{
				Authority: clientCtx.GetFromAddress().String(),
				Seed:      seed,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCollectFees returns a CLI command handler for sweeping withheld fees
func CmdCollectFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect-fees [seed] [denom] [source]...",
		Short: "Sweep withheld transfer fees to the pool's fee destination",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			msg := &types.MsgCollectFees{
				Authority: clientCtx.GetFromAddress().String(),
				Seed:      seed,
				Denom:     args[1],
				Sources:   args[2:],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateTransferFeeConfig returns a CLI command handler for updating the
// pool's default transfer-fee settings
func CmdUpdateTransferFeeConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-transfer-fee [seed] [fee-bps] [max-fee]",
		Short: "Update a pool's default transfer-fee configuration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			feeBps, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid fee-bps: %w", err)
			}
			maxFee, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid max-fee: %s (must be integer)", args[2])
			}

			msg := &types.MsgUpdateTransferFeeConfig{
				Authority:         clientCtx.GetFromAddress().String(),
				Seed:              seed,
				NewFeeBasisPoints: uint32(feeBps),
				NewMaxFee:         maxFee,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateFeeDestination returns a CLI command handler for rerouting fees
func CmdUpdateFeeDestination() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-fee-destination [seed] [destination]",
		Short: "Change the account receiving collected fees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			msg := &types.MsgUpdateFeeDestination{
				Authority:      clientCtx.GetFromAddress().String(),
				Seed:           seed,
				NewDestination: args[1],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateHookProgram returns a CLI command handler for updating the hook
// program
func CmdUpdateHookProgram() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-hook-program [seed]",
		Short: "Set or clear a pool's default hook program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}
			hookProgram, err := cmd.Flags().GetString(flagHookProgram)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateHookProgram{
				Authority:      clientCtx.GetFromAddress().String(),
				Seed:           seed,
				NewHookProgram: hookProgram,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagHookProgram, "", "New default hook program (empty clears it)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
