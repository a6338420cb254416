package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/loko-chain/loko/x/amm/keeper"
	"github.com/loko-chain/loko/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryShares(),
		GetCmdQueryFeeStats(),
		GetCmdQuerySimulateSwap(),
	)

	return ammQueryCmd
}

func queryPath(route string) string {
	return fmt.Sprintf("custom/%s/%s", types.ModuleName, route)
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath(keeper.QueryParams), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by seed
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [seed]",
		Short: "Query a pool by seed",
		Long: `Query a pool's denoms, fees, lock state and reserves.

Example:
  $ lokod query amm pool 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			bz, err := types.Amino.MarshalJSON(&types.QueryPoolRequest{Seed: seed})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryPath(keeper.QueryPool), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to query all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath(keeper.QueryPools), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryShares returns the command to query a provider's shares
func GetCmdQueryShares() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shares [seed] [provider]",
		Short: "Query a provider's share balance in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			seed, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed: %w", err)
			}

			bz, err := types.Amino.MarshalJSON(&types.QuerySharesRequest{
				Seed:     seed,
				Provider: args[1],
			})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryPath(keeper.QueryShares), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryFeeStats returns the command to query a denom's velocity record
func GetCmdQueryFeeStats() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee-stats [denom]",
		Short: "Query the dynamic fee statistics for a denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := types.Amino.MarshalJSON(&types.QueryFeeStatsRequest{Denom: args[0]})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryPath(keeper.QueryFeeStats), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySimulateSwap returns the command to simulate a swap
func GetCmdQuerySimulateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-swap [seed] [denom-in] [amount-in]",
		Short: "Simulate a swap without executing it",
		Long: `Simulate a swap and report the output amount and the fee in effect,
transfer fees on both legs included.

Example:
  $ lokod query amm simulate-swap 1 uloko 10000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
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

			bz, err := types.Amino.MarshalJSON(&types.QuerySimulateSwapRequest{
				Seed:     seed,
				DenomIn:  args[1],
				AmountIn: amountIn,
			})
			if err != nil {
				return err
			}
			res, _, err := clientCtx.QueryWithData(queryPath(keeper.QuerySimulateSwap), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
