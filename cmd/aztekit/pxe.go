package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewPXECmd())
}

func NewPXECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pxe",
		Short: "Query a PXE node",
	}

	info := &cobra.Command{
		Use:   "info",
		Short: "Print node info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := newProvider(cmd)
			if err != nil {
				return err
			}
			fWait, _ := cmd.Flags().GetBool("wait")
			if fWait {
				ni, err := provider.WaitForReady(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, ni)
			}
			ni, err := provider.GetNodeInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, ni)
		},
	}

	block := &cobra.Command{
		Use:   "block",
		Short: "Print the latest block number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := newProvider(cmd)
			if err != nil {
				return err
			}
			num, err := provider.GetBlockNumber(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), num)
			return nil
		},
	}

	contracts := &cobra.Command{
		Use:   "contracts",
		Short: "List contract addresses registered in the PXE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := newProvider(cmd)
			if err != nil {
				return err
			}
			addrs, err := provider.GetContracts(cmd.Context())
			if err != nil {
				return err
			}
			for _, addr := range addrs {
				fmt.Fprintln(cmd.OutOrStdout(), addr)
			}
			return nil
		},
	}

	metadata := &cobra.Command{
		Use:   "metadata [address]",
		Short: "Print the metadata of a deployed contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := newProvider(cmd)
			if err != nil {
				return err
			}
			meta, err := provider.GetContractMetadata(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, meta)
		},
	}

	for _, sub := range []*cobra.Command{info, block, contracts, metadata} {
		addPXEFlags(sub)
		cmd.AddCommand(sub)
	}
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	doc, err := PrettyJSON(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
