package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/0xsequence/aztekit"
	"github.com/0xsequence/aztekit/aztecrpc"
	"github.com/0xsequence/aztekit/aztectxn"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewSendCmd())
	rootCmd.AddCommand(NewSimulateCmd())
}

func NewSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [flags] function [args...]",
		Short: "Simulate, prove and send a contract function call through a PXE",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteraction(cmd, args, true)
		},
	}
	addInteractionFlags(cmd)
	return cmd
}

func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [flags] function [args...]",
		Short: "Simulate a contract function call through a PXE and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteraction(cmd, args, false)
		},
	}
	addInteractionFlags(cmd)
	return cmd
}

func addInteractionFlags(cmd *cobra.Command) {
	addArtifactFlags(cmd)
	addPXEFlags(cmd)
	cmd.Flags().String("args-json", "", "arguments as a JSON array, instead of positional args")
	cmd.Flags().String("wallet", "", "sender account address (required)")
	cmd.Flags().String("to", "", "deployed contract address (required)")
	cmd.Flags().String("msg-sender", "", "simulate as if called by this address")
	cmd.Flags().SetInterspersed(false)
}

func runInteraction(cmd *cobra.Command, args []string, send bool) error {
	fWallet, _ := cmd.Flags().GetString("wallet")
	fTo, _ := cmd.Flags().GetString("to")
	fWait, _ := cmd.Flags().GetBool("wait")

	if fWallet == "" {
		return errors.New("error: please pass --wallet")
	}
	if fTo == "" {
		return errors.New("error: please pass --to")
	}

	artifact, err := loadArtifact(cmd)
	if err != nil {
		return err
	}
	raw, err := readArgs(cmd, args[1:])
	if err != nil {
		return err
	}

	options := []aztectxn.Option{aztectxn.WithLogger(newLogger(cmd))}
	if fMsgSender, _ := cmd.Flags().GetString("msg-sender"); fMsgSender != "" {
		opts := aztecrpc.DefaultSimulateOptions
		opts.MsgSender = aztekit.PtrTo(fMsgSender)
		options = append(options, aztectxn.WithSimulateOptions(opts))
	}

	in, err := aztectxn.NewInteraction(fWallet, fTo, artifact, args[0], raw, options...)
	if err != nil {
		return err
	}

	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if fWait {
		if _, err := provider.WaitForReady(ctx); err != nil {
			return err
		}
	}

	if send {
		txHash, err := in.Send(ctx, provider)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), txHash)
		return nil
	}

	res, err := in.Simulate(ctx, provider)
	if err != nil {
		return err
	}
	return printJSON(cmd, res)
}
