package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/0xsequence/aztekit/azteccoder"
	"github.com/0xsequence/aztekit/aztecfeed"
	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/0xsequence/aztekit/aztectxn"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewFeedCmd())
}

func NewFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Run or talk to a websocket value feed backed by a contract",
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the feed, publishing every set through a contract function",
		Args:  cobra.NoArgs,
		RunE:  runFeedServe,
	}
	addArtifactFlags(serve)
	addPXEFlags(serve)
	serve.Flags().String("addr", aztecfeed.DefaultOptions.Addr, "listen address")
	serve.Flags().String("path", aztecfeed.DefaultOptions.Path, "websocket path")
	serve.Flags().String("wallet", "", "sender account address (required)")
	serve.Flags().String("to", "", "deployed contract address (required)")
	serve.Flags().String("function", "set_just_field", "single-argument function that publishes the value")

	set := &cobra.Command{
		Use:   "set [value]",
		Short: "Publish a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := aztecfield.FromDecimal(args[0])
			if err != nil {
				return err
			}
			c, err := dialFeed(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			ref, err := c.Set(cmd.Context(), v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok", ref)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the last published value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := dialFeed(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			v, err := c.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	for _, sub := range []*cobra.Command{set, get} {
		sub.Flags().String("url", "ws://localhost:3002/ws", "feed websocket url")
	}

	cmd.AddCommand(serve, set, get)
	return cmd
}

func dialFeed(cmd *cobra.Command) (*aztecfeed.Client, error) {
	fURL, _ := cmd.Flags().GetString("url")
	return aztecfeed.Dial(cmd.Context(), fURL)
}

func runFeedServe(cmd *cobra.Command, args []string) error {
	fAddr, _ := cmd.Flags().GetString("addr")
	fPath, _ := cmd.Flags().GetString("path")
	fWallet, _ := cmd.Flags().GetString("wallet")
	fTo, _ := cmd.Flags().GetString("to")
	fFunction, _ := cmd.Flags().GetString("function")
	fWait, _ := cmd.Flags().GetBool("wait")

	if fWallet == "" || fTo == "" {
		return errors.New("error: please pass --wallet and --to")
	}

	artifact, err := loadArtifact(cmd)
	if err != nil {
		return err
	}
	if _, err := azteccoder.GetFunctionArtifact(artifact, fFunction); err != nil {
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

	log := newLogger(cmd)
	setter := &aztecfeed.TxSetter{
		PXE:      provider,
		Wallet:   fWallet,
		Contract: fTo,
		Artifact: artifact,
		Function: fFunction,
		Options:  []aztectxn.Option{aztectxn.WithLogger(log)},
	}
	server := aztecfeed.NewServer(log, setter, aztecfeed.Options{Addr: fAddr, Path: fPath})
	return server.Run(ctx)
}
