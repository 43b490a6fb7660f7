package main

import (
	"fmt"
	"strings"

	"github.com/0xsequence/aztekit/azteccoder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewSelectorCmd())
}

func NewSelectorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selector [signature | function]",
		Short: "Compute a function selector from a canonical signature, or look a function up in an artifact",
		Args:  cobra.ExactArgs(1),
		RunE:  runSelector,
	}
	addArtifactFlags(cmd)
	return cmd
}

func runSelector(cmd *cobra.Command, args []string) error {
	fArtifact, _ := cmd.Flags().GetString("artifact")

	if fArtifact == "" {
		if !strings.Contains(args[0], "(") {
			return fmt.Errorf("error: '%s' is not a signature, pass --artifact to resolve a function name", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), azteccoder.SelectorFromSignature(args[0]).Hex())
		return nil
	}

	artifact, err := loadArtifact(cmd)
	if err != nil {
		return err
	}
	fn, err := azteccoder.GetFunctionArtifact(artifact, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", azteccoder.SelectorOf(fn).Hex(), azteccoder.CanonicalSignature(fn.Name, fn.Parameters))
	return nil
}
