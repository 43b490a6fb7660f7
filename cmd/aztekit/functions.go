package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/0xsequence/aztekit/azteccoder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewFunctionsCmd())
}

func NewFunctionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List the functions of a contract artifact with their signatures and selectors",
		Args:  cobra.NoArgs,
		RunE:  runFunctions,
	}
	addArtifactFlags(cmd)
	return cmd
}

func runFunctions(cmd *cobra.Command, args []string) error {
	artifact, err := loadArtifact(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SELECTOR\tTYPE\tSIGNATURE\n")
	for i := range artifact.Functions {
		fn := &artifact.Functions[i]
		fmt.Fprintf(w, "%s\t%s\t%s\n", azteccoder.SelectorOf(fn).Hex(), fn.FunctionType, azteccoder.CanonicalSignature(fn.Name, fn.Parameters))
	}
	return w.Flush()
}
