package main

import (
	"fmt"

	"github.com/0xsequence/aztekit/azteccoder"
	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(NewEncodeCmd())
}

func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [flags] function [args...]",
		Short: "Flatten function arguments into field elements",
		Long:  "Flatten function arguments into field elements.\n\nFlags go before the function name; everything after it is an argument, so negative values need no escaping.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runEncode,
	}
	cmd.Flags().SetInterspersed(false)
	addArtifactFlags(cmd)
	cmd.Flags().String("args-json", "", "arguments as a JSON array, instead of positional args")
	cmd.Flags().Bool("hex", false, "print 32-byte hex values instead of decimals")
	cmd.Flags().Bool("json", false, "print a JSON document with the selector and hex values")
	return cmd
}

func runEncode(cmd *cobra.Command, args []string) error {
	fHex, _ := cmd.Flags().GetBool("hex")
	fJSON, _ := cmd.Flags().GetBool("json")

	artifact, err := loadArtifact(cmd)
	if err != nil {
		return err
	}
	fn, err := azteccoder.GetFunctionArtifact(artifact, args[0])
	if err != nil {
		return err
	}
	raw, err := readArgs(cmd, args[1:])
	if err != nil {
		return err
	}
	encoded, err := azteccoder.EncodeArguments(fn.Parameters, raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if fJSON {
		values, err := aztecfield.HexValues(encoded)
		if err != nil {
			return err
		}
		doc, err := PrettyJSON(map[string]any{
			"function":  fn.Name,
			"signature": azteccoder.CanonicalSignature(fn.Name, fn.Parameters),
			"selector":  azteccoder.SelectorOf(fn).Hex(),
			"args":      values,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, doc)
		return nil
	}

	for _, f := range encoded {
		if !fHex {
			fmt.Fprintln(out, f.String())
			continue
		}
		h, err := f.Hex()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, h)
	}
	return nil
}
