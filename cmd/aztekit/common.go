package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xsequence/aztekit/aztecartifact"
	"github.com/0xsequence/aztekit/azteccoder"
	"github.com/0xsequence/aztekit/aztecrpc"
	"github.com/goware/logger"
	"github.com/spf13/cobra"
)

func newLogger(cmd *cobra.Command) logger.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		return logger.NewLogger(logger.LogLevel_DEBUG)
	}
	return logger.NewLogger(logger.LogLevel_INFO)
}

func addArtifactFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("artifact", "a", "", "path to a contract artifact file, or a directory of artifacts (required)")
	cmd.Flags().StringP("contract", "c", "", "contract name, required when --artifact is a directory")
}

func addPXEFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("pxe-url", "r", "", "PXE endpoint, defaults to $PXE_URL or "+aztecrpc.DefaultURL)
	cmd.Flags().Bool("wait", false, "wait for the PXE to become ready before sending")
}

// loadArtifact reads --artifact. A directory is loaded into a registry and
// --contract picks one of its contracts.
func loadArtifact(cmd *cobra.Command) (*aztecartifact.ContractArtifact, error) {
	fArtifact, _ := cmd.Flags().GetString("artifact")
	fContract, _ := cmd.Flags().GetString("contract")

	if fArtifact == "" {
		return nil, errors.New("error: please pass --artifact")
	}

	info, err := os.Stat(fArtifact)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		artifact, err := aztecartifact.ParseArtifactFile(fArtifact)
		if err != nil {
			return nil, err
		}
		if fContract != "" && fContract != artifact.Name {
			return nil, fmt.Errorf("error: artifact %s contains contract %s, not %s", fArtifact, artifact.Name, fContract)
		}
		return artifact, nil
	}

	registry := aztecartifact.NewContractRegistry()
	if err := registry.LoadDir(fArtifact); err != nil {
		return nil, err
	}
	if fContract == "" {
		return nil, fmt.Errorf("error: please pass --contract, one of %v", registry.ContractNames())
	}
	artifact, ok := registry.Get(fContract)
	if !ok {
		return nil, fmt.Errorf("error: contract %s not found in %s, have %v", fContract, fArtifact, registry.ContractNames())
	}
	return artifact, nil
}

// readArgs takes raw arguments from --args-json when set, otherwise from the
// positional arguments.
func readArgs(cmd *cobra.Command, positional []string) ([]any, error) {
	fArgsJSON, _ := cmd.Flags().GetString("args-json")
	if fArgsJSON == "" {
		return azteccoder.ParseArgsStrings(positional), nil
	}
	if len(positional) > 0 {
		return nil, errors.New("error: pass arguments either positionally or with --args-json, not both")
	}
	return azteccoder.ParseArgsJSON([]byte(fArgsJSON))
}

func newProvider(cmd *cobra.Command) (*aztecrpc.Provider, error) {
	cfg := aztecrpc.ConfigFromEnv()
	if fURL, _ := cmd.Flags().GetString("pxe-url"); fURL != "" {
		cfg.URL = fURL
	}
	cfg.UserAgent = "aztekit/" + VERSION
	return aztecrpc.NewProvider(cfg, aztecrpc.WithLogger(newLogger(cmd)))
}
