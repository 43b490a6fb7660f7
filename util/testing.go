package util

import (
	"fmt"
	"os"

	"github.com/0xsequence/aztekit/sonic"
)

// ReadTestConfig loads the optional integration test config. A missing file is
// not an error. Keys also set in the environment take the environment's value,
// so `PXE_URL=... go test` works without a file.
func ReadTestConfig(testConfigFile string, envKeys ...string) (map[string]string, error) {
	config := map[string]string{}

	data, err := os.ReadFile(testConfigFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("%s file could not be read: %w", testConfigFile, err)
	default:
		if err := sonic.Config.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("%s file json parsing error: %w", testConfigFile, err)
		}
	}

	for _, key := range envKeys {
		if v := os.Getenv(key); v != "" {
			config[key] = v
		}
	}
	return config, nil
}
