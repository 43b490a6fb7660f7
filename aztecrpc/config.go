package aztecrpc

import (
	"os"
	"time"
)

// Config describes how to reach a PXE node. Build it once and pass it to
// NewProvider; nothing in this package reads a global endpoint.
type Config struct {
	URL       string `json:"url"`
	Namespace string `json:"namespace"`
	UserAgent string `json:"userAgent"`

	// ReadyAttempts and ReadyDelay bound WaitForReady.
	ReadyAttempts int           `json:"readyAttempts"`
	ReadyDelay    time.Duration `json:"readyDelay"`

	// RequestTimeout applies to the default http client only.
	RequestTimeout time.Duration `json:"requestTimeout"`
}

const (
	DefaultURL       = "http://localhost:8080"
	DefaultNamespace = "pxe"
	URLEnvVar        = "PXE_URL"
)

var DefaultConfig = Config{
	URL:            DefaultURL,
	Namespace:      DefaultNamespace,
	UserAgent:      "aztekit",
	ReadyAttempts:  10,
	ReadyDelay:     2 * time.Second,
	RequestTimeout: 5 * time.Minute,
}

// ConfigFromEnv returns DefaultConfig with the URL taken from PXE_URL when set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig
	if url := os.Getenv(URLEnvVar); url != "" {
		cfg.URL = url
	}
	return cfg
}

func (c Config) withDefaults() Config {
	if c.URL == "" {
		c.URL = DefaultConfig.URL
	}
	if c.ReadyAttempts <= 0 {
		c.ReadyAttempts = DefaultConfig.ReadyAttempts
	}
	if c.ReadyDelay <= 0 {
		c.ReadyDelay = DefaultConfig.ReadyDelay
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultConfig.RequestTimeout
	}
	return c
}
