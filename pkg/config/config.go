// Copyright 2025 Certen Protocol
//
// Package config reads the handful of environment variables the demo CLI
// needs: where the signing key lives, which digest to build trees with,
// and how verbosely to log.

package config

import (
	"fmt"
	"os"
)

// Config holds the signer/verifier CLI's environment-derived settings.
type Config struct {
	// Ed25519KeyPath points at a file holding a hex-encoded 32-byte
	// Ed25519 seed. Required for signing.
	Ed25519KeyPath string

	// DigestName selects the digest family trees are built with.
	// Currently only "sha256" is recognized.
	DigestName string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is "text" or "json".
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// for everything except the signing key path.
//
//   - CERTEN_ED25519_KEY_PATH (required for signing operations)
//   - CERTEN_DIGEST           (default "sha256")
//   - CERTEN_LOG_LEVEL        (default "info")
//   - CERTEN_LOG_FORMAT       (default "text")
func Load() (*Config, error) {
	cfg := &Config{
		Ed25519KeyPath: os.Getenv("CERTEN_ED25519_KEY_PATH"),
		DigestName:     envOrDefault("CERTEN_DIGEST", "sha256"),
		LogLevel:       envOrDefault("CERTEN_LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("CERTEN_LOG_FORMAT", "text"),
	}
	return cfg, nil
}

// Validate checks that fields required for signing are present. Verifier-
// only invocations never need a key path, so callers that only verify
// should not call this.
func (c *Config) Validate() error {
	if c.Ed25519KeyPath == "" {
		return fmt.Errorf("config: CERTEN_ED25519_KEY_PATH is required")
	}
	if c.DigestName != "sha256" {
		return fmt.Errorf("config: unsupported digest %q", c.DigestName)
	}
	return nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
