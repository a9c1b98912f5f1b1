// Package config holds process-wide configuration for arx.
//
// The Config value is constructed once in main and passed into the gate;
// nothing in this package mutates global state after startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// EnvArxHome overrides the default arx home directory (~/.arx)
	EnvArxHome = "ARX_HOME"

	// EnvTempDir overrides the scratch directory root used for PKGBUILD fetches
	EnvTempDir = "ARX_TEMP_DIR"

	// EnvSearchTimeout configures the package existence check timeout
	EnvSearchTimeout = "ARX_SEARCH_TIMEOUT"

	// EnvFetchTimeout configures the PKGBUILD fetch timeout
	EnvFetchTimeout = "ARX_FETCH_TIMEOUT"

	// DefaultSearchTimeout bounds `yay -Ss` existence checks (30 seconds)
	DefaultSearchTimeout = 30 * time.Second

	// DefaultFetchTimeout bounds `yay --getpkgbuild` fetches (60 seconds)
	DefaultFetchTimeout = 60 * time.Second
)

// Config describes where arx keeps its files and how long external
// operations may run.
type Config struct {
	HomeDir    string // $ARX_HOME, default ~/.arx
	ConfigFile string // $ARX_HOME/config.toml
	TempRoot   string // $ARX_TEMP_DIR; empty means the system temp directory

	SearchTimeout time.Duration
	FetchTimeout  time.Duration
}

// DefaultConfig returns the default configuration, honoring environment
// overrides.
func DefaultConfig() (*Config, error) {
	arxHome := os.Getenv(EnvArxHome)
	if arxHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		arxHome = filepath.Join(home, ".arx")
	}

	return &Config{
		HomeDir:       arxHome,
		ConfigFile:    filepath.Join(arxHome, "config.toml"),
		TempRoot:      os.Getenv(EnvTempDir),
		SearchTimeout: GetSearchTimeout(),
		FetchTimeout:  GetFetchTimeout(),
	}, nil
}

// GetSearchTimeout returns the existence check timeout from
// ARX_SEARCH_TIMEOUT. If not set or invalid, returns DefaultSearchTimeout.
// Accepts duration strings like "30s", "1m", "2m30s".
func GetSearchTimeout() time.Duration {
	return timeoutFromEnv(EnvSearchTimeout, DefaultSearchTimeout)
}

// GetFetchTimeout returns the PKGBUILD fetch timeout from ARX_FETCH_TIMEOUT.
// If not set or invalid, returns DefaultFetchTimeout.
func GetFetchTimeout() time.Duration {
	return timeoutFromEnv(EnvFetchTimeout, DefaultFetchTimeout)
}

// timeoutFromEnv parses a duration from the environment, clamped to a
// reasonable range (1 second to 10 minutes).
func timeoutFromEnv(envVar string, fallback time.Duration) time.Duration {
	envValue := os.Getenv(envVar)
	if envValue == "" {
		return fallback
	}

	duration, err := time.ParseDuration(envValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, using default %v\n",
			envVar, envValue, fallback)
		return fallback
	}

	if duration < 1*time.Second {
		fmt.Fprintf(os.Stderr, "Warning: %s too low (%v), using minimum 1s\n",
			envVar, duration)
		return 1 * time.Second
	}
	if duration > 10*time.Minute {
		fmt.Fprintf(os.Stderr, "Warning: %s too high (%v), using maximum 10m\n",
			envVar, duration)
		return 10 * time.Minute
	}

	return duration
}

// EnsureHome creates the arx home directory if it does not exist.
func (c *Config) EnsureHome() error {
	if err := os.MkdirAll(c.HomeDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.HomeDir, err)
	}
	return nil
}
