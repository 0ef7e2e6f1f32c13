// Package config loads the optional TOML configuration file for the
// linear-mcp server. Values from the file sit between command line flags
// and environment variables in precedence: flags win, then the file,
// then the environment, then built-in defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gtarraga/linear-mcp/pkg/mcp"
)

// Config holds linear-mcp configuration
type Config struct {
	// Listen is the address for HTTP mode (e.g. ":9300"). Empty selects
	// stdio mode.
	Listen string `toml:"listen,omitempty"`

	// LogLevel is one of debug, info, warn, error. Default: info
	LogLevel string `toml:"log-level,omitempty"`

	// AuthMode selects where the Linear API key comes from.
	// Valid values: "env" (default, LINEAR_API_KEY) or "header"
	// (per-request Authorization header).
	AuthMode string `toml:"auth-mode,omitempty"`

	// Linear holds the Linear API connection settings.
	Linear LinearConfig `toml:"linear"`
}

// LinearConfig holds the Linear API endpoint settings
type LinearConfig struct {
	// URL of the Linear GraphQL endpoint.
	// Default: "https://api.linear.app/graphql"
	URL string `toml:"url,omitempty"`

	// Timeout for one API round trip, as a Go duration string.
	// Default: "30s"
	Timeout string `toml:"timeout,omitempty"`
}

// Load reads and validates the TOML file at path. Unknown keys are
// rejected so typos surface at startup instead of silently falling back
// to defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if _, err := mcp.ParseAuthMode(c.AuthMode); err != nil {
		return err
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (valid options: debug, info, warn, error)", c.LogLevel)
	}

	if _, err := c.Timeout(); err != nil {
		return err
	}

	return nil
}

// Timeout returns the parsed Linear API timeout; zero when unset.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Linear.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Linear.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid linear.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid linear.timeout: must not be negative")
	}
	return d, nil
}
