package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
listen = ":9300"
log-level = "debug"
auth-mode = "header"

[linear]
url = "https://linear.internal.example.com/graphql"
timeout = "45s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Listen != ":9300" {
		t.Errorf("expected listen :9300, got %q", cfg.Listen)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	if cfg.AuthMode != "header" {
		t.Errorf("expected auth mode header, got %q", cfg.AuthMode)
	}
	if cfg.Linear.URL != "https://linear.internal.example.com/graphql" {
		t.Errorf("unexpected linear url %q", cfg.Linear.URL)
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		t.Fatalf("unexpected timeout error: %v", err)
	}
	if timeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %v", timeout)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("an empty file should be valid, got: %v", err)
	}
	if cfg.Listen != "" || cfg.LogLevel != "" || cfg.AuthMode != "" {
		t.Errorf("expected zero values, got %+v", cfg)
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		t.Fatalf("unexpected timeout error: %v", err)
	}
	if timeout != 0 {
		t.Errorf("expected zero timeout when unset, got %v", timeout)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfigFile(t, `
listen = ":9300"
listenn = ":9301"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for unknown keys")
	}
	if !strings.Contains(err.Error(), "listenn") {
		t.Errorf("expected the offending key in the error, got %q", err.Error())
	}
}

func TestLoadRejectsInvalidAuthMode(t *testing.T) {
	path := writeConfigFile(t, `auth-mode = "oauth"`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an invalid auth mode")
	}
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, `log-level = "verbose"`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
}

func TestLoadRejectsInvalidTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
	}{
		{name: "not a duration", timeout: "fast"},
		{name: "negative", timeout: "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, "[linear]\ntimeout = \""+tt.timeout+"\"\n")
			if _, err := Load(path); err == nil {
				t.Fatal("expected an error for an invalid timeout")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
