package mcp

import (
	"context"
	"net/http"
	"testing"

	"github.com/gtarraga/linear-mcp/pkg/linear"
)

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  AuthMode
		expectErr bool
	}{
		{name: "empty string defaults to env", input: "", expected: AuthModeEnv},
		{name: "env", input: "env", expected: AuthModeEnv},
		{name: "header", input: "header", expected: AuthModeHeader},
		{name: "unknown mode", input: "oauth", expectErr: true},
		{name: "wrong case", input: "Header", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseAuthMode(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for input %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mode != tt.expected {
				t.Errorf("expected mode %q, got %q", tt.expected, mode)
			}
		})
	}
}

func TestAuthFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected any
	}{
		{name: "bare key", header: "lin_api_abc", expected: "lin_api_abc"},
		{name: "bearer prefix stripped", header: "Bearer lin_api_abc", expected: "lin_api_abc"},
		{name: "missing header leaves context untouched", header: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/mcp", http.NoBody)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}
			if tt.header != "" {
				req.Header.Set(string(AuthHeaderKey), tt.header)
			}

			ctx := authFromRequest(context.Background(), req)
			if got := ctx.Value(AuthHeaderKey); got != tt.expected {
				t.Errorf("expected context value %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolveAPIKeyEnvMode(t *testing.T) {
	t.Setenv(linearAPIKeyEnv, "lin_api_from_env")

	key, err := resolveAPIKey(context.Background(), AuthModeEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "lin_api_from_env" {
		t.Errorf("expected the env key, got %q", key)
	}
}

func TestResolveAPIKeyEnvModeStripsBearer(t *testing.T) {
	t.Setenv(linearAPIKeyEnv, "Bearer lin_api_from_env")

	key, err := resolveAPIKey(context.Background(), AuthModeEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "lin_api_from_env" {
		t.Errorf("expected the bare key, got %q", key)
	}
}

func TestResolveAPIKeyEnvModeMissing(t *testing.T) {
	t.Setenv(linearAPIKeyEnv, "")

	_, err := resolveAPIKey(context.Background(), AuthModeEnv)
	if err == nil {
		t.Fatal("expected an error when the env variable is unset")
	}
}

func TestResolveAPIKeyHeaderMode(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthHeaderKey, "lin_api_from_header")

	key, err := resolveAPIKey(ctx, AuthModeHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "lin_api_from_header" {
		t.Errorf("expected the header key, got %q", key)
	}
}

func TestResolveAPIKeyHeaderModeMissing(t *testing.T) {
	_, err := resolveAPIKey(context.Background(), AuthModeHeader)
	if err == nil {
		t.Fatal("expected an error when no key is present in the context")
	}
}

type noopClient struct {
	linear.Client
}

func TestGetLinearClientTestInjection(t *testing.T) {
	injected := &noopClient{}
	ctx := context.WithValue(context.Background(), TestLinearClientKey, linear.Client(injected))

	client, err := getLinearClient(ctx, LinearMCPOptions{AuthMode: AuthModeEnv})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != linear.Client(injected) {
		t.Error("expected the injected client to be returned")
	}
}

func TestGetLinearClientEnvMode(t *testing.T) {
	t.Setenv(linearAPIKeyEnv, "lin_api_test")

	client, err := getLinearClient(context.Background(), LinearMCPOptions{AuthMode: AuthModeEnv})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected a client")
	}
}

func TestStripBearerPrefix(t *testing.T) {
	if got := stripBearerPrefix("Bearer abc"); got != "abc" {
		t.Errorf("expected prefix to be stripped, got %q", got)
	}
	if got := stripBearerPrefix("abc"); got != "abc" {
		t.Errorf("expected bare key to pass through, got %q", got)
	}
}
