package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gtarraga/linear-mcp/pkg/linear"
)

// AuthMode defines where the Linear API key comes from
type AuthMode string

const (
	// AuthModeEnv reads the API key once from the LINEAR_API_KEY
	// environment variable.
	AuthModeEnv AuthMode = "env"
	// AuthModeHeader takes the API key per-request from the Authorization
	// header of the incoming HTTP request.
	AuthModeHeader AuthMode = "header"
)

const (
	linearAPIKeyEnv      = "LINEAR_API_KEY"
	defaultClientTimeout = 30 * time.Second
)

type ContextKey string

const (
	// AuthHeaderKey is the context key for the Authorization header value
	AuthHeaderKey ContextKey = "Authorization"

	// TestLinearClientKey is the context key for injecting a test Linear client
	TestLinearClientKey ContextKey = "test-linear-client"
)

// ParseAuthMode validates and converts a string to AuthMode. An empty
// string selects env mode.
func ParseAuthMode(mode string) (AuthMode, error) {
	switch mode {
	case "", string(AuthModeEnv):
		return AuthModeEnv, nil
	case string(AuthModeHeader):
		return AuthModeHeader, nil
	default:
		return "", fmt.Errorf("invalid auth mode: %s (valid options: env, header)", mode)
	}
}

func getLinearClient(ctx context.Context, opts LinearMCPOptions) (linear.Client, error) {
	// Check if a test client was injected via context
	if testClient := ctx.Value(TestLinearClientKey); testClient != nil {
		if client, ok := testClient.(linear.Client); ok {
			return client, nil
		}
	}

	// Normal production path

	apiKey, err := resolveAPIKey(ctx, opts.AuthMode)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultClientTimeout
	}

	return linear.NewGraphQLClient(&http.Client{Timeout: timeout}, opts.LinearURL, apiKey), nil
}

func resolveAPIKey(ctx context.Context, authMode AuthMode) (string, error) {
	switch authMode {
	case AuthModeEnv:
		apiKey := os.Getenv(linearAPIKeyEnv)
		if apiKey == "" {
			return "", fmt.Errorf("%s is not set", linearAPIKeyEnv)
		}
		return stripBearerPrefix(apiKey), nil
	case AuthModeHeader:
		apiKey := getKeyFromCtx(ctx)
		if apiKey == "" {
			return "", fmt.Errorf("no API key provided in the %s header", AuthHeaderKey)
		}
		return apiKey, nil
	default:
		return "", fmt.Errorf("unsupported auth mode: %s", authMode)
	}
}

func getKeyFromCtx(ctx context.Context) string {
	key := ctx.Value(AuthHeaderKey)
	if key == nil {
		slog.Warn("No API key provided in context.")
		return ""
	}
	keyStr, ok := key.(string)
	if !ok {
		slog.Warn("Couldn't parse API key... ignoring.")
		return ""
	}
	return keyStr
}

// stripBearerPrefix accepts keys supplied with or without the
// conventional "Bearer " prefix; the Linear API wants the bare key.
func stripBearerPrefix(key string) string {
	stripped, _ := strings.CutPrefix(key, "Bearer ")
	return stripped
}
