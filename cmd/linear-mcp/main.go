package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gtarraga/linear-mcp/pkg/config"
	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/mcp"
)

const version = "1.0.0"

func main() {
	// Parse command line flags
	var listen = flag.String("listen", "", "Listen address for HTTP mode (e.g., :9300, 127.0.0.1:8080). Empty runs on stdio")
	var authMode = flag.String("auth-mode", "", "Authentication mode: env (LINEAR_API_KEY) or header (per-request Authorization header)")
	var logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error")
	var configPath = flag.String("config", "", "Path to an optional TOML config file")
	var linearURL = flag.String("linear-url", "", "Linear GraphQL endpoint URL (default: "+linear.DefaultAPIURL+")")
	var timeout = flag.Duration("timeout", 0, "Timeout for one Linear API round trip (e.g. 30s)")
	var showVersion = flag.Bool("version", false, "Print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("linear-mcp %s\n", version)
		return
	}

	// Load the optional config file; flags take precedence over it
	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
	}

	// Configure slog with the specified log level
	configureLogging(firstNonEmpty(*logLevel, cfg.LogLevel, "info"))

	// Parse and validate auth mode
	parsedAuthMode, err := mcp.ParseAuthMode(firstNonEmpty(*authMode, cfg.AuthMode))
	if err != nil {
		log.Fatalf("Invalid auth mode: %v", err)
	}

	// Create MCP options
	opts := mcp.LinearMCPOptions{
		AuthMode:  parsedAuthMode,
		LinearURL: determineLinearURL(*linearURL, cfg),
		Timeout:   determineTimeout(*timeout, cfg),
	}

	// Create MCP server
	mcpServer, err := mcp.NewMCPServer(opts)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	slog.Info("Starting server", "LinearURL", opts.LinearURL, "AuthMode", opts.AuthMode)

	// Choose server mode based on flags
	listenAddr := firstNonEmpty(*listen, cfg.Listen)
	if listenAddr != "" {
		// HTTP mode
		ctx := context.Background()
		if err := mcp.Serve(ctx, mcpServer, listenAddr); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	} else {
		// Start server on stdio (default mode)
		stdioServer := server.NewStdioServer(mcpServer)
		if err := stdioServer.Listen(context.Background(), os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}
}

// determineLinearURL resolves the Linear endpoint: flag, then config
// file, then the LINEAR_URL environment variable, then the public API.
func determineLinearURL(flagURL string, cfg *config.Config) string {
	if flagURL != "" {
		return flagURL
	}
	if cfg.Linear.URL != "" {
		return cfg.Linear.URL
	}
	if envURL := os.Getenv("LINEAR_URL"); envURL != "" {
		return envURL
	}
	return linear.DefaultAPIURL
}

// determineTimeout resolves the API timeout: flag, then config file.
// Zero lets the client fall back to its default.
func determineTimeout(flagTimeout time.Duration, cfg *config.Config) time.Duration {
	if flagTimeout != 0 {
		return flagTimeout
	}
	// Load already validated the duration string.
	d, _ := cfg.Timeout()
	return d
}

// configureLogging sets up the slog logger with the specified log level.
// Logs go to stderr; stdout belongs to the stdio transport.
func configureLogging(levelStr string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
