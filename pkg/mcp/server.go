package mcp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gtarraga/linear-mcp/pkg/issues"
	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/projects"
)

// LinearMCPOptions contains configuration options for the MCP server
type LinearMCPOptions struct {
	AuthMode  AuthMode
	LinearURL string
	Timeout   time.Duration
}

const (
	mcpEndpoint            = "/mcp"
	healthEndpoint         = "/health"
	serverName             = "linear-mcp"
	serverVersion          = "1.0.0"
	defaultShutdownTimeout = 10 * time.Second

	serverInstructions = `You are an assistant with direct access to Linear issues and projects through this MCP server.

## WORKFLOW FOR READING

1. Prefer list_issues/list_projects with structured filters when the question can be expressed as filters (priority, team, assignee, dates). Use search_issues/search_projects only for genuinely free-text questions.
2. Filter parameters are optional; supply only the ones you need. Comparator parameters are objects, e.g. {"eq": 2} or {"gte": "-P2W"}.
3. Date comparator values are ISO 8601 timestamps or ISO 8601 durations relative to now (e.g. "-P2W" for two weeks ago). Call get_current_time first when you need to anchor a relative duration to an absolute date.

## WORKFLOW FOR WRITING

1. create_issue requires a title and a teamId; resolve the team id from an existing issue (list_issues or get_issue) before creating. create_project requires a name and at least one teamId.
2. update_issue and update_project change only the fields you supply; omitted fields keep their current values.
3. update_issue returns the API's success flag; update_project returns the freshly fetched project.

## CRITICAL RULES

1. Identifiers are opaque strings assigned by Linear - never fabricate or guess an id.
2. Priority values: 0 (none), 1 (urgent), 2 (high), 3 (medium), 4 (low).
3. Results are JSON-encoded Linear resources; report the fields the user asked about rather than dumping whole objects.`
)

func NewMCPServer(opts LinearMCPOptions) (*server.MCPServer, error) {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithLogging(),
		server.WithToolCapabilities(true),
		server.WithInstructions(serverInstructions),
		server.WithToolHandlerMiddleware(toolCallMiddleware),
	)

	if err := SetupTools(mcpServer, opts); err != nil {
		return nil, err
	}

	return mcpServer, nil
}

func SetupTools(mcpServer *server.MCPServer, opts LinearMCPOptions) error {
	clientFactory := func(ctx context.Context) (linear.Client, error) {
		return getLinearClient(ctx, opts)
	}

	issueToolset := issues.NewToolset(clientFactory)
	projectToolset := projects.NewToolset(clientFactory)

	// Add tools to server
	mcpServer.AddTool(issues.GetIssueTool(), issueToolset.GetIssueHandler)
	mcpServer.AddTool(issues.ListIssuesTool(), issueToolset.ListIssuesHandler)
	mcpServer.AddTool(issues.SearchIssuesTool(), issueToolset.SearchIssuesHandler)
	mcpServer.AddTool(issues.CreateIssueTool(), issueToolset.CreateIssueHandler)
	mcpServer.AddTool(issues.UpdateIssueTool(), issueToolset.UpdateIssueHandler)

	mcpServer.AddTool(projects.GetProjectTool(), projectToolset.GetProjectHandler)
	mcpServer.AddTool(projects.ListProjectsTool(), projectToolset.ListProjectsHandler)
	mcpServer.AddTool(projects.SearchProjectsTool(), projectToolset.SearchProjectsHandler)
	mcpServer.AddTool(projects.CreateProjectTool(), projectToolset.CreateProjectHandler)
	mcpServer.AddTool(projects.UpdateProjectTool(), projectToolset.UpdateProjectHandler)

	mcpServer.AddTool(CreateGetCurrentTimeTool(), CurrentTimeHandler)

	return nil
}

func authFromRequest(ctx context.Context, r *http.Request) context.Context {
	authHeaderValue := r.Header.Get(string(AuthHeaderKey))
	if authHeaderValue == "" {
		return ctx
	}
	// Linear API keys arrive with or without the Bearer prefix.
	key, _ := strings.CutPrefix(authHeaderValue, "Bearer ")
	return context.WithValue(ctx, AuthHeaderKey, key)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Incoming request", "method", r.Method, "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		slog.Debug("Request headers", "headers", r.Header)
		if r.ContentLength > 0 {
			slog.Info("Request content length", "content_length", r.ContentLength)
		}
		next.ServeHTTP(w, r)
	})
}

func Serve(ctx context.Context, mcpServer *server.MCPServer, listenAddr string) error {
	mux := http.NewServeMux()

	httpServer := &http.Server{
		Addr:    listenAddr,
		Handler: loggingMiddleware(mux),
	}

	streamableHTTPServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStreamableHTTPServer(httpServer),
		server.WithStateLess(true),
		server.WithHTTPContextFunc(authFromRequest),
	)
	mux.Handle(mcpEndpoint, streamableHTTPServer)

	mux.Handle("/", streamableHTTPServer)

	mux.HandleFunc(healthEndpoint, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "listen_addr", listenAddr, "mcp_endpoint", mcpEndpoint)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-sigChan:
		slog.Warn("Received signal, initiating graceful shutdown", "signal", sig)
		cancel()
	case <-ctx.Done():
		slog.Warn("Context cancelled, initiating graceful shutdown")
	case err := <-serverErr:
		slog.Error("HTTP server error", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()

	slog.Info("Shutting down HTTP server gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
		return err
	}

	slog.Info("HTTP server shutdown complete")
	return nil
}
