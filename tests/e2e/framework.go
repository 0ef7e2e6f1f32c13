//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/gtarraga/linear-mcp/pkg/mcp"
)

const (
	defaultLocalAddr = "localhost:9300"
	defaultTimeout   = 30 * time.Second
)

// TestConfig holds configuration and runtime state for e2e tests
type TestConfig struct {
	Timeout time.Duration

	// Runtime state
	MCPURL     string
	linearStub *httptest.Server
	serverStop context.CancelFunc
	serverDone chan error
	cleanedUp  bool
}

// NewTestConfig creates a new TestConfig with defaults
func NewTestConfig() *TestConfig {
	return &TestConfig{Timeout: defaultTimeout}
}

// Setup starts the server under test. When LINEAR_MCP_URL is set the tests
// target that external server; otherwise a stub Linear GraphQL backend and
// an in-process linear-mcp server are started.
func (c *TestConfig) Setup(ctx context.Context) error {
	if envURL := os.Getenv("LINEAR_MCP_URL"); envURL != "" {
		fmt.Printf("Using LINEAR_MCP_URL from environment: %s\n", envURL)
		c.MCPURL = envURL
		return c.waitForReady(ctx, c.MCPURL+"/health")
	}

	c.linearStub = httptest.NewServer(http.HandlerFunc(stubLinearHandler))
	if err := os.Setenv("LINEAR_API_KEY", "lin_api_e2e_stub"); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}

	mcpServer, err := mcp.NewMCPServer(mcp.LinearMCPOptions{
		AuthMode:  mcp.AuthModeEnv,
		LinearURL: c.linearStub.URL,
	})
	if err != nil {
		c.Cleanup()
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	serveCtx, cancel := context.WithCancel(ctx)
	c.serverStop = cancel
	c.serverDone = make(chan error, 1)
	go func() {
		c.serverDone <- mcp.Serve(serveCtx, mcpServer, defaultLocalAddr)
	}()

	c.MCPURL = "http://" + defaultLocalAddr
	if err := c.waitForReady(ctx, c.MCPURL+"/health"); err != nil {
		c.Cleanup()
		return fmt.Errorf("failed waiting for linear-mcp: %w", err)
	}

	fmt.Printf("linear-mcp is ready at %s\n", c.MCPURL)
	return nil
}

// Cleanup stops the in-process server and the stub backend. Safe to call
// multiple times.
func (c *TestConfig) Cleanup() {
	if c.cleanedUp {
		return
	}
	c.cleanedUp = true
	if c.serverStop != nil {
		c.serverStop()
	}
	if c.serverDone != nil {
		select {
		case err := <-c.serverDone:
			if err != nil {
				fmt.Printf("server shutdown error: %v\n", err)
			}
		case <-time.After(c.Timeout):
			fmt.Println("timeout waiting for server shutdown")
		}
	}
	if c.linearStub != nil {
		c.linearStub.Close()
	}
}

// waitForReady polls the target URL until it returns HTTP 200, timeout
// occurs, or the context is cancelled
func (c *TestConfig) waitForReady(ctx context.Context, targetURL string) error {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var lastErr error
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for %s to be ready (last error: %v)", targetURL, lastErr)
		case <-ticker.C:
			resp, err := http.Get(targetURL)
			if err != nil {
				lastErr = err
				continue
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
	}
}

// stubLinearHandler is a minimal Linear GraphQL backend. It dispatches on
// substrings of the incoming query and serves fixed fixtures, enough to
// exercise every tool end to end without a Linear workspace.
func stubLinearHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		writeGraphQLError(w, "authentication required")
		return
	}

	var req struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeGraphQLError(w, "malformed request body")
		return
	}

	switch {
	case strings.Contains(req.Query, "issueCreate"):
		writeData(w, map[string]any{
			"issueCreate": map[string]any{
				"success": true,
				"issue":   stubIssue("LIN-101", "Created by e2e"),
			},
		})
	case strings.Contains(req.Query, "issueUpdate"):
		writeData(w, map[string]any{
			"issueUpdate": map[string]any{"success": true},
		})
	case strings.Contains(req.Query, "searchIssues"):
		writeData(w, map[string]any{
			"searchIssues": map[string]any{
				"nodes": []any{stubIssue("LIN-2", "Payment flow crashes on submit")},
			},
		})
	case strings.Contains(req.Query, "issue("):
		id, _ := req.Variables["id"].(string)
		if id == "LIN-404" {
			writeData(w, map[string]any{"issue": nil})
			return
		}
		writeData(w, map[string]any{"issue": stubIssue(id, "Fix login redirect")})
	case strings.Contains(req.Query, "issues("):
		writeData(w, map[string]any{
			"issues": map[string]any{
				"nodes": []any{
					stubIssue("LIN-1", "Fix login redirect"),
					stubIssue("LIN-2", "Payment flow crashes on submit"),
				},
			},
		})
	case strings.Contains(req.Query, "projectCreate"):
		writeData(w, map[string]any{
			"projectCreate": map[string]any{"project": stubProject("proj-101", "Created by e2e")},
		})
	case strings.Contains(req.Query, "projectUpdate"):
		writeData(w, map[string]any{
			"projectUpdate": map[string]any{"success": true},
		})
	case strings.Contains(req.Query, "searchProjects"):
		writeData(w, map[string]any{
			"searchProjects": map[string]any{
				"nodes": []any{stubProject("proj-2", "Q3 launch")},
			},
		})
	case strings.Contains(req.Query, "project("):
		id, _ := req.Variables["id"].(string)
		writeData(w, map[string]any{"project": stubProject(id, "Q3 launch")})
	case strings.Contains(req.Query, "projects("):
		writeData(w, map[string]any{
			"projects": map[string]any{
				"nodes": []any{stubProject("proj-1", "Q3 launch")},
			},
		})
	default:
		writeGraphQLError(w, "unrecognized query")
	}
}

func stubIssue(id, title string) map[string]any {
	return map[string]any{
		"id":         id,
		"identifier": id,
		"title":      title,
		"priority":   2,
		"team":       map[string]any{"id": "team-1", "name": "Platform"},
		"state":      map[string]any{"id": "state-1", "name": "In Progress"},
		"createdAt":  "2026-08-01T10:00:00.000Z",
		"updatedAt":  "2026-08-15T10:00:00.000Z",
	}
}

func stubProject(id, name string) map[string]any {
	return map[string]any{
		"id":     id,
		"slugId": "q3-launch",
		"name":   name,
		"state":  "started",
		"members": map[string]any{
			"nodes": []any{map[string]any{"id": "user-1"}},
		},
		"teams": map[string]any{
			"nodes": []any{map[string]any{"id": "team-1"}},
		},
	}
}

func writeData(w http.ResponseWriter, data map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeGraphQLError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]any{{"message": message}},
	})
}
