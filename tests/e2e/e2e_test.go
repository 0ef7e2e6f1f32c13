//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"testing"
	"time"
)

var (
	testConfig *TestConfig
	mcpClient  *MCPClient
)

func TestMain(m *testing.M) {
	// Set up signal handler for graceful shutdown on Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nReceived interrupt signal, cleaning up...")
		cancel()
		if testConfig != nil {
			testConfig.Cleanup()
		}
		os.Exit(130) // Standard exit code for SIGINT
	}()

	testConfig = NewTestConfig()
	if err := testConfig.Setup(ctx); err != nil {
		fmt.Printf("Failed to setup test environment: %v\n", err)
		os.Exit(1)
	}

	mcpClient = NewMCPClient(testConfig.MCPURL)

	// Run tests
	code := m.Run()

	// Cleanup
	testConfig.Cleanup()

	os.Exit(code)
}

func TestHealthEndpoint(t *testing.T) {
	resp, err := http.Get(testConfig.MCPURL + "/health")
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestListTools(t *testing.T) {
	resp, err := mcpClient.SendRequest(t, MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	})
	if err != nil {
		t.Fatalf("Failed to list tools: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}

	resultJSON, _ := json.Marshal(resp.Result)
	resultStr := string(resultJSON)

	expectedTools := []string{
		"get_issue", "list_issues", "search_issues", "create_issue", "update_issue",
		"get_project", "list_projects", "search_projects", "create_project", "update_project",
		"get_current_time",
	}
	for _, tool := range expectedTools {
		if !strings.Contains(resultStr, `"`+tool+`"`) {
			t.Errorf("Expected tool %q not found in tools/list", tool)
		}
	}
}

func TestGetIssue(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 2, "get_issue", map[string]any{
		"id": "LIN-1",
	})
	if err != nil {
		t.Fatalf("Failed to call get_issue: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	var issue map[string]any
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &issue); err != nil {
		t.Fatalf("Failed to parse issue JSON: %v", err)
	}
	if issue["id"] != "LIN-1" {
		t.Errorf("Expected issue LIN-1, got %v", issue["id"])
	}
}

func TestGetIssueNotFound(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 3, "get_issue", map[string]any{
		"id": "LIN-404",
	})
	if err != nil {
		t.Fatalf("Failed to call get_issue: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}

	if !toolResultIsError(resp) {
		t.Fatal("Expected a tool error for a missing issue")
	}
	if !strings.Contains(toolResultText(t, resp), "not found") {
		t.Errorf("Expected a not-found message, got %q", toolResultText(t, resp))
	}
}

func TestListIssuesWithFilters(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 4, "list_issues", map[string]any{
		"priority": map[string]any{"eq": 2},
		"title":    map[string]any{"contains": "login"},
	})
	if err != nil {
		t.Fatalf("Failed to call list_issues: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	var issues []map[string]any
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &issues); err != nil {
		t.Fatalf("Failed to parse issues JSON: %v", err)
	}
	if len(issues) == 0 {
		t.Error("Expected at least one issue")
	}
}

func TestListIssuesRejectsUnknownOperator(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 5, "list_issues", map[string]any{
		"priority": map[string]any{"near": 2},
	})
	if err != nil {
		t.Fatalf("Failed to call list_issues: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}

	if !toolResultIsError(resp) {
		t.Fatal("Expected a tool error for an unknown comparator operator")
	}
	if !strings.Contains(toolResultText(t, resp), "priority") {
		t.Errorf("Expected the offending field in the error, got %q", toolResultText(t, resp))
	}
}

func TestSearchIssues(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 6, "search_issues", map[string]any{
		"query": "payment crashes",
	})
	if err != nil {
		t.Fatalf("Failed to call search_issues: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}
}

func TestCreateIssue(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 7, "create_issue", map[string]any{
		"title":  "Created by e2e",
		"teamId": "team-1",
	})
	if err != nil {
		t.Fatalf("Failed to call create_issue: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	// The result is the created issue itself, not the mutation envelope.
	var issue map[string]any
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &issue); err != nil {
		t.Fatalf("Failed to parse issue JSON: %v", err)
	}
	if _, hasEnvelope := issue["success"]; hasEnvelope {
		t.Error("Expected the unwrapped issue, got the mutation envelope")
	}
	if issue["title"] != "Created by e2e" {
		t.Errorf("Unexpected created issue: %v", issue)
	}
}

func TestCreateIssueMissingRequiredFields(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 8, "create_issue", map[string]any{})
	if err != nil {
		t.Fatalf("Failed to call create_issue: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}

	if !toolResultIsError(resp) {
		t.Fatal("Expected a tool error for missing required fields")
	}
	msg := toolResultText(t, resp)
	if !strings.Contains(msg, "title") || !strings.Contains(msg, "teamId") {
		t.Errorf("Expected every missing field listed, got %q", msg)
	}
}

func TestUpdateIssue(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 9, "update_issue", map[string]any{
		"id":    "LIN-1",
		"title": "Renamed by e2e",
	})
	if err != nil {
		t.Fatalf("Failed to call update_issue: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	// update_issue reports the API's bare success flag.
	if got := toolResultText(t, resp); got != "true" {
		t.Errorf("Expected the literal success flag, got %q", got)
	}
}

func TestGetProject(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 10, "get_project", map[string]any{
		"id": "proj-1",
	})
	if err != nil {
		t.Fatalf("Failed to call get_project: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	var project map[string]any
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &project); err != nil {
		t.Fatalf("Failed to parse project JSON: %v", err)
	}
	if project["id"] != "proj-1" {
		t.Errorf("Expected project proj-1, got %v", project["id"])
	}

	// Membership connections are flattened to id lists.
	teamIDs, ok := project["teamIds"].([]any)
	if !ok || len(teamIDs) == 0 {
		t.Errorf("Expected flattened teamIds, got %v", project["teamIds"])
	}
}

func TestListProjects(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 11, "list_projects", map[string]any{
		"state":  map[string]any{"eq": "started"},
		"teamId": "team-1",
	})
	if err != nil {
		t.Fatalf("Failed to call list_projects: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}
}

func TestSearchProjects(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 12, "search_projects", map[string]any{
		"query": "launch",
	})
	if err != nil {
		t.Fatalf("Failed to call search_projects: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}
}

func TestCreateProject(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 13, "create_project", map[string]any{
		"name":    "Created by e2e",
		"teamIds": []any{"team-1"},
	})
	if err != nil {
		t.Fatalf("Failed to call create_project: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	var project map[string]any
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &project); err != nil {
		t.Fatalf("Failed to parse project JSON: %v", err)
	}
	if project["name"] != "Created by e2e" {
		t.Errorf("Unexpected created project: %v", project)
	}
}

func TestUpdateProject(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 14, "update_project", map[string]any{
		"id":   "proj-1",
		"name": "Renamed by e2e",
	})
	if err != nil {
		t.Fatalf("Failed to call update_project: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	// update_project returns the freshly fetched project.
	var project map[string]any
	if err := json.Unmarshal([]byte(toolResultText(t, resp)), &project); err != nil {
		t.Fatalf("Failed to parse project JSON: %v", err)
	}
	if project["id"] != "proj-1" {
		t.Errorf("Expected the re-fetched project, got %v", project)
	}
}

func TestGetCurrentTime(t *testing.T) {
	resp, err := mcpClient.CallTool(t, 15, "get_current_time", map[string]any{})
	if err != nil {
		t.Fatalf("Failed to call get_current_time: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("MCP error: %s", resp.Error.Message)
	}
	if toolResultIsError(resp) {
		t.Fatalf("Tool error: %s", toolResultText(t, resp))
	}

	text := toolResultText(t, resp)
	if _, err := time.Parse(time.RFC3339, strings.SplitN(text, " ", 2)[0]); err != nil {
		t.Errorf("Expected an RFC3339 timestamp, got %q", text)
	}
}
