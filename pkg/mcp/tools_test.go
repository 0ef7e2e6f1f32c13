package mcp

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestAllTools(t *testing.T) {
	tools := AllTools()

	if len(tools) != 11 {
		t.Fatalf("expected 11 registered tools, got %d", len(tools))
	}

	expectedOrder := []string{
		"get_issue",
		"list_issues",
		"search_issues",
		"create_issue",
		"update_issue",
		"get_project",
		"list_projects",
		"search_projects",
		"create_project",
		"update_project",
		"get_current_time",
	}
	for i, name := range expectedOrder {
		if tools[i].Name != name {
			t.Errorf("expected tool %q at position %d, got %q", name, i, tools[i].Name)
		}
	}

	seen := map[string]bool{}
	for _, tool := range tools {
		if seen[tool.Name] {
			t.Errorf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true
		if tool.Description == "" {
			t.Errorf("tool %q has no description", tool.Name)
		}
	}
}

func TestGetCurrentTimeToolSchema(t *testing.T) {
	tool := CreateGetCurrentTimeTool()

	var schema map[string]any
	if err := json.Unmarshal(tool.RawInputSchema, &schema); err != nil {
		t.Fatalf("raw input schema is not valid JSON: %v", err)
	}
	if schema["type"] != "object" {
		t.Errorf("expected object schema, got %v", schema["type"])
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok || len(props) != 0 {
		t.Errorf("expected an empty properties object, got %v", schema["properties"])
	}
}

func TestCurrentTimeHandler(t *testing.T) {
	result, err := CurrentTimeHandler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}

	matched, err := regexp.MatchString(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z \(server timezone: .+\)$`, text.Text)
	if err != nil {
		t.Fatalf("bad regexp: %v", err)
	}
	if !matched {
		t.Errorf("expected an RFC3339 UTC timestamp with timezone suffix, got %q", text.Text)
	}
	if !strings.Contains(text.Text, "server timezone:") {
		t.Errorf("expected the server timezone in the output, got %q", text.Text)
	}
}
