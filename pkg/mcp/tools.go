package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/issues"
	"github.com/gtarraga/linear-mcp/pkg/projects"
)

// AllTools returns every tool definition this server registers, in
// registration order. Used by SetupTools' wiring tests and by
// cmd/generate-tools-doc.
func AllTools() []mcp.Tool {
	return []mcp.Tool{
		issues.GetIssueTool(),
		issues.ListIssuesTool(),
		issues.SearchIssuesTool(),
		issues.CreateIssueTool(),
		issues.UpdateIssueTool(),
		projects.GetProjectTool(),
		projects.ListProjectsTool(),
		projects.SearchProjectsTool(),
		projects.CreateProjectTool(),
		projects.UpdateProjectTool(),
		CreateGetCurrentTimeTool(),
	}
}
