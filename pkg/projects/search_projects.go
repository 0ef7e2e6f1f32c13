package projects

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func SearchProjectsTool() mcp.Tool {
	return mcp.NewTool(
		"search_projects",
		mcp.WithDescription("Search Linear projects with a free-text query. "+
			"The query is forwarded verbatim to Linear's project search; "+
			"use list_projects when the question can be expressed as structured filters."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search query"),
		),
	)
}

func (t *Toolset) SearchProjectsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.clientFactory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if query == "" {
		return mcp.NewToolResultError("query parameter must not be empty"), nil
	}

	projects, err := client.SearchProjects(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := linear.ValidateProjects(projects); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(projects).ToMCPResult()
}
