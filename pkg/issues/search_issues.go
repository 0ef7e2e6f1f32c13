package issues

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func SearchIssuesTool() mcp.Tool {
	return mcp.NewTool(
		"search_issues",
		mcp.WithDescription("Search Linear issues with a free-text query. "+
			"The query is forwarded verbatim to Linear's issue search; "+
			"use list_issues when the question can be expressed as structured filters."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search query"),
		),
	)
}

func (t *Toolset) SearchIssuesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	issues, err := client.SearchIssues(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := linear.ValidateIssues(issues); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(issues).ToMCPResult()
}
