package issues

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func GetIssueTool() mcp.Tool {
	return mcp.NewTool(
		"get_issue",
		mcp.WithDescription("Get a Linear issue by its identifier"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Identifier of the issue"),
		),
	)
}

func (t *Toolset) GetIssueHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.clientFactory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if id == "" {
		return mcp.NewToolResultError("id parameter must not be empty"), nil
	}

	issue, err := client.Issue(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := issue.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(issue).ToMCPResult()
}
