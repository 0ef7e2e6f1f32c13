package projects

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func GetProjectTool() mcp.Tool {
	return mcp.NewTool(
		"get_project",
		mcp.WithDescription("Get a Linear project by its identifier"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Identifier of the project"),
		),
	)
}

func (t *Toolset) GetProjectHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	project, err := client.Project(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := project.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(project).ToMCPResult()
}
