package projects

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func CreateProjectTool() mcp.Tool {
	return mcp.NewTool(
		"create_project",
		mcp.WithDescription("Create a Linear project. Only name and teamIds are required."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the project"),
		),
		mcp.WithArray("teamIds",
			mcp.Required(),
			mcp.Description("Identifiers of the teams the project belongs to"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("description", mcp.Description("Project description in Markdown")),
		mcp.WithString("state", mcp.Description("Project state, e.g. planned, started, paused, completed, canceled")),
		mcp.WithString("startDate", mcp.Description("Start date as YYYY-MM-DD")),
		mcp.WithString("targetDate", mcp.Description("Target date as YYYY-MM-DD")),
		mcp.WithString("color", mcp.Description("Display color as a hex string, e.g. #bec2c8")),
		mcp.WithArray("memberIds",
			mcp.Description("Identifiers of the project members"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("leadId", mcp.Description("Identifier of the project lead")),
	)
}

func (t *Toolset) CreateProjectHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.clientFactory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	var errs linear.ValidationErrors
	input := linear.ProjectCreateInput{
		Name:        linear.StringArg(args, "name", &errs),
		TeamIDs:     linear.StringSliceArg(args, "teamIds", &errs),
		Description: linear.StringPtrArg(args, "description", &errs),
		State:       linear.StringPtrArg(args, "state", &errs),
		StartDate:   linear.StringPtrArg(args, "startDate", &errs),
		TargetDate:  linear.StringPtrArg(args, "targetDate", &errs),
		Color:       linear.StringPtrArg(args, "color", &errs),
		MemberIDs:   linear.StringSliceArg(args, "memberIds", &errs),
		LeadID:      linear.StringPtrArg(args, "leadId", &errs),
	}
	if err := input.Validate(); err != nil {
		errs = append(errs, linear.AsValidationErrors("input", err)...)
	}
	if len(errs) > 0 {
		return mcp.NewToolResultError(errs.Error()), nil
	}

	// Unlike issueCreate, projectCreate hands back the created project
	// directly from the mutation payload.
	project, err := client.CreateProject(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := project.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(project).ToMCPResult()
}
