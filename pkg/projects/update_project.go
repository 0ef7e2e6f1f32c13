package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func UpdateProjectTool() mcp.Tool {
	return mcp.NewTool(
		"update_project",
		mcp.WithDescription("Update a Linear project. Only the fields you supply are changed; "+
			"omitted fields keep their current values. Returns the freshly fetched project."),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Identifier of the project to update"),
		),
		mcp.WithString("name", mcp.Description("New name")),
		mcp.WithArray("teamIds",
			mcp.Description("Identifiers of teams replacing the current set"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("description", mcp.Description("New description in Markdown")),
		mcp.WithString("state", mcp.Description("Project state, e.g. planned, started, paused, completed, canceled")),
		mcp.WithString("startDate", mcp.Description("Start date as YYYY-MM-DD")),
		mcp.WithString("targetDate", mcp.Description("Target date as YYYY-MM-DD")),
		mcp.WithString("color", mcp.Description("Display color as a hex string, e.g. #bec2c8")),
		mcp.WithArray("memberIds",
			mcp.Description("Identifiers of members replacing the current set"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("leadId", mcp.Description("Identifier of the project lead")),
	)
}

func (t *Toolset) UpdateProjectHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	args := request.GetArguments()
	var errs linear.ValidationErrors
	input := linear.ProjectUpdateInput{
		Name:        linear.StringPtrArg(args, "name", &errs),
		TeamIDs:     linear.StringSliceArg(args, "teamIds", &errs),
		Description: linear.StringPtrArg(args, "description", &errs),
		State:       linear.StringPtrArg(args, "state", &errs),
		StartDate:   linear.StringPtrArg(args, "startDate", &errs),
		TargetDate:  linear.StringPtrArg(args, "targetDate", &errs),
		Color:       linear.StringPtrArg(args, "color", &errs),
		MemberIDs:   linear.StringSliceArg(args, "memberIds", &errs),
		LeadID:      linear.StringPtrArg(args, "leadId", &errs),
	}
	if len(errs) > 0 {
		return mcp.NewToolResultError(errs.Error()), nil
	}

	success, err := client.UpdateProject(ctx, id, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !success {
		return mcp.NewToolResultError(fmt.Sprintf("update of project %q was not successful", id)), nil
	}

	// The tool reports the updated resource, not the mutation payload:
	// re-fetch by id so the caller sees the post-update state.
	project, err := client.Project(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := project.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(project).ToMCPResult()
}
