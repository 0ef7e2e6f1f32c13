package issues

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func UpdateIssueTool() mcp.Tool {
	return mcp.NewTool(
		"update_issue",
		mcp.WithDescription("Update a Linear issue. Only the fields you supply are changed; "+
			"omitted fields keep their current values. Returns the API's success flag."),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Identifier of the issue to update"),
		),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("teamId", mcp.Description("Identifier of the team to move the issue to")),
		mcp.WithString("description", mcp.Description("New description in Markdown")),
		mcp.WithNumber("priority", mcp.Description("Priority: 0 (none), 1 (urgent), 2 (high), 3 (medium), 4 (low)")),
		mcp.WithArray("labelIds",
			mcp.Description("Identifiers of labels replacing the current set"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("assigneeId", mcp.Description("Identifier of the user to assign")),
		mcp.WithString("projectId", mcp.Description("Identifier of the project")),
		mcp.WithString("stateId", mcp.Description("Identifier of the workflow state")),
		mcp.WithString("parentId", mcp.Description("Identifier of the parent issue")),
		mcp.WithString("cycleId", mcp.Description("Identifier of the cycle")),
		mcp.WithString("projectMilestoneId", mcp.Description("Identifier of the project milestone")),
	)
}

func (t *Toolset) UpdateIssueHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	input := linear.IssueUpdateInput{
		Title:              linear.StringPtrArg(args, "title", &errs),
		TeamID:             linear.StringPtrArg(args, "teamId", &errs),
		Description:        linear.StringPtrArg(args, "description", &errs),
		Priority:           linear.NumberPtrArg(args, "priority", &errs),
		LabelIDs:           linear.StringSliceArg(args, "labelIds", &errs),
		AssigneeID:         linear.StringPtrArg(args, "assigneeId", &errs),
		ProjectID:          linear.StringPtrArg(args, "projectId", &errs),
		StateID:            linear.StringPtrArg(args, "stateId", &errs),
		ParentID:           linear.StringPtrArg(args, "parentId", &errs),
		CycleID:            linear.StringPtrArg(args, "cycleId", &errs),
		ProjectMilestoneID: linear.StringPtrArg(args, "projectMilestoneId", &errs),
	}
	if len(errs) > 0 {
		return mcp.NewToolResultError(errs.Error()), nil
	}

	// The tool's result is the literal success flag from the mutation
	// payload, not the updated resource.
	success, err := client.UpdateIssue(ctx, id, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(success).ToMCPResult()
}
