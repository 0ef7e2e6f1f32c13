package issues

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

func CreateIssueTool() mcp.Tool {
	return mcp.NewTool(
		"create_issue",
		mcp.WithDescription("Create a Linear issue. Only title and teamId are required; "+
			"resolve the team id with list_issues or search_issues before creating."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the issue"),
		),
		mcp.WithString("teamId",
			mcp.Required(),
			mcp.Description("Identifier of the team the issue belongs to"),
		),
		mcp.WithString("description", mcp.Description("Issue description in Markdown")),
		mcp.WithNumber("priority", mcp.Description("Priority: 0 (none), 1 (urgent), 2 (high), 3 (medium), 4 (low)")),
		mcp.WithArray("labelIds",
			mcp.Description("Identifiers of labels to attach"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("assigneeId", mcp.Description("Identifier of the user to assign")),
		mcp.WithString("projectId", mcp.Description("Identifier of the project to add the issue to")),
		mcp.WithString("stateId", mcp.Description("Identifier of the workflow state")),
		mcp.WithString("parentId", mcp.Description("Identifier of the parent issue")),
		mcp.WithString("cycleId", mcp.Description("Identifier of the cycle")),
		mcp.WithString("projectMilestoneId", mcp.Description("Identifier of the project milestone")),
	)
}

func (t *Toolset) CreateIssueHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.clientFactory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.GetArguments()
	var errs linear.ValidationErrors
	input := linear.IssueCreateInput{
		Title:              linear.StringArg(args, "title", &errs),
		TeamID:             linear.StringArg(args, "teamId", &errs),
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
	if err := input.Validate(); err != nil {
		errs = append(errs, linear.AsValidationErrors("input", err)...)
	}
	if len(errs) > 0 {
		return mcp.NewToolResultError(errs.Error()), nil
	}

	created, err := client.CreateIssue(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// issueCreate wraps the created issue inside its mutation envelope.
	if created.Issue == nil {
		return mcp.NewToolResultError("issue creation returned no issue"), nil
	}
	if err := created.Issue.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(created.Issue).ToMCPResult()
}
