package issues

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

const (
	stringComparatorDesc = "String comparator object with any of: eq, contains, startsWith, endsWith"
	numberComparatorDesc = "Number comparator object with any of: eq, lt, lte, gt, gte"
	dateComparatorDesc   = "Date comparator object with any of: eq, lt, lte, gt, gte. " +
		"Values are ISO 8601 timestamps or ISO 8601 durations relative to now (e.g. \"-P2W\" for two weeks ago); " +
		"use get_current_time to anchor relative durations"
)

func ListIssuesTool() mcp.Tool {
	return mcp.NewTool(
		"list_issues",
		mcp.WithDescription(`List Linear issues matching optional filters.

Every parameter is optional; only the filters you supply are forwarded.
Prefer this tool over search_issues when you can express the question as
structured filters.`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithObject("title", mcp.Description(stringComparatorDesc)),
		mcp.WithObject("number", mcp.Description(numberComparatorDesc)),
		mcp.WithObject("priority", mcp.Description(numberComparatorDesc+". Priority 0 means no priority, 1 is urgent, 4 is low")),
		mcp.WithObject("createdAt", mcp.Description(dateComparatorDesc)),
		mcp.WithObject("updatedAt", mcp.Description(dateComparatorDesc)),
		mcp.WithString("teamId", mcp.Description("Only issues belonging to this team")),
		mcp.WithString("assigneeId", mcp.Description("Only issues assigned to this user")),
		mcp.WithString("creatorId", mcp.Description("Only issues created by this user")),
		mcp.WithString("projectId", mcp.Description("Only issues in this project")),
		mcp.WithString("stateId", mcp.Description("Only issues in this workflow state")),
		mcp.WithString("cycleId", mcp.Description("Only issues in this cycle")),
		mcp.WithString("parentId", mcp.Description("Only sub-issues of this issue")),
		mcp.WithString("labelId", mcp.Description("Only issues carrying this label")),
	)
}

func (t *Toolset) ListIssuesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.clientFactory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filter, err := decodeIssueFilter(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	issues, err := client.Issues(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := linear.ValidateIssues(issues); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(issues).ToMCPResult()
}

// decodeIssueFilter builds the typed filter from the raw arguments.
// Presence is keyed on the argument being supplied, never on its value,
// so a priority comparator of {eq: 0} survives into the filter.
func decodeIssueFilter(args map[string]any) (*linear.IssueFilter, error) {
	var errs linear.ValidationErrors
	filter := &linear.IssueFilter{}

	if raw, ok := args["title"]; ok {
		c, err := linear.DecodeStringComparator("title", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("title", err)...)
		}
		filter.Title = c
	}
	if raw, ok := args["number"]; ok {
		c, err := linear.DecodeNumberComparator("number", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("number", err)...)
		}
		filter.Number = c
	}
	if raw, ok := args["priority"]; ok {
		c, err := linear.DecodeNumberComparator("priority", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("priority", err)...)
		}
		filter.Priority = c
	}
	if raw, ok := args["createdAt"]; ok {
		c, err := linear.DecodeDateComparator("createdAt", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("createdAt", err)...)
		}
		filter.CreatedAt = c
	}
	if raw, ok := args["updatedAt"]; ok {
		c, err := linear.DecodeDateComparator("updatedAt", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("updatedAt", err)...)
		}
		filter.UpdatedAt = c
	}

	filter.TeamID = linear.StringPtrArg(args, "teamId", &errs)
	filter.AssigneeID = linear.StringPtrArg(args, "assigneeId", &errs)
	filter.CreatorID = linear.StringPtrArg(args, "creatorId", &errs)
	filter.ProjectID = linear.StringPtrArg(args, "projectId", &errs)
	filter.StateID = linear.StringPtrArg(args, "stateId", &errs)
	filter.CycleID = linear.StringPtrArg(args, "cycleId", &errs)
	filter.ParentID = linear.StringPtrArg(args, "parentId", &errs)
	filter.LabelID = linear.StringPtrArg(args, "labelId", &errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return filter, nil
}
