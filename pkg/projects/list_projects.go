package projects

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gtarraga/linear-mcp/pkg/linear"
	"github.com/gtarraga/linear-mcp/pkg/resultutil"
)

const (
	stringComparatorDesc = "String comparator object with any of: eq, contains, startsWith, endsWith"
	dateComparatorDesc   = "Date comparator object with any of: eq, lt, lte, gt, gte. " +
		"Values are ISO 8601 timestamps or ISO 8601 durations relative to now (e.g. \"-P2W\" for two weeks ago); " +
		"use get_current_time to anchor relative durations"
)

func ListProjectsTool() mcp.Tool {
	return mcp.NewTool(
		"list_projects",
		mcp.WithDescription(`List Linear projects matching optional filters.

Every parameter is optional; only the filters you supply are forwarded.
Prefer this tool over search_projects when you can express the question
as structured filters.`),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithObject("name", mcp.Description(stringComparatorDesc)),
		mcp.WithObject("state", mcp.Description(stringComparatorDesc+". States are e.g. planned, started, paused, completed, canceled")),
		mcp.WithObject("createdAt", mcp.Description(dateComparatorDesc)),
		mcp.WithObject("updatedAt", mcp.Description(dateComparatorDesc)),
		mcp.WithObject("startDate", mcp.Description(dateComparatorDesc)),
		mcp.WithObject("targetDate", mcp.Description(dateComparatorDesc)),
		mcp.WithString("leadId", mcp.Description("Only projects led by this user")),
		mcp.WithString("memberId", mcp.Description("Only projects with this user as a member")),
		mcp.WithString("teamId", mcp.Description("Only projects belonging to this team")),
	)
}

func (t *Toolset) ListProjectsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	client, err := t.clientFactory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	filter, err := decodeProjectFilter(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projects, err := client.Projects(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := linear.ValidateProjects(projects); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return resultutil.NewSuccessResult(projects).ToMCPResult()
}

// decodeProjectFilter builds the typed filter from the raw arguments.
// memberId and teamId address to-many memberships and are rewritten into
// nested relation shapes by the filter builder; leadId stays scalar.
func decodeProjectFilter(args map[string]any) (*linear.ProjectFilter, error) {
	var errs linear.ValidationErrors
	filter := &linear.ProjectFilter{}

	if raw, ok := args["name"]; ok {
		c, err := linear.DecodeStringComparator("name", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("name", err)...)
		}
		filter.Name = c
	}
	if raw, ok := args["state"]; ok {
		c, err := linear.DecodeStringComparator("state", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("state", err)...)
		}
		filter.State = c
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
	if raw, ok := args["startDate"]; ok {
		c, err := linear.DecodeDateComparator("startDate", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("startDate", err)...)
		}
		filter.StartDate = c
	}
	if raw, ok := args["targetDate"]; ok {
		c, err := linear.DecodeDateComparator("targetDate", raw)
		if err != nil {
			errs = append(errs, linear.AsValidationErrors("targetDate", err)...)
		}
		filter.TargetDate = c
	}

	filter.LeadID = linear.StringPtrArg(args, "leadId", &errs)
	filter.MemberID = linear.StringPtrArg(args, "memberId", &errs)
	filter.TeamID = linear.StringPtrArg(args, "teamId", &errs)

	if len(errs) > 0 {
		return nil, errs
	}
	return filter, nil
}
