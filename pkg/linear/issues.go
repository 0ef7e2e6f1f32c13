package linear

import (
	"context"
	"errors"
	"fmt"
)

const issueFields = `
      id
      identifier
      number
      title
      description
      branchName
      url
      labelIds
      priority
      priorityLabel
      slaType
      projectMilestone { id }
      creator { id }
      cycle { id }
      parent { id }
      state { id }
      assignee { id }
      project { id }
      team { id }`

const issueQuery = `query($id: String!) {
  issue(id: $id) {` + issueFields + `
  }
}`

const issuesQuery = `query($filter: IssueFilter) {
  issues(filter: $filter) {
    nodes {` + issueFields + `
    }
  }
}`

const searchIssuesQuery = `query($term: String!) {
  searchIssues(term: $term) {
    nodes {` + issueFields + `
    }
  }
}`

const issueCreateMutation = `mutation($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue {` + issueFields + `
    }
  }
}`

const issueUpdateMutation = `mutation($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
  }
}`

// IssueCreateResult is the issueCreate mutation payload: a success flag
// with the created issue nested inside the envelope.
type IssueCreateResult struct {
	Success bool   `json:"success"`
	Issue   *Issue `json:"issue"`
}

// Issue fetches a single issue by id.
func (c *GraphQLClient) Issue(ctx context.Context, id string) (*Issue, error) {
	var data struct {
		Issue *Issue `json:"issue"`
	}
	if err := c.do(ctx, issueQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Issue == nil {
		return nil, fmt.Errorf("issue %q not found", id)
	}
	return data.Issue, nil
}

// Issues lists issues matching the filter. A nil or empty filter lists
// without constraints.
func (c *GraphQLClient) Issues(ctx context.Context, filter *IssueFilter) ([]Issue, error) {
	variables := map[string]any{}
	if f := filter.BuildFilter(); len(f) > 0 {
		variables["filter"] = f
	}
	var data struct {
		Issues struct {
			Nodes []Issue `json:"nodes"`
		} `json:"issues"`
	}
	if err := c.do(ctx, issuesQuery, variables, &data); err != nil {
		return nil, err
	}
	return data.Issues.Nodes, nil
}

// SearchIssues forwards the free-text term verbatim to the dedicated
// search operation.
func (c *GraphQLClient) SearchIssues(ctx context.Context, query string) ([]Issue, error) {
	var data struct {
		SearchIssues struct {
			Nodes []Issue `json:"nodes"`
		} `json:"searchIssues"`
	}
	if err := c.do(ctx, searchIssuesQuery, map[string]any{"term": query}, &data); err != nil {
		return nil, err
	}
	return data.SearchIssues.Nodes, nil
}

// CreateIssue creates an issue and returns the mutation envelope with the
// created issue nested inside.
func (c *GraphQLClient) CreateIssue(ctx context.Context, input IssueCreateInput) (*IssueCreateResult, error) {
	var data struct {
		IssueCreate *IssueCreateResult `json:"issueCreate"`
	}
	if err := c.do(ctx, issueCreateMutation, map[string]any{"input": input.ToInput()}, &data); err != nil {
		return nil, err
	}
	if data.IssueCreate == nil {
		return nil, errors.New("linear API returned an empty issueCreate payload")
	}
	return data.IssueCreate, nil
}

// UpdateIssue applies a partial update and returns the mutation's
// success flag as reported by the API.
func (c *GraphQLClient) UpdateIssue(ctx context.Context, id string, input IssueUpdateInput) (bool, error) {
	var data struct {
		IssueUpdate struct {
			Success bool `json:"success"`
		} `json:"issueUpdate"`
	}
	if err := c.do(ctx, issueUpdateMutation, map[string]any{"id": id, "input": input.ToInput()}, &data); err != nil {
		return false, err
	}
	return data.IssueUpdate.Success, nil
}
