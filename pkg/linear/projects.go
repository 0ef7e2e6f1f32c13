package linear

import (
	"context"
	"errors"
	"fmt"
)

const projectFields = `
      id
      slugId
      name
      description
      state
      startDate
      targetDate
      color
      members { nodes { id } }
      teams { nodes { id } }
      lead { id }`

const projectQuery = `query($id: String!) {
  project(id: $id) {` + projectFields + `
  }
}`

const projectsQuery = `query($filter: ProjectFilter) {
  projects(filter: $filter) {
    nodes {` + projectFields + `
    }
  }
}`

const searchProjectsQuery = `query($term: String!) {
  searchProjects(term: $term) {
    nodes {` + projectFields + `
    }
  }
}`

const projectCreateMutation = `mutation($input: ProjectCreateInput!) {
  projectCreate(input: $input) {
    success
    project {` + projectFields + `
    }
  }
}`

const projectUpdateMutation = `mutation($id: String!, $input: ProjectUpdateInput!) {
  projectUpdate(id: $id, input: $input) {
    success
  }
}`

type refConnection struct {
	Nodes []EntityRef `json:"nodes"`
}

// projectNode is the wire shape of a project: memberships arrive as
// connections and are flattened into the Project model's id lists.
type projectNode struct {
	ID          string        `json:"id"`
	SlugID      string        `json:"slugId"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	State       *string       `json:"state"`
	StartDate   *string       `json:"startDate"`
	TargetDate  *string       `json:"targetDate"`
	Color       *string       `json:"color"`
	Members     refConnection `json:"members"`
	Teams       refConnection `json:"teams"`
	Lead        *EntityRef    `json:"lead"`
}

func (n *projectNode) toProject() Project {
	p := Project{
		ID:          n.ID,
		SlugID:      n.SlugID,
		Name:        n.Name,
		Description: n.Description,
		State:       n.State,
		StartDate:   n.StartDate,
		TargetDate:  n.TargetDate,
		Color:       n.Color,
		MemberIDs:   make([]string, 0, len(n.Members.Nodes)),
		TeamIDs:     make([]string, 0, len(n.Teams.Nodes)),
	}
	for _, m := range n.Members.Nodes {
		p.MemberIDs = append(p.MemberIDs, m.ID)
	}
	for _, t := range n.Teams.Nodes {
		p.TeamIDs = append(p.TeamIDs, t.ID)
	}
	if n.Lead != nil {
		leadID := n.Lead.ID
		p.LeadID = &leadID
	}
	return p
}

func projectsFromNodes(nodes []projectNode) []Project {
	projects := make([]Project, 0, len(nodes))
	for i := range nodes {
		projects = append(projects, nodes[i].toProject())
	}
	return projects
}

// Project fetches a single project by id.
func (c *GraphQLClient) Project(ctx context.Context, id string) (*Project, error) {
	var data struct {
		Project *projectNode `json:"project"`
	}
	if err := c.do(ctx, projectQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Project == nil {
		return nil, fmt.Errorf("project %q not found", id)
	}
	project := data.Project.toProject()
	return &project, nil
}

// Projects lists projects matching the filter. A nil or empty filter
// lists without constraints.
func (c *GraphQLClient) Projects(ctx context.Context, filter *ProjectFilter) ([]Project, error) {
	variables := map[string]any{}
	if f := filter.BuildFilter(); len(f) > 0 {
		variables["filter"] = f
	}
	var data struct {
		Projects struct {
			Nodes []projectNode `json:"nodes"`
		} `json:"projects"`
	}
	if err := c.do(ctx, projectsQuery, variables, &data); err != nil {
		return nil, err
	}
	return projectsFromNodes(data.Projects.Nodes), nil
}

// SearchProjects forwards the free-text term verbatim to the dedicated
// search operation.
func (c *GraphQLClient) SearchProjects(ctx context.Context, query string) ([]Project, error) {
	var data struct {
		SearchProjects struct {
			Nodes []projectNode `json:"nodes"`
		} `json:"searchProjects"`
	}
	if err := c.do(ctx, searchProjectsQuery, map[string]any{"term": query}, &data); err != nil {
		return nil, err
	}
	return projectsFromNodes(data.SearchProjects.Nodes), nil
}

// CreateProject creates a project and returns the created object taken
// directly from the mutation payload.
func (c *GraphQLClient) CreateProject(ctx context.Context, input ProjectCreateInput) (*Project, error) {
	var data struct {
		ProjectCreate struct {
			Success bool         `json:"success"`
			Project *projectNode `json:"project"`
		} `json:"projectCreate"`
	}
	if err := c.do(ctx, projectCreateMutation, map[string]any{"input": input.ToInput()}, &data); err != nil {
		return nil, err
	}
	if data.ProjectCreate.Project == nil {
		return nil, errors.New("linear API returned an empty projectCreate payload")
	}
	project := data.ProjectCreate.Project.toProject()
	return &project, nil
}

// UpdateProject applies a partial update and returns the mutation's
// success flag. Callers wanting the updated resource fetch it again by
// id afterwards.
func (c *GraphQLClient) UpdateProject(ctx context.Context, id string, input ProjectUpdateInput) (bool, error) {
	var data struct {
		ProjectUpdate struct {
			Success bool `json:"success"`
		} `json:"projectUpdate"`
	}
	if err := c.do(ctx, projectUpdateMutation, map[string]any{"id": id, "input": input.ToInput()}, &data); err != nil {
		return false, err
	}
	return data.ProjectUpdate.Success, nil
}
