package linear

import (
	"fmt"
	"strings"
)

// EntityRef is a reference to another Linear entity. It carries only the
// referenced entity's identifier; no denormalized data is ever embedded.
type EntityRef struct {
	ID string `json:"id"`
}

// Issue is the shape of a Linear issue as returned by the GraphQL API.
// Optional fields are pointers: a missing field and an explicit null
// both decode to nil.
type Issue struct {
	ID            string   `json:"id"`
	Identifier    string   `json:"identifier"`
	Number        float64  `json:"number"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	BranchName    *string  `json:"branchName,omitempty"`
	URL           *string  `json:"url,omitempty"`
	LabelIDs      []string `json:"labelIds"`
	Priority      float64  `json:"priority"`
	PriorityLabel string   `json:"priorityLabel"`
	SLAType       *string  `json:"slaType,omitempty"`

	ProjectMilestone *EntityRef `json:"projectMilestone,omitempty"`
	Creator          *EntityRef `json:"creator,omitempty"`
	Cycle            *EntityRef `json:"cycle,omitempty"`
	Parent           *EntityRef `json:"parent,omitempty"`
	State            *EntityRef `json:"state,omitempty"`
	Assignee         *EntityRef `json:"assignee,omitempty"`
	Project          *EntityRef `json:"project,omitempty"`
	Team             *EntityRef `json:"team"`
}

// Project is the shape of a Linear project as returned by the GraphQL API.
// Membership connections are flattened to identifier lists by the client.
type Project struct {
	ID          string   `json:"id"`
	SlugID      string   `json:"slugId"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	State       *string  `json:"state,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"`
	TargetDate  *string  `json:"targetDate,omitempty"`
	Color       *string  `json:"color,omitempty"`
	MemberIDs   []string `json:"memberIds"`
	TeamIDs     []string `json:"teamIds"`
	LeadID      *string  `json:"leadId,omitempty"`
}

// ValidationError describes a single field-level schema violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates every violation found in one validation
// pass, so callers see all offending fields rather than the first one.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func appendRefError(errs ValidationErrors, field string, ref *EntityRef) ValidationErrors {
	if ref != nil && ref.ID == "" {
		errs = append(errs, ValidationError{Field: field, Message: "reference must carry an id"})
	}
	return errs
}

// Validate checks the issue against its declared shape. Referential
// integrity is the API's concern; only structure is checked here.
func (i *Issue) Validate() error {
	var errs ValidationErrors
	if i.ID == "" {
		errs = append(errs, ValidationError{Field: "id", Message: "must not be empty"})
	}
	if i.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "must not be empty"})
	}
	if i.Team == nil || i.Team.ID == "" {
		errs = append(errs, ValidationError{Field: "team", Message: "must carry a referenced id"})
	}
	errs = appendRefError(errs, "projectMilestone", i.ProjectMilestone)
	errs = appendRefError(errs, "creator", i.Creator)
	errs = appendRefError(errs, "cycle", i.Cycle)
	errs = appendRefError(errs, "parent", i.Parent)
	errs = appendRefError(errs, "state", i.State)
	errs = appendRefError(errs, "assignee", i.Assignee)
	errs = appendRefError(errs, "project", i.Project)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Validate checks the project against its declared shape.
func (p *Project) Validate() error {
	var errs ValidationErrors
	if p.ID == "" {
		errs = append(errs, ValidationError{Field: "id", Message: "must not be empty"})
	}
	if p.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if p.LeadID != nil && *p.LeadID == "" {
		errs = append(errs, ValidationError{Field: "leadId", Message: "reference must carry an id"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateIssues validates every element of a list response. One invalid
// element rejects the whole list; no partial result is ever returned.
func ValidateIssues(issues []Issue) error {
	for i := range issues {
		if err := issues[i].Validate(); err != nil {
			return fmt.Errorf("issue %d failed validation: %w", i, err)
		}
	}
	return nil
}

// ValidateProjects validates every element of a list response, all or
// nothing, like ValidateIssues.
func ValidateProjects(projects []Project) error {
	for i := range projects {
		if err := projects[i].Validate(); err != nil {
			return fmt.Errorf("project %d failed validation: %w", i, err)
		}
	}
	return nil
}
