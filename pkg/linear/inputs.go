package linear

// IssueCreateInput is the payload for creating an issue. Title and TeamID
// are mandatory; everything else is optional. Identifier, number and other
// server-computed fields are never writable.
type IssueCreateInput struct {
	Title              string
	TeamID             string
	Description        *string
	Priority           *float64
	LabelIDs           []string
	AssigneeID         *string
	ProjectID          *string
	StateID            *string
	ParentID           *string
	CycleID            *string
	ProjectMilestoneID *string
}

// Validate reports every missing required field at once.
func (in IssueCreateInput) Validate() error {
	var errs ValidationErrors
	if in.Title == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "must not be empty"})
	}
	if in.TeamID == "" {
		errs = append(errs, ValidationError{Field: "teamId", Message: "must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToInput builds the GraphQL input object. Fields the caller did not
// supply are omitted entirely, never sent as null.
func (in IssueCreateInput) ToInput() map[string]any {
	input := map[string]any{
		"title":  in.Title,
		"teamId": in.TeamID,
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	if in.Priority != nil {
		input["priority"] = *in.Priority
	}
	if in.LabelIDs != nil {
		input["labelIds"] = in.LabelIDs
	}
	if in.AssigneeID != nil {
		input["assigneeId"] = *in.AssigneeID
	}
	if in.ProjectID != nil {
		input["projectId"] = *in.ProjectID
	}
	if in.StateID != nil {
		input["stateId"] = *in.StateID
	}
	if in.ParentID != nil {
		input["parentId"] = *in.ParentID
	}
	if in.CycleID != nil {
		input["cycleId"] = *in.CycleID
	}
	if in.ProjectMilestoneID != nil {
		input["projectMilestoneId"] = *in.ProjectMilestoneID
	}
	return input
}

// IssueUpdateInput is the partial payload for updating an issue. Every
// field is optional; the update target id travels as a separate argument.
type IssueUpdateInput struct {
	Title              *string
	TeamID             *string
	Description        *string
	Priority           *float64
	LabelIDs           []string
	AssigneeID         *string
	ProjectID          *string
	StateID            *string
	ParentID           *string
	CycleID            *string
	ProjectMilestoneID *string
}

// ToInput builds the GraphQL input object from the fields explicitly
// present in the payload, so unset fields are never overwritten.
func (in IssueUpdateInput) ToInput() map[string]any {
	input := map[string]any{}
	if in.Title != nil {
		input["title"] = *in.Title
	}
	if in.TeamID != nil {
		input["teamId"] = *in.TeamID
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	if in.Priority != nil {
		input["priority"] = *in.Priority
	}
	if in.LabelIDs != nil {
		input["labelIds"] = in.LabelIDs
	}
	if in.AssigneeID != nil {
		input["assigneeId"] = *in.AssigneeID
	}
	if in.ProjectID != nil {
		input["projectId"] = *in.ProjectID
	}
	if in.StateID != nil {
		input["stateId"] = *in.StateID
	}
	if in.ParentID != nil {
		input["parentId"] = *in.ParentID
	}
	if in.CycleID != nil {
		input["cycleId"] = *in.CycleID
	}
	if in.ProjectMilestoneID != nil {
		input["projectMilestoneId"] = *in.ProjectMilestoneID
	}
	return input
}

// ProjectCreateInput is the payload for creating a project. Name and the
// team identifier set are mandatory.
type ProjectCreateInput struct {
	Name        string
	TeamIDs     []string
	Description *string
	State       *string
	StartDate   *string
	TargetDate  *string
	Color       *string
	MemberIDs   []string
	LeadID      *string
}

// Validate reports every missing required field at once.
func (in ProjectCreateInput) Validate() error {
	var errs ValidationErrors
	if in.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "must not be empty"})
	}
	if len(in.TeamIDs) == 0 {
		errs = append(errs, ValidationError{Field: "teamIds", Message: "must contain at least one team id"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToInput builds the GraphQL input object, omitting unsupplied fields.
func (in ProjectCreateInput) ToInput() map[string]any {
	input := map[string]any{
		"name":    in.Name,
		"teamIds": in.TeamIDs,
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	if in.State != nil {
		input["state"] = *in.State
	}
	if in.StartDate != nil {
		input["startDate"] = *in.StartDate
	}
	if in.TargetDate != nil {
		input["targetDate"] = *in.TargetDate
	}
	if in.Color != nil {
		input["color"] = *in.Color
	}
	if in.MemberIDs != nil {
		input["memberIds"] = in.MemberIDs
	}
	if in.LeadID != nil {
		input["leadId"] = *in.LeadID
	}
	return input
}

// ProjectUpdateInput is the partial payload for updating a project.
type ProjectUpdateInput struct {
	Name        *string
	TeamIDs     []string
	Description *string
	State       *string
	StartDate   *string
	TargetDate  *string
	Color       *string
	MemberIDs   []string
	LeadID      *string
}

// ToInput builds the GraphQL input object from the fields explicitly
// present in the payload.
func (in ProjectUpdateInput) ToInput() map[string]any {
	input := map[string]any{}
	if in.Name != nil {
		input["name"] = *in.Name
	}
	if in.TeamIDs != nil {
		input["teamIds"] = in.TeamIDs
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	if in.State != nil {
		input["state"] = *in.State
	}
	if in.StartDate != nil {
		input["startDate"] = *in.StartDate
	}
	if in.TargetDate != nil {
		input["targetDate"] = *in.TargetDate
	}
	if in.Color != nil {
		input["color"] = *in.Color
	}
	if in.MemberIDs != nil {
		input["memberIds"] = in.MemberIDs
	}
	if in.LeadID != nil {
		input["leadId"] = *in.LeadID
	}
	return input
}
