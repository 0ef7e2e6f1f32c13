package linear

// Comparator families for list filters. Every operator is optional; a
// comparator serializes to a map holding exactly the operators that were
// set. Inclusion in a filter is driven by pointer presence, never by
// value truthiness, so boundary values like a priority of 0 survive.

// IDComparator matches identifier values.
type IDComparator struct {
	Eq  *string
	In  []string
	Nin []string
}

func (c *IDComparator) toFilter() map[string]any {
	f := map[string]any{}
	if c.Eq != nil {
		f["eq"] = *c.Eq
	}
	if c.In != nil {
		f["in"] = c.In
	}
	if c.Nin != nil {
		f["nin"] = c.Nin
	}
	return f
}

// StringComparator matches string values.
type StringComparator struct {
	Eq         *string
	Contains   *string
	StartsWith *string
	EndsWith   *string
}

func (c *StringComparator) toFilter() map[string]any {
	f := map[string]any{}
	if c.Eq != nil {
		f["eq"] = *c.Eq
	}
	if c.Contains != nil {
		f["contains"] = *c.Contains
	}
	if c.StartsWith != nil {
		f["startsWith"] = *c.StartsWith
	}
	if c.EndsWith != nil {
		f["endsWith"] = *c.EndsWith
	}
	return f
}

// NumberComparator matches numeric values. A range is expressed by
// combining gte and lte (or the strict lt and gt).
type NumberComparator struct {
	Eq  *float64
	Lt  *float64
	Lte *float64
	Gt  *float64
	Gte *float64
}

func (c *NumberComparator) toFilter() map[string]any {
	f := map[string]any{}
	if c.Eq != nil {
		f["eq"] = *c.Eq
	}
	if c.Lt != nil {
		f["lt"] = *c.Lt
	}
	if c.Lte != nil {
		f["lte"] = *c.Lte
	}
	if c.Gt != nil {
		f["gt"] = *c.Gt
	}
	if c.Gte != nil {
		f["gte"] = *c.Gte
	}
	return f
}

// DateComparator matches timestamps. Values are ISO 8601 timestamps or
// ISO 8601 durations relative to now (e.g. "-P2W"), resolved server-side.
type DateComparator struct {
	Eq  *string
	Lt  *string
	Lte *string
	Gt  *string
	Gte *string
}

func (c *DateComparator) toFilter() map[string]any {
	f := map[string]any{}
	if c.Eq != nil {
		f["eq"] = *c.Eq
	}
	if c.Lt != nil {
		f["lt"] = *c.Lt
	}
	if c.Lte != nil {
		f["lte"] = *c.Lte
	}
	if c.Gt != nil {
		f["gt"] = *c.Gt
	}
	if c.Gte != nil {
		f["gte"] = *c.Gte
	}
	return f
}

// IssueFilter holds the typed filter inputs for listing issues. Relation
// identifiers are flat values forwarded under scalar keys, except LabelID:
// labels are a to-many association, so BuildFilter rewrites it into the
// nested relation shape the API expects.
type IssueFilter struct {
	ID        *IDComparator
	Title     *StringComparator
	Number    *NumberComparator
	Priority  *NumberComparator
	CreatedAt *DateComparator
	UpdatedAt *DateComparator

	TeamID     *string
	AssigneeID *string
	CreatorID  *string
	ProjectID  *string
	StateID    *string
	CycleID    *string
	ParentID   *string
	LabelID    *string
}

// BuildFilter returns the filter object forwarded to the API. It contains
// exactly the keys whose inputs were supplied; absent fields are omitted
// entirely, never forwarded as null or a no-op comparator.
func (f *IssueFilter) BuildFilter() map[string]any {
	filter := map[string]any{}
	if f == nil {
		return filter
	}
	if f.ID != nil {
		filter["id"] = f.ID.toFilter()
	}
	if f.Title != nil {
		filter["title"] = f.Title.toFilter()
	}
	if f.Number != nil {
		filter["number"] = f.Number.toFilter()
	}
	if f.Priority != nil {
		filter["priority"] = f.Priority.toFilter()
	}
	if f.CreatedAt != nil {
		filter["createdAt"] = f.CreatedAt.toFilter()
	}
	if f.UpdatedAt != nil {
		filter["updatedAt"] = f.UpdatedAt.toFilter()
	}
	if f.TeamID != nil {
		filter["teamId"] = *f.TeamID
	}
	if f.AssigneeID != nil {
		filter["assigneeId"] = *f.AssigneeID
	}
	if f.CreatorID != nil {
		filter["creatorId"] = *f.CreatorID
	}
	if f.ProjectID != nil {
		filter["projectId"] = *f.ProjectID
	}
	if f.StateID != nil {
		filter["stateId"] = *f.StateID
	}
	if f.CycleID != nil {
		filter["cycleId"] = *f.CycleID
	}
	if f.ParentID != nil {
		filter["parentId"] = *f.ParentID
	}
	if f.LabelID != nil {
		// To-many relation: nested shape instead of a scalar key.
		filter["labels"] = map[string]any{"id": *f.LabelID}
	}
	return filter
}

// ProjectFilter holds the typed filter inputs for listing projects.
// MemberID and TeamID address to-many memberships and are rewritten into
// nested relation shapes; LeadID stays a scalar key.
type ProjectFilter struct {
	ID         *IDComparator
	Name       *StringComparator
	State      *StringComparator
	CreatedAt  *DateComparator
	UpdatedAt  *DateComparator
	StartDate  *DateComparator
	TargetDate *DateComparator

	LeadID   *string
	MemberID *string
	TeamID   *string
}

// BuildFilter returns the filter object forwarded to the API, with the
// same omission semantics as IssueFilter.BuildFilter.
func (f *ProjectFilter) BuildFilter() map[string]any {
	filter := map[string]any{}
	if f == nil {
		return filter
	}
	if f.ID != nil {
		filter["id"] = f.ID.toFilter()
	}
	if f.Name != nil {
		filter["name"] = f.Name.toFilter()
	}
	if f.State != nil {
		filter["state"] = f.State.toFilter()
	}
	if f.CreatedAt != nil {
		filter["createdAt"] = f.CreatedAt.toFilter()
	}
	if f.UpdatedAt != nil {
		filter["updatedAt"] = f.UpdatedAt.toFilter()
	}
	if f.StartDate != nil {
		filter["startDate"] = f.StartDate.toFilter()
	}
	if f.TargetDate != nil {
		filter["targetDate"] = f.TargetDate.toFilter()
	}
	if f.LeadID != nil {
		filter["leadId"] = *f.LeadID
	}
	if f.MemberID != nil {
		filter["members"] = map[string]any{"id": *f.MemberID}
	}
	if f.TeamID != nil {
		filter["teams"] = map[string]any{"id": *f.TeamID}
	}
	return filter
}
