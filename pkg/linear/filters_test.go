package linear

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

func TestIssueFilterBuildFilter_Empty(t *testing.T) {
	filter := (&IssueFilter{}).BuildFilter()
	if len(filter) != 0 {
		t.Errorf("expected empty filter, got %v", filter)
	}

	var nilFilter *IssueFilter
	if got := nilFilter.BuildFilter(); len(got) != 0 {
		t.Errorf("expected empty filter from nil receiver, got %v", got)
	}
}

func TestIssueFilterBuildFilter_ExactKeys(t *testing.T) {
	tests := []struct {
		name     string
		filter   IssueFilter
		expected map[string]any
	}{
		{
			name:     "priority only",
			filter:   IssueFilter{Priority: &NumberComparator{Eq: numPtr(2)}},
			expected: map[string]any{"priority": map[string]any{"eq": 2.0}},
		},
		{
			name:     "priority zero survives",
			filter:   IssueFilter{Priority: &NumberComparator{Eq: numPtr(0)}},
			expected: map[string]any{"priority": map[string]any{"eq": 0.0}},
		},
		{
			name:   "title and team",
			filter: IssueFilter{Title: &StringComparator{Contains: strPtr("bug")}, TeamID: strPtr("T1")},
			expected: map[string]any{
				"title":  map[string]any{"contains": "bug"},
				"teamId": "T1",
			},
		},
		{
			name:   "scalar relation ids stay scalar",
			filter: IssueFilter{AssigneeID: strPtr("U1"), ProjectID: strPtr("P1"), StateID: strPtr("S1")},
			expected: map[string]any{
				"assigneeId": "U1",
				"projectId":  "P1",
				"stateId":    "S1",
			},
		},
		{
			name:     "label id rewritten to nested relation",
			filter:   IssueFilter{LabelID: strPtr("L1")},
			expected: map[string]any{"labels": map[string]any{"id": "L1"}},
		},
		{
			name: "date range",
			filter: IssueFilter{
				CreatedAt: &DateComparator{Gte: strPtr("-P2W"), Lt: strPtr("2024-06-01T00:00:00Z")},
			},
			expected: map[string]any{
				"createdAt": map[string]any{"gte": "-P2W", "lt": "2024-06-01T00:00:00Z"},
			},
		},
		{
			name:   "id comparator",
			filter: IssueFilter{ID: &IDComparator{In: []string{"a", "b"}}},
			expected: map[string]any{
				"id": map[string]any{"in": []string{"a", "b"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.BuildFilter()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestProjectFilterBuildFilter_NestedMemberships(t *testing.T) {
	filter := ProjectFilter{
		Name:     &StringComparator{StartsWith: strPtr("Q3")},
		LeadID:   strPtr("U1"),
		MemberID: strPtr("U2"),
		TeamID:   strPtr("T1"),
	}

	expected := map[string]any{
		"name":    map[string]any{"startsWith": "Q3"},
		"leadId":  "U1",
		"members": map[string]any{"id": "U2"},
		"teams":   map[string]any{"id": "T1"},
	}

	if got := filter.BuildFilter(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestProjectFilterBuildFilter_Empty(t *testing.T) {
	if got := (&ProjectFilter{}).BuildFilter(); len(got) != 0 {
		t.Errorf("expected empty filter, got %v", got)
	}
}

func TestComparatorsSerializeOnlySetOperators(t *testing.T) {
	c := NumberComparator{Gte: numPtr(1), Lte: numPtr(4)}
	got := c.toFilter()
	expected := map[string]any{"gte": 1.0, "lte": 4.0}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	s := StringComparator{EndsWith: strPtr("-bug")}
	gotS := s.toFilter()
	expectedS := map[string]any{"endsWith": "-bug"}
	if !reflect.DeepEqual(gotS, expectedS) {
		t.Errorf("expected %v, got %v", expectedS, gotS)
	}

	id := IDComparator{Eq: strPtr("x"), Nin: []string{"y"}}
	gotID := id.toFilter()
	expectedID := map[string]any{"eq": "x", "nin": []string{"y"}}
	if !reflect.DeepEqual(gotID, expectedID) {
		t.Errorf("expected %v, got %v", expectedID, gotID)
	}
}
