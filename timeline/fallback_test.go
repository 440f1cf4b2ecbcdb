package timeline

import (
	"fmt"
	"testing"
)

func TestFallbackRows(t *testing.T) {
	ms := []FlatMilestone{
		{Name: "Kickoff", TargetDate: "2024-01-05T00:00:00Z", Status: "completed", StartDate: "2024-01-01", EndDate: "2024-01-05"},
		{Name: "Design", TargetDate: "2024-02-01", Status: "in-progress", StartDate: "2024-01-08"},
		{Name: "Review", TargetDate: "", Status: "on-hold"},
	}
	rows := FallbackRows(ms, nil, 0)

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].TargetDate != "2024-01-05" {
		t.Errorf("Expected truncated target date, got %q", rows[0].TargetDate)
	}
	if rows[0].DateRange != "2024-01-01 – 2024-01-05" {
		t.Errorf("Unexpected date range %q", rows[0].DateRange)
	}
	if rows[0].StatusColor != ColorCompleted || rows[1].StatusColor != ColorInProgress {
		t.Errorf("Unexpected status colours %q %q", rows[0].StatusColor, rows[1].StatusColor)
	}
	if rows[1].DateRange != "2024-01-08" {
		t.Errorf("Unexpected open range %q", rows[1].DateRange)
	}
	if rows[2].StatusColor != "" {
		t.Errorf("Unrecognised status must not be coloured, got %q", rows[2].StatusColor)
	}
}

func TestFallbackRows_Cap(t *testing.T) {
	var ms []FlatMilestone
	for i := 0; i < 40; i++ {
		ms = append(ms, FlatMilestone{Name: fmt.Sprintf("m%d", i)})
	}
	rows := FallbackRows(ms, nil, 0)
	if len(rows) != MaxFallbackRows {
		t.Errorf("Expected %d rows, got %d", MaxFallbackRows, len(rows))
	}
	if rows[14].Name != "m14" {
		t.Errorf("Expected the first rows to be kept, got %q last", rows[14].Name)
	}
}

func TestFlatten(t *testing.T) {
	in := Input{
		EpicGroups:         []EpicGroup{{Milestones: []Milestone{{Name: "a", TargetDate: "2024-01-01", Status: "completed"}}}},
		UnlinkedMilestones: []Milestone{{Name: "b"}},
	}
	flat := Flatten(in.Milestones())
	if len(flat) != 2 || flat[0].Name != "a" || flat[1].Name != "b" {
		t.Errorf("Unexpected flattened milestones %+v", flat)
	}
}
