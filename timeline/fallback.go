package timeline

import "strings"

// MaxFallbackRows caps the flat milestone table.
const MaxFallbackRows = 15

// FlatMilestone is an entry of the payload's top-level milestone list.
type FlatMilestone struct {
	Name       string `json:"name"`
	TargetDate string `json:"targetDate"`
	Status     string `json:"status"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

// FallbackRow is one line of the milestone table shown instead of a chart.
type FallbackRow struct {
	Name       string
	TargetDate string
	Status     string
	DateRange  string
	// StatusColor is empty for unrecognised statuses.
	StatusColor string
}

// FallbackRows builds at most limit table rows; limit <= 0 means
// MaxFallbackRows.
func FallbackRows(milestones []FlatMilestone, colors StatusColors, limit int) []FallbackRow {
	if limit <= 0 {
		limit = MaxFallbackRows
	}
	if colors == nil {
		colors = DefaultStatusColors()
	}
	if len(milestones) > limit {
		milestones = milestones[:limit]
	}

	rows := make([]FallbackRow, 0, len(milestones))
	for _, m := range milestones {
		color, _ := colors.Lookup(m.Status)
		rows = append(rows, FallbackRow{
			Name:        m.Name,
			TargetDate:  DisplayDate(m.TargetDate),
			Status:      m.Status,
			DateRange:   dateRange(m.StartDate, m.EndDate),
			StatusColor: color,
		})
	}
	return rows
}

// Flatten converts timeline milestones into table entries, used when the
// payload has no top-level milestone list.
func Flatten(ms []Milestone) []FlatMilestone {
	out := make([]FlatMilestone, 0, len(ms))
	for _, m := range ms {
		out = append(out, FlatMilestone{Name: m.Name, TargetDate: m.TargetDate, Status: m.Status})
	}
	return out
}

func dateRange(start, end string) string {
	var parts []string
	if start != "" {
		parts = append(parts, DisplayDate(start))
	}
	if end != "" {
		parts = append(parts, DisplayDate(end))
	}
	return strings.Join(parts, " – ")
}
