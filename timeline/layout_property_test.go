package timeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"pgregory.net/rapid"
)

var propertyBase = time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)

func dayString(offset int) string {
	return propertyBase.AddDate(0, 0, offset).Format(dateLayout)
}

// Calendar offsets from propertyBase that stay inside years 1..9999.
const (
	minCalendarOffset = -738000
	maxCalendarOffset = 2900000
)

func coordinateMappingMonotonic(t *testing.T, from, span, a, b int) bool {
	in := Input{EpicGroups: []EpicGroup{{
		Stages: []Stage{{Name: "s", StartDate: dayString(from), EndDate: dayString(from + span)}},
	}}}
	l, err := Compute(in, DefaultGeometry())
	if err != nil {
		t.Logf("Compute failed: %v", err)
		return false
	}

	total := l.TotalDays
	d1 := l.Start.AddDate(0, 0, a%(total+1))
	d2 := l.Start.AddDate(0, 0, b%(total+1))
	if d1.Equal(d2) {
		return l.X(d1) == l.X(d2)
	}
	if d2.Before(d1) {
		d1, d2 = d2, d1
	}
	if l.X(d1) >= l.X(d2) {
		t.Logf("X(%s)=%v >= X(%s)=%v", d1, l.X(d1), d2, l.X(d2))
		return false
	}
	g := l.Geometry()
	return approx(l.X(l.Start), g.ChartLeft) && approx(l.X(l.End), g.ChartLeft+g.ChartWidth)
}

// Property 4: X is strictly monotonic inside the chart bounds
func TestProperty4_CoordinateMappingMonotonic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("d1 < d2 implies X(d1) < X(d2)",
		prop.ForAll(
			func(span, a, b int) bool {
				return coordinateMappingMonotonic(t, 0, span, a, b)
			},
			gen.IntRange(0, 2000),
			gen.IntRange(0, 5000),
			gen.IntRange(0, 5000),
		),
	)

	properties.Property("monotonic across centuries",
		prop.ForAll(
			func(from, span, a, b int) bool {
				return coordinateMappingMonotonic(t, from, span, a, b)
			},
			gen.IntRange(minCalendarOffset, 0),
			gen.IntRange(0, maxCalendarOffset),
			gen.IntRange(0, 4000000),
			gen.IntRange(0, 4000000),
		),
	)

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Property 5: rows never overlap and bars never collapse
//
// For any mix of epics, stages and milestones the row cursor strictly
// increases, each bar is at least MinBarWidth wide and palette colours follow
// the global draw order.
func TestProperty5_RowStackingAndBars(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := DefaultGeometry()
		dayOffset := rapid.OneOf(rapid.IntRange(0, 900), rapid.IntRange(minCalendarOffset, maxCalendarOffset))
		epicCount := rapid.IntRange(0, 5).Draw(t, "epicCount")

		var in Input
		stageCount := 0
		for e := 0; e < epicCount; e++ {
			epic := EpicGroup{EpicName: fmt.Sprintf("epic%d", e)}
			for s := rapid.IntRange(0, 4).Draw(t, "stages"); s > 0; s-- {
				start := dayOffset.Draw(t, "start")
				length := rapid.IntRange(-5, 200).Draw(t, "length")
				epic.Stages = append(epic.Stages, Stage{Name: "stage", StartDate: dayString(start), EndDate: dayString(start + length)})
				stageCount++
			}
			for m := rapid.IntRange(0, 3).Draw(t, "milestones"); m > 0; m-- {
				epic.Milestones = append(epic.Milestones, Milestone{
					Name:       "milestone",
					TargetDate: dayString(dayOffset.Draw(t, "target")),
					Status:     rapid.SampledFrom([]string{"completed", "in-progress", "not-started", "other"}).Draw(t, "status"),
				})
			}
			in.EpicGroups = append(in.EpicGroups, epic)
		}
		unlinked := rapid.IntRange(0, 3).Draw(t, "unlinked")
		for i := 0; i < unlinked; i++ {
			in.UnlinkedMilestones = append(in.UnlinkedMilestones, Milestone{Name: "u", TargetDate: dayString(i * 30)})
		}

		l, err := Compute(in, g)
		if stageCount == 0 && unlinked == 0 && len(in.Milestones()) == 0 {
			if err != ErrNoData {
				t.Fatalf("expected ErrNoData, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}

		wantRows := epicCount + stageCount + len(in.Milestones())
		if unlinked > 0 {
			wantRows++
		}
		if len(l.Rows) != wantRows {
			t.Fatalf("expected %d rows, got %d", wantRows, len(l.Rows))
		}

		prevBottom := g.Top + g.AxisHeight
		drawIndex := 0
		for i, row := range l.Rows {
			if row.Top < prevBottom-1e-9 || row.Height <= 0 {
				t.Fatalf("row %d overlaps the previous row", i)
			}
			prevBottom = row.Top + row.Height
			if row.Bar != nil {
				if row.Bar.Width < g.MinBarWidth-1e-9 {
					t.Fatalf("row %d bar width %v below minimum", i, row.Bar.Width)
				}
				if row.Bar.Color != PaletteColor(g.Palette, drawIndex) {
					t.Fatalf("row %d colour %s, want palette[%d]", i, row.Bar.Color, drawIndex)
				}
				if row.Bar.ShowLabel != (row.Bar.Width > g.LabelThreshold) {
					t.Fatalf("row %d label policy violated", i)
				}
				drawIndex++
			}
			if row.Marker != nil && row.Marker.Status == "completed" && row.Marker.Color != ColorCompleted {
				t.Fatalf("completed milestone not green")
			}
		}
		if l.Bottom < prevBottom-1e-9 {
			t.Fatalf("bottom %v above last row %v", l.Bottom, prevBottom)
		}
	})
}
