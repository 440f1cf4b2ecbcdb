package statusreport

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"statusdeck/config"
	"statusdeck/deck"
	"statusdeck/report"
	"statusdeck/timeline"
)

var testDefaults = report.Defaults{Now: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)}

func decode(t *testing.T, raw string) *report.Payload {
	t.Helper()
	p, err := report.Decode(strings.NewReader(raw), testDefaults)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return p
}

func build(t *testing.T, rec *deck.Recorder, raw string) *Result {
	t.Helper()
	res, err := Build(rec, decode(t, raw), Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return res
}

const fullPayload = `{
	"projectName": "Apollo",
	"clientName": "Acme Corp",
	"periodStart": "2024-01-01",
	"periodEnd": "2024-01-31",
	"pmName": "Jordan Lee",
	"metrics": {"totalHours": 120, "billableHours": "100", "teamMembers": 4, "totalExpenses": 950},
	"milestonePosture": {"On Track": ["Design"], "At Risk": [], "Completed": ["Kickoff"]},
	"aiReport": "## Progress Summary\nWe made **good** progress.\n- Closed sprint 3\n## Key Accomplishments\n- **API launch** - shipped v1\n  - load tested\n## Upcoming Activities\n- **Beta** - invite pilot users",
	"timeline": {
		"epicGroups": [{
			"epicName": "Build",
			"stages": [{"name": "Design", "startDate": "2024-01-01", "endDate": "2024-02-15"}],
			"milestones": [{"name": "Sign-off", "targetDate": "2024-02-20", "status": "completed", "isPayment": true}]
		}]
	},
	"raidd": {"risks": [{"refNumber": "R-1", "title": "Vendor delay", "priority": "high", "status": "open", "ownerName": "Sam"}]}
}`

func TestBuild_SlideOrder(t *testing.T) {
	rec := deck.NewRecorder()
	res := build(t, rec, fullPayload)

	if len(rec.Slides) != 6 {
		t.Fatalf("Expected 6 slides, got %d", len(rec.Slides))
	}
	want := []string{"Apollo", "Progress Summary", "Key Accomplishments", "RAIDD", "Upcoming Activities", "Timeline & Milestones"}
	for i, sub := range want {
		if !rec.Slides[i].Contains(sub) {
			t.Errorf("Slide %d: expected %q in %v", i+1, sub, rec.Slides[i].Texts())
		}
	}

	title := rec.Slides[0]
	for _, sub := range []string{"STATUS REPORT", "Acme Corp", "Period: 2024-01-01 to 2024-01-31", "Project Manager: Jordan Lee"} {
		if !title.Contains(sub) {
			t.Errorf("Title slide missing %q", sub)
		}
	}
	if bg := title.Filter(deck.ShapeElement)[0]; bg.Fill != report.DefaultPrimaryColor {
		t.Errorf("Expected primary background, got %q", bg.Fill)
	}

	if res.Outline.Title != "Apollo" || len(res.Outline.Sections) != 5 {
		t.Errorf("Unexpected outline %q with %d sections", res.Outline.Title, len(res.Outline.Sections))
	}
	if len(res.Headings) != 3 {
		t.Errorf("Expected 3 headings, got %v", res.Headings)
	}
}

func TestBuild_EmptyPayload(t *testing.T) {
	rec := deck.NewRecorder()
	res := build(t, rec, `{}`)

	if len(rec.Slides) != 6 {
		t.Fatalf("Expected 6 slides, got %d", len(rec.Slides))
	}
	checks := map[int]string{
		0: report.DefaultProjectName,
		2: "No accomplishments data available for this period.",
		3: "No active risks at this time.",
		4: "No upcoming activities data available.",
		5: "No timeline data available for this project.",
	}
	for i, sub := range checks {
		if !rec.Slides[i].Contains(sub) {
			t.Errorf("Slide %d: expected %q in %v", i+1, sub, rec.Slides[i].Texts())
		}
	}
	if !rec.Slides[0].Contains("March 05, 2024") {
		t.Errorf("Expected report date in place of the period")
	}
	if res.Chart {
		t.Errorf("Expected no chart")
	}
}

func TestBuild_ProgressSlide(t *testing.T) {
	rec := deck.NewRecorder()
	build(t, rec, fullPayload)
	s := rec.Slides[1]

	if !s.Contains("Hours: 120 (100 billable)  |  Team: 4 members  |  Expenses: $950") {
		t.Errorf("Expected metrics line, got %v", s.Texts())
	}
	if !s.Contains("We made good progress.") || !s.Contains("• Closed sprint 3") {
		t.Errorf("Expected narrative, got %v", s.Texts())
	}
	if !s.Contains("Milestone Posture") || !s.Contains("• On Track: Design") || s.Contains("At Risk") {
		t.Errorf("Expected non-empty posture groups only, got %v", s.Texts())
	}

	var bold deck.Run
	for _, e := range s.Filter(deck.TextBoxElement) {
		for _, p := range e.Paragraphs {
			for _, r := range p.Runs {
				if r.Text == "good" {
					bold = r
				}
			}
		}
	}
	if !bold.Font.Bold || bold.Font.Color != report.DefaultPrimaryColor {
		t.Errorf("Expected bold primary run, got %+v", bold)
	}
}

func TestBuild_ProgressFallsBackToDescription(t *testing.T) {
	rec := deck.NewRecorder()
	build(t, rec, `{"projectDescription": "<p>First</p><p>Second</p>"}`)
	s := rec.Slides[1]
	if !s.Contains("First") || !s.Contains("Second") {
		t.Errorf("Expected description lines, got %v", s.Texts())
	}
	if len(s.Filter(deck.TextBoxElement)) != 2 {
		t.Errorf("Expected no metrics box without metrics")
	}
}

func TestBuild_BulletSlides(t *testing.T) {
	rec := deck.NewRecorder()
	build(t, rec, fullPayload)

	acc := rec.Slides[2]
	for _, sub := range []string{"• API launch", "  shipped v1", "    – load tested"} {
		if !acc.Contains(sub) {
			t.Errorf("Accomplishments missing %q: %v", sub, acc.Texts())
		}
	}
	if !rec.Slides[4].Contains("• Beta") {
		t.Errorf("Upcoming missing item: %v", rec.Slides[4].Texts())
	}
}

func TestBuild_RAIDD(t *testing.T) {
	t.Run("structured log", func(t *testing.T) {
		rec := deck.NewRecorder()
		build(t, rec, fullPayload)
		s := rec.Slides[3]
		for _, sub := range []string{"R-1 Vendor delay [HIGH] (open)", "Owner: Sam", "No active issues at this time."} {
			if !s.Contains(sub) {
				t.Errorf("RAIDD slide missing %q: %v", sub, s.Texts())
			}
		}
	})

	t.Run("narrative wins", func(t *testing.T) {
		rec := deck.NewRecorder()
		build(t, rec, `{"aiReport": "## RAIDD Log\n- **Risk**: vendor may slip", "raidd": {"risks": [{"title": "Hidden"}]}}`)
		s := rec.Slides[3]
		if !s.Contains("vendor may slip") || s.Contains("Hidden") {
			t.Errorf("Expected narrative only, got %v", s.Texts())
		}
	})
}

func TestActiveEntries(t *testing.T) {
	entries := []report.RAIDDEntry{
		{Title: "a", Status: "Open"},
		{Title: "b", Status: "closed"},
		{Title: "c", Status: "In_Progress"},
	}
	got := ActiveEntries(entries)
	if len(got) != 2 || got[0].Title != "a" || got[1].Title != "c" {
		t.Errorf("Unexpected active entries %+v", got)
	}
}

func TestBuild_GanttChart(t *testing.T) {
	rec := deck.NewRecorder()
	res := build(t, rec, fullPayload)
	if !res.Chart {
		t.Fatalf("Expected a chart")
	}
	s := rec.Slides[5]

	var bars, diamonds []deck.Element
	for _, e := range s.Filter(deck.ShapeElement) {
		switch e.Shape {
		case deck.RoundedRectangle:
			bars = append(bars, e)
		case deck.Diamond:
			diamonds = append(diamonds, e)
		}
	}
	if len(bars) != 1 || bars[0].Fill != deck.Color(timeline.DefaultPalette[0]) {
		t.Errorf("Expected one palette bar, got %+v", bars)
	}
	if len(diamonds) != 1 || diamonds[0].Fill != timeline.ColorCompleted {
		t.Errorf("Expected one completed diamond, got %+v", diamonds)
	}
	for _, sub := range []string{"Build", "Design", "Sign-off $", "Feb 20", "Jan 2024"} {
		if !s.Contains(sub) {
			t.Errorf("Chart missing %q: %v", sub, s.Texts())
		}
	}
	if len(res.Skipped) != 0 {
		t.Errorf("Expected nothing skipped, got %v", res.Skipped)
	}

	last := res.Outline.Sections[len(res.Outline.Sections)-1]
	if len(last.Blocks) != 1 || last.Blocks[0].Table == nil || len(last.Blocks[0].Table.Rows) != 4 {
		t.Errorf("Expected a header plus 3 chart rows in the outline, got %+v", last.Blocks)
	}
}

func TestBuild_GanttSkipsBadDates(t *testing.T) {
	rec := deck.NewRecorder()
	res := build(t, rec, `{"timeline": {"epicGroups": [{"epicName": "E", "stages": [
		{"name": "Good", "startDate": "2024-01-01", "endDate": "2024-03-01"},
		{"name": "Bad", "startDate": "soon", "endDate": "2024-03-01"}]}]}}`)

	if len(res.Skipped) != 1 || res.Skipped[0].Name != "Bad" {
		t.Fatalf("Expected Bad to be skipped, got %v", res.Skipped)
	}
	if !rec.Slides[5].Contains("1 item(s) not shown") {
		t.Errorf("Expected skipped footnote, got %v", rec.Slides[5].Texts())
	}
}

func TestBuild_GanttOverflowScales(t *testing.T) {
	var stages []string
	for i := 0; i < 40; i++ {
		stages = append(stages, fmt.Sprintf(`{"name": "S%d", "startDate": "2024-01-01", "endDate": "2024-06-30"}`, i))
	}
	raw := `{"timeline": {"epicGroups": [{"epicName": "Big", "stages": [` + strings.Join(stages, ",") + `]}]}}`

	rec := deck.NewRecorder()
	build(t, rec, raw)
	limit := config.DefaultTheme().ContentBottom + 1e-9
	for _, e := range rec.Slides[5].Elements {
		if e.Rect.Y+e.Rect.H > limit {
			t.Fatalf("Element %+v runs past the content area", e)
		}
	}
}

func TestBuild_GanttNoRoomKeepsRowHeights(t *testing.T) {
	theme := config.DefaultTheme()
	theme.ContentBottom = 1.5

	rec := deck.NewRecorder()
	if _, err := Build(rec, decode(t, fullPayload), Options{Theme: theme}); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, e := range rec.Slides[5].Filter(deck.ShapeElement) {
		if e.Rect.H <= 0 {
			t.Fatalf("Shape %+v has a non-positive height", e)
		}
	}
}

func TestBuild_FallbackTable(t *testing.T) {
	var ms []string
	for i := 0; i < 20; i++ {
		ms = append(ms, fmt.Sprintf(`{"name": "M%d", "targetDate": "2024-02-%02d", "status": "in_progress", "startDate": "2024-01-01"}`, i, i+1))
	}
	rec := deck.NewRecorder()
	res := build(t, rec, `{"milestones": [`+strings.Join(ms, ",")+`]}`)

	if res.Chart {
		t.Errorf("Expected fallback table, not a chart")
	}
	tables := rec.Slides[5].Filter(deck.TableElement)
	if len(tables) != 1 {
		t.Fatalf("Expected one table, got %d", len(tables))
	}
	rows := tables[0].Table.Rows
	if len(rows) != timeline.MaxFallbackRows+1 {
		t.Fatalf("Expected %d rows, got %d", timeline.MaxFallbackRows+1, len(rows))
	}
	if rows[0][0].Fill != report.DefaultPrimaryColor {
		t.Errorf("Expected primary header fill")
	}
	status := rows[1][2]
	if status.Text() != "In Progress" || status.Runs[0].Font.Color != timeline.ColorInProgress {
		t.Errorf("Unexpected status cell %+v", status)
	}
}

func TestBuild_FallbackFromTimelineMilestones(t *testing.T) {
	rec := deck.NewRecorder()
	build(t, rec, `{"timeline": {"unlinkedMilestones": [{"name": "Go-live", "targetDate": "2024-05-01", "status": "not-started"}]}}`)
	s := rec.Slides[5]
	if !s.Contains("Go-live") || !s.Contains("Not Started") {
		t.Errorf("Expected flattened milestone row, got %v", s.Texts())
	}
}

func TestBuild_LogoFailureIgnored(t *testing.T) {
	rec := &deck.Recorder{PictureErr: errors.New("no such file")}
	build(t, rec, `{"logoPath": "/missing/logo.png"}`)
	if len(rec.Slides) != 6 {
		t.Errorf("Expected full deck despite logo failure")
	}
	if len(rec.Slides[0].Filter(deck.PictureElement)) != 0 {
		t.Errorf("Expected no picture")
	}
}

func TestBuild_Logo(t *testing.T) {
	rec := deck.NewRecorder()
	build(t, rec, `{"logoPath": "logo.png"}`)
	pics := rec.Slides[0].Filter(deck.PictureElement)
	if len(pics) != 1 || pics[0].Path != "logo.png" || pics[0].Rect.H != 0.8 {
		t.Errorf("Unexpected logo %+v", pics)
	}
}

func TestBuild_NilPayload(t *testing.T) {
	if _, err := Build(deck.NewRecorder(), nil, Options{}); err == nil {
		t.Errorf("Expected error for nil payload")
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{
		"in-progress": "In Progress",
		"not_started": "Not Started",
		"completed":   "Completed",
		"":            "",
	}
	for in, want := range cases {
		if got := StatusLabel(in); got != want {
			t.Errorf("StatusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContrastColor(t *testing.T) {
	if got := contrastColor("#FFFFFF"); got != darkBarText {
		t.Errorf("Expected dark text on white, got %q", got)
	}
	if got := contrastColor("#1E3A8A"); got != white {
		t.Errorf("Expected white text on navy, got %q", got)
	}
	if got := contrastColor("bogus"); got != white {
		t.Errorf("Expected white fallback, got %q", got)
	}
}
