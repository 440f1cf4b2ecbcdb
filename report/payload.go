// Package report decodes the status report payload read from stdin.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"statusdeck/timeline"
)

// Brand colour defaults.
const (
	DefaultPrimaryColor   = "#810FFB"
	DefaultSecondaryColor = "#E60CB3"
	DefaultProjectName    = "Project Status Report"

	reportDateLayout = "January 02, 2006"
)

// ErrInvalidPayload wraps malformed JSON and schema violations.
var ErrInvalidPayload = errors.New("invalid payload")

// Payload carries every field the deck consumes. Absent fields decode to
// zero values and ApplyDefaults fills the ones that have a default.
type Payload struct {
	ProjectName        string `json:"projectName"`
	ClientName         string `json:"clientName"`
	ReportDate         string `json:"reportDate"`
	PeriodStart        string `json:"periodStart"`
	PeriodEnd          string `json:"periodEnd"`
	PMName             string `json:"pmName"`
	LogoPath           string `json:"logoPath"`
	PrimaryColor       string `json:"primaryColor"`
	SecondaryColor     string `json:"secondaryColor"`
	ProjectDescription string `json:"projectDescription"`
	ExecutiveSummary   string `json:"executiveSummary"`
	// AIReport is the markdown narrative split into sections.
	AIReport string `json:"aiReport"`

	// Metrics is nil when the payload has no metrics object.
	Metrics          *Metrics                 `json:"metrics"`
	MilestonePosture Posture                  `json:"milestonePosture"`
	Milestones       []timeline.FlatMilestone `json:"milestones"`
	Timeline         timeline.Input           `json:"timeline"`
	RAIDD            RAIDD                    `json:"raidd"`
}

// Metrics summarises effort and cost for the reporting period.
type Metrics struct {
	TotalHours    Scalar `json:"totalHours"`
	BillableHours Scalar `json:"billableHours"`
	TeamMembers   Scalar `json:"teamMembers"`
	TotalExpenses Scalar `json:"totalExpenses"`
}

// RAIDDEntry is one risk, issue, action item, decision or dependency.
type RAIDDEntry struct {
	RefNumber      Scalar `json:"refNumber"`
	Title          string `json:"title"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	OwnerName      string `json:"ownerName"`
	DueDate        string `json:"dueDate"`
	MitigationPlan string `json:"mitigationPlan"`
}

// RAIDD groups log entries by category.
type RAIDD struct {
	Risks        []RAIDDEntry `json:"risks"`
	Issues       []RAIDDEntry `json:"issues"`
	ActionItems  []RAIDDEntry `json:"actionItems"`
	Decisions    []RAIDDEntry `json:"decisions"`
	Dependencies []RAIDDEntry `json:"dependencies"`
	TableEntries []RAIDDEntry `json:"tableEntries"`
}

// Scalar holds a JSON string or number in its textual form. Upstream
// services send metrics either way.
type Scalar string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	switch b[0] {
	case '{', '[':
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*s = Scalar(b)
	return nil
}

func (s Scalar) String() string {
	return string(s)
}

// Float parses the scalar as a number.
func (s Scalar) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsZero reports whether the scalar is empty or numerically zero.
func (s Scalar) IsZero() bool {
	if strings.TrimSpace(string(s)) == "" {
		return true
	}
	f, ok := s.Float()
	return ok && f == 0
}

// PostureGroup lists milestone names under one status label.
type PostureGroup struct {
	Label string
	Names []string
}

// Posture keeps the label order of the milestonePosture object.
type Posture []PostureGroup

// UnmarshalJSON walks the object token by token so key order survives.
func (p *Posture) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*p = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("milestonePosture: expected object")
	}
	var groups Posture
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, _ := keyTok.(string)
		var names []string
		if err := dec.Decode(&names); err != nil {
			return fmt.Errorf("milestonePosture %q: %w", label, err)
		}
		groups = append(groups, PostureGroup{Label: label, Names: names})
	}
	*p = groups
	return nil
}

// Active returns the groups that list at least one milestone.
func (p Posture) Active() Posture {
	var out Posture
	for _, g := range p {
		if len(g.Names) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// Defaults supplies the values ApplyDefaults fills in. Empty colours fall
// back to DefaultPrimaryColor and DefaultSecondaryColor.
type Defaults struct {
	Now            time.Time
	PrimaryColor   string
	SecondaryColor string
}

// Decode repairs non-UTF-8 input, validates and decodes a payload, then
// sanitises text fields and applies defaults. Malformed JSON and schema violations wrap
// ErrInvalidPayload.
func Decode(r io.Reader, d Defaults) (*Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	raw = RepairUTF8(raw)
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	p.Sanitize()
	p.ApplyDefaults(d)
	return &p, nil
}

// ApplyDefaults fills brand colours, project name and report date.
func (p *Payload) ApplyDefaults(d Defaults) {
	if d.Now.IsZero() {
		d.Now = time.Now()
	}
	primary := NormalizeHexColor(d.PrimaryColor, DefaultPrimaryColor)
	secondary := NormalizeHexColor(d.SecondaryColor, DefaultSecondaryColor)

	if p.ProjectName == "" {
		p.ProjectName = DefaultProjectName
	}
	if p.ReportDate == "" {
		p.ReportDate = d.Now.Format(reportDateLayout)
	}
	p.PrimaryColor = NormalizeHexColor(p.PrimaryColor, primary)
	p.SecondaryColor = NormalizeHexColor(p.SecondaryColor, secondary)
}

// HasPeriod reports whether both ends of the reporting period are set.
func (p *Payload) HasPeriod() bool {
	return p.PeriodStart != "" && p.PeriodEnd != ""
}

// FlatMilestones returns the top-level milestone list, or every timeline
// milestone when that list is empty.
func (p *Payload) FlatMilestones() []timeline.FlatMilestone {
	if len(p.Milestones) > 0 {
		return p.Milestones
	}
	return timeline.Flatten(p.Timeline.Milestones())
}
