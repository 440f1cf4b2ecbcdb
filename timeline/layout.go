package timeline

import (
	"fmt"
	"math"
	"time"
)

const (
	minPadDays      = 7
	padSpanFraction = 0.05
)

// Geometry holds the chart's placement on the slide, in inches.
type Geometry struct {
	LabelLeft  float64 `yaml:"label_left"`
	LabelWidth float64 `yaml:"label_width"`
	ChartLeft  float64 `yaml:"chart_left"`
	ChartWidth float64 `yaml:"chart_width"`
	// Top is the top edge of the month axis; rows start below it.
	Top        float64 `yaml:"top"`
	AxisHeight float64 `yaml:"axis_height"`

	EpicRowHeight      float64 `yaml:"epic_row_height"`
	StageRowHeight     float64 `yaml:"stage_row_height"`
	MilestoneRowHeight float64 `yaml:"milestone_row_height"`
	BarHeight          float64 `yaml:"bar_height"`
	MarkerSize         float64 `yaml:"marker_size"`

	// MinBarWidth floors every bar so short stages stay visible.
	MinBarWidth float64 `yaml:"min_bar_width"`
	// LabelThreshold is the bar width above which a date label fits inside.
	LabelThreshold float64 `yaml:"label_threshold"`

	Palette       []string     `yaml:"palette"`
	StatusColors  StatusColors `yaml:"status_colors"`
	NeutralColor  string       `yaml:"neutral_color"`
	UnlinkedTitle string       `yaml:"unlinked_title"`
}

// DefaultGeometry fits the chart under a slide title on a 13.333 x 7.5 canvas.
func DefaultGeometry() Geometry {
	return Geometry{
		LabelLeft:          0.4,
		LabelWidth:         2.6,
		ChartLeft:          3.1,
		ChartWidth:         9.8,
		Top:                1.05,
		AxisHeight:         0.35,
		EpicRowHeight:      0.32,
		StageRowHeight:     0.30,
		MilestoneRowHeight: 0.24,
		BarHeight:          0.20,
		MarkerSize:         0.16,
		MinBarWidth:        0.08,
		LabelThreshold:     1.2,
		Palette:            append([]string(nil), DefaultPalette...),
		StatusColors:       DefaultStatusColors(),
		NeutralColor:       ColorNotStarted,
		UnlinkedTitle:      "Project Milestones",
	}
}

// Scaled returns a copy with every vertical size multiplied by f.
func (g Geometry) Scaled(f float64) Geometry {
	g.EpicRowHeight *= f
	g.StageRowHeight *= f
	g.MilestoneRowHeight *= f
	g.BarHeight *= f
	g.MarkerSize *= f
	return g
}

// RowKind identifies what a chart row contains.
type RowKind int

const (
	EpicRow RowKind = iota
	StageRow
	MilestoneRow
)

// Bar is a positioned stage.
type Bar struct {
	X, Y, Width, Height float64
	Start, End          time.Time
	Color               string
	ColorIndex          int
	// Label is the date range; ShowLabel is set when it fits inside the bar.
	Label     string
	ShowLabel bool
}

// Marker is a positioned milestone diamond; X and Y are its top-left corner.
type Marker struct {
	X, Y, Size float64
	Date       time.Time
	Color      string
	Status     string
	Payment    bool
}

// Row is one horizontal band of the chart. Stage rows carry a Bar,
// milestone rows a Marker, epic rows neither.
type Row struct {
	Kind   RowKind
	Label  string
	Top    float64
	Height float64
	Bar    *Bar
	Marker *Marker
}

// Tick marks the first day of a calendar month on the axis.
type Tick struct {
	Date  time.Time
	X     float64
	Label string
}

// Skipped records an element left off the chart because of its dates.
type Skipped struct {
	Kind string
	Name string
	Err  error
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s %q: %v", s.Kind, s.Name, s.Err)
}

// Layout is the computed chart.
type Layout struct {
	Start     time.Time
	End       time.Time
	TotalDays int
	Ticks     []Tick
	Rows      []Row
	Skipped   []Skipped
	// Bottom is the bottom edge of the last row.
	Bottom float64

	geometry Geometry
}

// X maps a date to its horizontal position.
func (l *Layout) X(d time.Time) float64 {
	return l.geometry.ChartLeft + l.geometry.ChartWidth*float64(daysBetween(l.Start, d))/float64(l.TotalDays)
}

// Geometry returns the geometry the layout was computed with.
func (l *Layout) Geometry() Geometry {
	return l.geometry
}

// Bounds returns the padded chart range for a set of dates:
// pad = max(7, round(5% of the span)) days on each side.
func Bounds(dates []time.Time) (time.Time, time.Time, error) {
	if len(dates) == 0 {
		return time.Time{}, time.Time{}, ErrNoData
	}
	lo, hi := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(lo) {
			lo = d
		}
		if d.After(hi) {
			hi = d
		}
	}
	pad := int(math.Round(padSpanFraction * float64(daysBetween(lo, hi))))
	if pad < minPadDays {
		pad = minPadDays
	}
	return lo.AddDate(0, 0, -pad), hi.AddDate(0, 0, pad), nil
}

type plannedStage struct {
	stage      Stage
	start, end time.Time
}

type plannedMilestone struct {
	milestone Milestone
	target    time.Time
}

type plannedEpic struct {
	name       string
	stages     []plannedStage
	milestones []plannedMilestone
}

type plan struct {
	epics    []plannedEpic
	unlinked []plannedMilestone
	dates    []time.Time
	skipped  []Skipped
}

func (p *plan) milestones(ms []Milestone) []plannedMilestone {
	var out []plannedMilestone
	for _, m := range ms {
		target, err := ParseDate(m.TargetDate)
		if err != nil {
			p.skipped = append(p.skipped, Skipped{Kind: "milestone", Name: m.Name, Err: err})
			continue
		}
		out = append(out, plannedMilestone{milestone: m, target: target})
		p.dates = append(p.dates, target)
	}
	return out
}

// resolve parses every date once. Elements with a bad or missing date are
// skipped and do not contribute to the chart bounds.
func resolve(in Input) plan {
	var p plan
	for _, epic := range in.EpicGroups {
		pe := plannedEpic{name: epic.EpicName}
		for _, s := range epic.Stages {
			start, end, err := stageDates(s)
			if err != nil {
				p.skipped = append(p.skipped, Skipped{Kind: "stage", Name: s.Name, Err: err})
				continue
			}
			pe.stages = append(pe.stages, plannedStage{stage: s, start: start, end: end})
			p.dates = append(p.dates, start, end)
		}
		pe.milestones = p.milestones(epic.Milestones)
		p.epics = append(p.epics, pe)
	}
	p.unlinked = p.milestones(in.UnlinkedMilestones)
	return p
}

// Compute lays the input out on g. It returns ErrNoData when no element has
// a usable date; elements with unparseable dates are listed in
// Layout.Skipped and left off the chart.
func Compute(in Input, g Geometry) (*Layout, error) {
	if g.ChartWidth <= 0 {
		return nil, fmt.Errorf("chart width must be positive, got %v", g.ChartWidth)
	}
	if len(g.Palette) == 0 {
		g.Palette = DefaultPalette
	}
	if g.StatusColors == nil {
		g.StatusColors = DefaultStatusColors()
	}
	if g.NeutralColor == "" {
		g.NeutralColor = ColorNotStarted
	}

	p := resolve(in)
	start, end, err := Bounds(p.dates)
	if err != nil {
		return &Layout{Skipped: p.skipped, geometry: g}, err
	}

	total := daysBetween(start, end)
	if total < 1 {
		total = 1
	}
	l := &Layout{
		Start:     start,
		End:       end,
		TotalDays: total,
		Skipped:   p.skipped,
		geometry:  g,
	}
	l.Ticks = l.monthTicks()

	cursor := g.Top + g.AxisHeight
	drawIndex := 0
	for _, epic := range p.epics {
		cursor = l.addHeader(epic.name, cursor)
		for _, ps := range epic.stages {
			cursor = l.addStage(ps, drawIndex, cursor)
			drawIndex++
		}
		for _, pm := range epic.milestones {
			cursor = l.addMilestone(pm, cursor)
		}
	}
	if len(p.unlinked) > 0 {
		cursor = l.addHeader(g.UnlinkedTitle, cursor)
		for _, pm := range p.unlinked {
			cursor = l.addMilestone(pm, cursor)
		}
	}
	l.Bottom = cursor
	return l, nil
}

func (l *Layout) addHeader(label string, top float64) float64 {
	h := l.geometry.EpicRowHeight
	l.Rows = append(l.Rows, Row{Kind: EpicRow, Label: label, Top: top, Height: h})
	return top + h
}

func (l *Layout) addStage(ps plannedStage, drawIndex int, top float64) float64 {
	g := l.geometry
	x0, x1 := l.X(ps.start), l.X(ps.end)
	width := x1 - x0
	if width < g.MinBarWidth {
		width = g.MinBarWidth
	}
	bar := &Bar{
		X:          x0,
		Y:          top + (g.StageRowHeight-g.BarHeight)/2,
		Width:      width,
		Height:     g.BarHeight,
		Start:      ps.start,
		End:        ps.end,
		Color:      PaletteColor(g.Palette, drawIndex),
		ColorIndex: drawIndex % len(g.Palette),
		Label:      shortDate(ps.start) + " – " + shortDate(ps.end),
		ShowLabel:  width > g.LabelThreshold,
	}
	l.Rows = append(l.Rows, Row{Kind: StageRow, Label: ps.stage.Name, Top: top, Height: g.StageRowHeight, Bar: bar})
	return top + g.StageRowHeight
}

func (l *Layout) addMilestone(pm plannedMilestone, top float64) float64 {
	g := l.geometry
	color, ok := g.StatusColors.Lookup(pm.milestone.Status)
	if !ok {
		color = g.NeutralColor
	}
	marker := &Marker{
		X:       l.X(pm.target) - g.MarkerSize/2,
		Y:       top + (g.MilestoneRowHeight-g.MarkerSize)/2,
		Size:    g.MarkerSize,
		Date:    pm.target,
		Color:   color,
		Status:  pm.milestone.Status,
		Payment: pm.milestone.IsPayment,
	}
	l.Rows = append(l.Rows, Row{Kind: MilestoneRow, Label: pm.milestone.Name, Top: top, Height: g.MilestoneRowHeight, Marker: marker})
	return top + g.MilestoneRowHeight
}

// maxMonthTicks caps the axis. Longer spans tick on January of every
// n-th year instead.
const maxMonthTicks = 120

// monthTicks places one tick on the first day of every month from the month
// of Start through the month of End. The first tick can sit left of the
// chart because Start is rarely a first of month.
func (l *Layout) monthTicks() []Tick {
	first, last := firstOfMonth(l.Start), firstOfMonth(l.End)
	months := (last.Year()-first.Year())*12 + int(last.Month()-first.Month())

	step := 1
	if months >= maxMonthTicks {
		years := (months/maxMonthTicks + 12) / 12
		step = years * 12
		first = time.Date(first.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	var ticks []Tick
	for m := first; !m.After(last); m = m.AddDate(0, step, 0) {
		label := m.Format("Jan")
		switch {
		case step >= 12:
			label = m.Format("2006")
		case len(ticks) == 0 || m.Month() == time.January:
			label = m.Format("Jan 2006")
		}
		ticks = append(ticks, Tick{Date: m, X: l.X(m), Label: label})
	}
	return ticks
}
