// Package timeline lays out epics, stages and milestones as a Gantt chart:
// padded date bounds, an affine date-to-x mapping, month ticks and
// collision-free row stacking.
package timeline

// Stage is a dated interval drawn as a horizontal bar.
type Stage struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Milestone is a single dated point drawn as a diamond marker.
type Milestone struct {
	Name       string `json:"name"`
	TargetDate string `json:"targetDate"`
	Status     string `json:"status"`
	IsPayment  bool   `json:"isPayment"`
}

// EpicGroup is a named collection of stages and milestones rendered together.
type EpicGroup struct {
	EpicName   string      `json:"epicName"`
	Stages     []Stage     `json:"stages"`
	Milestones []Milestone `json:"milestones"`
}

// Input is the timeline section of a status report payload.
type Input struct {
	EpicGroups         []EpicGroup `json:"epicGroups"`
	UnlinkedMilestones []Milestone `json:"unlinkedMilestones"`
}

// HasDrawableStages reports whether at least one stage has two parseable
// dates. Without one the chart is replaced by a flat milestone table.
func (in Input) HasDrawableStages() bool {
	for _, epic := range in.EpicGroups {
		for _, stage := range epic.Stages {
			if _, _, err := stageDates(stage); err == nil {
				return true
			}
		}
	}
	return false
}

// Milestones returns every milestone of the input, epic milestones first.
func (in Input) Milestones() []Milestone {
	var out []Milestone
	for _, epic := range in.EpicGroups {
		out = append(out, epic.Milestones...)
	}
	return append(out, in.UnlinkedMilestones...)
}
