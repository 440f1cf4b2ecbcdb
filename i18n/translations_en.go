package i18n

var englishTranslations = map[string]string{
	// Title slide
	"title.status_report": "STATUS REPORT",
	"title.period":        "Period: %s to %s",
	"title.pm":            "Project Manager: %s",

	// Progress summary
	"progress.title":    "Progress Summary",
	"progress.hours":    "Hours: %s (%s billable)",
	"progress.team":     "Team: %s members",
	"progress.expenses": "Expenses: $%s",
	"progress.posture":  "Milestone Posture",

	"accomplishments.title": "Key Accomplishments",
	"accomplishments.empty": "No accomplishments data available for this period.",

	// RAIDD
	"raidd.title":        "Risks, Issues & Key Decisions (RAIDD)",
	"raidd.risks":        "Risks",
	"raidd.issues":       "Issues",
	"raidd.action_items": "Action Items",
	"raidd.decisions":    "Decisions",
	"raidd.dependencies": "Dependencies",
	"raidd.none":         "No active %s at this time.",
	"raidd.owner":        "Owner: %s",
	"raidd.due":          "Due: %s",
	"raidd.mitigation":   "Mitigation: %s",

	"upcoming.title": "Upcoming Activities",
	"upcoming.empty": "No upcoming activities data available.",

	// Timeline
	"timeline.title":      "Timeline & Milestones",
	"timeline.no_data":    "No timeline data available for this project.",
	"timeline.unlinked":   "Project Milestones",
	"timeline.skipped":    "%d item(s) not shown: missing or invalid dates",
	"timeline.col.name":   "Milestone",
	"timeline.col.target": "Target Date",
	"timeline.col.status": "Status",
	"timeline.col.range":  "Date Range",
}
