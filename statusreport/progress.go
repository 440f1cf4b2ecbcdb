package statusreport

import (
	"strings"

	"statusdeck/deck"
	"statusdeck/i18n"
	"statusdeck/report"
)

// progressSlide shows the metrics strip, the Progress Summary narrative and
// the milestone posture.
func (b *builder) progressSlide() {
	p := b.payload
	title := i18n.T("progress.title")
	s := b.contentSlide(title, 24)
	sec := deck.Section{Heading: title}

	contentTop := 1.2
	if p.Metrics != nil {
		contentTop = 1.6
		if line := metricsLine(p.Metrics); line != "" {
			para := paragraph(b.run(line, 9, false, deck.Color(b.theme.MutedColor)))
			s.AddTextBox(deck.Rect{X: 0.8, Y: 1.0, W: 11.5, H: 0.5}, []deck.Paragraph{para}, deck.TextBoxOptions{})
			sec.AddParagraph(para)
		}
	}

	var paras []deck.Paragraph
	if text, ok := b.sections.Get("Progress Summary"); ok && text != "" {
		paras = b.narrative(text, 11)
	} else if p.ExecutiveSummary != "" {
		paras = b.narrative(p.ExecutiveSummary, 11)
	} else if p.ProjectDescription != "" {
		for _, line := range strings.Split(p.ProjectDescription, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				paras = append(paras, paragraph(b.run(line, 11, false, "")))
			}
		}
	}
	paras = append(paras, b.posture(p.MilestonePosture)...)

	s.AddTextBox(deck.Rect{X: 0.8, Y: contentTop, W: 11.5, H: 5.5}, paras, deck.TextBoxOptions{WordWrap: true})
	for _, para := range paras {
		sec.AddParagraph(para)
	}
	b.addSection(sec)
}

// metricsLine joins the non-zero metrics, e.g.
// "Hours: 120 (100 billable)  |  Team: 4 members  |  Expenses: $950".
func metricsLine(m *report.Metrics) string {
	var items []string
	if !m.TotalHours.IsZero() {
		billable := m.BillableHours.String()
		if billable == "" {
			billable = "0"
		}
		items = append(items, i18n.T("progress.hours", m.TotalHours.String(), billable))
	}
	if n, ok := m.TeamMembers.Float(); ok && n > 0 {
		items = append(items, i18n.T("progress.team", m.TeamMembers.String()))
	}
	if !m.TotalExpenses.IsZero() {
		items = append(items, i18n.T("progress.expenses", m.TotalExpenses.String()))
	}
	return strings.Join(items, "  |  ")
}

func (b *builder) posture(groups report.Posture) []deck.Paragraph {
	active := groups.Active()
	if len(active) == 0 {
		return nil
	}
	paras := []deck.Paragraph{paragraph(b.run(i18n.T("progress.posture"), 12, true, b.primary))}
	for _, g := range active {
		paras = append(paras, paragraph(
			b.run("• "+g.Label+": ", 10, true, ""),
			b.run(strings.Join(g.Names, ", "), 10, false, ""),
		))
	}
	return paras
}
