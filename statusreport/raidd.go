package statusreport

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"statusdeck/deck"
	"statusdeck/i18n"
	"statusdeck/report"
	"statusdeck/timeline"
)

type raiddCategory struct {
	label   string
	entries []report.RAIDDEntry
}

// raiddSlide prefers the narrative RAIDD section of aiReport and falls back
// to the structured log.
func (b *builder) raiddSlide() {
	title := i18n.T("raidd.title")
	s := b.contentSlide(title, 22)

	var paras []deck.Paragraph
	if text, ok := b.sections.Find("raidd", "risk"); ok && text != "" {
		paras = b.narrative(text, 9)
	} else {
		paras = b.raiddLog(b.payload.RAIDD)
	}
	b.textSlide(s, deck.Rect{X: 0.5, Y: 1.0, W: 12.3, H: 6.0}, title, paras)
}

func (b *builder) raiddLog(r report.RAIDD) []deck.Paragraph {
	categories := []raiddCategory{
		{i18n.T("raidd.risks"), r.Risks},
		{i18n.T("raidd.issues"), r.Issues},
		{i18n.T("raidd.action_items"), r.ActionItems},
		{i18n.T("raidd.decisions"), r.Decisions},
		{i18n.T("raidd.dependencies"), r.Dependencies},
	}

	var paras []deck.Paragraph
	for _, cat := range categories {
		paras = append(paras, paragraph(b.run(cat.label, 11, true, b.primary)))

		display := ActiveEntries(cat.entries)
		if len(display) == 0 {
			display = cat.entries
		}
		if len(display) == 0 {
			msg := "  " + i18n.T("raidd.none", strings.ToLower(cat.label))
			paras = append(paras, paragraph(b.run(msg, 9, false, deck.Color(b.theme.DimColor))))
			continue
		}
		for _, e := range display {
			paras = append(paras, paragraph(b.run("  "+entryHeadline(e), 9, true, "")))
			if details := entryDetails(e); details != "" {
				paras = append(paras, paragraph(b.run("    "+details, 8, false, deck.Color(b.theme.NoteColor))))
			}
		}
	}
	return paras
}

// ActiveEntries keeps open and in-progress entries.
func ActiveEntries(entries []report.RAIDDEntry) []report.RAIDDEntry {
	return lo.Filter(entries, func(e report.RAIDDEntry, _ int) bool {
		switch timeline.NormalizeStatus(e.Status) {
		case "open", timeline.StatusInProgress:
			return true
		}
		return false
	})
}

// entryHeadline formats "REF Title [PRIORITY] (status)".
func entryHeadline(e report.RAIDDEntry) string {
	line := strings.TrimSpace(fmt.Sprintf("%s %s", e.RefNumber, e.Title))
	if e.Priority != "" {
		line += " [" + strings.ToUpper(e.Priority) + "]"
	}
	if e.Status != "" {
		line += " (" + e.Status + ")"
	}
	return line
}

func entryDetails(e report.RAIDDEntry) string {
	details := lo.Compact([]string{
		labelled("raidd.owner", e.OwnerName),
		labelled("raidd.due", e.DueDate),
		labelled("raidd.mitigation", e.MitigationPlan),
	})
	return strings.Join(details, "; ")
}

func labelled(key, value string) string {
	if value == "" {
		return ""
	}
	return i18n.T(key, value)
}
