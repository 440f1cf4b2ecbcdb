package statusreport

import (
	"statusdeck/deck"
	"statusdeck/i18n"
)

var (
	logoAt     = deck.Point{X: 10.5, Y: 4.0}
	logoHeight = 0.8
)

// titleSlide fills the slide with the primary colour and lists project,
// client, period and project manager. A logo that cannot be placed is
// logged and left out.
func (b *builder) titleSlide() {
	p := b.payload
	s := b.backend.NewSlide()

	s.AddShape(deck.Rectangle, deck.Rect{W: b.theme.SlideWidth, H: b.theme.SlideHeight}, b.primary)
	s.AddShape(deck.Rectangle, deck.Rect{Y: 5.0, W: b.theme.SlideWidth, H: 0.06}, b.secondary)

	s.AddTextBox(deck.Rect{X: 1, Y: 2.0, W: 11, H: 2.0}, []deck.Paragraph{
		paragraph(b.run(p.ProjectName, 36, true, white)),
		paragraph(b.run(i18n.T("title.status_report"), 20, false, "#DCDCDC")),
	}, deck.TextBoxOptions{WordWrap: true})

	period := p.ReportDate
	if p.HasPeriod() {
		period = i18n.T("title.period", p.PeriodStart, p.PeriodEnd)
	}
	pmLine := p.ReportDate
	if p.PMName != "" {
		pmLine = i18n.T("title.pm", p.PMName)
	}
	s.AddTextBox(deck.Rect{X: 1, Y: 4.2, W: 8, H: 1.2}, []deck.Paragraph{
		paragraph(b.run(p.ClientName, 16, true, white)),
		paragraph(b.run(period, 14, false, "#E6E6E6")),
		paragraph(b.run(pmLine, 12, false, "#C8C8C8")),
	}, deck.TextBoxOptions{WordWrap: true})

	if p.LogoPath != "" {
		if err := s.AddPicture(p.LogoPath, logoAt, logoHeight); err != nil {
			b.log.Logf("logo %s skipped: %v", p.LogoPath, err)
		}
	}

	b.result.Outline.Title = p.ProjectName
	b.result.Outline.Accent = b.primary
	for _, line := range []string{i18n.T("title.status_report"), p.ClientName, period, pmLine} {
		if line != "" {
			b.result.Outline.Subtitle = append(b.result.Outline.Subtitle, line)
		}
	}
}
