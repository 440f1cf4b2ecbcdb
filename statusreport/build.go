// Package statusreport turns a decoded payload into the six status slides
// and the matching handout outline.
package statusreport

import (
	"fmt"

	"statusdeck/config"
	"statusdeck/deck"
	"statusdeck/i18n"
	"statusdeck/logger"
	"statusdeck/markdown"
	"statusdeck/report"
	"statusdeck/timeline"
)

const (
	accentBarHeight = 0.08
	white           = deck.Color("#FFFFFF")
)

// Options configures Build. A zero Theme means config.DefaultTheme and a
// nil Logger disables logging.
type Options struct {
	Theme  config.Theme
	Logger *logger.Logger
}

// Result describes what Build rendered.
type Result struct {
	Outline deck.Outline
	// Headings lists the narrative sections found in aiReport.
	Headings []string
	// Skipped lists timeline elements left off the chart.
	Skipped []timeline.Skipped
	// Chart is set when the timeline slide shows a Gantt chart rather than
	// the fallback table or the no-data message.
	Chart bool
}

type builder struct {
	backend  deck.Backend
	payload  *report.Payload
	sections markdown.Sections
	theme    config.Theme
	log      *logger.Logger

	primary   deck.Color
	secondary deck.Color
	result    *Result
}

// Build renders every slide onto backend in deck order: title, progress
// summary, accomplishments, RAIDD, upcoming activities and timeline.
func Build(backend deck.Backend, p *report.Payload, opts Options) (*Result, error) {
	if p == nil {
		return nil, fmt.Errorf("payload is nil")
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewLogger()
	}
	theme := opts.Theme
	if theme.SlideWidth == 0 {
		theme = config.DefaultTheme()
	}

	b := &builder{
		backend:   backend,
		payload:   p,
		sections:  markdown.ParseSections(p.AIReport),
		theme:     theme,
		log:       log,
		primary:   deck.Color(p.PrimaryColor),
		secondary: deck.Color(p.SecondaryColor),
		result:    &Result{},
	}
	b.result.Headings = b.sections.Headings()
	log.Logf("aiReport sections: %q", b.result.Headings)

	b.titleSlide()
	b.progressSlide()
	b.bulletSlide(i18n.T("accomplishments.title"), "Key Accomplishments", i18n.T("accomplishments.empty"))
	b.raiddSlide()
	b.bulletSlide(i18n.T("upcoming.title"), "Upcoming Activities", i18n.T("upcoming.empty"))
	if err := b.timelineSlide(); err != nil {
		return nil, fmt.Errorf("failed to build timeline slide: %w", err)
	}
	return b.result, nil
}

func (b *builder) run(text string, size float64, bold bool, color deck.Color) deck.Run {
	if color == "" {
		color = deck.Color(b.theme.TextColor)
	}
	return deck.Run{
		Text: text,
		Font: deck.Font{Family: b.theme.FontFamily, Size: size, Bold: bold, Color: color},
	}
}

func paragraph(runs ...deck.Run) deck.Paragraph {
	return deck.Paragraph{Runs: runs}
}

// contentSlide starts a slide with the accent bar and a title.
func (b *builder) contentSlide(title string, titleSize float64) deck.Slide {
	s := b.backend.NewSlide()
	s.AddShape(deck.Rectangle, deck.Rect{W: b.theme.SlideWidth, H: accentBarHeight}, b.primary)
	s.AddTextBox(deck.Rect{X: 0.8, Y: 0.3, W: 10, H: 0.6},
		[]deck.Paragraph{paragraph(b.run(title, titleSize, true, b.primary))},
		deck.TextBoxOptions{})
	return s
}

// textSlide adds paras in one word-wrapped box and mirrors them in the outline.
func (b *builder) textSlide(s deck.Slide, r deck.Rect, heading string, paras []deck.Paragraph) {
	s.AddTextBox(r, paras, deck.TextBoxOptions{WordWrap: true})
	sec := deck.Section{Heading: heading}
	for _, p := range paras {
		sec.AddParagraph(p)
	}
	b.addSection(sec)
}

func (b *builder) addSection(sec deck.Section) {
	b.result.Outline.Sections = append(b.result.Outline.Sections, sec)
}

func (b *builder) inlineRuns(segments []markdown.Segment, size float64) []deck.Run {
	runs := make([]deck.Run, 0, len(segments))
	for _, seg := range segments {
		if seg.Bold {
			runs = append(runs, b.run(seg.Text, size, true, b.primary))
			continue
		}
		runs = append(runs, b.run(seg.Text, size, false, ""))
	}
	return runs
}

// narrative renders free-form markdown one paragraph per non-blank line.
func (b *builder) narrative(text string, size float64) []deck.Paragraph {
	var paras []deck.Paragraph
	for _, line := range markdown.ParseLines(text) {
		switch line.Kind {
		case markdown.Bullet:
			runs := append([]deck.Run{b.run("• ", size, false, "")}, b.inlineRuns(line.Segments, size)...)
			paras = append(paras, deck.Paragraph{Runs: runs})
		case markdown.SubBullet:
			runs := append([]deck.Run{b.run("  – ", size-1, false, "")}, b.inlineRuns(line.Segments, size-1)...)
			paras = append(paras, deck.Paragraph{Runs: runs, Level: 1})
		default:
			paras = append(paras, deck.Paragraph{Runs: b.inlineRuns(line.Segments, size)})
		}
	}
	return paras
}

// bulletItems renders titled items with their description and sub-items.
func (b *builder) bulletItems(items []markdown.BulletItem) []deck.Paragraph {
	var paras []deck.Paragraph
	for _, item := range items {
		paras = append(paras, paragraph(b.run("• "+item.Title, 11, true, b.primary)))
		if item.Description != "" {
			paras = append(paras, paragraph(b.run("  "+item.Description, 10, false, "")))
		}
		for _, sub := range item.SubItems {
			p := paragraph(b.run("    – "+sub, 9, false, deck.Color(b.theme.SubItemColor)))
			p.Level = 1
			paras = append(paras, p)
		}
	}
	return paras
}

// bulletSlide renders the bullet items of one aiReport section, or the empty
// message when the section is missing or has no items.
func (b *builder) bulletSlide(title, section, empty string) {
	s := b.contentSlide(title, 24)
	var paras []deck.Paragraph
	if text, ok := b.sections.Get(section); ok && text != "" {
		paras = b.bulletItems(markdown.ParseBullets(text))
	}
	if len(paras) == 0 {
		paras = []deck.Paragraph{paragraph(b.run(empty, 11, false, deck.Color(b.theme.DimColor)))}
	}
	b.textSlide(s, deck.Rect{X: 0.8, Y: 1.1, W: 11.5, H: 6.0}, title, paras)
}
