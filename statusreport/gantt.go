package statusreport

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"statusdeck/config"
	"statusdeck/deck"
	"statusdeck/i18n"
	"statusdeck/timeline"
)

const (
	hairline          = 0.01
	minTickLabelWidth = 0.3
	footnoteHeight    = config.FootnoteHeight
	rowIndent         = 0.15
	markerDateWidth   = 0.9

	gridColor     = deck.Color("#E5E7EB")
	axisColor     = deck.Color("#D1D5DB")
	epicBandColor = deck.Color("#F3F4F6")
	paymentColor  = deck.Color("#16A34A")
	darkBarText   = deck.Color("#1F2937")
)

// timelineSlide draws the Gantt chart when a stage has both dates, otherwise
// the flat milestone table, otherwise the no-data message.
func (b *builder) timelineSlide() error {
	title := i18n.T("timeline.title")
	s := b.contentSlide(title, 24)
	sec := deck.Section{Heading: title}
	defer func() { b.addSection(sec) }()

	if b.payload.Timeline.HasDrawableStages() {
		l, err := b.layout()
		switch {
		case err == nil:
			b.paintGantt(s, l)
			sec.AddTable(ganttOutline(l))
			b.result.Chart = true
			return nil
		case !errors.Is(err, timeline.ErrNoData):
			return err
		}
	}

	rows := timeline.FallbackRows(b.payload.FlatMilestones(), b.theme.Gantt.StatusColors, b.theme.MaxFallbackRows)
	if len(rows) == 0 {
		para := paragraph(b.run(i18n.T("timeline.no_data"), 12, false, deck.Color(b.theme.MutedColor)))
		s.AddTextBox(deck.Rect{X: 1, Y: 2, W: 10, H: 1}, []deck.Paragraph{para}, deck.TextBoxOptions{WordWrap: true})
		sec.AddParagraph(para)
		return nil
	}
	t := b.fallbackTable(rows)
	s.AddTable(deck.Rect{X: 0.4, Y: 1.1, W: 12.4, H: t.RowHeight * float64(len(t.Rows))}, t)
	sec.AddTable(t)
	return nil
}

// layout computes the chart and, when it would run past the content area,
// recomputes it with uniformly shorter rows.
func (b *builder) layout() (*timeline.Layout, error) {
	g := b.theme.Gantt
	g.UnlinkedTitle = i18n.T("timeline.unlinked")

	l, err := timeline.Compute(b.payload.Timeline, g)
	if err != nil {
		return nil, err
	}
	for _, skipped := range l.Skipped {
		b.log.Logf("timeline: skipped %s", skipped)
	}
	b.result.Skipped = l.Skipped

	limit := b.theme.ContentBottom - footnoteHeight
	rowsTop := g.Top + g.AxisHeight
	if l.Bottom <= limit || l.Bottom <= rowsTop || limit <= rowsTop {
		return l, nil
	}
	f := (limit - rowsTop) / (l.Bottom - rowsTop)
	b.log.Logf("timeline: %d rows overflow the slide, scaling rows by %.2f", len(l.Rows), f)
	return timeline.Compute(b.payload.Timeline, g.Scaled(f))
}

func (b *builder) paintGantt(s deck.Slide, l *timeline.Layout) {
	g := l.Geometry()
	// Row fonts shrink with the rows but stay legible.
	fontScale := math.Max(0.6, math.Min(1, g.StageRowHeight/b.theme.Gantt.StageRowHeight))
	chartRight := g.ChartLeft + g.ChartWidth
	rowsTop := g.Top + g.AxisHeight

	for _, row := range l.Rows {
		if row.Kind == timeline.EpicRow {
			s.AddShape(deck.Rectangle, deck.Rect{X: g.LabelLeft, Y: row.Top, W: chartRight - g.LabelLeft, H: row.Height}, epicBandColor)
		}
	}
	b.paintAxis(s, l, rowsTop, chartRight)

	for _, row := range l.Rows {
		switch row.Kind {
		case timeline.EpicRow:
			b.rowLabel(s, g.LabelLeft, g.LabelWidth, row, b.run(row.Label, 10*fontScale, true, b.primary))
		case timeline.StageRow:
			b.rowLabel(s, g.LabelLeft+rowIndent, g.LabelWidth-rowIndent, row, b.run(row.Label, 9*fontScale, false, ""))
			b.paintBar(s, row.Bar, fontScale)
		case timeline.MilestoneRow:
			runs := []deck.Run{b.run(row.Label, 8*fontScale, false, "")}
			if row.Marker.Payment {
				runs = append(runs, b.run(" $", 8*fontScale, true, paymentColor))
			}
			b.rowLabel(s, g.LabelLeft+rowIndent, g.LabelWidth-rowIndent, row, runs...)
			b.paintMarker(s, row, fontScale)
		}
	}

	if n := len(l.Skipped); n > 0 {
		note := paragraph(b.run(i18n.T("timeline.skipped", n), 8, false, deck.Color(b.theme.DimColor)))
		s.AddTextBox(deck.Rect{X: g.LabelLeft, Y: b.theme.ContentBottom - footnoteHeight, W: chartRight - g.LabelLeft, H: footnoteHeight},
			[]deck.Paragraph{note}, deck.TextBoxOptions{})
	}
}

// paintAxis draws the month labels above the chart and a gridline per month.
// The first month usually starts before the chart, so ticks are clamped.
func (b *builder) paintAxis(s deck.Slide, l *timeline.Layout, rowsTop, chartRight float64) {
	g := l.Geometry()
	s.AddShape(deck.Rectangle, deck.Rect{X: g.ChartLeft, Y: rowsTop - hairline, W: g.ChartWidth, H: hairline}, axisColor)

	for i, tick := range l.Ticks {
		x := clamp(tick.X, g.ChartLeft, chartRight)
		next := chartRight
		if i+1 < len(l.Ticks) {
			next = clamp(l.Ticks[i+1].X, g.ChartLeft, chartRight)
		}
		if tick.X >= g.ChartLeft && tick.X <= chartRight && l.Bottom > rowsTop {
			s.AddShape(deck.Rectangle, deck.Rect{X: tick.X, Y: rowsTop, W: hairline, H: l.Bottom - rowsTop}, gridColor)
		}
		if next-x < minTickLabelWidth {
			continue
		}
		s.AddTextBox(deck.Rect{X: x, Y: g.Top, W: next - x, H: g.AxisHeight},
			[]deck.Paragraph{paragraph(b.run(tick.Label, 8, false, deck.Color(b.theme.MutedColor)))},
			deck.TextBoxOptions{VerticalCenter: true})
	}
}

func (b *builder) rowLabel(s deck.Slide, left, width float64, row timeline.Row, runs ...deck.Run) {
	s.AddTextBox(deck.Rect{X: left, Y: row.Top, W: width, H: row.Height},
		[]deck.Paragraph{{Runs: runs}}, deck.TextBoxOptions{VerticalCenter: true})
}

func (b *builder) paintBar(s deck.Slide, bar *timeline.Bar, fontScale float64) {
	r := deck.Rect{X: bar.X, Y: bar.Y, W: bar.Width, H: bar.Height}
	s.AddShape(deck.RoundedRectangle, r, deck.Color(bar.Color))
	if !bar.ShowLabel {
		return
	}
	label := deck.Paragraph{
		Runs:  []deck.Run{b.run(bar.Label, 7*fontScale, false, contrastColor(bar.Color))},
		Align: deck.AlignCenter,
	}
	s.AddTextBox(r, []deck.Paragraph{label}, deck.TextBoxOptions{VerticalCenter: true})
}

func (b *builder) paintMarker(s deck.Slide, row timeline.Row, fontScale float64) {
	m := row.Marker
	s.AddShape(deck.Diamond, deck.Rect{X: m.X, Y: m.Y, W: m.Size, H: m.Size}, deck.Color(m.Color))
	date := paragraph(b.run(m.Date.Format("Jan 2"), 7*fontScale, false, deck.Color(b.theme.MutedColor)))
	s.AddTextBox(deck.Rect{X: m.X + m.Size + 0.05, Y: row.Top, W: markerDateWidth, H: row.Height},
		[]deck.Paragraph{date}, deck.TextBoxOptions{VerticalCenter: true})
}

func (b *builder) fallbackTable(rows []timeline.FallbackRow) deck.Table {
	header := func(key string) deck.Cell {
		return deck.Cell{Runs: []deck.Run{b.run(i18n.T(key), 9, true, white)}, Fill: b.primary}
	}
	cell := func(text string, color deck.Color) deck.Cell {
		return deck.Cell{Runs: []deck.Run{b.run(text, 9, false, color)}}
	}

	t := deck.Table{
		Columns:   []float64{4.4, 2.4, 2.4, 3.2},
		RowHeight: 0.35,
		Rows: [][]deck.Cell{{
			header("timeline.col.name"),
			header("timeline.col.target"),
			header("timeline.col.status"),
			header("timeline.col.range"),
		}},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []deck.Cell{
			cell(r.Name, ""),
			cell(r.TargetDate, ""),
			cell(StatusLabel(r.Status), deck.Color(r.StatusColor)),
			cell(r.DateRange, ""),
		})
	}
	return t
}

// StatusLabel turns "in-progress" or "not_started" into "In Progress" and
// "Not Started".
func StatusLabel(status string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(status)
	return cases.Title(language.English).String(words)
}

// ganttOutline lists the chart rows as a table for the handouts.
func ganttOutline(l *timeline.Layout) deck.Table {
	t := deck.Table{Columns: []float64{4.4, 2.4, 2.4, 3.2}, RowHeight: 0.3}
	text := func(s string, bold bool) deck.Cell {
		return deck.Cell{Runs: []deck.Run{{Text: s, Font: deck.Font{Size: 9, Bold: bold}}}}
	}
	t.Rows = append(t.Rows, []deck.Cell{
		text(i18n.T("timeline.col.name"), true),
		text(i18n.T("timeline.col.target"), true),
		text(i18n.T("timeline.col.status"), true),
		text(i18n.T("timeline.col.range"), true),
	})
	for _, row := range l.Rows {
		switch row.Kind {
		case timeline.EpicRow:
			t.Rows = append(t.Rows, []deck.Cell{text(row.Label, true), text("", false), text("", false), text("", false)})
		case timeline.StageRow:
			span := row.Bar.Start.Format("2006-01-02") + " – " + row.Bar.End.Format("2006-01-02")
			t.Rows = append(t.Rows, []deck.Cell{text(row.Label, false), text("", false), text("", false), text(span, false)})
		case timeline.MilestoneRow:
			name := row.Label
			if row.Marker.Payment {
				name += " $"
			}
			t.Rows = append(t.Rows, []deck.Cell{
				text(name, false),
				text(row.Marker.Date.Format("2006-01-02"), false),
				text(StatusLabel(row.Marker.Status), false),
				text("", false),
			})
		}
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// contrastColor picks white or near-black text for a "#RRGGBB" fill.
func contrastColor(fill string) deck.Color {
	hex := strings.TrimPrefix(fill, "#")
	if len(hex) != 6 {
		return white
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return white
	}
	r, g, bl := float64(rgb>>16&0xFF), float64(rgb>>8&0xFF), float64(rgb&0xFF)
	if 0.299*r+0.587*g+0.114*bl > 160 {
		return darkBarText
	}
	return white
}
