package export

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"statusdeck/deck"
)

const (
	pdfGridColumns = 12
	// A4 width less 15mm margins.
	pdfContentWidthMM = 180.0
	mmPerPoint        = 0.3528
)

var pdfMutedColor = &props.Color{Red: 100, Green: 116, Blue: 139}

// PDFExportService renders the outline as a PDF handout using maroto.
type PDFExportService struct{}

// NewPDFExportService creates a new PDF export service
func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

// ExportOutlineToPDF renders one block per section: heading, paragraphs and
// tables in slide order.
func (s *PDFExportService) ExportOutlineToPDF(o deck.Outline) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)
	accent := pdfColor(o.Accent)

	s.addHeader(m, o, accent)
	for _, sec := range o.Sections {
		s.addSection(m, sec, accent)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *PDFExportService) addHeader(m core.Maroto, o deck.Outline, accent *props.Color) {
	m.AddRow(20,
		col.New(pdfGridColumns).Add(
			text.New(o.Title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  accent,
			}),
		),
	)
	for _, line := range o.Subtitle {
		m.AddRow(7,
			col.New(pdfGridColumns).Add(
				text.New(line, props.Text{
					Family: fontfamily.Arial,
					Size:   10,
					Align:  align.Center,
					Color:  pdfMutedColor,
				}),
			),
		)
	}
	m.AddRow(5)
}

func (s *PDFExportService) addSection(m core.Maroto, sec deck.Section, accent *props.Color) {
	m.AddRow(10,
		col.New(pdfGridColumns).Add(
			text.New(sec.Heading, props.Text{
				Family: fontfamily.Arial,
				Size:   13,
				Style:  fontstyle.Bold,
				Color:  accent,
			}),
		),
	)

	for _, block := range sec.Blocks {
		if block.Table != nil {
			s.addTable(m, *block.Table)
			continue
		}
		s.addParagraph(m, block.Paragraph)
	}
	m.AddRow(5)
}

func (s *PDFExportService) addParagraph(m core.Maroto, p deck.Paragraph) {
	content := p.Text()
	if content == "" {
		return
	}
	size, bold, color := paragraphStyle(p)
	size = math.Max(8, math.Min(12, size))

	span := pdfGridColumns
	var cols []core.Col
	if p.Level > 0 {
		span--
		cols = append(cols, col.New(1))
	}
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	cols = append(cols, col.New(span).Add(
		text.New(content, props.Text{
			Family: fontfamily.Arial,
			Size:   size,
			Style:  style,
			Color:  pdfColor(color),
		}),
	))
	m.AddRow(textHeight(content, size, span), cols...)
}

func (s *PDFExportService) addTable(m core.Maroto, t deck.Table) {
	if len(t.Rows) == 0 {
		return
	}
	spans := gridSpans(t.Columns, len(t.Rows[0]))

	for _, row := range t.Rows {
		var cols []core.Col
		height := 6.0
		for j, cell := range row {
			if j >= len(spans) {
				break
			}
			size, bold, color := paragraphStyle(deck.Paragraph{Runs: cell.Runs})
			size = math.Max(7, math.Min(10, size))
			style := fontstyle.Normal
			if bold {
				style = fontstyle.Bold
			}

			c := col.New(spans[j]).Add(
				text.New(cell.Text(), props.Text{
					Family: fontfamily.Arial,
					Size:   size,
					Style:  style,
					Left:   1,
					Top:    1,
					Color:  pdfColor(color),
				}),
			)
			if fill := pdfColor(cell.Fill); fill != nil {
				c = c.WithStyle(&props.Cell{BackgroundColor: fill})
			}
			cols = append(cols, c)
			height = math.Max(height, textHeight(cell.Text(), size, spans[j]))
		}
		m.AddRow(height, cols...)
	}
}

// gridSpans distributes the 12 grid columns in proportion to widths, or
// evenly when widths does not cover n columns. Every column gets at least
// one; the rest go by largest remainder.
func gridSpans(widths []float64, n int) []int {
	if n > pdfGridColumns {
		n = pdfGridColumns
	}
	if n <= 0 {
		return nil
	}

	var sum float64
	if len(widths) >= n {
		for _, w := range widths[:n] {
			sum += math.Max(0, w)
		}
	}
	spare := pdfGridColumns - n
	spans := make([]int, n)
	remainders := make([]float64, n)
	given := 0
	for i := range spans {
		share := 1 / float64(n)
		if sum > 0 {
			share = math.Max(0, widths[i]) / sum
		}
		extra := share * float64(spare)
		spans[i] = 1 + int(math.Floor(extra))
		remainders[i] = extra - math.Floor(extra)
		given += spans[i]
	}
	for ; given < pdfGridColumns; given++ {
		best := 0
		for i := range remainders {
			if remainders[i] > remainders[best] {
				best = i
			}
		}
		spans[best]++
		remainders[best] = -1
	}
	return spans
}

// textHeight estimates the wrapped height in mm of content at size points
// in a column spanning span grid columns.
func textHeight(content string, size float64, span int) float64 {
	width := pdfContentWidthMM * float64(span) / pdfGridColumns
	charWidth := size * mmPerPoint * 0.5
	perLine := math.Max(1, math.Floor(width/charWidth))
	lines := math.Ceil(float64(len([]rune(content))) / perLine)
	return math.Max(1, lines)*size*mmPerPoint*1.4 + 2
}

func pdfColor(c deck.Color) *props.Color {
	r, g, b, ok := rgb(c)
	if !ok {
		return nil
	}
	return &props.Color{Red: r, Green: g, Blue: b}
}
