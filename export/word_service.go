package export

import (
	"fmt"
	"math"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"statusdeck/deck"
)

const (
	wordTableWidth = 9000 // twips
	wordIndent     = 360
	wordTextColor  = "333333"
	wordMutedColor = "64748B"
	wordBorder     = "D9D9D9"
)

// WordExportService renders the outline as a Word handout using GoWord.
type WordExportService struct {
	Creator string
}

// NewWordExportService creates a new Word export service
func NewWordExportService(creator string) *WordExportService {
	return &WordExportService{Creator: creator}
}

// ExportOutlineToWord writes the title block, then one heading per section
// followed by its paragraphs and tables.
func (s *WordExportService) ExportOutlineToWord(o deck.Outline) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = o.Title
	doc.Properties.Creator = s.Creator

	accent := hexDigits(o.Accent, "1E40AF")
	sec := doc.AddSection()

	sec.AddTitle(o.Title, 1)
	for _, line := range o.Subtitle {
		sec.AddText(line,
			&style.FontStyle{Size: 11, Color: wordMutedColor},
			&style.ParagraphStyle{Alignment: style.AlignCenter})
	}
	sec.AddTextBreak(1)

	addParagraph := func(p deck.Paragraph) {
		content := p.Text()
		if content == "" {
			return
		}
		var ps *style.ParagraphStyle
		if p.Level > 0 {
			ps = &style.ParagraphStyle{Indent: wordIndent}
		}
		sec.AddText(content, wordFont(paragraphStyle(p)), ps)
	}

	addTable := func(t deck.Table) {
		if len(t.Rows) == 0 {
			return
		}
		widths := twipWidths(t.Columns, len(t.Rows[0]))

		ts := &style.TableStyle{Width: wordTableWidth, Alignment: "center"}
		ts.SetAllBorders("single", 4, wordBorder)
		tbl := sec.AddTable(ts)
		tbl.Grid = widths

		for i, row := range t.Rows {
			var rs *style.RowStyle
			if i == 0 {
				rs = &style.RowStyle{IsHeader: true}
			}
			r := tbl.AddRow(0, rs)
			for j, cell := range row {
				if j >= len(widths) {
					break
				}
				var cs *style.CellStyle
				if cell.Fill != "" {
					cs = &style.CellStyle{Shading: &style.Shading{Fill: hexDigits(cell.Fill, "FFFFFF")}}
				}
				fs := wordFont(paragraphStyle(deck.Paragraph{Runs: cell.Runs}))
				fs.Size = 9
				r.AddCell(widths[j], cs).AddText(cell.Text(), fs, nil)
			}
		}
	}

	for _, section := range o.Sections {
		sec.AddText(section.Heading,
			&style.FontStyle{Bold: true, Size: 14, Color: accent},
			nil)

		for _, block := range section.Blocks {
			if block.Table != nil {
				addTable(*block.Table)
				continue
			}
			addParagraph(block.Paragraph)
		}
		sec.AddTextBreak(1)
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

// wordFont buckets slide font sizes into the three body sizes of the handout.
func wordFont(size float64, bold bool, color deck.Color) *style.FontStyle {
	fs := &style.FontStyle{Size: 11, Bold: bold, Color: hexDigits(color, wordTextColor)}
	switch {
	case size > 0 && size < 9:
		fs.Size = 8
	case size > 0 && size < 11:
		fs.Size = 10
	}
	return fs
}

// twipWidths splits the table width in proportion to the column widths.
func twipWidths(columns []float64, n int) []int {
	if n == 0 {
		return nil
	}
	var sum float64
	if len(columns) >= n {
		for _, w := range columns[:n] {
			sum += w
		}
	}
	widths := make([]int, n)
	for i := range widths {
		share := 1 / float64(n)
		if sum > 0 {
			share = columns[i] / sum
		}
		widths[i] = int(math.Round(share * wordTableWidth))
	}
	return widths
}
