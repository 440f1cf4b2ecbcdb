package export

import (
	"bytes"
	"fmt"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"statusdeck/deck"
)

const (
	maxSheetNameLen = 31
	excelFont       = "Calibri"
	minColumnWidth  = 12.0
	maxColumnWidth  = 60.0
)

var sheetNameReplacer = strings.NewReplacer(
	"[", "(", "]", ")", ":", "-", "*", "", "?", "", "/", "-", "\\", "-",
)

// GoExcelExportService writes the outline as a workbook using GoExcel.
type GoExcelExportService struct {
	Creator string
}

// NewGoExcelExportService creates a new GoExcel export service
func NewGoExcelExportService(creator string) *GoExcelExportService {
	return &GoExcelExportService{Creator: creator}
}

// ExportOutlineToExcel writes one sheet per section. Tables keep their
// header row styled and frozen; paragraphs go one per row in column A.
func (s *GoExcelExportService) ExportOutlineToExcel(o deck.Outline) ([]byte, error) {
	if len(o.Sections) == 0 {
		return nil, fmt.Errorf("no sections to export")
	}
	accent := hexDigits(o.Accent, "4472C4")

	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  excelFont,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: accent,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: excelFont,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	textStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: excelFont,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		})

	used := make(map[string]bool)
	for i, sec := range o.Sections {
		name := uniqueSheetName(sec.Heading, i, used)

		var ws *gospreadsheet.Worksheet
		if i == 0 {
			ws = wb.GetActiveSheet()
			ws.SetTitle(name)
		} else {
			var err error
			ws, err = wb.AddSheet(name)
			if err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
			}
		}

		row := 0
		widths := map[int]float64{0: minColumnWidth}
		for _, block := range sec.Blocks {
			if block.Table == nil {
				content := block.Paragraph.Text()
				if strings.TrimSpace(content) == "" {
					continue
				}
				cellName, _ := gospreadsheet.CellName(row, 0)
				ws.SetCellValue(cellName, strings.TrimSpace(content))
				ws.SetCellStyle(cellName, textStyle)
				widths[0] = maxColumnWidth
				row++
				continue
			}

			if row == 0 {
				ws.FreezePane("A2")
			}
			for r, cells := range block.Table.Rows {
				for c, cell := range cells {
					cellName, _ := gospreadsheet.CellName(row, c)
					ws.SetCellValue(cellName, cell.Text())
					if r == 0 {
						ws.SetCellStyle(cellName, headerStyle)
					} else {
						ws.SetCellStyle(cellName, dataStyle)
					}
					widths[c] = columnWidth(widths[c], cell.Text())
				}
				if r == 0 {
					ws.SetRowHeight(row, 25)
				} else {
					ws.SetRowHeight(row, 20)
				}
				row++
			}
			// Blank row between consecutive blocks.
			row++
		}

		for c, w := range widths {
			ws.SetColumnWidth(c, w)
		}
	}

	wb.Properties.Title = o.Title
	wb.Properties.Creator = s.Creator
	wb.Properties.Subject = strings.Join(o.Subtitle, " | ")
	wb.Properties.LastModifiedBy = s.Creator

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidth grows the current width to fit content, within bounds.
func columnWidth(current float64, content string) float64 {
	w := float64(len([]rune(content))) * 1.2
	if w < current {
		w = current
	}
	if w < minColumnWidth {
		w = minColumnWidth
	}
	if w > maxColumnWidth {
		w = maxColumnWidth
	}
	return w
}

// uniqueSheetName makes a heading a valid, unused Excel sheet name.
func uniqueSheetName(heading string, index int, used map[string]bool) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(heading))
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if r := []rune(name); len(r) > maxSheetNameLen {
		name = string(r[:maxSheetNameLen])
	}
	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(base)
		if len(r)+len(suffix) > maxSheetNameLen {
			r = r[:maxSheetNameLen-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}
