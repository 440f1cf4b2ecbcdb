package export

import (
	"fmt"

	"statusdeck/deck"
)

// RenderHandout serialises the outline in a handout format.
func RenderHandout(f Format, o deck.Outline, creator string) ([]byte, error) {
	switch f {
	case PDF:
		return NewPDFExportService().ExportOutlineToPDF(o)
	case DOCX:
		return NewWordExportService(creator).ExportOutlineToWord(o)
	case XLSX:
		return NewGoExcelExportService(creator).ExportOutlineToExcel(o)
	}
	return nil, fmt.Errorf("%s is not a handout format", f)
}

// WriteHandout renders the outline and writes it to path.
func WriteHandout(f Format, o deck.Outline, path, creator string) error {
	data, err := RenderHandout(f, o, creator)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}
