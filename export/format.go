// Package export writes a rendered status report to disk: the slide deck
// through GoPPT, and PDF, Word and Excel handouts built from the outline.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output file type.
type Format string

const (
	PPTX Format = "pptx"
	PDF  Format = "pdf"
	DOCX Format = "docx"
	XLSX Format = "xlsx"
)

// Formats lists the supported formats, deck first.
var Formats = []Format{PPTX, PDF, DOCX, XLSX}

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (want pptx, pdf, docx or xlsx)", s)
}

// FormatFor picks the explicit format when one is given, otherwise the
// output file's extension. Unknown extensions render a deck.
func FormatFor(path, explicit string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		return f, nil
	}
	return PPTX, nil
}

// IsHandout reports whether the format is rendered from the outline rather
// than from slides.
func (f Format) IsHandout() bool {
	return f != PPTX
}
