package export

import (
	"strconv"
	"strings"

	"statusdeck/deck"
)

// hexDigits returns c as "RRGGBB", or fallback when c is not a hex colour.
func hexDigits(c deck.Color, fallback string) string {
	hex := strings.ToUpper(strings.TrimPrefix(string(c), "#"))
	if len(hex) != 6 {
		return fallback
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return fallback
	}
	return hex
}

func rgb(c deck.Color) (r, g, b int, ok bool) {
	hex := hexDigits(c, "")
	if hex == "" {
		return 0, 0, 0, false
	}
	v, _ := strconv.ParseUint(hex, 16, 32)
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

// paragraphStyle summarises a paragraph's runs for formats that style a
// whole paragraph at once: bold when every run is bold, sized and coloured
// by the first run.
func paragraphStyle(p deck.Paragraph) (size float64, bold bool, color deck.Color) {
	if len(p.Runs) == 0 {
		return 0, false, ""
	}
	bold = true
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) != "" && !r.Font.Bold {
			bold = false
		}
	}
	return p.Runs[0].Font.Size, bold, p.Runs[0].Font.Color
}
