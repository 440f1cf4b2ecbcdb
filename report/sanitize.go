package report

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
)

var (
	hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)
	htmlTagPattern  = regexp.MustCompile(`</?[A-Za-z][^>]*>`)
)

// Sanitize reduces the rich-text fields to plain text.
func (p *Payload) Sanitize() {
	p.ProjectDescription = HTMLToText(p.ProjectDescription)
	p.ExecutiveSummary = HTMLToText(p.ExecutiveSummary)
}

// RepairUTF8 returns raw unchanged when it is valid UTF-8. Otherwise every
// byte that does not start a valid UTF-8 sequence is decoded as
// Windows-1252 and valid sequences are kept.
func RepairUTF8(raw []byte) []byte {
	if utf8.Valid(raw) {
		return raw
	}
	dec := charmap.Windows1252.NewDecoder()
	out := make([]byte, 0, len(raw)+len(raw)/4)
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r != utf8.RuneError || size > 1 {
			out = append(out, raw[:size]...)
			raw = raw[size:]
			continue
		}
		decoded, err := dec.Bytes(raw[:1])
		if err != nil {
			decoded = []byte("\uFFFD")
		}
		out = append(out, decoded...)
		raw = raw[1:]
	}
	return out
}

// HTMLToText strips markup from editor output, keeping one line per block
// element and dropping blank lines. Text without tags is returned as is.
func HTMLToText(s string) string {
	if !htmlTagPattern.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return htmlTagPattern.ReplaceAllString(s, "")
	}

	var b strings.Builder
	writeText(doc.Find("body"), &b)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeText(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch goquery.NodeName(c) {
		case "#text":
			b.WriteString(c.Text())
		case "br":
			b.WriteString("\n")
		case "script", "style", "#comment":
		case "li":
			b.WriteString("\n- ")
			writeText(c, b)
			b.WriteString("\n")
		case "p", "div", "ul", "ol", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
			writeText(c, b)
			b.WriteString("\n")
		default:
			writeText(c, b)
		}
	})
}

// NormalizeHexColor returns color as "#RRGGBB", or fallback when color is
// not a six digit hex value.
func NormalizeHexColor(color, fallback string) string {
	color = strings.TrimSpace(color)
	if !hexColorPattern.MatchString(color) {
		return fallback
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(color, "#"))
}
