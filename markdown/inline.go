package markdown

import "strings"

// Segment is a styling run within a single line.
type Segment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold"`
}

// SegmentInline splits text into plain and bold runs. A bold run is
// "**...**" with at least one character and no '*' between the delimiters;
// the delimiters are dropped and empty runs are never emitted.
func SegmentInline(text string) []Segment {
	var segments []Segment
	plainStart := 0

	for i := 0; i+1 < len(text); {
		end, ok := boldSpanAt(text, i)
		if !ok {
			i++
			continue
		}
		if i > plainStart {
			segments = append(segments, Segment{Text: text[plainStart:i]})
		}
		segments = append(segments, Segment{Text: text[i+2 : end-2], Bold: true})
		i = end
		plainStart = end
	}
	if plainStart < len(text) {
		segments = append(segments, Segment{Text: text[plainStart:]})
	}
	return segments
}

// boldSpanAt returns the end offset of a bold span starting at i.
func boldSpanAt(text string, i int) (int, bool) {
	if !strings.HasPrefix(text[i:], "**") {
		return 0, false
	}
	j := i + 2
	for j < len(text) && text[j] != '*' {
		j++
	}
	if j == i+2 || !strings.HasPrefix(text[j:], "**") {
		return 0, false
	}
	return j + 2, true
}

// PlainText joins segment texts, dropping styling.
func PlainText(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
