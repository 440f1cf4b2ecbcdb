package markdown

// LineKind tells a renderer how to lead a narrative paragraph.
type LineKind int

const (
	// Plain is an ordinary paragraph.
	Plain LineKind = iota
	// Bullet is a top-level list entry, drawn with a bullet glyph.
	Bullet
	// SubBullet is an indented list entry, drawn one level deeper.
	SubBullet
)

// Line is one non-blank narrative line split into styling runs.
type Line struct {
	Kind     LineKind  `json:"kind"`
	Segments []Segment `json:"segments"`
}

// ParseLines prepares free-form narrative for paragraph-by-paragraph
// rendering. Blank lines are skipped; bullet markers are removed and
// reported through Kind.
func ParseLines(text string) []Line {
	var lines []Line
	for _, raw := range splitLines(text) {
		kind, content := classifyLine(raw)
		var lk LineKind
		switch kind {
		case lineBlank:
			continue
		case lineBullet:
			lk = Bullet
		case lineSubBullet:
			lk = SubBullet
		default:
			lk = Plain
		}
		lines = append(lines, Line{Kind: lk, Segments: SegmentInline(content)})
	}
	return lines
}
