package markdown

import "strings"

// BulletItem is a top-level list entry. Title holds the bold lead-in when the
// bullet has one, otherwise the whole bullet text.
type BulletItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SubItems    []string `json:"sub_items"`
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineBullet
	lineSubBullet
	lineText
)

var bulletMarkers = []string{"- ", "* ", "• "}

// separators accepted between a bold title and its description
var titleSeparators = []string{"-", "–", "—", ":"}

// classifyLine reports what a narrative line is. For bullet lines the second
// result is the text after the marker; for text lines it is the trimmed line.
func classifyLine(line string) (lineKind, string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return lineBlank, ""
	}
	for _, marker := range bulletMarkers {
		if !strings.HasPrefix(trimmed, marker) {
			continue
		}
		content := strings.TrimSpace(trimmed[len(marker):])
		if indentWidth(line) >= 2 {
			return lineSubBullet, content
		}
		return lineBullet, content
	}
	return lineText, trimmed
}

// indentWidth counts leading blanks, a tab counting as two.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 2
		default:
			return width
		}
	}
	return width
}

type itemState int

const (
	noItem itemState = iota
	inItem
)

// ParseBullets turns a markdown list into bullet items. Indented bullets
// become sub-items and plain lines extend the current description; lines
// that precede the first bullet are dropped.
func ParseBullets(text string) []BulletItem {
	var items []BulletItem
	var current BulletItem
	state := noItem

	for _, line := range splitLines(text) {
		kind, content := classifyLine(line)
		switch kind {
		case lineBlank:
			continue
		case lineBullet:
			if state == inItem {
				items = append(items, current)
			}
			current = newBulletItem(content)
			state = inItem
		case lineSubBullet:
			if state == inItem {
				current.SubItems = append(current.SubItems, content)
			}
		case lineText:
			if state != inItem {
				continue
			}
			if current.Description == "" {
				current.Description = content
			} else {
				current.Description += " " + content
			}
		}
	}
	if state == inItem {
		items = append(items, current)
	}
	return items
}

func newBulletItem(content string) BulletItem {
	item := BulletItem{SubItems: []string{}}
	if title, desc, ok := splitBoldTitle(content); ok {
		item.Title = title
		item.Description = desc
		return item
	}
	item.Title = content
	return item
}

// splitBoldTitle matches "**TITLE**[sep]REST" at the start of content. The
// title is the shortest non-empty run closed by "**" on the same line.
func splitBoldTitle(content string) (title, desc string, ok bool) {
	if !strings.HasPrefix(content, "**") {
		return "", "", false
	}
	body := content[2:]
	if len(body) < 3 {
		return "", "", false
	}
	end := strings.Index(body[1:], "**")
	if end < 0 {
		return "", "", false
	}
	end++

	rest := strings.TrimLeft(body[end+2:], " \t")
	for _, sep := range titleSeparators {
		if strings.HasPrefix(rest, sep) {
			rest = rest[len(sep):]
			break
		}
	}
	return strings.TrimSpace(body[:end]), strings.TrimSpace(rest), true
}
