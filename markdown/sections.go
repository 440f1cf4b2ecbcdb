// Package markdown extracts structure from AI-generated report narratives:
// level-2 sections, bullet items with bold titles, and inline bold runs.
package markdown

import "strings"

const headingPrefix = "## "

// Sections maps level-2 heading text to the trimmed body that follows it.
type Sections struct {
	order  []string
	bodies map[string]string
}

type sectionState int

const (
	noSection sectionState = iota
	inSection
)

// ParseSections splits text on lines starting with "## ". Lines before the
// first heading are discarded, as is a heading with no text and its body.
// Any input is accepted.
func ParseSections(text string) Sections {
	s := Sections{bodies: make(map[string]string)}

	state := noSection
	var heading string
	var body []string

	closeSection := func() {
		if state != inSection || heading == "" {
			return
		}
		if _, seen := s.bodies[heading]; !seen {
			s.order = append(s.order, heading)
		}
		s.bodies[heading] = strings.TrimSpace(strings.Join(body, "\n"))
	}

	for _, line := range splitLines(text) {
		if strings.HasPrefix(line, headingPrefix) {
			closeSection()
			heading = strings.TrimSpace(line[len(headingPrefix):])
			body = body[:0]
			state = inSection
			continue
		}
		if state == inSection {
			body = append(body, line)
		}
	}
	closeSection()

	return s
}

// Get returns the body of the section whose heading is exactly heading.
func (s Sections) Get(heading string) (string, bool) {
	body, ok := s.bodies[heading]
	return body, ok
}

// Find returns the body of the first section, in document order, whose
// heading contains any of the given substrings (case-insensitive).
func (s Sections) Find(substrings ...string) (string, bool) {
	for _, heading := range s.order {
		lower := strings.ToLower(heading)
		for _, sub := range substrings {
			if strings.Contains(lower, strings.ToLower(sub)) {
				return s.bodies[heading], true
			}
		}
	}
	return "", false
}

// Headings lists section headings in order of first appearance.
func (s Sections) Headings() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct sections.
func (s Sections) Len() int {
	return len(s.order)
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
