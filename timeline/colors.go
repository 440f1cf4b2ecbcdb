package timeline

import "strings"

// Milestone and stage status values.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusNotStarted = "not-started"
)

// Status colours.
const (
	ColorCompleted  = "#22C55E"
	ColorInProgress = "#3B82F6"
	ColorNotStarted = "#9CA3AF"
)

// DefaultPalette colours stage bars in draw order.
var DefaultPalette = []string{
	"#810FFB",
	"#E60CB3",
	"#3B82F6",
	"#14B8A6",
	"#F59E0B",
	"#6366F1",
	"#EF4444",
	"#22C55E",
}

// StatusColors maps a normalised status to a colour.
type StatusColors map[string]string

// DefaultStatusColors returns the fixed completed/in-progress/not-started colours.
func DefaultStatusColors() StatusColors {
	return StatusColors{
		StatusCompleted:  ColorCompleted,
		StatusInProgress: ColorInProgress,
		StatusNotStarted: ColorNotStarted,
	}
}

// Lookup returns the colour for status. Unrecognised statuses report false
// so the caller keeps its default styling.
func (c StatusColors) Lookup(status string) (string, bool) {
	color, ok := c[NormalizeStatus(status)]
	return color, ok
}

// NormalizeStatus lower-cases status and accepts "in_progress" style values.
func NormalizeStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	return strings.ReplaceAll(s, "_", "-")
}

// StatusColor looks status up in the default status colours.
func StatusColor(status string) (string, bool) {
	return DefaultStatusColors().Lookup(status)
}

// PaletteColor cycles through palette by draw index.
func PaletteColor(palette []string, index int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	if index < 0 {
		index = -index
	}
	return palette[index%len(palette)]
}
