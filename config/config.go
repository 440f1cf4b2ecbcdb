package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"statusdeck/timeline"
)

// Text colours used across slides.
const (
	DefaultFontFamily = "Avenir Next LT Pro"
	DefaultTextColor  = "#333333"
	DefaultMutedColor = "#666666"
	DefaultDimColor   = "#888888"
	DefaultSubColor   = "#444444"
	DefaultNoteColor  = "#555555"
)

// FootnoteHeight is reserved above ContentBottom for the timeline footnote.
const FootnoteHeight = 0.25

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Theme holds the visual settings of a deck. Brand colours come from the
// payload; PrimaryColor and SecondaryColor here only replace the built-in
// defaults when the payload has none.
type Theme struct {
	FontFamily     string `yaml:"font_family"`
	PrimaryColor   string `yaml:"primary_color"`
	SecondaryColor string `yaml:"secondary_color"`
	TextColor      string `yaml:"text_color"`
	MutedColor     string `yaml:"muted_color"`
	DimColor       string `yaml:"dim_color"`
	SubItemColor   string `yaml:"sub_item_color"`
	NoteColor      string `yaml:"note_color"`

	SlideWidth  float64 `yaml:"slide_width"`
	SlideHeight float64 `yaml:"slide_height"`
	// ContentBottom is the lowest edge slide content may reach.
	ContentBottom float64 `yaml:"content_bottom"`

	MaxFallbackRows int               `yaml:"max_fallback_rows"`
	Gantt           timeline.Geometry `yaml:"gantt"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		FontFamily:      DefaultFontFamily,
		PrimaryColor:    "#810FFB",
		SecondaryColor:  "#E60CB3",
		TextColor:       DefaultTextColor,
		MutedColor:      DefaultMutedColor,
		DimColor:        DefaultDimColor,
		SubItemColor:    DefaultSubColor,
		NoteColor:       DefaultNoteColor,
		SlideWidth:      13.333,
		SlideHeight:     7.5,
		ContentBottom:   7.2,
		MaxFallbackRows: timeline.MaxFallbackRows,
		Gantt:           timeline.DefaultGeometry(),
	}
}

// LoadTheme overlays the YAML file at path onto DefaultTheme. An empty path
// returns the defaults.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return theme, nil
}

// Validate checks colours, sizes and that the Gantt chart fits the slide.
func (t Theme) Validate() error {
	if t.FontFamily == "" {
		return fmt.Errorf("font_family must not be empty")
	}
	colors := map[string]string{
		"primary_color":   t.PrimaryColor,
		"secondary_color": t.SecondaryColor,
		"text_color":      t.TextColor,
		"muted_color":     t.MutedColor,
		"dim_color":       t.DimColor,
		"sub_item_color":  t.SubItemColor,
		"note_color":      t.NoteColor,
	}
	for name, c := range colors {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("%s: %q is not a #RRGGBB colour", name, c)
		}
	}
	if !hexColor.MatchString(t.Gantt.NeutralColor) {
		return fmt.Errorf("gantt.neutral_color: %q is not a #RRGGBB colour", t.Gantt.NeutralColor)
	}
	for i, c := range t.Gantt.Palette {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("gantt.palette[%d]: %q is not a #RRGGBB colour", i, c)
		}
	}
	if len(t.Gantt.Palette) == 0 {
		return fmt.Errorf("gantt.palette must not be empty")
	}
	for status, c := range t.Gantt.StatusColors {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("gantt.status_colors[%s]: %q is not a #RRGGBB colour", status, c)
		}
	}

	if t.SlideWidth <= 0 || t.SlideHeight <= 0 {
		return fmt.Errorf("slide size must be positive, got %vx%v", t.SlideWidth, t.SlideHeight)
	}
	if t.ContentBottom <= 0 || t.ContentBottom > t.SlideHeight {
		return fmt.Errorf("content_bottom %v outside the slide", t.ContentBottom)
	}
	if t.MaxFallbackRows <= 0 {
		return fmt.Errorf("max_fallback_rows must be positive, got %d", t.MaxFallbackRows)
	}

	g := t.Gantt
	for name, v := range map[string]float64{
		"chart_width":          g.ChartWidth,
		"label_width":          g.LabelWidth,
		"axis_height":          g.AxisHeight,
		"epic_row_height":      g.EpicRowHeight,
		"stage_row_height":     g.StageRowHeight,
		"milestone_row_height": g.MilestoneRowHeight,
		"bar_height":           g.BarHeight,
		"marker_size":          g.MarkerSize,
	} {
		if v <= 0 {
			return fmt.Errorf("gantt.%s must be positive, got %v", name, v)
		}
	}
	if g.BarHeight > g.StageRowHeight {
		return fmt.Errorf("gantt.bar_height %v exceeds stage_row_height %v", g.BarHeight, g.StageRowHeight)
	}
	if g.MarkerSize > g.MilestoneRowHeight {
		return fmt.Errorf("gantt.marker_size %v exceeds milestone_row_height %v", g.MarkerSize, g.MilestoneRowHeight)
	}
	if g.ChartLeft < g.LabelLeft+g.LabelWidth {
		return fmt.Errorf("gantt.chart_left %v overlaps the label column", g.ChartLeft)
	}
	if g.ChartLeft+g.ChartWidth > t.SlideWidth {
		return fmt.Errorf("gantt chart ends at %v, past the slide width %v", g.ChartLeft+g.ChartWidth, t.SlideWidth)
	}
	if rowsTop, limit := g.Top+g.AxisHeight, t.ContentBottom-FootnoteHeight; limit <= rowsTop {
		return fmt.Errorf("gantt rows start at %v, leaving no room above the footnote at %v", rowsTop, limit)
	}
	return nil
}
