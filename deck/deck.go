// Package deck defines the drawing surface slide builders render onto.
//
// Coordinates are inches on a 13.333 x 7.5 canvas with the origin at the
// top-left corner. Backends map the canvas onto their own page size.
package deck

// Canvas size in inches.
const (
	SlideWidth  = 13.333
	SlideHeight = 7.5
)

// Point is a position on the canvas.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box on the canvas.
type Rect struct {
	X, Y, W, H float64
}

// Color is a "#RRGGBB" value. The empty Color means no fill.
type Color string

// ShapeKind selects the outline of a filled shape.
type ShapeKind int

const (
	Rectangle ShapeKind = iota
	RoundedRectangle
	Diamond
)

func (k ShapeKind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case RoundedRectangle:
		return "rounded-rectangle"
	case Diamond:
		return "diamond"
	}
	return "unknown"
}

// Align is the horizontal alignment of a paragraph.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font styles a run. Size is in points on the 13.333in canvas.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
	Color  Color
}

// Run is a span of text with one font.
type Run struct {
	Text string
	Font Font
}

// Paragraph is a line of runs. Level 1 marks a nested bullet.
type Paragraph struct {
	Runs  []Run
	Align Align
	Level int
}

// Text returns the concatenated run texts.
func (p Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// TextBoxOptions controls a text box's frame.
type TextBoxOptions struct {
	Fill           Color
	VerticalCenter bool
	// WordWrap is off for single-line labels that must not reflow.
	WordWrap bool
}

// Cell is one table cell.
type Cell struct {
	Runs []Run
	Fill Color
}

// Text returns the concatenated run texts.
func (c Cell) Text() string {
	var s string
	for _, r := range c.Runs {
		s += r.Text
	}
	return s
}

// Table is a grid of cells; Columns holds the column widths in inches and
// the first row is the header.
type Table struct {
	Columns   []float64
	Rows      [][]Cell
	RowHeight float64
}

// Slide receives drawing operations.
type Slide interface {
	AddShape(kind ShapeKind, r Rect, fill Color)
	AddTextBox(r Rect, paras []Paragraph, opts TextBoxOptions)
	AddTable(r Rect, t Table)
	// AddPicture places the image at path scaled to height, keeping its
	// aspect ratio.
	AddPicture(path string, at Point, height float64) error
}

// Backend creates slides and writes the finished document.
type Backend interface {
	NewSlide() Slide
	Save(path string) error
}
