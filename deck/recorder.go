package deck

import "strings"

// ElementKind tells recorded elements apart.
type ElementKind int

const (
	ShapeElement ElementKind = iota
	TextBoxElement
	TableElement
	PictureElement
)

// Element is one recorded drawing operation.
type Element struct {
	Kind       ElementKind
	Shape      ShapeKind
	Rect       Rect
	Fill       Color
	Paragraphs []Paragraph
	Options    TextBoxOptions
	Table      Table
	Path       string
}

// RecordedSlide lists a slide's elements in drawing order.
type RecordedSlide struct {
	Elements []Element
	// PictureErr is returned by AddPicture; the picture is not recorded.
	PictureErr error
}

// Recorder is an in-memory Backend for tests.
type Recorder struct {
	Slides     []*RecordedSlide
	SavedPath  string
	PictureErr error
	SaveErr    error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewSlide() Slide {
	s := &RecordedSlide{PictureErr: r.PictureErr}
	r.Slides = append(r.Slides, s)
	return s
}

func (r *Recorder) Save(path string) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.SavedPath = path
	return nil
}

func (s *RecordedSlide) AddShape(kind ShapeKind, rect Rect, fill Color) {
	s.Elements = append(s.Elements, Element{Kind: ShapeElement, Shape: kind, Rect: rect, Fill: fill})
}

func (s *RecordedSlide) AddTextBox(rect Rect, paras []Paragraph, opts TextBoxOptions) {
	s.Elements = append(s.Elements, Element{Kind: TextBoxElement, Rect: rect, Paragraphs: paras, Options: opts, Fill: opts.Fill})
}

func (s *RecordedSlide) AddTable(rect Rect, t Table) {
	s.Elements = append(s.Elements, Element{Kind: TableElement, Rect: rect, Table: t})
}

func (s *RecordedSlide) AddPicture(path string, at Point, height float64) error {
	if s.PictureErr != nil {
		return s.PictureErr
	}
	s.Elements = append(s.Elements, Element{Kind: PictureElement, Path: path, Rect: Rect{X: at.X, Y: at.Y, H: height}})
	return nil
}

// Texts returns every paragraph and table cell text on the slide.
func (s *RecordedSlide) Texts() []string {
	var out []string
	for _, e := range s.Elements {
		switch e.Kind {
		case TextBoxElement:
			for _, p := range e.Paragraphs {
				out = append(out, p.Text())
			}
		case TableElement:
			for _, row := range e.Table.Rows {
				for _, c := range row {
					out = append(out, c.Text())
				}
			}
		}
	}
	return out
}

// Contains reports whether any text on the slide contains sub.
func (s *RecordedSlide) Contains(sub string) bool {
	for _, t := range s.Texts() {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// Filter returns the elements of the given kind.
func (s *RecordedSlide) Filter(kind ElementKind) []Element {
	var out []Element
	for _, e := range s.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
