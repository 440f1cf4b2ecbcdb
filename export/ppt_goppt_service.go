package export

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"statusdeck/deck"
)

// GoPPT slides are 16:9 at 10 x 5.625in, the deck canvas is 13.333 x 7.5in.
const (
	emuPerInch = 914400

	gopptSlideWidth = 10.0
	gopptScale      = gopptSlideWidth / deck.SlideWidth

	pointsPerInch    = 72
	minFontSize      = 6
	defaultTextColor = "FF333333"
)

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

// emu converts canvas inches to slide EMUs.
func emu(inches float64) int64 {
	return int64(math.Round(inches * gopptScale * emuPerInch))
}

// fontSize converts a canvas point size to the scaled slide.
func fontSize(pt float64) int {
	size := int(math.Round(pt * gopptScale))
	if size < minFontSize {
		return minFontSize
	}
	return size
}

// argb turns "#RRGGBB" into the "FFRRGGBB" form GoPPT expects.
func argb(c deck.Color) (string, bool) {
	hex := strings.ToUpper(strings.TrimPrefix(string(c), "#"))
	if len(hex) != 6 {
		return "", false
	}
	return "FF" + hex, true
}

// GoPPTBackend renders slides into a GoPPT presentation.
type GoPPTBackend struct {
	pres   *ppt.Presentation
	slides int
}

// NewGoPPTBackend creates an empty presentation with document properties.
func NewGoPPTBackend(title, creator string) *GoPPTBackend {
	p := ppt.New()
	p.GetDocumentProperties().Title = title
	p.GetDocumentProperties().Creator = creator
	return &GoPPTBackend{pres: p}
}

// SetTitle updates the document title, known only after the deck is built.
func (b *GoPPTBackend) SetTitle(title string) {
	b.pres.GetDocumentProperties().Title = title
}

// NewSlide reuses the presentation's initial slide for the first call.
func (b *GoPPTBackend) NewSlide() deck.Slide {
	var s *ppt.Slide
	if b.slides == 0 {
		s = b.pres.GetActiveSlide()
	} else {
		s = b.pres.CreateSlide()
	}
	b.slides++
	return &gopptSlide{slide: s}
}

// Bytes serialises the presentation as .pptx.
func (b *GoPPTBackend) Bytes() ([]byte, error) {
	w, err := ppt.NewWriter(b.pres, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the presentation to path.
func (b *GoPPTBackend) Save(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

type gopptSlide struct {
	slide *ppt.Slide
}

func (s *gopptSlide) place(shape *ppt.RichTextShape, r deck.Rect) {
	shape.SetOffsetX(emu(r.X)).SetOffsetY(emu(r.Y))
	shape.SetWidth(emu(r.W)).SetHeight(emu(r.H))
}

// AddShape draws a filled box. GoPPT has no preset geometries, so rounded
// bars are square-cornered and diamonds are drawn as a glyph.
func (s *gopptSlide) AddShape(kind deck.ShapeKind, r deck.Rect, fill deck.Color) {
	color, ok := argb(fill)
	if !ok {
		return
	}
	shape := s.slide.CreateRichTextShape()
	s.place(shape, r)

	if kind == deck.Diamond {
		tr := shape.CreateTextRun("◆")
		tr.GetFont().SetSize(fontSize(r.H * pointsPerInch)).SetColor(ppt.NewColor(color))
		alignCenter(shape.GetActiveParagraph())
		return
	}
	shape.SetFill(solidFill(color))
}

func (s *gopptSlide) AddTextBox(r deck.Rect, paras []deck.Paragraph, opts deck.TextBoxOptions) {
	shape := s.slide.CreateRichTextShape()
	s.place(shape, r)
	if color, ok := argb(opts.Fill); ok {
		shape.SetFill(solidFill(color))
	}
	writeParagraphs(shape, paras)
}

func writeParagraphs(shape *ppt.RichTextShape, paras []deck.Paragraph) {
	for i, para := range paras {
		if i > 0 {
			shape.CreateParagraph()
		}
		for _, run := range para.Runs {
			if run.Text == "" {
				continue
			}
			color, ok := argb(run.Font.Color)
			if !ok {
				color = defaultTextColor
			}
			tr := shape.CreateTextRun(run.Text)
			tr.GetFont().SetSize(fontSize(run.Font.Size)).SetBold(run.Font.Bold).SetColor(ppt.NewColor(color))
		}
		switch para.Align {
		case deck.AlignCenter:
			alignCenter(shape.GetActiveParagraph())
		case deck.AlignRight:
			alignRight(shape.GetActiveParagraph())
		}
	}
}

// AddTable draws each cell as its own text shape. Column widths are scaled
// to fill r.
func (s *gopptSlide) AddTable(r deck.Rect, t deck.Table) {
	widths := columnWidths(t, r.W)
	rowHeight := t.RowHeight
	if rowHeight <= 0 && len(t.Rows) > 0 {
		rowHeight = r.H / float64(len(t.Rows))
	}

	for i, row := range t.Rows {
		x := r.X
		y := r.Y + float64(i)*rowHeight
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			fill := cell.Fill
			if fill == "" && i%2 == 1 {
				fill = "#F8FAFC"
			}
			s.AddTextBox(deck.Rect{X: x, Y: y, W: widths[j], H: rowHeight},
				[]deck.Paragraph{{Runs: cell.Runs}}, deck.TextBoxOptions{Fill: fill})
			x += widths[j]
		}
	}
}

func columnWidths(t deck.Table, total float64) []float64 {
	n := len(t.Columns)
	if n == 0 && len(t.Rows) > 0 {
		n = len(t.Rows[0])
	}
	if n == 0 {
		return nil
	}

	var sum float64
	if len(t.Columns) >= n {
		for _, w := range t.Columns[:n] {
			sum += w
		}
	}
	widths := make([]float64, n)
	for i := range widths {
		if sum > 0 {
			widths[i] = total * t.Columns[i] / sum
		} else {
			widths[i] = total / float64(n)
		}
	}
	return widths
}

// AddPicture embeds the image at path with its aspect ratio preserved.
func (s *gopptSlide) AddPicture(path string, at deck.Point, height float64) error {
	img, err := loadImage(path)
	if err != nil {
		return err
	}
	width := height * img.aspect()

	shape := s.slide.CreateDrawingShape()
	shape.SetImageData(img.data, img.mime)
	shape.SetOffsetX(emu(at.X)).SetOffsetY(emu(at.Y))
	shape.SetWidth(emu(width)).SetHeight(emu(height))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
