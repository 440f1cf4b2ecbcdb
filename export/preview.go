package export

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlidePreview is the text content of one slide. Title is the first
// non-blank paragraph.
type SlidePreview struct {
	Title string   `json:"title"`
	Texts []string `json:"texts,omitempty"`
}

// PreviewDeck reads a .pptx file and returns the paragraphs of every slide.
func PreviewDeck(path string) ([]SlidePreview, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPT file: %w", err)
	}

	slides := pres.GetAllSlides()
	if len(slides) == 0 {
		return nil, fmt.Errorf("PPT file has no slides")
	}

	previews := make([]SlidePreview, 0, len(slides))
	for _, slide := range slides {
		var sp SlidePreview
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			for _, para := range rts.GetParagraphs() {
				var text string
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text += run.GetText()
					}
				}
				text = strings.TrimSpace(text)
				if text == "" {
					continue
				}
				if sp.Title == "" {
					sp.Title = text
				} else {
					sp.Texts = append(sp.Texts, text)
				}
			}
		}
		previews = append(previews, sp)
	}
	return previews, nil
}
