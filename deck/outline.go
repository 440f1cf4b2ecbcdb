package deck

// Block is a paragraph or, when Table is set, a table.
type Block struct {
	Paragraph Paragraph
	Table     *Table
}

// Section is a headed group of blocks, one per slide.
type Section struct {
	Heading string
	Blocks  []Block
}

// Outline is the slide content without geometry, used by the handout
// exporters.
type Outline struct {
	Title    string
	Subtitle []string
	// Accent colours headings in the handouts.
	Accent   Color
	Sections []Section
}

// AddParagraph appends a paragraph block.
func (s *Section) AddParagraph(p Paragraph) {
	s.Blocks = append(s.Blocks, Block{Paragraph: p})
}

// AddTable appends a table block.
func (s *Section) AddTable(t Table) {
	s.Blocks = append(s.Blocks, Block{Table: &t})
}
