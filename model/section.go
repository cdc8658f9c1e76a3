package model

// SectionBreak represents how a section starts relative to the previous
// one.
type SectionBreak int

const (
	SectionBreakNextPage SectionBreak = iota
	SectionBreakContinuous
	SectionBreakEvenPage
	SectionBreakOddPage
)

func (b SectionBreak) String() string {
	switch b {
	case SectionBreakContinuous:
		return "continuous"
	case SectionBreakEvenPage:
		return "evenPage"
	case SectionBreakOddPage:
		return "oddPage"
	default:
		return "nextPage"
	}
}

// BlockKind discriminates the Block variant.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockTable
)

// Block is a tagged variant: a top-level paragraph or table inside a
// section. Exactly one of Paragraph and Table is non-nil, matching Kind.
type Block struct {
	Kind      BlockKind
	Paragraph *Paragraph
	Table     *Table
}

// ParagraphBlock wraps a paragraph as a block.
func ParagraphBlock(p *Paragraph) Block {
	return Block{Kind: BlockParagraph, Paragraph: p}
}

// TableBlock wraps a table as a block.
func TableBlock(t *Table) Block {
	return Block{Kind: BlockTable, Table: t}
}

// PlainText returns the text content of the block.
func (b Block) PlainText() string {
	switch b.Kind {
	case BlockParagraph:
		return b.Paragraph.PlainText()
	case BlockTable:
		return b.Table.PlainText()
	}
	return ""
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	switch b.Kind {
	case BlockParagraph:
		return ParagraphBlock(b.Paragraph.Clone())
	case BlockTable:
		return TableBlock(b.Table.Clone())
	}
	return Block{}
}

// Section owns an ordered list of blocks plus page layout and
// header/footer sets.
type Section struct {
	Blocks     []Block
	Properties SectionProperties
	Headers    HeaderFooterSet
	Footers    HeaderFooterSet
}

// NewSection creates an empty section with default page properties.
func NewSection() *Section {
	return &Section{Properties: DefaultSectionProperties()}
}

// AddParagraph appends a paragraph block and returns the paragraph.
func (s *Section) AddParagraph(p *Paragraph) *Paragraph {
	s.Blocks = append(s.Blocks, ParagraphBlock(p))
	return p
}

// AddTable appends a table block and returns the table.
func (s *Section) AddTable(t *Table) *Table {
	s.Blocks = append(s.Blocks, TableBlock(t))
	return t
}

// Paragraphs returns the section's paragraphs in document order:
// top-level paragraphs where they occur, and table-cell paragraphs
// row-major, cell-major, block-order.
func (s *Section) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range s.Blocks {
		switch b.Kind {
		case BlockParagraph:
			out = append(out, b.Paragraph)
		case BlockTable:
			out = append(out, b.Table.Paragraphs()...)
		}
	}
	return out
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	if s == nil {
		return nil
	}
	cp := &Section{
		Properties: s.Properties,
		Headers:    s.Headers.Clone(),
		Footers:    s.Footers.Clone(),
	}
	for _, b := range s.Blocks {
		cp.Blocks = append(cp.Blocks, b.Clone())
	}
	return cp
}

// SectionProperties holds page layout for a section. Lengths are twips.
type SectionProperties struct {
	PageWidth  int
	PageHeight int

	MarginTop    int
	MarginBottom int
	MarginLeft   int
	MarginRight  int

	HeaderDistance int
	FooterDistance int

	Landscape bool
	Break     SectionBreak

	// TitlePage enables a different first-page header/footer.
	TitlePage bool
	// EvenAndOddHeaders enables different even/odd headers/footers.
	EvenAndOddHeaders bool
}

// DefaultSectionProperties returns US Letter portrait with one-inch
// margins.
func DefaultSectionProperties() SectionProperties {
	return SectionProperties{
		PageWidth:      12240,
		PageHeight:     15840,
		MarginTop:      1440,
		MarginBottom:   1440,
		MarginLeft:     1440,
		MarginRight:    1440,
		HeaderDistance: 720,
		FooterDistance: 720,
	}
}

// HeaderFooterSet holds the up-to-three headers (or footers) a section
// can carry. Nil entries are absent.
type HeaderFooterSet struct {
	Default *HeaderFooter
	First   *HeaderFooter
	Even    *HeaderFooter
}

// Clone returns a deep copy of the set.
func (h HeaderFooterSet) Clone() HeaderFooterSet {
	return HeaderFooterSet{
		Default: h.Default.Clone(),
		First:   h.First.Clone(),
		Even:    h.Even.Clone(),
	}
}

// HeaderFooter is a list of blocks rendered in a page margin area.
type HeaderFooter struct {
	Blocks []Block
}

// Clone returns a deep copy.
func (h *HeaderFooter) Clone() *HeaderFooter {
	if h == nil {
		return nil
	}
	cp := &HeaderFooter{}
	for _, b := range h.Blocks {
		cp.Blocks = append(cp.Blocks, b.Clone())
	}
	return cp
}
