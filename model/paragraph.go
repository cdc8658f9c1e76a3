package model

import (
	"regexp"
	"strings"
)

// Redline colors used by the formatting constructors. These are the
// documented defaults; callers overriding styles supply their own values.
const (
	DeletionColor  = "FF0000"
	InsertionColor = "0000FF"
	MoveColor      = "008000"
)

// Alignment represents horizontal paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// LineRule represents how the line-spacing value is interpreted.
type LineRule int

const (
	LineRuleAuto LineRule = iota
	LineRuleExact
	LineRuleAtLeast
)

// Paragraph is an ordered list of runs plus paragraph-level properties.
type Paragraph struct {
	// ID is an optional stable identifier assigned by the parser.
	ID string

	Runs  []*Run
	Style ParagraphStyle

	// Numbering is nil for unnumbered paragraphs.
	Numbering *NumberingInfo

	BookmarkStarts []string
	BookmarkEnds   []string
}

// NewParagraph creates an empty paragraph with default style.
func NewParagraph() *Paragraph {
	return &Paragraph{Style: DefaultParagraphStyle()}
}

// AddRun appends a run with the given text and formatting.
func (p *Paragraph) AddRun(text string, f RunFormatting) *Run {
	r := &Run{Text: text, Formatting: f}
	p.Runs = append(p.Runs, r)
	return r
}

// PlainText returns the concatenation of run texts in order.
func (p *Paragraph) PlainText() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizedText returns PlainText trimmed with all whitespace runs
// collapsed to single spaces.
func (p *Paragraph) NormalizedText() string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(p.PlainText()), " ")
}

// Clone returns a deep copy of the paragraph.
func (p *Paragraph) Clone() *Paragraph {
	if p == nil {
		return nil
	}
	cp := &Paragraph{
		ID:    p.ID,
		Style: p.Style.Clone(),
	}
	for _, r := range p.Runs {
		cp.Runs = append(cp.Runs, r.Clone())
	}
	if p.Numbering != nil {
		n := *p.Numbering
		cp.Numbering = &n
	}
	cp.BookmarkStarts = append([]string(nil), p.BookmarkStarts...)
	cp.BookmarkEnds = append([]string(nil), p.BookmarkEnds...)
	return cp
}

// Run is a span of text sharing one formatting record. Leading and
// trailing spaces are significant and survive serialization.
type Run struct {
	Text       string
	Formatting RunFormatting
}

// Clone returns a deep copy of the run.
func (r *Run) Clone() *Run {
	if r == nil {
		return nil
	}
	return &Run{Text: r.Text, Formatting: r.Formatting}
}

// RunFormatting holds character-level formatting. The zero value means
// "no explicit formatting" (everything inherited).
type RunFormatting struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Superscript   bool
	Subscript     bool

	FontFamily string
	FontSize   float64 // points, 0 = unset
	Color      string  // RRGGBB, "" = unset
	Highlight  string  // highlight color name, "" = unset
	StyleID    string  // inherited character style, "" = unset
}

// ForDeletion returns a copy of base (or an empty record when base is
// nil) marked as deleted text: strikethrough in red.
func ForDeletion(base *RunFormatting) RunFormatting {
	f := cloneBase(base)
	f.Strikethrough = true
	f.Color = DeletionColor
	return f
}

// ForInsertion returns a copy of base (or an empty record when base is
// nil) marked as inserted text: bold in blue.
func ForInsertion(base *RunFormatting) RunFormatting {
	f := cloneBase(base)
	f.Bold = true
	f.Color = InsertionColor
	return f
}

// ForMove returns a copy of base (or an empty record when base is nil)
// marked as moved text: green, struck through at the move source.
func ForMove(base *RunFormatting, isSource bool) RunFormatting {
	f := cloneBase(base)
	f.Color = MoveColor
	if isSource {
		f.Strikethrough = true
	}
	return f
}

func cloneBase(base *RunFormatting) RunFormatting {
	if base == nil {
		return RunFormatting{}
	}
	return *base
}

// NumberingInfo links a paragraph to a numbering instance.
type NumberingInfo struct {
	InstanceID int
	Level      int // 0..8
}

// ParagraphStyle holds paragraph-level layout properties.
type ParagraphStyle struct {
	StyleID      string
	HeadingLevel int // 1..9, 0 = not a heading
	Alignment    Alignment

	// Indents in twips. A negative first-line indent encodes a
	// hanging indent.
	IndentLeft      int
	IndentRight     int
	IndentFirstLine int

	// Spacing in twips.
	SpaceBefore     int
	SpaceAfter      int
	LineSpacing     int
	LineSpacingRule LineRule

	KeepWithNext    bool
	KeepLines       bool
	PageBreakBefore bool

	// OutlineLevel is 0..8, nil when unset.
	OutlineLevel *int
}

// DefaultParagraphStyle returns the style applied to paragraphs with no
// explicit properties.
func DefaultParagraphStyle() ParagraphStyle {
	return ParagraphStyle{Alignment: AlignLeft}
}

// Clone returns a deep copy of the style.
func (s ParagraphStyle) Clone() ParagraphStyle {
	cp := s
	if s.OutlineLevel != nil {
		lvl := *s.OutlineLevel
		cp.OutlineLevel = &lvl
	}
	return cp
}
