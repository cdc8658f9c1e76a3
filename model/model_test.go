package model

import (
	"strings"
	"testing"
)

func TestForDeletion(t *testing.T) {
	f := ForDeletion(nil)
	if !f.Strikethrough {
		t.Error("expected strikethrough")
	}
	if f.Color != "FF0000" {
		t.Errorf("expected color FF0000, got %q", f.Color)
	}
	if f.Bold {
		t.Error("deletion must not set bold")
	}
}

func TestForInsertion(t *testing.T) {
	f := ForInsertion(nil)
	if !f.Bold {
		t.Error("expected bold")
	}
	if f.Color != "0000FF" {
		t.Errorf("expected color 0000FF, got %q", f.Color)
	}
	if f.Strikethrough {
		t.Error("insertion must not set strikethrough")
	}
}

func TestForMove(t *testing.T) {
	src := ForMove(nil, true)
	if src.Color != "008000" {
		t.Errorf("expected color 008000, got %q", src.Color)
	}
	if !src.Strikethrough {
		t.Error("move source must be struck through")
	}

	dst := ForMove(nil, false)
	if dst.Color != "008000" {
		t.Errorf("expected color 008000, got %q", dst.Color)
	}
	if dst.Strikethrough {
		t.Error("move target must not be struck through")
	}
}

func TestForDeletionPreservesBase(t *testing.T) {
	base := &RunFormatting{
		Bold:       true,
		FontFamily: "Arial",
		FontSize:   12,
	}
	f := ForDeletion(base)

	if !f.Bold {
		t.Error("base bold lost")
	}
	if f.FontFamily != "Arial" {
		t.Errorf("base font lost, got %q", f.FontFamily)
	}
	if f.FontSize != 12 {
		t.Errorf("base size lost, got %v", f.FontSize)
	}
	if !f.Strikethrough || f.Color != "FF0000" {
		t.Error("deletion overlay not applied")
	}
	// The base record itself must be untouched.
	if base.Strikethrough || base.Color != "" {
		t.Error("base record was mutated")
	}
}

func TestPlainText(t *testing.T) {
	p := NewParagraph()
	p.AddRun("Hello ", RunFormatting{})
	p.AddRun("world", RunFormatting{Bold: true})

	if got := p.PlainText(); got != "Hello world" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestNormalizedText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", "Hello world", "Hello world"},
		{"inner whitespace", "Hello \t  world", "Hello world"},
		{"surrounding whitespace", "  Hello world \n", "Hello world"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParagraph()
			p.AddRun(tt.text, RunFormatting{})
			if got := p.NormalizedText(); got != tt.want {
				t.Errorf("NormalizedText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParagraphClone(t *testing.T) {
	p := NewParagraph()
	p.ID = "p1"
	p.AddRun("text", RunFormatting{Bold: true})
	p.Numbering = &NumberingInfo{InstanceID: 1, Level: 2}
	p.BookmarkStarts = []string{"bm1"}

	cp := p.Clone()
	cp.Runs[0].Text = "changed"
	cp.Numbering.Level = 7
	cp.BookmarkStarts[0] = "other"

	if p.Runs[0].Text != "text" {
		t.Error("clone shares runs with source")
	}
	if p.Numbering.Level != 2 {
		t.Error("clone shares numbering info with source")
	}
	if p.BookmarkStarts[0] != "bm1" {
		t.Error("clone shares bookmark slice with source")
	}
}

func TestNumberingInstanceClone(t *testing.T) {
	startAt := 3
	inst := &NumberingInstance{
		ID:           2,
		DefinitionID: 1,
		Overrides: []NumberingLevelOverride{
			{Level: 0, StartOverride: &startAt},
		},
	}

	cp := inst.Clone()
	*cp.Overrides[0].StartOverride = 99

	if *inst.Overrides[0].StartOverride != 3 {
		t.Error("clone shares override start value with source")
	}
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument()
	doc.Properties.Title = "Original"
	doc.NumberingDefinitions = append(doc.NumberingDefinitions, &NumberingDefinition{
		ID:     1,
		Levels: []NumberingLevel{{Level: 0, Format: NumberFormatDecimal, Text: "%1.", Start: 1}},
	})
	doc.NumberingInstances = append(doc.NumberingInstances, &NumberingInstance{ID: 1, DefinitionID: 1})
	doc.Styles = append(doc.Styles, &StyleDefinition{ID: "Heading1", Type: StyleTypeParagraph})

	sec := NewSection()
	para := NewParagraph()
	para.AddRun("body", RunFormatting{})
	sec.AddParagraph(para)
	doc.AddSection(sec)

	cp := doc.Clone()
	cp.Properties.Title = "Copy"
	cp.Sections[0].Blocks[0].Paragraph.Runs[0].Text = "changed"
	cp.NumberingDefinitions[0].Levels[0].Text = "%1)"
	cp.Styles[0].ID = "Normal"

	if doc.Properties.Title != "Original" {
		t.Error("clone shares properties")
	}
	if doc.Sections[0].Blocks[0].Paragraph.Runs[0].Text != "body" {
		t.Error("clone shares section content")
	}
	if doc.NumberingDefinitions[0].Levels[0].Text != "%1." {
		t.Error("clone shares numbering definition levels")
	}
	if doc.Styles[0].ID != "Heading1" {
		t.Error("clone shares styles")
	}
}

func TestParagraphsFlatIncludesTables(t *testing.T) {
	doc := NewDocument()
	sec := NewSection()

	before := NewParagraph()
	before.AddRun("before", RunFormatting{})
	sec.AddParagraph(before)

	tbl := NewTable()
	row := tbl.AddRow()
	c1 := row.AddCell()
	p1 := NewParagraph()
	p1.AddRun("cell one", RunFormatting{})
	c1.Blocks = append(c1.Blocks, ParagraphBlock(p1))
	c2 := row.AddCell()
	p2 := NewParagraph()
	p2.AddRun("cell two", RunFormatting{})
	c2.Blocks = append(c2.Blocks, ParagraphBlock(p2))
	sec.AddTable(tbl)

	after := NewParagraph()
	after.AddRun("after", RunFormatting{})
	sec.AddParagraph(after)

	doc.AddSection(sec)

	flat := doc.ParagraphsFlat()
	var texts []string
	for _, p := range flat {
		texts = append(texts, p.PlainText())
	}
	want := "before|cell one|cell two|after"
	if got := strings.Join(texts, "|"); got != want {
		t.Errorf("flat order = %q, want %q", got, want)
	}
}

func TestValidateDanglingReferences(t *testing.T) {
	doc := NewDocument()
	doc.NumberingInstances = append(doc.NumberingInstances, &NumberingInstance{ID: 1, DefinitionID: 42})
	sec := NewSection()
	p := NewParagraph()
	p.Numbering = &NumberingInfo{InstanceID: 9, Level: 0}
	sec.AddParagraph(p)
	doc.AddSection(sec)

	problems := doc.Validate()
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %d: %v", len(problems), problems)
	}
}

func TestTableCellNormalize(t *testing.T) {
	cell := &TableCell{}
	cell.Normalize()
	if len(cell.Blocks) != 1 || cell.Blocks[0].Kind != BlockParagraph {
		t.Error("expected a placeholder paragraph in empty cell")
	}
}

func TestParseNumberFormat(t *testing.T) {
	if got := ParseNumberFormat("lowerRoman"); got != NumberFormatLowerRoman {
		t.Errorf("lowerRoman = %v", got)
	}
	if got := ParseNumberFormat("somethingElse"); got != NumberFormatDecimal {
		t.Errorf("unknown format should fall back to decimal, got %v", got)
	}
}
