package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"

	"github.com/tsawler/redline/model"
)

// extractPart pulls one part out of a generated package.
func extractPart(t *testing.T, pkg []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		t.Fatalf("reading package: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

// attrVal returns the value of the attribute with the given local
// name, ignoring namespace prefixes.
func attrVal(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func queryPart(t *testing.T, pkg []byte, name, xpath string) []*xmlquery.Node {
	t.Helper()
	content := extractPart(t, pkg, name)
	doc, err := xmlquery.Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	nodes, err := xmlquery.QueryAll(doc, xpath)
	if err != nil {
		t.Fatalf("querying %s: %v", xpath, err)
	}
	return nodes
}

func writePackage(t *testing.T, doc *model.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := (Writer{}).Write(doc, &buf); err != nil {
		t.Fatalf("writing package: %v", err)
	}
	return buf.Bytes()
}

func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.Properties.Title = "Sample & Title"
	doc.Properties.Author = "Author"

	doc.NumberingDefinitions = append(doc.NumberingDefinitions, &model.NumberingDefinition{
		ID:         0,
		MultiLevel: true,
		Levels: []model.NumberingLevel{
			{Level: 0, Format: model.NumberFormatDecimal, Text: "%1.", Start: 1, Indent: 720, Hanging: 360},
			{Level: 1, Format: model.NumberFormatLowerLetter, Text: "%2)", Start: 1, Indent: 1440, Hanging: 360},
		},
	})
	startAt := 3
	doc.NumberingInstances = append(doc.NumberingInstances, &model.NumberingInstance{
		ID:           1,
		DefinitionID: 0,
		Overrides: []model.NumberingLevelOverride{
			{Level: 0, StartOverride: &startAt},
		},
	})

	doc.Styles = append(doc.Styles, &model.StyleDefinition{
		ID:   "Heading1",
		Name: "heading 1",
		Type: model.StyleTypeParagraph,
		Run:  &model.RunFormatting{Bold: true, FontSize: 16},
	})

	sec := model.NewSection()

	h := model.NewParagraph()
	h.Style.StyleID = "Heading1"
	h.Style.HeadingLevel = 1
	h.AddRun("Agreement <Terms>", model.RunFormatting{})
	sec.AddParagraph(h)

	item := model.NewParagraph()
	item.Numbering = &model.NumberingInfo{InstanceID: 1, Level: 0}
	item.AddRun("First clause ", model.RunFormatting{})
	item.AddRun("struck", model.ForDeletion(nil))
	sec.AddParagraph(item)

	tbl := model.NewTable()
	row := tbl.AddRow()
	cell := row.AddCell()
	cp := model.NewParagraph()
	cp.AddRun("cell text", model.RunFormatting{Italic: true})
	cell.Blocks = append(cell.Blocks, model.ParagraphBlock(cp))
	empty := row.AddCell()
	empty.Normalize()
	sec.AddTable(tbl)

	doc.AddSection(sec)
	return doc
}

func TestWriterDocumentStructure(t *testing.T) {
	pkg := writePackage(t, sampleDocument())

	if got := len(queryPart(t, pkg, "word/document.xml", "//w:body/w:p")); got != 2 {
		t.Errorf("body paragraphs = %d, want 2", got)
	}
	if got := len(queryPart(t, pkg, "word/document.xml", "//w:tbl")); got != 1 {
		t.Errorf("tables = %d, want 1", got)
	}
	// Every emitted cell contains at least one paragraph.
	for i, tc := range queryPart(t, pkg, "word/document.xml", "//w:tc") {
		if len(xmlquery.Find(tc, ".//w:p")) == 0 {
			t.Errorf("cell %d has no paragraph", i)
		}
	}
	if got := len(queryPart(t, pkg, "word/document.xml", "//w:body/w:sectPr")); got != 1 {
		t.Errorf("body sectPr count = %d, want 1", got)
	}
}

func TestWriterRunFormatting(t *testing.T) {
	pkg := writePackage(t, sampleDocument())

	strikes := queryPart(t, pkg, "word/document.xml", "//w:r[w:rPr/w:strike]")
	if len(strikes) != 1 {
		t.Fatalf("struck runs = %d, want 1", len(strikes))
	}
	colors := xmlquery.Find(strikes[0], ".//w:color")
	if len(colors) != 1 || attrVal(colors[0], "val") != "FF0000" {
		t.Errorf("deletion color missing or wrong")
	}
}

func TestWriterPreservesRunSpaces(t *testing.T) {
	pkg := writePackage(t, sampleDocument())

	found := false
	for _, n := range queryPart(t, pkg, "word/document.xml", "//w:t") {
		if n.InnerText() == "First clause " && attrVal(n, "space") == "preserve" {
			found = true
		}
	}
	if !found {
		t.Error("run with trailing space must be emitted with xml:space=preserve")
	}
}

func TestWriterNumberingPart(t *testing.T) {
	pkg := writePackage(t, sampleDocument())

	if got := len(queryPart(t, pkg, "word/numbering.xml", "//w:abstractNum")); got != 1 {
		t.Errorf("abstractNum count = %d, want 1", got)
	}
	if got := len(queryPart(t, pkg, "word/numbering.xml", "//w:abstractNum/w:lvl")); got != 2 {
		t.Errorf("level count = %d, want 2", got)
	}

	nums := queryPart(t, pkg, "word/numbering.xml", "//w:num")
	if len(nums) != 1 {
		t.Fatalf("num count = %d, want 1", len(nums))
	}
	overrides := queryPart(t, pkg, "word/numbering.xml", "//w:num/w:lvlOverride/w:startOverride")
	if len(overrides) != 1 || attrVal(overrides[0], "val") != "3" {
		t.Errorf("startOverride missing or wrong")
	}

	// The paragraph references the instance by id.
	refs := queryPart(t, pkg, "word/document.xml", "//w:numPr/w:numId")
	if len(refs) != 1 || attrVal(refs[0], "val") != "1" {
		t.Errorf("numId reference missing or wrong")
	}
}

func TestWriterSynthesizesMissingDefinition(t *testing.T) {
	doc := model.NewDocument()
	doc.NumberingInstances = append(doc.NumberingInstances, &model.NumberingInstance{ID: 4, DefinitionID: 12})
	sec := model.NewSection()
	p := model.NewParagraph()
	p.Numbering = &model.NumberingInfo{InstanceID: 4, Level: 0}
	p.AddRun("item", model.RunFormatting{})
	sec.AddParagraph(p)
	doc.AddSection(sec)

	pkg := writePackage(t, doc)

	// The dangling definition reference must not survive to output.
	var synthesized *xmlquery.Node
	for _, n := range queryPart(t, pkg, "word/numbering.xml", "//w:abstractNum") {
		if attrVal(n, "abstractNumId") == "12" {
			synthesized = n
		}
	}
	if synthesized == nil {
		t.Fatal("synthesized definition missing")
	}
	if len(xmlquery.Find(synthesized, ".//w:lvl")) == 0 {
		t.Error("synthesized definition has no levels")
	}
}

func TestWriterEscapesText(t *testing.T) {
	content := extractPart(t, writePackage(t, sampleDocument()), "word/document.xml")
	if strings.Contains(content, "Agreement <Terms>") {
		t.Error("text not escaped")
	}
	if !strings.Contains(content, "Agreement &lt;Terms&gt;") {
		t.Error("escaped text missing")
	}
}

func TestWriterDeterministic(t *testing.T) {
	doc := sampleDocument()
	first := writePackage(t, doc)
	for i := 0; i < 3; i++ {
		if !bytes.Equal(first, writePackage(t, doc)) {
			t.Fatal("identical documents must serialize byte-identically")
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := sampleDocument()
	pkg := writePackage(t, orig)

	r, err := OpenBytes(pkg)
	if err != nil {
		t.Fatalf("reopening generated package: %v", err)
	}
	parsed, err := r.Document()
	if err != nil {
		t.Fatalf("materializing generated package: %v", err)
	}

	origParas := orig.ParagraphsFlat()
	parsedParas := parsed.ParagraphsFlat()
	if len(origParas) != len(parsedParas) {
		t.Fatalf("paragraph count %d != %d", len(parsedParas), len(origParas))
	}
	for i := range origParas {
		want := origParas[i].NormalizedText()
		got := parsedParas[i].NormalizedText()
		if want != got {
			t.Errorf("paragraph %d text %q != %q", i, got, want)
		}
	}

	if len(parsed.NumberingDefinitions) != len(orig.NumberingDefinitions) {
		t.Errorf("definition count %d != %d", len(parsed.NumberingDefinitions), len(orig.NumberingDefinitions))
	}
	if len(parsed.NumberingInstances) != len(orig.NumberingInstances) {
		t.Errorf("instance count %d != %d", len(parsed.NumberingInstances), len(orig.NumberingInstances))
	}

	// The numbering reference must survive verbatim.
	item := parsedParas[1]
	if item.Numbering == nil || item.Numbering.InstanceID != 1 || item.Numbering.Level != 0 {
		t.Errorf("round-tripped numbering = %+v", item.Numbering)
	}

	// And the override must still be an independent, correct copy.
	inst := parsed.NumberingInstance(1)
	if inst == nil {
		t.Fatal("instance 1 missing after round trip")
	}
	ov := inst.Override(0)
	if ov == nil || ov.StartOverride == nil || *ov.StartOverride != 3 {
		t.Errorf("override lost in round trip: %+v", ov)
	}
}

func TestRoundTripRunFormatting(t *testing.T) {
	doc := model.NewDocument()
	sec := model.NewSection()
	p := model.NewParagraph()
	p.AddRun("formatted", model.RunFormatting{
		Bold:       true,
		Underline:  true,
		FontFamily: "Arial",
		FontSize:   12,
		Color:      "336699",
		Highlight:  "yellow",
	})
	sec.AddParagraph(p)
	doc.AddSection(sec)

	r, err := OpenBytes(writePackage(t, doc))
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	parsed, err := r.Document()
	if err != nil {
		t.Fatalf("materializing: %v", err)
	}

	f := parsed.ParagraphsFlat()[0].Runs[0].Formatting
	if !f.Bold || !f.Underline || f.FontFamily != "Arial" || f.FontSize != 12 || f.Color != "336699" || f.Highlight != "yellow" {
		t.Errorf("formatting lost in round trip: %+v", f)
	}
}

func TestRoundTripSections(t *testing.T) {
	doc := model.NewDocument()

	s1 := model.NewSection()
	s1.Properties.Break = model.SectionBreakContinuous
	p1 := model.NewParagraph()
	p1.AddRun("first section", model.RunFormatting{})
	s1.AddParagraph(p1)
	doc.AddSection(s1)

	s2 := model.NewSection()
	s2.Properties.Landscape = true
	s2.Properties.PageWidth = 15840
	s2.Properties.PageHeight = 12240
	p2 := model.NewParagraph()
	p2.AddRun("second section", model.RunFormatting{})
	s2.AddParagraph(p2)
	doc.AddSection(s2)

	r, err := OpenBytes(writePackage(t, doc))
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	parsed, err := r.Document()
	if err != nil {
		t.Fatalf("materializing: %v", err)
	}

	if len(parsed.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(parsed.Sections))
	}
	if len(parsed.ParagraphsFlat()) != 2 {
		t.Fatalf("paragraphs = %d, want 2 (section break must not invent paragraphs)", len(parsed.ParagraphsFlat()))
	}
	if parsed.Sections[0].Properties.Break != model.SectionBreakContinuous {
		t.Error("section 1 break type lost")
	}
	if !parsed.Sections[1].Properties.Landscape {
		t.Error("section 2 orientation lost")
	}
}

func TestRoundTripHeaders(t *testing.T) {
	doc := model.NewDocument()
	sec := model.NewSection()
	p := model.NewParagraph()
	p.AddRun("body", model.RunFormatting{})
	sec.AddParagraph(p)

	hp := model.NewParagraph()
	hp.AddRun("Draft – Confidential", model.RunFormatting{})
	sec.Headers.Default = &model.HeaderFooter{Blocks: []model.Block{model.ParagraphBlock(hp)}}

	fp := model.NewParagraph()
	fp.AddRun("Page footer", model.RunFormatting{})
	sec.Footers.Default = &model.HeaderFooter{Blocks: []model.Block{model.ParagraphBlock(fp)}}

	doc.AddSection(sec)

	r, err := OpenBytes(writePackage(t, doc))
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	parsed, err := r.Document()
	if err != nil {
		t.Fatalf("materializing: %v", err)
	}

	hdr := parsed.Sections[0].Headers.Default
	if hdr == nil || len(hdr.Blocks) != 1 || hdr.Blocks[0].PlainText() != "Draft – Confidential" {
		t.Errorf("header lost in round trip: %+v", hdr)
	}
	ftr := parsed.Sections[0].Footers.Default
	if ftr == nil || ftr.Blocks[0].PlainText() != "Page footer" {
		t.Errorf("footer lost in round trip: %+v", ftr)
	}
}

func TestParserInterface(t *testing.T) {
	p := Parser{}
	if !p.CanParse("contract.docx") || !p.CanParse("CONTRACT.DOCX") {
		t.Error("CanParse should accept .docx case-insensitively")
	}
	if p.CanParse("contract.pdf") {
		t.Error("CanParse should reject .pdf")
	}
	exts := p.SupportedExtensions()
	if len(exts) != 1 || exts[0] != ".docx" {
		t.Errorf("extensions = %v", exts)
	}
	if got := (Generator{}).OutputFormat(); got != "docx" {
		t.Errorf("output format = %q", got)
	}
}
