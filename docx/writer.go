package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/redline/model"
)

// Writer serializes a model.Document to a DOCX package.
type Writer struct{}

// WriteFile serializes doc to the named file.
func (w Writer) WriteFile(doc *model.Document, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := w.Write(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write serializes doc as a ZIP package to out. Parts are emitted in a
// fixed order so identical documents produce identical archives.
func (w Writer) Write(doc *model.Document, out io.Writer) error {
	zw := zip.NewWriter(out)

	pkg := newPackageWriter(doc)
	parts := pkg.build()

	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: time.Unix(0, 0).UTC(),
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := fw.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("writing %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing package: %w", err)
	}
	return nil
}

type part struct {
	name    string
	content string
}

// packageWriter accumulates the parts of one package. Header and footer
// parts are numbered in emission order; their relationship ids follow
// the fixed styles and numbering ids.
type packageWriter struct {
	doc *model.Document

	headerFooters []part
	rels          []relationshipXML
	nextRelID     int
	nextBookmark  int
}

func newPackageWriter(doc *model.Document) *packageWriter {
	return &packageWriter{doc: doc, nextRelID: 1}
}

func (p *packageWriter) addRel(relType, target string) string {
	id := "rId" + strconv.Itoa(p.nextRelID)
	p.nextRelID++
	p.rels = append(p.rels, relationshipXML{ID: id, Type: relType, Target: target})
	return id
}

func (p *packageWriter) build() []part {
	p.addRel(nsR+"/styles", "styles.xml")
	p.addRel(nsR+"/numbering", "numbering.xml")

	// document.xml must be built first: it registers header/footer
	// parts and relationships as sections reference them.
	docPart := p.buildDocument()

	parts := []part{
		{"[Content_Types].xml", p.buildContentTypes()},
		{"_rels/.rels", buildRootRels()},
		{"word/document.xml", docPart},
		{"word/_rels/document.xml.rels", p.buildDocumentRels()},
		{"word/styles.xml", p.buildStyles()},
		{"word/numbering.xml", p.buildNumbering()},
		{"docProps/core.xml", p.buildCoreProperties()},
	}
	parts = append(parts, p.headerFooters...)
	return parts
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

func (p *packageWriter) buildContentTypes() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>`)
	b.WriteString(`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	for _, hf := range p.headerFooters {
		name := strings.TrimPrefix(hf.name, "word/")
		kind := "header"
		if strings.HasPrefix(name, "footer") {
			kind = "footer"
		}
		fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.%s+xml"/>`, hf.name, kind)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func buildRootRels() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="` + nsR + `/officeDocument" Target="word/document.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>`)
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (p *packageWriter) buildDocumentRels() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, rel := range p.rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, rel.ID, rel.Type, rel.Target)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func (p *packageWriter) buildDocument() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:document xmlns:w="` + nsW + `" xmlns:r="` + nsR + `"><w:body>`)

	for i, sec := range p.doc.Sections {
		last := i == len(p.doc.Sections)-1
		if last {
			for _, blk := range sec.Blocks {
				p.writeBlock(&b, blk)
			}
			p.writeSectPr(&b, sec)
			continue
		}

		// A mid-document section break rides in the pPr of the
		// section's final paragraph; inventing a carrier paragraph
		// would change the paragraph count on re-parse.
		n := len(sec.Blocks)
		if n > 0 && sec.Blocks[n-1].Kind == model.BlockParagraph {
			for _, blk := range sec.Blocks[:n-1] {
				p.writeBlock(&b, blk)
			}
			p.writeParagraphWithSect(&b, sec.Blocks[n-1].Paragraph, sec)
		} else {
			for _, blk := range sec.Blocks {
				p.writeBlock(&b, blk)
			}
			b.WriteString(`<w:p><w:pPr>`)
			p.writeSectPr(&b, sec)
			b.WriteString(`</w:pPr></w:p>`)
		}
	}

	// A package with no sections still needs a body-level sectPr.
	if len(p.doc.Sections) == 0 {
		p.writeSectPr(&b, model.NewSection())
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func (p *packageWriter) writeBlock(b *strings.Builder, blk model.Block) {
	switch blk.Kind {
	case model.BlockParagraph:
		p.writeParagraph(b, blk.Paragraph)
	case model.BlockTable:
		p.writeTable(b, blk.Table)
	}
}

func (p *packageWriter) writeParagraph(b *strings.Builder, para *model.Paragraph) {
	p.writeParagraphWithSect(b, para, nil)
}

// writeParagraphWithSect emits a paragraph, embedding sec's sectPr in
// its pPr when sec is non-nil (a mid-document section break).
func (p *packageWriter) writeParagraphWithSect(b *strings.Builder, para *model.Paragraph, sec *model.Section) {
	b.WriteString(`<w:p>`)
	if sec != nil {
		var sp strings.Builder
		p.writeSectPr(&sp, sec)
		writeParagraphPropsWith(b, para, sp.String())
	} else {
		writeParagraphProps(b, para)
	}

	for _, name := range para.BookmarkStarts {
		fmt.Fprintf(b, `<w:bookmarkStart w:id="%d" w:name="%s"/>`, p.nextBookmark, escape(name))
		p.nextBookmark++
	}
	for _, r := range para.Runs {
		writeRun(b, r)
	}
	for _, id := range para.BookmarkEnds {
		fmt.Fprintf(b, `<w:bookmarkEnd w:id="%s"/>`, escape(id))
	}

	b.WriteString(`</w:p>`)
}

func writeParagraphProps(b *strings.Builder, para *model.Paragraph) {
	writeParagraphPropsWith(b, para, "")
}

// writeParagraphPropsWith emits pPr with extra trailing content (a
// serialized sectPr); pPr is forced when extra is non-empty.
func writeParagraphPropsWith(b *strings.Builder, para *model.Paragraph, extra string) {
	s := para.Style
	var props strings.Builder

	if s.StyleID != "" {
		fmt.Fprintf(&props, `<w:pStyle w:val="%s"/>`, escape(s.StyleID))
	}
	if s.KeepWithNext {
		props.WriteString(`<w:keepNext/>`)
	}
	if s.KeepLines {
		props.WriteString(`<w:keepLines/>`)
	}
	if s.PageBreakBefore {
		props.WriteString(`<w:pageBreakBefore/>`)
	}
	if para.Numbering != nil {
		fmt.Fprintf(&props, `<w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr>`,
			para.Numbering.Level, para.Numbering.InstanceID)
	}
	if s.SpaceBefore != 0 || s.SpaceAfter != 0 || s.LineSpacing != 0 {
		props.WriteString(`<w:spacing`)
		if s.SpaceBefore != 0 {
			fmt.Fprintf(&props, ` w:before="%d"`, s.SpaceBefore)
		}
		if s.SpaceAfter != 0 {
			fmt.Fprintf(&props, ` w:after="%d"`, s.SpaceAfter)
		}
		if s.LineSpacing != 0 {
			fmt.Fprintf(&props, ` w:line="%d" w:lineRule="%s"`, s.LineSpacing, lineRuleName(s.LineSpacingRule))
		}
		props.WriteString(`/>`)
	}
	if s.IndentLeft != 0 || s.IndentRight != 0 || s.IndentFirstLine != 0 {
		props.WriteString(`<w:ind`)
		if s.IndentLeft != 0 {
			fmt.Fprintf(&props, ` w:left="%d"`, s.IndentLeft)
		}
		if s.IndentRight != 0 {
			fmt.Fprintf(&props, ` w:right="%d"`, s.IndentRight)
		}
		if s.IndentFirstLine < 0 {
			fmt.Fprintf(&props, ` w:hanging="%d"`, -s.IndentFirstLine)
		} else if s.IndentFirstLine > 0 {
			fmt.Fprintf(&props, ` w:firstLine="%d"`, s.IndentFirstLine)
		}
		props.WriteString(`/>`)
	}
	if s.Alignment != model.AlignLeft {
		fmt.Fprintf(&props, `<w:jc w:val="%s"/>`, justificationName(s.Alignment))
	}
	if s.OutlineLevel != nil {
		fmt.Fprintf(&props, `<w:outlineLvl w:val="%d"/>`, *s.OutlineLevel)
	}

	props.WriteString(extra)

	if props.Len() > 0 {
		b.WriteString(`<w:pPr>`)
		b.WriteString(props.String())
		b.WriteString(`</w:pPr>`)
	}
}

func writeRun(b *strings.Builder, r *model.Run) {
	b.WriteString(`<w:r>`)
	writeRunProps(b, r.Formatting)
	writeRunText(b, r.Text)
	b.WriteString(`</w:r>`)
}

// writeRunText emits the run's text, mapping tabs and newlines to their
// OOXML elements.
func writeRunText(b *strings.Builder, text string) {
	flush := func(s string) {
		if s == "" {
			return
		}
		if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
			b.WriteString(`<w:t xml:space="preserve">`)
		} else {
			b.WriteString(`<w:t>`)
		}
		b.WriteString(escape(s))
		b.WriteString(`</w:t>`)
	}

	start := 0
	for i, r := range text {
		switch r {
		case '\t':
			flush(text[start:i])
			b.WriteString(`<w:tab/>`)
			start = i + 1
		case '\n':
			flush(text[start:i])
			b.WriteString(`<w:br/>`)
			start = i + 1
		}
	}
	flush(text[start:])
}

func writeRunProps(b *strings.Builder, f model.RunFormatting) {
	if f == (model.RunFormatting{}) {
		return
	}
	b.WriteString(`<w:rPr>`)
	if f.StyleID != "" {
		fmt.Fprintf(b, `<w:rStyle w:val="%s"/>`, escape(f.StyleID))
	}
	if f.FontFamily != "" {
		fmt.Fprintf(b, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escape(f.FontFamily), escape(f.FontFamily))
	}
	if f.Bold {
		b.WriteString(`<w:b/>`)
	}
	if f.Italic {
		b.WriteString(`<w:i/>`)
	}
	if f.Strikethrough {
		b.WriteString(`<w:strike/>`)
	}
	if f.Color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, escape(f.Color))
	}
	if f.FontSize > 0 {
		fmt.Fprintf(b, `<w:sz w:val="%d"/>`, int(f.FontSize*2))
	}
	if f.Highlight != "" {
		fmt.Fprintf(b, `<w:highlight w:val="%s"/>`, escape(f.Highlight))
	}
	if f.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if f.Superscript {
		b.WriteString(`<w:vertAlign w:val="superscript"/>`)
	} else if f.Subscript {
		b.WriteString(`<w:vertAlign w:val="subscript"/>`)
	}
	b.WriteString(`</w:rPr>`)
}

func (p *packageWriter) writeTable(b *strings.Builder, t *model.Table) {
	b.WriteString(`<w:tbl><w:tblPr>`)
	if t.Properties.WidthType != model.TableWidthAuto {
		fmt.Fprintf(b, `<w:tblW w:w="%d" w:type="%s"/>`, t.Properties.Width, t.Properties.WidthType)
	} else {
		b.WriteString(`<w:tblW w:w="0" w:type="auto"/>`)
	}
	if t.Properties.Alignment != model.AlignLeft {
		fmt.Fprintf(b, `<w:jc w:val="%s"/>`, justificationName(t.Properties.Alignment))
	}
	b.WriteString(`</w:tblPr>`)

	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			b.WriteString(`<w:tc>`)
			blocks := cell.Blocks
			if len(blocks) == 0 {
				// Cells must contain at least one paragraph.
				blocks = []model.Block{model.ParagraphBlock(model.NewParagraph())}
			}
			for _, blk := range blocks {
				p.writeBlock(b, blk)
			}
			b.WriteString(`</w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
}

func (p *packageWriter) writeSectPr(b *strings.Builder, sec *model.Section) {
	props := sec.Properties
	b.WriteString(`<w:sectPr>`)

	p.writeHeaderFooterRefs(b, sec.Headers, true)
	p.writeHeaderFooterRefs(b, sec.Footers, false)

	if props.Break != model.SectionBreakNextPage {
		fmt.Fprintf(b, `<w:type w:val="%s"/>`, props.Break)
	}

	orient := ""
	if props.Landscape {
		orient = ` w:orient="landscape"`
	}
	fmt.Fprintf(b, `<w:pgSz w:w="%d" w:h="%d"%s/>`, props.PageWidth, props.PageHeight, orient)
	fmt.Fprintf(b, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="%d" w:footer="%d"/>`,
		props.MarginTop, props.MarginRight, props.MarginBottom, props.MarginLeft,
		props.HeaderDistance, props.FooterDistance)

	if props.TitlePage {
		b.WriteString(`<w:titlePg/>`)
	}

	b.WriteString(`</w:sectPr>`)
}

func (p *packageWriter) writeHeaderFooterRefs(b *strings.Builder, set model.HeaderFooterSet, header bool) {
	emit := func(hf *model.HeaderFooter, refType string) {
		if hf == nil {
			return
		}
		relID := p.addHeaderFooterPart(hf, header)
		element := "footerReference"
		if header {
			element = "headerReference"
		}
		fmt.Fprintf(b, `<w:%s w:type="%s" r:id="%s"/>`, element, refType, relID)
	}
	emit(set.Default, "default")
	emit(set.First, "first")
	emit(set.Even, "even")
}

// addHeaderFooterPart emits the part content and registers its
// relationship, returning the relationship id.
func (p *packageWriter) addHeaderFooterPart(hf *model.HeaderFooter, header bool) string {
	kind, root, relType := "footer", "w:ftr", nsR+"/footer"
	if header {
		kind, root, relType = "header", "w:hdr", nsR+"/header"
	}

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<` + root + ` xmlns:w="` + nsW + `" xmlns:r="` + nsR + `">`)
	for _, blk := range hf.Blocks {
		p.writeBlock(&b, blk)
	}
	if len(hf.Blocks) == 0 {
		b.WriteString(`<w:p/>`)
	}
	b.WriteString(`</` + root + `>`)

	name := fmt.Sprintf("%s%d.xml", kind, len(p.headerFooters)+1)
	p.headerFooters = append(p.headerFooters, part{name: "word/" + name, content: b.String()})
	return p.addRel(relType, name)
}

func (p *packageWriter) buildNumbering() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:numbering xmlns:w="` + nsW + `">`)

	defs := append([]*model.NumberingDefinition(nil), p.doc.NumberingDefinitions...)

	// Instances must not reference missing definitions on output;
	// synthesize a single-level decimal definition for each dangler.
	known := make(map[int]bool, len(defs))
	for _, def := range defs {
		known[def.ID] = true
	}
	for _, inst := range p.doc.NumberingInstances {
		if known[inst.DefinitionID] {
			continue
		}
		known[inst.DefinitionID] = true
		defs = append(defs, &model.NumberingDefinition{
			ID:     inst.DefinitionID,
			Levels: []model.NumberingLevel{model.DefaultNumberingLevel(0)},
		})
	}

	for _, def := range defs {
		fmt.Fprintf(&b, `<w:abstractNum w:abstractNumId="%d">`, def.ID)
		if def.Name != "" {
			fmt.Fprintf(&b, `<w:name w:val="%s"/>`, escape(def.Name))
		}
		multi := "singleLevel"
		if def.MultiLevel {
			multi = "multilevel"
		}
		fmt.Fprintf(&b, `<w:multiLevelType w:val="%s"/>`, multi)
		levels := def.Levels
		if len(levels) == 0 {
			levels = []model.NumberingLevel{model.DefaultNumberingLevel(0)}
		}
		for _, lvl := range levels {
			writeLevel(&b, lvl)
		}
		b.WriteString(`</w:abstractNum>`)
	}

	for _, inst := range p.doc.NumberingInstances {
		fmt.Fprintf(&b, `<w:num w:numId="%d">`, inst.ID)
		fmt.Fprintf(&b, `<w:abstractNumId w:val="%d"/>`, inst.DefinitionID)
		for _, ov := range inst.Overrides {
			fmt.Fprintf(&b, `<w:lvlOverride w:ilvl="%d">`, ov.Level)
			if ov.StartOverride != nil {
				fmt.Fprintf(&b, `<w:startOverride w:val="%d"/>`, *ov.StartOverride)
			}
			if ov.OverrideLevel != nil {
				writeLevel(&b, *ov.OverrideLevel)
			}
			b.WriteString(`</w:lvlOverride>`)
		}
		b.WriteString(`</w:num>`)
	}

	b.WriteString(`</w:numbering>`)
	return b.String()
}

func writeLevel(b *strings.Builder, lvl model.NumberingLevel) {
	fmt.Fprintf(b, `<w:lvl w:ilvl="%d">`, lvl.Level)
	start := lvl.Start
	if start == 0 {
		start = 1
	}
	fmt.Fprintf(b, `<w:start w:val="%d"/>`, start)
	fmt.Fprintf(b, `<w:numFmt w:val="%s"/>`, lvl.Format)
	if lvl.Text != "" {
		fmt.Fprintf(b, `<w:lvlText w:val="%s"/>`, escape(lvl.Text))
	}
	fmt.Fprintf(b, `<w:lvlJc w:val="%s"/>`, justificationName(lvl.Alignment))
	if lvl.Indent != 0 || lvl.Hanging != 0 {
		b.WriteString(`<w:pPr><w:ind`)
		if lvl.Indent != 0 {
			fmt.Fprintf(b, ` w:left="%d"`, lvl.Indent)
		}
		if lvl.Hanging != 0 {
			fmt.Fprintf(b, ` w:hanging="%d"`, lvl.Hanging)
		}
		b.WriteString(`/></w:pPr>`)
	}
	if lvl.Font != "" {
		fmt.Fprintf(b, `<w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/></w:rPr>`, escape(lvl.Font), escape(lvl.Font))
	}
	b.WriteString(`</w:lvl>`)
}

func (p *packageWriter) buildStyles() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<w:styles xmlns:w="` + nsW + `">`)

	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	font := p.doc.Properties.DefaultFont
	if font == "" {
		font = "Calibri"
	}
	size := p.doc.Properties.DefaultFontSize
	if size == 0 {
		size = 11
	}
	fmt.Fprintf(&b, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escape(font), escape(font))
	fmt.Fprintf(&b, `<w:sz w:val="%d"/>`, int(size*2))
	b.WriteString(`</w:rPr></w:rPrDefault></w:docDefaults>`)

	for _, st := range p.doc.Styles {
		fmt.Fprintf(&b, `<w:style w:type="%s" w:styleId="%s">`, st.Type, escape(st.ID))
		name := st.Name
		if name == "" {
			name = st.ID
		}
		fmt.Fprintf(&b, `<w:name w:val="%s"/>`, escape(name))
		if st.BasedOn != "" {
			fmt.Fprintf(&b, `<w:basedOn w:val="%s"/>`, escape(st.BasedOn))
		}
		if st.Next != "" {
			fmt.Fprintf(&b, `<w:next w:val="%s"/>`, escape(st.Next))
		}
		if st.Paragraph != nil {
			para := model.NewParagraph()
			para.Style = *st.Paragraph
			para.Style.StyleID = "" // style id lives on the w:style element
			writeParagraphProps(&b, para)
		}
		if st.Run != nil {
			writeRunProps(&b, *st.Run)
		}
		b.WriteString(`</w:style>`)
	}

	b.WriteString(`</w:styles>`)
	return b.String()
}

func (p *packageWriter) buildCoreProperties() string {
	props := p.doc.Properties
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="` + nsCP + `" xmlns:dc="` + nsDC + `" xmlns:dcterms="` + nsDCTerms + `" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if props.Title != "" {
		fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escape(props.Title))
	}
	if props.Subject != "" {
		fmt.Fprintf(&b, `<dc:subject>%s</dc:subject>`, escape(props.Subject))
	}
	creator := props.Author
	if creator == "" {
		creator = props.Creator
	}
	if creator != "" {
		fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, escape(creator))
	}
	if len(props.Keywords) > 0 {
		fmt.Fprintf(&b, `<cp:keywords>%s</cp:keywords>`, escape(strings.Join(props.Keywords, ", ")))
	}
	if props.Description != "" {
		fmt.Fprintf(&b, `<dc:description>%s</dc:description>`, escape(props.Description))
	}
	if props.LastModifiedBy != "" {
		fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, escape(props.LastModifiedBy))
	}
	if !props.Created.IsZero() {
		fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, props.Created.UTC().Format(time.RFC3339))
	}
	if !props.Modified.IsZero() {
		fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, props.Modified.UTC().Format(time.RFC3339))
	}
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

func lineRuleName(r model.LineRule) string {
	switch r {
	case model.LineRuleExact:
		return "exact"
	case model.LineRuleAtLeast:
		return "atLeast"
	default:
		return "auto"
	}
}

func justificationName(a model.Alignment) string {
	switch a {
	case model.AlignCenter:
		return "center"
	case model.AlignRight:
		return "right"
	case model.AlignJustify:
		return "both"
	default:
		return "left"
	}
}

// escape escapes text for use in XML character data and attributes.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
