package docx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/redline/model"
)

// Document materializes the parsed package into a model.Document.
func (r *Reader) Document() (*model.Document, error) {
	if r.document == nil || r.document.Body == nil {
		return nil, fmt.Errorf("document not parsed")
	}

	doc := model.NewDocument()
	r.convertProperties(doc)
	r.convertStyles(doc)
	r.convertNumbering(doc)
	r.convertBody(doc)

	for _, problem := range doc.Validate() {
		r.warnf("%s", problem)
	}
	return doc, nil
}

// convertProperties fills document metadata from docProps/core.xml and
// the styles part's document defaults.
func (r *Reader) convertProperties(doc *model.Document) {
	if r.coreProps != nil {
		doc.Properties.Title = r.coreProps.Title
		doc.Properties.Author = r.coreProps.Creator
		doc.Properties.Subject = r.coreProps.Subject
		doc.Properties.Description = r.coreProps.Description
		doc.Properties.Creator = r.coreProps.Creator
		doc.Properties.LastModifiedBy = r.coreProps.LastModifiedBy
		if r.coreProps.Keywords != "" {
			for _, kw := range strings.Split(r.coreProps.Keywords, ",") {
				doc.Properties.Keywords = append(doc.Properties.Keywords, strings.TrimSpace(kw))
			}
		}
		if t, err := time.Parse(time.RFC3339, r.coreProps.Created); err == nil {
			doc.Properties.Created = t
		}
		if t, err := time.Parse(time.RFC3339, r.coreProps.Modified); err == nil {
			doc.Properties.Modified = t
		}
	}

	if r.appProps != nil && r.appProps.Application != "" {
		doc.Properties.Creator = r.appProps.Application
	}

	if r.styles != nil {
		defaults := r.styles.DocDefaults.RPrDefault.RPr
		if defaults.Font.ASCII != "" {
			doc.Properties.DefaultFont = defaults.Font.ASCII
		}
		if size := parseHalfPoints(defaults.FontSize.Val); size > 0 {
			doc.Properties.DefaultFontSize = size
		}
	}
}

// convertStyles maps styles.xml definitions into the model.
func (r *Reader) convertStyles(doc *model.Document) {
	if r.styles == nil {
		return
	}
	for i := range r.styles.Styles {
		def := &r.styles.Styles[i]
		style := &model.StyleDefinition{
			ID:      def.StyleID,
			Name:    def.Name.Val,
			Type:    model.ParseStyleType(def.Type),
			BasedOn: def.BasedOn.Val,
			Next:    def.Next.Val,
		}
		// The style's own id lives on the definition, not its pPr block.
		if ps := r.convertParagraphStyle(&def.PPr, ""); !isDefaultParagraphStyle(ps) {
			style.Paragraph = &ps
		}
		if rf := convertRunFormatting(&def.RPr); rf != (model.RunFormatting{}) {
			style.Run = &rf
		}
		doc.Styles = append(doc.Styles, style)
	}
}

func isDefaultParagraphStyle(ps model.ParagraphStyle) bool {
	d := model.DefaultParagraphStyle()
	return ps.StyleID == d.StyleID &&
		ps.HeadingLevel == d.HeadingLevel &&
		ps.Alignment == d.Alignment &&
		ps.IndentLeft == 0 && ps.IndentRight == 0 && ps.IndentFirstLine == 0 &&
		ps.SpaceBefore == 0 && ps.SpaceAfter == 0 && ps.LineSpacing == 0 &&
		ps.LineSpacingRule == model.LineRuleAuto &&
		!ps.KeepWithNext && !ps.KeepLines && !ps.PageBreakBefore &&
		ps.OutlineLevel == nil
}

// convertNumbering maps numbering.xml into definitions and instances.
// Ids are kept verbatim; dangling references are tolerated and warned
// about by Document.
func (r *Reader) convertNumbering(doc *model.Document) {
	if r.numbering == nil {
		return
	}

	for i := range r.numbering.AbstractNums {
		an := &r.numbering.AbstractNums[i]
		def := &model.NumberingDefinition{
			ID:         parseIntDefault(an.AbstractNumID, 0),
			Name:       an.Name.Val,
			MultiLevel: an.MultiLevelType.Val != "singleLevel",
		}
		for j := range an.Levels {
			def.Levels = append(def.Levels, convertLevel(&an.Levels[j]))
		}
		doc.NumberingDefinitions = append(doc.NumberingDefinitions, def)
	}

	for i := range r.numbering.Nums {
		num := &r.numbering.Nums[i]
		inst := &model.NumberingInstance{
			ID:           parseIntDefault(num.NumID, 0),
			DefinitionID: parseIntDefault(num.AbstractNumID.Val, 0),
		}
		for j := range num.LvlOverrides {
			ov := &num.LvlOverrides[j]
			levelOverride := model.NumberingLevelOverride{
				Level: parseIntDefault(ov.ILvl, 0),
			}
			if ov.StartOverride.Val != "" {
				start := parseIntDefault(ov.StartOverride.Val, 1)
				levelOverride.StartOverride = &start
			}
			if ov.Lvl != nil {
				lvl := convertLevel(ov.Lvl)
				levelOverride.OverrideLevel = &lvl
			}
			inst.Overrides = append(inst.Overrides, levelOverride)
		}
		doc.NumberingInstances = append(doc.NumberingInstances, inst)
	}
}

func convertLevel(lvl *lvlXML) model.NumberingLevel {
	out := model.NumberingLevel{
		Level:     parseIntDefault(lvl.ILvl, 0),
		Format:    model.ParseNumberFormat(lvl.NumFmt.Val),
		Text:      lvl.LvlText.Val,
		Start:     1,
		Alignment: parseAlignment(lvl.LvlJc.Val),
		Font:      lvl.RPr.Font.ASCII,
	}
	if lvl.Start.Val != "" {
		out.Start = parseIntDefault(lvl.Start.Val, 1)
	}
	out.Indent = parseIntDefault(lvl.PPr.Indent.Left, 0)
	out.Hanging = parseIntDefault(lvl.PPr.Indent.Hanging, 0)
	return out
}

// convertBody walks body elements in order, splitting sections on
// paragraph-level sectPr; the trailing body sectPr closes the final
// section.
func (r *Reader) convertBody(doc *model.Document) {
	sec := model.NewSection()
	seq := 0

	for _, el := range r.document.Body.Elements {
		switch {
		case el.Paragraph != nil:
			p := r.convertParagraph(el.Paragraph, &seq)
			sec.AddParagraph(p)
			if sp := el.Paragraph.Properties.SectPr; sp != nil {
				r.applySectPr(sec, sp)
				doc.AddSection(sec)
				sec = model.NewSection()
			}
		case el.Table != nil:
			sec.AddTable(r.convertTable(el.Table, &seq))
		}
	}

	if sp := r.document.Body.SectPr; sp != nil {
		r.applySectPr(sec, sp)
	}
	doc.AddSection(sec)
}

// convertParagraph maps a parsed paragraph into the model, assigning a
// stable id derived from its position and content.
func (r *Reader) convertParagraph(p *paragraphXML, seq *int) *model.Paragraph {
	out := model.NewParagraph()

	for i := range p.Runs {
		run := &p.Runs[i]
		out.AddRun(run.Text, convertRunFormatting(&run.Properties))
	}

	out.ID = uuid.NewSHA1(uuid.NameSpaceOID,
		[]byte(fmt.Sprintf("%d:%s", *seq, out.PlainText()))).String()
	*seq++

	out.Style = r.convertParagraphStyle(&p.Properties, p.Properties.Style.Val)

	if numID := p.Properties.NumPr.NumID.Val; numID != "" && numID != "0" {
		out.Numbering = &model.NumberingInfo{
			InstanceID: parseIntDefault(numID, 0),
			Level:      parseIntDefault(p.Properties.NumPr.ILvl.Val, 0),
		}
	}

	for _, bm := range p.BookmarkStarts {
		name := bm.Name
		if name == "" {
			name = bm.ID
		}
		out.BookmarkStarts = append(out.BookmarkStarts, name)
	}
	for _, bm := range p.BookmarkEnds {
		out.BookmarkEnds = append(out.BookmarkEnds, bm.ID)
	}

	return out
}

// convertParagraphStyle maps pPr plus the referenced style id to a
// ParagraphStyle.
func (r *Reader) convertParagraphStyle(props *paragraphPropsXML, styleID string) model.ParagraphStyle {
	ps := model.DefaultParagraphStyle()
	ps.StyleID = styleID
	ps.HeadingLevel = r.headingLevel(styleID)
	ps.Alignment = parseAlignment(props.Justification.Val)

	ps.IndentLeft = parseIntDefault(props.Indent.Left, 0)
	ps.IndentRight = parseIntDefault(props.Indent.Right, 0)
	switch {
	case props.Indent.Hanging != "":
		// A hanging indent is encoded as a negative first-line indent.
		ps.IndentFirstLine = -parseIntDefault(props.Indent.Hanging, 0)
	case props.Indent.FirstLine != "":
		ps.IndentFirstLine = parseIntDefault(props.Indent.FirstLine, 0)
	}

	ps.SpaceBefore = parseIntDefault(props.Spacing.Before, 0)
	ps.SpaceAfter = parseIntDefault(props.Spacing.After, 0)
	ps.LineSpacing = parseIntDefault(props.Spacing.Line, 0)
	switch props.Spacing.LineRule {
	case "exact":
		ps.LineSpacingRule = model.LineRuleExact
	case "atLeast":
		ps.LineSpacingRule = model.LineRuleAtLeast
	}

	ps.KeepWithNext = props.KeepNext.enabled()
	ps.KeepLines = props.KeepLines.enabled()
	ps.PageBreakBefore = props.PageBreakBefore.enabled()

	if props.OutlineLvl.Val != "" {
		lvl := parseIntDefault(props.OutlineLvl.Val, 0)
		if lvl >= 0 && lvl <= 8 {
			ps.OutlineLevel = &lvl
		}
	}

	return ps
}

// headingLevel determines the heading level (1-9) for a style id, or 0.
func (r *Reader) headingLevel(styleID string) int {
	if styleID == "" {
		return 0
	}

	// Standard Word heading style IDs
	lower := strings.ToLower(styleID)
	headingMap := map[string]int{
		"heading1": 1, "heading2": 2, "heading3": 3,
		"heading4": 4, "heading5": 5, "heading6": 6,
		"heading7": 7, "heading8": 8, "heading9": 9,
		"title": 1,
	}
	if level, ok := headingMap[lower]; ok {
		return level
	}

	// Check style definitions for an outline level.
	if r.styles != nil {
		for i := range r.styles.Styles {
			style := &r.styles.Styles[i]
			if !strings.EqualFold(style.StyleID, styleID) {
				continue
			}
			if style.PPr.OutlineLvl.Val != "" {
				// OutlineLvl is 0-based in OOXML.
				if lvl := parseIntDefault(style.PPr.OutlineLvl.Val, -1); lvl >= 0 && lvl <= 8 {
					return lvl + 1
				}
			}
			if strings.Contains(strings.ToLower(style.Name.Val), "heading") {
				return 1
			}
		}
	}

	return 0
}

// convertRunFormatting maps rPr to the model.
func convertRunFormatting(props *runPropsXML) model.RunFormatting {
	f := model.RunFormatting{
		Bold:          props.Bold.enabled(),
		Italic:        props.Italic.enabled(),
		Strikethrough: props.Strike.enabled(),
		StyleID:       props.Style.Val,
		FontFamily:    props.Font.ASCII,
		FontSize:      parseHalfPoints(props.FontSize.Val),
	}
	if props.Underline.Val != "" && props.Underline.Val != "none" {
		f.Underline = true
	}
	switch props.VertAlign.Val {
	case "superscript":
		f.Superscript = true
	case "subscript":
		f.Subscript = true
	}
	if props.Color.Val != "" && props.Color.Val != "auto" {
		f.Color = strings.ToUpper(props.Color.Val)
	}
	if props.Highlight.Val != "" && props.Highlight.Val != "none" {
		f.Highlight = props.Highlight.Val
	}
	return f
}

// convertTable maps a parsed table into the model.
func (r *Reader) convertTable(t *tableXML, seq *int) *model.Table {
	out := model.NewTable()

	switch t.Properties.Width.Type {
	case "dxa":
		out.Properties.WidthType = model.TableWidthDxa
		out.Properties.Width = parseIntDefault(t.Properties.Width.W, 0)
	case "pct":
		out.Properties.WidthType = model.TableWidthPct
		out.Properties.Width = parseIntDefault(t.Properties.Width.W, 0)
	}
	out.Properties.Alignment = parseAlignment(t.Properties.Justification.Val)

	for i := range t.Rows {
		row := out.AddRow()
		for j := range t.Rows[i].Cells {
			cell := row.AddCell()
			for _, el := range t.Rows[i].Cells[j].Blocks {
				switch {
				case el.Paragraph != nil:
					cell.Blocks = append(cell.Blocks,
						model.ParagraphBlock(r.convertParagraph(el.Paragraph, seq)))
				case el.Table != nil:
					cell.Blocks = append(cell.Blocks,
						model.TableBlock(r.convertTable(el.Table, seq)))
				}
			}
			cell.Normalize()
		}
	}

	return out
}

// applySectPr fills section properties and loads referenced header and
// footer parts.
func (r *Reader) applySectPr(sec *model.Section, sp *sectPrXML) {
	props := &sec.Properties

	if w := parseIntDefault(sp.PgSz.W, 0); w > 0 {
		props.PageWidth = w
	}
	if h := parseIntDefault(sp.PgSz.H, 0); h > 0 {
		props.PageHeight = h
	}
	props.Landscape = sp.PgSz.Orient == "landscape"

	if v := parseIntDefault(sp.PgMar.Top, -1); v >= 0 {
		props.MarginTop = v
	}
	if v := parseIntDefault(sp.PgMar.Bottom, -1); v >= 0 {
		props.MarginBottom = v
	}
	if v := parseIntDefault(sp.PgMar.Left, -1); v >= 0 {
		props.MarginLeft = v
	}
	if v := parseIntDefault(sp.PgMar.Right, -1); v >= 0 {
		props.MarginRight = v
	}
	if v := parseIntDefault(sp.PgMar.Header, -1); v >= 0 {
		props.HeaderDistance = v
	}
	if v := parseIntDefault(sp.PgMar.Footer, -1); v >= 0 {
		props.FooterDistance = v
	}

	switch sp.Type.Val {
	case "continuous":
		props.Break = model.SectionBreakContinuous
	case "evenPage":
		props.Break = model.SectionBreakEvenPage
	case "oddPage":
		props.Break = model.SectionBreakOddPage
	default:
		props.Break = model.SectionBreakNextPage
	}

	props.TitlePage = sp.TitlePg.enabled()

	for _, ref := range sp.HeaderRefs {
		hf := r.loadHeaderFooter(ref, true)
		switch ref.Type {
		case "first":
			sec.Headers.First = hf
		case "even":
			sec.Headers.Even = hf
			props.EvenAndOddHeaders = props.EvenAndOddHeaders || hf != nil
		default:
			sec.Headers.Default = hf
		}
	}
	for _, ref := range sp.FooterRefs {
		hf := r.loadHeaderFooter(ref, false)
		switch ref.Type {
		case "first":
			sec.Footers.First = hf
		case "even":
			sec.Footers.Even = hf
			props.EvenAndOddHeaders = props.EvenAndOddHeaders || hf != nil
		default:
			sec.Footers.Default = hf
		}
	}
}

func (r *Reader) loadHeaderFooter(ref hfRefXML, header bool) *model.HeaderFooter {
	body, err := r.parseHeaderFooter(ref.ID, header)
	if err != nil {
		kind := "footer"
		if header {
			kind = "header"
		}
		r.warnf("skipping %s %q: %v", kind, ref.ID, err)
		return nil
	}

	hf := &model.HeaderFooter{}
	seq := 0
	for _, el := range body.Elements {
		switch {
		case el.Paragraph != nil:
			hf.Blocks = append(hf.Blocks,
				model.ParagraphBlock(r.convertParagraph(el.Paragraph, &seq)))
		case el.Table != nil:
			hf.Blocks = append(hf.Blocks,
				model.TableBlock(r.convertTable(el.Table, &seq)))
		}
	}
	return hf
}

func parseAlignment(s string) model.Alignment {
	switch s {
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "justify", "distribute":
		return model.AlignJustify
	default:
		return model.AlignLeft
	}
}

// parseIntDefault parses a decimal integer, returning def on failure.
func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// parseHalfPoints converts an OOXML half-point size to points.
func parseHalfPoints(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v / 2
}
