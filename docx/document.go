// Package docx reads and writes DOCX (Office Open XML) word-processing
// packages, materializing them from and to the document model.
package docx

import "encoding/xml"

// XML namespaces used in DOCX files
const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsCP      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDCTerms = "http://purl.org/dc/terms/"
)

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Paragraphs and tables are kept
// in document order; the trailing sectPr closes the final section.
type bodyXML struct {
	Elements []bodyElement
	SectPr   *sectPrXML
}

// bodyElement is a body-level paragraph or table. Exactly one field is
// non-nil.
type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

// UnmarshalXML walks the body children one token at a time so paragraph
// and table order survives (separate struct slices would not keep it).
func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: &tbl})
			case "sectPr":
				var sp sectPrXML
				if err := d.DecodeElement(&sp, &t); err != nil {
					return err
				}
				b.SectPr = &sp
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphXML represents a paragraph element (<w:p>). Runs are
// flattened in document order, including runs nested in hyperlinks.
type paragraphXML struct {
	Properties     paragraphPropsXML
	Runs           []runXML
	BookmarkStarts []bookmarkXML
	BookmarkEnds   []bookmarkEndXML
}

func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Properties, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, r)
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, h.Runs...)
			case "bookmarkStart":
				var bm bookmarkXML
				if err := d.DecodeElement(&bm, &t); err != nil {
					return err
				}
				p.BookmarkStarts = append(p.BookmarkStarts, bm)
			case "bookmarkEnd":
				var bm bookmarkEndXML
				if err := d.DecodeElement(&bm, &t); err != nil {
					return err
				}
				p.BookmarkEnds = append(p.BookmarkEnds, bm)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style           styleRefXML       `xml:"pStyle"`
	KeepNext        *toggleXML        `xml:"keepNext"`
	KeepLines       *toggleXML        `xml:"keepLines"`
	PageBreakBefore *toggleXML        `xml:"pageBreakBefore"`
	NumPr           numberingPropsXML `xml:"numPr"`
	Spacing         spacingXML        `xml:"spacing"`
	Indent          indentXML         `xml:"ind"`
	Justification   justificationXML  `xml:"jc"`
	OutlineLvl      outlineLvlXML     `xml:"outlineLvl"`
	SectPr          *sectPrXML        `xml:"sectPr"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// toggleXML represents an on/off property whose presence means true
// unless val says otherwise.
type toggleXML struct {
	Val string `xml:"val,attr"`
}

// enabled reports whether a present toggle is on.
func (t *toggleXML) enabled() bool {
	if t == nil {
		return false
	}
	return t.Val != "false" && t.Val != "0" && t.Val != "none"
}

// numberingPropsXML represents numbering properties for lists.
type numberingPropsXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

// valXML represents a single w:val attribute carrier.
type valXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before   string `xml:"before,attr"` // twips
	After    string `xml:"after,attr"`  // twips
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"` // auto, exact, atLeast
}

// indentXML represents paragraph indentation.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// outlineLvlXML represents outline level.
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>). Text, tabs, and breaks are
// folded into Text in document order.
type runXML struct {
	Properties runPropsXML
	Text       string
}

func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Properties, &t); err != nil {
					return err
				}
			case "t":
				var txt textXML
				if err := d.DecodeElement(&txt, &t); err != nil {
					return err
				}
				r.Text += txt.Value
			case "tab":
				r.Text += "\t"
				if err := d.Skip(); err != nil {
					return err
				}
			case "br", "cr":
				r.Text += "\n"
				if err := d.Skip(); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Style     styleRefXML  `xml:"rStyle"`
	Bold      *toggleXML   `xml:"b"`
	Italic    *toggleXML   `xml:"i"`
	Underline underlineXML `xml:"u"`
	Strike    *toggleXML   `xml:"strike"`
	VertAlign valXML       `xml:"vertAlign"` // superscript, subscript
	FontSize  valXML       `xml:"sz"`        // half-points
	Font      fontXML      `xml:"rFonts"`
	Color     colorXML     `xml:"color"`
	Highlight valXML       `xml:"highlight"`
}

// underlineXML represents underline style.
type underlineXML struct {
	Val string `xml:"val,attr"` // single, double, none, ...
}

// fontXML represents font settings.
type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	CS       string `xml:"cs,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// colorXML represents text color.
type colorXML struct {
	Val string `xml:"val,attr"` // hex color or "auto"
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// hyperlinkXML represents a hyperlink.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// bookmarkXML represents a bookmark start.
type bookmarkXML struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// bookmarkEndXML represents a bookmark end.
type bookmarkEndXML struct {
	ID string `xml:"id,attr"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Properties tablePropsXML `xml:"tblPr"`
	Rows       []tableRowXML `xml:"tr"`
}

// tablePropsXML represents table properties.
type tablePropsXML struct {
	Style         styleRefXML      `xml:"tblStyle"`
	Width         tableSizeXML     `xml:"tblW"`
	Justification justificationXML `xml:"jc"`
}

// tableSizeXML represents table/cell size.
type tableSizeXML struct {
	W    string `xml:"w,attr"`
	Type string `xml:"type,attr"` // dxa (twips), pct, auto
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>). Cell blocks keep
// document order, the same way the body does.
type tableCellXML struct {
	Properties cellPropsXML
	Blocks     []bodyElement
}

func (c *tableCellXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr":
				if err := d.DecodeElement(&c.Properties, &t); err != nil {
					return err
				}
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				c.Blocks = append(c.Blocks, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				c.Blocks = append(c.Blocks, bodyElement{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// cellPropsXML represents cell properties.
type cellPropsXML struct {
	Width tableSizeXML `xml:"tcW"`
}

// sectPrXML represents section properties (<w:sectPr>), either at body
// level or inside a paragraph's pPr.
type sectPrXML struct {
	HeaderRefs []hfRefXML `xml:"headerReference"`
	FooterRefs []hfRefXML `xml:"footerReference"`
	Type       valXML     `xml:"type"` // continuous, nextPage, evenPage, oddPage
	PgSz       pgSzXML    `xml:"pgSz"`
	PgMar      pgMarXML   `xml:"pgMar"`
	TitlePg    *toggleXML `xml:"titlePg"`
}

// hfRefXML represents a header or footer reference.
type hfRefXML struct {
	Type string `xml:"type,attr"` // default, first, even
	ID   string `xml:"id,attr"`   // relationship id
}

// pgSzXML represents page size.
type pgSzXML struct {
	W      string `xml:"w,attr"` // twips
	H      string `xml:"h,attr"` // twips
	Orient string `xml:"orient,attr"`
}

// pgMarXML represents page margins.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Right  string `xml:"right,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Header string `xml:"header,attr"`
	Footer string `xml:"footer,attr"`
}

// headerXML represents the structure of word/header*.xml files (<w:hdr>).
type headerXML struct {
	XMLName xml.Name `xml:"hdr"`
	Body    partBody
}

// footerXML represents the structure of word/footer*.xml files (<w:ftr>).
type footerXML struct {
	XMLName xml.Name `xml:"ftr"`
	Body    partBody
}

// partBody collects ordered paragraphs and tables of a header/footer
// part.
type partBody struct {
	Elements []bodyElement
}

func (h *headerXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	h.XMLName = start.Name
	return h.Body.unmarshalChildren(d)
}

func (f *footerXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	f.XMLName = start.Name
	return f.Body.unmarshalChildren(d)
}

func (b *partBody) unmarshalChildren(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: &tbl})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// relationshipsXML represents _rels/*.rels files
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents a single relationship.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"`
}

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata)
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
}

// appPropertiesXML represents docProps/app.xml
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
}
