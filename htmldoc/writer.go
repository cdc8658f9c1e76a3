// Package htmldoc renders a document model as standalone HTML, with
// redline formatting mapped to inline styles.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/redline/model"
)

// Generator serializes the document model to HTML. It implements the
// compare façade's generator seam.
type Generator struct{}

// OutputFormat returns the format name this generator produces.
func (Generator) OutputFormat() string {
	return "html"
}

// Generate writes doc as HTML to the named file.
func (g Generator) Generate(doc *model.Document, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := g.GenerateWriter(doc, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// GenerateWriter writes doc as HTML to w. The tree is built as
// x/net/html nodes and rendered, so all escaping is handled by the
// renderer.
func (Generator) GenerateWriter(doc *model.Document, w io.Writer) error {
	root := buildTree(doc)
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

func buildTree(doc *model.Document) *html.Node {
	root := element(atom.Html, "html")

	head := element(atom.Head, "head")
	meta := element(atom.Meta, "meta")
	meta.Attr = append(meta.Attr, html.Attribute{Key: "charset", Val: "utf-8"})
	head.AppendChild(meta)
	title := element(atom.Title, "title")
	titleText := doc.Properties.Title
	if titleText == "" {
		titleText = "Document"
	}
	title.AppendChild(textNode(titleText))
	head.AppendChild(title)
	root.AppendChild(head)

	body := element(atom.Body, "body")
	for _, sec := range doc.Sections {
		for _, blk := range sec.Blocks {
			appendBlock(body, blk)
		}
	}
	root.AppendChild(body)

	docNode := &html.Node{Type: html.DocumentNode}
	doctype := &html.Node{Type: html.DoctypeNode, Data: "html"}
	docNode.AppendChild(doctype)
	docNode.AppendChild(root)
	return docNode
}

func appendBlock(parent *html.Node, blk model.Block) {
	switch blk.Kind {
	case model.BlockParagraph:
		parent.AppendChild(paragraphNode(blk.Paragraph))
	case model.BlockTable:
		parent.AppendChild(tableNode(blk.Table))
	}
}

// paragraphNode maps a paragraph to <p> or <h1>..<h6> and one <span>
// per run.
func paragraphNode(p *model.Paragraph) *html.Node {
	node := element(atom.P, "p")
	if lvl := p.Style.HeadingLevel; lvl >= 1 {
		if lvl > 6 {
			lvl = 6
		}
		tag := fmt.Sprintf("h%d", lvl)
		node = &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	}

	for _, r := range p.Runs {
		if r.Text == "" {
			continue
		}
		span := element(atom.Span, "span")
		if style := runStyle(r.Formatting); style != "" {
			span.Attr = append(span.Attr, html.Attribute{Key: "style", Val: style})
		}
		span.AppendChild(textNode(r.Text))
		node.AppendChild(span)
	}
	return node
}

// runStyle maps run formatting to an inline CSS declaration list.
func runStyle(f model.RunFormatting) string {
	var parts []string
	if f.Bold {
		parts = append(parts, "font-weight:bold")
	}
	if f.Italic {
		parts = append(parts, "font-style:italic")
	}
	var deco []string
	if f.Underline {
		deco = append(deco, "underline")
	}
	if f.Strikethrough {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		parts = append(parts, "text-decoration:"+strings.Join(deco, " "))
	}
	if f.Color != "" {
		parts = append(parts, "color:#"+f.Color)
	}
	if f.Highlight != "" {
		parts = append(parts, "background-color:"+f.Highlight)
	}
	if f.FontFamily != "" {
		parts = append(parts, "font-family:'"+f.FontFamily+"'")
	}
	if f.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%gpt", f.FontSize))
	}
	if f.Superscript {
		parts = append(parts, "vertical-align:super")
	} else if f.Subscript {
		parts = append(parts, "vertical-align:sub")
	}
	return strings.Join(parts, ";")
}

func tableNode(t *model.Table) *html.Node {
	table := element(atom.Table, "table")
	table.Attr = append(table.Attr, html.Attribute{Key: "border", Val: "1"})
	for _, row := range t.Rows {
		tr := element(atom.Tr, "tr")
		for _, cell := range row.Cells {
			td := element(atom.Td, "td")
			for _, blk := range cell.Blocks {
				appendBlock(td, blk)
			}
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}
	return table
}

func element(a atom.Atom, name string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: name}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
