package model

import (
	"fmt"
	"strings"
	"time"
)

// Document represents a complete word-processing document.
type Document struct {
	Properties DocumentProperties

	Sections []*Section

	// Numbering definitions and instances, in document order.
	NumberingDefinitions []*NumberingDefinition
	NumberingInstances   []*NumberingInstance

	// Style definitions, in document order.
	Styles []*StyleDefinition
}

// DocumentProperties contains document-level metadata. All fields are
// optional; zero values mean absent.
type DocumentProperties struct {
	Title          string
	Author         string
	Subject        string
	Description    string
	Keywords       []string
	Created        time.Time
	Modified       time.Time
	Creator        string
	LastModifiedBy string

	DefaultFont     string
	DefaultFontSize float64 // points
}

// Clone returns a deep copy of the properties.
func (p DocumentProperties) Clone() DocumentProperties {
	cp := p
	cp.Keywords = append([]string(nil), p.Keywords...)
	return cp
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddSection appends a section to the document.
func (d *Document) AddSection(s *Section) *Section {
	d.Sections = append(d.Sections, s)
	return s
}

// NumberingDefinition returns the definition with the given id, or nil.
func (d *Document) NumberingDefinition(id int) *NumberingDefinition {
	for _, def := range d.NumberingDefinitions {
		if def.ID == id {
			return def
		}
	}
	return nil
}

// NumberingInstance returns the instance with the given id, or nil.
func (d *Document) NumberingInstance(id int) *NumberingInstance {
	for _, inst := range d.NumberingInstances {
		if inst.ID == id {
			return inst
		}
	}
	return nil
}

// Style returns the style definition with the given id, or nil.
func (d *Document) Style(id string) *StyleDefinition {
	for _, s := range d.Styles {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// ParagraphsFlat returns every paragraph in document order: each
// section's top-level paragraphs where they occur, with table-cell
// paragraphs enumerated row-major, cell-major, block-order. This is the
// sequence the paragraph aligner consumes.
func (d *Document) ParagraphsFlat() []*Paragraph {
	var out []*Paragraph
	for _, sec := range d.Sections {
		out = append(out, sec.Paragraphs()...)
	}
	return out
}

// PlainText returns the newline-joined plain text of every paragraph.
func (d *Document) PlainText() string {
	paras := d.ParagraphsFlat()
	parts := make([]string, 0, len(paras))
	for _, p := range paras {
		parts = append(parts, p.PlainText())
	}
	return strings.Join(parts, "\n")
}

// Validate reports referential problems: paragraphs referencing missing
// numbering instances and instances referencing missing definitions.
// Dangling references are tolerated on input. The DOCX generator
// synthesizes a default definition for an instance whose definition is
// missing; a paragraph whose instance is missing keeps its reference,
// and no instance is emitted for it.
func (d *Document) Validate() []string {
	var problems []string
	for _, inst := range d.NumberingInstances {
		if d.NumberingDefinition(inst.DefinitionID) == nil {
			problems = append(problems, fmt.Sprintf(
				"numbering instance %d references missing definition %d",
				inst.ID, inst.DefinitionID))
		}
	}
	for i, p := range d.ParagraphsFlat() {
		if p.Numbering == nil {
			continue
		}
		if d.NumberingInstance(p.Numbering.InstanceID) == nil {
			problems = append(problems, fmt.Sprintf(
				"paragraph %d references missing numbering instance %d",
				i, p.Numbering.InstanceID))
		}
	}
	return problems
}

// Clone returns a deep copy of the document. The copy shares no
// sub-objects with the original.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	cp := &Document{Properties: d.Properties.Clone()}
	for _, s := range d.Sections {
		cp.Sections = append(cp.Sections, s.Clone())
	}
	for _, def := range d.NumberingDefinitions {
		cp.NumberingDefinitions = append(cp.NumberingDefinitions, def.Clone())
	}
	for _, inst := range d.NumberingInstances {
		cp.NumberingInstances = append(cp.NumberingInstances, inst.Clone())
	}
	for _, st := range d.Styles {
		cp.Styles = append(cp.Styles, st.Clone())
	}
	return cp
}
