// Package model provides the in-memory representation of a word-processing
// document.
//
// This package defines the data structures that the parser populates, the
// compare pipeline reads, and the generators consume. It is rich enough to
// round-trip the subset of OOXML the comparison cares about: sections,
// paragraphs, runs, tables, styles, and numbering.
//
// # Document Structure
//
// The [Document] type owns everything:
//
//	doc := model.NewDocument()
//	sec := model.NewSection()
//	sec.Blocks = append(sec.Blocks, model.ParagraphBlock(para))
//	doc.AddSection(sec)
//
// Each [Section] contains an ordered list of [Block] values plus page
// layout in [SectionProperties]. A Block is a tagged variant holding
// either a [Paragraph] or a [Table]; consumers switch on Block.Kind
// rather than using interface dispatch.
//
// # Runs and Formatting
//
// A [Run] is a maximal span of paragraph text sharing one
// [RunFormatting] record. The redline constructors [ForDeletion],
// [ForInsertion], and [ForMove] synthesize the formatting overlays used
// by compare output: red strikethrough, blue bold, and green.
//
// # Numbering
//
// Numbered and bulleted lists are modeled the way OOXML stores them: a
// [NumberingDefinition] describes a multi-level list format, a
// [NumberingInstance] is a runtime counter referencing a definition, and
// a paragraph points at an instance by id through [NumberingInfo].
// References are by id, never by pointer.
//
// # Ownership
//
// Documents exclusively own their sections, definitions, and styles.
// Every type that holds pointers or slices has a deep Clone (the rest
// are plain values copied by assignment); cloned trees share nothing with their
// source, so a clone can be mutated or serialized concurrently with
// reads of the original.
//
// All lengths are in twips (1/1440 inch). Colors are six hex digits with
// no leading hash. Font sizes are points.
package model
