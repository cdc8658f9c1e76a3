// Package compose builds the redlined output document from an alignment
// trace. It clones the modified document's structural scaffolding
// (properties, numbering, styles, section layout) so the output looks
// like a legal redline rather than a textual dump, and rewrites
// paragraph runs with deletion, insertion, and move formatting.
//
// The composer is total on well-formed model inputs: it never fails,
// and it always populates statistics.
package compose
