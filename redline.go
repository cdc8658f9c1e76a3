// Package redline compares two revisions of a word-processing document
// and produces a third document that marks insertions, deletions, and
// (optionally) moves — a legal-style redline.
//
// Basic usage:
//
//	result, err := redline.Compare("original.docx", "modified.docx").To("redline.docx")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Printf("%d insertions, %d deletions\n",
//	    result.Statistics.Insertions, result.Statistics.Deletions)
//
// With options:
//
//	result, err := redline.Compare("a.docx", "b.docx").
//	    DetectMoves().
//	    IgnoreCase().
//	    To("out.docx")
//
// For advanced use cases the lower-level docx, diff, and compose
// packages are also available.
package redline

import (
	"errors"
	"io"

	"github.com/tsawler/redline/model"
)

// Parser materializes documents from files or streams. The docx package
// provides the DOCX implementation.
type Parser interface {
	SupportedExtensions() []string
	CanParse(filename string) bool
	Parse(filename string) (*model.Document, error)
	ParseReader(r io.Reader, filenameHint string) (*model.Document, error)
}

// Generator serializes documents to files or streams. The docx and
// htmldoc packages provide implementations.
type Generator interface {
	OutputFormat() string
	Generate(doc *model.Document, filename string) error
	GenerateWriter(doc *model.Document, w io.Writer) error
}

// Error taxonomy surfaced by the façade. The diff/align/compose
// pipeline itself is total on well-formed inputs and never fails.
var (
	// ErrUnsupportedInput means no parser accepts the given file.
	ErrUnsupportedInput = errors.New("unsupported input format")
	// ErrUnsupportedOutput means no generator matches the requested
	// output format.
	ErrUnsupportedOutput = errors.New("unsupported output format")
)

// Compare starts a comparison of two document files. Configure the
// returned Comparer by chaining and finish with a terminal operation
// like To or Run.
func Compare(originalPath, modifiedPath string) *Comparer {
	return &Comparer{
		originalPath: originalPath,
		modifiedPath: modifiedPath,
		options:      defaultOptions(),
	}
}

// FromReaders starts a comparison of two already-open document streams.
// Stream content is sniffed for a word-processing package; the filename
// hints only improve error messages.
func FromReaders(original, modified io.Reader, originalHint, modifiedHint string) *Comparer {
	return &Comparer{
		originalReader: original,
		modifiedReader: modified,
		originalPath:   originalHint,
		modifiedPath:   modifiedHint,
		options:        defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
