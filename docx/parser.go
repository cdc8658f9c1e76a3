package docx

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/redline/model"
)

// Parser materializes DOCX packages into the document model. It
// implements the compare façade's parser seam.
type Parser struct{}

// SupportedExtensions returns the file extensions this parser accepts.
func (Parser) SupportedExtensions() []string {
	return []string{".docx"}
}

// CanParse reports whether the filename looks like a DOCX package.
func (Parser) CanParse(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".docx")
}

// Parse reads the named file into a document model.
func (Parser) Parse(filename string) (*model.Document, error) {
	r, err := Open(filename)
	if err != nil {
		return nil, err
	}
	return r.Document()
}

// ParseReader reads a DOCX package from a stream. The filename hint is
// unused; DOCX content is self-describing.
func (Parser) ParseReader(rd io.Reader, _ string) (*model.Document, error) {
	r, err := OpenReader(rd)
	if err != nil {
		return nil, err
	}
	return r.Document()
}

// Generator serializes the document model to DOCX packages. It
// implements the compare façade's generator seam.
type Generator struct{}

// OutputFormat returns the format name this generator produces.
func (Generator) OutputFormat() string {
	return "docx"
}

// Generate writes doc to the named file.
func (Generator) Generate(doc *model.Document, filename string) error {
	return Writer{}.WriteFile(doc, filename)
}

// GenerateWriter writes doc to w.
func (Generator) GenerateWriter(doc *model.Document, w io.Writer) error {
	return Writer{}.Write(doc, w)
}
