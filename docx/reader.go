package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader *zip.Reader
	document  *documentXML
	styles    *stylesXML
	numbering *numberingXML
	rels      *relationshipsXML
	coreProps *corePropertiesXML
	appProps  *appPropertiesXML

	// warnings collected while materializing the model.
	warnings []string
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return OpenBytes(data)
}

// OpenReader reads a DOCX package from r. The whole stream is buffered
// in memory; ZIP archives need random access.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stream: %w", err)
	}
	return OpenBytes(data)
}

// OpenBytes reads a DOCX package from an in-memory buffer.
func OpenBytes(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}

	if err := r.validate(); err != nil {
		return nil, err
	}

	// Parse relationships first (needed for header/footer parts).
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles, numbering, and metadata are optional parts; a package
	// without them still parses.
	if err := r.parseStyles(); err != nil {
		r.styles = nil
	}
	if err := r.parseNumbering(); err != nil {
		r.numbering = nil
	}
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Warnings returns non-fatal problems found while reading, in the order
// they were encountered.
func (r *Reader) Warnings() []string {
	return r.warnings
}

func (r *Reader) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseRelationships parses the document relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		// Relationships file is optional
		return nil
	}

	r.rels = &relationshipsXML{}
	return xml.Unmarshal(data, r.rels)
}

// relTarget resolves a relationship id to its part name inside word/.
func (r *Reader) relTarget(id string) string {
	if r.rels == nil {
		return ""
	}
	for _, rel := range r.rels.Relationships {
		if rel.ID == id {
			return "word/" + rel.Target
		}
	}
	return ""
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	return nil
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() error {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		return err
	}

	r.styles = &stylesXML{}
	return xml.Unmarshal(data, r.styles)
}

// parseNumbering parses the numbering definitions file.
func (r *Reader) parseNumbering() error {
	data, err := r.getFileContent("word/numbering.xml")
	if err != nil {
		return err
	}

	r.numbering = &numberingXML{}
	return xml.Unmarshal(data, r.numbering)
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	r.coreProps = &corePropertiesXML{}
	xml.Unmarshal(data, r.coreProps)
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent("docProps/app.xml")
	if err != nil {
		return
	}

	r.appProps = &appPropertiesXML{}
	xml.Unmarshal(data, r.appProps)
}

// parseHeaderFooter parses a header or footer part by relationship id.
func (r *Reader) parseHeaderFooter(relID string, header bool) (*partBody, error) {
	target := r.relTarget(relID)
	if target == "" {
		return nil, fmt.Errorf("unresolved relationship %q", relID)
	}
	data, err := r.getFileContent(target)
	if err != nil {
		return nil, err
	}
	if header {
		var h headerXML
		if err := xml.Unmarshal(data, &h); err != nil {
			return nil, err
		}
		return &h.Body, nil
	}
	var f footerXML
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f.Body, nil
}
