// Package format classifies the file formats the compare pipeline
// accepts and emits. Only the formats the pipeline can actually handle
// get names; everything else is Unsupported, and the façade reports the
// offending filename rather than guessing.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format is a compare input/output format.
type Format int

const (
	// Unsupported covers every format the pipeline cannot handle,
	// including PDF and non-Word OOXML packages.
	Unsupported Format = iota
	// DOCX is a Word (.docx) package, the only comparable input.
	DOCX
	// HTML is an output-only rendering of the redlined document.
	HTML
)

func (f Format) String() string {
	switch f {
	case DOCX:
		return "docx"
	case HTML:
		return "html"
	default:
		return "unsupported"
	}
}

// Detect classifies a filename by extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".html", ".htm":
		return HTML
	default:
		return Unsupported
	}
}

// Output resolves an output-format name from the compare request
// ("word" or "docx" for a Word package, "html" for HTML).
func Output(name string) Format {
	switch strings.ToLower(name) {
	case "word", "docx":
		return DOCX
	case "html", "htm":
		return HTML
	default:
		return Unsupported
	}
}

// zipMagic is the ZIP local-file header every OOXML package starts
// with.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// Sniff classifies stream content. A ZIP archive counts as DOCX only
// when it carries word-processing parts (the word/ prefix); other
// OOXML packages (spreadsheets, presentations) and everything else are
// Unsupported. Extension-less streams handed to the façade go through
// here before parsing.
func Sniff(r io.ReaderAt, size int64) Format {
	head := make([]byte, 4)
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unsupported
	}
	if n < 4 || !bytes.Equal(head[:4], zipMagic) {
		return Unsupported
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unsupported
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX
		}
	}
	return Unsupported
}

// SniffBytes is Sniff over an in-memory buffer.
func SniffBytes(data []byte) Format {
	return Sniff(bytes.NewReader(data), int64(len(data)))
}
