package redline

import (
	"fmt"
	"io"

	"github.com/tsawler/redline/compose"
	"github.com/tsawler/redline/diff"
	"github.com/tsawler/redline/docx"
	"github.com/tsawler/redline/format"
	"github.com/tsawler/redline/htmldoc"
	"github.com/tsawler/redline/model"
)

// Comparer provides a fluent interface for configuring and running one
// comparison. Each configuration method returns a new Comparer, making
// chains safe to share and reuse.
type Comparer struct {
	originalPath string
	modifiedPath string

	originalReader io.Reader
	modifiedReader io.Reader

	options Options
}

// clone creates a copy of the Comparer so each chain method returns an
// independent instance.
func (c *Comparer) clone() *Comparer {
	cp := *c
	cp.options = c.options.clone()
	return &cp
}

// DetectMoves enables move detection: paragraphs deleted in one place
// and inserted verbatim in another are marked as moved instead.
func (c *Comparer) DetectMoves() *Comparer {
	cp := c.clone()
	cp.options.DetectMoves = true
	return cp
}

// IgnoreCase compares text case-insensitively.
func (c *Comparer) IgnoreCase() *Comparer {
	cp := c.clone()
	cp.options.IgnoreCase = true
	return cp
}

// KeepWhitespace makes whitespace edits significant: whitespace runs
// become diff tokens instead of being collapsed.
func (c *Comparer) KeepWhitespace() *Comparer {
	cp := c.clone()
	cp.options.IgnoreWhitespace = false
	return cp
}

// IgnoreFormatting records that formatting differences are not of
// interest. The diff is text-only either way; the flag is carried for
// callers that inspect options.
func (c *Comparer) IgnoreFormatting() *Comparer {
	cp := c.clone()
	cp.options.IgnoreFormatting = true
	return cp
}

// Granularity selects the inline diff unit: word (default), character,
// sentence, or paragraph.
func (c *Comparer) Granularity(g diff.Granularity) *Comparer {
	cp := c.clone()
	cp.options.Granularity = g
	return cp
}

// Styles overrides the redline formatting overlays.
func (c *Comparer) Styles(s compose.RedlineStyles) *Comparer {
	cp := c.clone()
	cp.options.Styles = s
	return cp
}

// Options returns the comparer's current option set.
func (c *Comparer) Options() Options {
	return c.options.clone()
}

// Run executes the comparison and returns the redlined document model
// and statistics without writing any output.
func (c *Comparer) Run() (Result, error) {
	result, _, err := c.compute()
	return result, err
}

// To executes the comparison and writes the redlined document to the
// named file; the output format follows the file extension.
func (c *Comparer) To(outputPath string) (Result, error) {
	result, _, err := c.compute()
	if err != nil {
		return result, err
	}

	gen, ok := generatorFor(format.Detect(outputPath))
	if !ok {
		return fail(result, fmt.Errorf("%w: %s", ErrUnsupportedOutput, outputPath))
	}
	if err := gen.Generate(result.Redlined, outputPath); err != nil {
		return fail(result, fmt.Errorf("writing %s: %w", outputPath, err))
	}
	result.OutputPath = outputPath
	return result, nil
}

// ToWriter executes the comparison and writes the redlined document to
// w in the named output format ("word" or "html").
func (c *Comparer) ToWriter(w io.Writer, formatName string) (Result, error) {
	result, _, err := c.compute()
	if err != nil {
		return result, err
	}

	gen, ok := generatorFor(format.Output(formatName))
	if !ok {
		return fail(result, fmt.Errorf("%w: %s", ErrUnsupportedOutput, formatName))
	}
	if err := gen.GenerateWriter(result.Redlined, w); err != nil {
		return fail(result, fmt.Errorf("writing output: %w", err))
	}
	return result, nil
}

// compute loads both inputs and runs the align/diff/compose pipeline.
func (c *Comparer) compute() (Result, *model.Document, error) {
	var result Result

	original, warnings, err := loadInput(c.originalPath, c.originalReader)
	if err != nil {
		r, e := fail(result, fmt.Errorf("original document: %w", err))
		return r, nil, e
	}
	result.Warnings = append(result.Warnings, warnings...)

	modified, warnings, err := loadInput(c.modifiedPath, c.modifiedReader)
	if err != nil {
		r, e := fail(result, fmt.Errorf("modified document: %w", err))
		return r, nil, e
	}
	result.Warnings = append(result.Warnings, warnings...)

	trace := diff.Align(original.ParagraphsFlat(), modified.ParagraphsFlat(), c.options.IgnoreCase)
	redlined, stats := compose.Compose(original, modified, trace, c.options.composeOptions())

	result.Redlined = redlined
	result.Statistics = stats
	result.Success = true
	return result, redlined, nil
}

// loadInput materializes one input document from a path or stream.
func loadInput(path string, stream io.Reader) (*model.Document, []Warning, error) {
	if stream == nil && path == "" {
		return nil, nil, fmt.Errorf("no input specified")
	}

	if stream == nil && format.Detect(path) != format.DOCX {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}

	var (
		r   *docx.Reader
		err error
	)
	if stream != nil {
		// Streams are classified by content rather than by the hint:
		// a PDF or spreadsheet package handed in as a reader must be
		// rejected, not half-parsed.
		data, readErr := io.ReadAll(stream)
		if readErr != nil {
			return nil, nil, fmt.Errorf("reading input stream: %w", readErr)
		}
		if format.SniffBytes(data) != format.DOCX {
			name := path
			if name == "" {
				name = "stream"
			}
			return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, name)
		}
		r, err = docx.OpenBytes(data)
	} else {
		r, err = docx.Open(path)
	}
	if err != nil {
		return nil, nil, err
	}

	doc, err := r.Document()
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	for _, msg := range r.Warnings() {
		warnings = append(warnings, Warning{Code: "docx", Message: msg})
	}
	return doc, warnings, nil
}

// generatorFor picks the output generator for a format.
func generatorFor(f format.Format) (Generator, bool) {
	switch f {
	case format.DOCX:
		return docx.Generator{}, true
	case format.HTML:
		return htmldoc.Generator{}, true
	default:
		return nil, false
	}
}

func fail(result Result, err error) (Result, error) {
	result.Success = false
	result.ErrorMessage = err.Error()
	return result, err
}

// Interface conformance for the parser and generator seams.
var (
	_ Parser    = docx.Parser{}
	_ Generator = docx.Generator{}
	_ Generator = htmldoc.Generator{}
)
