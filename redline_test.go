package redline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/redline/compose"
	"github.com/tsawler/redline/diff"
	"github.com/tsawler/redline/docx"
	"github.com/tsawler/redline/model"
)

// writeTestDoc builds a one-section document from paragraph texts and
// writes it as a DOCX file under dir.
func writeTestDoc(t *testing.T, dir, name string, paragraphs ...string) string {
	t.Helper()

	doc := model.NewDocument()
	sec := model.NewSection()
	for _, text := range paragraphs {
		p := model.NewParagraph()
		if text != "" {
			p.AddRun(text, model.RunFormatting{})
		}
		sec.AddParagraph(p)
	}
	doc.AddSection(sec)

	path := filepath.Join(dir, name)
	require.NoError(t, docx.Writer{}.WriteFile(doc, path))
	return path
}

func TestCompareEndToEnd(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "original.docx",
		"The parties agree to the following terms.",
		"Payment is due within thirty days.",
		"This agreement is governed by state law.")
	mod := writeTestDoc(t, dir, "modified.docx",
		"The parties agree to the following terms.",
		"Payment is due within sixty days.",
		"This agreement is governed by state law.")
	out := filepath.Join(dir, "redline.docx")

	result, err := Compare(orig, mod).To(out)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, out, result.OutputPath)
	assert.Equal(t, 3, result.Statistics.OriginalParagraphs)
	assert.Equal(t, 1, result.Statistics.Insertions)
	assert.Equal(t, 1, result.Statistics.Deletions)

	// The written package must parse back with both revisions' words.
	parsed, err := docx.Parser{}.Parse(out)
	require.NoError(t, err)
	text := parsed.PlainText()
	assert.Contains(t, text, "thirty")
	assert.Contains(t, text, "sixty")
}

func TestCompareIdentity(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx", "Same text here.", "And here too.")
	mod := writeTestDoc(t, dir, "b.docx", "Same text here.", "And here too.")

	result, err := Compare(orig, mod).Run()
	require.NoError(t, err)

	assert.Zero(t, result.Statistics.Insertions)
	assert.Zero(t, result.Statistics.Deletions)
	for _, p := range result.Redlined.ParagraphsFlat() {
		for _, r := range p.Runs {
			assert.False(t, r.Formatting.Strikethrough, "run %q", r.Text)
			assert.Empty(t, r.Formatting.Color, "run %q", r.Text)
		}
	}
}

func TestCompareToHTML(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx", "Hello world")
	mod := writeTestDoc(t, dir, "b.docx", "Hello universe")
	out := filepath.Join(dir, "redline.html")

	result, err := Compare(orig, mod).To(out)
	require.NoError(t, err)
	assert.True(t, result.Success)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "line-through")
	assert.Contains(t, string(data), "universe")
}

func TestCompareToWriter(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx", "Hello world")
	mod := writeTestDoc(t, dir, "b.docx", "Hello universe")

	var buf bytes.Buffer
	result, err := Compare(orig, mod).ToWriter(&buf, "word")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.OutputPath)

	parsed, err := docx.Parser{}.ParseReader(&buf, "redline.docx")
	require.NoError(t, err)
	assert.Contains(t, parsed.PlainText(), "universe")
}

func TestCompareFromReaders(t *testing.T) {
	dir := t.TempDir()
	origPath := writeTestDoc(t, dir, "a.docx", "Stream original words")
	modPath := writeTestDoc(t, dir, "b.docx", "Stream modified words")

	origData := Must(os.ReadFile(origPath))
	modData := Must(os.ReadFile(modPath))

	result, err := FromReaders(
		bytes.NewReader(origData), bytes.NewReader(modData),
		"a.docx", "b.docx",
	).Run()
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Statistics.ModifiedParagraphs)
}

func TestCompareUnsupportedInput(t *testing.T) {
	dir := t.TempDir()
	mod := writeTestDoc(t, dir, "b.docx", "text")

	result, err := Compare(filepath.Join(dir, "scan.pdf"), mod).Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedInput)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)
}

func TestCompareUnsupportedOutput(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx", "text")
	mod := writeTestDoc(t, dir, "b.docx", "text")

	_, err := Compare(orig, mod).To(filepath.Join(dir, "out.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedOutput)
}

func TestCompareMissingFile(t *testing.T) {
	dir := t.TempDir()
	mod := writeTestDoc(t, dir, "b.docx", "text")

	result, err := Compare(filepath.Join(dir, "missing.docx"), mod).Run()
	require.Error(t, err)
	assert.False(t, result.Success)
}

func TestChainingDoesNotMutate(t *testing.T) {
	base := Compare("a.docx", "b.docx")
	withMoves := base.DetectMoves().IgnoreCase()

	assert.False(t, base.Options().DetectMoves)
	assert.False(t, base.Options().IgnoreCase)
	assert.True(t, withMoves.Options().DetectMoves)
	assert.True(t, withMoves.Options().IgnoreCase)
}

func TestCompareWithMoves(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx",
		"This clause moves to the end.",
		"Anchor paragraph one stays put.",
		"Anchor paragraph two stays put.")
	mod := writeTestDoc(t, dir, "b.docx",
		"Anchor paragraph one stays put.",
		"Anchor paragraph two stays put.",
		"This clause moves to the end.")

	result, err := Compare(orig, mod).DetectMoves().Run()
	require.NoError(t, err)
	assert.Equal(t, 6, result.Statistics.Moves)
	assert.Zero(t, result.Statistics.Insertions)
	assert.Zero(t, result.Statistics.Deletions)
}

func TestCompareCustomStyles(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx", "old words entirely removed")
	mod := writeTestDoc(t, dir, "b.docx", "new words entirely added instead")

	styles := compose.DefaultRedlineStyles()
	styles.DeletionColor = "880000"

	result, err := Compare(orig, mod).Styles(styles).Run()
	require.NoError(t, err)

	found := false
	for _, p := range result.Redlined.ParagraphsFlat() {
		for _, r := range p.Runs {
			if r.Formatting.Color == "880000" {
				found = true
			}
		}
	}
	assert.True(t, found, "custom deletion color not applied")
}

func TestCompareGranularity(t *testing.T) {
	dir := t.TempDir()
	orig := writeTestDoc(t, dir, "a.docx", "First sentence stays. Second sentence goes away.")
	mod := writeTestDoc(t, dir, "b.docx", "First sentence stays. A different closing thought.")

	result, err := Compare(orig, mod).Granularity(diff.GranularitySentence).Run()
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotZero(t, result.Statistics.Deletions)
	assert.NotZero(t, result.Statistics.Insertions)
}

func TestFormatWarnings(t *testing.T) {
	s := FormatWarnings([]Warning{
		{Code: "docx", Message: "first"},
		{Message: "second"},
	})
	assert.Equal(t, "docx: first; second", s)
}
