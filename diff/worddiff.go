package diff

import (
	"strings"

	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/text"
)

// Granularity selects the token unit of the inline differ.
type Granularity int

const (
	GranularityWord Granularity = iota
	GranularityCharacter
	GranularitySentence
	GranularityParagraph
)

func (g Granularity) String() string {
	switch g {
	case GranularityCharacter:
		return "character"
	case GranularitySentence:
		return "sentence"
	case GranularityParagraph:
		return "paragraph"
	default:
		return "word"
	}
}

// ParseGranularity maps a name to a Granularity; unknown names yield
// word granularity.
func ParseGranularity(s string) Granularity {
	switch s {
	case "character":
		return GranularityCharacter
	case "sentence":
		return GranularitySentence
	case "paragraph":
		return GranularityParagraph
	default:
		return GranularityWord
	}
}

// SegmentKind classifies one inline diff segment.
type SegmentKind int

const (
	SegmentUnchanged SegmentKind = iota
	SegmentInserted
	SegmentDeleted
	SegmentMovedFrom
	SegmentMovedTo
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentInserted:
		return "inserted"
	case SegmentDeleted:
		return "deleted"
	case SegmentMovedFrom:
		return "movedFrom"
	case SegmentMovedTo:
		return "movedTo"
	default:
		return "unchanged"
	}
}

// Segment is a run of consecutive tokens sharing one diff disposition.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Result is the outcome of an inline diff over one matched paragraph
// pair. The counts are numbers of segments, not tokens.
type Result struct {
	Segments []Segment

	EntirelyInserted bool
	EntirelyDeleted  bool

	InsertionCount int
	DeletionCount  int
	UnchangedCount int
}

// InlineOptions configures the inline differ.
type InlineOptions struct {
	Granularity Granularity
	// IgnoreCase compares tokens case-insensitively; emitted segment
	// text keeps the modified document's casing.
	IgnoreCase bool
	// IgnoreWhitespace (the default) discards whitespace at
	// tokenization. When false, whitespace runs become tokens of their
	// own and survive verbatim in segment text.
	IgnoreWhitespace bool
}

// DefaultInlineOptions returns word-granularity, whitespace-ignoring
// options.
func DefaultInlineOptions() InlineOptions {
	return InlineOptions{Granularity: GranularityWord, IgnoreWhitespace: true}
}

// InlineDiff computes the inline diff between two paragraphs already
// known to be similar. It never fails.
func InlineDiff(orig, mod *model.Paragraph, opts InlineOptions) Result {
	origText := orig.PlainText()
	modText := mod.PlainText()

	var res Result
	switch {
	case origText == "" && modText == "":
		return res
	case origText == "":
		res.EntirelyInserted = true
		res.Segments = []Segment{{Text: modText, Kind: SegmentInserted}}
		res.InsertionCount = 1
		return res
	case modText == "":
		res.EntirelyDeleted = true
		res.Segments = []Segment{{Text: origText, Kind: SegmentDeleted}}
		res.DeletionCount = 1
		return res
	}

	a := tokensFor(origText, opts)
	b := tokensFor(modText, opts)

	cmp := tokenComparator(opts)
	groups := tokenDiff(a, b, cmp)

	spaceJoined := joinWithSpaces(opts)
	for _, g := range groups {
		var segText string
		if spaceJoined {
			segText = strings.Join(g.tokens, " ")
		} else {
			segText = strings.Join(g.tokens, "")
		}
		if segText == "" {
			continue
		}
		res.Segments = append(res.Segments, Segment{Text: segText, Kind: g.kind})
		switch g.kind {
		case SegmentInserted:
			res.InsertionCount++
		case SegmentDeleted:
			res.DeletionCount++
		default:
			res.UnchangedCount++
		}
	}

	if spaceJoined {
		// Each segment carries a trailing space so concatenation
		// reads "foo bar " + "baz"; the final segment is trimmed.
		for i := range res.Segments {
			res.Segments[i].Text += " "
		}
		if n := len(res.Segments); n > 0 {
			res.Segments[n-1].Text = strings.TrimSuffix(res.Segments[n-1].Text, " ")
		}
	}

	return res
}

// tokensFor tokenizes plain text per the configured granularity.
func tokensFor(s string, opts InlineOptions) []string {
	switch opts.Granularity {
	case GranularityCharacter:
		return text.Characters(s)
	case GranularitySentence:
		return text.Sentences(s)
	case GranularityParagraph:
		return []string{s}
	default:
		if opts.IgnoreWhitespace {
			return text.Words(s)
		}
		return text.WordsAndSpace(s)
	}
}

// joinWithSpaces reports whether segment text is built by joining tokens
// with single spaces (word and sentence granularity with whitespace
// ignored) or by verbatim concatenation.
func joinWithSpaces(opts InlineOptions) bool {
	switch opts.Granularity {
	case GranularityCharacter, GranularityParagraph:
		return false
	case GranularitySentence:
		return true
	default:
		return opts.IgnoreWhitespace
	}
}

func tokenComparator(opts InlineOptions) func(a, b string) bool {
	if opts.IgnoreCase {
		return func(a, b string) bool { return text.Fold(a) == text.Fold(b) }
	}
	return func(a, b string) bool { return a == b }
}

// tokenGroup is a maximal run of consecutive tokens with one
// disposition.
type tokenGroup struct {
	kind   SegmentKind
	tokens []string
}

// tokenDiff runs a longest-common-subsequence diff treating each token
// as one line, and groups the edit script into maximal same-kind runs
// with deletions emitted before insertions at replacement points.
func tokenDiff(a, b []string, equal func(x, y string) bool) []tokenGroup {
	m, n := len(a), len(b)
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if equal(a[i-1], b[j-1]) {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] >= lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	// Backtrack from the end. Taking the insertion arm on ties means
	// that once the script is reversed, deleted text precedes inserted
	// text at each replacement point.
	type op struct {
		kind  SegmentKind
		token string
	}
	var ops []op
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && equal(a[i-1], b[j-1]):
			ops = append(ops, op{SegmentUnchanged, b[j-1]})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			ops = append(ops, op{SegmentInserted, b[j-1]})
			j--
		default:
			ops = append(ops, op{SegmentDeleted, a[i-1]})
			i--
		}
	}
	for x, y := 0, len(ops)-1; x < y; x, y = x+1, y-1 {
		ops[x], ops[y] = ops[y], ops[x]
	}

	var groups []tokenGroup
	for _, o := range ops {
		if n := len(groups); n > 0 && groups[n-1].kind == o.kind {
			groups[n-1].tokens = append(groups[n-1].tokens, o.token)
			continue
		}
		groups = append(groups, tokenGroup{kind: o.kind, tokens: []string{o.token}})
	}
	return groups
}
