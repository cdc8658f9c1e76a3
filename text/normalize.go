package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/redline/model"
)

var (
	wordRe        = regexp.MustCompile(`\S+`)
	wordOrSpaceRe = regexp.MustCompile(`\S+|\s+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	sentenceEndRe = regexp.MustCompile(`[.!?]+[\s]+|[.!?]+$`)
)

// Plain returns the paragraph's plain text: run texts concatenated in
// order, verbatim.
func Plain(p *model.Paragraph) string {
	return p.PlainText()
}

// Normalized returns the paragraph's text brought to NFC, trimmed, and
// with every whitespace run collapsed to a single space. Two paragraphs
// that render identically normalize identically.
func Normalized(p *model.Paragraph) string {
	return NormalizeString(p.PlainText())
}

// NormalizeString applies the same normalization to a raw string.
func NormalizeString(s string) string {
	s = norm.NFC.String(s)
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Fold lowercases ASCII letters for case-insensitive comparison. The
// mapping is byte-wise and locale-independent; non-ASCII runes pass
// through unchanged.
func Fold(s string) string {
	folded := []byte(s)
	for i, c := range folded {
		if c >= 'A' && c <= 'Z' {
			folded[i] = c + ('a' - 'A')
		}
	}
	return string(folded)
}

// Words returns the maximal non-whitespace runs of s, in order.
// Whitespace is discarded; the inline differ (diff.InlineDiff) reinserts
// single spaces between emitted tokens.
func Words(s string) []string {
	return wordRe.FindAllString(s, -1)
}

// WordsAndSpace tokenizes s into alternating word and whitespace tokens,
// preserving the exact whitespace. Used when whitespace edits are
// significant.
func WordsAndSpace(s string) []string {
	return wordOrSpaceRe.FindAllString(s, -1)
}

// WordCount returns the number of word tokens in s.
func WordCount(s string) int {
	return len(Words(s))
}

// Sentences splits s into sentences on terminator punctuation followed
// by whitespace. The terminator stays attached to its sentence. Text
// with no terminator is a single sentence.
func Sentences(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	last := 0
	for _, loc := range sentenceEndRe.FindAllStringIndex(s, -1) {
		seg := strings.TrimSpace(s[last:loc[1]])
		if seg != "" {
			out = append(out, seg)
		}
		last = loc[1]
	}
	if rest := strings.TrimSpace(s[last:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

// Characters returns the runes of s as single-rune strings.
func Characters(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
