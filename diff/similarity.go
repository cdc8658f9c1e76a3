package diff

import (
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/text"
)

// SimilarityThreshold is the minimum Jaccard similarity at which two
// paragraphs count as "the same paragraph, possibly edited". Heavy edits
// that keep at least half the word set still match; anything below is
// treated as a delete plus an insert.
const SimilarityThreshold = 0.5

// Similar reports whether two paragraphs should be aligned as a match.
// Two empty (or whitespace-only) paragraphs are similar; an empty and a
// non-empty paragraph are not.
func Similar(a, b *model.Paragraph, ignoreCase bool) bool {
	na, nb := text.Normalized(a), text.Normalized(b)
	if na == "" && nb == "" {
		return true
	}
	if na == "" || nb == "" {
		return false
	}
	return jaccard(na, nb, ignoreCase) >= SimilarityThreshold
}

// Score returns the Jaccard similarity of the two paragraphs' word sets,
// in [0, 1].
func Score(a, b *model.Paragraph, ignoreCase bool) float64 {
	na, nb := text.Normalized(a), text.Normalized(b)
	if na == "" && nb == "" {
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}
	return jaccard(na, nb, ignoreCase)
}

// jaccard computes |A ∩ B| / |A ∪ B| over the word token sets of the two
// normalized strings.
func jaccard(a, b string, ignoreCase bool) float64 {
	if ignoreCase {
		a, b = text.Fold(a), text.Fold(b)
	}

	setA := make(map[string]struct{})
	for _, w := range text.Words(a) {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, w := range text.Words(b) {
		setB[w] = struct{}{}
	}

	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
