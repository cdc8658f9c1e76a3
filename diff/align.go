package diff

import "github.com/tsawler/redline/model"

// EntryKind classifies an alignment trace entry.
type EntryKind int

const (
	// Matched pairs an original paragraph with a modified paragraph.
	Matched EntryKind = iota
	// Inserted marks a paragraph present only in the modified document.
	Inserted
	// Deleted marks a paragraph present only in the original document.
	Deleted
)

func (k EntryKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Deleted:
		return "deleted"
	default:
		return "matched"
	}
}

// Entry is one step of the alignment trace, in top-to-bottom document
// order. OrigIndex is -1 for Inserted entries; ModIndex is -1 for
// Deleted entries. Score carries the similarity of Matched pairs.
type Entry struct {
	Kind      EntryKind
	OrigIndex int
	ModIndex  int
	Score     float64
}

// Align matches the original paragraph sequence against the modified
// one with a longest-common-subsequence over the fuzzy similarity
// relation, and returns the ordered trace of matches, insertions, and
// deletions.
//
// Time and space are O(m·n); documents are expected to fit in memory.
func Align(orig, mod []*model.Paragraph, ignoreCase bool) []Entry {
	m, n := len(orig), len(mod)

	// The similarity relation is consulted once per cell and again
	// during backtracking; memoize it.
	sim := make([]bool, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sim[i*n+j] = Similar(orig[i], mod[j], ignoreCase)
		}
	}
	similar := func(i, j int) bool { return sim[i*n+j] }

	// Classic LCS table.
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if similar(i-1, j-1) {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] >= lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	// Backtrack. Emission is in reverse order; on ties the insert arm
	// wins (>=) so insertions read before deletions top-to-bottom.
	var trace []Entry
	i, j := m, n
	for i > 0 || j > 0 {
		if i > 0 && j > 0 && similar(i-1, j-1) {
			trace = append(trace, Entry{
				Kind:      Matched,
				OrigIndex: i - 1,
				ModIndex:  j - 1,
				Score:     Score(orig[i-1], mod[j-1], ignoreCase),
			})
			i--
			j--
			continue
		}
		if j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]) {
			trace = append(trace, Entry{Kind: Inserted, OrigIndex: -1, ModIndex: j - 1})
			j--
		} else {
			trace = append(trace, Entry{Kind: Deleted, OrigIndex: i - 1, ModIndex: -1})
			i--
		}
	}

	// Reverse into document order.
	for a, b := 0, len(trace)-1; a < b; a, b = a+1, b-1 {
		trace[a], trace[b] = trace[b], trace[a]
	}
	return trace
}
