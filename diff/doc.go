// Package diff implements the two-level comparison engine: a fuzzy
// similarity relation over paragraphs, a longest-common-subsequence
// aligner that matches paragraphs between two document revisions, and a
// token-level inline differ for matched pairs.
//
// Every function here is pure computation over in-memory data and never
// fails. A single comparison is safe on any goroutine; concurrent
// comparisons over disjoint documents share no state.
package diff
