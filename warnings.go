package redline

import "strings"

// Warning describes a non-fatal condition encountered during a compare:
// a dangling numbering reference, a skipped header part, and the like.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	if w.Code == "" {
		return w.Message
	}
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single display string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
