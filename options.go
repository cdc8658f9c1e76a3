package redline

import (
	"github.com/tsawler/redline/compose"
	"github.com/tsawler/redline/diff"
)

// Options holds the comparison configuration carried by a Comparer.
type Options struct {
	// DetectMoves pairs identical deleted/inserted paragraphs as moves.
	DetectMoves bool
	// IgnoreWhitespace (default true) treats whitespace runs as
	// insignificant separators.
	IgnoreWhitespace bool
	// IgnoreCase compares text case-insensitively.
	IgnoreCase bool
	// IgnoreFormatting is reserved; the diff is text-only either way.
	IgnoreFormatting bool
	// Granularity selects the inline diff unit (default word).
	Granularity diff.Granularity
	// Styles parameterizes the redline formatting overlays.
	Styles compose.RedlineStyles
}

func defaultOptions() Options {
	return Options{
		IgnoreWhitespace: true,
		Granularity:      diff.GranularityWord,
		Styles:           compose.DefaultRedlineStyles(),
	}
}

// clone returns a copy so chained configuration never mutates an
// earlier Comparer.
func (o Options) clone() Options {
	return o
}

// composeOptions maps the façade options onto the composer's.
func (o Options) composeOptions() compose.Options {
	return compose.Options{
		DetectMoves:      o.DetectMoves,
		IgnoreCase:       o.IgnoreCase,
		IgnoreWhitespace: o.IgnoreWhitespace,
		IgnoreFormatting: o.IgnoreFormatting,
		Granularity:      o.Granularity,
		Styles:           o.Styles,
	}
}
