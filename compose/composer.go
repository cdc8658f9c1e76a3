package compose

import (
	"github.com/tsawler/redline/diff"
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/text"
)

// RedlineStyles parameterizes the formatting overlays applied to
// redline runs. The zero value is not useful; start from
// DefaultRedlineStyles.
type RedlineStyles struct {
	DeletionColor         string
	InsertionColor        string
	MoveColor             string
	InsertionBold         bool
	DeletionStrikethrough bool
}

// DefaultRedlineStyles returns the documented defaults: red
// strikethrough deletions, blue bold insertions, green moves.
func DefaultRedlineStyles() RedlineStyles {
	return RedlineStyles{
		DeletionColor:         model.DeletionColor,
		InsertionColor:        model.InsertionColor,
		MoveColor:             model.MoveColor,
		InsertionBold:         true,
		DeletionStrikethrough: true,
	}
}

// forDeletion applies the deletion overlay to a copy of base.
func (s RedlineStyles) forDeletion(base *model.RunFormatting) model.RunFormatting {
	f := model.ForDeletion(base)
	f.Strikethrough = s.DeletionStrikethrough
	f.Color = s.DeletionColor
	return f
}

// forInsertion applies the insertion overlay to a copy of base.
func (s RedlineStyles) forInsertion(base *model.RunFormatting) model.RunFormatting {
	f := model.ForInsertion(base)
	f.Bold = s.InsertionBold
	f.Color = s.InsertionColor
	return f
}

// forMove applies the move overlay to a copy of base.
func (s RedlineStyles) forMove(base *model.RunFormatting, isSource bool) model.RunFormatting {
	f := model.ForMove(base, isSource)
	f.Color = s.MoveColor
	return f
}

// Options configures composition.
type Options struct {
	DetectMoves bool
	IgnoreCase  bool
	// IgnoreWhitespace discards whitespace at tokenization (default).
	IgnoreWhitespace bool
	// IgnoreFormatting is reserved: the diff is text-only, so
	// formatting differences never mark text as changed either way.
	IgnoreFormatting bool
	Granularity      diff.Granularity
	Styles           RedlineStyles
}

// DefaultOptions returns word-granularity options with default styles.
func DefaultOptions() Options {
	return Options{
		IgnoreWhitespace: true,
		Granularity:      diff.GranularityWord,
		Styles:           DefaultRedlineStyles(),
	}
}

func (o Options) inline() diff.InlineOptions {
	return diff.InlineOptions{
		Granularity:      o.Granularity,
		IgnoreCase:       o.IgnoreCase,
		IgnoreWhitespace: o.IgnoreWhitespace,
	}
}

// Compose builds the redlined document for the given alignment trace.
// The returned document exclusively owns every structural carry-over
// from the modified document; it shares nothing with either input.
func Compose(original, modified *model.Document, trace []diff.Entry, opts Options) (*model.Document, Statistics) {
	out := model.NewDocument()
	out.Properties = modified.Properties.Clone()
	for _, def := range modified.NumberingDefinitions {
		out.NumberingDefinitions = append(out.NumberingDefinitions, def.Clone())
	}
	for _, inst := range modified.NumberingInstances {
		out.NumberingInstances = append(out.NumberingInstances, inst.Clone())
	}
	for _, st := range modified.Styles {
		out.Styles = append(out.Styles, st.Clone())
	}

	sec := model.NewSection()
	if len(modified.Sections) > 0 {
		first := modified.Sections[0]
		sec.Properties = first.Properties
		sec.Headers = first.Headers.Clone()
		sec.Footers = first.Footers.Clone()
	}
	out.AddSection(sec)

	origFlat := original.ParagraphsFlat()
	modFlat := modified.ParagraphsFlat()

	stats := Statistics{
		OriginalParagraphs: len(origFlat),
		ModifiedParagraphs: len(modFlat),
	}

	moves := pairMoves(trace, origFlat, modFlat, opts)

	for idx, entry := range trace {
		switch entry.Kind {
		case diff.Deleted:
			src := origFlat[entry.OrigIndex]
			p := src.Clone()
			if moves.isSource(idx) {
				rewriteRuns(p, func(base *model.RunFormatting) model.RunFormatting {
					return opts.Styles.forMove(base, true)
				})
				stats.Moves += text.WordCount(src.PlainText())
			} else {
				rewriteRuns(p, opts.Styles.forDeletion)
				stats.Deletions += text.WordCount(src.PlainText())
			}
			sec.AddParagraph(p)

		case diff.Inserted:
			src := modFlat[entry.ModIndex]
			p := src.Clone()
			if moves.isTarget(idx) {
				rewriteRuns(p, func(base *model.RunFormatting) model.RunFormatting {
					return opts.Styles.forMove(base, false)
				})
				// The paired source entry already counted the words.
			} else {
				rewriteRuns(p, opts.Styles.forInsertion)
				stats.Insertions += text.WordCount(src.PlainText())
			}
			sec.AddParagraph(p)

		case diff.Matched:
			origPara := origFlat[entry.OrigIndex]
			modPara := modFlat[entry.ModIndex]
			res := diff.InlineDiff(origPara, modPara, opts.inline())
			sec.AddParagraph(composeMatched(modPara, res, opts.Styles))
			stats.Insertions += res.InsertionCount
			stats.Deletions += res.DeletionCount
			stats.Unchanged += res.UnchangedCount
		}
	}

	return out, stats
}

// composeMatched builds the output paragraph for a matched pair: the
// modified paragraph's style, numbering, and bookmarks carry over by
// value, and each inline segment becomes one run.
func composeMatched(modPara *model.Paragraph, res diff.Result, styles RedlineStyles) *model.Paragraph {
	p := model.NewParagraph()
	p.ID = modPara.ID
	p.Style = modPara.Style.Clone()
	if modPara.Numbering != nil {
		n := *modPara.Numbering
		p.Numbering = &n
	}
	p.BookmarkStarts = append([]string(nil), modPara.BookmarkStarts...)
	p.BookmarkEnds = append([]string(nil), modPara.BookmarkEnds...)

	for _, seg := range res.Segments {
		if seg.Text == "" {
			continue
		}
		var f model.RunFormatting
		switch seg.Kind {
		case diff.SegmentDeleted:
			f = styles.forDeletion(nil)
		case diff.SegmentInserted:
			f = styles.forInsertion(nil)
		case diff.SegmentMovedFrom:
			f = styles.forMove(nil, true)
		case diff.SegmentMovedTo:
			f = styles.forMove(nil, false)
		default:
			f = model.RunFormatting{}
		}
		p.AddRun(seg.Text, f)
	}
	return p
}

// rewriteRuns replaces every run's formatting with the overlay applied
// to its original formatting.
func rewriteRuns(p *model.Paragraph, overlay func(*model.RunFormatting) model.RunFormatting) {
	for _, r := range p.Runs {
		base := r.Formatting
		r.Formatting = overlay(&base)
	}
}
