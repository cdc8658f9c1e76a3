package compose

import (
	"github.com/zeebo/blake3"

	"github.com/tsawler/redline/diff"
	"github.com/tsawler/redline/model"
	"github.com/tsawler/redline/text"
)

// movePairs records which trace entries were rewritten as moves.
// Indices are positions in the alignment trace.
type movePairs struct {
	sources map[int]bool
	targets map[int]bool
}

func (m movePairs) isSource(traceIdx int) bool { return m.sources[traceIdx] }
func (m movePairs) isTarget(traceIdx int) bool { return m.targets[traceIdx] }

// moveKey is the content identity used to pair a deleted paragraph with
// an inserted one: a blake3 hash of the normalized text (folded when
// comparing case-insensitively).
func moveKey(p *model.Paragraph, ignoreCase bool) [32]byte {
	s := text.Normalized(p)
	if ignoreCase {
		s = text.Fold(s)
	}
	return blake3.Sum256([]byte(s))
}

// pairMoves pairs Deleted-only and Inserted-only trace entries whose
// normalized texts match exactly. Pairing is greedy in document order
// and each paragraph participates in at most one move; empty paragraphs
// never pair. Returns empty sets when move detection is off.
func pairMoves(trace []diff.Entry, origFlat, modFlat []*model.Paragraph, opts Options) movePairs {
	pairs := movePairs{sources: map[int]bool{}, targets: map[int]bool{}}
	if !opts.DetectMoves {
		return pairs
	}

	// Unpaired deleted entries by content key, in document order.
	pending := make(map[[32]byte][]int)
	for idx, e := range trace {
		if e.Kind != diff.Deleted {
			continue
		}
		p := origFlat[e.OrigIndex]
		if text.Normalized(p) == "" {
			continue
		}
		key := moveKey(p, opts.IgnoreCase)
		pending[key] = append(pending[key], idx)
	}

	for idx, e := range trace {
		if e.Kind != diff.Inserted {
			continue
		}
		p := modFlat[e.ModIndex]
		if text.Normalized(p) == "" {
			continue
		}
		key := moveKey(p, opts.IgnoreCase)
		queue := pending[key]
		if len(queue) == 0 {
			continue
		}
		pairs.sources[queue[0]] = true
		pairs.targets[idx] = true
		pending[key] = queue[1:]
	}

	return pairs
}
