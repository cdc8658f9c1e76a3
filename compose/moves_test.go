package compose

import (
	"testing"

	"github.com/tsawler/redline/model"
)

func TestMoveDetection(t *testing.T) {
	orig := buildDoc(
		"this paragraph moves somewhere else",
		"alpha bravo charlie delta",
		"echo foxtrot golf hotel",
	)
	mod := buildDoc(
		"alpha bravo charlie delta",
		"echo foxtrot golf hotel",
		"this paragraph moves somewhere else",
	)

	opts := DefaultOptions()
	opts.DetectMoves = true

	out, stats := compare(orig, mod, opts)

	if stats.Moves != 5 {
		t.Errorf("moves = %d, want 5 words", stats.Moves)
	}
	if stats.Insertions != 0 || stats.Deletions != 0 {
		t.Errorf("moved paragraph still counted as insert/delete: %+v", stats)
	}

	var sawSource, sawTarget bool
	for _, p := range out.ParagraphsFlat() {
		if p.PlainText() != "this paragraph moves somewhere else" {
			continue
		}
		for _, r := range p.Runs {
			if r.Formatting.Color != "008000" {
				t.Errorf("moved run color = %q, want 008000", r.Formatting.Color)
			}
			if r.Formatting.Strikethrough {
				sawSource = true
			} else {
				sawTarget = true
			}
		}
	}
	if !sawSource {
		t.Error("no move-source paragraph in output")
	}
	if !sawTarget {
		t.Error("no move-target paragraph in output")
	}
}

func TestMoveDetectionOffByDefault(t *testing.T) {
	orig := buildDoc("this paragraph moves somewhere else", "alpha bravo charlie delta")
	mod := buildDoc("alpha bravo charlie delta", "this paragraph moves somewhere else")

	_, stats := compare(orig, mod, DefaultOptions())

	if stats.Moves != 0 {
		t.Errorf("moves = %d with detection off", stats.Moves)
	}
	if stats.Insertions == 0 || stats.Deletions == 0 {
		t.Errorf("expected insert+delete with detection off: %+v", stats)
	}
}

func TestMoveDetectionRequiresExactText(t *testing.T) {
	orig := buildDoc("this paragraph moves somewhere else", "alpha bravo charlie delta")
	mod := buildDoc("alpha bravo charlie delta", "this paragraph went somewhere unknown")

	opts := DefaultOptions()
	opts.DetectMoves = true

	_, stats := compare(orig, mod, opts)
	if stats.Moves != 0 {
		t.Errorf("near-miss text must not pair as a move: %+v", stats)
	}
}

func TestMoveDetectionIgnoresWhitespaceDifferences(t *testing.T) {
	orig := model.NewDocument()
	sec := model.NewSection()
	p := model.NewParagraph()
	p.AddRun("  spaced   out  paragraph ", model.RunFormatting{})
	sec.AddParagraph(p)
	q := model.NewParagraph()
	q.AddRun("unrelated anchor words here", model.RunFormatting{})
	sec.AddParagraph(q)
	orig.AddSection(sec)

	mod := buildDoc("unrelated anchor words here", "spaced out paragraph")

	opts := DefaultOptions()
	opts.DetectMoves = true

	_, stats := compare(orig, mod, opts)
	if stats.Moves != 3 {
		t.Errorf("moves = %d, want 3 (normalized texts match)", stats.Moves)
	}
}

func TestMoveDetectionEachParagraphPairsOnce(t *testing.T) {
	orig := buildDoc("duplicate line content", "anchor one two three")
	mod := buildDoc(
		"anchor one two three",
		"duplicate line content",
		"duplicate line content",
	)

	opts := DefaultOptions()
	opts.DetectMoves = true

	_, stats := compare(orig, mod, opts)

	// One pairing; the second inserted copy stays an insertion.
	if stats.Moves != 3 {
		t.Errorf("moves = %d, want 3", stats.Moves)
	}
	if stats.Insertions != 3 {
		t.Errorf("insertions = %d, want 3", stats.Insertions)
	}
}
