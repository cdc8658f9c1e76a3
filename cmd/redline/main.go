// Package main provides the redline CLI: compare two word-processing
// documents and write a redlined result.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"

	"github.com/tsawler/redline"
	"github.com/tsawler/redline/diff"
)

// CLI defines the command-line interface using Kong.
var CLI struct {
	Original string `arg:"" help:"Path to the original document (.docx)" type:"existingfile"`
	Modified string `arg:"" help:"Path to the modified document (.docx)" type:"existingfile"`
	Output   string `arg:"" help:"Path for the redlined output (.docx or .html)"`

	Moves       bool   `name:"moves" help:"Detect moved paragraphs and mark them in green"`
	IgnoreCase  bool   `name:"ignore-case" help:"Compare text case-insensitively"`
	Whitespace  bool   `name:"whitespace" help:"Treat whitespace changes as significant"`
	Granularity string `name:"granularity" default:"word" enum:"word,character,sentence,paragraph" help:"Inline diff unit"`
	Styles      string `name:"styles" type:"existingfile" help:"JSON5 file overriding redline colors"`
	Quiet       bool   `name:"quiet" short:"q" help:"Suppress the summary"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("redline"),
		kong.Description("Compare two documents and generate a redlined output."),
		kong.UsageOnError(),
	)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "redline:", err)
		ctx.Exit(1)
	}
}

func run() error {
	cmp := redline.Compare(CLI.Original, CLI.Modified).
		Granularity(diff.ParseGranularity(CLI.Granularity))
	if CLI.Moves {
		cmp = cmp.DetectMoves()
	}
	if CLI.IgnoreCase {
		cmp = cmp.IgnoreCase()
	}
	if CLI.Whitespace {
		cmp = cmp.KeepWhitespace()
	}
	if CLI.Styles != "" {
		styles, err := loadStyles(CLI.Styles)
		if err != nil {
			return fmt.Errorf("loading styles: %w", err)
		}
		cmp = cmp.Styles(styles)
	}

	result, err := cmp.To(CLI.Output)
	if err != nil {
		return err
	}

	if !CLI.Quiet {
		printSummary(result)
	}
	return nil
}

func printSummary(result redline.Result) {
	out := termenv.NewOutput(os.Stdout)
	p := out.ColorProfile()

	blue := out.String(fmt.Sprintf("%d insertions", result.Statistics.Insertions)).
		Foreground(p.Color("4")).Bold()
	red := out.String(fmt.Sprintf("%d deletions", result.Statistics.Deletions)).
		Foreground(p.Color("1"))
	green := out.String(fmt.Sprintf("%d moves", result.Statistics.Moves)).
		Foreground(p.Color("2"))

	fmt.Printf("Wrote %s\n", result.OutputPath)
	fmt.Printf("%s, %s, %s, %d unchanged (%.1f%% changed)\n",
		blue, red, green, result.Statistics.Unchanged, result.ChangePercentage())

	if len(result.Warnings) > 0 {
		warn := out.String("warnings: " + redline.FormatWarnings(result.Warnings)).
			Foreground(p.Color("3"))
		fmt.Println(warn)
	}
}
