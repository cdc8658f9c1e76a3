package redline

import (
	"github.com/tsawler/redline/compose"
	"github.com/tsawler/redline/model"
)

// Result is the outcome of a comparison. Statistics are always
// present: zero when an input fails to load, and the computed counts
// when the compare succeeded but writing the output failed.
type Result struct {
	// OutputPath is set when a terminal operation wrote a file.
	OutputPath string
	// Redlined is the composed output document model.
	Redlined *model.Document
	// Statistics summarizes the differences found.
	Statistics compose.Statistics
	// Warnings are non-fatal conditions from either input.
	Warnings []Warning

	// Success is false when the compare failed; ErrorMessage then
	// carries the reason.
	Success      bool
	ErrorMessage string
}

// ChangePercentage returns the share of changed content in percent.
func (r Result) ChangePercentage() float64 {
	return r.Statistics.ChangePercentage()
}
