package main

import (
	"os"
	"regexp"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/tsawler/redline/compose"
)

// stylesFile is the JSON5 shape of a --styles file. Missing fields keep
// their defaults.
type stylesFile struct {
	DeletionColor         *string `json:"deletion_color"`
	InsertionColor        *string `json:"insertion_color"`
	MoveColor             *string `json:"move_color"`
	InsertionBold         *bool   `json:"insertion_bold"`
	DeletionStrikethrough *bool   `json:"deletion_strikethrough"`
}

var colorRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// loadStyles reads a JSON5 styles file and overlays it on the defaults.
func loadStyles(path string) (compose.RedlineStyles, error) {
	styles := compose.DefaultRedlineStyles()

	data, err := os.ReadFile(path)
	if err != nil {
		return styles, err
	}

	var f stylesFile
	if err := json5.Unmarshal(data, &f); err != nil {
		return styles, err
	}

	if f.DeletionColor != nil {
		styles.DeletionColor = normalizeColor(*f.DeletionColor)
	}
	if f.InsertionColor != nil {
		styles.InsertionColor = normalizeColor(*f.InsertionColor)
	}
	if f.MoveColor != nil {
		styles.MoveColor = normalizeColor(*f.MoveColor)
	}
	if f.InsertionBold != nil {
		styles.InsertionBold = *f.InsertionBold
	}
	if f.DeletionStrikethrough != nil {
		styles.DeletionStrikethrough = *f.DeletionStrikethrough
	}
	return styles, nil
}

// normalizeColor strips a leading hash and uppercases; invalid values
// fall back to the deletion default rather than corrupting output.
func normalizeColor(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !colorRe.MatchString(s) {
		return compose.DefaultRedlineStyles().DeletionColor
	}
	return strings.ToUpper(s)
}
