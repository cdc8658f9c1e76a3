package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStyles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.json5")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStyles(t *testing.T) {
	path := writeStyles(t, `{
		// legal department palette
		deletion_color: "#990000",
		insertion_color: "000099",
		insertion_bold: false,
	}`)

	styles, err := loadStyles(path)
	require.NoError(t, err)

	assert.Equal(t, "990000", styles.DeletionColor)
	assert.Equal(t, "000099", styles.InsertionColor)
	assert.False(t, styles.InsertionBold)
	// Untouched fields keep their defaults.
	assert.Equal(t, "008000", styles.MoveColor)
	assert.True(t, styles.DeletionStrikethrough)
}

func TestLoadStylesInvalidColor(t *testing.T) {
	path := writeStyles(t, `{deletion_color: "not-a-color"}`)

	styles, err := loadStyles(path)
	require.NoError(t, err)
	assert.Equal(t, "FF0000", styles.DeletionColor)
}

func TestLoadStylesBadFile(t *testing.T) {
	path := writeStyles(t, `{deletion_color:`)

	_, err := loadStyles(path)
	assert.Error(t, err)
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "ABCDEF", normalizeColor("#abcdef"))
	assert.Equal(t, "123456", normalizeColor(" 123456 "))
	assert.Equal(t, "FF0000", normalizeColor("zzz"))
}
