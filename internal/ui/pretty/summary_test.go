package pretty

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/ldoc/pkg/builder"
)

func TestFormatFileLine(t *testing.T) {
	styles := NewStyles(false)

	t.Run("built file", func(t *testing.T) {
		line := styles.FormatFileLine(builder.FileOutcome{
			Source:  "docs/intro.ldoc",
			Output:  "build/intro.html",
			Title:   "Getting Started",
			Written: true,
		})

		assert.Equal(t, "docs/intro.ldoc -> build/intro.html (Getting Started)\n", line)
	})

	t.Run("unchanged file", func(t *testing.T) {
		line := styles.FormatFileLine(builder.FileOutcome{
			Source: "docs/intro.ldoc",
			Output: "build/intro.html",
			Title:  "Getting Started",
		})

		assert.Contains(t, line, "[unchanged]")
	})

	t.Run("failed file", func(t *testing.T) {
		line := styles.FormatFileLine(builder.FileOutcome{
			Source: "docs/bad.ldoc",
			Error:  errors.New("circular include"),
		})

		assert.Contains(t, line, "docs/bad.ldoc")
		assert.Contains(t, line, "failed")
		assert.Contains(t, line, "circular include")
	})
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := NewStyles(false)

	tests := []struct {
		name  string
		stats builder.Stats
		want  []string
	}{
		{
			"nothing found",
			builder.Stats{},
			[]string{"No source files found"},
		},
		{
			"all built",
			builder.Stats{FilesDiscovered: 3, FilesBuilt: 3},
			[]string{"built 3 files"},
		},
		{
			"single file",
			builder.Stats{FilesDiscovered: 1, FilesBuilt: 1},
			[]string{"built 1 file"},
		},
		{
			"with unchanged and failed",
			builder.Stats{FilesDiscovered: 5, FilesBuilt: 3, FilesUnchanged: 2, FilesFailed: 2},
			[]string{"built 3 files", "2 unchanged", "2 failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := styles.FormatSummaryOneLine(tt.stats)
			for _, want := range tt.want {
				assert.Contains(t, line, want)
			}
			assert.True(t, strings.HasSuffix(line, "\n"))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	styles := NewStyles(false)

	t.Run("success", func(t *testing.T) {
		block := styles.FormatSummary(builder.Stats{FilesDiscovered: 2, FilesBuilt: 2})

		assert.Contains(t, block, "Summary")
		assert.Contains(t, block, "Files discovered: 2")
		assert.Contains(t, block, "Files built:      2")
		assert.Contains(t, block, "Build succeeded")
		assert.NotContains(t, block, "Files failed")
	})

	t.Run("failure", func(t *testing.T) {
		block := styles.FormatSummary(builder.Stats{FilesDiscovered: 2, FilesBuilt: 1, FilesFailed: 1})

		assert.Contains(t, block, "Files failed:     1")
		assert.Contains(t, block, "Build failed")
	})

	t.Run("nothing to build", func(t *testing.T) {
		block := styles.FormatSummary(builder.Stats{})

		assert.Contains(t, block, "Nothing to build")
	})
}
