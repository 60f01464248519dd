package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/ldoc/pkg/builder"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatFileLine formats one per-file build line.
// Example: "docs/intro.ldoc -> build/intro.html (Getting Started)".
func (s *Styles) FormatFileLine(outcome builder.FileOutcome) string {
	if outcome.Error != nil {
		return s.FilePath.Render(outcome.Source) + " " +
			s.Failure.Render("failed") + s.Dim.Render(": "+outcome.Error.Error()) + "\n"
	}

	line := s.FilePath.Render(outcome.Source) + " " +
		s.Arrow.Render("->") + " " + outcome.Output
	if outcome.Title != "" {
		line += " " + s.Title.Render("("+outcome.Title+")")
	}
	if !outcome.Written {
		line += " " + s.Status.Render("[unchanged]")
	}
	return line + "\n"
}

// FormatSummaryOneLine formats build statistics as a single line.
// Example: "built 3 files (1 unchanged), 1 failed".
func (s *Styles) FormatSummaryOneLine(stats builder.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No source files found") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesBuilt == 1 {
		fileWord = wordFile
	}

	var parts []string
	parts = append(parts, s.Success.Render(fmt.Sprintf("built %d %s", stats.FilesBuilt, fileWord)))

	if stats.FilesUnchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", stats.FilesUnchanged)))
	}

	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats build statistics as a summary block.
func (s *Styles) FormatSummary(stats builder.Stats) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(s.SummaryTitle.Render("Summary"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", summaryDividerWidth))
	sb.WriteString("\n")

	sb.WriteString("  Files discovered: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	sb.WriteString("  Files built:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesBuilt)) + "\n")

	if stats.FilesUnchanged > 0 {
		sb.WriteString("  Files unchanged:  " +
			s.Dim.Render(strconv.Itoa(stats.FilesUnchanged)) + "\n")
	}

	if stats.FilesFailed > 0 {
		sb.WriteString("  Files failed:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	sb.WriteString("\n")

	switch {
	case stats.FilesFailed > 0:
		sb.WriteString(s.Failure.Render("Build failed"))
	case stats.FilesDiscovered == 0:
		sb.WriteString(s.Warning.Render("Nothing to build"))
	default:
		sb.WriteString(s.Success.Render("Build succeeded"))
	}
	sb.WriteString("\n")

	return sb.String()
}
