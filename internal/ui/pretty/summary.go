package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
	"github.com/yaklabco/refdeck/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordDocument        = "document"
	wordDocuments       = "documents"
)

// CheckStats aggregates the diagnostics of a check run.
type CheckStats struct {
	Documents  int
	WithIssues int
	Errored    int
	Total      int
	BySeverity map[config.Severity]int
}

// NewCheckStats counts diagnostics per severity. perDocument holds one
// diagnostic list per processed document.
func NewCheckStats(stats runner.Stats, perDocument [][]dialect.Diagnostic) CheckStats {
	out := CheckStats{
		Documents:  stats.Processed,
		Errored:    stats.Errored,
		BySeverity: make(map[config.Severity]int),
	}
	for _, diags := range perDocument {
		if len(diags) > 0 {
			out.WithIssues++
		}
		for _, d := range diags {
			out.Total++
			out.BySeverity[d.Severity]++
		}
	}
	return out
}

// Failed reports whether any diagnostic is an error or a document could not
// be read.
func (c CheckStats) Failed() bool {
	return c.BySeverity[config.SeverityError] > 0 || c.Errored > 0
}

func pluralDocuments(n int) string {
	if n == 1 {
		return wordDocument
	}
	return wordDocuments
}

// FormatSummaryOneLine formats check statistics as a single line.
// Example: "4 issues (1 error, 3 warnings) in 2 documents".
func (s *Styles) FormatSummaryOneLine(stats CheckStats) string {
	if stats.Total == 0 {
		msg := s.Success.Render("No issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.Documents, pluralDocuments(stats.Documents)))
		if stats.Errored > 0 {
			msg += ", " + s.Failure.Render(fmt.Sprintf("%d unreadable", stats.Errored))
		}
		return msg + "\n"
	}

	issueWord := "issues"
	if stats.Total == 1 {
		issueWord = "issue"
	}

	var severityParts []string
	if n := stats.BySeverity[config.SeverityError]; n > 0 {
		severityParts = append(severityParts, s.Error.Render(plural(n, "error", "errors")))
	}
	if n := stats.BySeverity[config.SeverityWarning]; n > 0 {
		severityParts = append(severityParts, s.Warning.Render(plural(n, "warning", "warnings")))
	}
	if n := stats.BySeverity[config.SeverityInfo]; n > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", n)))
	}

	line := fmt.Sprintf("%d %s", stats.Total, issueWord)
	if len(severityParts) > 0 {
		line += " (" + strings.Join(severityParts, ", ") + ")"
	}
	line += fmt.Sprintf(" in %d %s", stats.WithIssues, pluralDocuments(stats.WithIssues))

	if stats.Errored > 0 {
		line += ", " + s.Failure.Render(fmt.Sprintf("%d unreadable", stats.Errored))
	}

	return line + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// FormatSummary formats check statistics as a summary block.
func (s *Styles) FormatSummary(stats CheckStats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SectionTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Documents checked:     " + s.Bold.Render(strconv.Itoa(stats.Documents)) + "\n")
	if stats.WithIssues > 0 {
		builder.WriteString("  Documents with issues: " + s.Failure.Render(strconv.Itoa(stats.WithIssues)) + "\n")
	}
	if stats.Errored > 0 {
		builder.WriteString("  Unreadable documents:  " + s.Failure.Render(strconv.Itoa(stats.Errored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Total issues:          " + s.Bold.Render(strconv.Itoa(stats.Total)) + "\n")
	if n := stats.BySeverity[config.SeverityError]; n > 0 {
		builder.WriteString("    Errors:              " + s.Error.Render(strconv.Itoa(n)) + "\n")
	}
	if n := stats.BySeverity[config.SeverityWarning]; n > 0 {
		builder.WriteString("    Warnings:            " + s.Warning.Render(strconv.Itoa(n)) + "\n")
	}
	if n := stats.BySeverity[config.SeverityInfo]; n > 0 {
		builder.WriteString("    Info:                " + s.Info.Render(strconv.Itoa(n)) + "\n")
	}

	builder.WriteString("\n")
	switch {
	case stats.Failed():
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case stats.BySeverity[config.SeverityWarning] > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
