package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
)

// FormatDiagnostic formats a single check diagnostic for terminal output.
// sourceLine is the offending line of the document, or "" to omit context.
func (s *Styles) FormatDiagnostic(diag dialect.Diagnostic, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(diag.Name) +
		s.Location.Render(fmt.Sprintf(":%d:%d", diag.Line, diag.Column))

	// Main line: location  severity  message  (rule)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.RuleID.Render("("+diag.Rule+")"),
	))

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker under
// the 1-based byte column. Tabs before the column are kept so the caret
// lines up in the terminal.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		prefix := line[:min(column-1, len(line))]
		var padding strings.Builder
		for _, r := range prefix {
			if r == '\t' {
				padding.WriteByte('\t')
			} else {
				padding.WriteByte(' ')
			}
		}
		builder.WriteString(indent + padding.String() + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
