package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/refdeck/pkg/catalog"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LOC, MESSAGE, RULE
	minFileWidth     = 20
	minLocWidth      = 8
	minMessageWidth  = 35
	minRuleWidth     = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "..."
)

// TableRow represents a single row in the diagnostic table.
type TableRow struct {
	File     string
	Location string
	Message  string
	Rule     string
	Severity config.Severity
}

// DiagnosticToTableRow converts a check diagnostic to a table row.
func DiagnosticToTableRow(diag dialect.Diagnostic) TableRow {
	return TableRow{
		File:     diag.Name,
		Location: fmt.Sprintf("%d:%d", diag.Line, diag.Column),
		Message:  diag.Message,
		Rule:     diag.Rule,
		Severity: diag.Severity,
	}
}

// TableFormatter formats diagnostics as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter. termWidth <= 0 uses a
// default of 100 columns.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	file    int
	loc     int
	message int
	rule    int
}

func (w columnWidths) total() int {
	return w.file + w.loc + w.message + w.rule + tablePadding*tableColumnCount
}

// FormatTable formats the diagnostics of each document as one table, with
// documents separated by a light rule. Documents without diagnostics are
// skipped.
func (t *TableFormatter) FormatTable(perDocument [][]dialect.Diagnostic) string {
	var groups [][]TableRow
	for _, diags := range perDocument {
		if len(diags) == 0 {
			continue
		}
		rows := make([]TableRow, 0, len(diags))
		for _, d := range diags {
			rows = append(rows, DiagnosticToTableRow(d))
		}
		groups = append(groups, rows)
	}
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths) + "\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator) + "\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths) + "\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator) + "\n")

	return builder.String()
}

// calculateColumnWidths determines column widths from content, shrinking the
// message and then the file column to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		loc:     minLocWidth,
		message: minMessageWidth,
		rule:    minRuleWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, runewidth.StringWidth(row.File))
			widths.loc = max(widths.loc, runewidth.StringWidth(row.Location))
			widths.message = max(widths.message, runewidth.StringWidth(row.Message))
			widths.rule = max(widths.rule, runewidth.StringWidth(row.Rule))
		}
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.message = max(minMessageWidth, widths.message-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := " " + pad("FILE", widths.file) + "  " + pad("LOC", widths.loc) + "  " +
		pad("MESSAGE", widths.message) + "  " + pad("RULE", widths.rule)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableBorder.Render(strings.Repeat(char, widths.total()))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := " " + pad(truncateFilePath(row.File, widths.file), widths.file) +
		"  " + pad(truncateString(row.Location, widths.loc), widths.loc) +
		"  " + pad(truncateString(row.Message, widths.message), widths.message) +
		"  " + pad(truncateString(row.Rule, widths.rule), widths.rule)

	return t.rowStyle(row.Severity).Render(content)
}

func (t *TableFormatter) rowStyle(severity config.Severity) lipgloss.Style {
	switch severity {
	case config.SeverityError:
		return t.styles.Error.UnsetBold()
	case config.SeverityWarning:
		return t.styles.Warning.UnsetBold()
	case config.SeverityInfo:
		return t.styles.Info.UnsetBold()
	default:
		return lipgloss.NewStyle()
	}
}

// pad right-pads s with spaces to width display cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// truncateString truncates a string to maxLen display cells, adding "..."
// if truncated.
func truncateString(str string, maxLen int) string {
	return runewidth.Truncate(str, maxLen, ellipsis)
}

// truncateFilePath truncates a file path, preserving the end (filename)
// rather than the beginning.
func truncateFilePath(path string, maxLen int) string {
	if runewidth.StringWidth(path) <= maxLen {
		return path
	}
	if maxLen <= len(ellipsis) {
		return runewidth.TruncateLeft(path, runewidth.StringWidth(path)-maxLen, "")
	}
	keep := maxLen - len(ellipsis)
	return ellipsis + runewidth.TruncateLeft(path, runewidth.StringWidth(path)-keep, "")
}

// newListTable builds a bordered lipgloss table with the shared header and
// cell styles.
func (s *Styles) newListTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			return s.TableCell
		})
}

// FormatCatalog lists catalog groups, one titled table per category.
func (s *Styles) FormatCatalog(groups []catalog.Group) string {
	var builder strings.Builder

	for i, group := range groups {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(s.SectionTitle.Render(groupTitle(group)) + "\n")
		builder.WriteString(s.FormatRecords(group.Records) + "\n")
	}

	return builder.String()
}

// FormatRecords lists records as an ID, title and time complexity table.
func (s *Styles) FormatRecords(records []catalog.Record) string {
	t := s.newListTable("ID", "TITLE", "TIME")
	for _, r := range records {
		t.Row(s.RecordID.Render(r.ID), r.Title, s.Complexity.Render(r.TimeComplexity))
	}
	return t.Render()
}

func groupTitle(g catalog.Group) string {
	category := g.Category
	if category == "" {
		category = "uncategorized"
	}
	kind := "patterns"
	if g.Kind == catalog.KindDataStructure {
		kind = "data structures"
	}
	return strings.ToUpper(category[:1]) + category[1:] + " " + kind
}

// FormatRules lists check rules with their default severity.
func (s *Styles) FormatRules(rules []dialect.Rule) string {
	t := s.newListTable("RULE", "SEVERITY", "DESCRIPTION")
	for _, r := range rules {
		t.Row(s.RecordID.Render(r.ID), s.FormatSeverity(r.DefaultSeverity), r.Description)
	}
	return t.Render()
}
