package pretty_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/catalog"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
)

func TestTableFormatter_FormatTable(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)

	out := formatter.FormatTable([][]dialect.Diagnostic{
		{{Name: "a.md", Rule: dialect.RuleLink, Message: "links are not rendered", Severity: config.SeverityWarning, Line: 1, Column: 6}},
		nil,
		{{Name: "b.md", Rule: dialect.RuleUnterminatedFence, Message: "fence is never closed", Severity: config.SeverityError, Line: 3, Column: 1}},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], "FILE")
	assert.Contains(t, lines[0], "RULE")
	assert.True(t, strings.HasPrefix(lines[1], "===="))
	assert.Contains(t, lines[2], "a.md")
	assert.Contains(t, lines[2], "1:6")
	assert.True(t, strings.HasPrefix(lines[3], "----"))
	assert.Contains(t, lines[4], "unterminated-fence")
	assert.True(t, strings.HasPrefix(lines[5], "===="))
}

func TestTableFormatter_Empty(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)

	assert.Empty(t, formatter.FormatTable(nil))
	assert.Empty(t, formatter.FormatTable([][]dialect.Diagnostic{nil, {}}))
}

func TestTableFormatter_TruncatesToWidth(t *testing.T) {
	t.Parallel()

	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)

	long := strings.Repeat("word ", 40)
	out := formatter.FormatTable([][]dialect.Diagnostic{
		{{Name: strings.Repeat("dir/", 20) + "deck.md", Rule: dialect.RuleHTML, Message: long, Severity: config.SeverityInfo, Line: 1, Column: 1}},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "...")
	assert.Contains(t, lines[2], "deck.md")
	assert.LessOrEqual(t, lipgloss.Width(lines[2]), 90)
}

func TestDiagnosticToTableRow(t *testing.T) {
	t.Parallel()

	row := pretty.DiagnosticToTableRow(dialect.Diagnostic{
		Name: "deck.md", Rule: dialect.RuleImage, Message: "m", Severity: config.SeverityWarning, Line: 4, Column: 2,
	})

	assert.Equal(t, pretty.TableRow{
		File: "deck.md", Location: "4:2", Message: "m", Rule: "image", Severity: config.SeverityWarning,
	}, row)
}

func TestFormatCatalog(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	deck := catalog.New(
		catalog.Record{ID: "singleton", Title: "Singleton", Kind: catalog.KindPattern, Category: "creational"},
		catalog.Record{ID: "stack", Title: "Stack", Kind: catalog.KindDataStructure, Category: "linear", TimeComplexity: "O(1)"},
	)

	out := styles.FormatCatalog(deck.ByCategory())

	assert.Contains(t, out, "Creational patterns")
	assert.Contains(t, out, "Linear data structures")
	assert.Contains(t, out, "singleton")
	assert.Contains(t, out, "O(1)")
	assert.Less(t, strings.Index(out, "Singleton"), strings.Index(out, "Stack"))
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatRules(dialect.Rules())

	for _, rule := range dialect.Rules() {
		assert.Contains(t, out, rule.ID)
	}
	assert.Contains(t, out, "SEVERITY")
}
