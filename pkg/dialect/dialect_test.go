package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/pkg/catalog"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
)

func rulesOf(diags []dialect.Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Rule
	}
	return out
}

func TestCheck_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		rule   string
		line   int
		column int
	}{
		{name: "link", input: "see [docs](https://example.com)", rule: dialect.RuleLink, line: 1, column: 6},
		{name: "autolink", input: "<https://example.com>", rule: dialect.RuleLink, line: 1, column: 1},
		{name: "image", input: "![diagram](d.png)", rule: dialect.RuleImage, line: 1, column: 3},
		{name: "single emphasis", input: "an *important* word", rule: dialect.RuleEmphasis, line: 1, column: 5},
		{name: "ordered list", input: "intro\n\n1. one\n2. two", rule: dialect.RuleOrderedList, line: 3, column: 4},
		{name: "blockquote", input: "> quoted", rule: dialect.RuleBlockquote, line: 1, column: 3},
		{name: "html block", input: "<div>\nhi\n</div>", rule: dialect.RuleHTML, line: 1, column: 1},
		{name: "code span", input: "call `run()` first", rule: dialect.RuleCodeSpan, line: 1, column: 7},
		{name: "thematic break", input: "above\n\n---\n\nbelow", rule: dialect.RuleThematicBreak, line: 3, column: 1},
		{name: "indented code", input: "text\n\n    let x = 1", rule: dialect.RuleIndentedCode, line: 3, column: 5},
		{name: "unterminated fence", input: "# Title\n\n```swift\nlet x = 1", rule: dialect.RuleUnterminatedFence, line: 3, column: 1},
		{name: "unclosed bold", input: "a **b", rule: dialect.RuleUnclosedBold, line: 1, column: 3},
		{name: "unclosed bold after a pair", input: "**a** and **b", rule: dialect.RuleUnclosedBold, line: 1, column: 11},
		{name: "unclosed bold in bullet", input: "- **a", rule: dialect.RuleUnclosedBold, line: 1, column: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := dialect.Check("doc.md", tt.input, dialect.Options{})
			require.Len(t, diags, 1, "%v", diags)

			d := diags[0]
			assert.Equal(t, tt.rule, d.Rule)
			assert.Equal(t, "doc.md", d.Name)
			assert.Equal(t, tt.line, d.Line)
			assert.Equal(t, tt.column, d.Column)
			assert.NotEmpty(t, d.Message)
		})
	}
}

func TestCheck_InlineHTMLReportsEachTag(t *testing.T) {
	t.Parallel()

	diags := dialect.Check("doc.md", "a <b>bold</b> word", dialect.Options{})
	assert.Equal(t, []string{dialect.RuleHTML, dialect.RuleHTML}, rulesOf(diags))
}

func TestCheck_DialectIsClean(t *testing.T) {
	t.Parallel()

	input := "# Heading\n\n" +
		"Some **bold** and plain text.\n\n" +
		"- **Item**: one\n- two\n\n" +
		"• dot bullet\n\n" +
		"| A | B |\n|---|---|\n| 1 | 2 |\n\n" +
		"```swift\nlet a = [1, 2]\n```\n"

	assert.Empty(t, dialect.Check("doc.md", input, dialect.Options{}))
}

func TestCheck_CRLF(t *testing.T) {
	t.Parallel()

	diags := dialect.Check("doc.md", "line one\r\n\r\nsee `x`\r\n", dialect.Options{})
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Line)
	assert.Equal(t, 6, diags[0].Column)
}

func TestCheck_OrderedByPosition(t *testing.T) {
	t.Parallel()

	diags := dialect.Check("doc.md", "`a` then *b*\n\n> c", dialect.Options{})
	assert.Equal(t, []string{dialect.RuleCodeSpan, dialect.RuleEmphasis, dialect.RuleBlockquote}, rulesOf(diags))
}

func TestCheck_Disable(t *testing.T) {
	t.Parallel()

	input := "[a](b) and `c`"
	diags := dialect.Check("doc.md", input, dialect.Options{Disable: []string{dialect.RuleLink}})
	assert.Equal(t, []string{dialect.RuleCodeSpan}, rulesOf(diags))
}

func TestCheck_SeverityOverride(t *testing.T) {
	t.Parallel()

	diags := dialect.Check("doc.md", "[a](b)", dialect.Options{
		Severity: map[string]config.Severity{dialect.RuleLink: config.SeverityError},
	})
	require.Len(t, diags, 1)
	assert.Equal(t, config.SeverityError, diags[0].Severity)

	diags = dialect.Check("doc.md", "[a](b)", dialect.Options{})
	require.Len(t, diags, 1)
	assert.Equal(t, config.SeverityWarning, diags[0].Severity)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	off := false
	sev := "error"
	cfg := config.NewConfig()
	cfg.Rules[dialect.RuleCodeSpan] = config.RuleConfig{Enabled: &off}
	cfg.Rules[dialect.RuleLink] = config.RuleConfig{Severity: &sev}
	cfg.DisableRules = []string{dialect.RuleHTML}

	opts := dialect.OptionsFromConfig(cfg)
	assert.ElementsMatch(t, []string{dialect.RuleCodeSpan, dialect.RuleHTML}, opts.Disable)
	assert.Equal(t, map[string]config.Severity{dialect.RuleLink: config.SeverityError}, opts.Severity)

	assert.Empty(t, dialect.OptionsFromConfig(nil).Disable)
}

func TestRules(t *testing.T) {
	t.Parallel()

	rules := dialect.Rules()
	require.Len(t, rules, 11)
	for i, r := range rules {
		assert.NotEmpty(t, r.Description, r.ID)
		assert.True(t, r.DefaultSeverity.IsValid(), r.ID)
		if i > 0 {
			assert.Less(t, rules[i-1].ID, r.ID)
		}
	}

	r, ok := dialect.Lookup(dialect.RuleUnterminatedFence)
	require.True(t, ok)
	assert.Equal(t, config.SeverityError, r.DefaultSeverity)

	_, ok = dialect.Lookup("MD001")
	assert.False(t, ok)
}

func TestDefaultDeckIsClean(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)

	for _, r := range c.Records() {
		diags := dialect.Check(r.ID, r.Markdown(catalog.SectionAll), dialect.Options{})
		assert.Empty(t, diags, r.ID)
	}
}
