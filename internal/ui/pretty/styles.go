// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/mdblock"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Diagnostic components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Document text
	Text         lipgloss.Style
	Bold         lipgloss.Style
	Headers      [mdblock.MaxHeaderLevel]lipgloss.Style
	BulletMarker lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	// Code blocks
	CodeLabel  lipgloss.Style
	LineNumber lipgloss.Style
	Tokens     map[highlight.Category]lipgloss.Style

	// Catalog listing
	SectionTitle lipgloss.Style
	RecordID     lipgloss.Style
	Complexity   lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode and the default
// theme.
func NewStyles(colorEnabled bool) *Styles {
	return NewThemedStyles(colorEnabled, DefaultTheme)
}

// NewThemedStyles creates a new Styles whose code token colors come from the
// named theme. Unknown themes use DefaultTheme.
func NewThemedStyles(colorEnabled bool, theme string) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles(theme)
}

// Token returns the style for a highlighted token category.
func (s *Styles) Token(category highlight.Category) lipgloss.Style {
	if style, ok := s.Tokens[category]; ok {
		return style
	}
	return s.Text
}

// Header returns the style for a header level, clamped to 1..6.
func (s *Styles) Header(level int) lipgloss.Style {
	level = min(max(level, 1), mdblock.MaxHeaderLevel)
	return s.Headers[level-1]
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles(theme string) *Styles {
	return &Styles{
		// Severity colors
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		// Diagnostic components
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleID:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		// Document text
		Text: lipgloss.NewStyle(),
		Bold: lipgloss.NewStyle().Bold(true),
		Headers: [mdblock.MaxHeaderLevel]lipgloss.Style{
			lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("13")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			lipgloss.NewStyle().Bold(true),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		},
		BulletMarker: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		// Table styles
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Padding(0, 1),
		TableCell:   lipgloss.NewStyle().Padding(0, 1),
		TableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		// Code blocks
		CodeLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Tokens:     themeTokens(theme),

		// Catalog listing
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		RecordID:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Complexity:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		// Summary styles
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Misc
		Dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// newNoColorStyles creates styles with no color formatting. Padding is kept
// so table layout does not depend on the color mode.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	padded := lipgloss.NewStyle().Padding(0, 1)
	return &Styles{
		Error:        plain,
		Warning:      plain,
		Info:         plain,
		FilePath:     plain,
		Location:     plain,
		RuleID:       plain,
		Message:      plain,
		SourceLine:   plain,
		Caret:        plain,
		Text:         plain,
		Bold:         plain,
		Headers:      [mdblock.MaxHeaderLevel]lipgloss.Style{plain, plain, plain, plain, plain, plain},
		BulletMarker: plain,
		TableHeader:  padded,
		TableCell:    padded,
		TableBorder:  plain,
		CodeLabel:    plain,
		LineNumber:   plain,
		Tokens:       map[highlight.Category]lipgloss.Style{},
		SectionTitle: plain,
		RecordID:     plain,
		Complexity:   plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
