package pretty

import (
	"slices"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/refdeck/pkg/highlight"
)

// DefaultTheme has good contrast on dark backgrounds.
const DefaultTheme = "monokai"

// tokenTypes maps highlight categories onto the chroma token types whose
// theme entries color them.
//
//nolint:gochecknoglobals // Read-only lookup table.
var tokenTypes = map[highlight.Category]chroma.TokenType{
	highlight.Plain:   chroma.Text,
	highlight.Keyword: chroma.Keyword,
	highlight.Type:    chroma.KeywordType,
	highlight.String:  chroma.LiteralString,
	highlight.Number:  chroma.LiteralNumber,
	highlight.Comment: chroma.Comment,
}

// Themes returns the names of the available themes, sorted.
func Themes() []string {
	names := styles.Names()
	slices.Sort(names)
	return names
}

// HasTheme reports whether name is a registered theme.
func HasTheme(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// themeTokens builds one lipgloss style per token category from a chroma
// theme.
func themeTokens(theme string) map[highlight.Category]lipgloss.Style {
	chromaStyle := styles.Get(theme)
	if !HasTheme(theme) {
		chromaStyle = styles.Get(DefaultTheme)
	}
	if chromaStyle == nil {
		chromaStyle = styles.Fallback
	}

	out := make(map[highlight.Category]lipgloss.Style, len(tokenTypes))
	for category, tokenType := range tokenTypes {
		out[category] = entryStyle(chromaStyle.Get(tokenType))
	}
	return out
}

func entryStyle(entry chroma.StyleEntry) lipgloss.Style {
	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}
