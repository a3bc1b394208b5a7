package highlight

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Default patterns for the non-word families.
const (
	commentPattern = `//.*`
	stringPattern  = `"[^"]*"`
	numberPattern  = `\b\d+(?:\.\d+)?\b`
)

// priority lists the claiming families in order. Comments are handled first
// and separately: they own the rest of the line.
//
//nolint:gochecknoglobals // Read-only lookup table.
var priority = []Category{Keyword, Type, String, Number}

// Options configures a Highlighter.
type Options struct {
	// Language selects the built-in keyword and type sets. Unknown or empty
	// values use DefaultLanguage.
	Language string

	// Keywords are extra keyword literals matched as whole words.
	Keywords []string

	// Types are extra type-name literals matched as whole words.
	Types []string

	// Patterns replaces the regular expression of a family. An empty pattern
	// turns the family off; one that does not compile disables it and is
	// reported by Disabled.
	Patterns map[Category]string
}

type family struct {
	category Category
	re       *regexp.Regexp

	// wholeWord rejects matches that touch a non-ASCII identifier rune,
	// which \b does not treat as a word character.
	wholeWord bool
}

// Highlighter classifies code lines. It is immutable once built and safe
// for concurrent use.
type Highlighter struct {
	language string
	comment  *regexp.Regexp
	families []family
	disabled []Category
}

// New builds a Highlighter. It never fails: a family whose pattern cannot be
// compiled contributes no matches and is reported by Disabled.
func New(opts Options) *Highlighter {
	lang := CanonicalLanguage(opts.Language)
	words := languages[lang]

	sources := map[Category]string{
		Comment: commentPattern,
		Keyword: wordPattern(append(slices.Clone(words.keywords), opts.Keywords...)),
		Type:    wordPattern(append(slices.Clone(words.types), opts.Types...)),
		String:  stringPattern,
		Number:  numberPattern,
	}
	for category, pattern := range opts.Patterns {
		if category == Plain {
			continue
		}
		sources[category] = pattern
	}

	h := &Highlighter{language: lang}

	if re, ok := h.compile(Comment, sources[Comment]); ok {
		h.comment = re
	}
	for _, category := range priority {
		if re, ok := h.compile(category, sources[category]); ok {
			_, overridden := opts.Patterns[category]
			h.families = append(h.families, family{
				category:  category,
				re:        re,
				wholeWord: category != String && !overridden,
			})
		}
	}

	return h
}

func (h *Highlighter) compile(category Category, pattern string) (*regexp.Regexp, bool) {
	if pattern == "" {
		return nil, false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		h.disabled = append(h.disabled, category)
		return nil, false
	}
	return re, true
}

// wordPattern matches any of the literal words as a whole word. Longer words
// are tried first so a shared prefix never shadows them.
func wordPattern(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	if len(quoted) == 0 {
		return ""
	}
	slices.SortFunc(quoted, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	quoted = slices.Compact(quoted)
	return `\b(?:` + strings.Join(quoted, "|") + `)\b`
}

// Language returns the canonical language whose word sets are in use.
func (h *Highlighter) Language() string {
	return h.language
}

// Disabled lists the families whose patterns failed to compile.
func (h *Highlighter) Disabled() []Category {
	return slices.Clone(h.disabled)
}

// Highlight classifies one line.
//
// Everything from the first comment match to the end of the line is a
// comment. Before it, keywords, types, strings and numbers are claimed in
// that order; a match touching any already-claimed byte is discarded.
// Unclaimed text becomes plain tokens.
func (h *Highlighter) Highlight(line string) Line {
	if line == "" {
		return Line{}
	}

	code, comment := line, ""
	if h.comment != nil {
		if loc := h.comment.FindStringIndex(line); loc != nil {
			code, comment = line[:loc[0]], line[loc[0]:]
		}
	}

	owner := make([]Category, len(code))
	for _, fam := range h.families {
		for _, loc := range fam.re.FindAllStringIndex(code, -1) {
			if loc[0] == loc[1] || claimed(owner[loc[0]:loc[1]]) {
				continue
			}
			if fam.wholeWord && !wordBounded(code, loc[0], loc[1]) {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				owner[i] = fam.category
			}
		}
	}

	out := materialize(code, owner)
	if comment != "" {
		out = append(out, Token{Text: comment, Category: Comment})
	}
	return out
}

// Lines highlights each line of a multi-line code body.
func (h *Highlighter) Lines(code string) []Line {
	lines := strings.Split(code, "\n")
	out := make([]Line, len(lines))
	for i, line := range lines {
		out[i] = h.Highlight(line)
	}
	return out
}

// wordBounded reports whether code[start:end] is not preceded or followed
// by an identifier rune.
func wordBounded(code string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(code[:start]); isIdentRune(r) {
			return false
		}
	}
	if end < len(code) {
		if r, _ := utf8.DecodeRuneInString(code[end:]); isIdentRune(r) {
			return false
		}
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func claimed(owner []Category) bool {
	return slices.ContainsFunc(owner, func(c Category) bool { return c != Plain })
}

// materialize walks byte owners in order, cutting a token at every change.
// Regex matches start and end on rune boundaries, so tokens stay valid UTF-8.
func materialize(code string, owner []Category) Line {
	out := Line{}
	start := 0
	for i := 1; i <= len(code); i++ {
		if i == len(code) || owner[i] != owner[start] {
			out = append(out, Token{Text: code[start:i], Category: owner[start]})
			start = i
		}
	}
	return out
}

//nolint:gochecknoglobals // Shared immutable default.
var defaultHighlighter = New(Options{})

// Highlight classifies one line with the default Swift word sets.
func Highlight(line string) Line {
	return defaultHighlighter.Highlight(line)
}
