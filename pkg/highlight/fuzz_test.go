package highlight_test

import (
	"testing"
	"unicode/utf8"

	"github.com/yaklabco/refdeck/pkg/highlight"
)

// FuzzHighlight checks that highlighting is lossless and that a comment, when
// present, is always the final token.
func FuzzHighlight(f *testing.F) {
	seeds := []string{
		"",
		"if (x) {",
		"ifdef(x)",
		`let s = "a // b"`,
		"let x = 1 // two ** not bold **",
		`"""`,
		"3.14.15",
		"数 = 1",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	hl := highlight.New(highlight.Options{Keywords: []string{"a.b"}})

	f.Fuzz(func(t *testing.T, line string) {
		toks := hl.Highlight(line)

		if got := toks.Text(); got != line {
			t.Fatalf("not lossless: %q != %q", got, line)
		}

		for i, tok := range toks {
			if tok.Text == "" {
				t.Fatalf("empty token at %d", i)
			}
			if utf8.ValidString(line) && !utf8.ValidString(tok.Text) {
				t.Fatalf("token %d splits a rune: %q", i, tok.Text)
			}
			if tok.Category == highlight.Comment && i != len(toks)-1 {
				t.Fatalf("comment token %d is not last", i)
			}
		}
	})
}
