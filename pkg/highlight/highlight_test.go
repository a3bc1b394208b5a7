package highlight_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/pkg/highlight"
)

// categoryOf returns the category of the token containing text, or fails.
func categoryOf(t *testing.T, line highlight.Line, text string) highlight.Category {
	t.Helper()

	for _, tok := range line {
		if tok.Text == text {
			return tok.Category
		}
	}
	t.Fatalf("no token %q in %v", text, line)
	return highlight.Plain
}

func TestHighlight_WholeWordKeywords(t *testing.T) {
	t.Parallel()

	line := highlight.Highlight("ifdef(x)")
	for _, tok := range line {
		assert.NotEqual(t, highlight.Keyword, tok.Category, "token %q", tok.Text)
	}

	line = highlight.Highlight("if (x) {")
	require.NotEmpty(t, line)
	assert.Equal(t, highlight.Token{Text: "if", Category: highlight.Keyword}, line[0])

	tests := []struct {
		name string
		line string
		word string
	}{
		{name: "accented suffix", line: "let ifé = 1", word: "ifé"},
		{name: "accented prefix", line: "let éif = 1", word: "éif"},
		{name: "type inside identifier", line: "let Intλ = 1", word: "Intλ"},
		{name: "number after letter", line: "let é1 = true", word: "é1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line := highlight.Highlight(tt.line)
			assert.Equal(t, highlight.Keyword, categoryOf(t, line, "let"))

			found := false
			for _, tok := range line {
				if tok.Category == highlight.Plain && strings.Contains(tok.Text, tt.word) {
					found = true
				}
			}
			assert.True(t, found, "%q should stay in one plain token: %v", tt.word, line)
		})
	}
}

func TestHighlight_CommentDominance(t *testing.T) {
	t.Parallel()

	line := highlight.Highlight(`let x = 1 // two ** not bold ** "str" 42`)

	require.NotEmpty(t, line)
	last := line[len(line)-1]
	assert.Equal(t, highlight.Comment, last.Category)
	assert.Equal(t, `// two ** not bold ** "str" 42`, last.Text)

	assert.Equal(t, highlight.Keyword, categoryOf(t, line, "let"))
	assert.Equal(t, highlight.Number, categoryOf(t, line, "1"))
}

func TestHighlight_Categories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		text string
		want highlight.Category
	}{
		{name: "keyword", line: "func run() {}", text: "func", want: highlight.Keyword},
		{name: "type", line: "var name: String", text: "String", want: highlight.Type},
		{name: "string", line: `print("hello")`, text: `"hello"`, want: highlight.String},
		{name: "integer", line: "x = 42", text: "42", want: highlight.Number},
		{name: "decimal", line: "x = 3.14", text: "3.14", want: highlight.Number},
		{name: "comment only", line: "// note", text: "// note", want: highlight.Comment},
		{name: "keyword inside string wins", line: `s = "if else"`, text: "if", want: highlight.Keyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, categoryOf(t, highlight.Highlight(tt.line), tt.text))
		})
	}
}

func TestHighlight_FirstClaimWins(t *testing.T) {
	t.Parallel()

	// The keyword "in" is claimed before the string family runs, so the
	// overlapping string match is discarded.
	line := highlight.Highlight(`for x in "a" {`)
	assert.Equal(t, highlight.Keyword, categoryOf(t, line, "in"))
	assert.Equal(t, highlight.String, categoryOf(t, line, `"a"`))

	line = highlight.Highlight(`"in"`)
	assert.Equal(t, highlight.Line{
		{Text: `"`, Category: highlight.Plain},
		{Text: "in", Category: highlight.Keyword},
		{Text: `"`, Category: highlight.Plain},
	}, line)
}

func TestHighlight_IdentifierDigitsAreNotNumbers(t *testing.T) {
	t.Parallel()

	for _, tok := range highlight.Highlight("let item2 = x1") {
		assert.NotEqual(t, highlight.Number, tok.Category, "token %q", tok.Text)
	}
}

func TestHighlight_UnclosedStringIsPlain(t *testing.T) {
	t.Parallel()

	line := highlight.Highlight(`let s = "open`)
	assert.Equal(t, `let s = "open`, line.Text())
	for _, tok := range line {
		assert.NotEqual(t, highlight.String, tok.Category)
	}
}

func TestHighlight_Lossless(t *testing.T) {
	t.Parallel()

	lines := []string{
		"",
		"   ",
		"class Foo: UIView {",
		`    let label = UILabel() // "quoted" 1.5`,
		`print("a", "b", 3, 4.0)`,
		"ifdef(x) && if_else",
		"数组 let 值 = 10 // 注释",
		"//",
		"\t\tguard let x = y else { return }",
	}

	for _, want := range lines {
		assert.Equal(t, want, highlight.Highlight(want).Text())
	}
}

func TestHighlight_EmptyLine(t *testing.T) {
	t.Parallel()

	assert.Empty(t, highlight.Highlight(""))
}

func TestNew_LanguageSelection(t *testing.T) {
	t.Parallel()

	goHL := highlight.New(highlight.Options{Language: "golang"})
	assert.Equal(t, "go", goHL.Language())
	assert.Equal(t, highlight.Keyword, categoryOf(t, goHL.Highlight("package main"), "package"))
	assert.Equal(t, highlight.Type, categoryOf(t, goHL.Highlight("var s string"), "string"))

	unknown := highlight.New(highlight.Options{Language: "cobol"})
	assert.Equal(t, highlight.DefaultLanguage, unknown.Language())
}

func TestNew_ExtraWords(t *testing.T) {
	t.Parallel()

	hl := highlight.New(highlight.Options{
		Keywords: []string{"async", "await"},
		Types:    []string{"Task"},
	})

	line := hl.Highlight("let t = Task { await work() }")
	assert.Equal(t, highlight.Type, categoryOf(t, line, "Task"))
	assert.Equal(t, highlight.Keyword, categoryOf(t, line, "await"))
}

func TestNew_BrokenPatternDisablesOnlyThatFamily(t *testing.T) {
	t.Parallel()

	hl := highlight.New(highlight.Options{
		Patterns: map[highlight.Category]string{highlight.Number: `(\d+`},
	})

	assert.Equal(t, []highlight.Category{highlight.Number}, hl.Disabled())

	line := hl.Highlight(`let x = 42 // done`)
	assert.Equal(t, `let x = 42 // done`, line.Text())
	assert.Equal(t, highlight.Keyword, categoryOf(t, line, "let"))
	assert.Equal(t, highlight.Comment, line[len(line)-1].Category)
	for _, tok := range line {
		assert.NotEqual(t, highlight.Number, tok.Category)
	}
}

func TestNew_EmptyPatternTurnsFamilyOff(t *testing.T) {
	t.Parallel()

	hl := highlight.New(highlight.Options{
		Patterns: map[highlight.Category]string{highlight.Comment: ""},
	})

	assert.Empty(t, hl.Disabled())
	for _, tok := range hl.Highlight("x // y") {
		assert.NotEqual(t, highlight.Comment, tok.Category)
	}
}

func TestHighlighter_Lines(t *testing.T) {
	t.Parallel()

	code := "let a = 1\n\nvar b = \"x\""
	lines := highlight.New(highlight.Options{}).Lines(code)

	require.Len(t, lines, 3)
	rebuilt := make([]string, len(lines))
	for i, l := range lines {
		rebuilt[i] = l.Text()
	}
	assert.Equal(t, code, strings.Join(rebuilt, "\n"))
}

func TestHighlighter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	hl := highlight.New(highlight.Options{Language: "swift"})
	const line = `if let v = dict["k"] { return 1 } // hit`

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if got := hl.Highlight(line).Text(); got != line {
					t.Errorf("got %q", got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestCategory_Names(t *testing.T) {
	t.Parallel()

	for _, c := range []highlight.Category{
		highlight.Plain, highlight.Keyword, highlight.Type,
		highlight.String, highlight.Number, highlight.Comment,
	} {
		parsed, err := highlight.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := highlight.ParseCategory("bogus")
	require.Error(t, err)
}
