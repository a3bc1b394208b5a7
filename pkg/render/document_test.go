package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/mdblock"
	"github.com/yaklabco/refdeck/pkg/render"
)

func TestSegmentAndClassify_Kinds(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"# Singleton",
		"",
		"Ensures **one** instance.",
		"",
		"• lazy",
		"• thread safe",
		"",
		"| Op | Cost |",
		"|-|-|",
		"| get | O(1) |",
		"",
		"```swift",
		"let shared = Singleton()",
		"```",
	}, "\n")

	blocks := render.SegmentAndClassify(doc)
	require.Len(t, blocks, 5)

	assert.Equal(t, mdblock.Header{Text: "Singleton", Level: 1}, blocks[0].Kind)
	assert.Equal(t, mdblock.Paragraph{Text: "Ensures **one** instance."}, blocks[1].Kind)
	assert.Equal(t, mdblock.Bullet{Text: "lazy\n• thread safe"}, blocks[2].Kind)
	assert.Equal(t, mdblock.Table{Rows: [][]string{{"Op", "Cost"}, {"get", "O(1)"}}}, blocks[3].Kind)
	assert.Equal(t, mdblock.CodeBlock{Body: "let shared = Singleton()", Language: "swift"}, blocks[4].Kind)

	ids := map[string]bool{}
	for _, b := range blocks {
		assert.NotEmpty(t, b.ID)
		ids[b.ID] = true
	}
	assert.Len(t, ids, len(blocks))
}

func TestSegmentAndClassify_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render.SegmentAndClassify(""))
	assert.Empty(t, render.SegmentAndClassify("  \n\n\t\n"))
}

func TestSegmentAndClassify_Hints(t *testing.T) {
	t.Parallel()

	blocks := render.SegmentAndClassify("text\n\n```\nlet a = 1\n```",
		render.WithLineSpacing(4),
		render.WithLineNumbers(true),
		render.WithWidth(60),
	)
	require.Len(t, blocks, 2)

	for _, b := range blocks {
		assert.Equal(t, 4.0, b.Hints.LineSpacing)
		assert.True(t, b.Hints.LineNumbers)
		assert.Equal(t, 60, b.Hints.Width)
	}
	assert.Empty(t, blocks[0].Hints.Language)
	assert.Equal(t, "swift", blocks[1].Hints.Language, "detected from body")
}

func TestSegmentAndClassify_LanguageDetectionOff(t *testing.T) {
	t.Parallel()

	blocks := render.SegmentAndClassify("```\npackage main\n```", render.WithLanguageDetection(false))
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Hints.Language)

	blocks = render.SegmentAndClassify("```\npackage main\n```")
	require.Len(t, blocks, 1)
	assert.Equal(t, "go", blocks[0].Hints.Language)
}

func TestSegmentAndClassify_ConfiguredLanguageBeatsDetection(t *testing.T) {
	t.Parallel()

	doc := "```\nvar x int\n```\n\n```python\nx = 1\n```"
	blocks := render.SegmentAndClassify(doc, render.WithHighlight(highlight.Options{Language: "golang"}))
	require.Len(t, blocks, 2)

	assert.Equal(t, "go", blocks[0].Hints.Language)
	assert.Equal(t, "python", blocks[1].Hints.Language, "fence language still wins")
}

func TestHighlightCode(t *testing.T) {
	t.Parallel()

	tokens := render.HighlightCode("if (x) {")
	require.NotEmpty(t, tokens)
	assert.Equal(t, highlight.Token{Text: "if", Category: highlight.Keyword}, tokens[0])
	assert.Equal(t, "if (x) {", highlight.Line(tokens).Text())
}

func TestPipeline_HighlighterCache(t *testing.T) {
	t.Parallel()

	p := render.New(render.WithHighlight(highlight.Options{Language: "go"}))

	assert.Same(t, p.Highlighter(""), p.Highlighter("golang"))
	assert.Equal(t, "go", p.Highlighter("").Language())
	assert.Equal(t, "rust", p.Highlighter("rs").Language())
}

func TestPipeline_Disabled(t *testing.T) {
	t.Parallel()

	p := render.New(render.WithHighlight(highlight.Options{
		Patterns: map[highlight.Category]string{highlight.String: `"[`},
	}))
	assert.Equal(t, []highlight.Category{highlight.String}, p.Disabled())
	assert.Empty(t, render.New().Disabled())
}
