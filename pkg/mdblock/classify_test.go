package mdblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/pkg/mdblock"
)

func classifyOne(t *testing.T, input string) mdblock.Kind {
	t.Helper()

	blocks := mdblock.Segment(input)
	require.Len(t, blocks, 1)
	return mdblock.Classify(blocks[0])
}

func TestClassify_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  mdblock.Kind
	}{
		{
			name:  "fenced code",
			input: "```\nlet a = 1\n```",
			want:  mdblock.CodeBlock{Body: "let a = 1"},
		},
		{
			name:  "fenced code with language",
			input: "```Swift\nlet a = 1\n```",
			want:  mdblock.CodeBlock{Body: "let a = 1", Language: "swift"},
		},
		{
			name:  "header level one",
			input: "# Title",
			want:  mdblock.Header{Text: "Title", Level: 1},
		},
		{
			name:  "header level three",
			input: "###   Deep  ",
			want:  mdblock.Header{Text: "Deep", Level: 3},
		},
		{
			name:  "header level clamped",
			input: "######### Too deep",
			want:  mdblock.Header{Text: "Too deep", Level: 6},
		},
		{
			name:  "dot bullet",
			input: "• first point",
			want:  mdblock.Bullet{Text: "first point"},
		},
		{
			name:  "dash bullet with indent",
			input: "   - indented",
			want:  mdblock.Bullet{Text: "indented"},
		},
		{
			name:  "only one marker removed",
			input: "-- double",
			want:  mdblock.Bullet{Text: "- double"},
		},
		{
			name:  "table",
			input: "| A | B |\n|-|-|\n| 1 | 2 |",
			want:  mdblock.Table{Rows: [][]string{{"A", "B"}, {"1", "2"}}},
		},
		{
			name:  "paragraph with bold",
			input: "Plain text with **bold** word.",
			want:  mdblock.Paragraph{Text: "Plain text with **bold** word."},
		},
		{
			name:  "pipe not at start is paragraph",
			input: "a | b",
			want:  mdblock.Paragraph{Text: "a | b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, classifyOne(t, tt.input))
		})
	}
}

func TestClassify_BlankInputHasNoBlocks(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdblock.Segment(""))
}

func TestClassify_Empty(t *testing.T) {
	t.Parallel()

	kind := mdblock.Classify(mdblock.Block{Content: "   "})
	assert.Equal(t, mdblock.Empty{}, kind)
	assert.Equal(t, mdblock.KindEmpty, kind.KindName())
}

func TestClassify_CodeEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("single line fence strips markers", func(t *testing.T) {
		t.Parallel()

		kind := mdblock.Classify(mdblock.Block{Content: "```inline```"})
		code, ok := kind.(mdblock.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "inline", code.Body)
	})

	t.Run("unterminated fence keeps last line", func(t *testing.T) {
		t.Parallel()

		kind := classifyOne(t, "```\nline one\n\nline two")
		code, ok := kind.(mdblock.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "line one\n\nline two", code.Body)
	})

	t.Run("blank lines inside body preserved", func(t *testing.T) {
		t.Parallel()

		kind := classifyOne(t, "```\n\nx\n\n```")
		code, ok := kind.(mdblock.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "\nx\n", code.Body)
	})

	t.Run("fence wins over header", func(t *testing.T) {
		t.Parallel()

		kind := classifyOne(t, "```\n# not a header\n```")
		assert.Equal(t, mdblock.KindCode, kind.KindName())
	})
}

func TestBullet_Items(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single", text: "one", want: []string{"one"}},
		{name: "multiple", text: "one\n- two\n• three", want: []string{"one", "two", "three"}},
		{name: "continuation", text: "one\n  wraps here\n- two", want: []string{"one wraps here", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mdblock.Bullet{Text: tt.text}.Items())
		})
	}
}

func TestTable_Accessors(t *testing.T) {
	t.Parallel()

	table := mdblock.Table{Rows: [][]string{{"Op", "Cost"}, {"get", "O(1)", "extra"}, {"put"}}}

	assert.Equal(t, []string{"Op", "Cost"}, table.Header())
	assert.Len(t, table.Body(), 2)
	assert.Equal(t, 3, table.Columns())

	var empty mdblock.Table
	assert.Nil(t, empty.Header())
	assert.Nil(t, empty.Body())
	assert.Zero(t, empty.Columns())
}
