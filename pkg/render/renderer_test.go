package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refdeck/pkg/render"
)

func renderString(t *testing.T, format render.Format, text string, opts ...render.Option) string {
	t.Helper()

	var buf bytes.Buffer
	r, err := render.NewRenderer(render.Options{
		Writer: &buf,
		Format: format,
		Color:  "never",
	})
	require.NoError(t, err)

	doc := render.Document{Name: "doc.md", Blocks: render.SegmentAndClassify(text, opts...)}
	require.NoError(t, r.Render(context.Background(), []render.Document{doc}))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{input: "", want: render.FormatANSI},
		{input: "ansi", want: render.FormatANSI},
		{input: "plain", want: render.FormatPlain},
		{input: "text", want: render.FormatPlain},
		{input: "json", want: render.FormatJSON},
		{input: "html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := render.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := render.NewRenderer(render.Options{Format: "html"})
	require.Error(t, err)
}

func TestTextRenderer_Plain(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\nPlain text with **bold** word.\n\n• first point\n\n```swift\nlet a = 1\n```"
	out := renderString(t, render.FormatPlain, doc)

	assert.Equal(t, strings.Join([]string{
		"Title",
		"",
		"Plain text with bold word.",
		"",
		"• first point",
		"",
		"CODE SWIFT",
		"  let a = 1",
		"",
	}, "\n"), out)
}

func TestTextRenderer_NoColorWithNeverMode(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatANSI, "Some **bold** text\n\n```go\nfunc f() {}\n```")

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Some bold text")
	assert.Contains(t, out, "func f() {}")
}

func TestTextRenderer_Wrap(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatPlain, "aaa bbb ccc ddd", render.WithWidth(10))
	assert.Equal(t, "aaa bbb\nccc ddd\n", out)
}

func TestTextRenderer_BulletHangingIndent(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatPlain, "• aaa bbb ccc ddd", render.WithWidth(10))
	assert.Equal(t, "• aaa bbb\n  ccc ddd\n", out)
}

func TestTextRenderer_LineSpacing(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatPlain, "one\ntwo", render.WithLineSpacing(1))
	assert.Equal(t, "one\n\ntwo\n\n", out)
}

func TestTextRenderer_Table(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatPlain, "| A | B |\n|-|-|\n| 1 | 2 | 3 |")

	for _, cell := range []string{"A", "B", "1", "2", "3"} {
		assert.Contains(t, out, cell)
	}
	assert.NotContains(t, out, "|-|")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Greater(t, len(lines), 2, "border lines are drawn")
}

func TestTextRenderer_LineNumbers(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatPlain, "```go\nx := 1\ny := 2\n```", render.WithLineNumbers(true))
	assert.Contains(t, out, "  1 x := 1\n")
	assert.Contains(t, out, "  2 y := 2\n")
}

func TestTextRenderer_ShowNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r, err := render.NewRenderer(render.Options{Writer: &buf, Format: render.FormatPlain, ShowNames: true})
	require.NoError(t, err)

	docs := []render.Document{
		{Name: "a.md", Blocks: render.SegmentAndClassify("alpha")},
		{Name: "b.md", Blocks: render.SegmentAndClassify("beta")},
	}
	require.NoError(t, r.Render(context.Background(), docs))

	assert.Equal(t, "a.md\n\nalpha\n\nb.md\n\nbeta\n", buf.String())
}

func TestTextRenderer_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	r, err := render.NewRenderer(render.Options{Writer: &buf, Format: render.FormatPlain})
	require.NoError(t, err)

	err = r.Render(ctx, []render.Document{{Blocks: render.SegmentAndClassify("x")}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	out := renderString(t, render.FormatJSON, "# Title\n\n```swift\nlet a = 1\n```")

	var decoded struct {
		Version   string `json:"version"`
		Documents []struct {
			Name   string `json:"name"`
			Blocks []struct {
				ID    string            `json:"id"`
				Kind  string            `json:"kind"`
				Data  map[string]any    `json:"data"`
				Hints map[string]any    `json:"hints"`
				Lines []json.RawMessage `json:"lines"`
			} `json:"blocks"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Documents, 1)
	doc := decoded.Documents[0]
	assert.Equal(t, "doc.md", doc.Name)
	require.Len(t, doc.Blocks, 2)

	assert.Equal(t, "header", doc.Blocks[0].Kind)
	assert.Equal(t, "Title", doc.Blocks[0].Data["text"])
	assert.Equal(t, 1.0, doc.Blocks[0].Data["level"])

	code := doc.Blocks[1]
	assert.Equal(t, "code", code.Kind)
	assert.Equal(t, "let a = 1", code.Data["body"])
	assert.Equal(t, "swift", code.Hints["language"])
	require.Len(t, code.Lines, 2)
	assert.Contains(t, string(code.Lines[1]), `"keyword"`)
}
