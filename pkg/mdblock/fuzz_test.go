package mdblock_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/refdeck/pkg/mdblock"
)

func nonBlankLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// FuzzSegment checks that segmentation loses no content and is stable.
func FuzzSegment(f *testing.F) {
	seeds := []string{
		"",
		"hello",
		"# Title\n\nbody",
		"```\nlet a = 1\n```",
		"```\n\n\n```",
		"```\nunterminated\n\nstill code",
		"| A | B |\n|-|-|\n| 1 | 2 |",
		"• one\n• two\n\n- three",
		"a\r\n\r\nb",
		"text\n```go\nx\n```\nmore",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, doc string) {
		blocks := mdblock.Segment(doc)

		for _, b := range blocks {
			if b.Content == "" {
				t.Fatal("empty block emitted")
			}
			// Classification must never panic.
			_ = mdblock.Classify(b)
		}

		joined := mdblock.Join(blocks)

		got, want := nonBlankLines(joined), nonBlankLines(doc)
		if strings.Join(got, "\n") != strings.Join(want, "\n") {
			t.Fatalf("content lost:\nwant %q\ngot  %q", want, got)
		}

		again := mdblock.Segment(joined)
		if len(again) != len(blocks) {
			t.Fatalf("resegmenting changed block count: %d != %d", len(again), len(blocks))
		}
		for i := range again {
			if again[i].Content != blocks[i].Content {
				t.Fatalf("block %d changed: %q != %q", i, again[i].Content, blocks[i].Content)
			}
		}
	})
}

// FuzzInlineSpans checks that bold spans only ever drop their markers.
func FuzzInlineSpans(f *testing.F) {
	for _, seed := range []string{"", "**a**", "a **b** c", "***", "** x **y**"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, text string) {
		spans := mdblock.InlineSpans(text)

		var rebuilt strings.Builder
		for _, s := range spans {
			if s.Bold {
				rebuilt.WriteString("**" + s.Text + "**")
			} else {
				rebuilt.WriteString(s.Text)
			}
		}
		if rebuilt.String() != text {
			t.Fatalf("spans do not rebuild input: %q != %q", rebuilt.String(), text)
		}
	})
}
