package mdblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/refdeck/pkg/mdblock"
)

func TestParseTableRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "compact separator",
			input: "| A | B |\n|-|-|\n| 1 | 2 |",
			want:  [][]string{{"A", "B"}, {"1", "2"}},
		},
		{
			name:  "spaced and aligned separator",
			input: "| Op | Time |\n| --- | :---: |\n| get | O(1) |",
			want:  [][]string{{"Op", "Time"}, {"get", "O(1)"}},
		},
		{
			name:  "ragged rows",
			input: "| a | b | c |\n| 1 |\n| x | y |",
			want:  [][]string{{"a", "b", "c"}, {"1"}, {"x", "y"}},
		},
		{
			name:  "interior empty cell kept",
			input: "| a |  | c |",
			want:  [][]string{{"a", "", "c"}},
		},
		{
			name:  "blank lines dropped",
			input: "| a |\n\n   \n| b |",
			want:  [][]string{{"a"}, {"b"}},
		},
		{
			name:  "missing outer pipes",
			input: "| a | b\nc | d |",
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "row of pipes only is not a separator",
			input: "| a |\n|||",
			want:  [][]string{{"a"}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mdblock.ParseTableRows(tt.input))
		})
	}
}
