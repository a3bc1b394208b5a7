package dialect

import "sort"

// lineIndex maps byte offsets to 1-based line and column numbers.
type lineIndex []int

// buildLineIndex records the start offset of every line in src.
func buildLineIndex(src []byte) lineIndex {
	starts := lineIndex{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a byte offset to a 1-based line and column.
// Column counts bytes, not runes. Offsets past the end clamp to the last line.
func (idx lineIndex) position(offset int) (int, int) {
	if offset < 0 {
		return 1, 1
	}
	line := sort.Search(len(idx), func(i int) bool { return idx[i] > offset }) - 1
	return line + 1, offset - idx[line] + 1
}

// lineStart returns the offset of the given 1-based line.
func (idx lineIndex) lineStart(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(idx) {
		return idx[len(idx)-1]
	}
	return idx[line-1]
}
