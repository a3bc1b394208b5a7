package mdblock

import "strings"

// ParseTableRows splits pipe-table text into rows of trimmed cells.
//
// Blank lines and separator rows ("|---|:--:|") are dropped. Empty cells at
// the start or end of a row (produced by the outer pipes) are discarded;
// empty cells in the middle are kept so columns stay aligned.
func ParseTableRows(content string) [][]string {
	var rows [][]string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isSeparatorRow(line) {
			continue
		}
		rows = append(rows, splitCells(line))
	}

	return rows
}

func splitCells(line string) []string {
	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	start, end := 0, len(cells)
	for start < end && cells[start] == "" {
		start++
	}
	for end > start && cells[end-1] == "" {
		end--
	}

	return cells[start:end]
}

// isSeparatorRow reports a row made only of pipes, dashes, colons and spaces
// with at least one dash.
func isSeparatorRow(line string) bool {
	hasDash := false
	for _, r := range line {
		switch r {
		case '-':
			hasDash = true
		case '|', ':', ' ', '\t':
		default:
			return false
		}
	}
	return hasDash
}
