package mdblock

import (
	"strings"

	"github.com/google/uuid"
)

// Segment splits a document into an ordered sequence of blocks.
//
// Blank lines separate blocks outside of fenced code; inside a fence every
// line is kept verbatim, blank or not. An opening fence always starts a new
// block and a closing fence always ends one. A fence left open at the end of
// input keeps all remaining lines in one block.
//
// Blank or whitespace-only input yields no blocks.
func Segment(document string) []Block {
	var (
		blocks      []Block
		current     strings.Builder
		inCodeBlock bool
	)

	emit := func() {
		if current.Len() == 0 {
			return
		}
		blocks = append(blocks, Block{ID: uuid.NewString(), Content: current.String()})
		current.Reset()
	}

	appendLine := func(line string) {
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}

	for _, line := range splitLines(document) {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, FenceMarker):
			if inCodeBlock {
				appendLine(line)
				emit()
				inCodeBlock = false
			} else {
				emit()
				current.WriteString(line)
				inCodeBlock = true
			}
		case inCodeBlock:
			appendLine(line)
		case trimmed == "":
			emit()
		default:
			appendLine(line)
		}
	}

	emit()

	return blocks
}

// splitLines splits on "\n" after folding "\r\n" and lone "\r" into "\n".
func splitLines(document string) []string {
	if document == "" {
		return nil
	}
	document = strings.ReplaceAll(document, "\r\n", "\n")
	document = strings.ReplaceAll(document, "\r", "\n")
	return strings.Split(document, "\n")
}

// Join reassembles blocks with a blank line between each pair. The result is
// the original document with blank-line runs collapsed.
func Join(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Content
	}
	return strings.Join(parts, "\n\n")
}
