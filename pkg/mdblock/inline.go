package mdblock

import "regexp"

// boldPattern matches two asterisks, one or more non-asterisks, two asterisks.
var boldPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// InlineSpan is a run of paragraph or bullet text with its emphasis.
type InlineSpan struct {
	Text string
	Bold bool
}

// InlineSpans splits text into plain and bold runs. Matches are taken left to
// right without nesting; the inner text of each **...** pair becomes a bold
// span and everything else stays plain. Markers without a closing pair are
// left as literal text.
func InlineSpans(text string) []InlineSpan {
	if text == "" {
		return nil
	}

	var spans []InlineSpan
	pos := 0

	for _, match := range boldPattern.FindAllStringSubmatchIndex(text, -1) {
		if match[0] > pos {
			spans = append(spans, InlineSpan{Text: text[pos:match[0]]})
		}
		spans = append(spans, InlineSpan{Text: text[match[2]:match[3]], Bold: true})
		pos = match[1]
	}

	if pos < len(text) {
		spans = append(spans, InlineSpan{Text: text[pos:]})
	}

	return spans
}

// PlainText joins span text, dropping the bold markers.
func PlainText(spans []InlineSpan) string {
	n := 0
	for _, s := range spans {
		n += len(s.Text)
	}
	buf := make([]byte, 0, n)
	for _, s := range spans {
		buf = append(buf, s.Text...)
	}
	return string(buf)
}
