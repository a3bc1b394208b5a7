package mdblock

import (
	"strings"
	"unicode"
)

// Bullet markers recognized at the start of a block.
const (
	bulletDot  = "•"
	bulletDash = "-"
)

// Classify selects the kind of a block. The first matching rule wins:
//
//  1. content starts with a fence: CodeBlock
//  2. content starts with '#': Header
//  3. trimmed content starts with '•' or '-': Bullet
//  4. trimmed content starts with '|': Table
//  5. trimmed content is empty: Empty
//  6. otherwise: Paragraph
//
//nolint:ireturn // Kind is a sealed sum type.
func Classify(block Block) Kind {
	content := block.Content
	trimmed := strings.TrimFunc(content, isHorizontalSpace)

	switch {
	case strings.HasPrefix(content, FenceMarker):
		return classifyCode(content)
	case strings.HasPrefix(content, "#"):
		return classifyHeader(content)
	case strings.HasPrefix(trimmed, bulletDot), strings.HasPrefix(trimmed, bulletDash):
		return Bullet{Text: bulletText(trimmed)}
	case strings.Contains(content, "|") && strings.HasPrefix(trimmed, "|"):
		return Table{Rows: ParseTableRows(content)}
	case strings.TrimSpace(content) == "":
		return Empty{}
	default:
		return Paragraph{Text: content}
	}
}

func classifyCode(content string) CodeBlock {
	lines := strings.Split(content, "\n")
	if len(lines) == 1 {
		return CodeBlock{Body: strings.ReplaceAll(content, FenceMarker, "")}
	}

	language := fenceLanguage(lines[0])

	body := lines[1:]
	// An unterminated fence keeps its last line.
	if isFence(body[len(body)-1]) {
		body = body[:len(body)-1]
	}

	return CodeBlock{Body: strings.Join(body, "\n"), Language: language}
}

func classifyHeader(content string) Header {
	rest := strings.TrimLeft(content, "#")
	level := min(len(content)-len(rest), MaxHeaderLevel)
	return Header{Text: strings.TrimFunc(rest, isHorizontalSpace), Level: level}
}

// bulletText strips exactly one leading bullet marker.
func bulletText(trimmed string) string {
	for _, marker := range []string{bulletDot, bulletDash} {
		if rest, ok := strings.CutPrefix(trimmed, marker); ok {
			return strings.TrimFunc(rest, isHorizontalSpace)
		}
	}
	return trimmed
}

// Items splits a bullet block into its individual points. A line that starts
// with a bullet marker begins a new item; any other line continues the
// previous one.
func (b Bullet) Items() []string {
	lines := strings.Split(b.Text, "\n")
	items := []string{strings.TrimSpace(lines[0])}

	for _, line := range lines[1:] {
		trimmed := strings.TrimFunc(line, isHorizontalSpace)
		if strings.HasPrefix(trimmed, bulletDot) || strings.HasPrefix(trimmed, bulletDash) {
			items = append(items, bulletText(trimmed))
			continue
		}
		last := len(items) - 1
		items[last] = strings.TrimSpace(items[last] + " " + trimmed)
	}

	return items
}

// fenceLanguage returns the first word of the info string on an opening fence.
func fenceLanguage(line string) string {
	info := strings.TrimPrefix(strings.TrimSpace(line), FenceMarker)
	info = strings.TrimLeft(info, "`")
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), FenceMarker)
}

// isHorizontalSpace reports spaces and tabs but not line breaks.
func isHorizontalSpace(r rune) bool {
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}
