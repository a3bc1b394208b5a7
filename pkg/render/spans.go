package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/mdblock"
)

// Style is the visual role of a span. Renderers map styles onto concrete
// colors and weights.
type Style uint8

// Span styles.
const (
	StylePlain Style = iota
	StyleBold
	StyleHeader1
	StyleHeader2
	StyleHeader3
	StyleHeader4
	StyleHeader5
	StyleHeader6
	StyleBulletMarker
	StyleTableHeader
	StyleTableCell
	StyleCodeLabel
	StyleLineNumber
	StyleCodePlain
	StyleKeyword
	StyleType
	StyleString
	StyleNumber
	StyleComment
)

//nolint:gochecknoglobals // Read-only lookup table.
var styleNames = [...]string{
	StylePlain:        "plain",
	StyleBold:         "bold",
	StyleHeader1:      "header1",
	StyleHeader2:      "header2",
	StyleHeader3:      "header3",
	StyleHeader4:      "header4",
	StyleHeader5:      "header5",
	StyleHeader6:      "header6",
	StyleBulletMarker: "bullet-marker",
	StyleTableHeader:  "table-header",
	StyleTableCell:    "table-cell",
	StyleCodeLabel:    "code-label",
	StyleLineNumber:   "line-number",
	StyleCodePlain:    "code",
	StyleKeyword:      "keyword",
	StyleType:         "type",
	StyleString:       "string",
	StyleNumber:       "number",
	StyleComment:      "comment",
}

// String returns the style name.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// MarshalText encodes the style by name.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// HeaderStyle returns the style for a header level, clamped to 1..6.
func HeaderStyle(level int) Style {
	level = min(max(level, 1), mdblock.MaxHeaderLevel)
	return StyleHeader1 + Style(level-1)
}

// TokenStyle returns the style for a highlighted token category.
func TokenStyle(category highlight.Category) Style {
	switch category {
	case highlight.Keyword:
		return StyleKeyword
	case highlight.Type:
		return StyleType
	case highlight.String:
		return StyleString
	case highlight.Number:
		return StyleNumber
	case highlight.Comment:
		return StyleComment
	default:
		return StyleCodePlain
	}
}

// Span is a run of text in one style.
type Span struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Line is the spans of one output line.
type Line []Span

// Text returns the unstyled text of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Code block label text.
const (
	codeLabel     = "CODE"
	bulletPrefix  = "• "
	lineNumberSep = " "
)

// Lines converts a rendered block into styled lines.
//
// Paragraph lines become plain and bold spans. Each bullet item becomes one
// line led by a marker span. Each table row becomes one line holding one span
// per cell. A code block yields a label line followed by one line per body
// line, optionally led by a right-aligned line number span. Empty blocks
// yield nothing.
func (p *Pipeline) Lines(r Rendered) []Line {
	switch kind := r.Kind.(type) {
	case mdblock.Header:
		return []Line{{{Text: kind.Text, Style: HeaderStyle(kind.Level)}}}
	case mdblock.Paragraph:
		return paragraphLines(kind.Text)
	case mdblock.Bullet:
		return bulletLines(kind)
	case mdblock.Table:
		return tableLines(kind)
	case mdblock.CodeBlock:
		return p.codeLines(kind, r.Hints)
	default:
		return nil
	}
}

func inlineLine(text string) Line {
	spans := mdblock.InlineSpans(text)
	line := make(Line, 0, len(spans))
	for _, s := range spans {
		style := StylePlain
		if s.Bold {
			style = StyleBold
		}
		line = append(line, Span{Text: s.Text, Style: style})
	}
	return line
}

// paragraphLines finds bold runs over the whole paragraph, then cuts the
// spans at line breaks, so a run may cover several lines.
func paragraphLines(text string) []Line {
	out := []Line{{}}
	for _, span := range inlineLine(text) {
		for i, part := range strings.Split(span.Text, "\n") {
			if i > 0 {
				out = append(out, Line{})
			}
			if part != "" {
				last := len(out) - 1
				out[last] = append(out[last], Span{Text: part, Style: span.Style})
			}
		}
	}
	return out
}

func bulletLines(b mdblock.Bullet) []Line {
	items := b.Items()
	out := make([]Line, 0, len(items))
	for _, item := range items {
		line := Line{{Text: bulletPrefix, Style: StyleBulletMarker}}
		out = append(out, append(line, inlineLine(item)...))
	}
	return out
}

func tableLines(t mdblock.Table) []Line {
	out := make([]Line, 0, len(t.Rows))
	for i, row := range t.Rows {
		style := StyleTableCell
		if i == 0 {
			style = StyleTableHeader
		}
		line := make(Line, 0, len(row))
		for _, cell := range row {
			line = append(line, Span{Text: cell, Style: style})
		}
		out = append(out, line)
	}
	return out
}

func (p *Pipeline) codeLines(code mdblock.CodeBlock, hints Hints) []Line {
	lang := hints.Language
	hl := p.Highlighter(lang)
	if lang == "" {
		lang = hl.Language()
	}

	out := []Line{{
		{Text: codeLabel, Style: StyleCodeLabel},
		{Text: " ", Style: StylePlain},
		{Text: strings.ToUpper(lang), Style: StyleCodeLabel},
	}}

	body := hl.Lines(code.Body)
	digits := len(strconv.Itoa(len(body)))
	for i, tokens := range body {
		line := make(Line, 0, len(tokens)+1)
		if hints.LineNumbers {
			num := fmt.Sprintf("%*d", digits, i+1)
			line = append(line, Span{Text: num + lineNumberSep, Style: StyleLineNumber})
		}
		for _, tok := range tokens {
			line = append(line, Span{Text: tok.Text, Style: TokenStyle(tok.Category)})
		}
		out = append(out, line)
	}
	return out
}
