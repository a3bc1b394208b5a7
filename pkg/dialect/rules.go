package dialect

import (
	"cmp"
	"slices"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/mdblock"
)

// Rule IDs.
const (
	RuleLink              = "link"
	RuleImage             = "image"
	RuleEmphasis          = "emphasis"
	RuleOrderedList       = "ordered-list"
	RuleBlockquote        = "blockquote"
	RuleHTML              = "html"
	RuleCodeSpan          = "code-span"
	RuleThematicBreak     = "thematic-break"
	RuleIndentedCode      = "indented-code"
	RuleUnterminatedFence = "unterminated-fence"
	RuleUnclosedBold      = "unclosed-bold"
)

// Rule describes one dialect check. Node rules match goldmark AST nodes;
// scan rules inspect the raw text the way the block segmenter sees it.
type Rule struct {
	ID              string
	Description     string
	DefaultSeverity config.Severity

	message string
	node    func(ast.Node) bool
	scan    func(*document) []finding
}

func builtinRules() []Rule {
	return []Rule{
		{
			ID:              RuleLink,
			Description:     "Links and autolinks are shown as literal brackets and URLs.",
			DefaultSeverity: config.SeverityWarning,
			message:         "link is not rendered",
			node: func(n ast.Node) bool {
				switch n.(type) {
				case *ast.Link, *ast.AutoLink:
					return true
				}
				return false
			},
		},
		{
			ID:              RuleImage,
			Description:     "Images are shown as literal markup.",
			DefaultSeverity: config.SeverityWarning,
			message:         "image is not rendered",
			node:            isKind(ast.KindImage),
		},
		{
			ID:              RuleEmphasis,
			Description:     "Only **double-asterisk** bold is styled; single emphasis stays literal.",
			DefaultSeverity: config.SeverityWarning,
			message:         "single emphasis is not rendered; use **bold**",
			node: func(n ast.Node) bool {
				em, ok := n.(*ast.Emphasis)
				return ok && em.Level == 1
			},
		},
		{
			ID:              RuleOrderedList,
			Description:     "Numbered lists are shown as paragraphs; use - or • bullets.",
			DefaultSeverity: config.SeverityWarning,
			message:         "ordered list is not rendered as a list",
			node: func(n ast.Node) bool {
				list, ok := n.(*ast.List)
				return ok && list.IsOrdered()
			},
		},
		{
			ID:              RuleBlockquote,
			Description:     "Block quotes are shown with their > markers.",
			DefaultSeverity: config.SeverityWarning,
			message:         "block quote is not rendered",
			node:            isKind(ast.KindBlockquote),
		},
		{
			ID:              RuleHTML,
			Description:     "Raw HTML is shown as literal text.",
			DefaultSeverity: config.SeverityWarning,
			message:         "inline HTML is not rendered",
			node: func(n ast.Node) bool {
				switch n.(type) {
				case *ast.HTMLBlock, *ast.RawHTML:
					return true
				}
				return false
			},
		},
		{
			ID:              RuleCodeSpan,
			Description:     "Backtick code spans keep their backticks.",
			DefaultSeverity: config.SeverityInfo,
			message:         "code span is not rendered",
			node:            isKind(ast.KindCodeSpan),
		},
		{
			ID:              RuleThematicBreak,
			Description:     "Horizontal rules are shown as dashes or a bullet.",
			DefaultSeverity: config.SeverityWarning,
			message:         "thematic break is not rendered",
			node:            isKind(ast.KindThematicBreak),
		},
		{
			ID:              RuleIndentedCode,
			Description:     "Indented code is a paragraph; wrap code in ``` fences.",
			DefaultSeverity: config.SeverityWarning,
			message:         "indented code block is not highlighted; use a fenced block",
			node:            isKind(ast.KindCodeBlock),
		},
		{
			ID:              RuleUnterminatedFence,
			Description:     "A ``` fence left open swallows the rest of the document.",
			DefaultSeverity: config.SeverityError,
			scan:            scanUnterminatedFence,
		},
		{
			ID:              RuleUnclosedBold,
			Description:     "A ** marker without a partner is shown literally.",
			DefaultSeverity: config.SeverityWarning,
			scan:            scanUnclosedBold,
		},
	}
}

// Rules returns all built-in rules sorted by ID.
func Rules() []Rule {
	rules := builtinRules()
	slices.SortFunc(rules, func(a, b Rule) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return rules
}

// Lookup returns the rule with the given ID.
func Lookup(id string) (Rule, bool) {
	for _, rule := range builtinRules() {
		if rule.ID == id {
			return rule, true
		}
	}
	return Rule{}, false
}

func isKind(kind ast.NodeKind) func(ast.Node) bool {
	return func(n ast.Node) bool {
		return n.Kind() == kind
	}
}

// offsetOf returns the byte offset where n begins in the source. Nodes that
// carry no segment of their own, like thematic breaks, are placed on the
// first non-blank line after their previous sibling.
func (d *document) offsetOf(n ast.Node) int {
	if off := nodeStart(n); off >= 0 {
		return off
	}

	from := 0
	if prev := n.PreviousSibling(); prev != nil {
		if end := nodeEnd(prev); end > 0 {
			line, _ := d.lines.position(end - 1)
			from = d.lines.lineStart(line + 1)
		}
	} else if parent := n.Parent(); parent != nil {
		if start := nodeStart(parent); start >= 0 {
			line, _ := d.lines.position(start)
			from = d.lines.lineStart(line)
		}
	}

	for from < len(d.src) && (d.src[from] == '\n' || d.src[from] == ' ' || d.src[from] == '\t') {
		from++
	}
	return from
}

// nodeStart returns the first source offset covered by n or its children,
// or -1 when none is recorded.
func nodeStart(n ast.Node) int {
	switch v := n.(type) {
	case *ast.Text:
		return v.Segment.Start
	case *ast.RawHTML:
		if v.Segments.Len() > 0 {
			return v.Segments.At(0).Start
		}
	}

	// Inline nodes panic on Lines.
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := nodeStart(c); off >= 0 {
			return off
		}
	}
	return -1
}

// nodeEnd returns the last source offset covered by n, or -1.
func nodeEnd(n ast.Node) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(n.Lines().Len() - 1).Stop
	}
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Stop
	}
	for c := n.LastChild(); c != nil; c = c.PreviousSibling() {
		if off := nodeEnd(c); off >= 0 {
			return off
		}
	}
	return -1
}

// scanUnterminatedFence follows the segmenter's fence toggling and reports
// an opening fence that is never closed.
func scanUnterminatedFence(d *document) []finding {
	open := -1
	offset := 0
	for _, line := range strings.Split(d.text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), mdblock.FenceMarker) {
			if open >= 0 {
				open = -1
			} else {
				open = offset + strings.Index(line, mdblock.FenceMarker)
			}
		}
		offset += len(line) + 1
	}
	if open < 0 {
		return nil
	}
	return []finding{{offset: open, message: "code fence is never closed"}}
}

// scanUnclosedBold reports paragraphs and bullets that still contain a **
// marker once every matched pair has been consumed.
func scanUnclosedBold(d *document) []finding {
	var (
		found  []finding
		cursor int
	)
	for _, block := range mdblock.Segment(d.text) {
		idx := strings.Index(d.text[cursor:], block.Content)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		cursor = start + len(block.Content)

		switch mdblock.Classify(block).(type) {
		case mdblock.Paragraph, mdblock.Bullet:
		default:
			continue
		}

		if off := strayBold(block.Content); off >= 0 {
			found = append(found, finding{offset: start + off, message: "bold marker has no closing **"})
		}
	}
	return found
}

// strayBold returns the offset of the first unmatched ** in content, or -1.
func strayBold(content string) int {
	pos := 0
	for _, span := range mdblock.InlineSpans(content) {
		if span.Bold {
			pos += len(span.Text) + 2*len(mdblock.BoldMarker)
			continue
		}
		if i := strings.Index(span.Text, mdblock.BoldMarker); i >= 0 {
			return pos + i
		}
		pos += len(span.Text)
	}
	return -1
}
