package render

import (
	"bufio"
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/mdblock"
)

// codeIndent offsets code lines from the surrounding text.
const codeIndent = "  "

// TextRenderer writes documents as terminal text. With color disabled it is
// the plain format.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextRenderer creates a text renderer using the given styles.
func NewTextRenderer(opts Options, styles *pretty.Styles) *TextRenderer {
	if opts.Pipeline == nil {
		opts.Pipeline = defaultPipeline
	}
	return &TextRenderer{
		opts:   opts,
		styles: styles,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer. Blocks are separated by one blank line.
func (r *TextRenderer) Render(ctx context.Context, docs []Document) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			r.bw.WriteString("\n")
		}
		if r.opts.ShowNames && doc.Name != "" {
			r.bw.WriteString(r.styles.FilePath.Render(doc.Name) + "\n\n")
		}

		wrote := false
		for _, block := range doc.Blocks {
			out := r.Block(block)
			if out == "" {
				continue
			}
			if wrote {
				r.bw.WriteString("\n")
			}
			if _, err := r.bw.WriteString(out); err != nil {
				return err
			}
			wrote = true
		}
	}

	return nil
}

// Block renders one block. The result ends in a newline, or is empty for a
// block that renders nothing.
func (r *TextRenderer) Block(block Rendered) string {
	lines := r.opts.Pipeline.Lines(block)
	if len(lines) == 0 {
		return ""
	}

	switch block.Kind.(type) {
	case mdblock.Table:
		return r.table(lines, block.Hints)
	case mdblock.CodeBlock:
		return r.code(lines)
	case mdblock.Bullet:
		return r.bullets(lines, block.Hints)
	default:
		return r.text(lines, block.Hints)
	}
}

func (r *TextRenderer) text(lines []Line, hints Hints) string {
	var b strings.Builder
	for _, line := range lines {
		styled := r.spans(line)
		if hints.Width > 0 {
			styled = wordwrap.String(styled, hints.Width)
		}
		b.WriteString(styled)
		b.WriteString(spacing(hints))
	}
	return b.String()
}

// bullets hangs wrapped item text under the first line, past the marker.
func (r *TextRenderer) bullets(lines []Line, hints Hints) string {
	var b strings.Builder
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		marker, body := line[0], line[1:]
		pad := runewidth.StringWidth(marker.Text)

		text := r.spans(body)
		if hints.Width > 0 {
			text = wordwrap.String(text, max(hints.Width-pad, 1))
		}
		hung := indent.String(text, uint(pad)) //nolint:gosec // pad is a small display width.

		b.WriteString(r.style(marker.Style).Render(marker.Text))
		b.WriteString(strings.TrimPrefix(hung, strings.Repeat(" ", pad)))
		b.WriteString(spacing(hints))
	}
	return b.String()
}

// table draws rows with a border. Short rows are padded to the widest row.
func (r *TextRenderer) table(lines []Line, hints Hints) string {
	columns := 0
	for _, line := range lines {
		columns = max(columns, len(line))
	}
	if columns == 0 {
		return ""
	}

	rows := make([][]string, len(lines))
	for i, line := range lines {
		row := make([]string, columns)
		for j, span := range line {
			row[j] = span.Text
		}
		rows[i] = row
	}

	styles := r.styles
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		}).
		Headers(rows[0]...).
		Rows(rows[1:]...)

	out := t.String()
	if hints.Width > 0 && lipgloss.Width(out) > hints.Width {
		out = t.Width(hints.Width).String()
	}
	return out + "\n"
}

func (r *TextRenderer) code(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString(codeIndent)
		}
		b.WriteString(r.spans(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *TextRenderer) spans(line Line) string {
	var b strings.Builder
	for _, span := range line {
		b.WriteString(r.style(span.Style).Render(span.Text))
	}
	return b.String()
}

// style maps a span style onto the renderer's lipgloss styles.
func (r *TextRenderer) style(s Style) lipgloss.Style {
	if s >= StyleHeader1 && s <= StyleHeader6 {
		return r.styles.Header(int(s-StyleHeader1) + 1)
	}

	switch s {
	case StyleBold:
		return r.styles.Bold
	case StyleBulletMarker:
		return r.styles.BulletMarker
	case StyleTableHeader:
		return r.styles.TableHeader
	case StyleTableCell:
		return r.styles.TableCell
	case StyleCodeLabel:
		return r.styles.CodeLabel
	case StyleLineNumber:
		return r.styles.LineNumber
	case StyleCodePlain:
		return r.styles.Token(highlight.Plain)
	case StyleKeyword:
		return r.styles.Token(highlight.Keyword)
	case StyleType:
		return r.styles.Token(highlight.Type)
	case StyleString:
		return r.styles.Token(highlight.String)
	case StyleNumber:
		return r.styles.Token(highlight.Number)
	case StyleComment:
		return r.styles.Token(highlight.Comment)
	default:
		return r.styles.Text
	}
}

// spacing ends a text line and adds the blank lines the hint asks for.
func spacing(hints Hints) string {
	return strings.Repeat("\n", 1+max(int(hints.LineSpacing), 0))
}
