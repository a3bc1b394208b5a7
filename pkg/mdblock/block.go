// Package mdblock splits markdown-like text into blocks and classifies each
// block into the small set of kinds the reference deck renders: fenced code,
// headers, bullets, pipe tables, and paragraphs.
//
// All functions are pure. They never fail and never share state, so they may
// be called concurrently without synchronization.
package mdblock

// FenceMarker delimits code blocks.
const FenceMarker = "```"

// BoldMarker opens and closes a bold run.
const BoldMarker = "**"

// MaxHeaderLevel is the deepest header level; deeper markers are clamped.
const MaxHeaderLevel = 6

// Block is the verbatim text captured for one block, including any fence
// lines needed to classify it later.
type Block struct {
	// ID is an opaque identifier, unique within one Segment call.
	ID string `json:"id"`

	// Content is the block text with lines joined by "\n".
	Content string `json:"content"`
}

// Kind is the classification of a block. The concrete types are CodeBlock,
// Header, Bullet, Table, Paragraph and Empty.
type Kind interface {
	// KindName returns a stable lowercase name for the kind.
	KindName() string

	sealed()
}

// Kind names.
const (
	KindCode      = "code"
	KindHeader    = "header"
	KindBullet    = "bullet"
	KindTable     = "table"
	KindParagraph = "paragraph"
	KindEmpty     = "empty"
)

// CodeBlock is a fenced code block.
type CodeBlock struct {
	// Body is every line between the fences, verbatim.
	Body string `json:"body"`

	// Language is the opening fence info string (first word), or "".
	Language string `json:"language,omitempty"`
}

// Header is a "#"-style header.
type Header struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// Bullet is a "•" or "-" bullet point.
type Bullet struct {
	Text string `json:"text"`
}

// Table is a pipe-delimited table. Rows may have differing cell counts.
type Table struct {
	Rows [][]string `json:"rows"`
}

// Paragraph is plain text that may contain inline **bold** spans.
type Paragraph struct {
	Text string `json:"text"`
}

// Empty is a whitespace-only block. It renders nothing.
type Empty struct{}

func (CodeBlock) KindName() string { return KindCode }
func (Header) KindName() string    { return KindHeader }
func (Bullet) KindName() string    { return KindBullet }
func (Table) KindName() string     { return KindTable }
func (Paragraph) KindName() string { return KindParagraph }
func (Empty) KindName() string     { return KindEmpty }

func (CodeBlock) sealed() {}
func (Header) sealed()    {}
func (Bullet) sealed()    {}
func (Table) sealed()     {}
func (Paragraph) sealed() {}
func (Empty) sealed()     {}

// Header returns the first row, rendered with emphasis. Returns nil for an
// empty table.
func (t Table) Header() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Body returns the data rows following the header row.
func (t Table) Body() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// Columns returns the largest cell count across all rows.
func (t Table) Columns() int {
	width := 0
	for _, row := range t.Rows {
		width = max(width, len(row))
	}
	return width
}
