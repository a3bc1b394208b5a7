// Package render turns markdown-like text into classified blocks and styled
// span lines, and writes them through terminal or JSON renderers.
package render

import (
	"sync"

	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/langdetect"
	"github.com/yaklabco/refdeck/pkg/mdblock"
)

// Hints are per-block rendering hints. They do not affect classification.
type Hints struct {
	// LineSpacing is forwarded unchanged from the caller. Terminal renderers
	// read it as blank lines inserted after each text line.
	LineSpacing float64 `json:"lineSpacing,omitempty"`

	// Language is the code block language: the fence info string, or a
	// detected language when the fence has none.
	Language string `json:"language,omitempty"`

	// LineNumbers requests line numbers on code blocks.
	LineNumbers bool `json:"lineNumbers,omitempty"`

	// Width is the wrap width for text blocks; 0 disables wrapping.
	Width int `json:"width,omitempty"`
}

// Rendered is one classified block with its hints.
type Rendered struct {
	ID    string       `json:"id"`
	Kind  mdblock.Kind `json:"-"`
	Hints Hints        `json:"hints"`
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLineSpacing sets the line spacing hint.
func WithLineSpacing(spacing float64) Option {
	return func(p *Pipeline) { p.hints.LineSpacing = spacing }
}

// WithLineNumbers enables line numbers on code blocks.
func WithLineNumbers(enabled bool) Option {
	return func(p *Pipeline) { p.hints.LineNumbers = enabled }
}

// WithWidth sets the wrap width hint.
func WithWidth(width int) Option {
	return func(p *Pipeline) { p.hints.Width = max(width, 0) }
}

// WithHighlight sets the base highlighter options. A block's language hint
// overrides opts.Language.
func WithHighlight(opts highlight.Options) Option {
	return func(p *Pipeline) { p.highlight = opts }
}

// WithLanguageDetection toggles language detection for code blocks whose
// fence has no info string. It is on by default. A configured highlight
// language takes precedence over detection.
func WithLanguageDetection(enabled bool) Option {
	return func(p *Pipeline) { p.detect = enabled }
}

// Pipeline segments, classifies and styles documents. It is safe for
// concurrent use.
type Pipeline struct {
	hints     Hints
	highlight highlight.Options
	detect    bool

	mu           sync.Mutex
	highlighters map[string]*highlight.Highlighter
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		detect:       true,
		highlighters: make(map[string]*highlight.Highlighter),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SegmentAndClassify splits text into blocks and classifies each one, in
// source order.
func (p *Pipeline) SegmentAndClassify(text string) []Rendered {
	blocks := mdblock.Segment(text)
	out := make([]Rendered, 0, len(blocks))
	for _, block := range blocks {
		kind := mdblock.Classify(block)

		hints := p.hints
		if code, ok := kind.(mdblock.CodeBlock); ok {
			switch {
			case code.Language != "":
				hints.Language = code.Language
			case p.highlight.Language != "":
				hints.Language = highlight.CanonicalLanguage(p.highlight.Language)
			case p.detect:
				hints.Language = langdetect.Hint(code.Body)
			}
		}

		out = append(out, Rendered{ID: block.ID, Kind: kind, Hints: hints})
	}
	return out
}

// Highlighter returns the highlighter for a language, building it on first
// use. An empty language uses the configured base language.
func (p *Pipeline) Highlighter(lang string) *highlight.Highlighter {
	opts := p.highlight
	if lang != "" {
		opts.Language = lang
	}
	key := highlight.CanonicalLanguage(opts.Language)

	p.mu.Lock()
	defer p.mu.Unlock()

	if hl, ok := p.highlighters[key]; ok {
		return hl
	}
	opts.Language = key
	hl := highlight.New(opts)
	p.highlighters[key] = hl
	return hl
}

// Disabled lists the highlighter families whose configured patterns failed
// to compile.
func (p *Pipeline) Disabled() []highlight.Category {
	return p.Highlighter("").Disabled()
}

//nolint:gochecknoglobals // Shared default pipeline; it only caches highlighters.
var defaultPipeline = New()

// SegmentAndClassify splits and classifies text with a fresh pipeline.
func SegmentAndClassify(text string, opts ...Option) []Rendered {
	return New(opts...).SegmentAndClassify(text)
}

// HighlightCode classifies one code line with the default word sets.
func HighlightCode(line string) []highlight.Token {
	return highlight.Highlight(line)
}

// Lines converts a rendered block into styled lines with the default
// highlighter options.
func Lines(r Rendered) []Line {
	return defaultPipeline.Lines(r)
}
