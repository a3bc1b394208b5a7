package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/refdeck/internal/ui/pretty"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Document is one named source of text, classified into blocks.
type Document struct {
	// Name identifies the source: a file path, "-" for stdin, or a record ID.
	Name string

	// Blocks are the classified blocks in source order.
	Blocks []Rendered
}

// Renderer writes classified documents.
type Renderer interface {
	// Render writes every document in order.
	Render(ctx context.Context, docs []Document) error
}

// Options configures renderer behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output for the ansi format.
	// Values: "auto" (default), "always", "never"
	Color string

	// Theme names the color theme for code tokens.
	Theme string

	// Pipeline styles code blocks. Nil uses a default pipeline.
	Pipeline *Pipeline

	// ShowNames prints a title line before each document.
	ShowNames bool

	// Compact uses minified JSON output.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatANSI,
		Color:  "auto",
		Theme:  pretty.DefaultTheme,
	}
}

// NewRenderer creates a Renderer for the specified options.
//
//nolint:ireturn // Factory selects the implementation by format.
func NewRenderer(opts Options) (Renderer, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Pipeline == nil {
		opts.Pipeline = defaultPipeline
	}

	format := opts.Format
	if format == "" {
		format = FormatANSI
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONRenderer(opts), nil
	case FormatPlain:
		return NewTextRenderer(opts, pretty.NewStyles(false)), nil
	case FormatANSI:
		colored := pretty.IsColorEnabled(opts.Color, opts.Writer)
		return NewTextRenderer(opts, pretty.NewThemedStyles(colored, opts.Theme)), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
