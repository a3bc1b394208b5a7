package render

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string         `json:"version"`
	Documents []JSONDocument `json:"documents"`
}

// JSONDocument is one rendered document.
type JSONDocument struct {
	Name   string      `json:"name,omitempty"`
	Blocks []JSONBlock `json:"blocks"`
}

// JSONBlock is one classified block with its styled lines.
type JSONBlock struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Data  any    `json:"data,omitempty"`
	Hints Hints  `json:"hints"`
	Lines []Line `json:"lines"`
}

// JSONRenderer writes documents as JSON.
type JSONRenderer struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	if opts.Pipeline == nil {
		opts.Pipeline = defaultPipeline
	}
	return &JSONRenderer{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(ctx context.Context, docs []Document) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output, err := r.buildOutput(ctx, docs)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONRenderer) buildOutput(ctx context.Context, docs []Document) (*JSONOutput, error) {
	output := &JSONOutput{
		Version:   "1.0.0",
		Documents: make([]JSONDocument, 0, len(docs)),
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		jsonDoc := JSONDocument{
			Name:   doc.Name,
			Blocks: make([]JSONBlock, 0, len(doc.Blocks)),
		}
		for _, block := range doc.Blocks {
			lines := r.opts.Pipeline.Lines(block)
			if lines == nil {
				lines = []Line{}
			}
			jsonDoc.Blocks = append(jsonDoc.Blocks, JSONBlock{
				ID:    block.ID,
				Kind:  block.Kind.KindName(),
				Data:  block.Kind,
				Hints: block.Hints,
				Lines: lines,
			})
		}
		output.Documents = append(output.Documents, jsonDoc)
	}

	return output, nil
}
