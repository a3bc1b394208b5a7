package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/render"
	"github.com/yaklabco/refdeck/pkg/runner"
)

type renderFlags struct {
	format      string
	width       int
	lineNumbers bool
	lineSpacing float64
	jobs        int
	lang        string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [files|-]",
		Short: "Render documents written in the deck dialect",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: ansi, plain, json (default from config, ansi)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "wrap width for text blocks (0 = terminal width)")
	cmd.Flags().BoolVar(&flags.lineNumbers, "line-numbers", false, "number code block lines")
	cmd.Flags().Float64Var(&flags.lineSpacing, "line-spacing", 0, "blank lines after each text line")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "highlighter language for code blocks without a fence language")

	return cmd
}

const renderLongDescription = `Render documents written in the deck dialect.

Text is split into blocks at blank lines, each block is classified as code,
header, bullet, table or paragraph, and code is highlighted. With no arguments
the document is read from stdin. Directories are searched for .md, .markdown
and .txt files.

Examples:
  refdeck render notes.md               # Render one file
  refdeck render docs/                  # Render every document under docs
  cat notes.md | refdeck render         # Render stdin
  refdeck render --format json notes.md # Blocks and styled spans as JSON
  refdeck render --line-numbers --width 72 notes.md`

func (f *renderFlags) overrides(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = f.width
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("line-spacing") {
		cfg.LineSpacing = f.lineSpacing
	}
	cfg.LineNumbers = f.lineNumbers
	cfg.Highlight.Language = f.lang
	return cfg
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	sess, err := loadSession(cmd, flags.overrides(cmd))
	if err != nil {
		return err
	}

	docs, err := sess.inputDocuments(args, cmd.InOrStdin(), true)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pipeline := sess.pipeline(sess.width(out))
	renderer, err := sess.renderer(out, pipeline, len(docs) > 1)
	if err != nil {
		return err
	}

	outcomes, runErr := runner.Run(sess.ctx, docs,
		func(_ context.Context, doc runner.Document) ([]render.Rendered, error) {
			return pipeline.SegmentAndClassify(string(doc.Content)), nil
		},
		runner.Options{Jobs: sess.cfg.Jobs},
	)

	rendered := make([]render.Document, 0, len(outcomes))
	blocks := 0
	for _, o := range outcomes {
		if o.Err != nil {
			sess.logger.Error("skipping document", logging.FieldPath, o.Document.Name, logging.FieldError, o.Err)
			continue
		}
		blocks += len(o.Value)
		rendered = append(rendered, render.Document{Name: o.Document.Name, Blocks: o.Value})
	}

	stats := runner.Summarize(outcomes)
	sess.logger.Debug("render complete",
		logging.FieldDocuments, stats.Documents,
		logging.FieldBlocks, blocks,
		logging.FieldErrored, stats.Errored,
	)

	if err := renderer.Render(sess.ctx, rendered); err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	if runErr != nil {
		return runErr
	}
	if err := runner.Errors(outcomes); err != nil {
		return errors.Join(errors.New("some documents could not be rendered"), err)
	}
	return nil
}
