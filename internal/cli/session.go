package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/refdeck/internal/configloader"
	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/catalog"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/highlight"
	"github.com/yaklabco/refdeck/pkg/render"
)

// defaultTermWidth is used when the output is not a terminal.
const defaultTermWidth = 100

// session is the resolved state shared by subcommands: merged
// configuration, logger and working directory.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	logger  *log.Logger
	workDir string
}

// loadSession resolves configuration for cmd. overrides carries the values
// of flags the user set; the global --color flag is folded in here.
func loadSession(cmd *cobra.Command, overrides *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	if overrides == nil {
		overrides = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		overrides.Color = config.ColorMode(color)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    overrides,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldTheme, cfg.Theme,
		logging.FieldFormat, cfg.Format,
		logging.FieldWidth, cfg.Width,
		logging.FieldJobs, cfg.Jobs,
	)

	return &session{ctx: ctx, cfg: cfg, logger: logger, workDir: workDir}, nil
}

// highlightOptions converts the highlight section of the configuration.
// Pattern keys were validated on load.
func highlightOptions(h config.HighlightConfig) highlight.Options {
	opts := highlight.Options{
		Language: h.Language,
		Keywords: h.Keywords,
		Types:    h.Types,
	}
	if len(h.Patterns) > 0 {
		opts.Patterns = make(map[highlight.Category]string, len(h.Patterns))
		for name, pattern := range h.Patterns {
			if category, err := highlight.ParseCategory(name); err == nil {
				opts.Patterns[category] = pattern
			}
		}
	}
	return opts
}

// pipeline builds the render pipeline for the configuration. width is the
// effective wrap width.
func (s *session) pipeline(width int) *render.Pipeline {
	p := render.New(
		render.WithLineSpacing(s.cfg.LineSpacing),
		render.WithLineNumbers(s.cfg.LineNumbers),
		render.WithWidth(width),
		render.WithHighlight(highlightOptions(s.cfg.Highlight)),
	)
	for _, category := range p.Disabled() {
		s.logger.Warn("highlight pattern does not compile; family disabled", logging.FieldCategory, category)
	}
	return p
}

// width returns the configured wrap width. When it is 0, terminals wrap at
// their width and other writers do not wrap.
func (s *session) width(w io.Writer) int {
	if s.cfg.Width > 0 {
		return s.cfg.Width
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(w)
}

// renderer builds a renderer writing to w in the configured format. The
// pipeline must be the one that classified the documents.
//
//nolint:ireturn // render.NewRenderer selects the implementation by format.
func (s *session) renderer(w io.Writer, pipeline *render.Pipeline, showNames bool) (render.Renderer, error) {
	format, err := render.ParseFormat(s.cfg.Format)
	if err != nil {
		return nil, errors.Join(ErrUsage, err)
	}

	return render.NewRenderer(render.Options{
		Writer:    w,
		Format:    format,
		Color:     string(s.cfg.Color),
		Theme:     s.cfg.Theme,
		Pipeline:  pipeline,
		ShowNames: showNames,
	})
}

// styles returns the UI styles for w honoring the color mode and theme.
func (s *session) styles(w io.Writer) *pretty.Styles {
	return pretty.NewThemedStyles(pretty.IsColorEnabled(string(s.cfg.Color), w), s.cfg.Theme)
}

// catalog loads the embedded deck plus the configured catalog files.
func (s *session) catalog() (*catalog.Catalog, error) {
	deck, err := catalog.Load(s.cfg.Catalog...)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s.logger.Debug("catalog loaded", logging.FieldDocuments, deck.Len(), logging.FieldPaths, s.cfg.Catalog)
	return deck, nil
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
