package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/pkg/catalog"
	"github.com/yaklabco/refdeck/pkg/clipboard"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/render"
)

type listFlags struct {
	kind   string
	search string
	format string
}

func newListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deck records by category",
		Long: `List the records of the reference deck grouped by category, or the
records matching a fuzzy search of IDs and titles, best match first.

Examples:
  refdeck list                     # Every record, grouped
  refdeck list --kind pattern      # Design patterns only
  refdeck list --search obsrv      # Fuzzy search
  refdeck list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", "", "record kind: pattern, data-structure (default all)")
	cmd.Flags().StringVarP(&flags.search, "search", "s", "", "fuzzy search query")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json")

	return cmd
}

func runList(cmd *cobra.Command, flags *listFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return errors.Join(ErrUsage, fmt.Errorf("invalid format %q: must be text or json", flags.format))
	}
	kind, err := catalog.ParseKind(flags.kind)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	sess, err := loadSession(cmd, nil)
	if err != nil {
		return err
	}
	deck, err := sess.catalog()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := sess.styles(out)

	if flags.search != "" {
		var records []catalog.Record
		for _, m := range deck.Search(flags.search) {
			if kind == "" || m.Record.Kind == kind {
				records = append(records, m.Record)
			}
		}
		if flags.format == formatJSON {
			return writeJSON(out, records)
		}
		if len(records) == 0 {
			sess.logger.Info("no records match", logging.FieldInput, flags.search)
			return nil
		}
		_, err := fmt.Fprintln(out, styles.FormatRecords(records))
		return err
	}

	var groups []catalog.Group
	for _, g := range deck.ByCategory() {
		if kind == "" || g.Kind == kind {
			groups = append(groups, g)
		}
	}

	if flags.format == formatJSON {
		var records []catalog.Record
		for _, g := range groups {
			records = append(records, g.Records...)
		}
		return writeJSON(out, records)
	}

	_, err = io.WriteString(out, styles.FormatCatalog(groups))
	return err
}

type showFlags struct {
	section string
	format  string
}

func newShowCommand() *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one deck record",
		Long: `Render a deck record: its title, description, complexity table, code
sample and usage notes. --section limits the output to one part.

Examples:
  refdeck show singleton
  refdeck show binary-search-tree --section complexity
  refdeck show observer --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.section, "section", string(catalog.SectionAll),
		"record section: all, description, complexity, usage, code")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: ansi, plain, json (default from config, ansi)")

	return cmd
}

func runShow(cmd *cobra.Command, id string, flags *showFlags) error {
	section, err := catalog.ParseSection(flags.section)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	overrides := &config.Config{}
	if cmd.Flags().Changed("format") {
		overrides.Format = flags.format
	}
	sess, err := loadSession(cmd, overrides)
	if err != nil {
		return err
	}
	deck, err := sess.catalog()
	if err != nil {
		return err
	}

	record, err := deck.Get(id)
	if err != nil {
		return err
	}

	text := record.Markdown(section)
	if text == "" {
		sess.logger.Info("record has no such section", logging.FieldRecord, record.ID, logging.FieldSection, section)
		return nil
	}

	out := cmd.OutOrStdout()
	pipeline := sess.pipeline(sess.width(out))
	renderer, err := sess.renderer(out, pipeline, false)
	if err != nil {
		return err
	}

	doc := render.Document{Name: record.ID, Blocks: pipeline.SegmentAndClassify(text)}
	if err := renderer.Render(sess.ctx, []render.Document{doc}); err != nil {
		return fmt.Errorf("render record: %w", err)
	}
	return nil
}

// copierFactory builds the clipboard copier for a command run.
type copierFactory func(sess *session) clipboard.Copier

// systemCopier prefers the OS clipboard and falls back to an OSC 52 escape
// on the terminal, which also reaches the local clipboard over SSH.
func systemCopier(sess *session) clipboard.Copier {
	osc := clipboard.NewOSC52(os.Stderr, clipboard.WithLogger(sess.logger))
	return clipboard.NewSystem(osc, clipboard.WithLogger(sess.logger))
}

func newCopyCommand(factory copierFactory) *cobra.Command {
	if factory == nil {
		factory = systemCopier
	}

	return &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a record's code sample to the clipboard",
		Long: `Copy the code sample of a deck record to the clipboard. The system
clipboard is used when available, otherwise an OSC 52 escape is sent to the
terminal. When stdout is not a terminal the code is also printed.

Examples:
  refdeck copy singleton
  refdeck copy stack | pbcopy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], factory)
		},
	}
}

func runCopy(cmd *cobra.Command, id string, factory copierFactory) error {
	sess, err := loadSession(cmd, nil)
	if err != nil {
		return err
	}
	deck, err := sess.catalog()
	if err != nil {
		return err
	}

	record, err := deck.Get(id)
	if err != nil {
		return err
	}
	if record.Code == "" {
		return errors.Join(ErrUsage, fmt.Errorf("record %s has no code sample", record.ID))
	}

	factory(sess).Copy(record.Code)

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		code := record.Code
		if !strings.HasSuffix(code, "\n") {
			code += "\n"
		}
		if _, err := io.WriteString(out, code); err != nil {
			return fmt.Errorf("write code: %w", err)
		}
		return nil
	}

	logging.NewInteractive().Info("copied to clipboard",
		logging.FieldRecord, record.ID,
		logging.FieldBytes, len(record.Code),
	)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
