package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/catalog"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/dialect"
	"github.com/yaklabco/refdeck/pkg/runner"
)

const formatTable = "table"

// catalogPrefix marks catalog records in check output.
const catalogPrefix = "catalog:"

type checkFlags struct {
	format    string
	disable   []string
	jobs      int
	catalog   bool
	list      bool
	strict    bool
	noContext bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report markdown the deck dialect does not render",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, table, json")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.catalog, "catalog", false, "check the records of the deck")
	cmd.Flags().BoolVar(&flags.list, "list", false, "list the check rules and exit")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on warnings and info, not only errors")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")

	return cmd
}

const checkLongDescription = `Report markdown constructs the deck dialect does not render.

The renderer understands fenced code, # headers, - and • bullets, pipe tables
and **bold** runs. Links, images, emphasis, numbered lists, block quotes, HTML,
inline code, thematic breaks and indented code are shown as literal text, and
an unclosed fence or bold marker swallows the text after it. check flags each
of these so notes render the way they read.

By default, checks all .md, .markdown and .txt files under the current
directory. "-" reads stdin.

Examples:
  refdeck check                      # Check the current directory
  refdeck check notes.md             # Check one file
  refdeck check --catalog            # Check the deck records
  refdeck check --disable html       # Skip a rule
  refdeck check --format json        # Machine-readable output
  refdeck check --list               # Show the rules`

// checkResult is the JSON output of a check run.
type checkResult struct {
	Diagnostics []dialect.Diagnostic `json:"diagnostics"`
	Documents   int                  `json:"documents"`
	Errored     int                  `json:"errored"`
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	switch flags.format {
	case formatText, formatTable, formatJSON:
	default:
		return errors.Join(ErrUsage, fmt.Errorf("invalid format %q: must be text, table or json", flags.format))
	}

	overrides := &config.Config{DisableRules: flags.disable}
	if cmd.Flags().Changed("jobs") {
		overrides.Jobs = flags.jobs
	}
	sess, err := loadSession(cmd, overrides)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.list {
		return writeRules(out, sess.styles(out), flags.format)
	}

	docs, err := sess.checkDocuments(cmd, args, flags.catalog)
	if err != nil {
		return err
	}

	opts := dialect.OptionsFromConfig(sess.cfg)
	outcomes, runErr := runner.Run(sess.ctx, docs,
		func(_ context.Context, doc runner.Document) ([]dialect.Diagnostic, error) {
			return dialect.Check(doc.Name, string(doc.Content), opts), nil
		},
		runner.Options{Jobs: sess.cfg.Jobs},
	)

	perDocument := make([][]dialect.Diagnostic, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			sess.logger.Error("cannot check document", logging.FieldPath, o.Document.Name, logging.FieldError, o.Err)
			continue
		}
		perDocument = append(perDocument, o.Value)
	}

	stats := pretty.NewCheckStats(runner.Summarize(outcomes), perDocument)
	sess.logger.Debug("check complete",
		logging.FieldDocuments, stats.Documents,
		logging.FieldDiagnostics, stats.Total,
		logging.FieldErrored, stats.Errored,
	)

	if err := writeCheck(out, sess.styles(out), outcomes, perDocument, stats, flags); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if runErr != nil {
		return runErr
	}
	if stats.Failed() || (flags.strict && stats.Total > 0) {
		return ErrIssuesFound
	}
	return nil
}

// checkDocuments collects the documents to check: the deck records when
// withCatalog is set, and the files named by args. With neither, the
// working directory is searched.
func (s *session) checkDocuments(cmd *cobra.Command, args []string, withCatalog bool) ([]runner.Document, error) {
	var docs []runner.Document

	if withCatalog {
		deck, err := s.catalog()
		if err != nil {
			return nil, err
		}
		for _, r := range deck.Records() {
			docs = append(docs, runner.Document{
				Name:    catalogPrefix + r.ID,
				Content: []byte(r.Markdown(catalog.SectionAll)),
			})
		}
		if len(args) == 0 {
			return docs, nil
		}
	}

	files, err := s.inputDocuments(args, cmd.InOrStdin(), false)
	if err != nil {
		return nil, err
	}
	return append(docs, files...), nil
}

func writeCheck(
	w io.Writer,
	styles *pretty.Styles,
	outcomes []runner.Outcome[[]dialect.Diagnostic],
	perDocument [][]dialect.Diagnostic,
	stats pretty.CheckStats,
	flags *checkFlags,
) error {
	switch flags.format {
	case formatJSON:
		result := checkResult{
			Diagnostics: []dialect.Diagnostic{},
			Documents:   stats.Documents,
			Errored:     stats.Errored,
		}
		for _, diags := range perDocument {
			result.Diagnostics = append(result.Diagnostics, diags...)
		}
		return writeJSON(w, result)

	case formatTable:
		formatter := pretty.NewTableFormatter(styles, terminalWidth(w))
		if _, err := io.WriteString(w, formatter.FormatTable(perDocument)); err != nil {
			return err
		}
		_, err := io.WriteString(w, styles.FormatSummaryOneLine(stats))
		return err

	default:
		bw := bufio.NewWriter(w)
		for _, o := range outcomes {
			if o.Err != nil || len(o.Value) == 0 {
				continue
			}
			var lines []string
			if !flags.noContext {
				lines = sourceLines(o.Document.Content)
			}
			bw.WriteString(styles.FormatFileHeader(o.Document.Name, len(o.Value)) + "\n")
			for _, d := range o.Value {
				bw.WriteString(styles.FormatDiagnostic(d, lineAt(lines, d.Line)))
			}
			bw.WriteString("\n")
		}
		bw.WriteString(styles.FormatSummaryOneLine(stats))
		return bw.Flush()
	}
}

func sourceLines(content []byte) []string {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	return strings.Split(strings.ReplaceAll(text, "\r", "\n"), "\n")
}

func lineAt(lines []string, line int) string {
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}
