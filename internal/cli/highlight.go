package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/highlight"
)

const (
	formatText = "text"
	formatJSON = "json"

	// categoryColumnWidth fits the longest category name plus a gap.
	categoryColumnWidth = 9
)

type highlightFlags struct {
	lang   string
	format string
}

func newHighlightCommand() *cobra.Command {
	flags := &highlightFlags{}

	cmd := &cobra.Command{
		Use:   "highlight [line...]",
		Short: "Print the highlight tokens of code lines",
		Long: `Classify code lines into keyword, type, string, number, comment and plain
tokens and print them. Each argument is one line; with no arguments lines are
read from stdin.

Examples:
  refdeck highlight 'let x = "hi" // note'
  refdeck highlight --lang go 'func main() {}'
  refdeck highlight --format json < snippet.swift`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighlight(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.lang, "lang", "", "language word sets (default from config, swift)")
	cmd.Flags().StringVar(&flags.format, "format", formatText, "output format: text, json")

	return cmd
}

func runHighlight(cmd *cobra.Command, args []string, flags *highlightFlags) error {
	if flags.format != formatText && flags.format != formatJSON {
		return errors.Join(ErrUsage, fmt.Errorf("invalid format %q: must be text or json", flags.format))
	}

	sess, err := loadSession(cmd, &config.Config{Highlight: config.HighlightConfig{Language: flags.lang}})
	if err != nil {
		return err
	}

	lines := args
	if len(lines) == 0 {
		lines, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	hl := highlight.New(highlightOptions(sess.cfg.Highlight))
	for _, category := range hl.Disabled() {
		sess.logger.Warn("highlight pattern does not compile; family disabled", logging.FieldCategory, category)
	}
	sess.logger.Debug("highlighting", logging.FieldLanguage, hl.Language(), logging.FieldInput, len(lines))

	highlighted := make([]highlight.Line, len(lines))
	for i, line := range lines {
		highlighted[i] = hl.Highlight(line)
	}

	out := cmd.OutOrStdout()
	if flags.format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(highlighted); err != nil {
			return fmt.Errorf("encode tokens: %w", err)
		}
		return nil
	}

	return writeTokens(out, sess.styles(out), highlighted)
}

// writeTokens prints one token per row: the category name, styled in the
// category's color, then the quoted token text. Lines are separated by a
// blank row.
func writeTokens(w io.Writer, styles *pretty.Styles, lines []highlight.Line) error {
	bw := bufio.NewWriter(w)
	for i, line := range lines {
		if i > 0 {
			bw.WriteString("\n")
		}
		for _, tok := range line {
			name := runewidth.FillRight(tok.Category.String(), categoryColumnWidth)
			bw.WriteString(styles.Token(tok.Category).Render(name) + strconv.Quote(tok.Text) + "\n")
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
