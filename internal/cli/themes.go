package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/ui/pretty"
	"github.com/yaklabco/refdeck/pkg/highlight"
)

// themeSample is highlighted with each theme in the preview.
const themeSample = `let count: Int = 42 // answer`

func newThemesCommand() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the color themes for code",
		Long: `List the color themes available for code tokens. Set one with the theme
config key, REFDECK_THEME, or --config. --preview shows a sample line in each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := loadSession(cmd, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colored := pretty.IsColorEnabled(string(sess.cfg.Color), out)
			sample := highlight.Highlight(themeSample)

			bw := bufio.NewWriter(out)
			for _, name := range pretty.Themes() {
				marker := "  "
				if name == sess.cfg.Theme {
					marker = "* "
				}
				line := marker + name
				if preview {
					styles := pretty.NewThemedStyles(colored, name)
					line = fmt.Sprintf("%-24s", line)
					for _, tok := range sample {
						line += styles.Token(tok.Category).Render(tok.Text)
					}
				}
				bw.WriteString(line + "\n")
			}
			return bw.Flush()
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "show a highlighted sample line in each theme")

	return cmd
}
