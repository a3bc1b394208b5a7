// Package cli provides the Cobra command structure for refdeck.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root refdeck command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "refdeck",
		Short: "A terminal reference deck of design patterns and data structures",
		Long: `refdeck renders a reference deck of design patterns and data structures
in the terminal.

Deck entries and your own notes are written in a small markdown-like dialect:
fenced code blocks, # headers, - bullets, | tables | and **bold** runs. refdeck
splits text into blocks, classifies each one, highlights code, and renders the
result as styled terminal text, plain text or JSON. The check command reports
markdown the dialect would not render.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Define --help up front so "--help --color never" parses --color's value
	// instead of taking it for a subcommand.
	rootCmd.InitDefaultHelpFlag()

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newHighlightCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newCopyCommand(nil))
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newThemesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
