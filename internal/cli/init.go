package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refdeck/internal/logging"
	"github.com/yaklabco/refdeck/pkg/config"
	"github.com/yaklabco/refdeck/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigFile is the project config written by init.
const defaultConfigFile = ".refdeck.yml"

const configHeader = `# refdeck configuration
# Precedence: flags > REFDECK_* environment > --config > this file > user > system.
# Run 'refdeck themes' for theme names and 'refdeck check --list' for rule IDs.`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new refdeck configuration file",
		Long: `Create a new .refdeck.yml configuration file in the current directory
holding the default settings, ready to customize.

Examples:
  refdeck init                       Create .refdeck.yml
  refdeck init --force               Overwrite an existing file
  refdeck init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .refdeck.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content, err := config.NewConfig().ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	replaced, err := fsutil.WriteFile(cmd.Context(), absPath, content, fsutil.WriteOptions{
		Mode:      configFilePermissions,
		Overwrite: flags.force,
	})
	if errors.Is(err, fsutil.ErrExists) {
		return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, outputPath)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if replaced {
		logger.Warn("overwrote existing file", logging.FieldPath, outputPath)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
