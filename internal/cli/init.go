package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ldoc/internal/logging"
	"github.com/yaklabco/ldoc/pkg/template"
)

// scaffoldFilePermissions is the file mode for scaffolded files (world-readable).
const scaffoldFilePermissions = 0644

// scaffoldDirPermissions is the mode for the templates directory.
const scaffoldDirPermissions = 0755

// initFlags holds the flags for the init command.
type initFlags struct {
	force    bool
	output   string
	template bool
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new ldoc project",
		Long: `Create a new .ldoc.yml configuration file in the current directory
with sensible defaults, and optionally scaffold a starter page template.

Examples:
  ldoc init                       Create .ldoc.yml
  ldoc init --template            Also write templates/base.html
  ldoc init --output custom.yml   Write config to a custom path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Config file path (default: .ldoc.yml)")
	cmd.Flags().BoolVar(&flags.template, "template", false, "Also scaffold templates/base.html")

	return cmd
}

// starterConfig is the scaffolded project configuration.
const starterConfig = `# ldoc configuration
# See: https://github.com/yaklabco/ldoc

# Directory rendered HTML is written to.
output: build

# Source file extension used during directory discovery.
extension: .ldoc

# Platform for @if PLATFORM=... conditionals. Empty disables them.
# platform: linux

# Page template with {title} and {content} placeholders.
# template: templates/base.html

# Detect languages for untagged code fences.
# detect_languages: true

# Variables seeded into every document.
# vars:
#   VERSION: "1.0"
`

func runInit(flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".ldoc.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, []byte(starterConfig), scaffoldFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.template {
		if err := scaffoldTemplate(flags.force, logger.Warn); err != nil {
			return err
		}
		logger.Info("created page template", logging.FieldPath, "templates/base.html")
		logger.Info("set 'template: templates/base.html' in the config to use it")
	}

	logger.Info("customize your configuration by editing the file")

	return nil
}

// scaffoldTemplate writes the built-in page template to templates/base.html.
func scaffoldTemplate(force bool, warn func(msg any, kv ...any)) error {
	path := filepath.Join("templates", "base.html")

	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", path)
		}
		warn("overwriting existing file", logging.FieldPath, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), scaffoldDirPermissions); err != nil {
		return fmt.Errorf("create templates directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(template.Default().Raw()), scaffoldFilePermissions); err != nil {
		return fmt.Errorf("write template: %w", err)
	}

	return nil
}
