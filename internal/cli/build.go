package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ldoc/internal/configloader"
	"github.com/yaklabco/ldoc/internal/logging"
	"github.com/yaklabco/ldoc/internal/ui/pretty"
	"github.com/yaklabco/ldoc/pkg/builder"
	"github.com/yaklabco/ldoc/pkg/config"
	"github.com/yaklabco/ldoc/pkg/template"
)

// ErrBuildFailed is returned when one or more documents failed to build.
var ErrBuildFailed = errors.New("build failed")

type buildFlags struct {
	vars    []string
	quiet   bool
	summary bool
}

func newBuildCommand() *cobra.Command {
	var cfg config.Config
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Build ldoc documents into HTML",
		Long:  buildLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args, &cfg, flags)
		},
	}

	addBuildFlags(cmd, &cfg, flags)

	return cmd
}

const buildLongDescription = `Build ldoc documents into standalone HTML pages.

By default, builds all .ldoc files in the current directory and
subdirectories. Specify paths to build specific files or directories.

Examples:
  ldoc build                       # Build current directory
  ldoc build docs/                 # Build docs directory
  ldoc build intro.ldoc            # Build single file
  ldoc build -o site docs/         # Write output under site/
  ldoc build --platform linux      # Enable @if PLATFORM=linux blocks
  ldoc build --var VERSION=2.0     # Seed a document variable
  ldoc build --detect-languages    # Tag untagged code fences`

func runBuild(cmd *cobra.Command, args []string, cfg *config.Config, flags *buildFlags) error {
	logger := logging.Default()

	// Fold repeated --var NAME=VALUE flags into the CLI config.
	if len(flags.vars) > 0 {
		cfg.Vars = make(map[string]string, len(flags.vars))
		for _, pair := range flags.vars {
			name, value, ok := strings.Cut(pair, "=")
			if !ok || name == "" {
				return fmt.Errorf("invalid --var %q: expected NAME=VALUE", pair)
			}
			cfg.Vars[name] = value
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldPlatform, finalCfg.Platform,
		logging.FieldOutput, finalCfg.OutputDir,
		logging.FieldTemplate, finalCfg.TemplatePath,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Resolve the page template.
	tpl := template.Default()
	if finalCfg.TemplatePath != "" {
		tpl, err = template.Load(finalCfg.TemplatePath)
		if err != nil {
			return errors.Join(errors.New("failed to load template"), err)
		}
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"."}
	}

	runOpts := builder.Options{
		Inputs:     inputs,
		WorkingDir: workDir,
		Jobs:       finalCfg.Jobs,
		Config:     finalCfg,
	}

	logger.Debug("starting build run",
		logging.FieldPaths, runOpts.Inputs,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := builder.New(tpl).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("build run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	if !flags.quiet {
		for _, outcome := range result.Files {
			fmt.Fprint(out, styles.FormatFileLine(outcome))
		}
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else if !flags.quiet {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrBuildFailed
	}

	return nil
}

func addBuildFlags(cmd *cobra.Command, cfg *config.Config, flags *buildFlags) {
	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", "", "output directory for rendered HTML")
	cmd.Flags().StringVar(&cfg.Platform, "platform", "", "platform for @if PLATFORM=... conditionals")
	cmd.Flags().StringVar(&cfg.TemplatePath, "template", "", "path to a page template file")
	cmd.Flags().StringVar(&cfg.Extension, "extension", "", "source file extension (default .ldoc)")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&cfg.DetectLanguages, "detect-languages", false,
		"detect languages for untagged code fences")
	cmd.Flags().StringArrayVar(&flags.vars, "var", nil, "seed a document variable (NAME=VALUE, repeatable)")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-file output")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block after the build")
}
