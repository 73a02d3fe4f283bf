package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-jslint/config"
	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs"
	"github.com/input-output-hk/catalyst-jslint/git"
	"github.com/input-output-hk/catalyst-jslint/javascript/lint"
	"github.com/input-output-hk/catalyst-jslint/javascript/lint/rules/correctness"
)

// lintFlags are the options shared by the lint and watch commands.
type lintFlags struct {
	configPath  string
	format      string
	severity    string
	tags        []string
	rules       []string
	exclude     []string
	noColor     bool
	changed     bool
	concurrency int
	maxFileSize int
}

func (f *lintFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "configuration file (default: ./jslint.cue, then the user config directory)")
	flags.StringVarP(&f.format, "format", "f", "", "output format (text|json|sarif)")
	flags.StringVar(&f.severity, "severity", "", "severity attached to diagnostics (error|warning|info)")
	flags.StringSliceVar(&f.tags, "tag", nil, "enable rules with this tag, replacing configured tags")
	flags.StringSliceVar(&f.rules, "rule", nil, "enable a rule by code")
	flags.StringSliceVar(&f.exclude, "exclude", nil, "disable a rule by code")
	flags.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&f.changed, "changed", false, "only lint source files changed in the git worktree")
	flags.IntVar(&f.concurrency, "concurrency", lint.DefaultConcurrency, "files linted in parallel")
	flags.IntVar(&f.maxFileSize, "max-file-size", 0, "skip sources larger than this many bytes (default: configured or built-in limit)")
}

func newLintCmd(a *app) *cobra.Command {
	var flags lintFlags
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint files and directories",
		Long:  "Lint JavaScript files. Directories are searched recursively; the current directory is used when no path is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := runLint(cmd.Context(), a, &flags, args)
			if err != nil {
				return err
			}
			if problems {
				return errProblemsFound
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// resolveConfig loads the configuration file and applies flag overrides.
func resolveConfig(ctx context.Context, a *app, flags *lintFlags) (*config.Config, error) {
	path := config.Locate(a.fs, flags.configPath)
	a.logger.Debug("loading configuration", "path", path)
	cfg, err := config.LoadWithOptions(ctx, a.fs, path, config.LoadOptions{Required: flags.configPath != ""})
	if err != nil {
		return nil, err
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.severity != "" {
		cfg.Severity = flags.severity
	}
	if len(flags.tags) > 0 {
		cfg.Tags = flags.tags
	}
	if flags.maxFileSize > 0 {
		cfg.MaxFileSize = flags.maxFileSize
	}
	cfg.Include = append(cfg.Include, flags.rules...)
	cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runLint lints paths once and writes the report. It reports whether any
// diagnostics were found or any file failed.
func runLint(ctx context.Context, a *app, flags *lintFlags, paths []string) (bool, error) {
	cfg, err := resolveConfig(ctx, a, flags)
	if err != nil {
		return false, err
	}
	format, err := cfg.ReportFormat()
	if err != nil {
		return false, err
	}
	severity, err := cfg.DiagnosticSeverity()
	if err != nil {
		return false, err
	}

	registry, err := correctness.Recommended()
	if err != nil {
		return false, err
	}
	custom, err := cfg.CustomRules()
	if err != nil {
		return false, err
	}
	for _, rule := range custom {
		if err := registry.Register(rule); err != nil {
			return false, err
		}
	}
	rules, err := registry.Select(cfg.Selection())
	if err != nil {
		return false, err
	}

	linter := lint.New(
		lint.WithRules(rules...),
		lint.WithLogger(a.logger),
		lint.WithFilesystem(a.fs),
		lint.WithConcurrency(flags.concurrency),
		lint.WithSeverity(severity),
		lint.WithMaxFileSize(cfg.MaxFileSize),
	)

	if len(paths) == 0 {
		paths = []string{"."}
	}
	var files []string
	if flags.changed {
		files, err = changedSources(ctx, a, paths)
	} else {
		files, err = linter.Expand(paths)
	}
	if err != nil {
		return false, err
	}
	a.logger.Info("linting", "files", len(files), "rules", len(linter.Rules()))

	results, err := linter.LintFiles(ctx, files)
	if err != nil {
		return false, err
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(a.stderr, "%s: %v\n", res.File, res.Err)
		}
	}

	reporter := lint.NewReporter(a.stdout, format,
		lint.WithColor(!flags.noColor && !color.NoColor),
		lint.WithRuleDescriptions(rules))
	if err := reporter.Report(lint.Flatten(results)); err != nil {
		return false, err
	}

	diagnostics, failures := lint.Count(results)
	return diagnostics > 0 || failures > 0, nil
}

// changedSources lists the source files below paths that the git worktree
// reports as changed.
func changedSources(ctx context.Context, a *app, paths []string) ([]string, error) {
	repo, err := git.Open(ctx, &git.Options{FS: a.fs})
	if errors.HasCode(err, errors.CodeNotFound) {
		return nil, errors.Wrap(err, errors.CodeNotFound, "--changed needs a git repository")
	}
	if err != nil {
		return nil, err
	}
	changed, err := repo.ChangedFiles(ctx)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, f := range git.Within(changed, paths) {
		if fs.IsSource(f) {
			files = append(files, f)
		}
	}
	a.logger.Debug("changed sources", "changed", len(changed), "sources", len(files))
	return files, nil
}
