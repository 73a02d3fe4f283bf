// Command jslint lints JavaScript sources.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs/billy"
)

// errProblemsFound signals that linting succeeded but reported findings or
// could not lint some files. It maps to exit code 1.
var errProblemsFound = stderrors.New("problems found")

// app holds what every command shares.
type app struct {
	// fs is where sources, configuration and the git repository are read from.
	fs       *billy.FS
	logger   *slog.Logger
	logLevel string
	stdout   io.Writer
	stderr   io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], &app{
		fs:     billy.NewBaseOSFS(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code: 0 when clean,
// 1 when problems were found and 2 when the run itself failed.
func run(ctx context.Context, args []string, a *app) int {
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, errProblemsFound):
		return 1
	default:
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 2
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "jslint",
		Short:         "Lint JavaScript sources",
		Long:          "jslint checks JavaScript sources against a configurable set of rules.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLogLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(newLintCmd(a))
	root.AddCommand(newRulesCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, errors.Newf(errors.CodeInvalidInput, "unknown log level %q", name)
	}
}
