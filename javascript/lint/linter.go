package lint

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs"
	"github.com/input-output-hk/catalyst-jslint/fs/billy"
	"github.com/input-output-hk/catalyst-jslint/javascript/ast"
	"github.com/input-output-hk/catalyst-jslint/javascript/parser"
)

// DefaultConcurrency is the number of files linted in parallel by LintFiles.
const DefaultConcurrency = 4

// Result holds the outcome of linting one file.
type Result struct {
	// File is the path or name the source was read from.
	File string `json:"file"`
	// Diagnostics are the findings in rule order, then emission order.
	Diagnostics []Diagnostic `json:"diagnostics"`
	// Err is set when the file could not be read or parsed.
	Err error `json:"-"`
}

// Linter runs a fixed set of rules over JavaScript sources.
// A Linter is safe for concurrent use once constructed.
type Linter struct {
	rules       []Rule
	logger      *slog.Logger
	filesystem  fs.ReadFS
	concurrency int
	severity    Severity
	maxFileSize int
}

// Option configures a Linter.
type Option func(*Linter)

// WithRules sets the rules to run, in order.
func WithRules(rules ...Rule) Option {
	return func(l *Linter) {
		l.rules = append([]Rule(nil), rules...)
	}
}

// WithLogger sets the logger. The default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linter) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFilesystem sets the filesystem sources are read from.
// The default is the OS filesystem.
func WithFilesystem(filesystem fs.ReadFS) Option {
	return func(l *Linter) {
		if filesystem != nil {
			l.filesystem = filesystem
		}
	}
}

// WithConcurrency sets how many files LintFiles processes at once.
func WithConcurrency(n int) Option {
	return func(l *Linter) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithSeverity sets the severity attached to every diagnostic.
func WithSeverity(s Severity) Option {
	return func(l *Linter) {
		l.severity = s
	}
}

// WithMaxFileSize rejects sources larger than n bytes. Zero or less keeps
// the parser default.
func WithMaxFileSize(n int) Option {
	return func(l *Linter) {
		l.maxFileSize = n
	}
}

// New creates a Linter.
func New(opts ...Option) *Linter {
	l := &Linter{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: DefaultConcurrency,
		severity:    SeverityError,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.filesystem == nil {
		l.filesystem = billy.NewBaseOSFS()
	}
	return l
}

// Rules returns the rules the linter runs.
func (l *Linter) Rules() []Rule {
	return append([]Rule(nil), l.rules...)
}

// LintProgram runs every rule over an already parsed program. All rules
// share one Context, and run one after another so it only ever has one writer.
func (l *Linter) LintProgram(file string, program *ast.Program) []Diagnostic {
	ctx := NewContext(file, program)
	ctx.SetSeverity(l.severity)
	for _, rule := range l.rules {
		before := ctx.Len()
		rule.LintProgram(ctx, program)
		l.logger.Debug("rule finished",
			"file", file,
			"rule", rule.Code(),
			"diagnostics", ctx.Len()-before)
	}
	return ctx.Diagnostics()
}

// LintSource parses src and lints it. Parse failures are returned as errors.
func (l *Linter) LintSource(ctx context.Context, name string, src []byte) (*Result, error) {
	program, err := parser.ParseBytesWithOptions(ctx, name, src, l.parseOptions())
	if err != nil {
		return nil, err
	}
	return &Result{File: name, Diagnostics: l.LintProgram(name, program)}, nil
}

// LintFile reads path from the linter's filesystem and lints it.
func (l *Linter) LintFile(ctx context.Context, path string) (*Result, error) {
	program, err := parser.ParseFile(ctx, path, l.parseOptions())
	if err != nil {
		return nil, err
	}
	return &Result{File: path, Diagnostics: l.LintProgram(path, program)}, nil
}

func (l *Linter) parseOptions() *parser.ParseOptions {
	return &parser.ParseOptions{Filesystem: l.filesystem, MaxFileSize: l.maxFileSize}
}

// LintFiles lints paths in parallel and returns one Result per path in input
// order. A file that cannot be read or parsed gets a Result with Err set and
// does not stop the others; only cancellation of ctx aborts the run.
func (l *Linter) LintFiles(ctx context.Context, paths []string) ([]*Result, error) {
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := l.LintFile(gctx, path)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				l.logger.Warn("skipping file", "file", path, "code", errors.GetCode(err), "error", err)
				res = &Result{File: path, Err: err}
			} else {
				l.logger.Debug("linted file", "file", path, "diagnostics", len(res.Diagnostics))
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "lint run aborted")
	}
	return results, nil
}

// Expand resolves paths into the JavaScript source files they name.
// Directories are walked recursively; explicit file paths are kept even when
// their extension is not a source extension. The result is sorted and unique.
func (l *Linter) Expand(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, root := range paths {
		info, err := l.filesystem.Stat(root)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeNotFound, "path not found",
				map[string]interface{}{"path": root})
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = l.filesystem.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != root && skipDir(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if fs.IsSource(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeIO, "failed to walk directory",
				map[string]interface{}{"path": root})
		}
	}

	sort.Strings(out)
	return out, nil
}

// Count returns the total number of diagnostics and failed files in results.
func Count(results []*Result) (diagnostics, failures int) {
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Err != nil {
			failures++
		}
		diagnostics += len(res.Diagnostics)
	}
	return diagnostics, failures
}

// Flatten collects the diagnostics of every result.
func Flatten(results []*Result) []Diagnostic {
	var out []Diagnostic
	for _, res := range results {
		if res != nil {
			out = append(out, res.Diagnostics...)
		}
	}
	return out
}

func skipDir(name string) bool {
	switch name {
	case "node_modules", ".git":
		return true
	}
	return false
}
