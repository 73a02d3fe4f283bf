package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-jslint/config"
	"github.com/input-output-hk/catalyst-jslint/fs"
)

// watchDebounce is how long the watcher waits after the last change before
// linting again.
const watchDebounce = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var flags lintFlags
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Lint files and re-lint whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			relint := func(ctx context.Context) {
				if _, err := runLint(ctx, a, &flags, args); err != nil {
					fmt.Fprintf(a.stderr, "Error: %v\n", err)
				}
			}

			w, err := newSourceWatcher(a.logger, a.fs, config.Locate(a.fs, flags.configPath), relint)
			if err != nil {
				return err
			}
			defer w.Close()

			dirs, err := watchDirs(a.fs, args)
			if err != nil {
				return err
			}
			for _, dir := range dirs {
				if err := w.Add(dir); err != nil {
					return err
				}
			}

			relint(cmd.Context())
			return w.Run(cmd.Context())
		},
	}
	flags.register(cmd)
	return cmd
}

// sourceWatcher re-runs a lint pass when sources or the configuration file
// change. Bursts of events are collapsed into one pass.
type sourceWatcher struct {
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	fs         fs.ReadFS
	configPath string
	debounce   time.Duration
	relint     func(ctx context.Context)
}

func newSourceWatcher(logger *slog.Logger, filesystem fs.ReadFS, configPath string, relint func(ctx context.Context)) (*sourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &sourceWatcher{
		watcher:    watcher,
		logger:     logger,
		fs:         filesystem,
		configPath: filepath.Clean(configPath),
		debounce:   watchDebounce,
		relint:     relint,
	}, nil
}

// Add watches dir for changes.
func (w *sourceWatcher) Add(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}
	w.logger.Debug("watching", "dir", dir)
	return nil
}

// Close stops watching.
func (w *sourceWatcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether event should trigger a new lint pass.
func (w *sourceWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return fs.IsSource(event.Name) || filepath.Clean(event.Name) == w.configPath
}

// Run watches for changes and lints again after each burst. It blocks until
// ctx is cancelled or the watcher is closed.
func (w *sourceWatcher) Run(ctx context.Context) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				w.addIfDir(event.Name)
			}
			if w.relevant(event) {
				w.logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
				pending = time.After(w.debounce)
			}

		case <-pending:
			pending = nil
			w.relint(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// addIfDir starts watching a newly created directory and every directory
// already created below it.
func (w *sourceWatcher) addIfDir(path string) {
	info, err := w.fs.Stat(path)
	if err != nil || !info.IsDir() || skipWatchDir(info.Name()) {
		return
	}
	dirs, err := watchDirs(w.fs, []string{path})
	if err != nil {
		w.logger.Warn("cannot list new directory", "dir", path, "error", err)
		return
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.logger.Warn("cannot watch new directory", "dir", dir, "error", err)
		}
	}
}

// watchDirs lists the directories to watch for paths: every directory below
// a directory argument, and the parent of each file argument.
func watchDirs(filesystem fs.ReadFS, paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, root := range paths {
		info, err := filesystem.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("cannot watch %q: %w", root, err)
		}
		if !info.IsDir() {
			add(filepath.Dir(root))
			continue
		}
		err = filesystem.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return nil
			}
			if path != root && skipWatchDir(info.Name()) {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot watch %q: %w", root, err)
		}
	}
	return dirs, nil
}

func skipWatchDir(name string) bool {
	return name == "node_modules" || name == ".git"
}
