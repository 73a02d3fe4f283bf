// Package git reads repository state through go-git so that linting can be
// limited to the files changed in a worktree. Repositories are opened on the
// project's filesystem abstraction, so the same code serves the OS and
// in-memory filesystems.
package git

import (
	"context"

	gobilly "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/input-output-hk/catalyst-jslint/errors"
	"github.com/input-output-hk/catalyst-jslint/fs/billy"
)

const (
	// DefaultStorerCacheSize is the default size for the LRU object cache.
	DefaultStorerCacheSize = 1000

	// DefaultWorkdir is the default worktree directory name.
	DefaultWorkdir = "."
)

// Options configures repository discovery/creation.
type Options struct {
	// FS is the REQUIRED filesystem holding the worktree and its .git directory.
	FS *billy.FS

	// Workdir is the path within FS for the worktree root.
	// Defaults to "." (current directory in FS).
	Workdir string

	// StorerCacheSize sets the LRU objects cache entries.
	// Defaults to DefaultStorerCacheSize.
	StorerCacheSize int
}

// Validate checks that the Options are properly configured.
func (o *Options) Validate() error {
	if o == nil || o.FS == nil {
		return errors.New(errors.CodeInvalidInput, "git: FS is required")
	}
	if o.StorerCacheSize < 0 {
		return errors.New(errors.CodeInvalidInput, "git: StorerCacheSize cannot be negative")
	}
	return nil
}

// applyDefaults sets default values for any unset fields in Options.
func (o *Options) applyDefaults() {
	if o.Workdir == "" {
		o.Workdir = DefaultWorkdir
	}
	if o.StorerCacheSize == 0 {
		o.StorerCacheSize = DefaultStorerCacheSize
	}
}

// Repo is a non-bare repository with a worktree.
type Repo struct {
	repo     *git.Repository
	worktree *git.Worktree
	options  Options
}

// Init creates a new repository at the configured workdir.
func Init(ctx context.Context, opts *Options) (*Repo, error) {
	return openOrInit(ctx, opts, git.Init)
}

// Open opens an existing repository at the configured workdir.
func Open(ctx context.Context, opts *Options) (*Repo, error) {
	return openOrInit(ctx, opts, git.Open)
}

type repoFunc func(s storage.Storer, worktree gobilly.Filesystem) (*git.Repository, error)

func openOrInit(ctx context.Context, opts *Options, fn repoFunc) (*Repo, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "git: cancelled")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := *opts
	o.applyDefaults()

	// Chroot to the workdir to scope the repository location
	scopedFS, err := o.FS.Raw().Chroot(o.Workdir)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "git: failed to chroot to workdir",
			map[string]interface{}{"workdir": o.Workdir})
	}
	dotGitFS, err := scopedFS.Chroot(".git")
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeIO, "git: failed to access .git directory",
			map[string]interface{}{"workdir": o.Workdir})
	}

	repo, err := fn(newStorage(dotGitFS, o.StorerCacheSize), scopedFS)
	if err != nil {
		code := errors.CodeInternal
		if errors.Is(err, git.ErrRepositoryNotExists) {
			code = errors.CodeNotFound
		}
		return nil, errors.WrapWithContext(err, code, "git: failed to open repository",
			map[string]interface{}{"workdir": o.Workdir})
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "git: failed to get worktree")
	}

	return &Repo{repo: repo, worktree: worktree, options: o}, nil
}

// newStorage creates git object storage on billyFS with an LRU object cache.
func newStorage(billyFS gobilly.Filesystem, cacheSize int) *filesystem.Storage {
	if cacheSize <= 0 {
		// Use a minimal cache size if invalid value provided
		cacheSize = 100
	}
	objCache := cache.NewObjectLRU(cache.FileSize(cacheSize))
	return filesystem.NewStorage(billyFS, objCache)
}

// Raw returns the underlying go-git repository.
func (r *Repo) Raw() *git.Repository {
	return r.repo
}
