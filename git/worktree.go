package git

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/input-output-hk/catalyst-jslint/errors"
)

// Signature identifies the author of a commit.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// Add stages files in the worktree for the next commit.
// Paths that don't exist are silently ignored (matching git add behavior).
func (r *Repo) Add(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "git: cancelled")
		}
		if p == "" {
			continue
		}
		if _, err := r.worktree.Filesystem.Stat(p); err != nil {
			continue
		}
		if _, err := r.worktree.Add(p); err != nil {
			return errors.WrapWithContext(err, errors.CodeIO, "git: failed to add path",
				map[string]interface{}{"path": p})
		}
	}
	return nil
}

// Commit records the staged changes and returns the new commit hash.
func (r *Repo) Commit(ctx context.Context, msg string, who Signature) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "git: cancelled")
	}
	if msg == "" {
		return "", errors.New(errors.CodeInvalidInput, "git: commit message cannot be empty")
	}
	if who.Name == "" || who.Email == "" {
		return "", errors.New(errors.CodeInvalidInput, "git: committer name and email are required")
	}
	if who.When.IsZero() {
		who.When = time.Now()
	}

	sig := &object.Signature{Name: who.Name, Email: who.Email, When: who.When}
	hash, err := r.worktree.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "git: failed to commit")
	}
	return hash.String(), nil
}

// ChangedFiles returns the worktree-relative, slash-separated paths of files
// that are added, modified, renamed, copied or untracked, either in the index
// or in the worktree. Deleted files are left out. The result is sorted.
func (r *Repo) ChangedFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "git: cancelled")
	}

	status, err := r.worktree.Status()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "git: failed to get worktree status")
	}

	var files []string
	for file, st := range status {
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		if changed(st.Staging) || changed(st.Worktree) {
			files = append(files, file)
		}
	}
	sort.Strings(files)
	return files, nil
}

func changed(code git.StatusCode) bool {
	switch code {
	case git.Added, git.Modified, git.Renamed, git.Copied, git.Untracked:
		return true
	}
	return false
}

// Within filters files down to those equal to or below one of roots.
// A root of "." or "" matches everything.
func Within(files, roots []string) []string {
	if len(roots) == 0 {
		return files
	}
	var out []string
	for _, f := range files {
		for _, root := range roots {
			root = strings.TrimSuffix(path.Clean(strings.ReplaceAll(root, "\\", "/")), "/")
			if root == "." || root == "" || f == root || strings.HasPrefix(f, root+"/") {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
