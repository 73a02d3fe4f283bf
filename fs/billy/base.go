package billy

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// nativeOS passes paths to the operating system untouched. Relative paths
// resolve against the process working directory and absolute paths stay
// absolute, which is how source and config paths arrive from the command line.
type nativeOS struct {
	osfs.ChrootOS
}

// Chroot scopes a worktree or .git directory for go-git.
//
//nolint:ireturn // go-billy's Chroot returns billy.Filesystem.
func (n *nativeOS) Chroot(dir string) (billy.Filesystem, error) {
	return osfs.New(dir), nil
}

func (n *nativeOS) Root() string {
	return "/"
}

// NewBaseOSFS returns the filesystem the linter and CLI use by default.
func NewBaseOSFS() *FS {
	return NewFS(&nativeOS{})
}
