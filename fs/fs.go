// Package fs defines the filesystem abstraction used to load JavaScript
// sources and configuration files. Implementations live in subpackages.
package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// ReadFS is the read-only view the linter needs over a source tree.
type ReadFS interface {
	// ReadFile returns the full contents of the named file.
	ReadFile(path string) ([]byte, error)
	// Stat returns file information for path.
	Stat(path string) (os.FileInfo, error)
	// Exists reports whether path exists.
	Exists(path string) (bool, error)
	// Walk walks the tree rooted at root in lexical order.
	Walk(root string, walkFn filepath.WalkFunc) error
}

// Filesystem extends ReadFS with the write operations used by tests and tooling.
type Filesystem interface {
	ReadFS
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
	Remove(path string) error
}

// SourceExtensions lists the file extensions treated as JavaScript sources.
var SourceExtensions = []string{".js", ".mjs", ".cjs", ".jsx"}

// IsSource reports whether path has one of the SourceExtensions.
func IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SourceExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
