package billy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parentfs "github.com/input-output-hk/catalyst-jslint/fs"
)

func seedSources(t *testing.T, fsys parentfs.Filesystem) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll("src/lib", 0o755))
	require.NoError(t, fsys.WriteFile("src/index.js", []byte("foo.hasOwnProperty('bar');\n"), 0o644))
	require.NoError(t, fsys.WriteFile("src/lib/util.mjs", []byte("export const x = 1;\n"), 0o644))
	require.NoError(t, fsys.WriteFile("src/README.md", []byte("# docs\n"), 0o644))
}

func TestInMemoryFS(t *testing.T) {
	fsys := NewInMemoryFS()
	seedSources(t, fsys)

	t.Run("read file", func(t *testing.T) {
		data, err := fsys.ReadFile("src/index.js")
		require.NoError(t, err)
		assert.Equal(t, "foo.hasOwnProperty('bar');\n", string(data))
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := fsys.Exists("src/lib")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = fsys.Exists("src/missing.js")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("stat directory", func(t *testing.T) {
		info, err := fsys.Stat("src/lib")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("walk finds sources", func(t *testing.T) {
		var sources []string
		err := fsys.Walk("src", func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && parentfs.IsSource(path) {
				sources = append(sources, filepath.ToSlash(path))
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"src/index.js", "src/lib/util.mjs"}, sources)
	})

	t.Run("read missing file wraps error", func(t *testing.T) {
		_, err := fsys.ReadFile("nope.js")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), `billy: readfile "nope.js"`)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, fsys.WriteFile("tmp.js", []byte("x"), 0o644))
		require.NoError(t, fsys.Remove("tmp.js"))
		ok, err := fsys.Exists("tmp.js")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBaseOSFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "a.js"), []byte("a();"), 0o644))

	fsys := NewBaseOSFS()

	t.Run("absolute paths", func(t *testing.T) {
		data, err := fsys.ReadFile(filepath.Join(dir, "src", "a.js"))
		require.NoError(t, err)
		assert.Equal(t, "a();", string(data))
	})

	t.Run("chroot", func(t *testing.T) {
		scoped, err := fsys.Raw().Chroot(dir)
		require.NoError(t, err)

		f, err := NewFS(scoped).ReadFile("src/a.js")
		require.NoError(t, err)
		assert.Equal(t, "a();", string(f))
	})
}

func TestIsSource(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.js", true},
		{"a.MJS", true},
		{"dir/a.cjs", true},
		{"a.jsx", true},
		{"a.ts", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, parentfs.IsSource(tt.path))
		})
	}
}
