package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwalker/chimera/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diskImplementations() map[string]func() types.FS {
	return map[string]func() types.FS{
		"os":    NewOS,
		"afero": func() types.FS { return NewAferoFS(afero.NewOsFs()) },
	}
}

func TestDiskFS_BasicOperations(t *testing.T) {
	for name, newFS := range diskImplementations() {
		t.Run(name, func(t *testing.T) {
			fs := newFS()
			tmpDir := t.TempDir()
			testFile := filepath.Join(tmpDir, "rom.zip")
			testContent := []byte("PK rom bytes")

			require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

			info, err := fs.Stat(testFile)
			require.NoError(t, err)
			assert.Equal(t, "rom.zip", info.Name())
			assert.Equal(t, int64(len(testContent)), info.Size())

			content, err := fs.ReadFile(testFile)
			require.NoError(t, err)
			assert.Equal(t, testContent, content)

			subDir := filepath.Join(tmpDir, "pc", ".game1")
			require.NoError(t, fs.MkdirAll(subDir, 0755))

			entries, err := fs.ReadDir(tmpDir)
			require.NoError(t, err)
			assert.Len(t, entries, 2)

			moved := filepath.Join(subDir, "rom.zip")
			require.NoError(t, fs.Rename(testFile, moved))
			_, err = fs.Stat(testFile)
			assert.True(t, os.IsNotExist(err))

			require.NoError(t, fs.RemoveAll(filepath.Join(tmpDir, "pc")))
			_, err = fs.Stat(moved)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestDiskFS_Symlinks(t *testing.T) {
	for name, newFS := range diskImplementations() {
		t.Run(name, func(t *testing.T) {
			fs := newFS()
			tmpDir := t.TempDir()
			target := filepath.Join(tmpDir, "target.iso")
			link := filepath.Join(tmpDir, "game.iso")

			require.NoError(t, fs.WriteFile(target, []byte("iso"), 0644))
			require.NoError(t, fs.Symlink(target, link))

			dest, err := fs.Readlink(link)
			require.NoError(t, err)
			assert.Equal(t, target, dest)

			info, err := fs.Lstat(link)
			require.NoError(t, err)
			assert.NotZero(t, info.Mode()&os.ModeSymlink)

			// A dangling link is still visible through Lstat
			require.NoError(t, fs.Remove(target))
			_, err = fs.Stat(link)
			assert.True(t, os.IsNotExist(err))
			_, err = fs.Lstat(link)
			assert.NoError(t, err)

			require.NoError(t, fs.Remove(link))
			_, err = fs.Lstat(link)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestAferoFS_MemMapBackend(t *testing.T) {
	fs := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/shortcuts", 0755))
	require.NoError(t, fs.WriteFile("/shortcuts/chimera.pc.yaml", []byte("- name: x\n"), 0644))

	_, err := fs.ReadFile("/shortcuts")
	assert.Error(t, err, "reading a directory must fail")

	entries, err := fs.ReadDir("/shortcuts")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "chimera.pc.yaml", entries[0].Name())

	info, err := fs.Lstat("/shortcuts/chimera.pc.yaml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
