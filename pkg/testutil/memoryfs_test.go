// pkg/testutil/memoryfs_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test MemoryFS implementation

package testutil

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/cwalker/chimera/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ types.FS = (*MemoryFS)(nil)

func TestMemoryFS_BasicOperations(t *testing.T) {
	m := NewMemoryFS()

	t.Run("WriteRequiresParent", func(t *testing.T) {
		err := m.WriteFile("/missing/file.txt", []byte("x"), 0644)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("MkdirAllAndWrite", func(t *testing.T) {
		require.NoError(t, m.MkdirAll("/base/pc/.game1", 0755))
		require.NoError(t, m.WriteFile("/base/pc/.game1/game1.zip", []byte("rom"), 0644))

		content, err := m.ReadFile("/base/pc/.game1/game1.zip")
		require.NoError(t, err)
		assert.Equal(t, "rom", string(content))

		info, err := m.Stat("/base/pc/.game1")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		m.AddFile("/base/pc/b.txt", "b").AddFile("/base/pc/a.txt", "a")

		entries, err := m.ReadDir("/base/pc")
		require.NoError(t, err)

		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Equal(t, []string{".game1", "a.txt", "b.txt"}, names)
	})

	t.Run("RemoveNonEmptyDirFails", func(t *testing.T) {
		assert.Error(t, m.Remove("/base/pc/.game1"))
	})

	t.Run("RemoveAll", func(t *testing.T) {
		require.NoError(t, m.RemoveAll("/base/pc/.game1"))
		_, err := m.Stat("/base/pc/.game1/game1.zip")
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, m.RemoveAll("/base/pc/.never-existed"))
	})
}

func TestMemoryFS_Symlinks(t *testing.T) {
	m := NewMemoryFS().AddFile("/store/.game1/game1.zip", "rom")
	require.NoError(t, m.MkdirAll("/links", 0755))

	require.NoError(t, m.Symlink("/store/.game1/game1.zip", "/links/game1.zip"))

	t.Run("ExistingLinkRejected", func(t *testing.T) {
		err := m.Symlink("/elsewhere", "/links/game1.zip")
		assert.True(t, errors.Is(err, fs.ErrExist))
	})

	t.Run("StatFollowsLstatDoesNot", func(t *testing.T) {
		info, err := m.Stat("/links/game1.zip")
		require.NoError(t, err)
		assert.Zero(t, info.Mode()&os.ModeSymlink)
		assert.Equal(t, int64(3), info.Size())

		info, err = m.Lstat("/links/game1.zip")
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)

		content, err := m.ReadFile("/links/game1.zip")
		require.NoError(t, err)
		assert.Equal(t, "rom", string(content))
	})

	t.Run("Readlink", func(t *testing.T) {
		dest, err := m.Readlink("/links/game1.zip")
		require.NoError(t, err)
		assert.Equal(t, "/store/.game1/game1.zip", dest)

		_, err = m.Readlink("/store/.game1/game1.zip")
		assert.Error(t, err)
	})

	t.Run("RelativeTarget", func(t *testing.T) {
		require.NoError(t, m.Symlink("../store/.game1/game1.zip", "/links/relative.zip"))
		content, err := m.ReadFile("/links/relative.zip")
		require.NoError(t, err)
		assert.Equal(t, "rom", string(content))
	})

	t.Run("Dangling", func(t *testing.T) {
		require.NoError(t, m.RemoveAll("/store"))

		_, err := m.Stat("/links/game1.zip")
		assert.True(t, os.IsNotExist(err))
		_, err = m.Lstat("/links/game1.zip")
		assert.NoError(t, err)

		require.NoError(t, m.Remove("/links/game1.zip"))
		_, err = m.Lstat("/links/game1.zip")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Loop", func(t *testing.T) {
		require.NoError(t, m.Symlink("/links/loop-b", "/links/loop-a"))
		require.NoError(t, m.Symlink("/links/loop-a", "/links/loop-b"))
		_, err := m.Stat("/links/loop-a")
		assert.Error(t, err)
	})
}

func TestMemoryFS_Rename(t *testing.T) {
	m := NewMemoryFS().AddFile("/downloads/game.iso", "iso")
	require.NoError(t, m.MkdirAll("/base/ps2/.game", 0755))

	require.NoError(t, m.Rename("/downloads/game.iso", "/base/ps2/.game/game.iso"))

	_, err := m.Lstat("/downloads/game.iso")
	assert.True(t, os.IsNotExist(err))
	content, err := m.ReadFile("/base/ps2/.game/game.iso")
	require.NoError(t, err)
	assert.Equal(t, "iso", string(content))

	t.Run("Directory", func(t *testing.T) {
		require.NoError(t, m.Rename("/base/ps2/.game", "/base/ps2/.renamed"))
		_, err := m.ReadFile("/base/ps2/.renamed/game.iso")
		assert.NoError(t, err)
		_, err = m.Lstat("/base/ps2/.game")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("MissingSource", func(t *testing.T) {
		err := m.Rename("/downloads/absent.iso", "/base/ps2/absent.iso")
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	crossDevice := &os.LinkError{Op: "rename", Old: "/mnt/usb/a.bin", New: "/base/a.bin", Err: syscall.EXDEV}
	m := NewMemoryFS().AddFile("/mnt/usb/a.bin", "a").WithError("/mnt/usb/a.bin", crossDevice)

	err := m.Rename("/mnt/usb/a.bin", "/a.bin")
	assert.True(t, errors.Is(err, syscall.EXDEV))
	assert.Equal(t, 1, m.Calls("Rename"))
	assert.Equal(t, 1, m.Calls(""))
}
