package shortcuts_test

import (
	"errors"
	"io/fs"
	"testing"

	chimeraerrors "github.com/cwalker/chimera/pkg/errors"
	"github.com/cwalker/chimera/pkg/shortcuts"
	"github.com/cwalker/chimera/pkg/testutil"
	"github.com/cwalker/chimera/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arcadeShortcuts = `
- name: Pac-Man
  cmd: arcade
  dir: '"/home/gamer/.local/share/chimera/content/arcade/.arcade"'
  params: '"pacman.zip"'
  banner: /home/gamer/.local/share/chimera/banner/arcade/Pac-Man.png
  tags: [arcade, classic]
- name: Pac-Man
  cmd: mame-hd
  dir: /elsewhere
  params: pacman.zip
- name: Galaga
  cmd: arcade
  hidden: true
`

func TestFileName(t *testing.T) {
	assert.Equal(t, "chimera.neo-geo.yaml", shortcuts.FileName("neo-geo"))
}

func TestStore_Load(t *testing.T) {
	memfs := testutil.NewMemoryFS().
		AddFile("/shortcuts/chimera.arcade.yaml", arcadeShortcuts).
		AddFile("/shortcuts/chimera.empty.yaml", "\n").
		AddFile("/shortcuts/chimera.null.yaml", "~\n").
		AddFile("/shortcuts/chimera.broken.yaml", "name: [unterminated\n").
		AddFile("/shortcuts/chimera.mapping.yaml", "name: Pac-Man\ncmd: arcade\n")
	store := shortcuts.NewStore(memfs, "/shortcuts")

	t.Run("parses_records", func(t *testing.T) {
		list, err := store.Load("arcade")
		require.NoError(t, err)
		require.Len(t, list, 3)

		first := list[0]
		assert.Equal(t, "Pac-Man", first.Name)
		assert.Equal(t, "arcade", first.Cmd)
		require.True(t, first.HasFile())
		assert.Equal(t, `"pacman.zip"`, *first.Params)
		assert.Equal(t, []string{"arcade", "classic"}, first.Tags)

		assert.False(t, list[2].HasFile())
		assert.True(t, list[2].Hidden)
	})

	for _, platform := range []string{"missing", "empty", "null"} {
		t.Run(platform+"_yields_empty_list", func(t *testing.T) {
			list, err := store.Load(platform)
			require.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}

	t.Run("malformed_yaml", func(t *testing.T) {
		_, err := store.Load("broken")
		assert.True(t, chimeraerrors.IsErrorCode(err, chimeraerrors.ErrShortcutParse))
	})

	t.Run("not_a_sequence", func(t *testing.T) {
		_, err := store.Load("mapping")
		assert.True(t, chimeraerrors.IsErrorCode(err, chimeraerrors.ErrShortcutParse))
	})

	t.Run("read_failure", func(t *testing.T) {
		memfs.WithError("/shortcuts/chimera.locked.yaml", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission})
		_, err := store.Load("locked")
		assert.True(t, chimeraerrors.IsErrorCode(err, chimeraerrors.ErrShortcutLoad))
		assert.True(t, errors.Is(err, fs.ErrPermission))
	})
}

func TestFind(t *testing.T) {
	list, err := shortcuts.Parse([]byte(arcadeShortcuts))
	require.NoError(t, err)

	t.Run("matches_name_and_cmd", func(t *testing.T) {
		shortcut, err := shortcuts.Find(list, "Pac-Man", "mame-hd")
		require.NoError(t, err)
		assert.Equal(t, "/elsewhere", *shortcut.Dir)
	})

	t.Run("first_match_wins", func(t *testing.T) {
		dup := append([]types.Shortcut{}, list...)
		dup = append(dup, types.Shortcut{Name: "Galaga", Cmd: "arcade", Banner: "second"})

		shortcut, err := shortcuts.Find(dup, "Galaga", "arcade")
		require.NoError(t, err)
		assert.Empty(t, shortcut.Banner)
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := shortcuts.Find(list, "Galaga", "neo-geo")
		require.Error(t, err)
		assert.True(t, chimeraerrors.IsErrorCode(err, chimeraerrors.ErrShortcutNotFound))
		assert.Equal(t, "Galaga", chimeraerrors.GetErrorDetails(err)["name"])
	})
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"/roms/arcade"`, "/roms/arcade"},
		{`""quoted twice""`, `"quoted twice"`},
		{`/roms/arcade`, "/roms/arcade"},
		{`"half`, `"half`},
		{`"`, ""},
		{``, ``},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shortcuts.Strip(tt.in), "Strip(%q)", tt.in)
	}
}
