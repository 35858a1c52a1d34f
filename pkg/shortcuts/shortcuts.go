// Package shortcuts reads the launcher's per-platform shortcut files.
//
// Each platform has a YAML sequence of shortcut mappings at
// <dir>/chimera.<platform>.yaml. The files are owned by the launcher's
// shortcut manager; this package never writes them.
package shortcuts

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cwalker/chimera/pkg/errors"
	"github.com/cwalker/chimera/pkg/logging"
	"github.com/cwalker/chimera/pkg/types"
	"gopkg.in/yaml.v3"
)

// FileName returns the shortcut file name for platform
func FileName(platform string) string {
	return fmt.Sprintf("chimera.%s.yaml", platform)
}

// Store loads shortcut files from a directory
type Store struct {
	fs  types.FS
	dir string
}

// NewStore creates a Store reading from dir
func NewStore(fs types.FS, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Dir returns the directory shortcut files are read from
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the shortcut file path for platform
func (s *Store) Path(platform string) string {
	return filepath.Join(s.dir, FileName(platform))
}

// Load returns the shortcuts registered for platform. A missing file or an
// empty document yields an empty list.
func (s *Store) Load(platform string) ([]types.Shortcut, error) {
	path := s.Path(platform)
	logger := logging.GetLogger("shortcuts")

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("No shortcut file")
			return []types.Shortcut{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrShortcutLoad, "failed to read shortcuts from %s", path)
	}

	list, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrShortcutParse, "failed to parse shortcuts from %s", path)
	}
	logger.Debug().Str("path", path).Int("count", len(list)).Msg("Loaded shortcuts")
	return list, nil
}

// Parse decodes a shortcut file. Blank or null documents yield an empty list.
func Parse(data []byte) ([]types.Shortcut, error) {
	list := []types.Shortcut{}
	if len(bytes.TrimSpace(data)) == 0 {
		return list, nil
	}
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []types.Shortcut{}
	}
	return list, nil
}

// Find returns the first shortcut with the given name launched by platform
func Find(list []types.Shortcut, name, platform string) (types.Shortcut, error) {
	for _, shortcut := range list {
		if shortcut.Name == name && shortcut.Cmd == platform {
			return shortcut, nil
		}
	}
	return types.Shortcut{}, errors.Newf(errors.ErrShortcutNotFound, "no %s shortcut named %q", platform, name).
		WithDetail("platform", platform).
		WithDetail("name", name)
}

// Strip removes one pair of surrounding double quotes
func Strip(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if len(s) < 2 {
			return ""
		}
		return s[1 : len(s)-1]
	}
	return s
}
