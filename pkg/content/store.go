package content

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/cwalker/chimera/pkg/errors"
	"github.com/cwalker/chimera/pkg/logging"
	"github.com/cwalker/chimera/pkg/shortcuts"
	"github.com/cwalker/chimera/pkg/types"
)

// ShortcutLoader returns the shortcuts registered for a platform
type ShortcutLoader interface {
	Load(platform string) ([]types.Shortcut, error)
}

// Store manages the content of one base directory
type Store struct {
	fs        types.FS
	layout    Layout
	shortcuts ShortcutLoader
}

// New creates a Store rooted at baseDir. loader is only consulted when
// deleting content of a direct platform.
func New(fs types.FS, baseDir string, loader ShortcutLoader) *Store {
	return &Store{
		fs:        fs,
		layout:    Layout{BaseDir: baseDir},
		shortcuts: loader,
	}
}

// Layout returns the path calculator used by the store
func (s *Store) Layout() Layout {
	return s.layout
}

// Upsert moves src into the storage directory for name under the sanitized
// dstName and points the name's link at it, replacing any previous file of
// the same name and any previous link for name.
//
// It returns the path the launcher should use: the stored file for direct
// platforms, the link otherwise. An empty src is a no-op returning "".
// A dstName that sanitizes to "", "." or ".." is rejected before any I/O.
func (s *Store) Upsert(src, platform, name, dstName string) (string, error) {
	if src == "" {
		return "", nil
	}

	filename := Sanitize(dstName)
	switch filename {
	case "", ".", "..":
		return "", errors.Newf(errors.ErrInvalidInput, "invalid destination file name %q", dstName).
			WithDetail("platform", platform).
			WithDetail("name", name)
	}

	logger := logging.GetLogger("content").With().Str("platform", platform).Str("name", name).Logger()
	defer logging.LogOperationStart(logger, "upsert")()

	fileDir := s.layout.StorageDir(platform, name)
	filePath := s.layout.StoragePath(platform, name, filename)

	if err := s.fs.MkdirAll(fileDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create storage directory %s", fileDir)
	}

	if err := s.removeIfExists(filePath); err != nil {
		return "", err
	}

	if err := s.fs.Rename(src, filePath); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileMove, "failed to move %s to %s", src, filePath).
			WithDetail("source", src).
			WithDetail("destination", filePath)
	}
	logger.Debug().Str("source", src).Str("stored", filePath).Msg("Stored content file")

	link := s.layout.LinkPath(platform, name, filepath.Ext(filename))
	if err := s.DeleteLink(platform, name); err != nil {
		return "", err
	}
	if err := s.fs.Symlink(filePath, link); err != nil {
		return "", errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s to %s", link, filePath)
	}
	logger.Debug().Str("link", link).Str("target", filePath).Msg("Created content link")

	if s.layout.IsDirect(platform) {
		return filePath, nil
	}
	return link, nil
}

// Delete removes the content stored for name along with its links.
//
// For direct platforms the file is the one the platform's shortcut for name
// points at (dir joined with params); a missing shortcut is an error and
// leaves the links untouched.
func (s *Store) Delete(platform, name string) error {
	logger := logging.GetLogger("content").With().Str("platform", platform).Str("name", name).Logger()
	defer logging.LogOperationStart(logger, "delete")()

	if s.layout.IsDirect(platform) {
		if err := s.deleteDirect(platform, name); err != nil {
			return err
		}
	} else {
		fileDir := s.layout.StorageDir(platform, name)
		exists, err := s.exists(fileDir)
		if err != nil {
			return err
		}
		if exists {
			if err := s.fs.RemoveAll(fileDir); err != nil {
				return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove storage directory %s", fileDir)
			}
			logger.Debug().Str("dir", fileDir).Msg("Removed storage directory")
		}
	}

	return s.DeleteLink(platform, name)
}

func (s *Store) deleteDirect(platform, name string) error {
	if s.shortcuts == nil {
		return errors.Newf(errors.ErrInternal, "no shortcut store configured for direct platform %s", platform)
	}

	list, err := s.shortcuts.Load(platform)
	if err != nil {
		return err
	}
	shortcut, err := shortcuts.Find(list, name, platform)
	if err != nil {
		return err
	}
	if !shortcut.HasFile() {
		return nil
	}

	filePath := filepath.Join(shortcuts.Strip(*shortcut.Dir), shortcuts.Strip(*shortcut.Params))
	exists, err := s.exists(filePath)
	if err != nil || !exists {
		return err
	}
	if err := s.fs.Remove(filePath); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", filePath)
	}
	logger := logging.GetLogger("content")
	logger.Debug().Str("file", filePath).Msg("Removed direct content file")
	return nil
}

// FindLinks returns the sorted paths of every entry in the platform
// directory named name plus one extension. A missing platform directory
// yields no links.
func (s *Store) FindLinks(platform, name string) ([]string, error) {
	dir := s.layout.PlatformDir(platform)
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir)
	}

	pattern := LinkPattern(name)
	var links []string
	for _, entry := range entries {
		if pattern.MatchString(entry.Name()) {
			links = append(links, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(links)
	return links, nil
}

// DeleteLink removes every link for name, whatever its extension
func (s *Store) DeleteLink(platform, name string) error {
	links, err := s.FindLinks(platform, name)
	if err != nil {
		return err
	}

	logger := logging.GetLogger("content")
	for _, link := range links {
		if err := s.removeIfExists(link); err != nil {
			return err
		}
		logger.Trace().Str("link", link).Msg("Removed content link")
	}
	return nil
}

// removeIfExists removes path when Lstat sees it, so dangling links count
func (s *Store) removeIfExists(path string) error {
	exists, err := s.exists(path)
	if err != nil || !exists {
		return err
	}
	if err := s.fs.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", path)
	}
	return nil
}

func (s *Store) exists(path string) (bool, error) {
	_, err := s.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", path)
}
