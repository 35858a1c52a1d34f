package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cwalker/chimera/pkg/errors"
)

// Environment variable names. Data and shortcut directory overrides are
// configuration keys read by pkg/config; only the config directory, which
// locates the config file itself, is resolved here.
const (
	EnvConfigDir = "CHIMERA_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name under each XDG base directory
	AppDirName = "chimera"

	// ShortcutsDirName is the data subdirectory holding shortcut files
	ShortcutsDirName = "shortcuts"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "chimera.log"
)

// Paths resolves chimera's well-known directories
type Paths interface {
	DataDir() string
	ShortcutsDir() string
	ContentDir(contentType string) string
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	dataDir      string
	configDir    string
	stateDir     string
	shortcutsDir string
}

// New creates a Paths instance. Empty arguments fall back to the XDG
// defaults; the shortcuts directory defaults to <data>/shortcuts.
func New(dataDir, shortcutsDir string) (Paths, error) {
	p := &paths{}

	p.dataDir = firstNonEmpty(dataDir, filepath.Join(xdg.DataHome, AppDirName))
	p.configDir = firstNonEmpty(os.Getenv(EnvConfigDir), filepath.Join(xdg.ConfigHome, AppDirName))
	p.stateDir = filepath.Join(xdg.StateHome, AppDirName)

	absData, err := filepath.Abs(ExpandHome(p.dataDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for data dir")
	}
	p.dataDir = absData
	p.configDir = ExpandHome(p.configDir)

	shortcuts := firstNonEmpty(shortcutsDir, filepath.Join(p.dataDir, ShortcutsDirName))
	absShortcuts, err := filepath.Abs(ExpandHome(shortcuts))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for shortcuts dir")
	}
	p.shortcutsDir = absShortcuts

	return p, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

func (p *paths) DataDir() string {
	return p.dataDir
}

func (p *paths) ShortcutsDir() string {
	return p.shortcutsDir
}

// ContentDir returns the base directory for a content type, e.g. <data>/content.
// Its base name is what the content store treats as the content type.
func (p *paths) ContentDir(contentType string) string {
	return filepath.Join(p.dataDir, contentType)
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
