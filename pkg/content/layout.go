package content

import (
	"path/filepath"
	"regexp"
)

// TypeContent is the content type whose direct platforms share storage
const TypeContent = "content"

// DirectPlatforms lists platforms whose emulator needs the original file
// name and a shared directory.
var DirectPlatforms = []string{"arcade", "neo-geo"}

// IsDirect reports whether items of platform and contentType bypass the
// per-item symlink convention.
func IsDirect(platform, contentType string) bool {
	if contentType != TypeContent {
		return false
	}
	for _, p := range DirectPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Layout computes storage and link paths under BaseDir. It does no I/O.
type Layout struct {
	BaseDir string
}

// ContentType is the base name of BaseDir ("content", "banner", ...)
func (l Layout) ContentType() string {
	return filepath.Base(l.BaseDir)
}

// IsDirect reports whether platform is direct for this layout's content type
func (l Layout) IsDirect(platform string) bool {
	return IsDirect(platform, l.ContentType())
}

// PlatformDir is the directory holding a platform's links and storage dirs
func (l Layout) PlatformDir(platform string) string {
	return filepath.Join(l.BaseDir, platform)
}

// StorageDir is the hidden directory holding the real file for name
func (l Layout) StorageDir(platform, name string) string {
	if l.IsDirect(platform) {
		return filepath.Join(l.BaseDir, platform, "."+platform)
	}
	return filepath.Join(l.BaseDir, platform, "."+name)
}

// StoragePath is where filename is stored for name
func (l Layout) StoragePath(platform, name, filename string) string {
	return filepath.Join(l.StorageDir(platform, name), filename)
}

// LinkPath is the visible symlink for name; ext includes the leading dot
func (l Layout) LinkPath(platform, name, ext string) string {
	return filepath.Join(l.BaseDir, platform, name+ext)
}

// LinkPattern matches link file names for name with any single extension
func LinkPattern(name string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(name) + `\.[^.]+$`)
}
