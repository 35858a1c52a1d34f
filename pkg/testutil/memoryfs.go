package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// maxLinkHops bounds symlink resolution, mirroring the kernel's ELOOP limit
const maxLinkHops = 40

// MemoryFS implements types.FS interface with in-memory storage.
// Only the final path component is resolved through symlinks; links placed
// on intermediate directories are not followed.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode

	// Error injection
	errorPaths map[string]error

	// Per-operation call counts
	calls map[string]int
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	linkDest string
}

func (n *fileNode) isDir() bool  { return n.mode.IsDir() }
func (n *fileNode) isLink() bool { return n.mode&os.ModeSymlink != 0 }

// NewMemoryFS creates a new in-memory filesystem containing only "/"
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {mode: 0755 | os.ModeDir, modTime: time.Now()},
		},
		errorPaths: make(map[string]error),
		calls:      make(map[string]int),
	}
}

// normalizePath converts a path to absolute, cleaned form
func normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join("/", path)
	}
	return filepath.Clean(path)
}

func pathError(op, path string, err error) error {
	return &fs.PathError{Op: op, Path: path, Err: err}
}

// enter records the call and returns an injected error for path, if any
func (m *MemoryFS) enter(op string, paths ...string) error {
	m.calls[op]++
	for _, p := range paths {
		if err, ok := m.errorPaths[normalizePath(p)]; ok {
			return err
		}
	}
	return nil
}

// lookup returns the node at path without following a final symlink
func (m *MemoryFS) lookup(op, path string) (*fileNode, error) {
	node, ok := m.nodes[path]
	if !ok {
		return nil, pathError(op, path, fs.ErrNotExist)
	}
	return node, nil
}

// resolve returns the node at path, following symlinks
func (m *MemoryFS) resolve(op, path string) (*fileNode, string, error) {
	for i := 0; i < maxLinkHops; i++ {
		node, err := m.lookup(op, path)
		if err != nil {
			return nil, "", err
		}
		if !node.isLink() {
			return node, path, nil
		}
		target := node.linkDest
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = filepath.Clean(target)
	}
	return nil, "", pathError(op, path, errors.New("too many levels of symbolic links"))
}

// requireParentDir checks that the parent of path exists and is a directory
func (m *MemoryFS) requireParentDir(op, path string) error {
	parent, _, err := m.resolve(op, filepath.Dir(path))
	if err != nil {
		return pathError(op, path, fs.ErrNotExist)
	}
	if !parent.isDir() {
		return pathError(op, path, errors.New("not a directory"))
	}
	return nil
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("ReadFile", path); err != nil {
		return nil, err
	}

	node, _, err := m.resolve("read", path)
	if err != nil {
		return nil, err
	}
	if node.isDir() {
		return nil, pathError("read", path, errors.New("is a directory"))
	}

	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file, creating it if necessary.
// Like the OS, the parent directory must already exist.
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("WriteFile", path); err != nil {
		return err
	}

	if existing, err := m.lookup("open", path); err == nil && existing.isDir() {
		return pathError("open", path, errors.New("is a directory"))
	}
	if err := m.requireParentDir("open", path); err != nil {
		return err
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.nodes[path] = &fileNode{mode: perm.Perm(), modTime: time.Now(), content: content}
	return nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("Stat", path); err != nil {
		return nil, err
	}

	node, _, err := m.resolve("stat", path)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(path)}, nil
}

// Lstat returns file info without following symlinks
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("Lstat", path); err != nil {
		return nil, err
	}

	node, err := m.lookup("lstat", path)
	if err != nil {
		return nil, err
	}
	return &fileInfo{node: node, name: filepath.Base(path)}, nil
}

// Remove removes a file, symlink or empty directory
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("Remove", path); err != nil {
		return err
	}

	node, err := m.lookup("remove", path)
	if err != nil {
		return err
	}
	if node.isDir() && len(m.children(path)) > 0 {
		return pathError("remove", path, errors.New("directory not empty"))
	}

	delete(m.nodes, path)
	return nil
}

// RemoveAll removes a path and any children it contains.
// A missing path is not an error.
func (m *MemoryFS) RemoveAll(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("RemoveAll", path); err != nil {
		return err
	}
	if path == "/" {
		return pathError("removeall", path, fs.ErrInvalid)
	}

	for p := range m.nodes {
		if p == path || strings.HasPrefix(p, path+"/") {
			delete(m.nodes, p)
		}
	}
	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(name string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("MkdirAll", path); err != nil {
		return err
	}
	return m.mkdirAll(path, perm)
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	current := "/"
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		current = filepath.Join(current, part)

		node, _, err := m.resolve("mkdir", current)
		if err == nil {
			if !node.isDir() {
				return pathError("mkdir", current, errors.New("not a directory"))
			}
			continue
		}
		if _, exists := m.nodes[current]; exists {
			return pathError("mkdir", current, fs.ErrExist)
		}
		m.nodes[current] = &fileNode{mode: perm.Perm() | os.ModeDir, modTime: time.Now()}
	}
	return nil
}

// ReadDir returns the entries of a directory sorted by name, as os.ReadDir does
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("ReadDir", path); err != nil {
		return nil, err
	}

	node, resolved, err := m.resolve("readdir", path)
	if err != nil {
		return nil, err
	}
	if !node.isDir() {
		return nil, pathError("readdir", path, errors.New("not a directory"))
	}

	names := m.children(resolved)
	sort.Strings(names)

	entries := make([]fs.DirEntry, 0, len(names))
	for _, childName := range names {
		child := m.nodes[filepath.Join(resolved, childName)]
		entries = append(entries, fs.FileInfoToDirEntry(&fileInfo{node: child, name: childName}))
	}
	return entries, nil
}

// children returns the base names of the direct children of dir
func (m *MemoryFS) children(dir string) []string {
	var names []string
	for p := range m.nodes {
		if p != dir && filepath.Dir(p) == dir {
			names = append(names, filepath.Base(p))
		}
	}
	return names
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := normalizePath(name)
	if err := m.enter("Readlink", path); err != nil {
		return "", err
	}

	node, err := m.lookup("readlink", path)
	if err != nil {
		return "", err
	}
	if !node.isLink() {
		return "", pathError("readlink", path, fs.ErrInvalid)
	}
	return node.linkDest, nil
}

// Symlink creates newname as a symbolic link to oldname
func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	linkPath := normalizePath(newname)
	if err := m.enter("Symlink", linkPath); err != nil {
		return err
	}

	if _, exists := m.nodes[linkPath]; exists {
		return pathError("symlink", linkPath, fs.ErrExist)
	}
	if err := m.requireParentDir("symlink", linkPath); err != nil {
		return err
	}

	m.nodes[linkPath] = &fileNode{
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		linkDest: oldname,
	}
	return nil
}

// Rename moves oldpath to newpath, replacing newpath if it is not a directory
func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := normalizePath(oldpath)
	to := normalizePath(newpath)
	if err := m.enter("Rename", from, to); err != nil {
		return err
	}

	node, err := m.lookup("rename", from)
	if err != nil {
		return err
	}
	if existing, ok := m.nodes[to]; ok && existing.isDir() {
		return pathError("rename", to, fs.ErrExist)
	}
	if err := m.requireParentDir("rename", to); err != nil {
		return err
	}

	if node.isDir() {
		moved := make(map[string]*fileNode)
		for p, child := range m.nodes {
			if strings.HasPrefix(p, from+"/") {
				moved[to+strings.TrimPrefix(p, from)] = child
				delete(m.nodes, p)
			}
		}
		for p, child := range moved {
			m.nodes[p] = child
		}
	}
	delete(m.nodes, from)
	m.nodes[to] = node
	return nil
}

// WithError configures the filesystem to return err for any operation on path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[normalizePath(path)] = err
	return m
}

// AddFile writes a file, creating its parent directories first
func (m *MemoryFS) AddFile(path, content string) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = normalizePath(path)
	_ = m.mkdirAll(filepath.Dir(path), 0755)
	m.nodes[path] = &fileNode{mode: 0644, modTime: time.Now(), content: []byte(content)}
	return m
}

// Calls returns how many times op ("Rename", "Symlink", ...) was invoked.
// An empty op returns the total over all operations.
func (m *MemoryFS) Calls(op string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if op != "" {
		return m.calls[op]
	}
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir() }
func (fi *fileInfo) Sys() interface{}   { return nil }
