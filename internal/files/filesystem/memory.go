package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory entries.
// A non-nil err marks an entry that fails when the walker reaches it.
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
	err     error
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in the same order filepath.Walk would: depth first,
// names sorted within each directory. An unreadable entry is reported once
// and nothing beneath it is visited.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return lessPathComponents(entries[i].absPath, entries[j].absPath)
	})

	var broken []string
	for _, entry := range entries {
		if under(entry.absPath, broken) {
			continue
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			if entry.err != nil {
				broken = append(broken, entry.absPath)
				callbackErr = fn(nil, fmt.Errorf("%s: %w", entry.absPath, entry.err))
				return
			}

			relPath, err := filepath.Rel(d.absPath, entry.absPath)
			if err != nil {
				relPath = entry.relPath
			}
			callbackErr = fn(&memoryFile{
				absPath: entry.absPath,
				relPath: filepath.ToSlash(relPath),
				info:    entry.info,
			}, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

// lessPathComponents orders slash-separated paths component by component.
func lessPathComponents(a, b string) bool {
	pa := strings.Split(a, "/")
	pb := strings.Split(b, "/")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}

func under(p string, roots []string) bool {
	for _, root := range roots {
		if strings.HasPrefix(p, root+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newMemoryDir(root, ".")
	return mfs
}

func newMemoryDir(absPath, relPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: relPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// resolve maps p onto an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	return strings.TrimPrefix(absPath, strings.TrimSuffix(mfs.root, "/")+"/")
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
			isDir:   false,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an (empty) directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newMemoryDir(absPath, mfs.relative(absPath))
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddUnreadable adds an entry that fails with err when walked or listed,
// the way a permission-denied directory or a dangling symlink does.
func (mfs *MemoryFileSystem) AddUnreadable(entryPath string, err error) {
	absPath := mfs.resolve(entryPath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		info: &memoryFileInfo{
			name: path.Base(absPath),
			mode: 0,
		},
		err: err,
	}
	mfs.ensureDirectoriesExist(absPath)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = newMemoryDir(dir, mfs.relative(dir))
	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile

	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}

	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if file.err != nil {
		return nil, fmt.Errorf("failed to access path: %w", file.err)
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{
		absPath: absPath,
		fs:      mfs,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if file.err != nil {
		return nil, file.err
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return file.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir.
// Unreadable entries are left out, as OSFileSystem does.
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)

	dir, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %s not found", dirPath)
	}
	if dir.err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", dir.err)
	}
	if !dir.info.IsDir() {
		return nil, fmt.Errorf("failed to read directory: %s is not a directory", dirPath)
	}

	var result []FileInfo
	for p, file := range mfs.files {
		if p == absPath || path.Dir(p) != absPath || file.err != nil {
			continue
		}
		result = append(result, file.info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })

	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s", statPath)
	}
	if file.err != nil {
		return nil, file.err
	}

	return file.info, nil
}
