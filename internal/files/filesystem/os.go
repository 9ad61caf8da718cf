package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osFile implements File interface for OS filesystem
type osFile struct {
	path    string
	relPath string
	info    fs.FileInfo
}

func (f *osFile) Path() string         { return f.path }
func (f *osFile) RelativePath() string { return f.relPath }
func (f *osFile) Info() FileInfo       { return f.info }

// osDirectory implements Directory interface for OS filesystem.
// Paths handed to the walk callback are rooted at root exactly as given to Open.
type osDirectory struct {
	root string
}

func (d *osDirectory) Path() string { return d.root }

func (d *osDirectory) Walk(fn func(File, error) error) error {
	return filepath.Walk(d.root, func(path string, info os.FileInfo, walkErr error) error {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
				}
			}()

			if walkErr != nil {
				callbackErr = fn(nil, fmt.Errorf("%s: %w", path, walkErr))
				return
			}

			relPath, relErr := filepath.Rel(d.root, path)
			if relErr != nil {
				callbackErr = fn(nil, fmt.Errorf("failed to get relative path: %w", relErr))
				return
			}

			callbackErr = fn(&osFile{
				path:    path,
				relPath: relPath,
				info:    info,
			}, nil)
		}()

		return callbackErr
	})
}

// OSFileSystem implements FileSystemProvider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	return &osDirectory{root: filepath.Clean(path)}, nil
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadDir lists path, skipping entries whose metadata cannot be read.
func (p *OSFileSystem) ReadDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		var info FileInfo
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(filepath.Join(path, entry.Name()))
			if err != nil {
				// Broken link: report the link itself.
				info, err = entry.Info()
			}
		} else {
			info, err = entry.Info()
		}
		if err != nil {
			continue
		}
		result = append(result, info)
	}

	return result, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}
