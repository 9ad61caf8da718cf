package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// File represents an individual entry met during a walk
type File interface {
	// Path returns the path of the entry, rooted at the walked directory's path
	Path() string

	// RelativePath returns the path relative to the walked directory
	RelativePath() string

	// Info returns entry metadata (not following symlinks)
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the path the directory was opened with
	Path() string

	// Walk traverses the directory tree, calling fn for each file and directory.
	// When an entry cannot be read, fn receives a nil File and the error.
	// If fn returns an error, walking stops and Walk returns that error.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the readable entries directly inside path.
	// Symlinks are resolved where possible so that IsDir reports the target.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path, following symlinks
	Stat(path string) (FileInfo, error)
}
