package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/sampleorg/internal/files/filesystem"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// Scanner discovers audio samples in a directory tree.
// Traversal is best effort: entries that fail to read are logged at verbose
// level and skipped. Only a failure to open the root is returned as an error.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     sampleorg.Logger
	extension  string
}

// NewScanner creates a new sample scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger sampleorg.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a new sample scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger sampleorg.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		logger:     logger,
		extension:  sampleorg.DefaultAudioExtension,
	}
}

// WithExtension returns a copy of the scanner matching ext instead of the
// default audio extension. A leading dot is ignored; empty keeps the current one.
func (s *Scanner) WithExtension(ext string) *Scanner {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return s
	}
	cp := *s
	cp.extension = ext
	return &cp
}

// Extension returns the extension (without dot) the scanner matches.
func (s *Scanner) Extension() string {
	return s.extension
}

// FindSamples returns the path of every sample under sourcePath in walk order.
func (s *Scanner) FindSamples(sourcePath string) ([]string, error) {
	var samples []string
	err := s.walkSamples(sourcePath, func(path, _ string) {
		samples = append(samples, path)
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

// ScanFolders groups the stems of samples under sourcePath by the folder
// that directly contains them. Stems keep walk order within a folder.
// Samples whose stem is not valid UTF-8 are left out.
func (s *Scanner) ScanFolders(sourcePath string) (sampleorg.FolderStems, error) {
	folders := sampleorg.FolderStems{}
	err := s.walkSamples(sourcePath, func(path, stem string) {
		if !utf8.ValidString(stem) {
			s.logger.Verbose("Skipping %q: name is not valid UTF-8", path)
			return
		}
		folders.Add(parentFolder(path), stem)
	})
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// walkSamples calls visit with the path and stem of each matching sample.
func (s *Scanner) walkSamples(sourcePath string, visit func(path, stem string)) error {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w: %w", sourcePath, sampleorg.ErrSourceNotFound, err)
	}

	return dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			s.logger.Verbose("Skipping unreadable entry: %v", err)
			return nil
		}

		if !s.isFile(file) {
			return nil
		}

		stem, ok := s.matchStem(file.Info().Name())
		if !ok {
			return nil
		}

		visit(file.Path(), stem)
		return nil
	})
}

// isFile reports whether the entry is a regular file, following symlinks.
// Dangling links are skipped.
func (s *Scanner) isFile(file filesystem.File) bool {
	info := file.Info()
	if info.Mode()&fs.ModeSymlink == 0 {
		return info.Mode().IsRegular()
	}

	target, err := s.fsProvider.Stat(file.Path())
	if err != nil {
		s.logger.Verbose("Skipping broken link %s: %v", file.Path(), err)
		return false
	}
	return target.Mode().IsRegular()
}

// matchStem returns the stem of name when its extension matches.
func (s *Scanner) matchStem(name string) (string, bool) {
	stem, ext, ok := splitExt(name)
	if !ok || !strings.EqualFold(ext, s.extension) {
		return "", false
	}
	return stem, true
}

// splitExt splits name at its last dot. Names without a dot, and dotfiles
// such as ".wav", have no extension.
func splitExt(name string) (stem, ext string, ok bool) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, "", false
	}
	return name[:idx], name[idx+1:], true
}

// parentFolder returns the directory containing path, or "." when it has none.
func parentFolder(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return sampleorg.CurrentDirectory
	}
	return dir
}

// Verify Scanner implements the interface at compile time
var _ sampleorg.SampleScanner = (*Scanner)(nil)
