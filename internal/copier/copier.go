// Package copier places samples into category folders under a destination
// root. Existing files are never overwritten.
package copier

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vvka-141/sampleorg/internal/files/filesystem"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// Outcome reports what CopyToDest did with a sample.
type Outcome int

const (
	// OutcomeCopied means the sample was written to its category folder.
	OutcomeCopied Outcome = iota
	// OutcomeSkipped means a file of the same name already existed there.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// CopyToDest copies samplePath to destRoot/category/<file name>, creating
// the category folder as needed. When the target already exists the copy is
// skipped and the existing file is left untouched.
func CopyToDest(samplePath, destRoot, category string) (Outcome, error) {
	name := filesystem.FileName(samplePath)
	if name == "" {
		return OutcomeSkipped, fmt.Errorf("%s: %w", samplePath, sampleorg.ErrFilenameNotFound)
	}

	categoryDir := filepath.Join(destRoot, category)
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return OutcomeSkipped, fmt.Errorf("%w: failed to create %s: %w", sampleorg.ErrCopyFailed, categoryDir, err)
	}

	target := filepath.Join(categoryDir, name)
	if _, err := os.Lstat(target); err == nil {
		return OutcomeSkipped, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return OutcomeSkipped, fmt.Errorf("%w: %s: %w", sampleorg.ErrCopyFailed, target, err)
	}

	if err := copyFile(samplePath, target); err != nil {
		return OutcomeSkipped, fmt.Errorf("%w: %s -> %s: %w", sampleorg.ErrCopyFailed, samplePath, target, err)
	}
	return OutcomeCopied, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	// O_EXCL so a file appearing between the existence check and here is not clobbered.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
