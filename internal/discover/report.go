package discover

import (
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"

	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// Reporter writes the pattern report for a set of folders.
type Reporter struct {
	logger sampleorg.Logger
}

// NewReporter creates a Reporter. Panics if logger is nil.
func NewReporter(logger sampleorg.Logger) *Reporter {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reporter{logger: logger}
}

// SortedFolders returns the folders of fs in natural order, so "v2" sorts
// before "v10".
func SortedFolders(fs sampleorg.FolderStems) []string {
	folders := fs.Folders()
	sort.SliceStable(folders, func(i, j int) bool {
		return natural.Less(folders[i], folders[j])
	})
	return folders
}

// Write emits one block per folder, in natural order:
//
//	<folder>
//	- pattern like '<prefix>*': <count> files
//	<blank line>
//
// The first failed write aborts the report and is returned.
func (r *Reporter) Write(w io.Writer, fs sampleorg.FolderStems) error {
	for _, folder := range SortedFolders(fs) {
		if err := r.writeFolder(w, folder, fs[folder]); err != nil {
			return fmt.Errorf("%w: %w", sampleorg.ErrWriteFailed, err)
		}
	}
	return nil
}

func (r *Reporter) writeFolder(w io.Writer, folder string, stems []string) error {
	if _, err := fmt.Fprintln(w, folder); err != nil {
		return err
	}

	groups := Partition(stems)
	patterns := SelectPatterns(groups)
	r.logger.Verbose("%s: %d stems, %d groups, %d reported", folder, len(stems), len(groups), len(patterns))

	for _, p := range patterns {
		if _, err := fmt.Fprintf(w, "- pattern like '%s': %d files\n", p, p.Count); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
