// Package tree renders a directory hierarchy with box-drawing connectors.
package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/maruel/natural"

	"github.com/vvka-141/sampleorg/internal/files/filesystem"
)

const (
	branchPrefix = "├── "
	lastPrefix   = "└── "
	branchIndent = "│   "
	lastIndent   = "    "
)

// PrintTree writes the entries of dir to w, one per line, recursing into
// subdirectories. Entries are listed in natural order. With foldersOnly,
// files are left out but still count when deciding which entry is last.
// A directory that cannot be read prints nothing; write errors are returned.
func PrintTree(w io.Writer, fsProvider filesystem.FileSystemProvider, dir, indent string, foldersOnly bool) error {
	entries, err := fsProvider.ReadDir(dir)
	if err != nil {
		return nil
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return natural.Less(entries[i].Name(), entries[j].Name())
	})

	for i, entry := range entries {
		isDir := entry.IsDir()
		isLast := i == len(entries)-1

		if foldersOnly && !isDir {
			continue
		}

		prefix, childIndent := branchPrefix, branchIndent
		if isLast {
			prefix, childIndent = lastPrefix, lastIndent
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, prefix, entry.Name()); err != nil {
			return err
		}

		if isDir {
			if err := PrintTree(w, fsProvider, filepath.Join(dir, entry.Name()), indent+childIndent, foldersOnly); err != nil {
				return err
			}
		}
	}
	return nil
}
