package filesystem

import (
	"path/filepath"
	"strings"
)

// FileName returns the last element of p, or "" when p has none: an empty
// path, a path ending in a separator, a root, "." or "..".
func FileName(p string) string {
	if p == "" || strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator)) {
		return ""
	}
	base := filepath.Base(p)
	switch base {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return base
}
