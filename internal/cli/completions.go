package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeConfigFiles offers files with a supported config extension.
func completeConfigFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return configExtensions, cobra.ShellCompDirectiveFilterFileExt
}

var configExtensions = []string{"toml", "yaml", "yml"}

func hasConfigExtension(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, e := range configExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
