package sampleorg

// SampleScanner defines the interface for discovering audio samples in a directory tree.
// Implementations must be safe for concurrent use by multiple goroutines.
type SampleScanner interface {
	// FindSamples returns the path of every audio sample under sourcePath.
	FindSamples(sourcePath string) ([]string, error)

	// ScanFolders returns the stems of the audio samples under sourcePath,
	// keyed by the folder that directly contains them.
	ScanFolders(sourcePath string) (FolderStems, error)
}

// FolderStems maps a folder path to the stems (file names without extension)
// of the samples found directly inside it. Stems keep scan order.
type FolderStems map[string][]string

// Add appends stem to the list kept for folder.
func (fs FolderStems) Add(folder, stem string) {
	fs[folder] = append(fs[folder], stem)
}

// Folders returns the folder keys in no particular order.
func (fs FolderStems) Folders() []string {
	folders := make([]string, 0, len(fs))
	for folder := range fs {
		folders = append(folders, folder)
	}
	return folders
}
