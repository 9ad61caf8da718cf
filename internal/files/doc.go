// Package files groups the file-related sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: audio sample discovery
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/sampleorg/internal/files/filesystem"
//	    "github.com/vvka-141/sampleorg/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
//	folders, err := s.ScanFolders("./samples")
package files
