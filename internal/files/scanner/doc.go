// Package scanner provides discovery of audio samples in a directory tree.
//
// The scanner package is responsible for:
//   - Recursively discovering files whose extension matches the audio extension
//   - Grouping sample stems by the folder that directly contains them
//   - Skipping unreadable entries and dangling links instead of failing
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
