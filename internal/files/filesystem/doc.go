// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The scanner and the tree printer only ever see these interfaces, so they can be
// exercised against an in-memory tree in tests and against the OS in production.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an entry met during a walk
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
