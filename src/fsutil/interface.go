package fsutil

import "io"

// FileStore provides an interface for file system operations
type FileStore interface {
	// Has reports whether a path exists
	Has(path string) bool

	// ReadFile reads a file and returns its contents
	ReadFile(path string) ([]byte, error)

	// ReadFileAsStream opens a file and returns a reader
	ReadFileAsStream(path string) (io.ReadCloser, error)

	// WriteFile replaces a file's contents and sets its visibility
	WriteFile(path string, contents []byte, v Visibility) error

	// MakeDirectory creates a new directory and all necessary parents
	MakeDirectory(path string, v Visibility) error

	// RemoveAll removes a directory and any children it contains
	RemoveAll(path string) error

	// CopyAll copies the contents of one directory into another
	CopyAll(src, dst string) error

	// List returns the entries below a directory
	List(path string, recursive bool) []EntryInfo

	// Stat returns the metadata of a single entry
	Stat(path string) (EntryInfo, error)

	// GetFileStats returns the total count and size of files in a directory tree
	GetFileStats(path string) (Stat, error)
}

// Stat represents statistics about files in a directory
type Stat struct {
	Count int    // Number of files
	Size  uint64 // Total size in bytes
}
