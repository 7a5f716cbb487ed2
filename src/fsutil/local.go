package fsutil

import (
	"io"

	"github.com/spf13/afero"
)

var _ FileStore = (*LocalFileStore)(nil)

// LocalFileStore implements FileStore on top of an afero filesystem
type LocalFileStore struct {
	fs afero.Fs
}

// NewLocalFileStore creates a new LocalFileStore. A nil fs means the host
// filesystem.
func NewLocalFileStore(fs afero.Fs) *LocalFileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &LocalFileStore{fs: fs}
}

// Fs exposes the underlying filesystem for the free functions of this package.
func (s *LocalFileStore) Fs() afero.Fs { return s.fs }

func (s *LocalFileStore) Has(path string) bool {
	return Has(s.fs, path)
}

func (s *LocalFileStore) ReadFile(path string) ([]byte, error) {
	return Read(s.fs, path)
}

func (s *LocalFileStore) ReadFileAsStream(path string) (io.ReadCloser, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, wrapError("open", path, err)
	}
	return f, nil
}

func (s *LocalFileStore) WriteFile(path string, contents []byte, v Visibility) error {
	return Write(s.fs, path, contents, v)
}

func (s *LocalFileStore) MakeDirectory(path string, v Visibility) error {
	return CreateDir(s.fs, path, v)
}

func (s *LocalFileStore) RemoveAll(path string) error {
	return DeleteTree(s.fs, path)
}

func (s *LocalFileStore) CopyAll(src, dst string) error {
	return CopyTree(s.fs, src, dst)
}

func (s *LocalFileStore) List(path string, recursive bool) []EntryInfo {
	return ListEntries(s.fs, path, recursive)
}

func (s *LocalFileStore) Stat(path string) (EntryInfo, error) {
	return NormalizeEntry(s.fs, path)
}

// GetFileStats counts the regular files below path and sums their sizes.
func (s *LocalFileStore) GetFileStats(path string) (Stat, error) {
	count, size, err := fileStats(s.fs, "stats", path)
	if err != nil {
		return Stat{}, err
	}
	return Stat{Count: count, Size: size}, nil
}
