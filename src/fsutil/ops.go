package fsutil

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Has reports whether path exists. It never fails; an entry that cannot be
// stat'd counts as absent.
func Has(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

func Read(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, wrapError("read", path, err)
	}
	return data, nil
}

// Write replaces the contents of path and applies v. The data goes to a
// temporary sibling first and is renamed into place, so readers never see a
// partially written file.
func Write(fs afero.Fs, path string, contents []byte, v Visibility) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := afero.WriteFile(fs, tmp, contents, v.Perm(false)); err != nil {
		_ = fs.Remove(tmp)
		return wrapError("write", path, err)
	}
	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return wrapError("write", path, err)
	}
	return SetVisibility(fs, path, v)
}

// Delete removes a single file. Directories are refused; use DeleteTree.
func Delete(fs afero.Fs, path string) error {
	info, err := lstat(fs, path)
	if err != nil {
		return wrapError("delete", path, err)
	}
	if isRealDir(info) {
		return newError("delete", path, KindIOFailure, os.ErrInvalid)
	}
	if err := fs.Remove(path); err != nil {
		return wrapError("delete", path, err)
	}
	return nil
}

func Rename(fs afero.Fs, oldPath, newPath string) error {
	if err := fs.Rename(oldPath, newPath); err != nil {
		return wrapError("rename", oldPath, err)
	}
	return nil
}

// Copy copies one file, overwriting dst.
func Copy(fs afero.Fs, src, dst string) error {
	_, err := copyFile(fs, src, dst)
	return err
}

// CreateDir creates path and any missing parents with the directory bits of
// v. Calling it on an existing directory succeeds without changing it.
func CreateDir(fs afero.Fs, path string, v Visibility) error {
	if info, err := fs.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return newError("mkdir", path, KindAlreadyExists, nil)
	}
	if err := fs.MkdirAll(path, v.Perm(true)); err != nil {
		return wrapError("mkdir", path, err)
	}
	// MkdirAll is subject to the umask; pin the exact bits.
	if err := fs.Chmod(path, v.Perm(true)); err != nil {
		return wrapError("mkdir", path, err)
	}
	return nil
}

// GetMetadata is NormalizeEntry for a single path.
func GetMetadata(fs afero.Fs, path string) (EntryInfo, error) {
	return NormalizeEntry(fs, path)
}

// GetTimestamp returns the modification time of path in unix seconds.
func GetTimestamp(fs afero.Fs, path string) (int64, error) {
	e, err := NormalizeEntry(fs, path)
	if err != nil {
		return 0, err
	}
	return e.ModifiedAt, nil
}

// GetSize returns the size of the file at path. Directories have no size.
func GetSize(fs afero.Fs, path string) (int64, error) {
	e, err := NormalizeEntry(fs, path)
	if err != nil {
		return 0, err
	}
	if e.IsDir() {
		return 0, newError("size", path, KindIOFailure, os.ErrInvalid)
	}
	return e.Size, nil
}
