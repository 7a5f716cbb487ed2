package fsutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	defaultDirPerm  os.FileMode = 0o777
	defaultFilePerm os.FileMode = 0o666
)

// requireDir fails with KindNotFound when p is missing and KindNotADirectory
// when it exists but is something else.
func requireDir(fs afero.Fs, op, p string) error {
	info, err := fs.Stat(p)
	if err != nil {
		return wrapError(op, p, err)
	}
	if !info.IsDir() {
		return newError(op, p, KindNotADirectory, nil)
	}
	return nil
}

// DirectorySize sums the sizes of all regular files below root. Directories
// and symlinks add nothing.
//
// A subdirectory that cannot be read aborts the computation: a partial sum
// would be indistinguishable from a real one.
func DirectorySize(fs afero.Fs, root string) (uint64, error) {
	_, total, err := fileStats(fs, "size", root)
	return total, err
}

// fileStats counts the regular files below root and sums their sizes in one
// pass. Unreadable subdirectories abort it.
func fileStats(fs afero.Fs, op, root string) (count int, total uint64, err error) {
	if err := requireDir(fs, op, root); err != nil {
		return 0, 0, err
	}

	w := &walker{
		fs:        fs,
		recursive: true,
		visit: func(_ string, info os.FileInfo) error {
			if info.Mode().IsRegular() {
				count++
				total += uint64(info.Size())
			}
			return nil
		},
		readErr: func(dir string, err error) error {
			return wrapError(op, dir, err)
		},
	}
	if err := w.walk(root); err != nil {
		return 0, 0, err
	}
	return count, total, nil
}

// DeleteTree removes root and everything below it, children before parents.
//
// Deletion is best effort. When an entry cannot be removed the walk carries
// on with its siblings, and the returned *PartialError lists every entry
// left behind, including the directories that stayed non-empty because of
// it. Symlinks are removed, never followed.
//
// A missing root fails with ErrNotFound; a root that exists but is not a
// directory fails with ErrNotADirectory, not ErrNotFound.
func DeleteTree(fs afero.Fs, root string) error {
	info, err := lstat(fs, root)
	if err != nil {
		return wrapError("deletetree", root, err)
	}
	if !isRealDir(info) {
		return newError("deletetree", root, KindNotADirectory, nil)
	}

	var failed []error
	w := &walker{
		fs:        fs,
		recursive: true,
		postOrder: true,
		visit: func(p string, _ os.FileInfo) error {
			if err := fs.Remove(p); err != nil && !os.IsNotExist(err) {
				failed = append(failed, wrapError("remove", p, err))
			}
			return nil
		},
		readErr: func(dir string, err error) error {
			failed = append(failed, wrapError("readdir", dir, err))
			return nil
		},
	}
	_ = w.walk(root)

	if err := fs.Remove(root); err != nil && !os.IsNotExist(err) {
		failed = append(failed, wrapError("remove", root, err))
	}
	if len(failed) > 0 {
		return &PartialError{Op: "deletetree", Root: root, Errs: failed}
	}
	return nil
}

// CopyEvent describes one entry CopyTree has just created.
type CopyEvent struct {
	Source string
	Target string
	IsDir  bool
	Bytes  int64
}

type copyConfig struct {
	progress func(CopyEvent)
}

// CopyOption configures CopyTree.
type CopyOption func(*copyConfig)

// WithProgress registers fn to be called after every copied entry.
func WithProgress(fn func(CopyEvent)) CopyOption {
	return func(c *copyConfig) {
		c.progress = fn
	}
}

// CopyTree copies the contents of the directory src into dst, creating dst
// when it does not exist. Directories are created before anything is copied
// into them. Existing files at the destination are overwritten and existing
// directories reused. Permission bits and timestamps are not preserved.
//
// Unlike DeleteTree, the first failure aborts the copy and is returned, so a
// half-populated destination is never reported as success. A symlink is
// copied as what it points to; a symlinked directory becomes an empty
// directory. When dst lies inside src it is not copied into itself; dst equal
// to src is refused with ErrAlreadyExists before anything is written.
func CopyTree(fs afero.Fs, src, dst string, opts ...CopyOption) error {
	cfg := &copyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := requireDir(fs, "copytree", src); err != nil {
		return err
	}
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return wrapError("copytree", src, err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return wrapError("copytree", dst, err)
	}
	if absSrc == absDst {
		return newError("copytree", dst, KindAlreadyExists, nil)
	}
	if info, err := fs.Stat(dst); err == nil {
		if !info.IsDir() {
			return newError("copytree", dst, KindNotADirectory, nil)
		}
	} else if os.IsNotExist(err) {
		if err := fs.MkdirAll(dst, defaultDirPerm); err != nil {
			return wrapError("mkdir", dst, err)
		}
	} else {
		return wrapError("copytree", dst, err)
	}

	w := &walker{
		fs:        fs,
		recursive: true,
		visit: func(p string, info os.FileInfo) error {
			if abs, err := filepath.Abs(p); err == nil && abs == absDst {
				return errSkipDir
			}
			rel, err := filepath.Rel(src, p)
			if err != nil {
				return wrapError("copytree", p, err)
			}
			target := filepath.Join(dst, rel)

			if info.Mode()&os.ModeSymlink != 0 {
				if info, err = fs.Stat(p); err != nil {
					return wrapError("copytree", p, err)
				}
			}

			ev := CopyEvent{Source: p, Target: target, IsDir: info.IsDir()}
			if info.IsDir() {
				if err := mkdirIfMissing(fs, target); err != nil {
					return err
				}
			} else {
				n, err := copyFile(fs, p, target)
				if err != nil {
					return err
				}
				ev.Bytes = n
			}
			if cfg.progress != nil {
				cfg.progress(ev)
			}
			return nil
		},
		readErr: func(dir string, err error) error {
			return wrapError("readdir", dir, err)
		},
	}
	return w.walk(src)
}

func mkdirIfMissing(fs afero.Fs, p string) error {
	err := fs.Mkdir(p, defaultDirPerm)
	if err == nil {
		return nil
	}
	if os.IsExist(err) && isDir(fs, p) {
		return nil
	}
	return wrapError("mkdir", p, err)
}

// copyFile copies the bytes of src over dst, truncating dst if it exists.
func copyFile(fs afero.Fs, src, dst string) (int64, error) {
	in, err := fs.Open(src)
	if err != nil {
		return 0, wrapError("copy", src, err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, defaultFilePerm)
	if err != nil {
		return 0, wrapError("copy", dst, err)
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, wrapError("copy", dst, err)
	}
	return n, nil
}
