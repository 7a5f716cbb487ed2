package fsutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"fstree/src/log"
)

// errSkipDir returned from a pre-order visit prunes that directory.
var errSkipDir = errors.New("skip this directory")

func logger() logr.Logger {
	return log.WithName("fsutil")
}

// walker is a depth-first traversal below a root directory. The root itself
// is never visited. Symlinked directories are visited but never entered, so
// no entry is reached twice.
type walker struct {
	fs        afero.Fs
	recursive bool
	postOrder bool

	// visit receives each entry with its Lstat info. A non-nil error aborts
	// the walk.
	visit func(path string, info os.FileInfo) error
	// readErr decides what happens when a directory cannot be listed: nil
	// continues with its siblings, anything else aborts.
	readErr func(dir string, err error) error
}

func (w *walker) walk(dir string) error {
	children, err := readDir(w.fs, dir)
	if err != nil {
		return w.readErr(dir, err)
	}
	for _, child := range children {
		p := filepath.Join(dir, child.Name())
		if !w.postOrder {
			if err := w.visit(p, child); err != nil {
				if err == errSkipDir {
					continue
				}
				return err
			}
		}
		if w.recursive && isRealDir(child) {
			if err := w.walk(p); err != nil {
				return err
			}
		}
		if w.postOrder {
			if err := w.visit(p, child); err != nil {
				return err
			}
		}
	}
	return nil
}

// readDir lists dir without its self and parent references.
func readDir(fs afero.Fs, dir string) ([]os.FileInfo, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	out := infos[:0]
	for _, info := range infos {
		if isDotEntry(info.Name()) {
			continue
		}
		out = append(out, info)
	}
	return out, nil
}

func isDotEntry(name string) bool {
	return name == "." || name == ".."
}

func isRealDir(info os.FileInfo) bool {
	return info.IsDir() && info.Mode()&os.ModeSymlink == 0
}

func lstat(fs afero.Fs, p string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(p)
		return info, err
	}
	return fs.Stat(p)
}

// isDir follows symlinks.
func isDir(fs afero.Fs, p string) bool {
	info, err := fs.Stat(p)
	return err == nil && info.IsDir()
}

// ListEntries returns the normalized entries below root. Without recursive
// only the immediate children are listed; with it every descendant is
// listed, each directory ahead of its own children.
//
// A root that is missing or not a directory yields an empty slice. Entries
// that cannot be stat'd, and subdirectories that cannot be read, are skipped.
// Each directory level comes out in name order, but callers that need a
// defined order should use SortEntries.
func ListEntries(fs afero.Fs, root string, recursive bool) []EntryInfo {
	entries := []EntryInfo{}
	if !isDir(fs, root) {
		return entries
	}
	lg := logger().WithValues("root", root)

	w := &walker{
		fs:        fs,
		recursive: recursive,
		visit: func(p string, _ os.FileInfo) error {
			e, err := NormalizeEntry(fs, p)
			if err != nil {
				lg.V(1).Info("skipping entry", "path", p, "error", err.Error())
				return nil
			}
			if e.Path == "" {
				return nil
			}
			entries = append(entries, e)
			return nil
		},
		readErr: func(dir string, err error) error {
			lg.V(1).Info("skipping unreadable directory", "path", dir, "error", err.Error())
			return nil
		},
	}
	// Neither callback returns an error.
	_ = w.walk(root)
	return entries
}
