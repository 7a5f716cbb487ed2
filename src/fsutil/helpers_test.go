package fsutil

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// faultyFs injects failures for chosen paths and refuses to remove
// non-empty directories the way a real OS does.
type faultyFs struct {
	afero.Fs
	failRemove map[string]bool
	failOpen   map[string]bool
	failStat   map[string]bool
}

func newFaultyFs(base afero.Fs) *faultyFs {
	return &faultyFs{
		Fs:         base,
		failRemove: map[string]bool{},
		failOpen:   map[string]bool{},
		failStat:   map[string]bool{},
	}
}

func (f *faultyFs) Remove(name string) error {
	name = filepath.Clean(name)
	if f.failRemove[name] {
		return &os.PathError{Op: "remove", Path: name, Err: os.ErrPermission}
	}
	if infos, err := afero.ReadDir(f.Fs, name); err == nil && len(infos) > 0 {
		return &os.PathError{Op: "remove", Path: name, Err: syscall.ENOTEMPTY}
	}
	return f.Fs.Remove(name)
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	if f.failOpen[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func (f *faultyFs) Stat(name string) (os.FileInfo, error) {
	if f.failStat[filepath.Clean(name)] {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
	}
	return f.Fs.Stat(name)
}

// buildTree creates files (path -> content) and directories (path ending in
// "/") on fs.
func buildTree(t *testing.T, fs afero.Fs, paths map[string]string) {
	t.Helper()
	for p, content := range paths {
		if p[len(p)-1] == '/' {
			require.NoError(t, fs.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, afero.WriteFile(fs, p, []byte(content), 0o644))
	}
}

func entryPaths(entries []EntryInfo) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}
