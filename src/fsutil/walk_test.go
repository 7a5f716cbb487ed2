package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fstree/src/log"
)

func sampleTree(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	buildTree(t, fs, map[string]string{
		"/data/a.txt":          "0123456789",
		"/data/sub/b.txt":      "01234567890123456789",
		"/data/sub/deep/c.md":  "c",
		"/data/sub/deep/void/": "",
	})
	return fs
}

func TestListEntriesNonRecursive(t *testing.T) {
	fs := sampleTree(t)

	entries := ListEntries(fs, "/data", false)
	assert.Equal(t, []string{"/data/a.txt", "/data/sub"}, entryPaths(entries))
	assert.Equal(t, KindFile, entries[0].Kind)
	assert.Equal(t, KindDirectory, entries[1].Kind)
}

func TestListEntriesRecursive(t *testing.T) {
	fs := sampleTree(t)

	entries := ListEntries(fs, "/data", true)
	paths := entryPaths(entries)
	assert.ElementsMatch(t, []string{
		"/data/a.txt",
		"/data/sub",
		"/data/sub/b.txt",
		"/data/sub/deep",
		"/data/sub/deep/c.md",
		"/data/sub/deep/void",
	}, paths)

	// every directory comes before its descendants
	index := make(map[string]int, len(paths))
	for i, p := range paths {
		index[p] = i
	}
	for _, p := range paths {
		parent := filepath.Dir(p)
		if parent == "/data" {
			continue
		}
		assert.Less(t, index[parent], index[p], "%s listed before its parent", p)
	}
}

func TestListEntriesMissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	entries := ListEntries(fs, "/nonexistent", true)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListEntriesFileRoot(t *testing.T) {
	fs := sampleTree(t)
	assert.Empty(t, ListEntries(fs, "/data/a.txt", false))
}

func TestListEntriesKeepsDotSuffixedNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	buildTree(t, fs, map[string]string{
		"/data/name.":   "x",
		"/data/..dots/": "",
		"/data/.hidden": "y",
	})

	entries := ListEntries(fs, "/data", true)
	assert.ElementsMatch(t, []string{"/data/name.", "/data/..dots", "/data/.hidden"}, entryPaths(entries))
}

func TestListEntriesSkipsVanishedEntry(t *testing.T) {
	fs := newFaultyFs(sampleTree(t))
	fs.failStat["/data/sub/b.txt"] = true

	paths := entryPaths(ListEntries(fs, "/data", true))
	assert.NotContains(t, paths, "/data/sub/b.txt")
	assert.Contains(t, paths, "/data/sub/deep/c.md")
}

func TestListEntriesSkipsUnreadableDirectory(t *testing.T) {
	fs := newFaultyFs(sampleTree(t))
	fs.failOpen["/data/sub/deep"] = true

	paths := entryPaths(ListEntries(fs, "/data", true))
	assert.Equal(t, []string{"/data/a.txt", "/data/sub", "/data/sub/b.txt", "/data/sub/deep"}, paths)
}

func TestListEntriesLogsSkipsWithRoot(t *testing.T) {
	prev := log.Logger()
	t.Cleanup(func() { log.SetLogger(prev) })

	var lines []string
	log.SetLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 1}))

	fs := newFaultyFs(sampleTree(t))
	fs.failOpen["/data/sub/deep"] = true
	ListEntries(fs, "/data", true)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "fsutil")
	assert.Contains(t, lines[0], `"root"="/data"`)
	assert.Contains(t, lines[0], `"path"="/data/sub/deep"`)
}

func TestListEntriesDoesNotFollowSymlinkedDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "real"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "real", "f.txt"), []byte("abc"), 0o644))
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	fs := afero.NewOsFs()
	entries := ListEntries(fs, root, true)

	byPath := map[string]EntryInfo{}
	for _, e := range entries {
		byPath[e.Path] = e
	}
	slash := filepath.ToSlash(root)
	require.Len(t, entries, 3)
	assert.True(t, byPath[slash+"/link"].IsDir())
	assert.Contains(t, byPath, slash+"/real/f.txt")
	assert.NotContains(t, byPath, slash+"/link/f.txt")
}
