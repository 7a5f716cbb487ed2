package fsutil

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDirIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, CreateDir(fs, "/a/b/c", Public))
	require.NoError(t, CreateDir(fs, "/a/b/c", Public))
	assert.True(t, isDir(fs, "/a/b/c"))

	info, err := fs.Stat("/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCreateDirPrivate(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, CreateDir(fs, "/secret", Private))
	v, err := GetVisibility(fs, "/secret")
	require.NoError(t, err)
	assert.Equal(t, Private, v)
}

func TestCreateDirOverFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	buildTree(t, fs, map[string]string{"/taken": "x"})

	err := CreateDir(fs, "/taken", Public)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}

func TestWriteAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, CreateDir(fs, "/docs", Public))

	assert.False(t, Has(fs, "/docs/note.txt"))
	require.NoError(t, Write(fs, "/docs/note.txt", []byte("first"), Public))
	require.NoError(t, Write(fs, "/docs/note.txt", []byte("second"), Private))
	assert.True(t, Has(fs, "/docs/note.txt"))

	data, err := Read(fs, "/docs/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := fs.Stat("/docs/note.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// no temporary files left behind
	assert.Equal(t, []string{"/docs/note.txt"}, entryPaths(ListEntries(fs, "/docs", false)))
}

func TestReadMissing(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := Read(fs, "/nothing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDelete(t *testing.T) {
	fs := sampleTree(t)

	require.NoError(t, Delete(fs, "/data/a.txt"))
	assert.False(t, Has(fs, "/data/a.txt"))

	assert.True(t, errors.Is(Delete(fs, "/data/a.txt"), ErrNotFound))
	assert.Error(t, Delete(fs, "/data/sub"))
	assert.True(t, Has(fs, "/data/sub/b.txt"))
}

func TestRenameAndCopy(t *testing.T) {
	fs := sampleTree(t)

	require.NoError(t, Rename(fs, "/data/a.txt", "/data/renamed.txt"))
	assert.False(t, Has(fs, "/data/a.txt"))

	require.NoError(t, Copy(fs, "/data/renamed.txt", "/data/copy.txt"))
	data, err := Read(fs, "/data/copy.txt")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))

	assert.True(t, errors.Is(Rename(fs, "/data/ghost", "/data/x"), ErrNotFound))
}

func TestMetadataAccessors(t *testing.T) {
	fs := sampleTree(t)
	mtime := time.Unix(1600000000, 0)
	require.NoError(t, fs.Chtimes("/data/a.txt", mtime, mtime))

	ts, err := GetTimestamp(fs, "/data/a.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(1600000000), ts)

	size, err := GetSize(fs, "/data/a.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)

	_, err = GetSize(fs, "/data/sub")
	assert.Error(t, err)

	meta, err := GetMetadata(fs, "/data/sub")
	require.NoError(t, err)
	assert.Equal(t, "sub", meta.DirName)
}
