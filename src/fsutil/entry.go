package fsutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// EntryKind tells files and directories apart.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

func (k EntryKind) String() string {
	if k == KindDirectory {
		return "dir"
	}
	return "file"
}

// EntryInfo is a snapshot of one filesystem entry taken when it was queried.
//
// Size, Name, Stem and Extension are only set for files; DirName is only set
// for directories.
type EntryInfo struct {
	Kind       EntryKind
	Path       string // forward slashes, no trailing slash, no "." or ".." segments
	ModifiedAt int64  // unix seconds
	Size       int64
	Name       string
	Stem       string
	Extension  string
	DirName    string
}

func (e EntryInfo) IsDir() bool { return e.Kind == KindDirectory }

// Modified returns ModifiedAt as a time.Time.
func (e EntryInfo) Modified() time.Time { return time.Unix(e.ModifiedAt, 0) }

// MarshalJSON emits only the fields that belong to the entry's kind.
func (e EntryInfo) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{
		"type":      e.Kind.String(),
		"path":      e.Path,
		"timestamp": e.ModifiedAt,
	}
	if e.Kind == KindFile {
		m["size"] = e.Size
		m["filename"] = e.Name
		m["basename"] = e.Stem
		m["extension"] = e.Extension
	} else {
		m["dirname"] = e.DirName
	}
	return json.Marshal(m)
}

// NormalizeEntry stats path once, following symlinks, and builds its
// EntryInfo. It fails when the entry cannot be stat'd, which includes entries
// that vanished after being listed.
func NormalizeEntry(fs afero.Fs, path string) (EntryInfo, error) {
	p := normalizePath(path)
	if p == "" {
		return EntryInfo{}, newError("normalize", path, KindNotFound, nil)
	}
	info, err := fs.Stat(path)
	if err != nil {
		return EntryInfo{}, wrapError("normalize", path, err)
	}
	return mapFileInfo(p, info), nil
}

func mapFileInfo(p string, info os.FileInfo) EntryInfo {
	e := EntryInfo{
		Path:       p,
		ModifiedAt: info.ModTime().Unix(),
	}
	name := info.Name()
	if name == "" || name == "/" || name == "." {
		name = baseName(p)
	}
	if info.IsDir() {
		e.Kind = KindDirectory
		e.DirName = name
		return e
	}
	e.Kind = KindFile
	e.Size = info.Size()
	e.Name = name
	e.Stem, e.Extension = splitExt(name)
	return e
}

// splitExt splits a file name at its last dot. The stem keeps the whole name
// when nothing precedes the dot, so ".bashrc" has stem ".bashrc" and
// extension "bashrc".
func splitExt(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	stem, ext = name[:idx], name[idx+1:]
	if stem == "" {
		stem = name
	}
	return stem, ext
}

// normalizePath converts p to forward slashes and removes "." and ".."
// segments and any trailing slash. A path that cleans to "." is empty.
func normalizePath(p string) string {
	if p == "" {
		return ""
	}
	p = filepath.ToSlash(filepath.Clean(p))
	if p == "." {
		return ""
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func baseName(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	idx := strings.LastIndexByte(p, '/')
	if idx < 0 {
		return p
	}
	return p[idx+1:]
}

// SortEntries orders entries by path. Listings are not guaranteed to be
// ordered, so callers that need a stable order sort explicitly.
func SortEntries(entries []EntryInfo) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}
