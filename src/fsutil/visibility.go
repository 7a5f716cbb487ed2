package fsutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Visibility is the symbolic access level of a file or directory.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

var permissions = map[bool]map[Visibility]os.FileMode{
	// keyed by isDir
	false: {Public: 0o644, Private: 0o600},
	true:  {Public: 0o755, Private: 0o700},
}

// ParseVisibility accepts "public" or "private", in any case.
func ParseVisibility(s string) (Visibility, error) {
	switch v := Visibility(strings.ToLower(strings.TrimSpace(s))); v {
	case Public, Private:
		return v, nil
	default:
		return "", fmt.Errorf("invalid visibility %q: want public or private", s)
	}
}

// Perm returns the permission bits v stands for on a file or directory.
func (v Visibility) Perm(isDir bool) os.FileMode {
	if p, ok := permissions[isDir][v]; ok {
		return p
	}
	return permissions[isDir][Public]
}

// GetVisibility classifies path as public when its group or other read bit
// is set.
func GetVisibility(fs afero.Fs, path string) (Visibility, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return "", wrapError("visibility", path, err)
	}
	if info.Mode().Perm()&0o044 != 0 {
		return Public, nil
	}
	return Private, nil
}

// SetVisibility chmods path to the bits v maps to for its kind.
func SetVisibility(fs afero.Fs, path string, v Visibility) error {
	info, err := fs.Stat(path)
	if err != nil {
		return wrapError("chmod", path, err)
	}
	if err := fs.Chmod(path, v.Perm(info.IsDir())); err != nil {
		return wrapError("chmod", path, err)
	}
	return nil
}
