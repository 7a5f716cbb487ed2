package fsutil

import (
	"errors"
	"os"

	"go.uber.org/multierr"
)

// Kind classifies a filesystem failure.
type Kind int

const (
	KindIOFailure Kind = iota
	KindNotFound
	KindNotADirectory
	KindPermissionDenied
	KindAlreadyExists
)

var (
	ErrNotFound         = errors.New("fsutil: not found")
	ErrNotADirectory    = errors.New("fsutil: not a directory")
	ErrPermissionDenied = errors.New("fsutil: permission denied")
	ErrAlreadyExists    = errors.New("fsutil: already exists")
	ErrIOFailure        = errors.New("fsutil: i/o failure")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindNotADirectory:
		return ErrNotADirectory
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindAlreadyExists:
		return ErrAlreadyExists
	default:
		return ErrIOFailure
	}
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindNotADirectory:
		return "not a directory"
	case KindPermissionDenied:
		return "permission denied"
	case KindAlreadyExists:
		return "already exists"
	default:
		return "i/o failure"
	}
}

// Error records a failed operation on a single path.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error // underlying OS error, may be nil
}

func (e *Error) Error() string {
	msg := e.Op + " " + e.Path + ": " + e.Kind.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel matching e.Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func newError(op, path string, kind Kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// wrapError classifies an OS error and attaches the operation and path.
// An error that already is an *Error is returned unchanged.
func wrapError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return newError(op, path, classify(err), err)
}

func classify(err error) Kind {
	switch {
	case os.IsNotExist(err):
		return KindNotFound
	case os.IsPermission(err):
		return KindPermissionDenied
	case os.IsExist(err):
		return KindAlreadyExists
	default:
		return KindIOFailure
	}
}

// KindOf returns the Kind of err, or KindIOFailure when err carries none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return classify(err)
}

// PartialError is returned by best-effort tree operations. Errs holds one
// *Error per entry that could not be processed; the rest of the walk went on.
type PartialError struct {
	Op   string
	Root string
	Errs []error
}

func (e *PartialError) Error() string {
	return e.Op + " " + e.Root + ": " + multierr.Combine(e.Errs...).Error()
}

func (e *PartialError) Unwrap() []error { return e.Errs }

// Paths lists the entries that were left behind, in the order they failed.
func (e *PartialError) Paths() []string {
	paths := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		var fe *Error
		if errors.As(err, &fe) {
			paths = append(paths, fe.Path)
		}
	}
	return paths
}
