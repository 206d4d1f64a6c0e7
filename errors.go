package pathkit

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Common path operation errors
var (
	ErrNotExist       = errors.New("path does not exist")
	ErrExist          = errors.New("path already exists")
	ErrPermission     = errors.New("permission denied")
	ErrNotDir         = errors.New("not a directory")
	ErrNotFile        = errors.New("not a regular file")
	ErrNotSymlink     = errors.New("not a symlink")
	ErrCycle          = errors.New("symlink cycle detected")
	ErrNotSupported   = errors.New("operation not supported")
	ErrInvalidPattern = errors.New("invalid pattern")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// pathErr wraps an OS-level error with the acting operation and path,
// mapping well-known OS conditions onto the package sentinels. A nil err
// stays nil so call sites can wrap unconditionally.
func pathErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = ErrNotExist
	case errors.Is(err, fs.ErrPermission):
		err = ErrPermission
	case errors.Is(err, fs.ErrExist):
		err = ErrExist
	case errors.Is(err, syscall.ELOOP):
		err = ErrCycle
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist. It recognizes both pathkit and io/fs sentinels.
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist) || errors.Is(err, fs.ErrNotExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission) || errors.Is(err, fs.ErrPermission)
}

// IsNotSupported reports whether an error indicates an operation that is not
// meaningful on this platform or path kind
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}

// IsCycle reports whether an error indicates a detected symlink cycle
func IsCycle(err error) bool {
	return errors.Is(err, ErrCycle)
}
