package pathkit

import (
	"os"
	"path/filepath"
)

// Kind classifies a path as resolved by a non-following stat.
type Kind uint8

const (
	KindUnresolved Kind = iota
	KindFile
	KindFolder
	KindSymlink
	// KindUnknown covers device files, sockets, FIFOs - anything that is
	// not a regular file, directory, or symlink.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	case KindSymlink:
		return "symlink"
	case KindUnknown:
		return "unknown"
	default:
		return "unresolved"
	}
}

// PathSpec binds an identity (a joined, normalized path) to a lazily
// resolved filesystem kind and a cached stat record. Construction never
// touches the filesystem; only Resolve, Refresh, Stats, and Exists do.
//
// The resolved kind only moves forward: once classified, a spec never
// returns to KindUnresolved. Refresh re-queries the OS in place; anything
// else reuses the cached classification.
type PathSpec struct {
	path string
	kind Kind
	info *StatInfo
}

// New builds a spec from a base path plus optional joinable segments.
// Segments are joined and cleaned the way the platform joins paths.
// The resulting path may or may not exist.
func New(base string, segments ...string) *PathSpec {
	parts := append([]string{base}, segments...)
	return &PathSpec{path: filepath.Join(parts...)}
}

// newResolved is used by the walker, which classifies entries itself.
func newResolved(path string, kind Kind, info *StatInfo) *PathSpec {
	return &PathSpec{path: path, kind: kind, info: info}
}

// Path returns the normalized joined path.
func (s *PathSpec) Path() string { return s.path }

// Name returns the last path element.
func (s *PathSpec) Name() string { return filepath.Base(s.path) }

// Ext returns the filename extension, including the leading dot.
func (s *PathSpec) Ext() string { return filepath.Ext(s.path) }

func (s *PathSpec) String() string { return s.path }

// Join derives a new, unresolved spec below this one. The receiver is
// never mutated.
func (s *PathSpec) Join(segments ...string) *PathSpec {
	return New(s.path, segments...)
}

// Kind returns the current classification without touching the filesystem.
// It is KindUnresolved until Resolve or Refresh succeeds.
func (s *PathSpec) Kind() Kind { return s.kind }

// Resolve classifies the path with a non-following stat. A symlink resolves
// to KindSymlink; the target is not looked through - resolve the target path
// explicitly when its kind is wanted. Resolve is idempotent: once classified
// it returns the cached kind without re-querying the OS.
func (s *PathSpec) Resolve() (Kind, error) {
	if s.kind != KindUnresolved {
		return s.kind, nil
	}
	return s.Refresh()
}

// Refresh re-queries the OS and replaces the cached kind and stat record.
// On failure the previous classification is kept.
func (s *PathSpec) Refresh() (Kind, error) {
	info, err := Stat(s.path, false)
	if err != nil {
		return s.kind, err
	}
	s.info = info
	s.kind = info.Kind()
	return s.kind, nil
}

// Stats returns the cached stat record, querying the OS if none is cached.
// Specs classified from a directory read carry a kind but no record, so this
// may stat even when the kind is already resolved. The record is a snapshot;
// call Refresh for fresh data.
func (s *PathSpec) Stats() (*StatInfo, error) {
	if s.info == nil {
		if _, err := s.Refresh(); err != nil {
			return nil, err
		}
	}
	return s.info, nil
}

// Exists reports whether the path currently exists, without dereferencing a
// terminal symlink and without disturbing the cached resolution.
func (s *PathSpec) Exists() (bool, error) {
	_, err := os.Lstat(s.path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, pathErr("lstat", s.path, err)
	}
}

// File resolves the spec and returns its file capabilities, or ErrNotFile.
func (s *PathSpec) File() (*FileSpec, error) {
	kind, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	if kind != KindFile {
		return nil, pathErr("file", s.path, ErrNotFile)
	}
	return &FileSpec{s}, nil
}

// Folder resolves the spec and returns its folder capabilities, or ErrNotDir.
func (s *PathSpec) Folder() (*FolderSpec, error) {
	kind, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	if kind != KindFolder {
		return nil, pathErr("folder", s.path, ErrNotDir)
	}
	return &FolderSpec{s}, nil
}

// Symlink resolves the spec and returns its symlink capabilities, or
// ErrNotSymlink.
func (s *PathSpec) Symlink() (*SymlinkSpec, error) {
	kind, err := s.Resolve()
	if err != nil {
		return nil, err
	}
	if kind != KindSymlink {
		return nil, pathErr("symlink", s.path, ErrNotSymlink)
	}
	return &SymlinkSpec{s}, nil
}

// NewFile builds and resolves a spec that must be a regular file.
func NewFile(base string, segments ...string) (*FileSpec, error) {
	return New(base, segments...).File()
}

// NewFolder builds and resolves a spec that must be a directory.
func NewFolder(base string, segments ...string) (*FolderSpec, error) {
	return New(base, segments...).Folder()
}

// NewSymlink builds and resolves a spec that must be a symlink.
func NewSymlink(base string, segments ...string) (*SymlinkSpec, error) {
	return New(base, segments...).Symlink()
}
