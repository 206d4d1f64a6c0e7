package pathkit

import (
	"os"
	"path/filepath"
)

// SymlinkSpec adds symlink capabilities to a resolved PathSpec. Operations
// act on the link itself, never on its target, unless documented otherwise.
type SymlinkSpec struct {
	*PathSpec
}

// Target returns the link's stored target, exactly as written (possibly
// relative to the link's directory). The target is not checked for
// existence.
func (s *SymlinkSpec) Target() (string, error) {
	target, err := os.Readlink(s.path)
	if err != nil {
		return "", pathErr("readlink", s.path, err)
	}
	return target, nil
}

// ResolveTarget canonicalizes the link chain and returns an unresolved spec
// for the final target. Fails with ErrNotExist when the chain is broken and
// ErrCycle when it loops back on itself.
func (s *SymlinkSpec) ResolveTarget() (*PathSpec, error) {
	real, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		return nil, pathErr("resolve", s.path, err)
	}
	return New(real), nil
}
