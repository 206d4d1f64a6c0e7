package pathkit

import (
	"io/fs"
	"os"
)

// Chmod changes the permission bits of the path. It applies uniformly to
// files, folders, and symlinks, except that supported platforms offer no
// non-following chmod primitive: a symlink spec fails with ErrNotSupported
// rather than silently chmod-ing the target.
func (s *PathSpec) Chmod(mode fs.FileMode) error {
	kind, err := s.Resolve()
	if err != nil {
		return err
	}
	if kind == KindSymlink {
		return pathErr("chmod", s.path, ErrNotSupported)
	}
	if err := os.Chmod(s.path, mode); err != nil {
		return pathErr("chmod", s.path, err)
	}
	return nil
}

// Chown changes the owner and group of the path. A uid or gid of -1 leaves
// that id unchanged. Symlink specs change the link itself, not the target.
// On platforms without POSIX ownership this fails with ErrNotSupported.
func (s *PathSpec) Chown(uid, gid int) error {
	kind, err := s.Resolve()
	if err != nil {
		return err
	}
	return chown(s.path, uid, gid, kind == KindSymlink)
}

// Chgrp changes only the group of the path, with Chown's symlink and
// platform semantics.
func (s *PathSpec) Chgrp(gid int) error {
	return s.Chown(-1, gid)
}
