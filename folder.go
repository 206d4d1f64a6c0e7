package pathkit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// FolderSpec adds directory capabilities to a resolved PathSpec.
type FolderSpec struct {
	*PathSpec
}

// Children returns the folder's immediate entries in directory order: the
// order the OS returns them, not sorted and not guaranteed stable across
// platforms. Each child arrives already classified from the directory read.
func (f *FolderSpec) Children() ([]*PathSpec, error) {
	entries, err := readDirUnordered(f.path)
	if err != nil {
		return nil, err
	}

	specs := make([]*PathSpec, 0, len(entries))
	for _, e := range entries {
		specs = append(specs, specFromDirEntry(f.path, e))
	}
	return specs, nil
}

// readDirUnordered reads all entries of dir without the name sort os.ReadDir
// applies. The directory handle is released before returning, on every path.
func readDirUnordered(dir string) ([]os.DirEntry, error) {
	fh, err := os.Open(dir)
	if err != nil {
		return nil, pathErr("readdir", dir, err)
	}
	entries, err := fh.ReadDir(-1)
	fh.Close()
	if err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			err = ErrNotDir
		}
		return nil, pathErr("readdir", dir, err)
	}
	return entries, nil
}

// specFromDirEntry classifies a child from the type bits the directory read
// already delivered, avoiding a stat per entry.
func specFromDirEntry(dir string, e os.DirEntry) *PathSpec {
	kind := KindUnknown
	t := e.Type()
	switch {
	case t&fs.ModeSymlink != 0:
		kind = KindSymlink
	case t.IsDir():
		kind = KindFolder
	case t.IsRegular():
		kind = KindFile
	}
	return newResolved(filepath.Join(dir, e.Name()), kind, nil)
}
