package pathkit

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultBackupSuffix is the suffix Backup probes with.
const DefaultBackupSuffix = ".bak"

// SafeCopy copies the file to dst with write-to-temporary-then-rename
// semantics: content lands in a temp sibling of dst and is renamed into
// place, so no partial destination state is ever observable. On failure at
// any step the temp file is removed and dst is left untouched.
//
// The copy carries the source's permission bits. Atomicity holds within a
// single filesystem; it is not a cross-process transaction guarantee.
func (f *FileSpec) SafeCopy(dst string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := f.Stats()
	if err != nil {
		return err
	}

	return safeWrite(dst, src, info.Perm())
}

// Backup safe-writes a copy of the file to a non-colliding sibling name,
// probing <path>.bak, <path>.bak.1, <path>.bak.2, ... until an unused name
// is found. Returns the spec of the created backup.
func (f *FileSpec) Backup() (*FileSpec, error) {
	return f.BackupWithSuffix(DefaultBackupSuffix)
}

// BackupWithSuffix is Backup with a caller-chosen suffix, e.g. from
// Config.BackupSuffix.
func (f *FileSpec) BackupWithSuffix(suffix string) (*FileSpec, error) {
	name, err := backupName(f.path, suffix)
	if err != nil {
		return nil, err
	}
	if err := f.SafeCopy(name); err != nil {
		return nil, err
	}
	return NewFile(name)
}

func backupName(path, suffix string) (string, error) {
	for n := 0; ; n++ {
		candidate := path + suffix
		if n > 0 {
			candidate = fmt.Sprintf("%s%s.%d", path, suffix, n)
		}
		_, err := os.Lstat(candidate)
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", pathErr("backup", candidate, err)
		}
	}
}

// safeWrite streams r into a temp sibling of dst and renames it into place.
// The temp file never survives a failure.
func safeWrite(dst string, r io.Reader, perm fs.FileMode) error {
	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return pathErr("write", dst, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return pathErr("write", dst, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return pathErr("write", dst, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return pathErr("write", dst, err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return pathErr("rename", dst, err)
	}
	return nil
}
