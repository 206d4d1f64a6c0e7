package pathkit

import (
	"io/fs"
	"os"
	"time"
)

// StatInfo is a point-in-time snapshot of a path's metadata. It is captured
// once per resolution; callers that need fresh data must re-stat explicitly.
type StatInfo struct {
	Size       int64
	ModTime    time.Time
	AccessTime time.Time

	// UID and GID are -1 on platforms without POSIX ownership.
	UID int
	GID int

	Mode      fs.FileMode
	IsFile    bool
	IsDir     bool
	IsSymlink bool
}

// Stat returns metadata for path. When followSymlinks is false the terminal
// symlink is not dereferenced (lstat semantics), which is what lets callers
// classify a path as a symlink before deciding whether to look through it.
func Stat(path string, followSymlinks bool) (*StatInfo, error) {
	var (
		fi  os.FileInfo
		err error
	)
	op := "lstat"
	if followSymlinks {
		op = "stat"
		fi, err = os.Stat(path)
	} else {
		fi, err = os.Lstat(path)
	}
	if err != nil {
		return nil, pathErr(op, path, err)
	}
	return newStatInfo(fi), nil
}

func newStatInfo(fi os.FileInfo) *StatInfo {
	mode := fi.Mode()
	si := &StatInfo{
		Size:      fi.Size(),
		ModTime:   fi.ModTime(),
		UID:       -1,
		GID:       -1,
		Mode:      mode,
		IsFile:    mode.IsRegular(),
		IsDir:     mode.IsDir(),
		IsSymlink: mode&fs.ModeSymlink != 0,
	}
	fillPlatformInfo(fi, si)
	return si
}

// Perm returns the permission bits portion of the mode.
func (si *StatInfo) Perm() fs.FileMode {
	return si.Mode.Perm()
}

// Kind classifies the stat result into a path kind.
func (si *StatInfo) Kind() Kind {
	switch {
	case si.IsSymlink:
		return KindSymlink
	case si.IsDir:
		return KindFolder
	case si.IsFile:
		return KindFile
	default:
		return KindUnknown
	}
}
