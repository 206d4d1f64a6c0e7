//go:build unix

package pathkit

import (
	"os"
	"syscall"
)

// fillPlatformInfo extracts ownership and access time on Unix systems.
func fillPlatformInfo(fi os.FileInfo, si *StatInfo) {
	sys := fi.Sys()
	if sys == nil {
		return
	}

	st, ok := sys.(*syscall.Stat_t)
	if !ok {
		return
	}

	si.UID = int(st.Uid)
	si.GID = int(st.Gid)
	si.AccessTime = accessTime(st)
}
